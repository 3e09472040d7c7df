package authenticating

import (
	"testing"

	"github.com/lavajato/lava-jato-api/infrastructure/repository/mocks"
	"github.com/lavajato/lava-jato-api/internal/config"
	"github.com/lavajato/lava-jato-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{SecretKey: "segredo-de-teste"}
}

func TestRegisterUsuario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsuarioRepo := mocks.NewMockUsuarioRepository(ctrl)
	service := NewService(mockUsuarioRepo, testConfig())

	tests := []struct {
		name     string
		request  *domain.RegistroRequest
		setup    func()
		validate func(t *testing.T, usuario *domain.Usuario, token string, err error)
	}{
		{
			name: "Registro completo gera slug e token",
			request: &domain.RegistroRequest{
				Nome:        "José",
				Email:       " Jose@Example.com ",
				Senha:       "senha123",
				NomeNegocio: "Lava Jato do Zé",
			},
			setup: func() {
				mockUsuarioRepo.EXPECT().
					GetUsuarioByEmail("jose@example.com").
					Return(nil, nil)

				mockUsuarioRepo.EXPECT().
					ListSlugs().
					Return([]string{"outro-lava-jato"}, nil)

				mockUsuarioRepo.EXPECT().
					CreateUsuario(gomock.Any()).
					DoAndReturn(func(usuario *domain.Usuario) (*domain.Usuario, error) {
						return usuario, nil
					})
			},
			validate: func(t *testing.T, usuario *domain.Usuario, token string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.Equal(t, "jose@example.com", usuario.Email)
				assert.Equal(t, "lava-jato-do-ze", usuario.Slug)
				assert.NotEmpty(t, usuario.ID)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte("senha123")))
			},
		},
		{
			name: "Slug em uso recebe sufixo numérico",
			request: &domain.RegistroRequest{
				Nome:        "Maria",
				Email:       "maria@example.com",
				Senha:       "senha123",
				NomeNegocio: "Lava Jato do Zé",
			},
			setup: func() {
				mockUsuarioRepo.EXPECT().
					GetUsuarioByEmail("maria@example.com").
					Return(nil, nil)

				mockUsuarioRepo.EXPECT().
					ListSlugs().
					Return([]string{"lava-jato-do-ze", "lava-jato-do-ze-2"}, nil)

				mockUsuarioRepo.EXPECT().
					CreateUsuario(gomock.Any()).
					DoAndReturn(func(usuario *domain.Usuario) (*domain.Usuario, error) {
						return usuario, nil
					})
			},
			validate: func(t *testing.T, usuario *domain.Usuario, token string, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "lava-jato-do-ze-3", usuario.Slug)
			},
		},
		{
			name: "Email já cadastrado",
			request: &domain.RegistroRequest{
				Nome:        "José",
				Email:       "jose@example.com",
				Senha:       "senha123",
				NomeNegocio: "Lava Jato do Zé",
			},
			setup: func() {
				mockUsuarioRepo.EXPECT().
					GetUsuarioByEmail("jose@example.com").
					Return(&domain.Usuario{ID: "existente"}, nil)
			},
			validate: func(t *testing.T, usuario *domain.Usuario, token string, err error) {
				assert.ErrorIs(t, err, ErrUserAlreadyExists)
				assert.Nil(t, usuario)
				assert.Empty(t, token)
			},
		},
		{
			name: "Campos obrigatórios ausentes",
			request: &domain.RegistroRequest{
				Nome:  "José",
				Email: "jose@example.com",
			},
			setup: func() {},
			validate: func(t *testing.T, usuario *domain.Usuario, token string, err error) {
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
		{
			name: "Senha curta demais",
			request: &domain.RegistroRequest{
				Nome:        "José",
				Email:       "jose@example.com",
				Senha:       "123",
				NomeNegocio: "Lava Jato do Zé",
			},
			setup: func() {},
			validate: func(t *testing.T, usuario *domain.Usuario, token string, err error) {
				assert.ErrorIs(t, err, ErrWeakPassword)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			usuario, token, err := service.RegisterUsuario(tt.request)

			tt.validate(t, usuario, token, err)
		})
	}
}

func TestLoginUsuario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsuarioRepo := mocks.NewMockUsuarioRepository(ctrl)
	service := NewService(mockUsuarioRepo, testConfig())

	senhaHash, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	usuario := &domain.Usuario{
		ID:        "user-1",
		Nome:      "José",
		Email:     "jose@example.com",
		SenhaHash: string(senhaHash),
		Slug:      "lava-jato-do-ze",
	}

	tests := []struct {
		name     string
		email    string
		senha    string
		setup    func()
		validate func(t *testing.T, token string, err error)
	}{
		{
			name:  "Login com credenciais corretas",
			email: "Jose@Example.com",
			senha: "senha123",
			setup: func() {
				mockUsuarioRepo.EXPECT().
					GetUsuarioByEmail("jose@example.com").
					Return(usuario, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)

				claims, err := service.ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, "user-1", claims.UserID)
				assert.Equal(t, "lava-jato-do-ze", claims.UserSlug)
			},
		},
		{
			name:  "Senha incorreta",
			email: "jose@example.com",
			senha: "errada",
			setup: func() {
				mockUsuarioRepo.EXPECT().
					GetUsuarioByEmail("jose@example.com").
					Return(usuario, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				assert.Empty(t, token)
			},
		},
		{
			name:  "Usuário inexistente",
			email: "ninguem@example.com",
			senha: "senha123",
			setup: func() {
				mockUsuarioRepo.EXPECT().
					GetUsuarioByEmail("ninguem@example.com").
					Return(nil, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrUserNotFound)
			},
		},
		{
			name:  "Campos vazios",
			email: "",
			senha: "",
			setup: func() {},
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			token, err := service.LoginUsuario(tt.email, tt.senha)

			tt.validate(t, token, err)
		})
	}
}

func TestValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsuarioRepo := mocks.NewMockUsuarioRepository(ctrl)
	service := NewService(mockUsuarioRepo, testConfig())

	t.Run("Token adulterado é rejeitado", func(t *testing.T) {
		claims, err := service.ValidateToken("abc.def.ghi")

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Token assinado com outro segredo é rejeitado", func(t *testing.T) {
		usuario := &domain.Usuario{ID: "user-1", Email: "jose@example.com"}
		token, err := generateJWT(usuario, "outro-segredo")
		assert.NoError(t, err)

		claims, err := service.ValidateToken(token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		entrada  string
		esperado string
	}{
		{"Acentos e espaços", "Lava Jato do Zé", "lava-jato-do-ze"},
		{"Cedilha", "Serviços & Cia", "servicos-cia"},
		{"Símbolos consecutivos viram um hífen", "Top -- Wash!!", "top-wash"},
		{"Somente símbolos", "!!!", ""},
		{"Números preservados", "Lava 24h", "lava-24h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.esperado, slugify(tt.entrada))
		})
	}
}
