package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lavajato/lava-jato-api/infrastructure/repository"
	"github.com/lavajato/lava-jato-api/internal/config"
	"github.com/lavajato/lava-jato-api/internal/domain"
	"github.com/lavajato/lava-jato-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	RegisterUsuario(req *domain.RegistroRequest) (*domain.Usuario, string, error)
	LoginUsuario(email, senha string) (string, error)
	GetUsuarioProfile(userID string) (*domain.Usuario, error)
	GetNegocioBySlug(slug string) (*domain.Usuario, error)
	UpdateNomeNegocio(userID, nomeNegocio string) error
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	usuarioRepo repository.UsuarioRepository
	cfg         *config.Config
}

func NewService(usuarioRepo repository.UsuarioRepository, cfg *config.Config) Authenticator {
	return &Service{
		usuarioRepo: usuarioRepo,
		cfg:         cfg,
	}
}

// RegisterUsuario cria o tenant: valida os campos, gera um slug único para a
// página pública do negócio e devolve o usuário já autenticado (token junto).
func (s *Service) RegisterUsuario(req *domain.RegistroRequest) (*domain.Usuario, string, error) {
	if req.Email == "" || req.Nome == "" || req.Senha == "" || req.NomeNegocio == "" {
		return nil, "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome, email, senha e nome do negócio são obrigatórios")
	}

	if len(req.Senha) < 6 {
		return nil, "", NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, "A senha deve ter pelo menos 6 caracteres")
	}

	email := handleEmail(req.Email)

	existente, err := s.usuarioRepo.GetUsuarioByEmail(email)
	if err != nil {
		return nil, "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if existente != nil {
		return nil, "", NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	slug, err := s.gerarSlugUnico(req.NomeNegocio)
	if err != nil {
		return nil, "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao gerar identificador do negócio")
	}

	senhaHash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	usuario := &domain.Usuario{
		ID:          uuid.NewString(),
		Nome:        req.Nome,
		Email:       email,
		SenhaHash:   string(senhaHash),
		Slug:        slug,
		NomeNegocio: req.NomeNegocio,
	}

	usuario, err = s.usuarioRepo.CreateUsuario(usuario)
	if err != nil {
		return nil, "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	token, err := generateJWT(usuario, s.cfg.SecretKey)
	if err != nil {
		return nil, "", NewUserAuthError(err, apiErrors.ErrInternalServer, usuario.ID, "Erro ao gerar token de autenticação")
	}

	return usuario, token, nil
}

func (s *Service) LoginUsuario(email, senha string) (string, error) {
	if email == "" || senha == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	usuario, err := s.usuarioRepo.GetUsuarioByEmail(email)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if usuario == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(senha)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, usuario.ID, "Senha incorreta")
	}

	token, err := generateJWT(usuario, s.cfg.SecretKey)
	if err != nil {
		return "", NewUserAuthError(err, apiErrors.ErrInternalServer, usuario.ID, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) GetUsuarioProfile(userID string) (*domain.Usuario, error) {
	usuario, err := s.usuarioRepo.GetUsuarioByID(userID)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}
	if usuario == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	usuario.SenhaHash = ""
	return usuario, nil
}

// GetNegocioBySlug resolve a página pública do negócio. Devolve o usuário
// sem nenhum dado sensível.
func (s *Service) GetNegocioBySlug(slug string) (*domain.Usuario, error) {
	usuario, err := s.usuarioRepo.GetUsuarioBySlug(slug)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Negócio não encontrado")
	}

	usuario.SenhaHash = ""
	usuario.Email = ""
	return usuario, nil
}

func (s *Service) UpdateNomeNegocio(userID, nomeNegocio string) error {
	if nomeNegocio == "" {
		return NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome do negócio é obrigatório")
	}

	return s.usuarioRepo.UpdateNomeNegocio(userID, nomeNegocio)
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

// gerarSlugUnico normaliza o nome do negócio ("Lava Jato do Zé" vira
// "lava-jato-do-ze") e resolve colisão com sufixo numérico.
func (s *Service) gerarSlugUnico(nomeNegocio string) (string, error) {
	base := slugify(nomeNegocio)
	if base == "" {
		base = "lava-jato"
	}

	existentes, err := s.usuarioRepo.ListSlugs()
	if err != nil {
		return "", err
	}

	emUso := make(map[string]bool, len(existentes))
	for _, slug := range existentes {
		emUso[slug] = true
	}

	if !emUso[base] {
		return base, nil
	}

	for i := 2; ; i++ {
		candidato := fmt.Sprintf("%s-%d", base, i)
		if !emUso[candidato] {
			return candidato, nil
		}
	}
}

var acentos = map[rune]rune{
	'á': 'a', 'à': 'a', 'ã': 'a', 'â': 'a', 'ä': 'a',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'í': 'i', 'ì': 'i', 'î': 'i', 'ï': 'i',
	'ó': 'o', 'ò': 'o', 'õ': 'o', 'ô': 'o', 'ö': 'o',
	'ú': 'u', 'ù': 'u', 'û': 'u', 'ü': 'u',
	'ç': 'c',
}

func slugify(nome string) string {
	var b strings.Builder
	ultimoHifen := true
	for _, r := range strings.ToLower(nome) {
		if sub, ok := acentos[r]; ok {
			r = sub
		}
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			ultimoHifen = false
		default:
			if !ultimoHifen {
				b.WriteRune('-')
				ultimoHifen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

func generateJWT(usuario *domain.Usuario, secretKey string) (string, error) {
	claims := domain.Claims{
		UserID:      usuario.ID,
		UserNome:    usuario.Nome,
		UserEmail:   usuario.Email,
		UserSlug:    usuario.Slug,
		NomeNegocio: usuario.NomeNegocio,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("token inválido")
}
