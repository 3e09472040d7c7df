package lavagem

import (
	"testing"

	"github.com/lavajato/lava-jato-api/infrastructure/repository/mocks"
	"github.com/lavajato/lava-jato-api/internal/domain"
	"github.com/lavajato/lava-jato-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func TestCriarLavagem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLavagemRepo := mocks.NewMockLavagemRepository(ctrl)
	mockFuncionarioRepo := mocks.NewMockFuncionarioRepository(ctrl)
	service := NewService(mockLavagemRepo, mockFuncionarioRepo)

	tests := []struct {
		name     string
		request  *domain.CriarLavagemRequest
		setup    func()
		validate func(t *testing.T, lavagem *domain.Lavagem, err error)
	}{
		{
			name: "Criação com forma de pagamento válida",
			request: &domain.CriarLavagemRequest{
				FuncionarioID:  "F1",
				Descricao:      "Gol prata completa",
				Preco:          50.00,
				FormaPagamento: stringPtr("pix"),
				DataLavagem:    "2024-03-11",
			},
			setup: func() {
				mockFuncionarioRepo.EXPECT().
					GetFuncionarioByID("F1").
					Return(&domain.Funcionario{ID: "F1", Ativo: true}, nil)

				mockLavagemRepo.EXPECT().
					CreateLavagem(gomock.Any()).
					DoAndReturn(func(lavagem *domain.Lavagem) (*domain.Lavagem, error) {
						return lavagem, nil
					})
			},
			validate: func(t *testing.T, lavagem *domain.Lavagem, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, lavagem.ID)
				assert.Equal(t, "pix", *lavagem.FormaPagamento)
			},
		},
		{
			name: "Forma de pagamento desconhecida é descartada",
			request: &domain.CriarLavagemRequest{
				FuncionarioID:  "F1",
				Descricao:      "Lavagem simples",
				Preco:          30.00,
				FormaPagamento: stringPtr("cheque"),
				DataLavagem:    "2024-03-11",
			},
			setup: func() {
				mockFuncionarioRepo.EXPECT().
					GetFuncionarioByID("F1").
					Return(&domain.Funcionario{ID: "F1", Ativo: true}, nil)

				mockLavagemRepo.EXPECT().
					CreateLavagem(gomock.Any()).
					DoAndReturn(func(lavagem *domain.Lavagem) (*domain.Lavagem, error) {
						return lavagem, nil
					})
			},
			validate: func(t *testing.T, lavagem *domain.Lavagem, err error) {
				assert.NoError(t, err)
				assert.Nil(t, lavagem.FormaPagamento)
			},
		},
		{
			name: "Preço zerado",
			request: &domain.CriarLavagemRequest{
				FuncionarioID: "F1",
				Descricao:     "Lavagem simples",
				Preco:         0,
				DataLavagem:   "2024-03-11",
			},
			setup: func() {},
			validate: func(t *testing.T, lavagem *domain.Lavagem, err error) {
				assert.ErrorIs(t, err, ErrPrecoInvalido)
			},
		},
		{
			name: "Data malformada",
			request: &domain.CriarLavagemRequest{
				FuncionarioID: "F1",
				Descricao:     "Lavagem simples",
				Preco:         30.00,
				DataLavagem:   "11/03/2024",
			},
			setup: func() {},
			validate: func(t *testing.T, lavagem *domain.Lavagem, err error) {
				assert.ErrorIs(t, err, utils.ErrDataInvalida)
			},
		},
		{
			name: "Funcionário inexistente",
			request: &domain.CriarLavagemRequest{
				FuncionarioID: "F1",
				Descricao:     "Lavagem simples",
				Preco:         30.00,
				DataLavagem:   "2024-03-11",
			},
			setup: func() {
				mockFuncionarioRepo.EXPECT().
					GetFuncionarioByID("F1").
					Return(nil, nil)
			},
			validate: func(t *testing.T, lavagem *domain.Lavagem, err error) {
				assert.ErrorIs(t, err, ErrFuncionarioNaoEncontrado)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			lavagem, err := service.CriarLavagem(tt.request)

			tt.validate(t, lavagem, err)
		})
	}
}

func TestCriarLavagemPublica(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLavagemRepo := mocks.NewMockLavagemRepository(ctrl)
	mockFuncionarioRepo := mocks.NewMockFuncionarioRepository(ctrl)
	service := NewService(mockLavagemRepo, mockFuncionarioRepo)

	request := func() *domain.CriarLavagemRequest {
		return &domain.CriarLavagemRequest{
			Descricao:   "Lavagem completa",
			Preco:       45.00,
			DataLavagem: "2024-03-11",
		}
	}

	t.Run("Funcionário ativo lança a própria lavagem", func(t *testing.T) {
		mockFuncionarioRepo.EXPECT().
			GetFuncionarioByCodigoPublico("AbCd1234").
			Return(&domain.Funcionario{ID: "F1", Ativo: true}, nil)
		mockFuncionarioRepo.EXPECT().
			GetFuncionarioByID("F1").
			Return(&domain.Funcionario{ID: "F1", Ativo: true}, nil)
		mockLavagemRepo.EXPECT().
			CreateLavagem(gomock.Any()).
			DoAndReturn(func(lavagem *domain.Lavagem) (*domain.Lavagem, error) {
				return lavagem, nil
			})

		lavagem, err := service.CriarLavagemPublica("AbCd1234", request())

		assert.NoError(t, err)
		assert.Equal(t, "F1", lavagem.FuncionarioID)
	})

	t.Run("Código desconhecido", func(t *testing.T) {
		mockFuncionarioRepo.EXPECT().
			GetFuncionarioByCodigoPublico("AbCd1234").
			Return(nil, nil)

		lavagem, err := service.CriarLavagemPublica("AbCd1234", request())

		assert.ErrorIs(t, err, ErrFuncionarioNaoEncontrado)
		assert.Nil(t, lavagem)
	})

	t.Run("Funcionário inativo é tratado como não encontrado", func(t *testing.T) {
		mockFuncionarioRepo.EXPECT().
			GetFuncionarioByCodigoPublico("AbCd1234").
			Return(&domain.Funcionario{ID: "F1", Ativo: false}, nil)

		lavagem, err := service.CriarLavagemPublica("AbCd1234", request())

		assert.ErrorIs(t, err, ErrFuncionarioNaoEncontrado)
		assert.Nil(t, lavagem)
	})
}

func TestListLavagensPorDia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLavagemRepo := mocks.NewMockLavagemRepository(ctrl)
	mockFuncionarioRepo := mocks.NewMockFuncionarioRepository(ctrl)
	service := NewService(mockLavagemRepo, mockFuncionarioRepo)

	lavagemNoDia := func(id, data string) *domain.LavagemComFuncionario {
		return &domain.LavagemComFuncionario{
			Lavagem: domain.Lavagem{ID: id, DataLavagem: data},
		}
	}

	t.Run("Filtra pelo dia da semana", func(t *testing.T) {
		mockLavagemRepo.EXPECT().
			ListTodasLavagens(gomock.Nil()).
			Return([]*domain.LavagemComFuncionario{
				lavagemNoDia("L1", "2024-03-11"), // segunda
				lavagemNoDia("L2", "2024-03-12"), // terça
				lavagemNoDia("L3", "2024-03-18"), // segunda
			}, nil)

		lavagens, err := service.ListLavagensPorDia(nil, 1)

		assert.NoError(t, err)
		assert.Len(t, lavagens, 2)
		assert.Equal(t, "L1", lavagens[0].ID)
		assert.Equal(t, "L3", lavagens[1].ID)
	})

	t.Run("Data malformada interrompe o filtro", func(t *testing.T) {
		mockLavagemRepo.EXPECT().
			ListTodasLavagens(gomock.Nil()).
			Return([]*domain.LavagemComFuncionario{
				lavagemNoDia("L1", "11/03/2024"),
			}, nil)

		lavagens, err := service.ListLavagensPorDia(nil, 1)

		assert.ErrorIs(t, err, utils.ErrDataInvalida)
		assert.Nil(t, lavagens)
	})
}

func TestAtualizarLavagem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLavagemRepo := mocks.NewMockLavagemRepository(ctrl)
	mockFuncionarioRepo := mocks.NewMockFuncionarioRepository(ctrl)
	service := NewService(mockLavagemRepo, mockFuncionarioRepo)

	existente := func() *domain.Lavagem {
		return &domain.Lavagem{
			ID:            "L1",
			FuncionarioID: "F1",
			Descricao:     "Original",
			Preco:         40.00,
			FotoURL:       stringPtr("data:image/jpeg;base64,abc"),
			DataLavagem:   "2024-03-11",
		}
	}

	t.Run("Atualização sem foto preserva a existente", func(t *testing.T) {
		mockLavagemRepo.EXPECT().
			GetLavagemByID("L1").
			Return(existente(), nil)

		mockLavagemRepo.EXPECT().
			UpdateLavagem(gomock.Any()).
			DoAndReturn(func(lavagem *domain.Lavagem) error {
				assert.Equal(t, "data:image/jpeg;base64,abc", *lavagem.FotoURL)
				return nil
			})

		lavagem, err := service.AtualizarLavagem("L1", &domain.AtualizarLavagemRequest{
			Descricao:   "Nova descrição",
			Preco:       60.00,
			DataLavagem: "2024-03-12",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Nova descrição", lavagem.Descricao)
		assert.True(t, lavagem.TemFoto)
	})

	t.Run("Lavagem inexistente", func(t *testing.T) {
		mockLavagemRepo.EXPECT().
			GetLavagemByID("L1").
			Return(nil, nil)

		lavagem, err := service.AtualizarLavagem("L1", &domain.AtualizarLavagemRequest{
			Descricao:   "X",
			Preco:       10.00,
			DataLavagem: "2024-03-12",
		})

		assert.ErrorIs(t, err, ErrLavagemNaoEncontrada)
		assert.Nil(t, lavagem)
	})
}

func TestGetFoto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLavagemRepo := mocks.NewMockLavagemRepository(ctrl)
	mockFuncionarioRepo := mocks.NewMockFuncionarioRepository(ctrl)
	service := NewService(mockLavagemRepo, mockFuncionarioRepo)

	t.Run("Foto existente", func(t *testing.T) {
		mockLavagemRepo.EXPECT().
			GetFotoLavagem("L1").
			Return(stringPtr("data:image/jpeg;base64,abc"), nil)

		foto, err := service.GetFoto("L1")

		assert.NoError(t, err)
		assert.Equal(t, "data:image/jpeg;base64,abc", foto)
	})

	t.Run("Lavagem sem foto", func(t *testing.T) {
		mockLavagemRepo.EXPECT().
			GetFotoLavagem("L1").
			Return(nil, nil)

		foto, err := service.GetFoto("L1")

		assert.ErrorIs(t, err, ErrFotoNaoEncontrada)
		assert.Empty(t, foto)
	})
}
