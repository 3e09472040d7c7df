package despesa

import (
	"testing"

	"github.com/lavajato/lava-jato-api/infrastructure/repository/mocks"
	"github.com/lavajato/lava-jato-api/internal/domain"
	"github.com/lavajato/lava-jato-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCriarDespesa(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDespesaRepo := mocks.NewMockDespesaRepository(ctrl)
	service := NewService(mockDespesaRepo)

	tests := []struct {
		name     string
		request  *domain.CriarDespesaRequest
		setup    func()
		validate func(t *testing.T, despesa *domain.Despesa, err error)
	}{
		{
			name: "Criação completa",
			request: &domain.CriarDespesaRequest{
				Descricao:   "Shampoo automotivo",
				Valor:       85.50,
				DataDespesa: "2024-03-12",
			},
			setup: func() {
				mockDespesaRepo.EXPECT().
					CreateDespesa(gomock.Any()).
					DoAndReturn(func(despesa *domain.Despesa) (*domain.Despesa, error) {
						return despesa, nil
					})
			},
			validate: func(t *testing.T, despesa *domain.Despesa, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, despesa.ID)
				assert.Equal(t, 85.50, despesa.Valor)
			},
		},
		{
			name: "Valor zerado",
			request: &domain.CriarDespesaRequest{
				Descricao:   "Shampoo automotivo",
				Valor:       0,
				DataDespesa: "2024-03-12",
			},
			setup: func() {},
			validate: func(t *testing.T, despesa *domain.Despesa, err error) {
				assert.ErrorIs(t, err, ErrValorInvalido)
			},
		},
		{
			name: "Descrição vazia",
			request: &domain.CriarDespesaRequest{
				Valor:       10.00,
				DataDespesa: "2024-03-12",
			},
			setup: func() {},
			validate: func(t *testing.T, despesa *domain.Despesa, err error) {
				assert.ErrorIs(t, err, ErrDescricaoObrigatoria)
			},
		},
		{
			name: "Data malformada",
			request: &domain.CriarDespesaRequest{
				Descricao:   "Shampoo automotivo",
				Valor:       10.00,
				DataDespesa: "12-03-2024x",
			},
			setup: func() {},
			validate: func(t *testing.T, despesa *domain.Despesa, err error) {
				assert.ErrorIs(t, err, utils.ErrDataInvalida)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			despesa, err := service.CriarDespesa(tt.request)

			tt.validate(t, despesa, err)
		})
	}
}

func TestAtualizarDespesa(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDespesaRepo := mocks.NewMockDespesaRepository(ctrl)
	service := NewService(mockDespesaRepo)

	t.Run("Atualização de despesa existente", func(t *testing.T) {
		mockDespesaRepo.EXPECT().
			GetDespesaByID("D1").
			Return(&domain.Despesa{ID: "D1", Descricao: "Antiga", Valor: 10.00, DataDespesa: "2024-03-11"}, nil)
		mockDespesaRepo.EXPECT().
			UpdateDespesa(gomock.Any()).
			Return(nil)

		despesa, err := service.AtualizarDespesa("D1", &domain.AtualizarDespesaRequest{
			Descricao:   "Nova",
			Valor:       20.00,
			DataDespesa: "2024-03-12",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Nova", despesa.Descricao)
		assert.Equal(t, 20.00, despesa.Valor)
	})

	t.Run("Despesa inexistente", func(t *testing.T) {
		mockDespesaRepo.EXPECT().
			GetDespesaByID("D1").
			Return(nil, nil)

		despesa, err := service.AtualizarDespesa("D1", &domain.AtualizarDespesaRequest{
			Descricao:   "Nova",
			Valor:       20.00,
			DataDespesa: "2024-03-12",
		})

		assert.ErrorIs(t, err, ErrDespesaNaoEncontrada)
		assert.Nil(t, despesa)
	})
}

func TestExcluirDespesa(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDespesaRepo := mocks.NewMockDespesaRepository(ctrl)
	service := NewService(mockDespesaRepo)

	t.Run("Exclusão de despesa existente", func(t *testing.T) {
		mockDespesaRepo.EXPECT().
			GetDespesaByID("D1").
			Return(&domain.Despesa{ID: "D1"}, nil)
		mockDespesaRepo.EXPECT().
			DeleteDespesa("D1").
			Return(nil)

		assert.NoError(t, service.ExcluirDespesa("D1"))
	})

	t.Run("Exclusão de despesa inexistente", func(t *testing.T) {
		mockDespesaRepo.EXPECT().
			GetDespesaByID("D1").
			Return(nil, nil)

		assert.ErrorIs(t, service.ExcluirDespesa("D1"), ErrDespesaNaoEncontrada)
	})
}
