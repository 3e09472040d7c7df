package scheduler

import (
	"testing"
	"time"

	repomocks "github.com/lavajato/lava-jato-api/infrastructure/repository/mocks"
	"github.com/lavajato/lava-jato-api/internal/domain"
	reportingmocks "github.com/lavajato/lava-jato-api/internal/usecases/reporting/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestResumoSemanalSyncService_SyncResumoSemanal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Mocks
	mockUsuarioRepo := repomocks.NewMockUsuarioRepository(ctrl)
	mockSnapshotRepo := repomocks.NewMockResumoSnapshotRepository(ctrl)
	mockReporter := reportingmocks.NewMockReporter(ctrl)

	// Service
	service := &ResumoSemanalSyncService{
		usuarioRepo:  mockUsuarioRepo,
		snapshotRepo: mockSnapshotRepo,
		reporter:     mockReporter,
	}

	semanaPassada := domain.SemanaInfo{
		Inicio: time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local),
		Fim:    time.Date(2024, 3, 9, 23, 59, 59, 999000000, time.Local),
		Offset: 1,
	}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, err error)
	}{
		{
			name: "Fecha a semana anterior de cada lava jato",
			setup: func() {
				usuarios := []*domain.Usuario{
					{ID: "user-1", Nome: "José"},
					{ID: "user-2", Nome: "Maria"},
				}

				mockUsuarioRepo.EXPECT().
					ListUsuarios().
					Return(usuarios, nil)

				for _, usuario := range usuarios {
					userID := usuario.ID
					mockReporter.EXPECT().
						Dashboard(&userID, 1).
						Return(&domain.Dashboard{
							Semana: semanaPassada,
							Resumo: domain.ResumoSemanal{ReceitaTotal: 500.00},
						}, nil)
				}

				mockSnapshotRepo.EXPECT().
					UpsertResumoSnapshot(gomock.Any()).
					DoAndReturn(func(snapshot *domain.ResumoSnapshot) error {
						assert.Equal(t, "2024-03-04", snapshot.SemanaInicio)
						assert.Equal(t, "2024-03-09", snapshot.SemanaFim)
						assert.Equal(t, 500.00, snapshot.Resumo.ReceitaTotal)
						assert.NotEmpty(t, snapshot.ID)
						return nil
					}).
					Times(2)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Falha em um lava jato não interrompe os demais",
			setup: func() {
				usuarios := []*domain.Usuario{
					{ID: "user-1", Nome: "José"},
					{ID: "user-2", Nome: "Maria"},
				}

				mockUsuarioRepo.EXPECT().
					ListUsuarios().
					Return(usuarios, nil)

				user1 := "user-1"
				mockReporter.EXPECT().
					Dashboard(&user1, 1).
					Return(nil, assert.AnError)

				user2 := "user-2"
				mockReporter.EXPECT().
					Dashboard(&user2, 1).
					Return(&domain.Dashboard{Semana: semanaPassada}, nil)

				mockSnapshotRepo.EXPECT().
					UpsertResumoSnapshot(gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "1 falha")
			},
		},
		{
			name: "Erro ao listar lava jatos interrompe o fechamento",
			setup: func() {
				mockUsuarioRepo.EXPECT().
					ListUsuarios().
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
		{
			name: "Nenhum lava jato cadastrado",
			setup: func() {
				mockUsuarioRepo.EXPECT().
					ListUsuarios().
					Return(nil, nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			err := service.SyncResumoSemanal()

			tt.validate(t, err)
		})
	}
}
