// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
	"github.com/lavajato/lava-jato-api/infrastructure/repository"
	"github.com/lavajato/lava-jato-api/internal/config"
	"github.com/lavajato/lava-jato-api/internal/domain"
	"github.com/lavajato/lava-jato-api/internal/usecases/reporting"
	"github.com/lavajato/lava-jato-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type ResumoSemanalSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ResumoSemanalSyncService fecha a semana anterior de cada lava jato: roda
// após o sábado (domingo à noite por padrão), recalcula o resumo com offset 1
// e grava o snapshot. Rodar de novo apenas sobrescreve o mesmo snapshot.
type ResumoSemanalSyncService struct {
	scheduler           *gocron.Scheduler
	usuarioRepo         repository.UsuarioRepository
	snapshotRepo        repository.ResumoSnapshotRepository
	reporter            reporting.Reporter
	config              ResumoSemanalSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewResumoSemanalSyncService(
	usuarioRepo repository.UsuarioRepository,
	snapshotRepo repository.ResumoSnapshotRepository,
	reporter reporting.Reporter,
	cfg *config.Config,
) *ResumoSemanalSyncService {
	syncConfig := ResumoSemanalSyncConfig{
		CronSchedule: cfg.ResumoSemanalSync.CronSchedule, // Default: domingo às 23h
		SyncEnabled:  cfg.ResumoSemanalSync.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador de resumo semanal carregada")

	return &ResumoSemanalSyncService{
		scheduler:    scheduler,
		usuarioRepo:  usuarioRepo,
		snapshotRepo: snapshotRepo,
		reporter:     reporter,
		config:       syncConfig,
	}
}

func (s *ResumoSemanalSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de fechamento do resumo semanal desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de fechamento do resumo semanal")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncResumoSemanal(); err != nil {
			logrus.WithError(err).Error("Erro no fechamento do resumo semanal")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar fechamento do resumo semanal: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do resumo semanal")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncResumoSemanal percorre todos os lava jatos cadastrados e persiste o
// resumo da semana anterior de cada um. Falha em um tenant não interrompe os
// demais.
func (s *ResumoSemanalSyncService) SyncResumoSemanal() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Fechamento do resumo semanal já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando fechamento do resumo semanal")

	usuarios, err := s.usuarioRepo.ListUsuarios()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lava jatos para o fechamento do resumo semanal")
		return err
	}

	var falhas int
	for _, usuario := range usuarios {
		if err := s.processarUsuario(usuario); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"user_id": usuario.ID,
			}).Error("Erro ao fechar resumo semanal do lava jato")
			falhas++
		}
	}

	logrus.WithFields(logrus.Fields{
		"total":  len(usuarios),
		"falhas": falhas,
	}).Info("Fechamento do resumo semanal concluído")

	if falhas > 0 {
		return fmt.Errorf("fechamento do resumo semanal com %d falha(s)", falhas)
	}

	return nil
}

// TriggerManualSync dispara o fechamento fora do horário agendado
func (s *ResumoSemanalSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Fechamento do resumo semanal já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando fechamento manual do resumo semanal")
	go func() {
		if err := s.SyncResumoSemanal(); err != nil {
			logrus.WithError(err).Error("Erro no fechamento manual do resumo semanal")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *ResumoSemanalSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

func (s *ResumoSemanalSyncService) processarUsuario(usuario *domain.Usuario) error {
	dashboard, err := s.reporter.Dashboard(&usuario.ID, 1)
	if err != nil {
		return err
	}

	snapshot := &domain.ResumoSnapshot{
		ID:           uuid.NewString(),
		UserID:       usuario.ID,
		SemanaInicio: utils.FormatDateOnly(dashboard.Semana.Inicio),
		SemanaFim:    utils.FormatDateOnly(dashboard.Semana.Fim),
		Resumo:       dashboard.Resumo,
	}

	if err := s.snapshotRepo.UpsertResumoSnapshot(snapshot); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": usuario.ID,
		"semana":  utils.FormatDatePtBr(dashboard.Semana.Inicio) + " a " + utils.FormatDatePtBr(dashboard.Semana.Fim),
	}).Debug("Resumo semanal do lava jato persistido")

	return nil
}
