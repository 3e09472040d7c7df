package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lavajato/lava-jato-api/internal/scheduler"
	"github.com/lavajato/lava-jato-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeResumoSemanal = "resumo-semanal"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	ResumoSemanalSyncService *scheduler.ResumoSemanalSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := pathParam(r, "type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeResumoSemanal:
			if services.ResumoSemanalSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de fechamento do resumo semanal não disponível", nil)
				return
			}
			services.ResumoSemanalSyncService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: resumo-semanal", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"resumo-semanal": services.ResumoSemanalSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
