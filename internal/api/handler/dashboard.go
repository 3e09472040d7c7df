package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lavajato/lava-jato-api/internal/usecases/reporting"
	"github.com/lavajato/lava-jato-api/pkg/apiErrors"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// GetDashboard monta o painel semanal do lava jato logado. O parâmetro
// "semana" navega para semanas anteriores (0 = atual, 1 = anterior, ...).
func GetDashboard(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := reporter.Dashboard(tenantID(r), semanaOffset(r))
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar o dashboard semanal")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar o dashboard", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(dashboard)
	}
}

// GetResumoFechado retorna o consolidado persistido de uma semana já fechada
// pelo sync, sem recalcular nada. O parâmetro "semana" segue a mesma
// convenção do dashboard (0 = atual, 1 = anterior, ...).
func GetResumoFechado(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := reporter.ResumoFechado(tenantID(r), semanaOffset(r))
		if err != nil {
			if errors.Is(err, reporting.ErrResumoNaoEncontrado) {
				apiErrors.WriteError(w, apiErrors.ErrResumoNotFound, "Resumo fechado não encontrado para a semana", nil)
				return
			}

			logrus.WithError(err).Error("Erro ao buscar resumo fechado")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar resumo fechado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(snapshot)
	}
}
