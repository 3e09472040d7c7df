package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lavajato/lava-jato-api/internal/domain"
	"github.com/lavajato/lava-jato-api/internal/usecases/despesa"
	"github.com/lavajato/lava-jato-api/internal/usecases/reporting"
	"github.com/lavajato/lava-jato-api/pkg/apiErrors"
	"github.com/lavajato/lava-jato-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ListDespesas lista as despesas; com "semana=N" restringe à janela da
// semana correspondente.
func ListDespesas(service despesa.Manager, reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var despesas []*domain.Despesa
		var err error

		if r.URL.Query().Has("semana") {
			semana := reporter.ResolverSemana(semanaOffset(r))
			despesas, err = service.ListDespesasPeriodo(
				utils.FormatDateOnly(semana.Inicio),
				utils.FormatDateOnly(semana.Fim),
			)
		} else {
			despesas, err = service.ListDespesas()
		}

		if err != nil {
			logrus.WithError(err).Error("Erro ao listar despesas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar despesas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(despesas)
	}
}

func CriarDespesa(service despesa.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CriarDespesaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		nova, err := service.CriarDespesa(&req)
		if err != nil {
			handleDespesaError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(nova)
	}
}

func AtualizarDespesa(service despesa.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		despesaID := pathParam(r, "id")
		if despesaID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da despesa não fornecido", nil)
			return
		}

		var req domain.AtualizarDespesaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		atualizada, err := service.AtualizarDespesa(despesaID, &req)
		if err != nil {
			handleDespesaError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(atualizada)
	}
}

func ExcluirDespesa(service despesa.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		despesaID := pathParam(r, "id")
		if despesaID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da despesa não fornecido", nil)
			return
		}

		if err := service.ExcluirDespesa(despesaID); err != nil {
			handleDespesaError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleDespesaError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, despesa.ErrDespesaNaoEncontrada):
		apiErrors.WriteError(w, apiErrors.ErrDespesaNotFound, "Despesa não encontrada", nil)

	case errors.Is(err, despesa.ErrDescricaoObrigatoria):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Descrição da despesa é obrigatória", nil)

	case errors.Is(err, despesa.ErrValorInvalido):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Valor deve ser maior que zero", nil)

	case errors.Is(err, utils.ErrDataInvalida):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data deve estar no formato YYYY-MM-DD", nil)

	default:
		logrus.WithError(err).Error("Erro ao processar requisição de despesa")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar requisição", nil)
	}
}
