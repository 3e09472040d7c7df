package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/lavajato/lava-jato-api/internal/domain"
	"github.com/lavajato/lava-jato-api/internal/usecases/lavagem"
	"github.com/lavajato/lava-jato-api/internal/usecases/reporting"
	"github.com/lavajato/lava-jato-api/pkg/apiErrors"
	"github.com/lavajato/lava-jato-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type FotoLavagemResponse struct {
	Foto string `json:"foto"`
}

// ListLavagens lista as lavagens do lava jato logado. Aceita dois filtros:
// "semana=N" restringe à janela da semana (0 = atual, 1 = anterior, ...) e
// "dia=N" ao dia da semana da data (domingo = 0 ... sábado = 6).
func ListLavagens(service lavagem.Manager, reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		var lavagens []*domain.LavagemComFuncionario
		var err error

		switch {
		case query.Has("semana"):
			semana := reporter.ResolverSemana(semanaOffset(r))
			lavagens, err = service.ListLavagensPeriodo(
				tenantID(r),
				utils.FormatDateOnly(semana.Inicio),
				utils.FormatDateOnly(semana.Fim),
			)

		case query.Has("dia"):
			dia, convErr := strconv.Atoi(query.Get("dia"))
			if convErr != nil || dia < 0 || dia > 6 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Dia da semana deve estar entre 0 e 6", nil)
				return
			}
			lavagens, err = service.ListLavagensPorDia(tenantID(r), dia)

		default:
			lavagens, err = service.ListLavagens(tenantID(r))
		}

		if err != nil {
			logrus.WithError(err).Error("Erro ao listar lavagens")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar lavagens", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(lavagens)
	}
}

func CriarLavagem(service lavagem.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CriarLavagemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		nova, err := service.CriarLavagem(&req)
		if err != nil {
			handleLavagemError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(nova)
	}
}

func AtualizarLavagem(service lavagem.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lavagemID := pathParam(r, "id")
		if lavagemID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da lavagem não fornecido", nil)
			return
		}

		var req domain.AtualizarLavagemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		atualizada, err := service.AtualizarLavagem(lavagemID, &req)
		if err != nil {
			handleLavagemError(w, err)
			return
		}

		// Foto fica fora das respostas de listagem e atualização
		atualizada.FotoURL = nil

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(atualizada)
	}
}

func ExcluirLavagem(service lavagem.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lavagemID := pathParam(r, "id")
		if lavagemID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da lavagem não fornecido", nil)
			return
		}

		if err := service.ExcluirLavagem(lavagemID); err != nil {
			handleLavagemError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetFotoLavagem serve a foto isoladamente; as listagens só carregam a flag
// tem_foto para não inflar a resposta com a data URL em base64.
func GetFotoLavagem(service lavagem.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lavagemID := pathParam(r, "id")
		if lavagemID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da lavagem não fornecido", nil)
			return
		}

		foto, err := service.GetFoto(lavagemID)
		if err != nil {
			handleLavagemError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(FotoLavagemResponse{
			Foto: foto,
		})
	}
}

func handleLavagemError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, lavagem.ErrLavagemNaoEncontrada):
		apiErrors.WriteError(w, apiErrors.ErrLavagemNotFound, "Lavagem não encontrada", nil)

	case errors.Is(err, lavagem.ErrFuncionarioNaoEncontrado):
		apiErrors.WriteError(w, apiErrors.ErrFuncionarioNotFound, "Funcionário não encontrado", nil)

	case errors.Is(err, lavagem.ErrFotoNaoEncontrada):
		apiErrors.WriteError(w, apiErrors.ErrFotoNotFound, "Lavagem não possui foto", nil)

	case errors.Is(err, lavagem.ErrDescricaoObrigatoria):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Descrição da lavagem é obrigatória", nil)

	case errors.Is(err, lavagem.ErrPrecoInvalido):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Preço deve ser maior que zero", nil)

	case errors.Is(err, utils.ErrDataInvalida):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data deve estar no formato YYYY-MM-DD", nil)

	default:
		logrus.WithError(err).Error("Erro ao processar requisição de lavagem")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar requisição", nil)
	}
}
