package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lavajato/lava-jato-api/internal/domain"
	"github.com/lavajato/lava-jato-api/internal/usecases/funcionario"
	"github.com/lavajato/lava-jato-api/internal/usecases/reporting"
	"github.com/lavajato/lava-jato-api/pkg/apiErrors"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ListFuncionarios lista os funcionários do lava jato logado. Com o parâmetro
// "ativos=true" a lista é restrita aos funcionários ativos.
func ListFuncionarios(service funcionario.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		somenteAtivos := r.URL.Query().Get("ativos") == "true"

		funcionarios, err := service.ListFuncionarios(tenantID(r), somenteAtivos)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar funcionários")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar funcionários", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(funcionarios)
	}
}

func CriarFuncionario(service funcionario.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CriarFuncionarioRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		novo, err := service.CriarFuncionario(tenantID(r), &req)
		if err != nil {
			handleFuncionarioError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(novo)
	}
}

func GetFuncionario(service funcionario.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		funcionarioID := pathParam(r, "id")
		if funcionarioID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do funcionário não fornecido", nil)
			return
		}

		encontrado, err := service.GetFuncionario(funcionarioID)
		if err != nil {
			handleFuncionarioError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(encontrado)
	}
}

func AtualizarFuncionario(service funcionario.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		funcionarioID := pathParam(r, "id")
		if funcionarioID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do funcionário não fornecido", nil)
			return
		}

		var req domain.AtualizarFuncionarioRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		atualizado, err := service.AtualizarFuncionario(funcionarioID, &req)
		if err != nil {
			handleFuncionarioError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(atualizado)
	}
}

func ExcluirFuncionario(service funcionario.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		funcionarioID := pathParam(r, "id")
		if funcionarioID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do funcionário não fornecido", nil)
			return
		}

		if err := service.ExcluirFuncionario(funcionarioID); err != nil {
			handleFuncionarioError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ComissaoFuncionario devolve o extrato semanal de comissão do funcionário,
// com as fotos das lavagens quando "incluir_fotos=true".
func ComissaoFuncionario(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		funcionarioID := pathParam(r, "id")
		if funcionarioID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do funcionário não fornecido", nil)
			return
		}

		incluirFotos := r.URL.Query().Get("incluir_fotos") == "true"

		extrato, err := reporter.ComissaoDaSemana(funcionarioID, semanaOffset(r), incluirFotos)
		if err != nil {
			if errors.Is(err, reporting.ErrFuncionarioNaoEncontrado) {
				apiErrors.WriteError(w, apiErrors.ErrFuncionarioNotFound, "Funcionário não encontrado", nil)
				return
			}

			logrus.WithError(err).Error("Erro ao montar extrato de comissão")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar extrato de comissão", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(extrato)
	}
}

func handleFuncionarioError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, funcionario.ErrFuncionarioNaoEncontrado):
		apiErrors.WriteError(w, apiErrors.ErrFuncionarioNotFound, "Funcionário não encontrado", nil)

	case errors.Is(err, funcionario.ErrNomeObrigatorio):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do funcionário é obrigatório", nil)

	case errors.Is(err, funcionario.ErrPorcentagemInvalida):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Porcentagem de comissão deve estar entre 0 e 100", nil)

	default:
		logrus.WithError(err).Error("Erro ao processar requisição de funcionário")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar requisição", nil)
	}
}
