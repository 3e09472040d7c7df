package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lavajato/lava-jato-api/internal/domain"
	"github.com/lavajato/lava-jato-api/internal/usecases/funcionario"
	"github.com/lavajato/lava-jato-api/internal/usecases/lavagem"
	"github.com/lavajato/lava-jato-api/internal/usecases/reporting"
	"github.com/lavajato/lava-jato-api/pkg/apiErrors"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ListFuncionariosPublicos lista os funcionários ativos para a página de
// auto-atendimento, apenas com nome e código.
func ListFuncionariosPublicos(service funcionario.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		funcionarios, err := service.ListFuncionariosPublicos()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar funcionários públicos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar funcionários", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(funcionarios)
	}
}

// CriarLavagemPublica registra uma lavagem pela página pública: o funcionário
// se identifica pelo código curto e lança a própria lavagem.
func CriarLavagemPublica(service lavagem.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		codigo := pathParam(r, "codigo")
		if codigo == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Código do funcionário não fornecido", nil)
			return
		}

		var req domain.CriarLavagemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		nova, err := service.CriarLavagemPublica(codigo, &req)
		if err != nil {
			handleLavagemError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(nova)
	}
}

// ComissaoPublica é a página de auto-atendimento do funcionário: com o código
// curto ele consulta o próprio extrato semanal sem login. Fotos nunca são
// incluídas nessa superfície e códigos desconhecidos ou de funcionários
// inativos respondem 404, sem revelar qual dos dois casos ocorreu.
func ComissaoPublica(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		codigo := pathParam(r, "codigo")
		if codigo == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Código do funcionário não fornecido", nil)
			return
		}

		extrato, err := reporter.ComissaoPorCodigoPublico(codigo, semanaOffset(r))
		if err != nil {
			if errors.Is(err, reporting.ErrFuncionarioNaoEncontrado) {
				apiErrors.WriteError(w, apiErrors.ErrFuncionarioNotFound, "Funcionário não encontrado", nil)
				return
			}

			logrus.WithError(err).Error("Erro ao montar extrato público de comissão")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar extrato de comissão", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(extrato)
	}
}
