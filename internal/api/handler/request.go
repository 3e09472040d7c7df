package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/lavajato/lava-jato-api/internal/domain"
	"github.com/lavajato/lava-jato-api/pkg/middleware"
)

func pathParam(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

// semanaOffset lê o parâmetro de consulta "semana" (0 = semana atual,
// 1 = anterior e assim por diante). Valor ausente ou inválido vira 0.
func semanaOffset(r *http.Request) int {
	valor := r.URL.Query().Get("semana")
	if valor == "" {
		return 0
	}

	offset, err := strconv.Atoi(valor)
	if err != nil {
		return 0
	}
	return offset
}

// tenantID extrai o ID do lava jato logado a partir das claims do token.
// Retorna nil quando a rota foi alcançada sem autenticação.
func tenantID(r *http.Request) *string {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		return nil
	}
	return &claims.UserID
}
