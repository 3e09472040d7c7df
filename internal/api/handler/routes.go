package handler

import (
	"net/http"

	"github.com/lavajato/lava-jato-api/infrastructure/database/postgres"
	"github.com/lavajato/lava-jato-api/internal/api/handler/router"
	"github.com/lavajato/lava-jato-api/internal/usecases/authenticating"
	"github.com/lavajato/lava-jato-api/internal/usecases/despesa"
	"github.com/lavajato/lava-jato-api/internal/usecases/funcionario"
	"github.com/lavajato/lava-jato-api/internal/usecases/lavagem"
	"github.com/lavajato/lava-jato-api/internal/usecases/reporting"
)

func Healthcheck(conn postgres.Conn) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/health/db",
			Method:  http.MethodGet,
			Handler: DatabaseHealthHandler(conn),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/registro",
			Method:  http.MethodPost,
			Handler: Registro(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
		{
			Path:    "/v1/me/negocio",
			Method:  http.MethodPut,
			Handler: UpdateNomeNegocio(service),
		},
	}
}

func Funcionarios(service funcionario.Manager, reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/funcionarios",
			Method:  http.MethodGet,
			Handler: ListFuncionarios(service),
		},
		{
			Path:    "/v1/funcionarios",
			Method:  http.MethodPost,
			Handler: CriarFuncionario(service),
		},
		{
			Path:    "/v1/funcionarios/:id",
			Method:  http.MethodGet,
			Handler: GetFuncionario(service),
		},
		{
			Path:    "/v1/funcionarios/:id",
			Method:  http.MethodPut,
			Handler: AtualizarFuncionario(service),
		},
		{
			Path:    "/v1/funcionarios/:id",
			Method:  http.MethodDelete,
			Handler: ExcluirFuncionario(service),
		},
		{
			Path:    "/v1/funcionarios/:id/comissao",
			Method:  http.MethodGet,
			Handler: ComissaoFuncionario(reporter),
		},
	}
}

func Lavagens(service lavagem.Manager, reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/lavagens",
			Method:  http.MethodGet,
			Handler: ListLavagens(service, reporter),
		},
		{
			Path:    "/v1/lavagens",
			Method:  http.MethodPost,
			Handler: CriarLavagem(service),
		},
		{
			Path:    "/v1/lavagens/:id",
			Method:  http.MethodPut,
			Handler: AtualizarLavagem(service),
		},
		{
			Path:    "/v1/lavagens/:id",
			Method:  http.MethodDelete,
			Handler: ExcluirLavagem(service),
		},
		{
			Path:    "/v1/lavagens/:id/foto",
			Method:  http.MethodGet,
			Handler: GetFotoLavagem(service),
		},
	}
}

func Despesas(service despesa.Manager, reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/despesas",
			Method:  http.MethodGet,
			Handler: ListDespesas(service, reporter),
		},
		{
			Path:    "/v1/despesas",
			Method:  http.MethodPost,
			Handler: CriarDespesa(service),
		},
		{
			Path:    "/v1/despesas/:id",
			Method:  http.MethodPut,
			Handler: AtualizarDespesa(service),
		},
		{
			Path:    "/v1/despesas/:id",
			Method:  http.MethodDelete,
			Handler: ExcluirDespesa(service),
		},
	}
}

func Dashboard(reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(reporter),
		},
		{
			Path:    "/v1/resumos",
			Method:  http.MethodGet,
			Handler: GetResumoFechado(reporter),
		},
	}
}

// Publico agrupa a superfície sem autenticação: a página de auto-atendimento
// dos funcionários (identificados pelo código curto) e a página do negócio.
func Publico(
	reporter reporting.Reporter,
	authenticator authenticating.Authenticator,
	funcionarioService funcionario.Manager,
	lavagemService lavagem.Manager,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/publico/funcionarios",
			Method:  http.MethodGet,
			Handler: ListFuncionariosPublicos(funcionarioService),
		},
		{
			Path:    "/v1/publico/funcionarios/:codigo",
			Method:  http.MethodGet,
			Handler: ComissaoPublica(reporter),
		},
		{
			Path:    "/v1/publico/funcionarios/:codigo/lavagens",
			Method:  http.MethodPost,
			Handler: CriarLavagemPublica(lavagemService),
		},
		{
			Path:    "/v1/publico/lavagens/:id/foto",
			Method:  http.MethodGet,
			Handler: GetFotoLavagem(lavagemService),
		},
		{
			Path:    "/v1/publico/negocio/:slug",
			Method:  http.MethodGet,
			Handler: NegocioPublico(authenticator),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
