package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/lavajato/lava-jato-api/infrastructure/database/postgres"
	"github.com/lavajato/lava-jato-api/internal/api/handler"
	"github.com/lavajato/lava-jato-api/internal/api/handler/router"
	"github.com/lavajato/lava-jato-api/internal/config"
	"github.com/lavajato/lava-jato-api/internal/scheduler"
	"github.com/lavajato/lava-jato-api/internal/usecases/authenticating"
	"github.com/lavajato/lava-jato-api/internal/usecases/despesa"
	"github.com/lavajato/lava-jato-api/internal/usecases/funcionario"
	"github.com/lavajato/lava-jato-api/internal/usecases/lavagem"
	"github.com/lavajato/lava-jato-api/internal/usecases/reporting"
	"github.com/lavajato/lava-jato-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	conn postgres.Conn,
	authenticator authenticating.Authenticator,
	funcionarioService funcionario.Manager,
	lavagemService lavagem.Manager,
	despesaService despesa.Manager,
	reporter reporting.Reporter,
	resumoSyncService *scheduler.ResumoSemanalSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		ResumoSemanalSyncService: resumoSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(conn)...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Funcionarios(funcionarioService, reporter)...),
		router.WithRoutes(handler.Lavagens(lavagemService, reporter)...),
		router.WithRoutes(handler.Despesas(despesaService, reporter)...),
		router.WithRoutes(handler.Dashboard(reporter)...),
		router.WithRoutes(handler.Publico(reporter, authenticator, funcionarioService, lavagemService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
