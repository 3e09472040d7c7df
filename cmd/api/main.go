package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/lavajato/lava-jato-api/infrastructure/database/postgres"
	"github.com/lavajato/lava-jato-api/infrastructure/migration"
	"github.com/lavajato/lava-jato-api/infrastructure/repository"
	"github.com/lavajato/lava-jato-api/internal/api"
	"github.com/lavajato/lava-jato-api/internal/config"
	"github.com/lavajato/lava-jato-api/internal/scheduler"
	"github.com/lavajato/lava-jato-api/internal/usecases/authenticating"
	"github.com/lavajato/lava-jato-api/internal/usecases/despesa"
	"github.com/lavajato/lava-jato-api/internal/usecases/funcionario"
	"github.com/lavajato/lava-jato-api/internal/usecases/lavagem"
	"github.com/lavajato/lava-jato-api/internal/usecases/reporting"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	// Evolui o schema antes de aceitar requisições
	if err := migration.NewMigrator(pgConn).Run(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrations")
	}

	usuarioRepo := repository.NewUsuarioRepository(pgConn)
	funcionarioRepo := repository.NewFuncionarioRepository(pgConn)
	lavagemRepo := repository.NewLavagemRepository(pgConn)
	despesaRepo := repository.NewDespesaRepository(pgConn)
	snapshotRepo := repository.NewResumoSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(usuarioRepo, cfg)
	funcionarioService := funcionario.NewService(funcionarioRepo)
	lavagemService := lavagem.NewService(lavagemRepo, funcionarioRepo)
	despesaService := despesa.NewService(despesaRepo)
	reporter := reporting.NewService(lavagemRepo, despesaRepo, funcionarioRepo, snapshotRepo)

	// Agendador que fecha o resumo da semana anterior de cada lava jato
	resumoSyncService := scheduler.NewResumoSemanalSyncService(
		usuarioRepo,
		snapshotRepo,
		reporter,
		cfg,
	)

	if err := resumoSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de fechamento do resumo semanal")
	} else {
		logrus.Info("Agendador de fechamento do resumo semanal iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		pgConn,
		authenticator,
		funcionarioService,
		lavagemService,
		despesaService,
		reporter,
		resumoSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
