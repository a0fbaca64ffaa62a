package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-backoffice-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-backoffice-api/infrastructure/mailer"
	"github.com/vfg2006/retail-backoffice-api/infrastructure/repository"
	"github.com/vfg2006/retail-backoffice-api/internal/api"
	"github.com/vfg2006/retail-backoffice-api/internal/config"
	"github.com/vfg2006/retail-backoffice-api/internal/scheduler"
	"github.com/vfg2006/retail-backoffice-api/internal/usecases/authenticating"
	"github.com/vfg2006/retail-backoffice-api/internal/usecases/dashboarding"
	"github.com/vfg2006/retail-backoffice-api/internal/usecases/recovering"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	snapshotRepo := repository.NewDashboardSnapshotRepository(pgConn)

	notifier := mailer.NewSendGridNotifier(cfg.Mail)

	authenticator := authenticating.NewService(userRepo, cfg)
	recoverer := recovering.NewService(userRepo, notifier)
	dashboardService := dashboarding.NewService(saleRepo, productRepo)

	snapshotService := scheduler.NewDashboardSnapshotService(dashboardService, snapshotRepo, cfg)
	if err := snapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshot do dashboard")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		snapshotRepo,
		authenticator,
		recoverer,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria e valida a conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
