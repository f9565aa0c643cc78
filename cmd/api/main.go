package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-plan-sync/internal/api"
	"github.com/vfg2006/sales-plan-sync/internal/app"
	"github.com/vfg2006/sales-plan-sync/internal/config"
	"github.com/vfg2006/sales-plan-sync/internal/scheduler"
	"github.com/vfg2006/sales-plan-sync/internal/telegrambot"
	"github.com/vfg2006/sales-plan-sync/internal/usecases/authenticating"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := cfg.Validate(); err != nil {
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

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	application, err := app.New(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar dependências")
	}
	defer application.Close()

	authenticator := authenticating.NewService(cfg)

	salesReportSyncService := scheduler.NewSalesReportSyncService(
		application.Synchronizer,
		application.Telegram,
		cfg,
	)

	if err := salesReportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de relatórios de vendas")
	} else {
		logrus.Info("Agendador de relatórios de vendas iniciado com sucesso")
	}

	if cfg.Telegram.BotEnabled {
		bot := telegrambot.New(cfg, application.Telegram, application.Synchronizer)
		go func() {
			if err := bot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logrus.WithError(err).Error("Bot do Telegram encerrado com erro")
			}
		}()
	}

	server, err := api.New(
		cfg,
		application.Synchronizer,
		application.Runs,
		authenticator,
		salesReportSyncService,
		application.Checks...,
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
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
