// Package app monta as dependências compartilhadas pela API e pela CLI
package app

import (
	"context"
	"fmt"

	"github.com/vfg2006/sales-plan-sync/infrastructure/database/postgres"
	"github.com/vfg2006/sales-plan-sync/infrastructure/integrator/googlesheets"
	"github.com/vfg2006/sales-plan-sync/infrastructure/integrator/googlesheets/sheetsclient"
	"github.com/vfg2006/sales-plan-sync/infrastructure/integrator/moysklad"
	"github.com/vfg2006/sales-plan-sync/infrastructure/integrator/moysklad/moyskladclient"
	"github.com/vfg2006/sales-plan-sync/infrastructure/integrator/telegram"
	"github.com/vfg2006/sales-plan-sync/infrastructure/integrator/telegram/telegramclient"
	"github.com/vfg2006/sales-plan-sync/infrastructure/lock"
	"github.com/vfg2006/sales-plan-sync/infrastructure/repository"
	"github.com/vfg2006/sales-plan-sync/internal/api/handler"
	"github.com/vfg2006/sales-plan-sync/internal/config"
	"github.com/vfg2006/sales-plan-sync/internal/usecases/reconciling"
	"github.com/vfg2006/sales-plan-sync/internal/usecases/salesplan"
	"github.com/vfg2006/sales-plan-sync/internal/usecases/synchronizing"
	"github.com/vfg2006/sales-plan-sync/pkg/log"
)

type App struct {
	Config       *config.Config
	Synchronizer *synchronizing.Service
	Runs         repository.SyncRunRepository
	Telegram     telegram.TelegramIntegrator
	Checks       []handler.HealthCheck

	closers []func() error
}

// New conecta os integradores e o armazenamento opcional (Postgres e Redis).
// Credenciais ausentes já foram barradas por config.Validate.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	erpClient, err := moyskladclient.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente do MoySklad: %w", err)
	}
	erp := moysklad.New(cfg, erpClient)

	sheetsClient, err := sheetsclient.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente do Google Sheets: %w", err)
	}
	sheets := googlesheets.New(cfg, sheetsClient)

	app.Runs = repository.NoopSyncRunRepository{}
	if cfg.Database.Enabled {
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
		}
		log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")

		app.Runs = repository.NewSyncRunRepository(conn)
		app.Checks = append(app.Checks, handler.HealthCheck{Name: "postgres", Check: conn.Ping})
		app.closers = append(app.closers, conn.Close)
	}

	var locker lock.Locker = lock.NewMemoryLocker()
	if cfg.Redis.Addr != "" {
		redisLocker := lock.NewRedisLocker(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.LockTTL)
		if err := redisLocker.Ping(ctx); err != nil {
			app.Close()
			return nil, fmt.Errorf("erro ao conectar ao Redis: %w", err)
		}
		log.L.WithField("address", cfg.Redis.Addr).Info("Lock distribuído via Redis habilitado")

		locker = redisLocker
		app.Checks = append(app.Checks, handler.HealthCheck{Name: "redis", Check: redisLocker.Ping})
		app.closers = append(app.closers, redisLocker.Close)
	}

	app.Telegram = telegram.NoopIntegrator{}
	if cfg.Telegram.BotToken != "" {
		tgClient, err := telegramclient.NewClient(cfg)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("erro ao criar cliente do Telegram: %w", err)
		}
		app.Telegram = telegram.New(cfg, tgClient)
	}

	app.Synchronizer = synchronizing.New(
		erp,
		sheets,
		salesplan.New(cfg, sheets),
		reconciling.New(cfg, erp),
		locker,
		app.Runs,
	)

	return app, nil
}

// Close libera conexões na ordem inversa da abertura
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			log.L.WithError(err).Warn("Erro ao encerrar recurso")
		}
	}
	a.closers = nil
}
