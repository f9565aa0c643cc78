package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-plan-sync/infrastructure/repository"
	"github.com/vfg2006/sales-plan-sync/internal/api/handler"
	"github.com/vfg2006/sales-plan-sync/internal/api/handler/router"
	"github.com/vfg2006/sales-plan-sync/internal/config"
	"github.com/vfg2006/sales-plan-sync/internal/usecases/authenticating"
	"github.com/vfg2006/sales-plan-sync/internal/usecases/synchronizing"
	"github.com/vfg2006/sales-plan-sync/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	synchronizer synchronizing.Synchronizer,
	runs repository.SyncRunRepository,
	authenticator authenticating.Authenticator,
	cronJob handler.CronJob,
	checks ...handler.HealthCheck,
) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, synchronizer, runs, authenticator, cronJob, checks...),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta as rotas com a cadeia de middlewares; separado para testes
func NewHandler(
	config *config.Config,
	synchronizer synchronizing.Synchronizer,
	runs repository.SyncRunRepository,
	authenticator authenticating.Authenticator,
	cronJob handler.CronJob,
	checks ...handler.HealthCheck,
) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(checks...)...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Sync(synchronizer, runs)...),
		router.WithRoutes(handler.Reports(synchronizer)...),
		router.WithRoutes(handler.RetailStores(synchronizer)...),
		router.WithRoutes(handler.CronJobs(cronJob)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

// Run bloqueia até o ctx ser cancelado e então desliga o servidor de forma graciosa
func (s Server) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
