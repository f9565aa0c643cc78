// Package scheduler contém os serviços de agendamento dos relatórios de vendas
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-plan-sync/infrastructure/integrator/telegram"
	"github.com/vfg2006/sales-plan-sync/internal/config"
	"github.com/vfg2006/sales-plan-sync/internal/domain"
	"github.com/vfg2006/sales-plan-sync/internal/usecases/reporting"
	"github.com/vfg2006/sales-plan-sync/internal/usecases/synchronizing"
	"github.com/vfg2006/sales-plan-sync/pkg/log"
)

const (
	messageStarted   = "🚀 Запущены автоматические отчеты"
	messageSucceeded = "✅ Автоматические отчеты успешно выполнены"
	messageFailed    = "❌ Ошибка автоматических отчетов: %v"
)

type SalesReportSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	Pause        time.Duration
	ReportChatID int64
}

// SalesReportSyncService roda diariamente a sincronização do período
// seguida do relatório do dia enviado ao chat de relatórios.
type SalesReportSyncService struct {
	scheduler           *gocron.Scheduler
	synchronizer        synchronizing.Synchronizer
	telegram            telegram.TelegramIntegrator
	config              SalesReportSyncConfig
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewSalesReportSyncService(
	synchronizer synchronizing.Synchronizer,
	telegramService telegram.TelegramIntegrator,
	cfg *config.Config,
) *SalesReportSyncService {
	syncConfig := SalesReportSyncConfig{
		CronSchedule: cfg.SalesReportSync.CronSchedule, // Default: 13:15 UTC
		SyncEnabled:  cfg.SalesReportSync.Enabled,      // Default: desabilitado
		Pause:        cfg.SalesReportSync.Pause,
		ReportChatID: cfg.Telegram.ReportChatID,
	}

	// o cron é sempre avaliado em UTC
	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"pause":         syncConfig.Pause.String(),
	}).Info("Configuração do agendador de relatórios de vendas carregada")

	return &SalesReportSyncService{
		scheduler:    scheduler,
		synchronizer: synchronizer,
		telegram:     telegramService,
		config:       syncConfig,
		now:          time.Now,
	}
}

func (s *SalesReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de relatórios de vendas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de relatórios de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunReports(ctx); err != nil {
			logrus.WithError(err).Error("Erro na execução automática dos relatórios de vendas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatórios de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de relatórios de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

// RunReports executa o ciclo completo: período, pausa e relatório do dia
func (s *SalesReportSyncService) RunReports(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Relatórios de vendas já estão em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	ctx, _ = log.EnsureCorrelationID(ctx)
	logger := log.ForContext(ctx).WithField("trigger", "cron")

	err := s.runReports(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		logger.WithError(err).Error("Falha nos relatórios automáticos")
		s.notify(ctx, fmt.Sprintf(messageFailed, err))
		return err
	}

	s.notify(ctx, messageSucceeded)
	logger.Info("Relatórios automáticos concluídos")
	return nil
}

func (s *SalesReportSyncService) runReports(ctx context.Context) error {
	s.notify(ctx, messageStarted)

	if _, err := s.synchronizer.SynchronizePeriod(ctx); err != nil {
		return fmt.Errorf("sincronização do período: %w", err)
	}

	if s.config.Pause > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.config.Pause):
		}
	}

	today := domain.StartOfDay(s.now().UTC())
	day, err := s.synchronizer.SynchronizeDay(ctx, today)
	if err != nil {
		return fmt.Errorf("relatório do dia: %w", err)
	}

	message := reporting.SalesTableMessage(day.Reports, day.Day)
	if err := s.telegram.NotifyMarkdown(ctx, s.config.ReportChatID, message); err != nil {
		return fmt.Errorf("envio do relatório do dia: %w", err)
	}

	return nil
}

// falhas de notificação não interrompem o ciclo
func (s *SalesReportSyncService) notify(ctx context.Context, text string) {
	if err := s.telegram.Notify(ctx, s.config.ReportChatID, text); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao notificar o chat de relatórios")
	}
}

// TriggerManualSync inicia manualmente os relatórios; devolve false se já houver um ciclo em andamento
func (s *SalesReportSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Relatórios de vendas já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando execução manual dos relatórios de vendas")
	go func() {
		ctx, _ := log.WithCorrelationID(context.Background())
		if err := s.RunReports(ctx); err != nil {
			logrus.WithError(err).Error("Erro na execução manual dos relatórios de vendas")
		}
	}()
	return true
}

// GetStatus retorna o status atual do agendador
func (s *SalesReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_pause":             s.config.Pause.String(),
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
