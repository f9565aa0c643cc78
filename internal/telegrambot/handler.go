// Package telegrambot atende os comandos do bot de relatórios
package telegrambot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/sales-plan-sync/infrastructure/integrator/telegram"
	telegramdomain "github.com/vfg2006/sales-plan-sync/infrastructure/integrator/telegram/domain"
	"github.com/vfg2006/sales-plan-sync/internal/config"
	"github.com/vfg2006/sales-plan-sync/internal/domain"
	"github.com/vfg2006/sales-plan-sync/internal/usecases/reporting"
	"github.com/vfg2006/sales-plan-sync/internal/usecases/synchronizing"
	"github.com/vfg2006/sales-plan-sync/pkg/log"
	"github.com/vfg2006/sales-plan-sync/pkg/utils"
)

const (
	CommandSalesPeriodReport = "sales_period_report"
	CommandTodayReport       = "today_report"
	CommandStoreReport       = "store_report"
	CommandEfficiency        = "efficiency"
	CommandExport            = "export"
	CommandHelp              = "help"
	CommandStart             = "start"
)

const (
	messageAccessDenied   = "⛔ Доступ запрещен"
	messageUnknown        = "🤷 Неизвестная команда. Список команд: /help"
	messageInProgress     = "⏳ Синхронизация уже выполняется, попробуйте позже"
	messagePeriodStarted  = "🔄 Запускаю синхронизацию плана продаж..."
	messageTodayStarted   = "🔄 Формирую отчет за день..."
	messageExportStarted  = "🔄 Формирую файл с продажами за период..."
	messageFailedTemplate = "❌ Ошибка: %v"
	messageInvalidDate    = "❌ Неверная дата. Используйте формат ГГГГ-ММ-ДД"
)

var commands = []telegramdomain.Command{
	{Name: CommandSalesPeriodReport, Description: "Обновить план продаж за период"},
	{Name: CommandTodayReport, Description: "Продажи за сегодня по адресам"},
	{Name: CommandStoreReport, Description: "Детальный отчет по каждому адресу"},
	{Name: CommandEfficiency, Description: "Эффективность продаж за сегодня"},
	{Name: CommandExport, Description: "Выгрузить продажи за период в Excel"},
	{Name: CommandHelp, Description: "Список команд"},
}

type Handler struct {
	telegram     telegram.TelegramIntegrator
	synchronizer synchronizing.Synchronizer
	allowedChats map[int64]bool
	now          func() time.Time
}

func New(cfg *config.Config, telegramService telegram.TelegramIntegrator, synchronizer synchronizing.Synchronizer) *Handler {
	allowed := make(map[int64]bool, len(cfg.Telegram.AllowedChats))
	for _, chatID := range cfg.Telegram.AllowedChats {
		allowed[chatID] = true
	}

	return &Handler{
		telegram:     telegramService,
		synchronizer: synchronizer,
		allowedChats: allowed,
		now:          time.Now,
	}
}

func Commands() []telegramdomain.Command {
	return commands
}

// Run registra os comandos e atende as mensagens até o ctx ser cancelado
func (h *Handler) Run(ctx context.Context) error {
	if err := h.telegram.RegisterCommands(ctx, commands); err != nil {
		log.L.WithError(err).Warn("Erro ao registrar comandos do bot")
	}

	log.L.Info("Bot do Telegram aguardando comandos")

	for update := range h.telegram.Updates(ctx) {
		if err := h.Handle(ctx, update); err != nil {
			log.L.WithFields(log.Fields{
				"chat_id": update.ChatID,
				"command": update.Command,
			}).WithError(err).Error("Erro ao atender comando do bot")
		}
	}

	log.L.Info("Bot do Telegram encerrado")
	return ctx.Err()
}

// Handle atende um único comando; mensagens comuns são ignoradas
func (h *Handler) Handle(ctx context.Context, update telegramdomain.Update) error {
	if !update.IsCommand() {
		return nil
	}

	ctx, _ = log.EnsureCorrelationID(ctx)
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"chat_id": update.ChatID,
		"trigger": "telegram/" + update.Command,
	})

	if len(h.allowedChats) > 0 && !h.allowedChats[update.ChatID] {
		logger.Warn("Comando recebido de chat não autorizado")
		return h.telegram.Notify(ctx, update.ChatID, messageAccessDenied)
	}

	logger.Info("Comando recebido")

	switch update.Command {
	case CommandSalesPeriodReport:
		return h.salesPeriodReport(ctx, update)
	case CommandTodayReport:
		return h.todayReport(ctx, update)
	case CommandStoreReport:
		return h.storeReport(ctx, update)
	case CommandEfficiency:
		return h.efficiency(ctx, update)
	case CommandExport:
		return h.export(ctx, update)
	case CommandHelp, CommandStart:
		return h.telegram.Notify(ctx, update.ChatID, HelpMessage())
	default:
		return h.telegram.Notify(ctx, update.ChatID, messageUnknown)
	}
}

func (h *Handler) salesPeriodReport(ctx context.Context, update telegramdomain.Update) error {
	if err := h.telegram.Notify(ctx, update.ChatID, messagePeriodStarted); err != nil {
		return err
	}

	result, err := h.synchronizer.SynchronizePeriod(ctx)
	if err != nil {
		return h.replyError(ctx, update.ChatID, err)
	}

	text := fmt.Sprintf("✅ План продаж обновлен\n📅 %s\n🏪 Адресов: %d\n📝 Обновлено ячеек: %d",
		result.Period.Label(), len(result.Snapshots), result.Written)
	if len(result.Misses) > 0 {
		text += "\n⚠️ Не найдены в таблице: " + strings.Join(result.Misses, ", ")
	}

	return h.telegram.Notify(ctx, update.ChatID, text)
}

func (h *Handler) todayReport(ctx context.Context, update telegramdomain.Update) error {
	date, ok := h.dateArgument(update)
	if !ok {
		return h.telegram.Notify(ctx, update.ChatID, messageInvalidDate)
	}

	if err := h.telegram.Notify(ctx, update.ChatID, messageTodayStarted); err != nil {
		return err
	}

	day, err := h.synchronizer.SynchronizeDay(ctx, date)
	if err != nil {
		return h.replyError(ctx, update.ChatID, err)
	}

	return h.telegram.NotifyMarkdown(ctx, update.ChatID, reporting.SalesTableMessage(day.Reports, day.Day))
}

func (h *Handler) storeReport(ctx context.Context, update telegramdomain.Update) error {
	date, ok := h.dateArgument(update)
	if !ok {
		return h.telegram.Notify(ctx, update.ChatID, messageInvalidDate)
	}

	day, err := h.synchronizer.SynchronizeDay(ctx, date)
	if err != nil {
		return h.replyError(ctx, update.ChatID, err)
	}

	for _, report := range day.Reports {
		message := reporting.StoreReportMessage(report.Address, reporting.StoreLines(report), day.Day)
		if err := h.telegram.NotifyMarkdown(ctx, update.ChatID, message); err != nil {
			return err
		}
	}

	return nil
}

func (h *Handler) efficiency(ctx context.Context, update telegramdomain.Update) error {
	date, ok := h.dateArgument(update)
	if !ok {
		return h.telegram.Notify(ctx, update.ChatID, messageInvalidDate)
	}

	reports, err := h.synchronizer.Efficiency(ctx, date)
	if err != nil {
		return h.replyError(ctx, update.ChatID, err)
	}

	return h.telegram.NotifyMarkdown(ctx, update.ChatID, reporting.EfficiencyMessage(reports, date.Format(domain.PeriodDateLayout)))
}

func (h *Handler) export(ctx context.Context, update telegramdomain.Update) error {
	if err := h.telegram.Notify(ctx, update.ChatID, messageExportStarted); err != nil {
		return err
	}

	result, err := h.synchronizer.PeriodReport(ctx)
	if err != nil {
		return h.replyError(ctx, update.ChatID, err)
	}

	data, err := reporting.ExportXLSX(result.Snapshots, result.Products, result.Period.Label())
	if err != nil {
		return h.replyError(ctx, update.ChatID, err)
	}

	return h.telegram.SendDocument(ctx, update.ChatID, reporting.ExportFilename(result.Period), data, "📊 "+result.Period.Label())
}

// dateArgument aceita uma data opcional depois do comando; sem argumento vale o dia atual em UTC
func (h *Handler) dateArgument(update telegramdomain.Update) (time.Time, bool) {
	today := domain.StartOfDay(h.now().UTC())
	date, err := utils.ParseDate(strings.TrimSpace(update.Arguments), today)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

func (h *Handler) replyError(ctx context.Context, chatID int64, err error) error {
	if errors.Is(err, synchronizing.ErrSyncInProgress) {
		return h.telegram.Notify(ctx, chatID, messageInProgress)
	}

	log.ForContext(ctx).WithError(err).Error("Falha ao executar comando do bot")
	if notifyErr := h.telegram.Notify(ctx, chatID, fmt.Sprintf(messageFailedTemplate, err)); notifyErr != nil {
		return notifyErr
	}
	return err
}

func HelpMessage() string {
	var message strings.Builder
	message.WriteString("📋 Доступные команды:\n\n")
	for _, command := range commands {
		message.WriteString("/" + command.Name + " - " + command.Description + "\n")
	}
	return message.String()
}
