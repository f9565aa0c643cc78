package telegram

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"

	"github.com/pkg/errors"
	telegramdomain "github.com/vfg2006/sales-plan-sync/infrastructure/integrator/telegram/domain"
	"github.com/vfg2006/sales-plan-sync/infrastructure/integrator/telegram/telegramclient"
	"github.com/vfg2006/sales-plan-sync/internal/config"
)

type TelegramIntegrator interface {
	Notify(ctx context.Context, chatID int64, text string) error
	NotifyMarkdown(ctx context.Context, chatID int64, text string) error
	SendDocument(ctx context.Context, chatID int64, filename string, data []byte, caption string) error
	RegisterCommands(ctx context.Context, commands []telegramdomain.Command) error
	Updates(ctx context.Context) <-chan telegramdomain.Update
}

type TelegramService struct {
	cfg    *config.Config
	Client telegramclient.Client
}

func New(cfg *config.Config, client telegramclient.Client) TelegramIntegrator {
	return &TelegramService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *TelegramService) Notify(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return errors.Wrap(s.Client.SendMessage(chatID, text, false), "telegram")
}

func (s *TelegramService) NotifyMarkdown(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return errors.Wrap(s.Client.SendMessage(chatID, text, true), "telegram")
}

func (s *TelegramService) SendDocument(ctx context.Context, chatID int64, filename string, data []byte, caption string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return errors.Wrap(s.Client.SendDocument(chatID, filename, data, caption), "telegram")
}

func (s *TelegramService) RegisterCommands(ctx context.Context, commands []telegramdomain.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return errors.Wrap(s.Client.SetCommands(commands), "telegram")
}

func (s *TelegramService) Updates(ctx context.Context) <-chan telegramdomain.Update {
	return s.Client.Updates(ctx)
}

// NoopIntegrator é usado quando o bot está desabilitado; mensagens são descartadas
type NoopIntegrator struct{}

func (NoopIntegrator) Notify(context.Context, int64, string) error { return nil }
func (NoopIntegrator) NotifyMarkdown(context.Context, int64, string) error { return nil }
func (NoopIntegrator) SendDocument(context.Context, int64, string, []byte, string) error {
	return nil
}
func (NoopIntegrator) RegisterCommands(context.Context, []telegramdomain.Command) error { return nil }

func (NoopIntegrator) Updates(ctx context.Context) <-chan telegramdomain.Update {
	out := make(chan telegramdomain.Update)
	go func() {
		<-ctx.Done()
		close(out)
	}()
	return out
}
