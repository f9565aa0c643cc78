package telegramclient

import (
	"context"
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
	telegramdomain "github.com/vfg2006/sales-plan-sync/infrastructure/integrator/telegram/domain"
	"github.com/vfg2006/sales-plan-sync/internal/config"
)

const pollTimeout = 60

type Client interface {
	SendMessage(chatID int64, text string, markdown bool) error
	SendDocument(chatID int64, filename string, data []byte, caption string) error
	SetCommands(commands []telegramdomain.Command) error
	Updates(ctx context.Context) <-chan telegramdomain.Update
}

type TelegramClient struct {
	bot *tgbotapi.BotAPI
}

func NewClient(cfg *config.Config) (Client, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar o bot do Telegram: %w", err)
	}
	bot.Debug = cfg.Telegram.Debug

	logrus.WithField("bot", bot.Self.UserName).Info("telegram: bot autenticado")

	return &TelegramClient{bot: bot}, nil
}

// NewClientWithEndpoint é usado quando a API do Telegram está atrás de outro host
func NewClientWithEndpoint(token, endpoint string, httpClient *http.Client) (*TelegramClient, error) {
	bot, err := tgbotapi.NewBotAPIWithClient(token, endpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar o bot do Telegram: %w", err)
	}
	return &TelegramClient{bot: bot}, nil
}

func (c *TelegramClient) SendMessage(chatID int64, text string, markdown bool) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if markdown {
		msg.ParseMode = tgbotapi.ModeMarkdown
	}

	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("erro ao enviar mensagem para o chat %d: %w", chatID, err)
	}
	return nil
}

func (c *TelegramClient) SendDocument(chatID int64, filename string, data []byte, caption string) error {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: filename, Bytes: data})
	doc.Caption = caption

	if _, err := c.bot.Send(doc); err != nil {
		return fmt.Errorf("erro ao enviar o arquivo %s para o chat %d: %w", filename, chatID, err)
	}
	return nil
}

func (c *TelegramClient) SetCommands(commands []telegramdomain.Command) error {
	botCommands := make([]tgbotapi.BotCommand, 0, len(commands))
	for _, command := range commands {
		botCommands = append(botCommands, tgbotapi.BotCommand{
			Command:     command.Name,
			Description: command.Description,
		})
	}

	if _, err := c.bot.Request(tgbotapi.NewSetMyCommands(botCommands...)); err != nil {
		return fmt.Errorf("erro ao registrar os comandos do bot: %w", err)
	}
	return nil
}

// Updates inicia o long polling. O canal é fechado quando ctx termina.
func (c *TelegramClient) Updates(ctx context.Context) <-chan telegramdomain.Update {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = pollTimeout

	source := c.bot.GetUpdatesChan(updateConfig)
	out := make(chan telegramdomain.Update)

	go func() {
		defer close(out)
		defer c.bot.StopReceivingUpdates()

		for {
			select {
			case <-ctx.Done():
				return
			case update, ok := <-source:
				if !ok {
					return
				}
				converted, ok := ToUpdate(update)
				if !ok {
					continue
				}
				select {
				case out <- converted:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// ToUpdate converte o update da API; updates sem mensagem de texto são ignorados
func ToUpdate(update tgbotapi.Update) (telegramdomain.Update, bool) {
	message := update.Message
	if message == nil || message.Chat == nil {
		return telegramdomain.Update{}, false
	}

	converted := telegramdomain.Update{
		UpdateID:  update.UpdateID,
		ChatID:    message.Chat.ID,
		MessageID: message.MessageID,
		Text:      message.Text,
	}
	if message.From != nil {
		converted.Username = message.From.UserName
	}
	if message.IsCommand() {
		converted.Command = message.Command()
		converted.Arguments = message.CommandArguments()
	}

	return converted, true
}
