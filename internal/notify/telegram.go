package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Notifier delivers a human-readable line-set to the operator channel.
// Delivery is strictly best-effort: implementations log failures and never
// surface them, so a broken channel can never change an HTTP response.
type Notifier interface {
	Send(ctx context.Context, text string)
}

// Telegram posts messages to a fixed operator chat via the Bot API.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger *zap.Logger
}

func NewTelegram(token string, chatID int64, logger *zap.Logger) (*Telegram, error) {
	botAPI, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	logger.Info("Notification bot authorized",
		zap.String("username", botAPI.Self.UserName),
		zap.Int64("chat_id", chatID))

	return &Telegram{bot: botAPI, chatID: chatID, logger: logger}, nil
}

func (t *Telegram) Send(_ context.Context, text string) {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML"

	if _, err := t.bot.Send(msg); err != nil {
		t.logger.Error("Failed to send operator notification", zap.Error(err))
	}
}

// Disabled stands in when no bot token or chat id is configured.
type Disabled struct {
	logger *zap.Logger
}

func NewDisabled(logger *zap.Logger) *Disabled {
	return &Disabled{logger: logger}
}

func (d *Disabled) Send(context.Context, string) {
	d.logger.Warn("Operator notifications disabled - no bot token or chat ID configured")
}
