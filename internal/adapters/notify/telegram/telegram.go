// Package telegram posts rotation summaries to a Telegram chat.
package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier sends messages to one Telegram chat via a bot token.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// New creates a Telegram notifier. The underlying NewBotAPI call contacts
// api.telegram.org to verify the token.
func New(token string, chatID int64) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &Notifier{bot: bot, chatID: chatID}, nil
}

// Name identifies the notifier in logs.
func (n *Notifier) Name() string { return "telegram" }

// Notify sends the rotation summary as one message. The context is honored
// only up front; tgbotapi performs its own request handling.
func (n *Notifier) Notify(ctx context.Context, title, summary, footer string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(n.chatID, title+"\n"+summary+"\n"+footer)
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}
