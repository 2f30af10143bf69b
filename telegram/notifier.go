// Copyright (c) 2025 BVK Chaitanya

// Package telegram pushes trader notifications to a Telegram chat.
package telegram

import (
	"context"
	"log/slog"
	"time"

	"github.com/bvk/tradepost/notify"
	"github.com/go-telegram/bot"
)

type Notifier struct {
	bot *bot.Bot

	chatID int64

	timeout time.Duration
}

// NewNotifier creates a notifier sending every event as a message to
// the given chat.
func NewNotifier(token string, chatID int64) (*Notifier, error) {
	b, err := bot.New(token)
	if err != nil {
		return nil, err
	}
	return &Notifier{
		bot:     b,
		chatID:  chatID,
		timeout: 10 * time.Second,
	}, nil
}

func (n *Notifier) PushNotification(e notify.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	m := &bot.SendMessageParams{
		ChatID: n.chatID,
		Text:   e.String(),
	}
	if _, err := n.bot.SendMessage(ctx, m); err != nil {
		slog.Warn("could not send telegram notification", "event", e.EventName(), "error", err)
	}
}
