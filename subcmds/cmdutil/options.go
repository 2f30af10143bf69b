// Copyright (c) 2025 BVK Chaitanya

package cmdutil

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bvk/tradepost/money"
	"github.com/bvk/tradepost/telegram"
	"github.com/bvk/tradepost/trader"
	"github.com/shopspring/decimal"
)

// TraderOptions builds the runtime collaborators for trader accounts
// from the environment. TRADEPOST_TELEGRAM_TOKEN and
// TRADEPOST_TELEGRAM_CHAT enable Telegram notifications;
// TRADEPOST_TAX_RATE sets a flat sales tax percentage.
func TraderOptions() (*trader.Options, error) {
	opts := &trader.Options{}

	token := os.Getenv("TRADEPOST_TELEGRAM_TOKEN")
	chat := os.Getenv("TRADEPOST_TELEGRAM_CHAT")
	if len(token) != 0 && len(chat) != 0 {
		id, err := strconv.ParseInt(chat, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("could not parse telegram chat id %q: %w", chat, err)
		}
		tg, err := telegram.NewNotifier(token, id)
		if err != nil {
			return nil, fmt.Errorf("could not create telegram notifier: %w", err)
		}
		opts.Notifier = tg
	}

	if rate := os.Getenv("TRADEPOST_TAX_RATE"); len(rate) != 0 {
		pct, err := decimal.NewFromString(rate)
		if err != nil {
			return nil, fmt.Errorf("could not parse tax rate %q: %w", rate, err)
		}
		opts.TaxPolicy = money.FlatRate(pct)
	}
	return opts, nil
}
