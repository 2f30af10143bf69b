// Copyright (c) 2025 BVK Chaitanya

package rules

import (
	"fmt"
	"time"

	"github.com/bvk/tradepost/money"
	"github.com/bvk/tradepost/trade"
	"golang.org/x/time/rate"
)

// Cooldown enforces a minimum delay between executions of a trade.
type Cooldown struct {
	// Every is the minimum time between two executions.
	Every time.Duration `json:"Every"`

	limiter *rate.Limiter
}

func (r *Cooldown) Name() string {
	return "cooldown"
}

func (r *Cooldown) getLimiter() *rate.Limiter {
	if r.limiter == nil {
		r.limiter = rate.NewLimiter(rate.Every(r.Every), 1)
	}
	return r.limiter
}

func (r *Cooldown) PreTrade(t *trade.Trade, ctx trade.Context) error {
	if r.Every <= 0 {
		return nil
	}
	if !r.getLimiter().Allow() {
		return fmt.Errorf("trade is cooling down for up to %s", r.Every)
	}
	return nil
}

func (r *Cooldown) PostTrade(t *trade.Trade, ctx trade.Context, price, taxes money.Value) {
}
