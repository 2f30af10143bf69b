// Copyright (c) 2025 BVK Chaitanya

package rules

import (
	"github.com/bvk/tradepost/money"
	"github.com/bvk/tradepost/trade"
	"github.com/shopspring/decimal"
)

// Discount reduces the trade price by a percentage, optionally only for
// one player. The price is adjusted fresh on every attempt.
type Discount struct {
	// PlayerID restricts the discount to one player; empty applies to
	// everyone.
	PlayerID string `json:"PlayerID,omitempty"`

	// Percent is the discount percentage, 0-100.
	Percent int64 `json:"Percent"`
}

func (r *Discount) Name() string {
	return "discount"
}

func (r *Discount) PreTrade(t *trade.Trade, ctx trade.Context) error {
	return nil
}

func (r *Discount) PostTrade(t *trade.Trade, ctx trade.Context, price, taxes money.Value) {
}

func (r *Discount) AdjustCost(t *trade.Trade, ctx trade.Context, cost money.Value) money.Value {
	if r.Percent <= 0 || cost.IsEmpty() {
		return cost
	}
	if len(r.PlayerID) != 0 && ctx.PlayerID() != r.PlayerID {
		return cost
	}
	pct := decimal.NewFromInt(100 - min(r.Percent, 100)).Div(decimal.NewFromInt(100))
	return money.New(cost.Amount.Mul(pct))
}
