// Copyright (c) 2025 BVK Chaitanya

// Package rules implements the built-in trade rules.
package rules

import (
	"encoding/json"
	"fmt"

	"github.com/bvk/tradepost/money"
	"github.com/bvk/tradepost/trade"
)

// TradeLimit caps how many times a trade can execute in total. The
// execution count is persistent rule state and survives save/reload.
type TradeLimit struct {
	Limit int `json:"Limit"`

	count int
}

type tradeLimitData struct {
	Count int `json:"Count"`
}

func (r *TradeLimit) Name() string {
	return "trade_limit"
}

func (r *TradeLimit) Count() int {
	return r.count
}

func (r *TradeLimit) PreTrade(t *trade.Trade, ctx trade.Context) error {
	if r.Limit > 0 && r.count >= r.Limit {
		return fmt.Errorf("trade limit of %d executions reached", r.Limit)
	}
	return nil
}

func (r *TradeLimit) PostTrade(t *trade.Trade, ctx trade.Context, price, taxes money.Value) {
	r.count++
}

func (r *TradeLimit) PersistentData() []byte {
	if r.count == 0 {
		return nil
	}
	data, _ := json.Marshal(&tradeLimitData{Count: r.count})
	return data
}

func (r *TradeLimit) SetPersistentData(data []byte) error {
	v := new(tradeLimitData)
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}
	r.count = v.Count
	return nil
}
