// Copyright (c) 2025 BVK Chaitanya

package rules

import "github.com/bvk/tradepost/trade"

func init() {
	trade.RegisterRule("trade_limit", func() trade.Rule { return new(TradeLimit) })
	trade.RegisterRule("discount", func() trade.Rule { return new(Discount) })
	trade.RegisterRule("cooldown", func() trade.Rule { return new(Cooldown) })
}
