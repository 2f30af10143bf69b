// Copyright (c) 2025 BVK Chaitanya

package trader

import (
	"log/slog"

	"github.com/bvk/tradepost/item"
	"github.com/bvk/tradepost/money"
	"github.com/bvk/tradepost/notify"
	"github.com/bvk/tradepost/trade"
)

// ExecuteTrade runs the trade in the given slot against the requester's
// context. The attempt is all-or-nothing: every failure path leaves the
// trader, the storage and the requester exactly as they were.
func (t *Trader) ExecuteTrade(tc trade.Context, index int) trade.Result {
	v := t.Trade(index)
	if v == nil || !v.IsValid() {
		return trade.FAIL_INVALID_TRADE
	}
	if tc == nil || len(tc.PlayerID()) == 0 {
		return trade.FAIL_NULL
	}
	for _, r := range v.Rules {
		if err := r.PreTrade(v, tc); err != nil {
			slog.Info("trade denied by rule", "trader", t.uid, "trade", index, "rule", r.Name(), "reason", err)
			return trade.FAIL_TRADE_RULE_DENIAL
		}
	}

	switch {
	case v.IsSale():
		return t.executeSale(tc, index, v)
	case v.IsPurchase():
		return t.executePurchase(tc, index, v)
	case v.IsBarter():
		return t.executeBarter(tc, index, v)
	}
	return trade.FAIL_INVALID_TRADE
}

// sellItems picks the concrete stacks one execution dispenses. A
// creative trader has infinite supply and dispenses clones of the
// configured sell items without touching storage. Otherwise the stacks
// come out of storage, and a nil result means the storage cannot
// satisfy every slot at once even when the coarse per-slot check
// passed; both mean stock exhaustion.
func (t *Trader) sellItems(v *trade.Trade) []*item.Stack {
	if !t.creative {
		return v.RandomSellItems(t.storage, t.opts.Rand)
	}
	var items []*item.Stack
	for _, slot := range []int{trade.Sell0, trade.Sell1} {
		if s := v.Item(slot); !s.IsEmpty() {
			items = append(items, s.Clone())
		}
	}
	return items
}

func (t *Trader) executeSale(tc trade.Context, index int, v *trade.Trade) trade.Result {
	price := v.CostWith(tc)

	if !t.creative && v.OutOfStock(t.storage) {
		return trade.FAIL_OUT_OF_STOCK
	}
	items := t.sellItems(v)
	if items == nil {
		return trade.FAIL_OUT_OF_STOCK
	}
	if !tc.CanFitItems(items) {
		return trade.FAIL_NO_OUTPUT_SPACE
	}
	if !tc.GetPayment(price) {
		return trade.FAIL_CANNOT_AFFORD
	}

	var placed []*item.Stack
	for _, out := range items {
		if !tc.PutItem(out) {
			for _, p := range placed {
				tc.CollectItem(p)
			}
			tc.GivePayment(price)
			return trade.FAIL_NO_OUTPUT_SPACE
		}
		placed = append(placed, out)
	}

	taxes := money.Empty()
	if !t.creative {
		v.RemoveFromStorage(t.storage, items)
		taxes = t.addStoredMoney(price)
		if v.OutOfStock(t.storage) {
			t.pushNotification(&notify.OutOfStockEvent{TraderUID: t.uid, TradeIndex: index})
		}
	}
	t.stats.MoneyEarned = t.stats.MoneyEarned.Add(price)
	t.stats.TaxesPaid = t.stats.TaxesPaid.Add(taxes)

	t.finishTrade(tc, index, v, price, taxes, items)
	return trade.SUCCESS
}

func (t *Trader) executePurchase(tc trade.Context, index int, v *trade.Trade) trade.Result {
	price := v.CostWith(tc)

	collect := tc.CollectableItems(v.Requirement(trade.Sell0), v.Requirement(trade.Sell1))
	if collect == nil || !tc.HasItems(collect) {
		return trade.FAIL_CANNOT_AFFORD
	}
	if !t.creative {
		if !t.storage.CanFitItems(collect) {
			return trade.FAIL_NO_INPUT_SPACE
		}
		// A trader without enough stored money to pay out is treated
		// the same as one out of stock.
		if t.funds.Cmp(price) < 0 {
			return trade.FAIL_OUT_OF_STOCK
		}
	}

	tc.CollectItems(collect)
	tc.GivePayment(price)

	if !t.creative {
		for _, in := range collect {
			t.storage.ForceAddItem(in)
		}
		t.removeStoredMoney(price)
		if t.funds.Cmp(price) < 0 {
			t.pushNotification(&notify.OutOfStockEvent{TraderUID: t.uid, TradeIndex: index})
		}
	}
	t.stats.MoneyPaid = t.stats.MoneyPaid.Add(price)

	t.finishTrade(tc, index, v, price, money.Empty(), collect)
	return trade.SUCCESS
}

func (t *Trader) executeBarter(tc trade.Context, index int, v *trade.Trade) trade.Result {
	collect := tc.CollectableItems(v.Requirement(trade.Barter0), v.Requirement(trade.Barter1))
	if collect == nil || !tc.HasItems(collect) {
		return trade.FAIL_CANNOT_AFFORD
	}
	if !t.creative {
		if !t.storage.CanFitItems(collect) {
			return trade.FAIL_NO_INPUT_SPACE
		}
		if v.OutOfStock(t.storage) {
			return trade.FAIL_OUT_OF_STOCK
		}
	}
	items := t.sellItems(v)
	if items == nil {
		return trade.FAIL_OUT_OF_STOCK
	}
	if !tc.CanFitItems(items) {
		return trade.FAIL_NO_OUTPUT_SPACE
	}

	tc.CollectItems(collect)

	var placed []*item.Stack
	for _, out := range items {
		if !tc.PutItem(out) {
			for _, p := range placed {
				tc.CollectItem(p)
			}
			// Hand the collected barter inputs back; their space was
			// freed when they were collected, so placement holds.
			for _, in := range collect {
				tc.PutItem(in)
			}
			return trade.FAIL_NO_OUTPUT_SPACE
		}
		placed = append(placed, out)
	}

	if !t.creative {
		for _, in := range collect {
			t.storage.ForceAddItem(in)
		}
		v.RemoveFromStorage(t.storage, items)
		if v.OutOfStock(t.storage) {
			t.pushNotification(&notify.OutOfStockEvent{TraderUID: t.uid, TradeIndex: index})
		}
	}

	t.finishTrade(tc, index, v, money.Empty(), money.Empty(), items)
	return trade.SUCCESS
}

func (t *Trader) finishTrade(tc trade.Context, index int, v *trade.Trade, price, taxes money.Value, items []*item.Stack) {
	t.pushNotification(&notify.TradeEvent{
		TraderUID:  t.uid,
		TradeIndex: index,
		Direction:  string(v.Direction),
		PlayerID:   tc.PlayerID(),
		Price:      price,
		Taxes:      taxes,
		Items:      items,
	})
	for _, r := range v.Rules {
		r.PostTrade(v, tc, price, taxes)
	}
}
