// Copyright (c) 2025 BVK Chaitanya

package trader

import (
	"context"
	"fmt"
	"path"

	"github.com/bvk/tradepost/gobs"
	"github.com/bvk/tradepost/item"
	"github.com/bvk/tradepost/kvutil"
	"github.com/bvk/tradepost/money"
	"github.com/bvk/tradepost/storage"
	"github.com/bvk/tradepost/trade"
	"github.com/bvkgo/kv"
)

// Save writes the full trader snapshot to the database. The snapshot
// round-trips exactly: every trade slot (valid or not), the complete
// storage, stored money, stats and any non-trivial rule-local state.
func (t *Trader) Save(ctx context.Context, rw kv.ReadWriter) error {
	gv := &gobs.TraderState{
		UID:           t.uid,
		Creative:      t.creative,
		Persistent:    t.persistent,
		Funds:         moneyState(t.funds),
		StorageLocked: t.storage.Locked(),
		Stats: &gobs.StatsState{
			MoneyEarned: moneyState(t.stats.MoneyEarned),
			MoneyPaid:   moneyState(t.stats.MoneyPaid),
			TaxesPaid:   moneyState(t.stats.TaxesPaid),
		},
	}
	for _, v := range t.trades {
		ts, err := tradeState(v)
		if err != nil {
			return err
		}
		gv.Trades = append(gv.Trades, ts)
	}
	for _, v := range t.storage.Contents() {
		gv.Storage = append(gv.Storage, itemState(v))
	}
	for _, u := range t.upgrades {
		gv.Upgrades = append(gv.Upgrades, &gobs.UpgradeState{Kind: u.Kind, Capacity: u.Capacity})
	}
	if pd := persistentTradeData(t.trades); pd != nil {
		gv.PersistentTradeData = pd
	}

	key := path.Join(DefaultKeyspace, t.uid)
	if err := kvutil.Set(ctx, rw, key, gv); err != nil {
		return fmt.Errorf("could not save trader state: %w", err)
	}
	return nil
}

// Load reads a previously saved trader. The options supply the
// non-serialized collaborators and must match the ones used when the
// account was created.
func Load(ctx context.Context, uid string, r kv.Reader, opts *Options) (*Trader, error) {
	if err := checkUID(uid); err != nil {
		return nil, err
	}
	key := path.Join(DefaultKeyspace, uid)
	gv, err := kvutil.Get[gobs.TraderState](ctx, r, key)
	if err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &Options{}
	}

	t := &Trader{
		uid:        uid,
		opts:       *opts,
		creative:   gv.Creative,
		persistent: gv.Persistent,
	}
	t.opts.setDefaults()

	if t.funds, err = moneyValue(gv.Funds); err != nil {
		return nil, err
	}
	if gv.Stats != nil {
		if t.stats.MoneyEarned, err = moneyValue(gv.Stats.MoneyEarned); err != nil {
			return nil, err
		}
		if t.stats.MoneyPaid, err = moneyValue(gv.Stats.MoneyPaid); err != nil {
			return nil, err
		}
		if t.stats.TaxesPaid, err = moneyValue(gv.Stats.TaxesPaid); err != nil {
			return nil, err
		}
	}

	for i, ts := range gv.Trades {
		v, err := tradeValue(ts)
		if err != nil {
			return nil, fmt.Errorf("could not load trade %d: %w", i, err)
		}
		t.trades = append(t.trades, v)
	}
	for i, pd := range gv.PersistentTradeData {
		if pd == nil || i >= len(t.trades) {
			continue
		}
		if err := trade.LoadPersistentRuleData(t.trades[i].Rules, pd.RuleData); err != nil {
			return nil, fmt.Errorf("could not load trade %d rule state: %w", i, err)
		}
	}

	var stacks []*item.Stack
	for _, is := range gv.Storage {
		stacks = append(stacks, itemValue(is))
	}
	if gv.StorageLocked {
		t.storage = storage.NewLocked(t, stacks)
	} else {
		t.storage = storage.New(t)
		for _, v := range stacks {
			t.storage.ForceAddItem(v)
		}
	}

	for _, u := range gv.Upgrades {
		t.upgrades = append(t.upgrades, &Upgrade{Kind: u.Kind, Capacity: u.Capacity})
	}

	if err := t.check(); err != nil {
		return nil, err
	}
	return t, nil
}

func moneyState(v money.Value) string {
	if v.IsEmpty() {
		return ""
	}
	return v.Amount.String()
}

func moneyValue(s string) (money.Value, error) {
	if len(s) == 0 {
		return money.Empty(), nil
	}
	return money.Parse(s)
}

func itemState(v *item.Stack) *gobs.ItemState {
	if v.IsEmpty() {
		return nil
	}
	return &gobs.ItemState{ID: v.ID, Count: v.Count, Data: v.Data, Name: v.Name}
}

func itemValue(v *gobs.ItemState) *item.Stack {
	if v == nil {
		return nil
	}
	return &item.Stack{ID: v.ID, Count: v.Count, Data: v.Data, Name: v.Name}
}

func tradeState(v *trade.Trade) (*gobs.TradeState, error) {
	ts := &gobs.TradeState{
		Direction:   string(v.Direction),
		EnforceData: v.EnforceData,
		Cost:        moneyState(v.Cost),
		StockCap:    v.Restriction.StockCap,
	}
	for i, s := range v.SellItems {
		ts.SellItems[i] = itemState(s)
	}
	for i, s := range v.BarterItems {
		ts.BarterItems[i] = itemState(s)
	}
	saved, err := trade.SaveRules(v.Rules)
	if err != nil {
		return nil, err
	}
	for _, sr := range saved {
		ts.Rules = append(ts.Rules, &gobs.RuleState{Name: sr.Name, Config: sr.Config})
	}
	return ts, nil
}

func tradeValue(ts *gobs.TradeState) (*trade.Trade, error) {
	d, err := trade.ParseDirection(ts.Direction)
	if err != nil {
		return nil, err
	}
	v := trade.New()
	v.Direction = d
	v.EnforceData = ts.EnforceData
	v.Restriction = trade.Restriction{StockCap: ts.StockCap}
	for i, s := range ts.SellItems {
		v.SellItems[i] = itemValue(s)
	}
	for i, s := range ts.BarterItems {
		v.BarterItems[i] = itemValue(s)
	}
	if v.Cost, err = moneyValue(ts.Cost); err != nil {
		return nil, err
	}
	var saved []*trade.SavedRule
	for _, rs := range ts.Rules {
		saved = append(saved, &trade.SavedRule{Name: rs.Name, Config: rs.Config})
	}
	if v.Rules, err = trade.LoadRules(saved); err != nil {
		return nil, err
	}
	return v, nil
}

// persistentTradeData gathers rule-local state for every trade, indexed
// like the trade list. Returns nil when no rule anywhere has anything
// to save.
func persistentTradeData(trades []*trade.Trade) []*gobs.TradePersistentData {
	var vs []*gobs.TradePersistentData
	nonTrivial := false
	for _, v := range trades {
		m := trade.PersistentRuleData(v.Rules)
		if m != nil {
			nonTrivial = true
			vs = append(vs, &gobs.TradePersistentData{RuleData: m})
		} else {
			vs = append(vs, nil)
		}
	}
	if !nonTrivial {
		return nil
	}
	return vs
}
