// Copyright (c) 2025 BVK Chaitanya

package trader

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/bvk/tradepost/item"
	"github.com/bvk/tradepost/money"
	"github.com/bvk/tradepost/storage"
	"github.com/bvk/tradepost/trade"
)

// The data-pack JSON codec is deliberately lossy: it carries the valid
// trades and only the storage relevant to them. Stored money, stats and
// rule-local state never enter a data pack; use Save for full snapshots.

type traderJSON struct {
	Trades          []json.RawMessage `json:"Trades"`
	RelevantStorage []*itemJSON       `json:"RelevantStorage,omitempty"`
}

type tradeJSON struct {
	TradeType    string            `json:"TradeType"`
	Price        *money.Value      `json:"Price,omitempty"`
	SellItem     *itemJSON         `json:"SellItem,omitempty"`
	SellItem2    *itemJSON         `json:"SellItem2,omitempty"`
	DisplayName  string            `json:"DisplayName,omitempty"`
	DisplayName2 string            `json:"DisplayName2,omitempty"`
	BarterItem   *itemJSON         `json:"BarterItem,omitempty"`
	BarterItem2  *itemJSON         `json:"BarterItem2,omitempty"`
	IgnoreNBT    []int             `json:"IgnoreNBT,omitempty"`
	Rules        []*trade.SavedRule `json:"Rules,omitempty"`
}

type itemJSON struct {
	ID    string            `json:"ID"`
	Count int               `json:"Count"`
	Data  map[string]string `json:"Data,omitempty"`
}

func itemJSONOf(v *item.Stack) *itemJSON {
	if v.IsEmpty() {
		return nil
	}
	return &itemJSON{ID: v.ID, Count: v.Count, Data: v.Data}
}

func (v *itemJSON) stack() (*item.Stack, error) {
	if v == nil {
		return nil, nil
	}
	s := &item.Stack{ID: v.ID, Count: v.Count, Data: v.Data}
	if err := s.Check(); err != nil {
		return nil, err
	}
	return s, nil
}

// ExportJSON serializes the trader for a data pack. Invalid trade slots
// are dropped and only relevant storage is included.
func (t *Trader) ExportJSON() ([]byte, error) {
	gv := &traderJSON{}
	for _, v := range t.trades {
		if !v.IsValid() {
			continue
		}
		tj, err := exportTrade(v)
		if err != nil {
			return nil, err
		}
		raw, err := json.Marshal(tj)
		if err != nil {
			return nil, err
		}
		gv.Trades = append(gv.Trades, raw)
	}
	for _, v := range t.storage.Contents() {
		if t.IsItemRelevant(v) {
			gv.RelevantStorage = append(gv.RelevantStorage, itemJSONOf(v))
		}
	}
	return json.MarshalIndent(gv, "", "  ")
}

func exportTrade(v *trade.Trade) (*tradeJSON, error) {
	tj := &tradeJSON{TradeType: string(v.Direction)}
	if v.IsSale() || v.IsPurchase() {
		cost := v.Cost
		tj.Price = &cost
	}
	tj.SellItem = itemJSONOf(v.SellItems[0])
	tj.SellItem2 = itemJSONOf(v.SellItems[1])
	if !v.SellItems[0].IsEmpty() {
		tj.DisplayName = v.SellItems[0].Name
	}
	if !v.SellItems[1].IsEmpty() {
		tj.DisplayName2 = v.SellItems[1].Name
	}
	if v.IsBarter() {
		tj.BarterItem = itemJSONOf(v.BarterItems[0])
		tj.BarterItem2 = itemJSONOf(v.BarterItems[1])
	}
	for slot := trade.Sell0; slot <= trade.Barter1; slot++ {
		if !v.EnforceData[slot] && !v.Item(slot).IsEmpty() {
			tj.IgnoreNBT = append(tj.IgnoreNBT, slot)
		}
	}
	var err error
	if tj.Rules, err = trade.SaveRules(v.Rules); err != nil {
		return nil, err
	}
	return tj, nil
}

// ImportJSON builds a persistent trader from a data-pack definition.
// Malformed trade entries are logged and skipped; the import only fails
// when no valid trade remains. The imported storage is locked to the
// item kinds the author provided.
func ImportJSON(uid string, data []byte, opts *Options) (*Trader, error) {
	if err := checkUID(uid); err != nil {
		return nil, err
	}
	gv := new(traderJSON)
	if err := json.Unmarshal(data, gv); err != nil {
		return nil, fmt.Errorf("could not parse trader definition: %w", err)
	}

	if opts == nil {
		opts = &Options{}
	}
	t := &Trader{
		uid:        uid,
		opts:       *opts,
		creative:   opts.Creative,
		persistent: true,
	}
	t.opts.setDefaults()

	entries := gv.Trades
	if len(entries) > MaxTrades {
		slog.Warn("trader defines too many trades; extras are dropped", "trader", uid, "count", len(entries), "max", MaxTrades)
		entries = entries[:MaxTrades]
	}
	for i, raw := range entries {
		v, err := importTrade(raw)
		if err != nil {
			slog.Error("could not import trade entry; skipping it", "trader", uid, "index", i, "error", err)
			continue
		}
		t.trades = append(t.trades, v)
	}
	if len(t.trades) == 0 {
		return nil, fmt.Errorf("trader %q has no valid trades", uid)
	}

	var stacks []*item.Stack
	for i, ij := range gv.RelevantStorage {
		s, err := ij.stack()
		if err != nil {
			return nil, fmt.Errorf("could not parse storage entry %d: %w", i, err)
		}
		stacks = append(stacks, s)
	}
	t.storage = storage.NewLocked(t, stacks)

	if err := t.check(); err != nil {
		return nil, err
	}
	return t, nil
}

func importTrade(raw json.RawMessage) (*trade.Trade, error) {
	tj := new(tradeJSON)
	if err := json.Unmarshal(raw, tj); err != nil {
		return nil, err
	}
	d, err := trade.ParseDirection(tj.TradeType)
	if err != nil {
		return nil, err
	}

	v := trade.New()
	v.Direction = d
	if v.SellItems[0], err = tj.SellItem.stack(); err != nil {
		return nil, fmt.Errorf("invalid sell item: %w", err)
	}
	if v.SellItems[1], err = tj.SellItem2.stack(); err != nil {
		return nil, fmt.Errorf("invalid second sell item: %w", err)
	}
	if !v.SellItems[0].IsEmpty() {
		v.SellItems[0].Name = tj.DisplayName
	}
	if !v.SellItems[1].IsEmpty() {
		v.SellItems[1].Name = tj.DisplayName2
	}
	if v.IsBarter() {
		if v.BarterItems[0], err = tj.BarterItem.stack(); err != nil {
			return nil, fmt.Errorf("invalid barter item: %w", err)
		}
		if v.BarterItems[1], err = tj.BarterItem2.stack(); err != nil {
			return nil, fmt.Errorf("invalid second barter item: %w", err)
		}
		if tj.Price != nil {
			slog.Warn("barter trades have no price; ignoring it")
		}
	} else {
		if tj.Price == nil || tj.Price.IsEmpty() {
			slog.Warn("trade defines no price; treating it as free")
			v.Cost = money.Free()
		} else {
			v.Cost = *tj.Price
		}
	}
	for _, slot := range tj.IgnoreNBT {
		if slot < trade.Sell0 || slot > trade.Barter1 {
			return nil, fmt.Errorf("invalid IgnoreNBT slot index %d", slot)
		}
		v.EnforceData[slot] = false
	}
	if v.Rules, err = trade.LoadRules(tj.Rules); err != nil {
		return nil, err
	}
	if !v.IsValid() {
		return nil, fmt.Errorf("trade definition is incomplete")
	}
	return v, nil
}
