// Copyright (c) 2025 BVK Chaitanya

// Package gobs holds the gob-encoded state types stored in the
// key-value database. These types must stay backward compatible; use
// new fields or new types instead of changing existing ones.
package gobs

// ItemState is one item stack.
type ItemState struct {
	ID    string
	Count int
	Data  map[string]string
	Name  string
}

// RuleState is one trade rule: its registered type name and its JSON
// configuration.
type RuleState struct {
	Name   string
	Config []byte
}

// TradeState is one trade slot, including invalid placeholders.
type TradeState struct {
	Direction string

	SellItems   [2]*ItemState
	BarterItems [2]*ItemState
	EnforceData [4]bool

	// Cost is a decimal string; empty means no price is set.
	Cost string

	Rules []*RuleState

	StockCap int
}

// UpgradeState is one installed storage upgrade.
type UpgradeState struct {
	Kind     string
	Capacity int
}

// TraderState is the full runtime snapshot of one trader. It
// round-trips exactly: all trades (valid or not), all storage, and any
// non-trivial rule-local persistent data.
type TraderState struct {
	UID string

	Creative   bool
	Persistent bool

	// Funds is a decimal string; empty means no money is stored.
	Funds string

	Trades []*TradeState

	Storage       []*ItemState
	StorageLocked bool

	Upgrades []*UpgradeState

	Stats *StatsState

	// PersistentTradeData holds per-trade rule-local state, indexed
	// like Trades. Only written when at least one rule reports
	// non-trivial data.
	PersistentTradeData []*TradePersistentData
}

// TradePersistentData is the rule-local persistent state of one trade,
// keyed by rule name.
type TradePersistentData struct {
	RuleData map[string][]byte
}

// StatsState holds the trader's lifetime counters.
type StatsState struct {
	MoneyEarned string
	MoneyPaid   string
	TaxesPaid   string
}
