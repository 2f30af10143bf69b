// Copyright (c) 2025 BVK Chaitanya

// Package trader implements the item trader account: a bounded list of
// trades, the item storage behind them, stored money, and the trade
// execution engine.
package trader

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/bvk/tradepost/item"
	"github.com/bvk/tradepost/money"
	"github.com/bvk/tradepost/notify"
	"github.com/bvk/tradepost/storage"
	"github.com/bvk/tradepost/trade"
	"github.com/google/uuid"
)

const DefaultKeyspace = "/traders/"

const (
	// MinTrades and MaxTrades bound the number of trade slots an
	// account can hold. Out-of-range requests are clamped.
	MinTrades = 1
	MaxTrades = 100

	// DefaultStackLimit is the per item-kind storage capacity without
	// any upgrades.
	DefaultStackLimit = 576
)

// Options hold the non-serialized collaborators of a trader account.
// The same options must be supplied again when loading a saved account.
type Options struct {
	// Creative marks the account as an admin showcase: executions never
	// consume storage or funds and stock is unlimited.
	Creative bool

	// TaxPolicy splits sale revenue into net income and withheld taxes.
	// A nil policy withholds nothing.
	TaxPolicy money.TaxPolicy

	// Notifier receives trade, stock and edit events. May be nil.
	Notifier notify.Notifier

	// AdminCheck authorizes trade slot edits. A nil check allows
	// everyone.
	AdminCheck func(playerID string) bool

	// Restrictions maps an item kind to the restriction applied to
	// trades selling that kind.
	Restrictions map[string]trade.Restriction

	// Rand is the randomness source for output stack selection. Tests
	// supply a seeded source; nil picks a time-seeded one.
	Rand *rand.Rand
}

func (v *Options) setDefaults() {
	if v.Rand == nil {
		v.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
}

// Trader is one item trader account.
type Trader struct {
	uid string

	opts Options

	creative   bool
	persistent bool

	trades []*trade.Trade

	storage *storage.Storage

	upgrades []*Upgrade

	funds money.Value

	stats Stats
}

// Upgrade is one installed storage upgrade.
type Upgrade struct {
	Kind     string
	Capacity int
}

// Stats are the account's lifetime counters.
type Stats struct {
	MoneyEarned money.Value
	MoneyPaid   money.Value
	TaxesPaid   money.Value
}

var _ storage.Filter = &Trader{}

// New creates a trader account with the given number of empty trade
// slots. The uid must begin with an uuid.
func New(uid string, numTrades int, opts *Options) (*Trader, error) {
	if opts == nil {
		opts = &Options{}
	}
	t := &Trader{
		uid:      uid,
		opts:     *opts,
		creative: opts.Creative,
		trades:   trade.ListOfSize(clampTradeCount(numTrades)),
	}
	t.opts.setDefaults()
	t.storage = storage.New(t)
	if err := t.check(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Trader) check() error {
	if err := checkUID(t.uid); err != nil {
		return err
	}
	if n := len(t.trades); n < MinTrades || n > MaxTrades {
		return fmt.Errorf("trade count %d is out of range", n)
	}
	return nil
}

func checkUID(uid string) error {
	fs := strings.Split(uid, "/")
	if len(fs) == 0 {
		return fmt.Errorf("uid cannot be empty")
	}
	if _, err := uuid.Parse(fs[0]); err != nil {
		return fmt.Errorf("uid %q doesn't start with an uuid: %w", uid, err)
	}
	return nil
}

func clampTradeCount(n int) int {
	if n < MinTrades {
		return MinTrades
	}
	if n > MaxTrades {
		return MaxTrades
	}
	return n
}

func (t *Trader) String() string {
	return "trader:" + t.uid
}

func (t *Trader) UID() string {
	return t.uid
}

// Creative reports whether executions bypass storage and funds.
func (t *Trader) Creative() bool {
	return t.creative
}

func (t *Trader) SetCreative(v bool) {
	t.creative = v
}

// Persistent reports whether this account came from a data-pack
// definition.
func (t *Trader) Persistent() bool {
	return t.persistent
}

func (t *Trader) Storage() *storage.Storage {
	return t.storage
}

func (t *Trader) Funds() money.Value {
	return t.funds
}

// DepositFunds adds money to the stored balance, for PURCHASE trades to
// spend.
func (t *Trader) DepositFunds(v money.Value) {
	if !v.IsEmpty() {
		t.funds = t.funds.Add(v)
	}
}

// CollectFunds withdraws the entire stored balance.
func (t *Trader) CollectFunds() money.Value {
	v := t.funds
	t.funds = money.Empty()
	return v
}

func (t *Trader) Stats() Stats {
	return t.stats
}

// NumTrades returns the number of trade slots, including invalid
// placeholders.
func (t *Trader) NumTrades() int {
	return len(t.trades)
}

// Trade returns the trade in the given slot or nil if the index is out
// of bounds.
func (t *Trader) Trade(index int) *trade.Trade {
	if index < 0 || index >= len(t.trades) {
		return nil
	}
	return t.trades[index]
}

// Trades returns all trade slots. Callers must not grow or shrink the
// returned slice.
func (t *Trader) Trades() []*trade.Trade {
	return t.trades
}

// OverrideTradeCount resizes the trade list to n slots, clamped to the
// allowed range. Surviving slots keep their configuration by index; new
// slots are empty placeholders.
func (t *Trader) OverrideTradeCount(n int) {
	n = clampTradeCount(n)
	if n == len(t.trades) {
		return
	}
	vs := trade.ListOfSize(n)
	for i := 0; i < n && i < len(t.trades); i++ {
		vs[i] = t.trades[i]
	}
	t.trades = vs
}

func (t *Trader) isAdmin(playerID string) bool {
	if t.opts.AdminCheck == nil {
		return true
	}
	return t.opts.AdminCheck(playerID)
}

// AddTrade appends an empty trade slot on behalf of the given player.
func (t *Trader) AddTrade(playerID string) error {
	if !t.isAdmin(playerID) {
		return fmt.Errorf("player %q cannot edit trades: %w", playerID, os.ErrPermission)
	}
	if len(t.trades) >= MaxTrades {
		return fmt.Errorf("trade count is already at the maximum %d", MaxTrades)
	}
	t.trades = append(t.trades, trade.New())
	t.pushNotification(&notify.TradeCountEvent{
		TraderUID: t.uid,
		PlayerID:  playerID,
		Added:     true,
		Count:     len(t.trades),
	})
	return nil
}

// RemoveTrade drops the last trade slot on behalf of the given player.
func (t *Trader) RemoveTrade(playerID string) error {
	if !t.isAdmin(playerID) {
		return fmt.Errorf("player %q cannot edit trades: %w", playerID, os.ErrPermission)
	}
	if len(t.trades) <= MinTrades {
		return fmt.Errorf("trade count is already at the minimum %d", MinTrades)
	}
	t.trades = t.trades[:len(t.trades)-1]
	t.pushNotification(&notify.TradeCountEvent{
		TraderUID: t.uid,
		PlayerID:  playerID,
		Added:     false,
		Count:     len(t.trades),
	})
	return nil
}

// SetTradeItem configures an item slot of the given trade and applies
// any restriction registered for the item kind.
func (t *Trader) SetTradeItem(index, slot int, stack *item.Stack) error {
	v := t.Trade(index)
	if v == nil {
		return fmt.Errorf("trade index %d is out of bounds: %w", index, os.ErrInvalid)
	}
	v.SetItem(slot, stack)
	if slot == trade.Sell0 && !stack.IsEmpty() {
		if r, ok := t.opts.Restrictions[stack.ID]; ok {
			v.Restriction = r
		}
	}
	return nil
}

// TradeStock returns how many more times the trade can execute, or -1
// when supply is unlimited. Sales and barters count matching items in
// storage; a purchase's stock is how many times the stored money
// covers the price.
func (t *Trader) TradeStock(index int) int {
	v := t.Trade(index)
	if v == nil || !v.IsValid() {
		return 0
	}
	if t.creative {
		return -1
	}
	if v.IsPurchase() {
		if v.Cost.IsZero() {
			return -1
		}
		n := int(t.funds.Amount.Div(v.Cost.Amount).IntPart())
		return v.Restriction.CapStock(n)
	}
	return v.StockCount(t.storage)
}

// InstallUpgrade adds a storage upgrade, growing the per item-kind
// capacity by the upgrade's amount.
func (t *Trader) InstallUpgrade(kind string, capacity int) error {
	if len(kind) == 0 || capacity <= 0 {
		return os.ErrInvalid
	}
	t.upgrades = append(t.upgrades, &Upgrade{Kind: kind, Capacity: capacity})
	return nil
}

func (t *Trader) Upgrades() []*Upgrade {
	return t.upgrades
}

// IsItemRelevant reports whether at least one valid trade dispenses or
// collects the item.
func (t *Trader) IsItemRelevant(stack *item.Stack) bool {
	for _, v := range t.trades {
		if v.AllowItemInStorage(stack) {
			return true
		}
	}
	return false
}

// StorageStackLimit is the per item-kind storage capacity, including
// installed upgrades.
func (t *Trader) StorageStackLimit() int {
	limit := DefaultStackLimit
	for _, u := range t.upgrades {
		limit += u.Capacity
	}
	return limit
}

func (t *Trader) pushNotification(e notify.Event) {
	if t.opts.Notifier != nil {
		t.opts.Notifier.PushNotification(e)
	}
}

// addStoredMoney credits sale revenue, routing part of it to taxes per
// the tax policy. Returns the taxes withheld.
func (t *Trader) addStoredMoney(gross money.Value) money.Value {
	policy := t.opts.TaxPolicy
	if policy == nil {
		policy = money.NoTax
	}
	net, taxes := policy(gross)
	t.funds = t.funds.Add(net)
	return taxes
}

// removeStoredMoney debits a purchase payout from the stored balance.
func (t *Trader) removeStoredMoney(v money.Value) {
	t.funds = t.funds.Sub(v)
}
