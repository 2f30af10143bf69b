// Copyright (c) 2025 BVK Chaitanya

package trader

import (
	"math/rand"
	"testing"

	"github.com/bvk/tradepost/item"
	"github.com/bvk/tradepost/money"
	"github.com/bvk/tradepost/notify"
	"github.com/bvk/tradepost/rules"
	"github.com/bvk/tradepost/trade"
	"github.com/bvk/tradepost/wallet"
	"github.com/shopspring/decimal"
)

const testUID = "01234567-89ab-cdef-0123-456789abcdef"

func testOptions() *Options {
	return &Options{Rand: rand.New(rand.NewSource(1))}
}

// newSaleTrader returns a trader whose trade 0 sells 5 sticks for 10,
// with the given number of sticks in storage.
func newSaleTrader(t *testing.T, opts *Options, nsticks int) *Trader {
	t.Helper()
	if opts == nil {
		opts = testOptions()
	}
	v, err := New(testUID, 1, opts)
	if err != nil {
		t.Fatal(err)
	}
	tr := v.Trade(0)
	tr.Direction = trade.SALE
	tr.SellItems[0] = item.New("stick", 5)
	tr.Cost = money.FromInt(10)
	if nsticks > 0 {
		v.Storage().ForceAddItem(item.New("stick", nsticks))
	}
	return v
}

func TestExecuteSale(t *testing.T) {
	v := newSaleTrader(t, nil, 64)

	w := wallet.New("alice", 9)
	w.Deposit(money.FromInt(25))

	if r := v.ExecuteTrade(w, 0); r != trade.SUCCESS {
		t.Fatalf("want SUCCESS, got %v", r)
	}

	if got := w.Count(&item.Requirement{ID: "stick", Count: 1}); got != 5 {
		t.Fatalf("want 5 sticks in wallet, got %d", got)
	}
	if want := money.FromInt(15); !w.AvailableFunds().Equal(want) {
		t.Fatalf("want wallet funds %v, got %v", want, w.AvailableFunds())
	}
	if want := money.FromInt(10); !v.Funds().Equal(want) {
		t.Fatalf("want trader funds %v, got %v", want, v.Funds())
	}
	if got := v.Storage().CountMatching(&item.Requirement{ID: "stick", Count: 1}); got != 59 {
		t.Fatalf("want 59 sticks in storage, got %d", got)
	}
	if got := v.TradeStock(0); got != 11 {
		t.Fatalf("want stock 11, got %d", got)
	}
	if want := money.FromInt(10); !v.Stats().MoneyEarned.Equal(want) {
		t.Fatalf("want money earned %v, got %v", want, v.Stats().MoneyEarned)
	}
}

func TestExecuteSaleOutOfStock(t *testing.T) {
	v := newSaleTrader(t, nil, 3)

	w := wallet.New("alice", 9)
	w.Deposit(money.FromInt(25))

	if r := v.ExecuteTrade(w, 0); r != trade.FAIL_OUT_OF_STOCK {
		t.Fatalf("want FAIL_OUT_OF_STOCK, got %v", r)
	}
	if want := money.FromInt(25); !w.AvailableFunds().Equal(want) {
		t.Fatalf("want wallet funds untouched at %v, got %v", want, w.AvailableFunds())
	}
	if got := v.Storage().CountMatching(&item.Requirement{ID: "stick", Count: 1}); got != 3 {
		t.Fatalf("want storage untouched at 3 sticks, got %d", got)
	}
}

func TestExecuteSaleCannotAfford(t *testing.T) {
	v := newSaleTrader(t, nil, 64)

	w := wallet.New("alice", 9)
	w.Deposit(money.FromInt(9))

	if r := v.ExecuteTrade(w, 0); r != trade.FAIL_CANNOT_AFFORD {
		t.Fatalf("want FAIL_CANNOT_AFFORD, got %v", r)
	}
	if want := money.FromInt(9); !w.AvailableFunds().Equal(want) {
		t.Fatalf("want wallet funds untouched at %v, got %v", want, w.AvailableFunds())
	}
}

func TestExecuteSaleNoOutputSpace(t *testing.T) {
	v := newSaleTrader(t, nil, 64)

	// A full wallet with unrelated items has no room for the sticks.
	w := wallet.New("alice", 1)
	w.PutItem(item.New("stone", 64))
	w.Deposit(money.FromInt(25))

	if r := v.ExecuteTrade(w, 0); r != trade.FAIL_NO_OUTPUT_SPACE {
		t.Fatalf("want FAIL_NO_OUTPUT_SPACE, got %v", r)
	}
	if want := money.FromInt(25); !w.AvailableFunds().Equal(want) {
		t.Fatalf("want wallet funds untouched at %v, got %v", want, w.AvailableFunds())
	}
}

// failingPutContext reports room for everything but rejects PutItem
// after the first call, exercising the mid-placement rollback.
type failingPutContext struct {
	*wallet.Wallet

	puts int
}

func (c *failingPutContext) CanFitItems(items []*item.Stack) bool { return true }

func (c *failingPutContext) PutItem(stack *item.Stack) bool {
	c.puts++
	if c.puts > 1 {
		return false
	}
	return c.Wallet.PutItem(stack)
}

func TestExecuteSaleRollback(t *testing.T) {
	opts := testOptions()
	v, err := New(testUID, 1, opts)
	if err != nil {
		t.Fatal(err)
	}
	tr := v.Trade(0)
	tr.Direction = trade.SALE
	tr.SellItems[0] = item.New("stick", 5)
	tr.SellItems[1] = item.New("stone", 5)
	tr.Cost = money.FromInt(10)
	v.Storage().ForceAddItem(item.New("stick", 16))
	v.Storage().ForceAddItem(item.New("stone", 16))

	w := wallet.New("alice", 9)
	w.Deposit(money.FromInt(25))
	fc := &failingPutContext{Wallet: w}

	if r := v.ExecuteTrade(fc, 0); r != trade.FAIL_NO_OUTPUT_SPACE {
		t.Fatalf("want FAIL_NO_OUTPUT_SPACE, got %v", r)
	}
	if want := money.FromInt(25); !w.AvailableFunds().Equal(want) {
		t.Fatalf("want wallet funds refunded to %v, got %v", want, w.AvailableFunds())
	}
	for _, id := range []string{"stick", "stone"} {
		if got := w.Count(&item.Requirement{ID: id, Count: 1}); got != 0 {
			t.Fatalf("want no %s left in wallet after rollback, got %d", id, got)
		}
		if got := v.Storage().CountMatching(&item.Requirement{ID: id, Count: 1}); got != 16 {
			t.Fatalf("want storage untouched at 16 %s, got %d", id, got)
		}
	}
	if !v.Funds().IsEmpty() {
		t.Fatalf("want no trader funds after rollback, got %v", v.Funds())
	}
}

func TestExecuteTradeBounds(t *testing.T) {
	v := newSaleTrader(t, nil, 64)
	w := wallet.New("alice", 9)

	if r := v.ExecuteTrade(w, -1); r != trade.FAIL_INVALID_TRADE {
		t.Fatalf("want FAIL_INVALID_TRADE, got %v", r)
	}
	if r := v.ExecuteTrade(w, 1); r != trade.FAIL_INVALID_TRADE {
		t.Fatalf("want FAIL_INVALID_TRADE, got %v", r)
	}
	if r := v.ExecuteTrade(nil, 0); r != trade.FAIL_NULL {
		t.Fatalf("want FAIL_NULL, got %v", r)
	}
	if r := v.ExecuteTrade(wallet.New("", 9), 0); r != trade.FAIL_NULL {
		t.Fatalf("want FAIL_NULL, got %v", r)
	}
}

func TestExecuteInvalidTrade(t *testing.T) {
	v, err := New(testUID, 2, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	// Slot 1 is an unconfigured placeholder.
	w := wallet.New("alice", 9)
	if r := v.ExecuteTrade(w, 1); r != trade.FAIL_INVALID_TRADE {
		t.Fatalf("want FAIL_INVALID_TRADE, got %v", r)
	}
}

func TestExecuteCreative(t *testing.T) {
	opts := testOptions()
	opts.Creative = true
	v := newSaleTrader(t, opts, 64)

	w := wallet.New("alice", 9)
	w.Deposit(money.FromInt(25))

	if r := v.ExecuteTrade(w, 0); r != trade.SUCCESS {
		t.Fatalf("want SUCCESS, got %v", r)
	}
	if got := v.Storage().CountMatching(&item.Requirement{ID: "stick", Count: 1}); got != 64 {
		t.Fatalf("want storage untouched at 64 sticks, got %d", got)
	}
	if !v.Funds().IsEmpty() {
		t.Fatalf("want no stored funds in creative mode, got %v", v.Funds())
	}
	if got := v.TradeStock(0); got != -1 {
		t.Fatalf("want unlimited stock, got %d", got)
	}
	if want := money.FromInt(10); !v.Stats().MoneyEarned.Equal(want) {
		t.Fatalf("want money earned %v, got %v", want, v.Stats().MoneyEarned)
	}
}

func TestExecuteCreativeEmptyStorage(t *testing.T) {
	opts := testOptions()
	opts.Creative = true
	v := newSaleTrader(t, opts, 0)

	w := wallet.New("alice", 9)
	w.Deposit(money.FromInt(25))

	if r := v.ExecuteTrade(w, 0); r != trade.SUCCESS {
		t.Fatalf("want SUCCESS, got %v", r)
	}
	if got := w.Count(&item.Requirement{ID: "stick", Count: 1}); got != 5 {
		t.Fatalf("want 5 sticks in wallet, got %d", got)
	}
	if want := money.FromInt(15); !w.AvailableFunds().Equal(want) {
		t.Fatalf("want wallet funds %v, got %v", want, w.AvailableFunds())
	}
	if got := v.Storage().CountMatching(&item.Requirement{ID: "stick", Count: 1}); got != 0 {
		t.Fatalf("want storage still empty, got %d sticks", got)
	}
}

func TestExecuteCreativeBarterEmptyStorage(t *testing.T) {
	opts := testOptions()
	opts.Creative = true
	v, err := New(testUID, 1, opts)
	if err != nil {
		t.Fatal(err)
	}
	tr := v.Trade(0)
	tr.Direction = trade.BARTER
	tr.SellItems[0] = item.New("stick", 8)
	tr.BarterItems[0] = item.New("emerald", 2)

	w := wallet.New("carol", 9)
	w.PutItem(item.New("emerald", 4))

	if r := v.ExecuteTrade(w, 0); r != trade.SUCCESS {
		t.Fatalf("want SUCCESS, got %v", r)
	}
	if got := w.Count(&item.Requirement{ID: "stick", Count: 1}); got != 8 {
		t.Fatalf("want 8 sticks in wallet, got %d", got)
	}
	if got := w.Count(&item.Requirement{ID: "emerald", Count: 1}); got != 2 {
		t.Fatalf("want 2 emeralds left in wallet, got %d", got)
	}
	if got := v.Storage().CountMatching(&item.Requirement{ID: "emerald", Count: 1}); got != 0 {
		t.Fatalf("want storage still empty, got %d emeralds", got)
	}
}

func TestExecutePurchase(t *testing.T) {
	v, err := New(testUID, 1, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	tr := v.Trade(0)
	tr.Direction = trade.PURCHASE
	tr.SellItems[0] = item.New("stone", 3)
	tr.Cost = money.FromInt(5)
	v.DepositFunds(money.FromInt(20))

	w := wallet.New("bob", 9)
	w.PutItem(item.New("stone", 10))

	if r := v.ExecuteTrade(w, 0); r != trade.SUCCESS {
		t.Fatalf("want SUCCESS, got %v", r)
	}
	if want := money.FromInt(5); !w.AvailableFunds().Equal(want) {
		t.Fatalf("want wallet funds %v, got %v", want, w.AvailableFunds())
	}
	if want := money.FromInt(15); !v.Funds().Equal(want) {
		t.Fatalf("want trader funds %v, got %v", want, v.Funds())
	}
	if got := w.Count(&item.Requirement{ID: "stone", Count: 1}); got != 7 {
		t.Fatalf("want 7 stones left in wallet, got %d", got)
	}
	if got := v.Storage().CountMatching(&item.Requirement{ID: "stone", Count: 1}); got != 3 {
		t.Fatalf("want 3 stones in storage, got %d", got)
	}
	if want := money.FromInt(5); !v.Stats().MoneyPaid.Equal(want) {
		t.Fatalf("want money paid %v, got %v", want, v.Stats().MoneyPaid)
	}
}

func TestExecutePurchaseNoFunds(t *testing.T) {
	v, err := New(testUID, 1, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	tr := v.Trade(0)
	tr.Direction = trade.PURCHASE
	tr.SellItems[0] = item.New("stone", 3)
	tr.Cost = money.FromInt(5)

	w := wallet.New("bob", 9)
	w.PutItem(item.New("stone", 10))

	// A trader that cannot pay out is treated as out of stock.
	if r := v.ExecuteTrade(w, 0); r != trade.FAIL_OUT_OF_STOCK {
		t.Fatalf("want FAIL_OUT_OF_STOCK, got %v", r)
	}
	if got := w.Count(&item.Requirement{ID: "stone", Count: 1}); got != 10 {
		t.Fatalf("want wallet untouched at 10 stones, got %d", got)
	}
}

type eventRecorder struct {
	events []notify.Event
}

func (r *eventRecorder) PushNotification(e notify.Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) outOfStock() *notify.OutOfStockEvent {
	for _, e := range r.events {
		if v, ok := e.(*notify.OutOfStockEvent); ok {
			return v
		}
	}
	return nil
}

func TestExecutePurchaseDrainsFunds(t *testing.T) {
	opts := testOptions()
	rec := new(eventRecorder)
	opts.Notifier = rec
	v, err := New(testUID, 1, opts)
	if err != nil {
		t.Fatal(err)
	}
	tr := v.Trade(0)
	tr.Direction = trade.PURCHASE
	tr.SellItems[0] = item.New("stone", 3)
	tr.Cost = money.FromInt(5)
	v.DepositFunds(money.FromInt(12))

	w := wallet.New("bob", 9)
	w.PutItem(item.New("stone", 10))

	if got := v.TradeStock(0); got != 2 {
		t.Fatalf("want purchase stock 2, got %d", got)
	}

	if r := v.ExecuteTrade(w, 0); r != trade.SUCCESS {
		t.Fatalf("want SUCCESS, got %v", r)
	}
	if rec.outOfStock() != nil {
		t.Fatalf("want no out-of-stock event while funds remain")
	}
	if got := v.TradeStock(0); got != 1 {
		t.Fatalf("want purchase stock 1, got %d", got)
	}

	if r := v.ExecuteTrade(w, 0); r != trade.SUCCESS {
		t.Fatalf("want SUCCESS, got %v", r)
	}
	e := rec.outOfStock()
	if e == nil {
		t.Fatalf("want out-of-stock event after funds drained")
	}
	if e.TraderUID != testUID || e.TradeIndex != 0 {
		t.Fatalf("unexpected event %+v", e)
	}
	if got := v.TradeStock(0); got != 0 {
		t.Fatalf("want purchase stock 0, got %d", got)
	}
	if r := v.ExecuteTrade(w, 0); r != trade.FAIL_OUT_OF_STOCK {
		t.Fatalf("want FAIL_OUT_OF_STOCK, got %v", r)
	}
}

func TestExecutePurchaseMissingItems(t *testing.T) {
	v, err := New(testUID, 1, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	tr := v.Trade(0)
	tr.Direction = trade.PURCHASE
	tr.SellItems[0] = item.New("stone", 3)
	tr.Cost = money.FromInt(5)
	v.DepositFunds(money.FromInt(20))

	w := wallet.New("bob", 9)
	if r := v.ExecuteTrade(w, 0); r != trade.FAIL_CANNOT_AFFORD {
		t.Fatalf("want FAIL_CANNOT_AFFORD, got %v", r)
	}
}

// vanishingItemsContext selects items for collection but then denies
// still having them, as when another actor empties the inventory
// between the two calls.
type vanishingItemsContext struct {
	*wallet.Wallet
}

func (c *vanishingItemsContext) HasItems(items []*item.Stack) bool { return false }

func TestExecutePurchaseItemsVanish(t *testing.T) {
	v, err := New(testUID, 1, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	tr := v.Trade(0)
	tr.Direction = trade.PURCHASE
	tr.SellItems[0] = item.New("stone", 3)
	tr.Cost = money.FromInt(5)
	v.DepositFunds(money.FromInt(20))

	w := wallet.New("bob", 9)
	w.PutItem(item.New("stone", 10))

	if r := v.ExecuteTrade(&vanishingItemsContext{Wallet: w}, 0); r != trade.FAIL_CANNOT_AFFORD {
		t.Fatalf("want FAIL_CANNOT_AFFORD, got %v", r)
	}
	if got := w.Count(&item.Requirement{ID: "stone", Count: 1}); got != 10 {
		t.Fatalf("want wallet untouched at 10 stones, got %d", got)
	}
	if want := money.FromInt(20); !v.Funds().Equal(want) {
		t.Fatalf("want trader funds untouched at %v, got %v", want, v.Funds())
	}
}

func TestExecuteBarter(t *testing.T) {
	v, err := New(testUID, 1, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	tr := v.Trade(0)
	tr.Direction = trade.BARTER
	tr.SellItems[0] = item.New("stick", 8)
	tr.BarterItems[0] = item.New("emerald", 2)
	v.Storage().ForceAddItem(item.New("stick", 32))

	w := wallet.New("carol", 9)
	w.PutItem(item.New("emerald", 4))

	if r := v.ExecuteTrade(w, 0); r != trade.SUCCESS {
		t.Fatalf("want SUCCESS, got %v", r)
	}
	if got := w.Count(&item.Requirement{ID: "stick", Count: 1}); got != 8 {
		t.Fatalf("want 8 sticks in wallet, got %d", got)
	}
	if got := w.Count(&item.Requirement{ID: "emerald", Count: 1}); got != 2 {
		t.Fatalf("want 2 emeralds left in wallet, got %d", got)
	}
	if got := v.Storage().CountMatching(&item.Requirement{ID: "emerald", Count: 1}); got != 2 {
		t.Fatalf("want 2 emeralds in storage, got %d", got)
	}
	if got := v.Storage().CountMatching(&item.Requirement{ID: "stick", Count: 1}); got != 24 {
		t.Fatalf("want 24 sticks in storage, got %d", got)
	}
}

func TestExecuteBarterMissingInputs(t *testing.T) {
	v, err := New(testUID, 1, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	tr := v.Trade(0)
	tr.Direction = trade.BARTER
	tr.SellItems[0] = item.New("stick", 8)
	tr.BarterItems[0] = item.New("emerald", 2)
	v.Storage().ForceAddItem(item.New("stick", 32))

	w := wallet.New("carol", 9)
	if r := v.ExecuteTrade(w, 0); r != trade.FAIL_CANNOT_AFFORD {
		t.Fatalf("want FAIL_CANNOT_AFFORD, got %v", r)
	}
}

func TestExecuteSaleTaxes(t *testing.T) {
	opts := testOptions()
	opts.TaxPolicy = money.FlatRate(decimal.NewFromInt(10))
	v := newSaleTrader(t, opts, 64)

	w := wallet.New("alice", 9)
	w.Deposit(money.FromInt(25))

	if r := v.ExecuteTrade(w, 0); r != trade.SUCCESS {
		t.Fatalf("want SUCCESS, got %v", r)
	}
	if want := money.FromInt(9); !v.Funds().Equal(want) {
		t.Fatalf("want trader funds %v after taxes, got %v", want, v.Funds())
	}
	if want := money.FromInt(1); !v.Stats().TaxesPaid.Equal(want) {
		t.Fatalf("want taxes paid %v, got %v", want, v.Stats().TaxesPaid)
	}
}

func TestExecuteRuleDenial(t *testing.T) {
	v := newSaleTrader(t, nil, 64)
	v.Trade(0).Rules = []trade.Rule{&rules.TradeLimit{Limit: 1}}

	w := wallet.New("alice", 9)
	w.Deposit(money.FromInt(25))

	if r := v.ExecuteTrade(w, 0); r != trade.SUCCESS {
		t.Fatalf("want SUCCESS, got %v", r)
	}
	if r := v.ExecuteTrade(w, 0); r != trade.FAIL_TRADE_RULE_DENIAL {
		t.Fatalf("want FAIL_TRADE_RULE_DENIAL, got %v", r)
	}
}

// The coarse per-slot stock check can pass while no concrete stack
// combination satisfies both slots together. Execution reports it as
// out of stock.
func TestExecuteSaleOverlappingSlots(t *testing.T) {
	v, err := New(testUID, 1, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	tr := v.Trade(0)
	tr.Direction = trade.SALE
	tr.SellItems[0] = item.New("stick", 40)
	tr.SellItems[1] = item.New("stick", 40)
	tr.Cost = money.FromInt(10)
	v.Storage().ForceAddItem(item.New("stick", 64))

	if tr.OutOfStock(v.Storage()) {
		t.Fatalf("want coarse check to report stock available")
	}

	w := wallet.New("alice", 9)
	w.Deposit(money.FromInt(25))
	if r := v.ExecuteTrade(w, 0); r != trade.FAIL_OUT_OF_STOCK {
		t.Fatalf("want FAIL_OUT_OF_STOCK, got %v", r)
	}
}

func TestOverrideTradeCount(t *testing.T) {
	v, err := New(testUID, 3, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	v.Trade(0).SellItems[0] = item.New("stick", 5)

	v.OverrideTradeCount(1000)
	if got := v.NumTrades(); got != MaxTrades {
		t.Fatalf("want %d trades, got %d", MaxTrades, got)
	}
	v.OverrideTradeCount(0)
	if got := v.NumTrades(); got != MinTrades {
		t.Fatalf("want %d trades, got %d", MinTrades, got)
	}
	if got := v.Trade(0).SellItems[0]; got.IsEmpty() || got.ID != "stick" {
		t.Fatalf("want trade 0 preserved across resizes, got %v", got)
	}
}

func TestAddRemoveTrade(t *testing.T) {
	opts := testOptions()
	opts.AdminCheck = func(playerID string) bool { return playerID == "admin" }
	v, err := New(testUID, 1, opts)
	if err != nil {
		t.Fatal(err)
	}

	if err := v.AddTrade("mallory"); err == nil {
		t.Fatalf("want permission error, got nil")
	}
	if err := v.AddTrade("admin"); err != nil {
		t.Fatal(err)
	}
	if got := v.NumTrades(); got != 2 {
		t.Fatalf("want 2 trades, got %d", got)
	}
	if err := v.RemoveTrade("admin"); err != nil {
		t.Fatal(err)
	}
	if err := v.RemoveTrade("admin"); err == nil {
		t.Fatalf("want minimum trade count error, got nil")
	}
}

func TestStorageUpgrades(t *testing.T) {
	v := newSaleTrader(t, nil, 0)
	if got := v.StorageStackLimit(); got != DefaultStackLimit {
		t.Fatalf("want limit %d, got %d", DefaultStackLimit, got)
	}
	if err := v.InstallUpgrade("iron", 192); err != nil {
		t.Fatal(err)
	}
	if got := v.StorageStackLimit(); got != DefaultStackLimit+192 {
		t.Fatalf("want limit %d, got %d", DefaultStackLimit+192, got)
	}
	if err := v.InstallUpgrade("", 10); err == nil {
		t.Fatalf("want invalid upgrade error, got nil")
	}
}

func TestItemHandler(t *testing.T) {
	v := newSaleTrader(t, nil, 0)
	h := v.Handler()

	// Sticks are relevant; stones are not.
	if rest := h.InsertItem(item.New("stone", 10)); rest == nil || rest.Count != 10 {
		t.Fatalf("want irrelevant item rejected, got %v", rest)
	}
	if rest := h.InsertItem(item.New("stick", 100)); rest != nil {
		t.Fatalf("want full insert, got remainder %v", rest)
	}
	if rest := h.InsertItem(item.New("stick", DefaultStackLimit)); rest == nil || rest.Count != 100 {
		t.Fatalf("want remainder of 100, got %v", rest)
	}
	if got := h.ExtractItem(item.New("stick", 1), 10); got != nil {
		t.Fatalf("want no extraction of relevant items, got %v", got)
	}
}
