// Copyright (c) 2025 BVK Chaitanya

package trade

import (
	"math/rand"
	"testing"

	"github.com/bvk/tradepost/item"
	"github.com/bvk/tradepost/money"
	"github.com/bvk/tradepost/storage"
)

type testFilter struct{}

func (testFilter) IsItemRelevant(*item.Stack) bool { return true }
func (testFilter) StorageStackLimit() int          { return 576 }

func TestIsValid(t *testing.T) {
	v := New()
	if v.IsValid() {
		t.Fatalf("want empty placeholder to be invalid")
	}

	v.SellItems[0] = item.New("stick", 5)
	if v.IsValid() {
		t.Fatalf("want sale without price to be invalid")
	}
	v.Cost = money.Free()
	if !v.IsValid() {
		t.Fatalf("want free sale to be valid")
	}

	v.Direction = BARTER
	if v.IsValid() {
		t.Fatalf("want barter without inputs to be invalid")
	}
	v.BarterItems[1] = item.New("emerald", 2)
	if !v.IsValid() {
		t.Fatalf("want configured barter to be valid")
	}

	v.Direction = NONE
	if v.IsValid() {
		t.Fatalf("want NONE direction to be invalid")
	}
}

func TestStockCount(t *testing.T) {
	s := storage.New(testFilter{})
	s.ForceAddItem(item.New("stick", 23))

	v := New()
	v.SellItems[0] = item.New("stick", 5)
	v.Cost = money.FromInt(1)

	if got := v.StockCount(s); got != 4 {
		t.Fatalf("want stock 4, got %d", got)
	}
	v.Restriction = Restriction{StockCap: 2}
	if got := v.StockCount(s); got != 2 {
		t.Fatalf("want capped stock 2, got %d", got)
	}
	if v.OutOfStock(s) {
		t.Fatalf("want stock available")
	}

	s.RemoveItem(item.New("stick", 20))
	if !v.OutOfStock(s) {
		t.Fatalf("want out of stock with 3 sticks")
	}
}

func TestRandomSellItemsSharedPool(t *testing.T) {
	s := storage.New(testFilter{})
	s.ForceAddItem(item.New("stick", 64))

	v := New()
	v.SellItems[0] = item.New("stick", 40)
	v.SellItems[1] = item.New("stick", 40)
	v.Cost = money.FromInt(1)

	// Each slot alone is satisfiable, but not both from 64 sticks.
	if v.OutOfStock(s) {
		t.Fatalf("want per-slot stock check to pass")
	}
	rng := rand.New(rand.NewSource(1))
	if got := v.RandomSellItems(s, rng); got != nil {
		t.Fatalf("want nil for unsatisfiable combination, got %v", got)
	}

	s.ForceAddItem(item.New("stick", 16))
	picked := v.RandomSellItems(s, rng)
	total := 0
	for _, p := range picked {
		total += p.Count
	}
	if total != 80 {
		t.Fatalf("want 80 sticks picked, got %d", total)
	}
	// Selection must not modify the storage.
	if got := s.CountMatching(&item.Requirement{ID: "stick", Count: 1}); got != 80 {
		t.Fatalf("want storage untouched at 80 sticks, got %d", got)
	}
}

func TestRandomSellItemsDataVariants(t *testing.T) {
	s := storage.New(testFilter{})
	sharp := &item.Stack{ID: "sword", Count: 3, Data: map[string]string{"sharpness": "5"}}
	plain := item.New("sword", 3)
	s.ForceAddItem(sharp)
	s.ForceAddItem(plain)

	v := New()
	v.SellItems[0] = &item.Stack{ID: "sword", Count: 1, Data: map[string]string{"sharpness": "5"}, Name: "Slicer"}
	v.Cost = money.FromInt(1)

	rng := rand.New(rand.NewSource(1))
	picked := v.RandomSellItems(s, rng)
	if len(picked) != 1 {
		t.Fatalf("want one stack, got %v", picked)
	}
	if picked[0].Data["sharpness"] != "5" {
		t.Fatalf("want the enforced data variant, got %+v", picked[0])
	}
	if picked[0].Name != "Slicer" {
		t.Fatalf("want the display name applied, got %q", picked[0].Name)
	}

	// Without enforcement either variant may be dispensed.
	v.EnforceData[Sell0] = false
	seen := make(map[string]bool)
	for i := 0; i < 32; i++ {
		p := v.RandomSellItems(s, rng)
		seen[p[0].Data["sharpness"]] = true
	}
	if len(seen) != 2 {
		t.Fatalf("want both data variants over many draws, got %v", seen)
	}
}

func TestAllowItemInStorage(t *testing.T) {
	v := New()
	v.Direction = BARTER
	v.SellItems[0] = item.New("stick", 8)
	v.BarterItems[0] = item.New("emerald", 2)

	if !v.AllowItemInStorage(item.New("stick", 1)) {
		t.Fatalf("want sold item to be relevant")
	}
	if !v.AllowItemInStorage(item.New("emerald", 1)) {
		t.Fatalf("want barter input to be relevant")
	}
	if v.AllowItemInStorage(item.New("stone", 1)) {
		t.Fatalf("want unrelated item to be irrelevant")
	}

	invalid := New()
	if invalid.AllowItemInStorage(item.New("stick", 1)) {
		t.Fatalf("want invalid trade to claim nothing")
	}
}
