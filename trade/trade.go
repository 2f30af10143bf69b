// Copyright (c) 2025 BVK Chaitanya

// Package trade defines one configurable buy/sell/barter offer, the
// caller-supplied trade context, and the pluggable trade rules.
package trade

import (
	"fmt"

	"github.com/bvk/tradepost/item"
	"github.com/bvk/tradepost/money"
)

// Direction identifies what a trade does from the trader's point of
// view: SALE gives items for money, PURCHASE takes items for money,
// BARTER swaps items for items.
type Direction string

const (
	NONE     Direction = "NONE"
	SALE     Direction = "SALE"
	PURCHASE Direction = "PURCHASE"
	BARTER   Direction = "BARTER"
)

func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case NONE, SALE, PURCHASE, BARTER:
		return Direction(s), nil
	}
	return NONE, fmt.Errorf("unknown trade direction %q", s)
}

// Item slot indices. Slots 0 and 1 hold the items the trader sells (or
// buys, for PURCHASE trades); slots 2 and 3 hold the items a BARTER
// trade takes in.
const (
	Sell0 = iota
	Sell1
	Barter0
	Barter1
	numSlots
)

// Trade is one configured offer. Empty placeholder trades are created
// at account construction and become valid once the editor fills in
// items and price.
type Trade struct {
	Direction Direction

	// SellItems[0] and SellItems[1] are what the trader dispenses
	// (SALE, BARTER) or collects (PURCHASE).
	SellItems [2]*item.Stack

	// BarterItems are only meaningful for BARTER trades.
	BarterItems [2]*item.Stack

	// EnforceData records, per item slot, whether the attached data of
	// the configured item must match exactly. Defaults to true.
	EnforceData [numSlots]bool

	// Cost is required for SALE and PURCHASE and ignored for BARTER.
	Cost money.Value

	Rules []Rule

	Restriction Restriction
}

// New returns an empty placeholder trade. The direction defaults to
// SALE; the trade stays invalid until items and price are configured.
func New() *Trade {
	t := &Trade{Direction: SALE}
	for i := range t.EnforceData {
		t.EnforceData[i] = true
	}
	return t
}

// ListOfSize returns n empty placeholder trades.
func ListOfSize(n int) []*Trade {
	vs := make([]*Trade, n)
	for i := range vs {
		vs[i] = New()
	}
	return vs
}

func (t *Trade) IsSale() bool     { return t.Direction == SALE }
func (t *Trade) IsPurchase() bool { return t.Direction == PURCHASE }
func (t *Trade) IsBarter() bool   { return t.Direction == BARTER }

// SellItemsDefined reports whether at least one sell item slot is
// configured.
func (t *Trade) SellItemsDefined() bool {
	return !t.SellItems[0].IsEmpty() || !t.SellItems[1].IsEmpty()
}

func (t *Trade) barterItemsDefined() bool {
	return !t.BarterItems[0].IsEmpty() || !t.BarterItems[1].IsEmpty()
}

// IsValid reports whether the trade can execute: it needs a sell item,
// a price for SALE/PURCHASE, and a barter item for BARTER.
func (t *Trade) IsValid() bool {
	if !t.SellItemsDefined() {
		return false
	}
	switch t.Direction {
	case SALE, PURCHASE:
		return !t.Cost.IsEmpty()
	case BARTER:
		return t.barterItemsDefined()
	}
	return false
}

// Item returns the configured stack in the given slot (Sell0..Barter1).
func (t *Trade) Item(slot int) *item.Stack {
	switch slot {
	case Sell0, Sell1:
		return t.SellItems[slot]
	case Barter0, Barter1:
		return t.BarterItems[slot-Barter0]
	}
	return nil
}

// SetItem configures the stack in the given slot.
func (t *Trade) SetItem(slot int, stack *item.Stack) {
	switch slot {
	case Sell0, Sell1:
		t.SellItems[slot] = stack
	case Barter0, Barter1:
		t.BarterItems[slot-Barter0] = stack
	}
}

// Requirement returns the item requirement for the given slot, honoring
// the slot's data enforcement flag. Empty slots yield an empty
// requirement.
func (t *Trade) Requirement(slot int) *item.Requirement {
	return item.RequirementOf(t.Item(slot), t.EnforceData[slot])
}

// CostWith evaluates the trade price for one attempt. Rules may adjust
// the price per context; the result is never cached.
func (t *Trade) CostWith(ctx Context) money.Value {
	cost := t.Cost
	for _, r := range t.Rules {
		if a, ok := r.(CostAdjuster); ok {
			cost = a.AdjustCost(t, ctx, cost)
		}
	}
	return cost
}

// AllowItemInStorage reports whether the item is relevant to this
// trade: it matches a dispensed item (SALE, BARTER), a collected item
// (PURCHASE), or a barter input.
func (t *Trade) AllowItemInStorage(stack *item.Stack) bool {
	if !t.IsValid() {
		return false
	}
	for slot := Sell0; slot <= Sell1; slot++ {
		if t.Requirement(slot).Matches(stack) {
			return true
		}
	}
	if t.IsBarter() {
		for slot := Barter0; slot <= Barter1; slot++ {
			if t.Requirement(slot).Matches(stack) {
				return true
			}
		}
	}
	return false
}
