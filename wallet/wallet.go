// Copyright (c) 2025 BVK Chaitanya

// Package wallet implements an in-memory trade context: a player's
// money purse plus a slot-based item inventory.
package wallet

import (
	"github.com/bvk/tradepost/item"
	"github.com/bvk/tradepost/money"
	"github.com/bvk/tradepost/trade"
)

// Wallet holds a player's spendable money and a bounded inventory of
// item slots. Each slot holds one stack of up to item.MaxStackSize
// items.
type Wallet struct {
	playerID string

	funds money.Value

	slots []*item.Stack
}

var _ trade.Context = &Wallet{}

// New creates a wallet with the given number of inventory slots.
func New(playerID string, numSlots int) *Wallet {
	return &Wallet{
		playerID: playerID,
		slots:    make([]*item.Stack, numSlots),
	}
}

func (w *Wallet) PlayerID() string {
	return w.playerID
}

func (w *Wallet) AvailableFunds() money.Value {
	return w.funds
}

// Deposit adds money to the purse.
func (w *Wallet) Deposit(v money.Value) {
	if !v.IsEmpty() {
		w.funds = w.funds.Add(v)
	}
}

func (w *Wallet) GetPayment(price money.Value) bool {
	if price.IsZero() {
		return true
	}
	if w.funds.Cmp(price) < 0 {
		return false
	}
	w.funds = w.funds.Sub(price)
	return true
}

func (w *Wallet) GivePayment(amount money.Value) {
	if !amount.IsEmpty() {
		w.funds = w.funds.Add(amount)
	}
}

// Slots returns the inventory slots. Empty slots are nil.
func (w *Wallet) Slots() []*item.Stack {
	return w.slots
}

// Count returns the total inventory count satisfying the requirement.
func (w *Wallet) Count(req *item.Requirement) int {
	total := 0
	for _, s := range w.slots {
		if req.Matches(s) {
			total += s.Count
		}
	}
	return total
}

func (w *Wallet) CollectableItems(first, second *item.Requirement) []*item.Stack {
	var picked []*item.Stack
	taken := make(map[int]int)
	for _, req := range []*item.Requirement{first, second} {
		if req.IsEmpty() {
			continue
		}
		needed := req.Count
		for i, s := range w.slots {
			if needed == 0 {
				break
			}
			if !req.Matches(s) {
				continue
			}
			n := min(s.Count-taken[i], needed)
			if n <= 0 {
				continue
			}
			taken[i] += n
			needed -= n
			picked = append(picked, s.WithCount(n))
		}
		if needed > 0 {
			return nil
		}
	}
	return picked
}

func (w *Wallet) HasItems(items []*item.Stack) bool {
	avail := make(map[int]int)
	for i, s := range w.slots {
		if !s.IsEmpty() {
			avail[i] = s.Count
		}
	}
	for _, v := range items {
		needed := v.Count
		for i, s := range w.slots {
			if needed == 0 {
				break
			}
			if !v.SameItemData(s) {
				continue
			}
			n := min(avail[i], needed)
			avail[i] -= n
			needed -= n
		}
		if needed > 0 {
			return false
		}
	}
	return true
}

func (w *Wallet) CollectItems(items []*item.Stack) {
	for _, v := range items {
		w.CollectItem(v)
	}
}

func (w *Wallet) CollectItem(stack *item.Stack) {
	if stack.IsEmpty() {
		return
	}
	needed := stack.Count
	for i, s := range w.slots {
		if needed == 0 {
			break
		}
		if !stack.SameItemData(s) {
			continue
		}
		n := min(s.Count, needed)
		s.Count -= n
		needed -= n
		if s.Count == 0 {
			w.slots[i] = nil
		}
	}
}

func (w *Wallet) CanFitItems(items []*item.Stack) bool {
	// Simulate placement against a copy of the slot layout.
	type room struct {
		stack *item.Stack
		count int
	}
	slots := make([]*room, len(w.slots))
	for i, s := range w.slots {
		if !s.IsEmpty() {
			slots[i] = &room{stack: s, count: s.Count}
		}
	}
	for _, v := range items {
		if v.IsEmpty() {
			continue
		}
		needed := v.Count
		for i := 0; i < len(slots) && needed > 0; i++ {
			r := slots[i]
			if r == nil {
				slots[i] = &room{stack: v, count: min(needed, item.MaxStackSize)}
				needed -= slots[i].count
				continue
			}
			if !r.stack.SameItemData(v) {
				continue
			}
			n := min(item.MaxStackSize-r.count, needed)
			r.count += n
			needed -= n
		}
		if needed > 0 {
			return false
		}
	}
	return true
}

func (w *Wallet) PutItem(stack *item.Stack) bool {
	if stack.IsEmpty() {
		return true
	}
	if !w.CanFitItems([]*item.Stack{stack}) {
		return false
	}
	needed := stack.Count
	for i, s := range w.slots {
		if needed == 0 {
			break
		}
		if s.IsEmpty() {
			w.slots[i] = stack.WithCount(min(needed, item.MaxStackSize))
			needed -= w.slots[i].Count
			continue
		}
		if !s.SameItemData(stack) {
			continue
		}
		n := min(item.MaxStackSize-s.Count, needed)
		s.Count += n
		needed -= n
	}
	return true
}
