// Copyright (c) 2025 BVK Chaitanya

package trade

import (
	"math/rand"

	"github.com/bvk/tradepost/item"
	"github.com/bvk/tradepost/storage"
)

// StockCount returns how many times the trade's output side can be
// furnished from storage, honoring each sell slot's data enforcement
// and the trade restriction cap. Each slot is examined independently;
// see RandomSellItems for the fine-grained check.
func (t *Trade) StockCount(s *storage.Storage) int {
	if !t.IsValid() || !t.SellItemsDefined() {
		return 0
	}
	stock := -1
	for slot := Sell0; slot <= Sell1; slot++ {
		req := t.Requirement(slot)
		if req.IsEmpty() {
			continue
		}
		n := s.CountMatching(req) / req.Count
		if stock < 0 || n < stock {
			stock = n
		}
	}
	if stock < 0 {
		return 0
	}
	return t.Restriction.CapStock(stock)
}

// HasStock reports whether at least one execution's worth of output is
// available.
func (t *Trade) HasStock(s *storage.Storage) bool {
	return t.StockCount(s) > 0
}

// OutOfStock is the coarse availability check used before selecting
// concrete output stacks.
func (t *Trade) OutOfStock(s *storage.Storage) bool {
	return t.StockCount(s) <= 0
}

// RandomSellItems selects one concrete, currently-satisfiable
// combination of output stacks for the trade. When a sell slot does not
// enforce attached data, the data variant dispensed is chosen at
// random.
//
// Returns nil when no combination is satisfiable. This is a legitimate
// outcome, not an error: with more than one sell slot the coarse
// OutOfStock check examines each slot independently, while this
// selection draws both slots from the same working copy, so the two
// queries can disagree. Callers treat a nil result as stock exhaustion.
func (t *Trade) RandomSellItems(s *storage.Storage, rng *rand.Rand) []*item.Stack {
	if !t.SellItemsDefined() {
		return nil
	}
	// Working copy of per-entry availability, shared across both slots.
	avail := make(map[*item.Stack]int)
	for _, v := range s.Contents() {
		avail[v] = v.Count
	}

	var picked []*item.Stack
	for slot := Sell0; slot <= Sell1; slot++ {
		req := t.Requirement(slot)
		if req.IsEmpty() {
			continue
		}
		entries := s.MatchingStacks(req)
		rng.Shuffle(len(entries), func(i, j int) {
			entries[i], entries[j] = entries[j], entries[i]
		})
		needed := req.Count
		for _, entry := range entries {
			if needed == 0 {
				break
			}
			n := min(avail[entry], needed)
			if n <= 0 {
				continue
			}
			avail[entry] -= n
			needed -= n
			out := entry.WithCount(n)
			out.Name = t.Item(slot).Name
			picked = append(picked, out)
		}
		if needed > 0 {
			return nil
		}
	}
	return picked
}

// RemoveFromStorage debits previously selected output stacks from
// storage.
func (t *Trade) RemoveFromStorage(s *storage.Storage, items []*item.Stack) {
	for _, v := range items {
		s.RemoveItem(v)
	}
}
