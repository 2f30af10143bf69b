// Copyright (c) 2025 BVK Chaitanya

package trader

import (
	"github.com/bvk/tradepost/item"
)

// ItemHandler is the restocking adapter for automated item transport
// into and out of the trader's storage. Insertions honor the relevance
// filter and capacity; extractions only release items no valid trade
// needs anymore.
type ItemHandler struct {
	t *Trader
}

func (t *Trader) Handler() *ItemHandler {
	return &ItemHandler{t: t}
}

// InsertItem stores as much of the stack as relevance and capacity
// allow and returns the remainder, or nil when fully inserted.
func (h *ItemHandler) InsertItem(stack *item.Stack) *item.Stack {
	if stack.IsEmpty() {
		return nil
	}
	s := h.t.storage
	if !s.AllowItem(stack) {
		return stack
	}
	n := min(s.RoomFor(stack), stack.Count)
	if n <= 0 {
		return stack
	}
	s.ForceAddItem(stack.WithCount(n))
	if n == stack.Count {
		return nil
	}
	return stack.WithCount(stack.Count - n)
}

// ExtractItem removes up to count items matching the given stack's kind
// and data, but only when no valid trade still dispenses or collects
// that item. Returns the extracted stack or nil.
func (h *ItemHandler) ExtractItem(stack *item.Stack, count int) *item.Stack {
	if stack.IsEmpty() || count <= 0 {
		return nil
	}
	if h.t.IsItemRelevant(stack) {
		return nil
	}
	n := h.t.storage.RemoveItem(stack.WithCount(count))
	if n <= 0 {
		return nil
	}
	return stack.WithCount(n)
}
