// Copyright (c) 2025 BVK Chaitanya

// Package storage implements the bounded item inventory backing a
// trader's offers.
package storage

import (
	"github.com/bvk/tradepost/item"
)

// Filter lets the owning trader decide which items belong in its
// storage and how many items of one kind it can hold.
type Filter interface {
	// IsItemRelevant reports whether at least one trade cares about the
	// item.
	IsItemRelevant(*item.Stack) bool

	// StorageStackLimit is the per item-kind capacity, including any
	// installed capacity upgrades.
	StorageStackLimit() int
}

// Storage is a multiset of item stacks keyed by item kind and attached
// data. Capacity applies per item kind: the total count of all stacks
// sharing one item id must not exceed the filter's stack limit.
//
// A locked storage was defined by a data-pack author; it only accepts
// item kinds it already contains.
type Storage struct {
	filter Filter

	locked bool

	contents []*item.Stack
}

func New(filter Filter) *Storage {
	return &Storage{filter: filter}
}

// NewLocked creates an author-defined storage holding the given stacks.
func NewLocked(filter Filter, stacks []*item.Stack) *Storage {
	s := &Storage{filter: filter, locked: true}
	for _, stack := range stacks {
		s.ForceAddItem(stack)
	}
	return s
}

func (s *Storage) Locked() bool {
	return s.locked
}

// Contents returns the merged storage entries. Callers must not modify
// the returned stacks.
func (s *Storage) Contents() []*item.Stack {
	return s.contents
}

func (s *Storage) Clone() *Storage {
	c := &Storage{filter: s.filter, locked: s.locked}
	for _, stack := range s.contents {
		c.contents = append(c.contents, stack.Clone())
	}
	return c
}

// CountMatching returns the total count of stored items satisfying the
// requirement.
func (s *Storage) CountMatching(req *item.Requirement) int {
	total := 0
	for _, stack := range s.contents {
		if req.Matches(stack) {
			total += stack.Count
		}
	}
	return total
}

// MatchingStacks returns the storage entries satisfying the
// requirement.
func (s *Storage) MatchingStacks(req *item.Requirement) []*item.Stack {
	var vs []*item.Stack
	for _, stack := range s.contents {
		if req.Matches(stack) {
			vs = append(vs, stack)
		}
	}
	return vs
}

func (s *Storage) countOfKind(id string) int {
	total := 0
	for _, stack := range s.contents {
		if stack.ID == id {
			total += stack.Count
		}
	}
	return total
}

// AllowItem reports whether the item belongs in this storage. Locked
// storages only accept item kinds they already hold; unlocked storages
// defer to the relevance filter.
func (s *Storage) AllowItem(stack *item.Stack) bool {
	if stack.IsEmpty() {
		return false
	}
	if s.locked {
		for _, v := range s.contents {
			if v.SameItemData(stack) {
				return true
			}
		}
		return false
	}
	if s.filter != nil {
		return s.filter.IsItemRelevant(stack)
	}
	return true
}

func (s *Storage) stackLimit() int {
	if s.filter == nil {
		return 0
	}
	return s.filter.StorageStackLimit()
}

// RoomFor returns how many more items of the stack's kind fit within
// capacity.
func (s *Storage) RoomFor(stack *item.Stack) int {
	if stack.IsEmpty() {
		return 0
	}
	room := s.stackLimit() - s.countOfKind(stack.ID)
	if room < 0 {
		return 0
	}
	return room
}

// CanFitItem reports whether adding the stack would keep its item kind
// within capacity.
func (s *Storage) CanFitItem(stack *item.Stack) bool {
	if stack.IsEmpty() {
		return true
	}
	limit := s.stackLimit()
	return s.countOfKind(stack.ID)+stack.Count <= limit
}

// CanFitItems reports whether all stacks can be added together without
// pushing any item kind over capacity.
func (s *Storage) CanFitItems(stacks []*item.Stack) bool {
	added := make(map[string]int)
	for _, stack := range stacks {
		if stack.IsEmpty() {
			continue
		}
		added[stack.ID] += stack.Count
	}
	limit := s.stackLimit()
	for id, n := range added {
		if s.countOfKind(id)+n > limit {
			return false
		}
	}
	return true
}

// AddItem adds the stack if it is allowed and fits within capacity.
func (s *Storage) AddItem(stack *item.Stack) bool {
	if !s.AllowItem(stack) || !s.CanFitItem(stack) {
		return false
	}
	s.ForceAddItem(stack)
	return true
}

// ForceAddItem adds the stack unconditionally, merging it into an
// existing entry with the same item kind and data. Used after capacity
// was already validated, and by creative-mode administrative edits.
func (s *Storage) ForceAddItem(stack *item.Stack) {
	if stack.IsEmpty() {
		return
	}
	for _, v := range s.contents {
		if v.SameItemData(stack) {
			v.Count += stack.Count
			return
		}
	}
	s.contents = append(s.contents, stack.Clone())
}

// RemoveItem removes up to stack.Count items matching the stack's kind
// and data, returning the count actually removed.
func (s *Storage) RemoveItem(stack *item.Stack) int {
	if stack.IsEmpty() {
		return 0
	}
	removed := 0
	for _, v := range s.contents {
		if !v.SameItemData(stack) {
			continue
		}
		n := min(v.Count, stack.Count-removed)
		v.Count -= n
		removed += n
		if removed == stack.Count {
			break
		}
	}
	s.compact()
	return removed
}

func (s *Storage) compact() {
	var vs []*item.Stack
	for _, v := range s.contents {
		if !v.IsEmpty() {
			vs = append(vs, v)
		}
	}
	s.contents = vs
}

// SplitContents returns the storage contents split into stacks of at
// most item.MaxStackSize each.
func (s *Storage) SplitContents() []*item.Stack {
	var vs []*item.Stack
	for _, v := range s.contents {
		for n := v.Count; n > 0; n -= item.MaxStackSize {
			vs = append(vs, v.WithCount(min(n, item.MaxStackSize)))
		}
	}
	return vs
}
