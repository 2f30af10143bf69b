// Copyright (c) 2025 BVK Chaitanya

// Package item defines the item stack and item requirement value types
// used by trades and trader storage.
package item

import (
	"fmt"
	"maps"
)

// MaxStackSize is the largest count a single stack holds when storage
// contents are split into transportable stacks.
const MaxStackSize = 64

// Stack is a quantity of one item kind. Data holds optional attached
// metadata (enchantments, damage, etc.) whose significance for matching
// depends on each trade's enforcement flags. Name is an optional
// display name override.
//
// A nil stack, an empty ID or a non-positive count all mean "empty".
type Stack struct {
	ID    string
	Count int
	Data  map[string]string
	Name  string
}

func New(id string, count int) *Stack {
	return &Stack{ID: id, Count: count}
}

func (s *Stack) IsEmpty() bool {
	return s == nil || len(s.ID) == 0 || s.Count <= 0
}

func (s *Stack) Check() error {
	if s == nil {
		return fmt.Errorf("stack cannot be nil")
	}
	if len(s.ID) == 0 {
		return fmt.Errorf("item id cannot be empty")
	}
	if s.Count <= 0 {
		return fmt.Errorf("item count cannot be zero or negative")
	}
	return nil
}

func (s *Stack) Clone() *Stack {
	if s == nil {
		return nil
	}
	c := *s
	if s.Data != nil {
		c.Data = maps.Clone(s.Data)
	}
	return &c
}

// WithCount returns a copy of the stack holding the given count.
func (s *Stack) WithCount(n int) *Stack {
	c := s.Clone()
	c.Count = n
	return c
}

// SameItem reports whether both stacks hold the same item kind,
// ignoring the attached data.
func (s *Stack) SameItem(o *Stack) bool {
	if s.IsEmpty() || o.IsEmpty() {
		return false
	}
	return s.ID == o.ID
}

// SameItemData reports whether both stacks hold the same item kind with
// equal attached data.
func (s *Stack) SameItemData(o *Stack) bool {
	if !s.SameItem(o) {
		return false
	}
	return maps.Equal(s.Data, o.Data)
}

func (s *Stack) String() string {
	if s.IsEmpty() {
		return "empty"
	}
	return fmt.Sprintf("%dx%s", s.Count, s.ID)
}
