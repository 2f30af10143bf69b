// Copyright (c) 2025 BVK Chaitanya

package storage

import (
	"testing"

	"github.com/bvk/tradepost/item"
)

type testFilter struct {
	allowed map[string]bool
	limit   int
}

func (f *testFilter) IsItemRelevant(s *item.Stack) bool {
	return f.allowed[s.ID]
}

func (f *testFilter) StorageStackLimit() int {
	return f.limit
}

func newTestStorage(limit int, allowed ...string) *Storage {
	f := &testFilter{allowed: make(map[string]bool), limit: limit}
	for _, id := range allowed {
		f.allowed[id] = true
	}
	return New(f)
}

func TestAddItem(t *testing.T) {
	s := newTestStorage(100, "stick")

	if !s.AddItem(item.New("stick", 60)) {
		t.Fatalf("want stick accepted")
	}
	if s.AddItem(item.New("stone", 1)) {
		t.Fatalf("want irrelevant stone rejected")
	}
	if s.AddItem(item.New("stick", 41)) {
		t.Fatalf("want over-capacity add rejected")
	}
	if !s.AddItem(item.New("stick", 40)) {
		t.Fatalf("want add at exactly the capacity accepted")
	}
	if got := s.CountMatching(&item.Requirement{ID: "stick", Count: 1}); got != 100 {
		t.Fatalf("want 100 sticks, got %d", got)
	}
}

func TestMergeByData(t *testing.T) {
	s := newTestStorage(100, "sword")

	sharp := &item.Stack{ID: "sword", Count: 1, Data: map[string]string{"sharpness": "5"}}
	plain := item.New("sword", 1)
	s.ForceAddItem(sharp)
	s.ForceAddItem(plain)
	s.ForceAddItem(sharp.Clone())

	if got := len(s.Contents()); got != 2 {
		t.Fatalf("want 2 distinct entries, got %d", got)
	}
	exact := &item.Requirement{ID: "sword", Count: 1, Data: map[string]string{"sharpness": "5"}, EnforceData: true}
	if got := s.CountMatching(exact); got != 2 {
		t.Fatalf("want 2 sharp swords, got %d", got)
	}
	any := &item.Requirement{ID: "sword", Count: 1}
	if got := s.CountMatching(any); got != 3 {
		t.Fatalf("want 3 swords of any data, got %d", got)
	}
}

func TestCanFitItems(t *testing.T) {
	s := newTestStorage(100, "stick", "stone")
	s.ForceAddItem(item.New("stick", 90))

	fits := []*item.Stack{item.New("stick", 5), item.New("stick", 5), item.New("stone", 100)}
	if !s.CanFitItems(fits) {
		t.Fatalf("want items to fit")
	}
	over := []*item.Stack{item.New("stick", 6), item.New("stick", 5)}
	if s.CanFitItems(over) {
		t.Fatalf("want combined overflow detected")
	}
}

func TestRemoveItem(t *testing.T) {
	s := newTestStorage(100, "stick")
	s.ForceAddItem(item.New("stick", 10))

	if got := s.RemoveItem(item.New("stick", 4)); got != 4 {
		t.Fatalf("want 4 removed, got %d", got)
	}
	if got := s.RemoveItem(item.New("stick", 10)); got != 6 {
		t.Fatalf("want 6 removed, got %d", got)
	}
	if got := len(s.Contents()); got != 0 {
		t.Fatalf("want empty storage, got %d entries", got)
	}
}

func TestLockedStorage(t *testing.T) {
	s := NewLocked(&testFilter{limit: 100}, []*item.Stack{item.New("stick", 10)})

	if !s.Locked() {
		t.Fatalf("want storage locked")
	}
	if !s.AllowItem(item.New("stick", 1)) {
		t.Fatalf("want existing kind accepted")
	}
	if s.AllowItem(item.New("stone", 1)) {
		t.Fatalf("want new kind rejected")
	}
}

func TestRoomFor(t *testing.T) {
	s := newTestStorage(100, "stick")
	s.ForceAddItem(item.New("stick", 30))
	if got := s.RoomFor(item.New("stick", 1)); got != 70 {
		t.Fatalf("want room for 70, got %d", got)
	}
}

func TestSplitContents(t *testing.T) {
	s := newTestStorage(1000, "stick")
	s.ForceAddItem(item.New("stick", 130))

	var counts []int
	for _, v := range s.SplitContents() {
		counts = append(counts, v.Count)
	}
	if len(counts) != 3 || counts[0] != 64 || counts[1] != 64 || counts[2] != 2 {
		t.Fatalf("want [64 64 2], got %v", counts)
	}
}
