// Copyright (c) 2025 BVK Chaitanya

package item

import "testing"

func TestIsEmpty(t *testing.T) {
	var nilStack *Stack
	if !nilStack.IsEmpty() {
		t.Fatalf("want nil stack to be empty")
	}
	if !New("", 5).IsEmpty() {
		t.Fatalf("want stack without id to be empty")
	}
	if !New("stick", 0).IsEmpty() {
		t.Fatalf("want zero count stack to be empty")
	}
	if New("stick", 1).IsEmpty() {
		t.Fatalf("want stack with id and count to be non-empty")
	}
}

func TestSameItemData(t *testing.T) {
	a := &Stack{ID: "sword", Count: 1, Data: map[string]string{"sharpness": "5"}}
	b := &Stack{ID: "sword", Count: 3, Data: map[string]string{"sharpness": "5"}}
	c := New("sword", 1)

	if !a.SameItem(b) || !a.SameItem(c) {
		t.Fatalf("want same item kind regardless of data")
	}
	if !a.SameItemData(b) {
		t.Fatalf("want equal data to match")
	}
	if a.SameItemData(c) {
		t.Fatalf("want different data to differ")
	}

	// The display name is not part of the item identity.
	named := a.Clone()
	named.Name = "Slicer"
	if !a.SameItemData(named) {
		t.Fatalf("want name ignored in identity")
	}
}

func TestCloneIsDeep(t *testing.T) {
	a := &Stack{ID: "sword", Count: 1, Data: map[string]string{"sharpness": "5"}}
	b := a.Clone()
	b.Data["sharpness"] = "1"
	if a.Data["sharpness"] != "5" {
		t.Fatalf("want clone to copy the data map")
	}
}

func TestRequirementMatches(t *testing.T) {
	sharp := &Stack{ID: "sword", Count: 1, Data: map[string]string{"sharpness": "5"}}
	plain := New("sword", 1)

	strict := RequirementOf(sharp, true)
	if !strict.Matches(sharp) || strict.Matches(plain) {
		t.Fatalf("want strict requirement to match exact data only")
	}

	loose := RequirementOf(sharp, false)
	if !loose.Matches(sharp) || !loose.Matches(plain) {
		t.Fatalf("want loose requirement to match any data variant")
	}
	if loose.Matches(New("stick", 1)) {
		t.Fatalf("want other item kinds rejected")
	}

	empty := RequirementOf(nil, true)
	if !empty.IsEmpty() || empty.Matches(plain) {
		t.Fatalf("want empty requirement to match nothing")
	}
}
