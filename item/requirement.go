// Copyright (c) 2025 BVK Chaitanya

package item

import "maps"

// Requirement describes one item a trade wants to receive or dispense:
// an item kind, a count, and optionally the exact attached data. When
// EnforceData is false any data variant of the item kind matches.
type Requirement struct {
	ID          string
	Count       int
	Data        map[string]string
	EnforceData bool
}

// RequirementOf builds the requirement that the given stack satisfies.
func RequirementOf(s *Stack, enforceData bool) *Requirement {
	if s.IsEmpty() {
		return &Requirement{}
	}
	return &Requirement{
		ID:          s.ID,
		Count:       s.Count,
		Data:        maps.Clone(s.Data),
		EnforceData: enforceData,
	}
}

func (r *Requirement) IsEmpty() bool {
	return r == nil || len(r.ID) == 0 || r.Count <= 0
}

// Matches reports whether the given stack counts toward this
// requirement. Count is not considered; callers sum matching stacks.
func (r *Requirement) Matches(s *Stack) bool {
	if r.IsEmpty() || s.IsEmpty() {
		return false
	}
	if r.ID != s.ID {
		return false
	}
	if r.EnforceData && !maps.Equal(r.Data, s.Data) {
		return false
	}
	return true
}
