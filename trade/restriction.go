// Copyright (c) 2025 BVK Chaitanya

package trade

// Restriction caps the quantity a trade can expose per execution.
// Restrictions come from an explicit table supplied at account
// construction, not from a process-wide registry.
type Restriction struct {
	// StockCap limits the reported stock count; zero means unlimited.
	StockCap int
}

// NoRestriction leaves the trade unrestricted.
var NoRestriction = Restriction{}

func (r Restriction) CapStock(n int) int {
	if r.StockCap > 0 && n > r.StockCap {
		return r.StockCap
	}
	return n
}
