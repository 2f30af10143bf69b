// Copyright (c) 2025 BVK Chaitanya

package money

import "github.com/shopspring/decimal"

// TaxPolicy splits a gross amount into the net amount kept and the tax
// paid. The exact policy is supplied by the integration; the engine
// only reports the tax as a side value.
type TaxPolicy func(gross Value) (net Value, tax Value)

// NoTax keeps the full amount.
func NoTax(gross Value) (Value, Value) {
	return gross, Empty()
}

// FlatRate returns a policy taxing the given percentage of every
// amount.
func FlatRate(pct decimal.Decimal) TaxPolicy {
	d100 := decimal.NewFromInt(100)
	return func(gross Value) (Value, Value) {
		if gross.IsEmpty() || pct.IsZero() {
			return gross, Empty()
		}
		tax := gross.Amount.Mul(pct).Div(d100)
		return New(gross.Amount.Sub(tax)), New(tax)
	}
}
