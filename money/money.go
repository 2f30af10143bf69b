// Copyright (c) 2025 BVK Chaitanya

// Package money defines the monetary value type used for trade prices,
// trader funds, and taxes.
package money

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Value is an amount of money. The zero Value is "empty", which is not
// a usable price; Free() is an explicit zero price, which is. The
// distinction matters during data-pack imports where a missing price is
// downgraded to a free price with a warning.
type Value struct {
	Amount decimal.Decimal
	Valid  bool
}

func New(amount decimal.Decimal) Value {
	return Value{Amount: amount, Valid: true}
}

func FromInt(n int64) Value {
	return New(decimal.NewFromInt(n))
}

func Parse(s string) (Value, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Value{}, fmt.Errorf("could not parse money value %q: %w", s, err)
	}
	return New(d), nil
}

// Free returns an explicit zero price.
func Free() Value {
	return New(decimal.Zero)
}

// Empty returns the no-value sentinel.
func Empty() Value {
	return Value{}
}

func (v Value) IsEmpty() bool {
	return !v.Valid
}

func (v Value) IsZero() bool {
	return !v.Valid || v.Amount.IsZero()
}

func (v Value) Add(o Value) Value {
	return Value{Amount: v.Amount.Add(o.Amount), Valid: v.Valid || o.Valid}
}

func (v Value) Sub(o Value) Value {
	return Value{Amount: v.Amount.Sub(o.Amount), Valid: v.Valid || o.Valid}
}

// Cmp returns -1, 0 or 1 when v is less than, equal to or greater than
// the other value. Empty values compare as zero.
func (v Value) Cmp(o Value) int {
	return v.Amount.Cmp(o.Amount)
}

func (v Value) Equal(o Value) bool {
	return v.Valid == o.Valid && v.Amount.Equal(o.Amount)
}

func (v Value) String() string {
	if !v.Valid {
		return "empty"
	}
	return v.Amount.String()
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.Amount.String())
}

func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Value{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("could not parse money value %q: %w", s, err)
	}
	*v = New(d)
	return nil
}
