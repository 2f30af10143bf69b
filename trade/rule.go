// Copyright (c) 2025 BVK Chaitanya

package trade

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bvk/tradepost/money"
	"github.com/bvk/tradepost/syncmap"
)

// Rule is a pluggable predicate/side-effect attached to one trade.
// Rules run in attachment order; any PreTrade denial short-circuits
// before resources move.
type Rule interface {
	// Name identifies the rule type in serialized form.
	Name() string

	// PreTrade may veto the attempt by returning a non-nil error. No
	// state has been touched when it runs.
	PreTrade(t *Trade, ctx Context) error

	// PostTrade runs arbitrary effects after a successful trade.
	PostTrade(t *Trade, ctx Context, price, taxes money.Value)
}

// CostAdjuster is an optional Rule interface for rules that adjust the
// trade price per attempt.
type CostAdjuster interface {
	AdjustCost(t *Trade, ctx Context, cost money.Value) money.Value
}

// PersistentRule is an optional Rule interface for rules that carry
// state that must survive save/reload, distinct from their static
// configuration. A nil PersistentData result means "nothing to save".
type PersistentRule interface {
	PersistentData() []byte
	SetPersistentData(data []byte) error
}

var ruleRegistry syncmap.Map[string, func() Rule]

// RegisterRule makes a rule type available to the serialization
// codecs. The constructor must return a rule whose configuration can
// round-trip through encoding/json.
func RegisterRule(name string, fn func() Rule) error {
	if len(name) == 0 || fn == nil {
		return os.ErrInvalid
	}
	if _, loaded := ruleRegistry.LoadOrStore(name, fn); loaded {
		return fmt.Errorf("rule type %q is already registered: %w", name, os.ErrExist)
	}
	return nil
}

// NewRule creates an unconfigured rule of the given registered type.
func NewRule(name string) (Rule, error) {
	fn, ok := ruleRegistry.Load(name)
	if !ok {
		return nil, fmt.Errorf("unknown rule type %q: %w", name, os.ErrNotExist)
	}
	return fn(), nil
}

// SavedRule is the serialized form of one rule: its registered type
// name and its JSON configuration.
type SavedRule struct {
	Name   string          `json:"Name"`
	Config json.RawMessage `json:"Config,omitempty"`
}

// SaveRules serializes rule configurations. Persistent rule state is
// not included; see PersistentRuleData.
func SaveRules(rules []Rule) ([]*SavedRule, error) {
	var vs []*SavedRule
	for _, r := range rules {
		cfg, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("could not encode rule %q config: %w", r.Name(), err)
		}
		vs = append(vs, &SavedRule{Name: r.Name(), Config: cfg})
	}
	return vs, nil
}

// LoadRules reconstructs rules from their serialized form. Unknown rule
// types fail the load.
func LoadRules(saved []*SavedRule) ([]Rule, error) {
	var rules []Rule
	for _, sr := range saved {
		r, err := NewRule(sr.Name)
		if err != nil {
			return nil, err
		}
		if len(sr.Config) != 0 {
			if err := json.Unmarshal(sr.Config, r); err != nil {
				return nil, fmt.Errorf("could not decode rule %q config: %w", sr.Name, err)
			}
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// PersistentRuleData gathers the persistent state of the given rules,
// keyed by rule name. Returns nil when every rule reports trivial
// state.
func PersistentRuleData(rules []Rule) map[string][]byte {
	var m map[string][]byte
	for _, r := range rules {
		pr, ok := r.(PersistentRule)
		if !ok {
			continue
		}
		data := pr.PersistentData()
		if len(data) == 0 {
			continue
		}
		if m == nil {
			m = make(map[string][]byte)
		}
		m[r.Name()] = data
	}
	return m
}

// LoadPersistentRuleData restores previously saved persistent state
// into matching rules.
func LoadPersistentRuleData(rules []Rule, m map[string][]byte) error {
	if len(m) == 0 {
		return nil
	}
	for _, r := range rules {
		pr, ok := r.(PersistentRule)
		if !ok {
			continue
		}
		data, ok := m[r.Name()]
		if !ok {
			continue
		}
		if err := pr.SetPersistentData(data); err != nil {
			return fmt.Errorf("could not restore rule %q state: %w", r.Name(), err)
		}
	}
	return nil
}
