// Copyright (c) 2025 BVK Chaitanya

package shop

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bvk/tradepost/item"
)

// parseItemSpec parses an item argument of the form "id:count" or
// "id:count:key=value,key=value".
func parseItemSpec(s string) (*item.Stack, error) {
	fs := strings.SplitN(s, ":", 3)
	if len(fs) < 2 {
		return nil, fmt.Errorf("item spec %q must be id:count", s)
	}
	count, err := strconv.Atoi(fs[1])
	if err != nil {
		return nil, fmt.Errorf("item spec %q has invalid count: %w", s, err)
	}
	v := item.New(fs[0], count)
	if len(fs) == 3 && len(fs[2]) != 0 {
		v.Data = make(map[string]string)
		for _, kv := range strings.Split(fs[2], ",") {
			k, val, ok := strings.Cut(kv, "=")
			if !ok {
				return nil, fmt.Errorf("item spec %q has invalid data pair %q", s, kv)
			}
			v.Data[k] = val
		}
	}
	if err := v.Check(); err != nil {
		return nil, err
	}
	return v, nil
}

func parseItemSpecs(args []string) ([]*item.Stack, error) {
	var vs []*item.Stack
	for _, arg := range args {
		v, err := parseItemSpec(arg)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}
