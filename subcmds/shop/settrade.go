// Copyright (c) 2025 BVK Chaitanya

package shop

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/bvk/tradepost/cli"
	"github.com/bvk/tradepost/money"
	"github.com/bvk/tradepost/subcmds/cmdutil"
	"github.com/bvk/tradepost/trade"
	"github.com/bvk/tradepost/trader"
	"github.com/bvkgo/kv"
)

type SetTrade struct {
	Flags

	tradeIndex int

	tradeType string
	price     string

	sell, sell2     string
	barter, barter2 string

	displayName string

	ignoreData bool

	rules string
}

func (c *SetTrade) Run(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("needs one (trader-uid) argument")
	}

	opts, err := cmdutil.TraderOptions()
	if err != nil {
		return err
	}

	db, closer, err := c.GetDatabase(ctx)
	if err != nil {
		return err
	}
	defer closer()

	return kv.WithReadWriter(ctx, db, func(ctx context.Context, rw kv.ReadWriter) error {
		t, err := trader.Load(ctx, args[0], rw, opts)
		if err != nil {
			return err
		}
		v := t.Trade(c.tradeIndex)
		if v == nil {
			return fmt.Errorf("trade index %d is out of bounds", c.tradeIndex)
		}

		if len(c.tradeType) != 0 {
			if v.Direction, err = trade.ParseDirection(c.tradeType); err != nil {
				return err
			}
		}
		if len(c.price) != 0 {
			if v.Cost, err = money.Parse(c.price); err != nil {
				return err
			}
		}

		slots := []struct {
			spec string
			slot int
		}{
			{c.sell, trade.Sell0},
			{c.sell2, trade.Sell1},
			{c.barter, trade.Barter0},
			{c.barter2, trade.Barter1},
		}
		for _, s := range slots {
			if len(s.spec) == 0 {
				continue
			}
			stack, err := parseItemSpec(s.spec)
			if err != nil {
				return err
			}
			if s.slot == trade.Sell0 && len(c.displayName) != 0 {
				stack.Name = c.displayName
			}
			if err := t.SetTradeItem(c.tradeIndex, s.slot, stack); err != nil {
				return err
			}
			if c.ignoreData {
				v.EnforceData[s.slot] = false
			}
		}

		if len(c.rules) != 0 {
			var saved []*trade.SavedRule
			if err := json.Unmarshal([]byte(c.rules), &saved); err != nil {
				return fmt.Errorf("could not parse rules: %w", err)
			}
			if v.Rules, err = trade.LoadRules(saved); err != nil {
				return err
			}
		}

		if !v.IsValid() {
			fmt.Printf("note: trade %d is still incomplete and cannot execute\n", c.tradeIndex)
		}
		return t.Save(ctx, rw)
	})
}

func (c *SetTrade) Command() (*flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("set-trade", flag.ContinueOnError)
	c.Flags.SetFlags(fset)
	fset.IntVar(&c.tradeIndex, "trade", 0, "index of the trade slot to edit")
	fset.StringVar(&c.tradeType, "type", "", "trade type (SALE, PURCHASE or BARTER)")
	fset.StringVar(&c.price, "price", "", "trade price for SALE and PURCHASE trades")
	fset.StringVar(&c.sell, "sell", "", "first sold item as id:count[:data]")
	fset.StringVar(&c.sell2, "sell2", "", "second sold item as id:count[:data]")
	fset.StringVar(&c.barter, "barter", "", "first barter input as id:count[:data]")
	fset.StringVar(&c.barter2, "barter2", "", "second barter input as id:count[:data]")
	fset.StringVar(&c.displayName, "name", "", "display name for the first sold item")
	fset.BoolVar(&c.ignoreData, "ignore-data", false, "match any data variant of the configured items")
	fset.StringVar(&c.rules, "rules", "", `trade rules as a JSON list of {"Name", "Config"} objects`)
	return fset, cli.CmdFunc(c.Run)
}

func (c *SetTrade) Synopsis() string {
	return "Configures a trade slot of a trader"
}
