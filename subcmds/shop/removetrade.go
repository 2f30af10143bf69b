// Copyright (c) 2025 BVK Chaitanya

package shop

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/tradepost/cli"
	"github.com/bvk/tradepost/subcmds/cmdutil"
	"github.com/bvk/tradepost/trader"
	"github.com/bvkgo/kv"
)

type RemoveTrade struct {
	Flags

	player string
}

func (c *RemoveTrade) Run(ctx context.Context, args []string) error {
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
		if err := t.RemoveTrade(c.player); err != nil {
			return err
		}
		fmt.Printf("trades: %d\n", t.NumTrades())
		return t.Save(ctx, rw)
	})
}

func (c *RemoveTrade) Command() (*flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("remove-trade", flag.ContinueOnError)
	c.Flags.SetFlags(fset)
	fset.StringVar(&c.player, "player", "", "id of the player making the edit")
	return fset, cli.CmdFunc(c.Run)
}

func (c *RemoveTrade) Synopsis() string {
	return "Drops the last trade slot from a trader"
}
