// Copyright (c) 2025 BVK Chaitanya

package shop

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/bvk/tradepost/cli"
	"github.com/bvk/tradepost/subcmds/cmdutil"
	"github.com/bvk/tradepost/trader"
	"github.com/bvkgo/kv"
)

type Resize struct {
	Flags
}

func (c *Resize) Run(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("needs two (trader-uid, count) arguments")
	}
	count, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("could not parse trade count: %w", err)
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
		t.OverrideTradeCount(count)
		fmt.Printf("trades: %d\n", t.NumTrades())
		return t.Save(ctx, rw)
	})
}

func (c *Resize) Command() (*flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("resize", flag.ContinueOnError)
	c.Flags.SetFlags(fset)
	return fset, cli.CmdFunc(c.Run)
}

func (c *Resize) Synopsis() string {
	return "Changes the number of trade slots, clamped to the allowed range"
}
