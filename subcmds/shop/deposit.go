// Copyright (c) 2025 BVK Chaitanya

package shop

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/tradepost/cli"
	"github.com/bvk/tradepost/money"
	"github.com/bvk/tradepost/subcmds/cmdutil"
	"github.com/bvk/tradepost/trader"
	"github.com/bvkgo/kv"
)

type Deposit struct {
	Flags
}

func (c *Deposit) Run(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("needs two (trader-uid, amount) arguments")
	}
	amount, err := money.Parse(args[1])
	if err != nil {
		return err
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
		t.DepositFunds(amount)
		fmt.Printf("funds: %s\n", t.Funds())
		return t.Save(ctx, rw)
	})
}

func (c *Deposit) Command() (*flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("deposit", flag.ContinueOnError)
	c.Flags.SetFlags(fset)
	return fset, cli.CmdFunc(c.Run)
}

func (c *Deposit) Synopsis() string {
	return "Adds money to a trader for its PURCHASE trades to spend"
}
