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
	"github.com/google/uuid"
)

type Create struct {
	Flags

	numTrades int
	creative  bool
}

func (c *Create) Run(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("takes at most one (uid) argument")
	}
	uid := uuid.New().String()
	if len(args) == 1 {
		uid = args[0]
	}

	opts, err := cmdutil.TraderOptions()
	if err != nil {
		return err
	}
	opts.Creative = c.creative

	t, err := trader.New(uid, c.numTrades, opts)
	if err != nil {
		return err
	}

	db, closer, err := c.GetDatabase(ctx)
	if err != nil {
		return err
	}
	defer closer()

	if err := kv.WithReadWriter(ctx, db, t.Save); err != nil {
		return err
	}
	fmt.Println(uid)
	return nil
}

func (c *Create) Command() (*flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("create", flag.ContinueOnError)
	c.Flags.SetFlags(fset)
	fset.IntVar(&c.numTrades, "trades", 1, "number of trade slots")
	fset.BoolVar(&c.creative, "creative", false, "create an admin trader with unlimited stock")
	return fset, cli.CmdFunc(c.Run)
}

func (c *Create) Synopsis() string {
	return "Creates a new trader account"
}
