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

type Restock struct {
	Flags
}

func (c *Restock) Run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("needs a trader-uid argument followed by items")
	}
	items, err := parseItemSpecs(args[1:])
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
		handler := t.Handler()
		for _, v := range items {
			if rest := handler.InsertItem(v); rest != nil {
				fmt.Printf("no room for %s\n", rest)
			}
		}
		return t.Save(ctx, rw)
	})
}

func (c *Restock) Command() (*flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("restock", flag.ContinueOnError)
	c.Flags.SetFlags(fset)
	return fset, cli.CmdFunc(c.Run)
}

func (c *Restock) Synopsis() string {
	return "Inserts items into a trader's storage through its item handler"
}
