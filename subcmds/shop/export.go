// Copyright (c) 2025 BVK Chaitanya

package shop

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bvk/tradepost/cli"
	"github.com/bvk/tradepost/subcmds/cmdutil"
	"github.com/bvk/tradepost/trader"
	"github.com/bvkgo/kv"
)

type Export struct {
	Flags

	outFile string
}

func (c *Export) Run(ctx context.Context, args []string) error {
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

	var data []byte
	load := func(ctx context.Context, r kv.Reader) error {
		t, err := trader.Load(ctx, args[0], r, opts)
		if err != nil {
			return err
		}
		data, err = t.ExportJSON()
		return err
	}
	if err := kv.WithReader(ctx, db, load); err != nil {
		return err
	}

	if len(c.outFile) != 0 {
		return os.WriteFile(c.outFile, data, 0644)
	}
	fmt.Printf("%s\n", data)
	return nil
}

func (c *Export) Command() (*flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("export", flag.ContinueOnError)
	c.Flags.SetFlags(fset)
	fset.StringVar(&c.outFile, "out", "", "file to write the definition to instead of stdout")
	return fset, cli.CmdFunc(c.Run)
}

func (c *Export) Synopsis() string {
	return "Writes a trader's data-pack definition as JSON"
}
