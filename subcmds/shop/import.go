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
	"github.com/google/uuid"
)

type Import struct {
	Flags

	uid      string
	creative bool
}

func (c *Import) Run(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("needs one (file) argument")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	uid := c.uid
	if len(uid) == 0 {
		uid = uuid.New().String()
	}

	opts, err := cmdutil.TraderOptions()
	if err != nil {
		return err
	}
	opts.Creative = c.creative

	t, err := trader.ImportJSON(uid, data, opts)
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

func (c *Import) Command() (*flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("import", flag.ContinueOnError)
	c.Flags.SetFlags(fset)
	fset.StringVar(&c.uid, "uid", "", "uid for the imported trader; default is a new uuid")
	fset.BoolVar(&c.creative, "creative", false, "import as an admin trader with unlimited stock")
	return fset, cli.CmdFunc(c.Run)
}

func (c *Import) Synopsis() string {
	return "Creates a trader from a data-pack JSON definition"
}
