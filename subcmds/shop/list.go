// Copyright (c) 2025 BVK Chaitanya

package shop

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"
	"strings"
	"text/tabwriter"

	"github.com/bvk/tradepost/cli"
	"github.com/bvk/tradepost/gobs"
	"github.com/bvk/tradepost/kvutil"
	"github.com/bvk/tradepost/trader"
	"github.com/bvkgo/kv"
)

type List struct {
	Flags
}

func (c *List) Run(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("command takes no arguments")
	}

	db, closer, err := c.GetDatabase(ctx)
	if err != nil {
		return err
	}
	defer closer()

	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "UID\tTRADES\tFUNDS\tFLAGS\n")

	begin, end := kvutil.PathRange(strings.TrimSuffix(trader.DefaultKeyspace, "/"))
	fn := func(ctx context.Context, r kv.Reader, key string, gv *gobs.TraderState) error {
		uid := strings.TrimPrefix(key, path.Clean(trader.DefaultKeyspace)+"/")
		funds := gv.Funds
		if len(funds) == 0 {
			funds = "-"
		}
		var flags []string
		if gv.Creative {
			flags = append(flags, "creative")
		}
		if gv.Persistent {
			flags = append(flags, "persistent")
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", uid, len(gv.Trades), funds, strings.Join(flags, ","))
		return nil
	}
	if err := kvutil.AscendDB(ctx, db, begin, end, fn); err != nil {
		return err
	}
	return tw.Flush()
}

func (c *List) Command() (*flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("list", flag.ContinueOnError)
	c.Flags.SetFlags(fset)
	return fset, cli.CmdFunc(c.Run)
}

func (c *List) Synopsis() string {
	return "Prints a summary of all trader accounts"
}
