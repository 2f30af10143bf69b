// Copyright (c) 2025 BVK Chaitanya

package shop

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/bvk/tradepost/cli"
	"github.com/bvk/tradepost/subcmds/cmdutil"
	"github.com/bvk/tradepost/trader"
	"github.com/bvkgo/kv"
)

type Get struct {
	Flags
}

func (c *Get) Run(ctx context.Context, args []string) error {
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

	var t *trader.Trader
	load := func(ctx context.Context, r kv.Reader) error {
		t, err = trader.Load(ctx, args[0], r, opts)
		return err
	}
	if err := kv.WithReader(ctx, db, load); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "UID\t%s\n", t.UID())
	fmt.Fprintf(tw, "Creative\t%t\n", t.Creative())
	fmt.Fprintf(tw, "Persistent\t%t\n", t.Persistent())
	fmt.Fprintf(tw, "Funds\t%s\n", t.Funds())
	fmt.Fprintf(tw, "Stack limit\t%d\n", t.StorageStackLimit())
	stats := t.Stats()
	fmt.Fprintf(tw, "Money earned\t%s\n", stats.MoneyEarned)
	fmt.Fprintf(tw, "Money paid\t%s\n", stats.MoneyPaid)
	fmt.Fprintf(tw, "Taxes paid\t%s\n", stats.TaxesPaid)
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "INDEX\tTYPE\tPRICE\tSELLS\tTAKES\tSTOCK\n")
	for i, v := range t.Trades() {
		if !v.IsValid() {
			fmt.Fprintf(tw, "%d\t-\t-\t-\t-\t-\n", i)
			continue
		}
		sells := fmt.Sprintf("%s %s", v.SellItems[0], v.SellItems[1])
		takes := "-"
		price := "-"
		switch {
		case v.IsSale():
			price = v.Cost.String()
		case v.IsPurchase():
			price = v.Cost.String()
			sells, takes = "-", sells
		case v.IsBarter():
			takes = fmt.Sprintf("%s %s", v.BarterItems[0], v.BarterItems[1])
		}
		stock := "unlimited"
		if n := t.TradeStock(i); n >= 0 {
			stock = fmt.Sprintf("%d", n)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", i, v.Direction, price, sells, takes, stock)
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "STORAGE\tCOUNT\n")
	for _, s := range t.Storage().Contents() {
		fmt.Fprintf(tw, "%s\t%d\n", s.ID, s.Count)
	}
	return tw.Flush()
}

func (c *Get) Command() (*flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("get", flag.ContinueOnError)
	c.Flags.SetFlags(fset)
	return fset, cli.CmdFunc(c.Run)
}

func (c *Get) Synopsis() string {
	return "Prints the trades, storage and funds of a trader"
}
