// Copyright (c) 2025 BVK Chaitanya

package shop

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/tradepost/cli"
	"github.com/bvk/tradepost/money"
	"github.com/bvk/tradepost/notify"
	"github.com/bvk/tradepost/subcmds/cmdutil"
	"github.com/bvk/tradepost/trader"
	"github.com/bvk/tradepost/wallet"
	"github.com/bvkgo/kv"
)

type Exec struct {
	Flags

	player string
	funds  string

	tradeIndex int

	walletSlots int
}

// Run executes one trade against an ad-hoc wallet built from the
// command line. The trader state is only saved when the trade
// succeeds.
func (c *Exec) Run(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("needs a trader-uid argument, optionally followed by wallet items")
	}
	items, err := parseItemSpecs(args[1:])
	if err != nil {
		return err
	}

	w := wallet.New(c.player, c.walletSlots)
	if len(c.funds) != 0 {
		v, err := money.Parse(c.funds)
		if err != nil {
			return err
		}
		w.Deposit(v)
	}
	for _, v := range items {
		if !w.PutItem(v) {
			return fmt.Errorf("wallet has no room for %s", v)
		}
	}

	opts, err := cmdutil.TraderOptions()
	if err != nil {
		return err
	}
	hub := notify.NewHub()
	_, events, err := hub.Topic().Subscribe(16, false /* includeRecent */)
	if err != nil {
		return err
	}
	opts.Notifier = notify.Multi(hub, opts.Notifier)

	db, closer, err := c.GetDatabase(ctx)
	if err != nil {
		return err
	}
	defer closer()

	err = kv.WithReadWriter(ctx, db, func(ctx context.Context, rw kv.ReadWriter) error {
		t, err := trader.Load(ctx, args[0], rw, opts)
		if err != nil {
			return err
		}
		result := t.ExecuteTrade(w, c.tradeIndex)
		fmt.Println(result)
		if !result.IsSuccess() {
			return nil
		}
		return t.Save(ctx, rw)
	})
	if err != nil {
		return err
	}

	hub.Close()
	for e := range events {
		fmt.Printf("event: %s\n", e)
	}

	fmt.Printf("wallet funds: %s\n", w.AvailableFunds())
	for _, s := range w.Slots() {
		if !s.IsEmpty() {
			fmt.Printf("wallet item: %s\n", s)
		}
	}
	return nil
}

func (c *Exec) Command() (*flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("exec", flag.ContinueOnError)
	c.Flags.SetFlags(fset)
	fset.StringVar(&c.player, "player", "", "id of the player executing the trade")
	fset.StringVar(&c.funds, "funds", "", "money placed in the wallet")
	fset.IntVar(&c.tradeIndex, "trade", 0, "index of the trade to execute")
	fset.IntVar(&c.walletSlots, "wallet-slots", 36, "number of wallet inventory slots")
	return fset, cli.CmdFunc(c.Run)
}

func (c *Exec) Synopsis() string {
	return "Executes a trade against a wallet built from the command line"
}
