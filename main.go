// Copyright (c) 2025 BVK Chaitanya

// Command tradepost manages item trader accounts: configurable
// buy/sell/barter offers backed by a bounded item storage and stored
// money, persisted in a local database.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/bvk/tradepost/cli"
	"github.com/bvk/tradepost/envfile"
	"github.com/bvk/tradepost/subcmds/db"
	"github.com/bvk/tradepost/subcmds/shop"

	_ "github.com/bvk/tradepost/rules"
)

func main() {
	if err := envfile.UpdateEnv(".tradepost.env", envfile.VariableNamePrefix("TRADEPOST_"), envfile.SearchCurrentDir(true)); err != nil {
		log.Fatalf("could not load env file: %v", err)
	}

	shopCmds := []cli.Command{
		new(shop.Create),
		new(shop.List),
		new(shop.Get),
		new(shop.SetTrade),
		new(shop.Resize),
		new(shop.AddTrade),
		new(shop.RemoveTrade),
		new(shop.Deposit),
		new(shop.Restock),
		new(shop.Exec),
		new(shop.Export),
		new(shop.Import),
	}

	dbCmds := []cli.Command{
		new(db.Get),
		new(db.Set),
		new(db.Delete),
		new(db.List),
	}

	cmds := []cli.Command{
		cli.CommandGroup("shop", "Manages trader accounts", shopCmds...),
		cli.CommandGroup("db", "Accesses the raw database", dbCmds...),
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := cli.Run(ctx, cmds, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
