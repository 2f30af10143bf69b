// Copyright (c) 2025 BVK Chaitanya

package db

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"strings"

	"github.com/bvk/tradepost/cli"
	"github.com/bvkgo/kv"
)

type Set struct {
	Flags
}

func (c *Set) Run(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("needs two (key, hex-value) arguments")
	}
	data, err := hex.DecodeString(args[1])
	if err != nil {
		return fmt.Errorf("could not decode hex value: %w", err)
	}

	db, closer, err := c.GetDatabase(ctx)
	if err != nil {
		return err
	}
	defer closer()

	return kv.WithReadWriter(ctx, db, func(ctx context.Context, rw kv.ReadWriter) error {
		return rw.Set(ctx, args[0], strings.NewReader(string(data)))
	})
}

func (c *Set) Command() (*flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("set", flag.ContinueOnError)
	c.Flags.SetFlags(fset)
	return fset, cli.CmdFunc(c.Run)
}

func (c *Set) Synopsis() string {
	return "Stores a raw value at a key in the database"
}
