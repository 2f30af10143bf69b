// Copyright (c) 2025 BVK Chaitanya

package cli

import (
	"context"
	"flag"
	"testing"
)

type testCmd struct {
	name  string
	flags *flag.FlagSet
	args  []string
}

func newTestCmd(name string) *testCmd {
	return &testCmd{
		name:  name,
		flags: flag.NewFlagSet(name, flag.ContinueOnError),
	}
}

func (t *testCmd) Command() (*flag.FlagSet, CmdFunc) {
	return t.flags, CmdFunc(func(_ context.Context, args []string) error {
		t.args = args
		return nil
	})
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	create := newTestCmd("create")
	creative := create.flags.Bool("creative", false, "create an admin trader")
	list := newTestCmd("list")
	exec := newTestCmd("exec")
	exec.flags.Int("trade", 0, "trade index")
	shop := CommandGroup("shop", "Manages traders", create, list, exec)

	dbGet := newTestCmd("get")
	dbSet := newTestCmd("set")
	db := CommandGroup("db", "Raw database access", dbGet, dbSet)

	cmds := []Command{shop, db}

	{
		args := []string{"db", "get", "/traders/x"}
		if err := Run(ctx, cmds, args); err != nil {
			t.Fatal(err)
		}
		if len(dbGet.args) != 1 || dbGet.args[0] != "/traders/x" {
			t.Fatalf("want `/traders/x`, got %v", dbGet.args)
		}
	}

	{
		args := []string{"shop", "create", "-creative", "some-uid"}
		if err := Run(ctx, cmds, args); err != nil {
			t.Fatal(err)
		}
		if len(create.args) != 1 || create.args[0] != "some-uid" {
			t.Fatalf("want `some-uid`, got %v", create.args)
		}
		if *creative == false {
			t.Fatalf("want true, got false")
		}
	}

	{
		args := []string{"shop", "exec", "-trade", "2", "uid", "stick:5"}
		if err := Run(ctx, cmds, args); err != nil {
			t.Fatal(err)
		}
		if len(exec.args) != 2 || exec.args[0] != "uid" || exec.args[1] != "stick:5" {
			t.Fatalf("want [uid stick:5], got %v", exec.args)
		}
	}

	{
		args := []string{"shop", "bogus"}
		if err := Run(ctx, cmds, args); err == nil {
			t.Fatalf("want unknown command error, got nil")
		}
	}
}
