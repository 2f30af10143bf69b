// Copyright (c) 2025 BVK Chaitanya

// Package cli implements minimal subcommand dispatch on top of the
// standard library's flag.FlagSets.
//
// Commands can nest to arbitrary depth through CommandGroup. Flags
// defined by ancestor commands stay available to their subcommands.
// Special top-level commands "help", "flags" and "commands" print
// documentation, which is collected through optional interfaces:
// `interface{ Synopsis() string }` for a one-line description and
// `interface{ CommandHelp() string }` for longer help text.
package cli

import (
	"context"
	"flag"
	"os"
)

// CmdFunc executes a resolved command with its remaining non-flag
// arguments.
type CmdFunc func(ctx context.Context, args []string) error

// Command is one command or subcommand. The returned flag set carries
// the command name and its flags.
type Command interface {
	Command() (*flag.FlagSet, CmdFunc)
}

// CommandGroup nests the given commands under a parent command name.
func CommandGroup(name, synopsis string, cmds ...Command) Command {
	return &group{
		flags:    flag.NewFlagSet(name, flag.ContinueOnError),
		synopsis: synopsis,
		subcmds:  cmds,
	}
}

// Run resolves and executes the best matching command from cmds.
// Top-level flags registered on flag.CommandLine are also processed
// while resolving.
func Run(ctx context.Context, cmds []Command, args []string) error {
	if cmds == nil {
		return os.ErrInvalid
	}
	root := &group{
		flags:   flag.CommandLine,
		subcmds: cmds,
	}
	return root.run(ctx, args)
}
