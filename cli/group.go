// Copyright (c) 2025 BVK Chaitanya

package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"
)

type group struct {
	flags    *flag.FlagSet
	synopsis string
	subcmds  []Command

	specialCmd string
}

var specialCmds = []string{"help", "flags", "commands"}

func (g *group) Command() (*flag.FlagSet, CmdFunc) {
	return g.flags, nil
}

// resolve walks the arguments, descending into subcommands and setting
// flags on any flag set along the command path. It returns the resolved
// command path and the remaining arguments.
func (g *group) resolve(args []string) ([]Command, []string, error) {
	type boolFlag interface {
		flag.Value
		IsBoolFlag() bool
	}

	subcmdMap := make(map[string]Command)
	loadSubcmds := func(cmds []Command) {
		m := make(map[string]Command)
		for _, c := range cmds {
			fs, _ := c.Command()
			m[fs.Name()] = c
		}
		subcmdMap = m
	}
	loadSubcmds(g.subcmds)

	fspath := []*flag.FlagSet{flag.CommandLine}
	lookup := func(name string) *flag.Flag {
		for i := len(fspath) - 1; i >= 0; i-- {
			if f := fspath[i].Lookup(name); f != nil {
				return f
			}
		}
		return nil
	}

	cmdpath := []Command{g}
	var i int
	for i = 0; i < len(args); i++ {
		s := args[i]

		if s == "--" {
			i++
			break
		}

		if len(s) < 2 || s[0] != '-' {
			// A non-flag word is either the next subcommand or the
			// first argument to the resolved command.
			if len(subcmdMap) == 0 {
				break
			}
			sub, ok := subcmdMap[s]
			if !ok {
				if len(cmdpath) == 1 && slices.Contains(specialCmds, s) {
					g.specialCmd = s
					continue
				}
				return nil, nil, fmt.Errorf("command not defined: %s", s)
			}
			cmdpath = append(cmdpath, sub)
			if sg, ok := sub.(*group); ok {
				loadSubcmds(sg.subcmds)
				continue
			}
			loadSubcmds(nil)
			fs, _ := sub.Command()
			fspath = append(fspath, fs)
			continue
		}

		name := strings.TrimPrefix(strings.TrimPrefix(s, "-"), "-")
		if len(name) == 0 || name[0] == '-' || name[0] == '=' {
			return nil, nil, fmt.Errorf("bad flag syntax: %s", s)
		}
		value, hasValue := "", false
		if pos := strings.IndexRune(name, '='); pos != -1 {
			name, value, hasValue = name[:pos], name[pos+1:], true
		}

		f := lookup(name)
		if f == nil {
			return nil, nil, fmt.Errorf("flag provided but not defined: -%s", name)
		}

		if fv, ok := f.Value.(boolFlag); ok && fv.IsBoolFlag() {
			if !hasValue {
				value = "true"
			}
			if err := fv.Set(value); err != nil {
				return nil, nil, fmt.Errorf("invalid boolean value %q for -%s: %w", value, name, err)
			}
			continue
		}

		if !hasValue && i+1 < len(args) {
			value, hasValue = args[i+1], true
			i++
		}
		if !hasValue {
			return nil, nil, fmt.Errorf("flag needs an argument: -%s", name)
		}
		if err := f.Value.Set(value); err != nil {
			return nil, nil, fmt.Errorf("invalid value %q for flag -%s: %w", value, name, err)
		}
	}

	return cmdpath, args[i:], nil
}

func (g *group) run(ctx context.Context, args []string) error {
	cmdpath, rest, err := g.resolve(args)
	if err != nil {
		return err
	}

	switch g.specialCmd {
	case "help":
		return g.printHelp(os.Stderr, cmdpath)
	case "flags":
		fs, _ := cmdpath[len(cmdpath)-1].Command()
		fs.SetOutput(os.Stderr)
		fs.PrintDefaults()
		return nil
	case "commands":
		return g.printCommands(os.Stderr, cmdpath)
	}

	_, fun := cmdpath[len(cmdpath)-1].Command()
	if fun == nil {
		return g.printHelp(os.Stderr, cmdpath)
	}
	return fun(ctx, rest)
}
