// Copyright (c) 2025 BVK Chaitanya

package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
)

func numFlags(fs *flag.FlagSet) int {
	n := 0
	fs.VisitAll(func(*flag.Flag) { n++ })
	return n
}

func cmdName(c Command) string {
	fs, _ := c.Command()
	_, name := filepath.Split(fs.Name())
	return name
}

func synopsis(c Command) string {
	if v, ok := c.(interface{ Synopsis() string }); ok {
		return v.Synopsis()
	}
	if v, ok := c.(*group); ok {
		return v.synopsis
	}
	return ""
}

func helpDoc(c Command) string {
	if v, ok := c.(interface{ CommandHelp() string }); ok {
		return v.CommandHelp()
	}
	return synopsis(c)
}

func usageLine(cmdpath []Command) string {
	var words []string
	for i, c := range cmdpath {
		fs, _ := c.Command()
		name := fs.Name()
		if i == 0 {
			_, name = filepath.Split(name)
		}
		words = append(words, name)
	}
	for _, c := range cmdpath {
		fs, _ := c.Command()
		if numFlags(fs) != 0 {
			words = append(words, "<flags>")
			break
		}
	}
	if _, ok := cmdpath[len(cmdpath)-1].(*group); ok {
		words = append(words, "<subcommand>")
	}
	words = append(words, "<args>")
	return strings.Join(words, " ")
}

// subcommands returns name/synopsis pairs for the last command in the
// path, with the documentation commands listed first at the top level.
func subcommands(cmdpath []Command) [][2]string {
	var result [][2]string
	if len(cmdpath) == 1 {
		result = [][2]string{
			{"help", "describe subcommands and flags"},
			{"flags", "describe all known flags"},
			{"commands", "list all command names"},
			{},
		}
	}

	var subcmds [][2]string
	if g, ok := cmdpath[len(cmdpath)-1].(*group); ok {
		for _, c := range g.subcmds {
			subcmds = append(subcmds, [2]string{cmdName(c), synopsis(c)})
		}
	}
	sort.Slice(subcmds, func(i, j int) bool {
		return subcmds[i][0] < subcmds[j][0]
	})
	return append(result, subcmds...)
}

func (g *group) printCommands(w io.Writer, cmdpath []Command) error {
	for _, sub := range subcommands(cmdpath) {
		if len(sub[0]) > 0 {
			fmt.Fprintf(w, "\t%s\n", sub[0])
		}
	}
	return nil
}

func (g *group) printHelp(w io.Writer, cmdpath []Command) error {
	cmd := cmdpath[len(cmdpath)-1]

	fmt.Fprintf(w, "Usage: %s\n", usageLine(cmdpath))
	if help := helpDoc(cmd); len(help) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s\n", help)
	}
	if subcmds := subcommands(cmdpath); len(subcmds) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Subcommands:\n")
		for _, sub := range subcmds {
			switch {
			case len(sub[1]) > 0:
				fmt.Fprintf(w, "\t%-15s  %s\n", sub[0], sub[1])
			case len(sub[0]) > 0:
				fmt.Fprintf(w, "\t%-15s\n", sub[0])
			default:
				fmt.Fprintln(w)
			}
		}
	}
	if fs, _ := cmd.Command(); numFlags(fs) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Flags:\n")
		fs.SetOutput(w)
		fs.PrintDefaults()
	}
	return nil
}
