// Copyright (c) 2025 BVK Chaitanya

// Package shop implements subcommands for managing trader accounts.
package shop

import (
	"github.com/bvk/tradepost/subcmds/cmdutil"
)

type Flags = cmdutil.DBFlags
