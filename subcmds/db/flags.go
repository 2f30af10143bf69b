// Copyright (c) 2025 BVK Chaitanya

// Package db implements subcommands for raw access to the database.
package db

import (
	"github.com/bvk/tradepost/subcmds/cmdutil"
)

type Flags = cmdutil.DBFlags
