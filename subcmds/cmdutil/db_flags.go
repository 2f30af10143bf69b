// Copyright (c) 2025 BVK Chaitanya

// Package cmdutil holds the flag helpers shared by the subcommands.
package cmdutil

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/bvkgo/kv"
	"github.com/bvkgo/kvbadger"
	"github.com/dgraph-io/badger/v4"
	"github.com/nightlyone/lockfile"
)

type DBFlags struct {
	dataDir string
}

func (f *DBFlags) SetFlags(fset *flag.FlagSet) {
	fset.StringVar(&f.dataDir, "data-dir", "", "path to the data directory")
}

// DataDir resolves the data directory, defaulting to ~/.tradepost.
func (f *DBFlags) DataDir() (string, error) {
	dir := f.dataDir
	if len(dir) == 0 {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".tradepost")
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	return dir, nil
}

// GetDatabase locks the data directory and opens the database in it.
// The returned closer releases both.
func (f *DBFlags) GetDatabase(ctx context.Context) (kv.Database, func(), error) {
	dataDir, err := f.DataDir()
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, nil, fmt.Errorf("could not create data directory %q: %w", dataDir, err)
	}

	flock, err := lockfile.New(filepath.Join(dataDir, "tradepost.lock"))
	if err != nil {
		return nil, nil, fmt.Errorf("could not create lock file: %w", err)
	}
	if err := flock.TryLock(); err != nil {
		if owner, err := flock.GetOwner(); err == nil {
			return nil, nil, fmt.Errorf("data directory is in use by pid %d", owner.Pid)
		}
		return nil, nil, fmt.Errorf("could not lock the data directory: %w", err)
	}

	bopts := badger.DefaultOptions(dataDir)
	bopts.Logger = nil
	bdb, err := badger.Open(bopts)
	if err != nil {
		flock.Unlock()
		return nil, nil, fmt.Errorf("could not open the database: %w", err)
	}

	isGoodKey := func(k string) bool {
		return path.IsAbs(k) && k == path.Clean(k)
	}
	db := kvbadger.New(bdb, isGoodKey)

	closer := func() {
		bdb.Close()
		flock.Unlock()
	}
	return db, closer, nil
}
