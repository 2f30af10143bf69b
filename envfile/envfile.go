// Copyright (c) 2025 BVK Chaitanya

// Package envfile loads KEY=VALUE assignments from a dotfile into the
// current process's environment.
package envfile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

type options struct {
	variableNamePrefix string

	searchCurrentDirectory bool
	scanParentDirectories  bool

	overwriteIfExists bool
}

// UpdateEnv reads the named env file and sets the variables it defines
// in the current process's environment. By default only the user's home
// directory is searched; options can redirect the search to the current
// directory and its ancestors.
//
// Values are taken verbatim. There is no shell escaping, no expansion
// and no comment syntax.
func UpdateEnv(filename string, opts ...Option) error {
	if strings.ContainsRune(filename, os.PathSeparator) {
		return fmt.Errorf("file name contains path separator: %w", os.ErrInvalid)
	}
	var fopts options
	for _, v := range opts {
		if err := v.apply(&fopts); err != nil {
			return err
		}
	}

	fpaths, err := searchPaths(filename, &fopts)
	if err != nil {
		return err
	}
	for _, fpath := range fpaths {
		fp, err := os.Open(fpath)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return err
			}
			continue
		}
		defer fp.Close()
		return apply(fp, &fopts)
	}
	return nil
}

func searchPaths(filename string, fopts *options) ([]string, error) {
	var fpaths []string
	if fopts.searchCurrentDirectory {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		fpaths = append(fpaths, filepath.Join(cwd, filename))
		if fopts.scanParentDirectories {
			last, dir := cwd, filepath.Dir(cwd)
			for dir != last {
				fpaths = append(fpaths, filepath.Join(dir, filename))
				last, dir = dir, filepath.Dir(dir)
			}
		}
		return fpaths, nil
	}
	u, err := user.Current()
	if err != nil {
		return nil, err
	}
	if len(u.HomeDir) == 0 {
		return nil, fmt.Errorf("could not determine current user's home directory")
	}
	return []string{filepath.Join(u.HomeDir, filename)}, nil
}

func apply(fp *os.File, fopts *options) error {
	scanner := bufio.NewScanner(fp)
	for i := 1; scanner.Scan(); i++ {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		p := strings.IndexRune(line, '=')
		if p == -1 {
			return fmt.Errorf("invalid/unrecognized variable assignment on line %d: %w", i, os.ErrInvalid)
		}
		key, value := line[:p], line[p+1:]
		if !nameRe.MatchString(key) {
			return fmt.Errorf("invalid environment variable name %q on line %d: %w", key, i, os.ErrInvalid)
		}
		key = fopts.variableNamePrefix + key
		if len(os.Getenv(key)) != 0 && !fopts.overwriteIfExists {
			continue
		}
		os.Setenv(key, value)
	}
	return scanner.Err()
}
