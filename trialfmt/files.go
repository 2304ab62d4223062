// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trialfmt

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Directory name prefixes used by the harness.
const (
	// PrefixExperiment is the prefix of current harness runs.
	PrefixExperiment = "logs_experiment"
	// PrefixComparison is the legacy prefix used by the
	// comparison runs.
	PrefixComparison = "logs_exp_comp"
)

// LogName is the log file read from each trial directory. Only party
// 0's view of the timers is aggregated.
const LogName = "party_0.log"

// A Key identifies one experiment configuration.
type Key struct {
	N    int // party count
	Size int // total circuit size
	Dim  int // circuit depth
}

func (k Key) String() string {
	return fmt.Sprintf("n=%d s=%d d=%d", k.N, k.Size, k.Dim)
}

// A Layout describes where the harness put its logs.
type Layout struct {
	// Root is the directory holding all trial directories.
	Root string

	// Prefix is the trial directory name prefix, either
	// PrefixExperiment or PrefixComparison.
	Prefix string
}

// Dir returns the directory of the given trial of key.
func (l Layout) Dir(key Key, trial int) string {
	name := fmt.Sprintf("%s_%d_%d_%d_%d", l.Prefix, key.N, key.Size, key.Dim, trial)
	return filepath.Join(l.Root, name)
}

// Path returns the log file of the given trial of key.
func (l Layout) Path(key Key, trial int) string {
	return filepath.Join(l.Dir(key, trial), LogName)
}

// Trials returns the log files of key in trial order. Trials are
// numbered from 0 and probing stops at the first index whose log file
// does not exist, so a result of length zero means trial 0 is
// missing. Errors other than a missing file are returned.
func (l Layout) Trials(key Key) ([]string, error) {
	var paths []string
	for trial := 0; ; trial++ {
		path := l.Path(key, trial)
		ok, err := exists(path)
		if err != nil {
			return nil, err
		}
		if !ok {
			return paths, nil
		}
		paths = append(paths, path)
	}
}

func exists(path string) (bool, error) {
	fi, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if fi.IsDir() {
		return false, fmt.Errorf("%s: is a directory", path)
	}
	return true, nil
}
