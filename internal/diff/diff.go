// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff compares test output against golden files.
package diff

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Diff returns a human-readable description of the differences
// between want and got, or "" if they are equal. It uses "diff -u"
// when available and falls back to quoting both strings.
func Diff(want, got string) string {
	if want == got {
		return ""
	}
	if _, err := exec.LookPath("diff"); err != nil {
		return fmt.Sprintf("diff command unavailable\nwant: %q\ngot:  %q", want, got)
	}
	dir, err := os.MkdirTemp("", "tpstat_diff")
	if err != nil {
		return err.Error()
	}
	defer os.RemoveAll(dir)

	wantFile, gotFile := filepath.Join(dir, "want"), filepath.Join(dir, "got")
	if err := os.WriteFile(wantFile, []byte(want), 0666); err != nil {
		return err.Error()
	}
	if err := os.WriteFile(gotFile, []byte(got), 0666); err != nil {
		return err.Error()
	}

	data, err := exec.Command("diff", "-u", wantFile, gotFile).CombinedOutput()
	if len(data) > 0 {
		// diff exits non-zero when the files differ.
		return string(data)
	}
	if err != nil {
		return err.Error()
	}
	return fmt.Sprintf("want: %q\ngot:  %q", want, got)
}
