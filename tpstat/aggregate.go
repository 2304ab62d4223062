// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tpstat aggregates MPC benchmark timers across trials and
// compares the measured protocol against a baseline protocol.
//
// An Aggregator averages the timers of every trial of an experiment
// key into Metrics. ComputeDerived splits Metrics into offline and
// online costs for the two ways of attributing function-dependent
// preprocessing, and expresses both as ratios of the baseline's
// costs. BuildTable does this for a whole grid of keys, and the
// Format functions render the result.
package tpstat

import (
	"fmt"
	"os"

	"github.com/aclements/go-moremath/stats"
	"github.com/tpmpc/tpbench/trialfmt"
)

// Unit is the divisor applied to raw timer values. The harness
// reports microseconds, so aggregated values are in seconds.
const Unit = 1e6

// Metrics holds the averaged timers of one experiment key.
type Metrics struct {
	Key trialfmt.Key

	// Trials is the number of trial logs found. It is 0 for a
	// placeholder.
	Trials int

	// Values maps each label of the variant to the mean over all
	// trials of the label's per-trial sum, divided by Unit.
	Values map[string]float64

	// Min and Max are the smallest and largest per-trial sums,
	// divided by Unit. They are nil for a placeholder.
	Min, Max map[string]float64

	// Warnings lists malformed timer lines that were skipped.
	Warnings []*trialfmt.SyntaxError
}

// Placeholder reports whether m stands in for a key with no logs.
func (m *Metrics) Placeholder() bool {
	return m.Trials == 0
}

// Get returns the aggregated value of label, or 0.
func (m *Metrics) Get(label string) float64 {
	if label == "" {
		return 0
	}
	return m.Values[label]
}

// An Aggregator reads the trial logs of one variant.
type Aggregator struct {
	// Root is the directory holding the trial directories.
	Root string

	Variant *Variant

	// Warnf, if non-nil, receives a warning per skipped line.
	Warnf func(format string, args ...any)

	// Tracef, if non-nil, receives one line per key noting how
	// many trials were parsed.
	Tracef func(format string, args ...any)
}

func (a *Aggregator) warnf(format string, args ...any) {
	if a.Warnf != nil {
		a.Warnf(format, args...)
	}
}

func (a *Aggregator) tracef(format string, args ...any) {
	if a.Tracef != nil {
		a.Tracef(format, args...)
	}
}

// Layout returns where a's logs live.
func (a *Aggregator) Layout() trialfmt.Layout {
	return trialfmt.Layout{Root: a.Root, Prefix: a.Variant.Prefix}
}

// Aggregate averages the timers of every trial of key.
//
// If trial 0 of key has no log, Aggregate returns placeholder Metrics
// and no error. Malformed timer lines are skipped and recorded in the
// Warnings of the result.
func (a *Aggregator) Aggregate(key trialfmt.Key) (*Metrics, error) {
	paths, err := a.Layout().Trials(key)
	if err != nil {
		return nil, err
	}
	m := &Metrics{Key: key, Trials: len(paths)}
	if len(paths) == 0 {
		a.tracef("%v: no logs, using placeholder", key)
		m.Values = a.Variant.placeholder()
		return m, nil
	}

	labels := a.Variant.Vocabulary()
	// sums[label][i] is the sum of label's lines in trial i.
	sums := make(map[string][]float64, len(labels))
	for _, l := range labels {
		sums[l] = make([]float64, len(paths))
	}
	var r trialfmt.Reader
	for i, path := range paths {
		if err := a.readTrial(&r, path, labels, func(l *trialfmt.Line) {
			sums[l.Label][i] += float64(l.Value)
		}, m); err != nil {
			return nil, err
		}
	}

	m.Values = make(map[string]float64, len(labels))
	m.Min = make(map[string]float64, len(labels))
	m.Max = make(map[string]float64, len(labels))
	for _, l := range labels {
		xs := sums[l]
		m.Values[l] = stats.Mean(xs) / Unit
		lo, hi := stats.Bounds(xs)
		m.Min[l], m.Max[l] = lo/Unit, hi/Unit
	}
	a.tracef("%v: parsed %d trials", key, len(paths))
	return m, nil
}

// readTrial scans one trial log and closes it before returning.
func (a *Aggregator) readTrial(r *trialfmt.Reader, path string, labels []string, add func(*trialfmt.Line), m *Metrics) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r.Reset(f, path, labels...)
	for r.Scan() {
		switch rec := r.Result().(type) {
		case *trialfmt.Line:
			add(rec)
		case *trialfmt.SyntaxError:
			e := *rec
			m.Warnings = append(m.Warnings, &e)
			a.warnf("warning: skipping %v", &e)
		}
	}
	if err := r.Err(); err != nil {
		return fmt.Errorf("reading trial log: %w", err)
	}
	return nil
}
