// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Tpstat summarizes MPC benchmark logs as table rows for a paper.
//
// Usage:
//
//	tpstat [flags]
//
// The experiment harness writes one directory per party count n,
// circuit size s, circuit depth d and trial:
//
//	logs/logs_experiment_{n}_{s}_{d}_{trial}/party_0.log
//
// (or logs_exp_comp_... for the comparison runs). Tpstat reads party
// 0's timer lines, such as
//
//	fi_prep: 1203311 us
//
// averages each timer over every trial found for a key, splits the
// result into offline and online costs, and compares both against
// the baseline protocol of the chosen -variant.
//
// Two attributions of function-dependent preprocessing are reported
// for every key: FD counts it as offline work and FI counts it as
// online work. Keys with no logs print as zero costs.
//
// The default output is the body of a LaTeX tabular with multirow
// and booktabs rules, one "offline / online & ratio / ratio" column
// pair per party count:
//
//	\multirow{4}{*}{10}& \multirow{2}{*}{1k} & \textbf{FD} & 3.30 / 0.60 & 0.8 / 0.5 ...\\
//	& & \textbf{FI} & 1.10 / 2.80 & 0.3 / 2.3 ...\\
//	 \cmidrule{3-13}
//
// The -format flag selects text, csv or html output instead, and
// -png writes a ratio chart per size and depth.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/tpmpc/tpbench/tpstat"
)

// errUsage reports bad command line usage. The flag set has already
// printed the details.
var errUsage = errors.New("usage")

func main() {
	log.SetPrefix("tpstat: ")
	log.SetFlags(0)
	err := tpstatMain(os.Stdout, os.Stderr, os.Args[1:])
	if err == errUsage || err == flag.ErrHelp {
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func tpstatMain(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("tpstat", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: tpstat [flags]\n")
		flags.PrintDefaults()
	}
	flagVariant := flags.String("variant", "atlas", "compare against `baseline`: atlas or dn07")
	flagLogs := flags.String("logs", "logs", "read trial directories from `dir`")
	flagDMax := flags.Int("dmax", 3, "largest depth is 10^`e`")
	flagSMax := flags.Int("smax", 4, "largest size is 10^`e`")
	flagParties := flags.String("parties", "13,21,29,37,45", "comma-separated party `counts`")
	flagDec := flags.Int("dec", 2, "decimals printed for costs")
	flagRat := flags.Int("rat", -1, "decimals printed for ratios (default from -variant)")
	flagFormat := flags.String("format", "latex", "print results as `format`: latex, text, csv, html")
	flagPNG := flags.String("png", "", "write ratio charts to `dir`")
	flagVerbose := flags.Bool("v", false, "report how many trials were parsed per key")
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return err
		}
		return errUsage
	}
	if flags.NArg() > 0 {
		flags.Usage()
		return errUsage
	}

	variant, err := tpstat.LookupVariant(*flagVariant)
	if err != nil {
		return err
	}
	parties, err := parseInts(*flagParties)
	if err != nil {
		return fmt.Errorf("-parties: %w", err)
	}
	grid, err := tpstat.DefaultGrid(*flagDMax, *flagSMax, parties)
	if err != nil {
		return err
	}
	if err := grid.Validate(); err != nil {
		return err
	}
	prec := tpstat.DefaultPrecision(variant)
	prec.Cost = *flagDec
	if *flagRat >= 0 {
		prec.Ratio = *flagRat
	}

	var format func(io.Writer, *tpstat.Table) error
	switch *flagFormat {
	case "latex":
		format = func(w io.Writer, t *tpstat.Table) error { return tpstat.FormatLaTeX(w, t, prec) }
	case "text":
		format = func(w io.Writer, t *tpstat.Table) error { return tpstat.FormatText(w, t, prec) }
	case "csv":
		format = tpstat.FormatCSV
	case "html":
		format = func(w io.Writer, t *tpstat.Table) error { return tpstat.FormatHTML(w, t, prec) }
	default:
		return fmt.Errorf("unknown -format %q", *flagFormat)
	}

	logger := log.New(wErr, "tpstat: ", 0)
	agg := &tpstat.Aggregator{
		Root:    *flagLogs,
		Variant: variant,
		Warnf:   logger.Printf,
	}
	if *flagVerbose {
		agg.Tracef = logger.Printf
	}

	table, err := tpstat.BuildTable(agg, grid)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := format(&buf, table); err != nil {
		return err
	}
	if *flagPNG != "" {
		files, err := tpstat.Chart(table, *flagPNG)
		if err != nil {
			return err
		}
		if *flagVerbose {
			logger.Printf("wrote %d charts to %s", len(files), *flagPNG)
		}
	}
	_, err = w.Write(buf.Bytes())
	return err
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
