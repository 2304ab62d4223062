// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trialfmt reads the per-trial log files written by the MPC
// experiment harness.
//
// A trial log is free-form text. The only lines this package cares
// about are timer lines of the form
//
//	<label>: <integer> [unit]
//
// where label is drawn from a vocabulary supplied by the caller
// (for example "fi_prep" or "atlas_online"). Everything else in the
// file (progress messages, separators, debug output) is ignored.
package trialfmt

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// A Reader reads timer lines from a single trial log.
//
// Its API is modeled on bufio.Scanner. A Reader retains ownership of
// the records it returns; a caller should copy anything it needs to
// keep across calls to Scan.
type Reader struct {
	s      *bufio.Scanner
	err    error
	labels [][]byte

	fileName string
	line     int

	cur    Record
	result Line
	synErr SyntaxError
}

// A Record is either a *Line or a *SyntaxError.
type Record interface {
	// Pos returns the file name and 1-based line number this
	// record was read from.
	Pos() (fileName string, line int)
}

var _ Record = (*Line)(nil)
var _ Record = (*SyntaxError)(nil)

// A Line is a single labeled measurement read from a trial log.
type Line struct {
	// Label is the vocabulary label that matched, without the
	// trailing colon.
	Label string

	// Value is the integer that followed the label.
	Value int64

	fileName string
	line     int
}

func (l *Line) Pos() (fileName string, line int) {
	return l.fileName, l.line
}

// A SyntaxError reports a line that starts with a known label but
// whose value cannot be parsed as an integer.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// NewReader returns a Reader that extracts lines labeled with any of
// labels from r. fileName is only used in positions and errors.
func NewReader(r io.Reader, fileName string, labels ...string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName, labels...)
	return reader
}

// Reset prepares the Reader to read a new input with a new label
// vocabulary.
func (r *Reader) Reset(ior io.Reader, fileName string, labels ...string) {
	r.s = bufio.NewScanner(ior)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.line = 0
	r.err = nil
	r.cur = nil
	r.labels = r.labels[:0]
	for _, l := range labels {
		r.labels = append(r.labels, []byte(l+":"))
	}
}

// Scan advances to the next labeled line and reports whether one was
// found. It returns false at EOF or on an I/O error, in which case
// the caller should check Err.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for r.s.Scan() {
		r.line++
		line := bytes.TrimLeftFunc(r.s.Bytes(), unicode.IsSpace)
		label, rest, ok := r.matchLabel(line)
		if !ok {
			continue
		}
		if msg := r.parseValue(label, rest); msg != "" {
			r.synErr = SyntaxError{r.fileName, r.line, msg}
			r.cur = &r.synErr
		} else {
			r.cur = &r.result
		}
		return true
	}
	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line, err)
	}
	r.cur = nil
	return false
}

// matchLabel reports which vocabulary label, if any, line starts
// with. The label must be followed immediately by a colon, so
// "atlas_online:" never matches the label "online".
func (r *Reader) matchLabel(line []byte) (label, rest []byte, ok bool) {
	for _, l := range r.labels {
		if bytes.HasPrefix(line, l) {
			return l[:len(l)-1], line[len(l):], true
		}
	}
	return nil, nil, false
}

// parseValue parses the first field of rest as the value for label
// and stores it in r.result. It returns a non-empty message on a
// syntax error.
func (r *Reader) parseValue(label, rest []byte) string {
	f, _ := splitField(bytes.TrimLeftFunc(rest, unicode.IsSpace))
	if len(f) == 0 {
		return fmt.Sprintf("%s: missing value", label)
	}
	v, err := strconv.ParseInt(string(f), 10, 64)
	if err != nil {
		return fmt.Sprintf("%s: parsing value %q: %s", label, f, err.(*strconv.NumError).Err)
	}
	r.result = Line{
		Label:    string(label),
		Value:    v,
		fileName: r.fileName,
		line:     r.line,
	}
	return ""
}

// Result returns the record read by the last call to Scan. This is
// either a *Line or a *SyntaxError. The record is only valid until
// the next call to Scan.
func (r *Reader) Result() Record {
	if r.cur == nil {
		return &SyntaxError{r.fileName, r.line, "Reader.Scan has not been called"}
	}
	return r.cur
}

// Err returns the I/O error that stopped Scan, if any.
func (r *Reader) Err() error {
	return r.err
}

// splitField returns the leading run of non-space characters in x and
// the remainder after the separating space.
func splitField(x []byte) (field, rest []byte) {
	for i := 0; i < len(x); {
		r, n := utf8.DecodeRune(x[i:])
		if unicode.IsSpace(r) {
			return x[:i], x[i+n:]
		}
		i += n
	}
	return x, nil
}
