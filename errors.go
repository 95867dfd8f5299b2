// Copyright 2020 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package toelis // import "github.com/go-daq/toelis"

import "fmt"

// FormatError describes a line of a toe_lis stream that does not conform
// to the expected textual format.
type FormatError struct {
	Line int    // 1-based line number of the offending line
	Text string // content of the offending line
	Msg  string // description of the mismatch
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("toelis: invalid line %d %q: %s", e.Line, e.Text, e.Msg)
}

// RangeError reports a trial index outside the declared trial count.
type RangeError struct {
	Line    int // 1-based line number of the offending line
	Trial   int // offending trial index
	NTrials int // declared number of trials
}

func (e *RangeError) Error() string {
	return fmt.Sprintf(
		"toelis: line %d: trial index %d out of range [0, %d)",
		e.Line, e.Trial, e.NTrials,
	)
}

var (
	_ error = (*FormatError)(nil)
	_ error = (*RangeError)(nil)
)
