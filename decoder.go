// Copyright 2020 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package toelis // import "github.com/go-daq/toelis"

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"
)

// A Decoder reads toe_lis text from an input stream.
// Errors stick: after the first failure all reads return zero values and
// Err returns the first error encountered.
type Decoder struct {
	sc   *bufio.Scanner
	line int
	err  error

	nvals    int
	sawFloat bool
}

// NewDecoder returns a new decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{sc: bufio.NewScanner(r)}
}

// Err returns the first error encountered by the decoder, if any.
func (dec *Decoder) Err() error { return dec.err }

// Kind reports the numeric kind inferred over all event time tokens
// decoded so far: KindInt if at least one time was decoded and none used
// floating-point syntax, KindFloat otherwise.
// The inference is made once over the whole stream, never per line.
func (dec *Decoder) Kind() Kind {
	if dec.nvals > 0 && !dec.sawFloat {
		return KindInt
	}
	return KindFloat
}

func (dec *Decoder) next() (string, bool) {
	if dec.err != nil {
		return "", false
	}
	if !dec.sc.Scan() {
		dec.err = dec.sc.Err()
		if dec.err == nil {
			dec.err = io.ErrUnexpectedEOF
		}
		return "", false
	}
	dec.line++
	return strings.TrimSpace(dec.sc.Text()), true
}

// ReadInt decodes the next line as an integer count or line pointer.
// Very old toe_lis files store counts with a trailing ".0", so any
// numeric line holding an integral value is accepted.
func (dec *Decoder) ReadInt() int {
	text, ok := dec.next()
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || v != math.Trunc(v) {
		dec.err = &FormatError{Line: dec.line, Text: text, Msg: "expected an integer"}
		return 0
	}
	return int(v)
}

// ReadValue decodes the next line as an event time.
func (dec *Decoder) ReadValue() float64 {
	text, ok := dec.next()
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		dec.err = &FormatError{Line: dec.line, Text: text, Msg: "expected a number"}
		return 0
	}
	dec.sawValue(text)
	return v
}

// ReadPair decodes the next "<trial> <time>" line.
// Blank lines are skipped; ok is false when the input is exhausted or an
// error occurred (see Err).
func (dec *Decoder) ReadPair() (trial int, v float64, ok bool) {
	if dec.err != nil {
		return 0, 0, false
	}
	for {
		if !dec.sc.Scan() {
			dec.err = dec.sc.Err() // nil on clean EOF
			return 0, 0, false
		}
		dec.line++
		text := dec.sc.Text()
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			dec.err = &FormatError{Line: dec.line, Text: text, Msg: `expected "<trial> <time>"`}
			return 0, 0, false
		}
		trial, err := strconv.Atoi(fields[0])
		if err != nil || trial < 0 {
			dec.err = &FormatError{Line: dec.line, Text: text, Msg: "invalid trial index"}
			return 0, 0, false
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			dec.err = &FormatError{Line: dec.line, Text: text, Msg: "invalid event time"}
			return 0, 0, false
		}
		dec.sawValue(fields[1])
		return trial, v, true
	}
}

func (dec *Decoder) sawValue(text string) {
	dec.nvals++
	if strings.ContainsAny(text, ".eE") {
		dec.sawFloat = true
	}
}
