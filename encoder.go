// Copyright 2020 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package toelis // import "github.com/go-daq/toelis"

import (
	"io"
	"math"
	"strconv"

	"golang.org/x/xerrors"
)

// An Encoder writes toe_lis text to an output stream.
// Errors stick: after the first failure all writes are no-ops and Err
// returns the first error encountered.
type Encoder struct {
	w    io.Writer
	kind Kind
	err  error
	buf  []byte
}

// NewEncoder returns a new encoder writing to w, formatting event times
// according to kind.
func NewEncoder(w io.Writer, kind Kind) *Encoder {
	return &Encoder{w: w, kind: kind, buf: make([]byte, 0, 32)}
}

// Err returns the first error encountered by the encoder, if any.
func (enc *Encoder) Err() error { return enc.err }

// WriteInt writes v on a line of its own.
func (enc *Encoder) WriteInt(v int) {
	if enc.err != nil {
		return
	}
	enc.buf = strconv.AppendInt(enc.buf[:0], int64(v), 10)
	enc.buf = append(enc.buf, '\n')
	_, enc.err = enc.w.Write(enc.buf)
}

// WriteValue writes an event time on a line of its own.
func (enc *Encoder) WriteValue(v float64) {
	if enc.err != nil {
		return
	}
	enc.buf, enc.err = appendValue(enc.buf[:0], v, enc.kind)
	if enc.err != nil {
		return
	}
	enc.buf = append(enc.buf, '\n')
	_, enc.err = enc.w.Write(enc.buf)
}

// WritePair writes a (trial index, event time) line.
func (enc *Encoder) WritePair(trial int, v float64) {
	if enc.err != nil {
		return
	}
	if trial < 0 {
		enc.err = xerrors.Errorf("toelis: negative trial index %d", trial)
		return
	}
	enc.buf = strconv.AppendInt(enc.buf[:0], int64(trial), 10)
	enc.buf = append(enc.buf, ' ')
	enc.buf, enc.err = appendValue(enc.buf, v, enc.kind)
	if enc.err != nil {
		return
	}
	enc.buf = append(enc.buf, '\n')
	_, enc.err = enc.w.Write(enc.buf)
}

// appendValue formats an event time with enough digits to round-trip the
// source precision: shortest exact representation for floats, plain
// integer text for integer kinds.
func appendValue(buf []byte, v float64, kind Kind) ([]byte, error) {
	switch kind {
	case KindInt:
		if v != math.Trunc(v) || math.Abs(v) > 1<<53 {
			return buf, xerrors.Errorf("toelis: value %v is not an integer event time", v)
		}
		return strconv.AppendInt(buf, int64(v), 10), nil
	default:
		return strconv.AppendFloat(buf, v, 'g', -1, 64), nil
	}
}
