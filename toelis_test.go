// Copyright 2020 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package toelis_test

import (
	"bytes"
	"errors"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/go-daq/toelis"
)

func TestEventListRoundTrip(t *testing.T) {
	for _, tt := range []struct {
		name string
		col  toelis.Collection
	}{
		{
			name: "single-trial",
			col: toelis.Collection{
				Trials: []toelis.Trial{{0.5, 1.2, 3.25}},
			},
		},
		{
			name: "multi-trial",
			col: toelis.Collection{
				Trials: []toelis.Trial{
					{-590.849975586, -261.550048828, 589.100097656},
					{10406.75},
					{-1809, 452.600097656, 5721.25},
				},
			},
		},
		{
			name: "unsorted-events",
			col: toelis.Collection{
				Trials: []toelis.Trial{{3.5, 1.5, 2.5}},
			},
		},
		{
			name: "full-precision",
			col: toelis.Collection{
				Trials: []toelis.Trial{{0.123456789012345, 1e-17, 12782.9501953}},
			},
		},
		{
			name: "interior-empty-trial",
			col: toelis.Collection{
				Trials: []toelis.Trial{{0.5, 1.2}, nil, {3.3}},
			},
		},
		{
			name: "int-kind",
			col: toelis.Collection{
				Kind:   toelis.KindInt,
				Trials: []toelis.Trial{{1, 2, 3}, {40, 50}},
			},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			err := toelis.Write(buf, tt.col)
			if err != nil {
				t.Fatalf("could not write collection: %+v", err)
			}

			got, err := toelis.ReadN(bytes.NewReader(buf.Bytes()), tt.col.NumTrials())
			if err != nil {
				t.Fatalf("could not read collection back: %+v", err)
			}

			if !reflect.DeepEqual(got, tt.col) {
				t.Fatalf("r/w round trip failed:\ngot = %#v\nwant= %#v\n", got, tt.col)
			}
		})
	}
}

func TestEventListLayout(t *testing.T) {
	col := toelis.Collection{
		Trials: []toelis.Trial{{0.5, 1.2}, nil, {3.3}},
	}

	buf := new(bytes.Buffer)
	err := toelis.Write(buf, col)
	if err != nil {
		t.Fatalf("could not write collection: %+v", err)
	}

	if got, want := buf.String(), "0 0.5\n0 1.2\n2 3.3\n"; got != want {
		t.Fatalf("invalid event-list layout:\ngot = %q\nwant= %q\n", got, want)
	}

	// without a declared trial count, the trailing structure of the
	// interior empty trial is still recovered from the index gap.
	got, err := toelis.Read(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("could not read collection back: %+v", err)
	}
	if !reflect.DeepEqual(got, col) {
		t.Fatalf("invalid read-back:\ngot = %#v\nwant= %#v\n", got, col)
	}
}

func TestEventListOrderPreserved(t *testing.T) {
	col := toelis.Collection{
		Trials: []toelis.Trial{{3, 1, 2}},
	}

	buf := new(bytes.Buffer)
	err := toelis.Write(buf, col)
	if err != nil {
		t.Fatalf("could not write collection: %+v", err)
	}

	got, err := toelis.Read(buf)
	if err != nil {
		t.Fatalf("could not read collection back: %+v", err)
	}
	if want := (toelis.Trial{3, 1, 2}); !reflect.DeepEqual(got.Trials[0], want) {
		t.Fatalf("events were reordered: got=%v want=%v", got.Trials[0], want)
	}
}

func TestEventListKindInference(t *testing.T) {
	for _, tt := range []struct {
		name string
		raw  string
		want toelis.Kind
	}{
		{"ints", "0 1\n0 2\n1 3\n", toelis.KindInt},
		{"floats", "0 1.5\n0 2\n", toelis.KindFloat},
		{"exponent", "0 1e3\n", toelis.KindFloat},
		{"empty", "", toelis.KindFloat},
	} {
		t.Run(tt.name, func(t *testing.T) {
			col, err := toelis.Read(strings.NewReader(tt.raw))
			if err != nil {
				t.Fatalf("could not read: %+v", err)
			}
			if col.Kind != tt.want {
				t.Fatalf("invalid kind: got=%v want=%v", col.Kind, tt.want)
			}
		})
	}
}

func TestEventListReadErrors(t *testing.T) {
	for _, tt := range []struct {
		name string
		raw  string
		line int
	}{
		{"non-numeric-index", "abc def\n", 1},
		{"non-numeric-time", "0 spike\n", 1},
		{"missing-field", "0 1.5\n12\n", 2},
		{"extra-field", "0 1.5 2.5\n", 1},
		{"negative-index", "-1 0.5\n", 1},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := toelis.Read(strings.NewReader(tt.raw))
			if err == nil {
				t.Fatalf("expected a format error")
			}
			var ferr *toelis.FormatError
			if !errors.As(err, &ferr) {
				t.Fatalf("expected a *toelis.FormatError, got %#v", err)
			}
			if ferr.Line != tt.line {
				t.Fatalf("invalid error line: got=%d want=%d", ferr.Line, tt.line)
			}
		})
	}
}

func TestEventListRangeError(t *testing.T) {
	_, err := toelis.ReadN(strings.NewReader("0 0.5\n3 1.5\n"), 2)
	if err == nil {
		t.Fatalf("expected a range error")
	}
	var rerr *toelis.RangeError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected a *toelis.RangeError, got %#v", err)
	}
	if rerr.Trial != 3 || rerr.NTrials != 2 || rerr.Line != 2 {
		t.Fatalf("invalid range error: %#v", rerr)
	}
}

func TestWriteIntKindRejectsFractions(t *testing.T) {
	col := toelis.Collection{
		Kind:   toelis.KindInt,
		Trials: []toelis.Trial{{1.5}},
	}
	err := toelis.Write(new(bytes.Buffer), col)
	if err == nil {
		t.Fatalf("expected an error for non-integral KindInt value")
	}
}

func TestEventListWriteError(t *testing.T) {
	col := toelis.Collection{
		Trials: []toelis.Trial{{0.5}},
	}
	err := toelis.Write(failWriter{}, col)
	if err != io.EOF {
		t.Fatalf("expected io.EOF, got %+v", err)
	}
}

func TestEventListFiles(t *testing.T) {
	dir, err := ioutil.TempDir("", "toelis-")
	if err != nil {
		t.Fatalf("could not create tmpdir: %+v", err)
	}
	defer os.RemoveAll(dir)

	want := toelis.Collection{
		Trials: []toelis.Trial{{0.5, 1.2}, nil, {3.3}},
	}

	name := filepath.Join(dir, "data.toe_lis")
	err = toelis.WriteFile(name, want)
	if err != nil {
		t.Fatalf("could not write file: %+v", err)
	}

	got, err := toelis.ReadFileN(name, want.NumTrials())
	if err != nil {
		t.Fatalf("could not read file: %+v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("file round trip failed:\ngot = %#v\nwant= %#v\n", got, want)
	}

	_, err = toelis.ReadFile(filepath.Join(dir, "missing.toe_lis"))
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, io.EOF }

var _ io.Writer = (*failWriter)(nil)
