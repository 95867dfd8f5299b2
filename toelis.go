// Copyright 2020 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package toelis reads, writes and processes time-of-event data, such as
// the times of neural spikes recorded in response to presented stimuli.
//
// Data is represented as a ragged collection of trials, each trial an
// ordered sequence of event times. Two textual layouts are supported: the
// event-list layout, one "<trial> <time>" line per event (Write, Read),
// and the classic multi-unit toe_lis layout with a header of line
// pointers (WriteUnits, ReadUnits).
package toelis // import "github.com/go-daq/toelis"

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/xerrors"
)

// Write writes the collection to w in event-list layout: one line per
// event, holding the 0-based trial index and the event time, separated by
// a single space. Event times are written with enough digits to
// round-trip the source precision. Empty trials emit no lines; use ReadN
// on the way back to recover them.
func Write(w io.Writer, col Collection) error {
	enc := NewEncoder(w, col.Kind)
	return col.Rasterize(func(trial int, v float64) error {
		enc.WritePair(trial, v)
		return enc.Err()
	})
}

// Read parses event-list data from r. Event times are grouped by trial
// index, preserving the order in which they are read. The returned
// collection spans trial indices 0 through the largest index seen; unseen
// interior indices come back as empty trials. Trailing empty trials are
// not recoverable without a declared trial count: use ReadN.
func Read(r io.Reader) (Collection, error) {
	return read(r, -1)
}

// ReadN is Read with a declared trial count: the returned collection
// holds exactly ntrials trials, empty ones included. A trial index
// outside [0, ntrials) is reported as a *RangeError.
func ReadN(r io.Reader, ntrials int) (Collection, error) {
	if ntrials < 0 {
		return Collection{}, xerrors.Errorf("toelis: invalid trial count %d", ntrials)
	}
	return read(r, ntrials)
}

func read(r io.Reader, ntrials int) (Collection, error) {
	var (
		dec    = NewDecoder(r)
		trials []Trial
	)
	if ntrials >= 0 {
		trials = make([]Trial, ntrials)
	}
	for {
		trial, v, ok := dec.ReadPair()
		if !ok {
			break
		}
		if ntrials >= 0 && trial >= ntrials {
			return Collection{}, &RangeError{Line: dec.line, Trial: trial, NTrials: ntrials}
		}
		for len(trials) <= trial {
			trials = append(trials, nil)
		}
		trials[trial] = append(trials[trial], v)
	}
	if err := dec.Err(); err != nil {
		return Collection{}, err
	}
	return Collection{Kind: dec.Kind(), Trials: trials}, nil
}

// WriteFile writes the collection to the named file in event-list layout,
// creating or truncating it. The file handle is released on all paths.
func WriteFile(name string, col Collection) error {
	f, err := os.Create(name)
	if err != nil {
		return xerrors.Errorf("toelis: could not create %s: %w", name, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := Write(w, col); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return xerrors.Errorf("toelis: could not write %s: %w", name, err)
	}
	return f.Close()
}

// ReadFile reads the named event-list file.
func ReadFile(name string) (Collection, error) {
	f, err := os.Open(name)
	if err != nil {
		return Collection{}, xerrors.Errorf("toelis: could not open %s: %w", name, err)
	}
	defer f.Close()
	return Read(f)
}

// ReadFileN reads the named event-list file with a declared trial count.
func ReadFileN(name string, ntrials int) (Collection, error) {
	f, err := os.Open(name)
	if err != nil {
		return Collection{}, xerrors.Errorf("toelis: could not open %s: %w", name, err)
	}
	defer f.Close()
	return ReadN(f, ntrials)
}
