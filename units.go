// Copyright 2020 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package toelis // import "github.com/go-daq/toelis"

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/xerrors"
)

// Classic multi-unit toe_lis layout, one value per line:
//   line 1            - number of units (nunits)
//   line 2            - number of trials per unit (ntrials)
//   lines 3:3+nunits  - 1-based line pointers to the start of each unit
// Each unit block holds ntrials per-trial event counts, then the event
// times of all trials in order.

// WriteUnits writes one or more collections to w in the classic
// multi-unit toe_lis layout. Each collection is one unit; all units must
// hold the same number of trials.
func WriteUnits(w io.Writer, units ...Collection) error {
	if len(units) == 0 {
		return xerrors.New("toelis: no units to write")
	}
	ntrials := units[0].NumTrials()
	for i, u := range units[1:] {
		if u.NumTrials() != ntrials {
			return xerrors.Errorf(
				"toelis: unit %d has %d trials, want %d (all units must have the same number of trials)",
				i+1, u.NumTrials(), ntrials,
			)
		}
	}

	enc := NewEncoder(w, KindInt)
	enc.WriteInt(len(units))
	enc.WriteInt(ntrials)
	ptr := 3 + len(units) // first data line
	for _, u := range units {
		enc.WriteInt(ptr)
		ptr += ntrials + u.Count()
	}
	for _, u := range units {
		for _, trial := range u.Trials {
			enc.WriteInt(len(trial))
		}
		enc.kind = u.Kind
		for _, trial := range u.Trials {
			for _, v := range trial {
				enc.WriteValue(v)
			}
		}
	}
	return enc.Err()
}

// ReadUnits parses r as a classic multi-unit toe_lis file and returns one
// collection per unit. Each unit's line pointer is checked against the
// running line position; a mismatch means a corrupted header. The numeric
// kind is inferred once over the whole file.
func ReadUnits(r io.Reader) ([]Collection, error) {
	dec := NewDecoder(r)
	nunits := dec.ReadInt()
	ntrials := dec.ReadInt()
	if err := dec.Err(); err != nil {
		return nil, err
	}
	if nunits <= 0 || ntrials < 0 {
		return nil, xerrors.Errorf("toelis: invalid header: nunits=%d ntrials=%d", nunits, ntrials)
	}
	ptrs := make([]int, nunits)
	for i := range ptrs {
		ptrs[i] = dec.ReadInt()
	}

	out := make([]Collection, 0, nunits)
	pos := 3 + nunits
	for unit := 0; unit < nunits; unit++ {
		if dec.err == nil && pos != ptrs[unit] {
			return nil, xerrors.Errorf(
				"toelis: corrupted header: unit %d should start on line %d, header says %d",
				unit, pos, ptrs[unit],
			)
		}
		counts := make([]int, ntrials)
		for i := range counts {
			counts[i] = dec.ReadInt()
			if dec.err == nil && counts[i] < 0 {
				return nil, xerrors.Errorf("toelis: negative event count %d for unit %d trial %d", counts[i], unit, i)
			}
		}
		col := New(KindFloat, ntrials)
		nevents := 0
		for i, n := range counts {
			trial := make(Trial, n)
			for j := range trial {
				trial[j] = dec.ReadValue()
			}
			col.Trials[i] = trial
			nevents += n
		}
		if err := dec.Err(); err != nil {
			return nil, err
		}
		out = append(out, col)
		pos += ntrials + nevents
	}

	for i := range out {
		out[i].Kind = dec.Kind()
	}
	return out, nil
}

// WriteUnitsFile writes the units to the named file in the classic
// multi-unit layout, creating or truncating it.
func WriteUnitsFile(name string, units ...Collection) error {
	f, err := os.Create(name)
	if err != nil {
		return xerrors.Errorf("toelis: could not create %s: %w", name, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := WriteUnits(w, units...); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return xerrors.Errorf("toelis: could not write %s: %w", name, err)
	}
	return f.Close()
}

// ReadUnitsFile reads the named classic multi-unit toe_lis file.
func ReadUnitsFile(name string) ([]Collection, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, xerrors.Errorf("toelis: could not open %s: %w", name, err)
	}
	defer f.Close()
	return ReadUnits(f)
}
