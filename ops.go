// Copyright 2020 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package toelis // import "github.com/go-daq/toelis"

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Count returns the total number of events across all trials.
func (col Collection) Count() int {
	n := 0
	for _, trial := range col.Trials {
		n += len(trial)
	}
	return n
}

// Bounds returns the minimum and maximum event times across all trials.
// ok is false when the collection holds no events at all.
func (col Collection) Bounds() (min, max float64, ok bool) {
	for _, trial := range col.Trials {
		if len(trial) == 0 {
			continue
		}
		lo, hi := floats.Min(trial), floats.Max(trial)
		switch {
		case !ok:
			min, max, ok = lo, hi, true
		default:
			min = math.Min(min, lo)
			max = math.Max(max, hi)
		}
	}
	return min, max, ok
}

// Offset returns a copy of the collection with v subtracted from every
// event time. Shifting an integer collection by a non-integral amount
// yields a KindFloat collection.
func (col Collection) Offset(v float64) Collection {
	o := col.Clone()
	if o.Kind == KindInt && v != math.Trunc(v) {
		o.Kind = KindFloat
	}
	for _, trial := range o.Trials {
		floats.AddConst(-v, trial)
	}
	return o
}

// Subrange returns a copy of the collection holding only the events in
// [onset, offset], inclusive, preserving event order.
func (col Collection) Subrange(onset, offset float64) Collection {
	o := Collection{Kind: col.Kind, Trials: make([]Trial, len(col.Trials))}
	for i, trial := range col.Trials {
		var dst Trial
		for _, v := range trial {
			if v >= onset && v <= offset {
				dst = append(dst, v)
			}
		}
		o.Trials[i] = dst
	}
	return o
}

// Merge concatenates corresponding trials of the given collections.
// The result has as many trials as the longest input; merged trials are
// not sorted. The result is KindInt only when every input is.
func Merge(cols ...Collection) Collection {
	var o Collection
	if len(cols) == 0 {
		return o
	}
	o.Kind = KindInt
	ntrials := 0
	for _, col := range cols {
		if col.Kind != KindInt {
			o.Kind = KindFloat
		}
		if n := col.NumTrials(); n > ntrials {
			ntrials = n
		}
	}
	o.Trials = make([]Trial, ntrials)
	for _, col := range cols {
		for i, trial := range col.Trials {
			o.Trials[i] = append(o.Trials[i], trial...)
		}
	}
	return o
}

// Rasterize calls f for every event in the collection, in trial order and
// event order, with the 0-based trial index and the event time.
// It stops at the first error from f and returns it.
func (col Collection) Rasterize(f func(trial int, t float64) error) error {
	for i, trial := range col.Trials {
		for _, v := range trial {
			if err := f(i, v); err != nil {
				return err
			}
		}
	}
	return nil
}
