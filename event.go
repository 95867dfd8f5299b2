// Copyright 2020 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package toelis // import "github.com/go-daq/toelis"

// Trial is an ordered sequence of event times, typically the spike times
// recorded during one repetition of an experimental stimulus.
// A trial may be empty.
type Trial []float64

// Kind declares the numeric kind of the event times in a collection.
// It is fixed when the collection is constructed or read, never re-decided
// per value.
type Kind int

const (
	// KindFloat marks event times as double-precision floating point values.
	KindFloat Kind = iota
	// KindInt marks event times as integer values (e.g. sample counts).
	// Integer times are exact in a float64 up to 2**53.
	KindInt
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	}
	return "invalid"
}

// Collection is an ordered ragged sequence of trials, as read from or
// written to one toe_lis file (or one unit thereof).
// Trial indices are 0-based: Trials[i] holds the events of trial i.
type Collection struct {
	Kind   Kind
	Trials []Trial
}

// New returns a collection of n empty trials with kind k.
func New(k Kind, n int) Collection {
	return Collection{Kind: k, Trials: make([]Trial, n)}
}

// NumTrials returns the number of trials in the collection,
// empty trials included.
func (col Collection) NumTrials() int { return len(col.Trials) }

// Clone returns a deep copy of the collection.
func (col Collection) Clone() Collection {
	o := Collection{Kind: col.Kind, Trials: make([]Trial, len(col.Trials))}
	for i, trial := range col.Trials {
		o.Trials[i] = append(Trial(nil), trial...)
	}
	return o
}
