// Copyright 2020 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package toelis_test

import (
	"bytes"
	"reflect"
	"sort"
	"testing"

	"github.com/go-daq/toelis"
	"golang.org/x/exp/rand"
)

func TestPoisson(t *testing.T) {
	const (
		rate    = 0.02 // events per millisecond
		dur     = 1000.0
		ntrials = 20
	)

	col := toelis.Poisson(rand.NewSource(1234), rate, dur, ntrials)

	if got, want := col.NumTrials(), ntrials; got != want {
		t.Fatalf("invalid number of trials: got=%d want=%d", got, want)
	}
	if col.Kind != toelis.KindFloat {
		t.Fatalf("invalid kind: got=%v want=%v", col.Kind, toelis.KindFloat)
	}
	if col.Count() == 0 {
		t.Fatalf("expected some events for rate=%v dur=%v", rate, dur)
	}

	for i, trial := range col.Trials {
		if !sort.Float64sAreSorted(trial) {
			t.Fatalf("trial %d is not sorted: %v", i, trial)
		}
		for _, v := range trial {
			if v < 0 || v >= dur {
				t.Fatalf("trial %d: event %v outside [0, %v)", i, v, dur)
			}
		}
	}
}

func TestPoissonDeterministic(t *testing.T) {
	a := toelis.Poisson(rand.NewSource(42), 0.01, 500, 5)
	b := toelis.Poisson(rand.NewSource(42), 0.01, 500, 5)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed should yield the same collection")
	}
}

func TestPoissonRoundTrip(t *testing.T) {
	col := toelis.Poisson(rand.NewSource(1234), 0.05, 200, 8)

	buf := new(bytes.Buffer)
	err := toelis.Write(buf, col)
	if err != nil {
		t.Fatalf("could not write collection: %+v", err)
	}

	got, err := toelis.ReadN(buf, col.NumTrials())
	if err != nil {
		t.Fatalf("could not read collection back: %+v", err)
	}
	if !reflect.DeepEqual(got, col) {
		t.Fatalf("synthetic data round trip failed:\ngot = %#v\nwant= %#v\n", got, col)
	}
}
