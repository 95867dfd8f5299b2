// Copyright 2020 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package toelis // import "github.com/go-daq/toelis"

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Poisson returns a collection of ntrials homogeneous Poisson event
// trains with the given rate (events per unit time) over [0, dur),
// drawing inter-event intervals from an exponential distribution.
// Event times are sorted within each trial.
func Poisson(src rand.Source, rate, dur float64, ntrials int) Collection {
	isi := distuv.Exponential{Rate: rate, Src: src}
	col := New(KindFloat, ntrials)
	for i := range col.Trials {
		var trial Trial
		for t := isi.Rand(); t < dur; t += isi.Rand() {
			trial = append(trial, t)
		}
		col.Trials[i] = trial
	}
	return col
}
