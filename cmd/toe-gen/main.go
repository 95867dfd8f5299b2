// Copyright 2020 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command toe-gen writes synthetic Poisson time-of-event data to a
// toe_lis file.
package main

import (
	"flag"

	"github.com/go-daq/toelis"
	"github.com/go-daq/toelis/flags"
	"github.com/go-daq/toelis/log"
	"golang.org/x/exp/rand"
)

func main() {
	var (
		oname   = flag.String("o", "out.toe_lis", "path to the output toe_lis file")
		ntrials = flag.Int("trials", 10, "number of trials to generate")
		rate    = flag.Float64("rate", 0.02, "event rate, in events per millisecond")
		dur     = flag.Float64("dur", 1000, "trial duration, in milliseconds")
		seed    = flag.Uint64("seed", 1234, "seed for the random number generator")
	)

	cmd := flags.New()
	msg := log.NewMsgStream("toe-gen", cmd.Level, nil)

	col := toelis.Poisson(rand.NewSource(*seed), *rate, *dur, *ntrials)

	var err error
	switch {
	case cmd.Units:
		err = toelis.WriteUnitsFile(*oname, col)
	default:
		err = toelis.WriteFile(*oname, col)
	}
	if err != nil {
		log.Fatalf("could not write %s: %+v", *oname, err)
	}

	msg.Infof("wrote %d trials (%d events) to %s", col.NumTrials(), col.Count(), *oname)
}
