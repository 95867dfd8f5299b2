// Copyright 2020 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command toe-info prints a per-unit summary of toe_lis files: number of
// trials, number of events, event time range and the mean number of
// events per trial.
package main

import (
	"github.com/go-daq/toelis"
	"github.com/go-daq/toelis/flags"
	"github.com/go-daq/toelis/log"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

func main() {
	cmd := flags.New()
	msg := log.NewMsgStream("toe-info", cmd.Level, nil)

	if len(cmd.Args) == 0 {
		log.Fatalf("missing input toe_lis file(s)")
	}

	for _, name := range cmd.Args {
		err := process(msg, name, cmd.Units)
		if err != nil {
			log.Fatalf("could not process %s: %+v", name, err)
		}
	}
}

func process(msg log.MsgStream, name string, units bool) error {
	var cols []toelis.Collection
	switch {
	case units:
		us, err := toelis.ReadUnitsFile(name)
		if err != nil {
			return errors.Wrap(err, "could not read units")
		}
		cols = us
	default:
		col, err := toelis.ReadFile(name)
		if err != nil {
			return errors.Wrap(err, "could not read event list")
		}
		cols = append(cols, col)
	}

	for i, col := range cols {
		counts := make([]float64, col.NumTrials())
		for j, trial := range col.Trials {
			counts[j] = float64(len(trial))
		}
		mean, std := stat.MeanStdDev(counts, nil)
		msg.Infof("%s: unit %d: trials=%d events=%d (%.1f +/- %.1f per trial, %s)",
			name, i, col.NumTrials(), col.Count(), mean, std, col.Kind,
		)
		if min, max, ok := col.Bounds(); ok {
			msg.Infof("%s: unit %d: range=[%g, %g]", name, i, min, max)
		}
	}
	return nil
}
