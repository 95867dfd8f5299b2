// Copyright 2020 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command toe-merge merges the corresponding trials of several event-list
// toe_lis files into one. Inputs are read concurrently; merged trials are
// not sorted.
package main

import (
	"flag"

	"github.com/go-daq/toelis"
	"github.com/go-daq/toelis/flags"
	"github.com/go-daq/toelis/log"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

func main() {
	var (
		oname = flag.String("o", "merged.toe_lis", "path to the output toe_lis file")
	)

	cmd := flags.New()
	msg := log.NewMsgStream("toe-merge", cmd.Level, nil)

	if len(cmd.Args) < 2 {
		log.Fatalf("need at least two input toe_lis files")
	}

	cols := make([]toelis.Collection, len(cmd.Args))
	var grp errgroup.Group
	for i, name := range cmd.Args {
		i, name := i, name
		grp.Go(func() error {
			col, err := toelis.ReadFile(name)
			if err != nil {
				return errors.Wrapf(err, "could not read %s", name)
			}
			cols[i] = col
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		log.Fatalf("could not read inputs: %+v", err)
	}

	out := toelis.Merge(cols...)
	err := toelis.WriteFile(*oname, out)
	if err != nil {
		log.Fatalf("could not write %s: %+v", *oname, err)
	}

	msg.Infof("merged %d files: %d trials, %d events -> %s",
		len(cols), out.NumTrials(), out.Count(), *oname,
	)
}
