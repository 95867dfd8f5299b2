// Copyright 2020 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command toe-cat dumps toe_lis files as event-list text on stdout, one
// "<trial> <time>" line per event. Classic multi-unit files (-units) are
// dumped one unit at a time.
package main

import (
	"bufio"
	"os"

	"github.com/go-daq/toelis"
	"github.com/go-daq/toelis/flags"
	"github.com/go-daq/toelis/log"
	"github.com/pkg/errors"
)

func main() {
	cmd := flags.New()

	if len(cmd.Args) == 0 {
		log.Fatalf("missing input toe_lis file(s)")
	}

	w := bufio.NewWriter(os.Stdout)
	for _, name := range cmd.Args {
		err := process(w, name, cmd.Units)
		if err != nil {
			log.Fatalf("could not process %s: %+v", name, err)
		}
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("could not flush stdout: %+v", err)
	}
}

func process(w *bufio.Writer, name string, units bool) error {
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

	for _, col := range cols {
		err := toelis.Write(w, col)
		if err != nil {
			return errors.Wrap(err, "could not write event list")
		}
	}
	return nil
}
