// Copyright 2020 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command toe-browse is an interactive inspector for toe_lis files.
//
// Available commands:
//
//	help          display help
//	count         total number of events in the current unit
//	range         minimum and maximum event times in the current unit
//	trial <i>     event times of trial i
//	unit <i>      switch to unit i
//	quit          quit toe-browse
package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-daq/toelis"
	"github.com/go-daq/toelis/flags"
	"github.com/go-daq/toelis/log"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
)

func main() {
	cmd := flags.New()
	msg := log.NewMsgStream("toe-browse", cmd.Level, nil)

	if len(cmd.Args) != 1 {
		log.Fatalf("expect exactly one input toe_lis file")
	}
	name := cmd.Args[0]

	var (
		cols []toelis.Collection
		err  error
	)
	switch {
	case cmd.Units:
		cols, err = toelis.ReadUnitsFile(name)
	default:
		var col toelis.Collection
		col, err = toelis.ReadFile(name)
		cols = []toelis.Collection{col}
	}
	if err != nil {
		log.Fatalf("could not read %s: %+v", name, err)
	}

	msg.Infof("%s: %d unit(s)", name, len(cols))

	term := liner.NewLiner()
	defer term.Close()
	term.SetCtrlCAborts(true)

	br := browser{cols: cols}
	for {
		o, err := term.Prompt("toe> ")
		switch err {
		case nil:
			// ok
		case io.EOF, liner.ErrPromptAborted:
			fmt.Printf("\n")
			return
		default:
			log.Fatalf("could not read command: %+v", err)
		}
		if strings.TrimSpace(o) == "" {
			continue
		}
		term.AppendHistory(o)

		quit, err := br.run(o)
		if err != nil {
			msg.Errorf("%+v", err)
			continue
		}
		if quit {
			return
		}
	}
}

type browser struct {
	cols []toelis.Collection
	cur  int // current unit
}

func (br *browser) run(line string) (quit bool, err error) {
	args := strings.Fields(line)
	col := br.cols[br.cur]

	switch args[0] {
	case "help", "h":
		fmt.Printf("commands: help count range trial <i> unit <i> quit\n")

	case "count":
		fmt.Printf("unit %d: %d trials, %d events\n", br.cur, col.NumTrials(), col.Count())

	case "range":
		min, max, ok := col.Bounds()
		if !ok {
			fmt.Printf("unit %d: no events\n", br.cur)
			break
		}
		fmt.Printf("unit %d: [%g, %g]\n", br.cur, min, max)

	case "trial":
		i, err := index(args, col.NumTrials())
		if err != nil {
			return false, err
		}
		fmt.Printf("trial %d: %v\n", i, col.Trials[i])

	case "unit":
		i, err := index(args, len(br.cols))
		if err != nil {
			return false, err
		}
		br.cur = i
		fmt.Printf("unit %d: %d trials, %d events\n", i, br.cols[i].NumTrials(), br.cols[i].Count())

	case "quit", "q", "exit":
		return true, nil

	default:
		return false, errors.Errorf("unknown command %q (try \"help\")", args[0])
	}
	return false, nil
}

func index(args []string, n int) (int, error) {
	if len(args) != 2 {
		return 0, errors.Errorf("%s: expect exactly one index argument", args[0])
	}
	i, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, errors.Wrapf(err, "%s: invalid index %q", args[0], args[1])
	}
	if i < 0 || i >= n {
		return 0, errors.Errorf("%s: index %d out of range [0, %d)", args[0], i, n)
	}
	return i, nil
}
