// Copyright 2020 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flags provides an easy creation of standard flag parameters for
// toelis commands.
package flags // import "github.com/go-daq/toelis/flags"

import (
	"flag"
	"strconv"
	"strings"

	"github.com/go-daq/toelis/config"
	"github.com/go-daq/toelis/log"
)

// New registers the flags shared by all toe-* commands, parses the
// command line and returns the resulting configuration.
// Commands register their own flags before calling New.
func New() config.Cmd {
	var (
		cmd config.Cmd
		lvl string
	)

	flag.StringVar(&lvl, "lvl", "INFO", "msgstream level")
	flag.BoolVar(&cmd.Units, "units", false, "input files use the classic multi-unit toe_lis layout")

	flag.Parse()

	cmd.Args = flag.Args()
	cmd.Level = parseLevel(lvl)

	return cmd
}

func parseLevel(lvl string) log.Level {
	lvl = strings.ToLower(lvl)
	switch {
	case strings.HasPrefix(lvl, "dbg"), strings.HasPrefix(lvl, "debug"):
		return log.LvlDebug
	case strings.HasPrefix(lvl, "info"):
		return log.LvlInfo
	case strings.HasPrefix(lvl, "warn"):
		return log.LvlWarning
	case strings.HasPrefix(lvl, "err"):
		return log.LvlError
	}
	v, err := strconv.Atoi(lvl)
	if err != nil {
		log.Fatalf("unknown level value %q: %+v", lvl, err)
	}
	return log.Level(v)
}
