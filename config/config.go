// Copyright 2020 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config describes how toelis commands are configured.
package config // import "github.com/go-daq/toelis/config"

import (
	"github.com/go-daq/toelis/log"
)

// Cmd holds the configuration common to all toe-* commands.
type Cmd struct {
	Level log.Level // verbosity level of the command
	Units bool      // whether input files use the classic multi-unit layout

	Args []string // positional arguments (usually input files)
}
