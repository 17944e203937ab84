// Copyright (c) 2022  The Go-Enjin Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package io

import (
	"fmt"
	stdio "io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
)

var (
	CustomIndent = ""
	BinName      = filepath.Base(os.Args[0])
	LogFile      string
	Verbose      bool
)

var (
	Stdout stdio.Writer = os.Stdout
	Stderr stdio.Writer = os.Stderr
)

func SetupCustomIndent(ctx *cli.Context) (err error) {
	if customIndent := ctx.String("custom-indent"); customIndent != "" {
		CustomIndent = customIndent
	}
	return
}

func SetupVerbose(ctx *cli.Context) (err error) {
	Verbose = ctx.Bool("verbose")
	if logFile := ctx.String("log-file"); logFile != "" {
		LogFile = logFile
	}
	return
}

// NotifyF prints a tagged progress line when verbose output is enabled
func NotifyF(tag, format string, argv ...interface{}) {
	if !Verbose {
		return
	}
	msg := fmt.Sprintf(strings.TrimSpace(format), argv...)
	stderr("%s# %s: %s\n", CustomIndent, tag, msg)
}

func StdoutF(format string, argv ...interface{}) {
	stdout(CustomIndent+format, argv...)
}

func StderrF(format string, argv ...interface{}) {
	stderr(CustomIndent+format, argv...)
}

func stdout(format string, argv ...interface{}) {
	if LogFile == "" {
		_, _ = fmt.Fprintf(Stdout, format, argv...)
		return
	}
	if err := appendLog(fmt.Sprintf(format, argv...)); err != nil {
		_, _ = fmt.Fprintf(Stdout, "[stdout] "+format, argv...)
	}
}

func stderr(format string, argv ...interface{}) {
	if LogFile == "" {
		_, _ = fmt.Fprintf(Stderr, format, argv...)
		return
	}
	if err := appendLog(fmt.Sprintf("ERR "+format, argv...)); err != nil {
		_, _ = fmt.Fprintf(Stderr, "[stderr] "+format, argv...)
	}
}

func appendLog(line string) (err error) {
	var fh *os.File
	if fh, err = os.OpenFile(LogFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644); err != nil {
		return
	}
	_, err = fh.WriteString(line)
	_ = fh.Close()
	return
}
