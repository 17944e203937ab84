// Copyright (c) 2024  The Go-Enjin Authors
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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) (out, err *bytes.Buffer) {
	t.Helper()
	out, err = new(bytes.Buffer), new(bytes.Buffer)
	prevOut, prevErr, prevVerbose, prevLog := Stdout, Stderr, Verbose, LogFile
	Stdout, Stderr = out, err
	t.Cleanup(func() {
		Stdout, Stderr, Verbose, LogFile = prevOut, prevErr, prevVerbose, prevLog
	})
	return
}

func TestNotifyF(t *testing.T) {
	_, stderr := capture(t)

	Verbose = false
	NotifyF("extract", "quiet %d", 1)
	assert.Empty(t, stderr.String())

	Verbose = true
	NotifyF("extract", "  wrote %d%% of %v  ", 100, "out.txt")
	assert.Equal(t, "# extract: wrote 100% of out.txt\n", stderr.String())
}

func TestStdoutAndLogFile(t *testing.T) {
	stdout, _ := capture(t)

	StdoutF("%v %v\n", "sum", "path")
	assert.Equal(t, "sum path\n", stdout.String())

	LogFile = filepath.Join(t.TempDir(), "console.log")
	StdoutF("logged\n")
	StderrF("failed\n")
	data, err := os.ReadFile(LogFile)
	require.NoError(t, err)
	assert.Equal(t, "logged\nERR failed\n", string(data))
	assert.Equal(t, "sum path\n", stdout.String())
}
