// Copyright (c) 2023  The Go-Enjin Authors
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

// Package profiling starts an optional pprof profile for a single run,
// controlled by STYLE_STRINGS_ENABLE_PROFILING, STYLE_STRINGS_PROFILING_TYPE
// and STYLE_STRINGS_PROFILING_PATH.
package profiling

import (
	"strings"

	"github.com/pkg/profile"

	"github.com/go-enjin/be/pkg/cli/env"
	bePath "github.com/go-enjin/be/pkg/path"
	beStrings "github.com/go-enjin/be/pkg/strings"

	"github.com/go-enjin/style-strings/pkg/globals"
)

var (
	EnvNameEnabled     = globals.EnvName("enable-profiling")
	EnvNameProfileType = globals.EnvName("profiling-type")
	EnvNameProfilePath = globals.EnvName("profiling-path")
)

type Settings struct {
	Enabled bool
	Type    string
	Path    string
}

// FromEnv reads the profiling settings, unknown profile types fall back to cpu
func FromEnv() (s Settings) {
	s = Settings{
		Enabled: beStrings.IsTrue(env.Get(EnvNameEnabled, "false")),
		Type:    strings.ToLower(env.Get(EnvNameProfileType, "cpu")),
		Path:    env.Get(EnvNameProfilePath, "./out.pprof"),
	}
	switch s.Type {
	case "cpu", "mem", "go":
	default:
		s.Type = "cpu"
	}
	if abs, err := bePath.Abs(s.Path); err == nil {
		s.Path = abs
	}
	return
}

func (s Settings) mode() (mode func(*profile.Profile)) {
	switch s.Type {
	case "mem":
		mode = profile.MemProfile
	case "go":
		mode = profile.GoroutineProfile
	default:
		mode = profile.CPUProfile
	}
	return
}

type Stopper interface {
	Stop()
}

type noop struct{}

func (noop) Stop() {}

// Start begins profiling when enabled and always returns something to Stop
func (s Settings) Start() (stopper Stopper) {
	if !s.Enabled {
		return noop{}
	}
	stopper = profile.Start(
		s.mode(),
		profile.Quiet,
		profile.NoShutdownHook,
		profile.ProfilePath(s.Path),
	)
	return
}
