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

package extract

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/urfave/cli/v2"

	bePath "github.com/go-enjin/be/pkg/path"

	"github.com/go-enjin/style-strings/pkg/document"
	"github.com/go-enjin/style-strings/pkg/extract"
)

// Options are the settings shared by the extraction actions, loaded from an
// optional TOML file and then overridden by command line flags
type Options struct {
	Suffix   string `toml:"suffix"`
	Marker   string `toml:"marker"`
	Escape   bool   `toml:"escape"`
	MaxDepth int    `toml:"max-depth"`
	Recurse  bool   `toml:"recurse"`
}

func DefaultOptions() (o Options) {
	o = Options{
		Suffix:   extract.DefaultSuffix,
		Marker:   extract.DefaultMarker,
		MaxDepth: document.DefaultMaxDepth,
	}
	return
}

// LoadOptions decodes path over the defaults, keys missing from the file keep
// their default values
func LoadOptions(path string) (o Options, err error) {
	o = DefaultOptions()
	if path == "" {
		return
	} else if !bePath.IsFile(path) {
		err = fmt.Errorf("not a file: %v", path)
		return
	}
	var md toml.MetaData
	if md, err = toml.DecodeFile(path, &o); err != nil {
		err = fmt.Errorf("error decoding config: %v - %w", path, err)
		return
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		err = fmt.Errorf("unknown config keys: %v - %v", path, undecoded)
		return
	}
	err = o.validate()
	return
}

func (o Options) validate() (err error) {
	if o.Suffix == "" {
		err = fmt.Errorf("suffix must not be empty")
	} else if o.Marker == "" {
		err = fmt.Errorf("marker must not be empty")
	} else if o.MaxDepth < 0 {
		err = fmt.Errorf("max-depth must not be negative: %d", o.MaxDepth)
	}
	return
}

// Collector returns the line rendering settings
func (o Options) Collector() (cfg extract.Config) {
	cfg = extract.Config{
		Suffix: o.Suffix,
		Marker: o.Marker,
		Escape: o.Escape,
	}
	return
}

// optionsFromContext loads --config and applies any flags that were set
// explicitly, flags absent from the running command are ignored
func optionsFromContext(ctx *cli.Context) (o Options, err error) {
	if o, err = LoadOptions(ctx.String("config")); err != nil {
		return
	}
	if ctx.IsSet("suffix") {
		o.Suffix = ctx.String("suffix")
	}
	if ctx.IsSet("marker") {
		o.Marker = ctx.String("marker")
	}
	if ctx.IsSet("escape") {
		o.Escape = ctx.Bool("escape")
	}
	if ctx.IsSet("max-depth") {
		o.MaxDepth = ctx.Int("max-depth")
	}
	if ctx.IsSet("recurse") {
		o.Recurse = ctx.Bool("recurse")
	}
	err = o.validate()
	return
}
