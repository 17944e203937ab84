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
	"bufio"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"github.com/go-enjin/be/pkg/log"

	"github.com/go-enjin/style-strings/pkg/document"
	"github.com/go-enjin/style-strings/pkg/extract"
	"github.com/go-enjin/style-strings/pkg/globals"
	"github.com/go-enjin/style-strings/pkg/io"
	"github.com/go-enjin/style-strings/pkg/profiling"
	"github.com/go-enjin/style-strings/pkg/system"
)

const (
	Name = "extract"
)

type Command struct {
	system.CCommand
}

func New() (c *Command) {
	c = new(Command)
	c.Init(c)
	return
}

func (c *Command) Init(this interface{}) {
	c.CCommand.Init(this)
	c.TagName = Name
}

func optionFlags() (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.PathFlag{
			Name:    "config",
			Usage:   "read default option values from the given TOML file",
			Aliases: []string{"c"},
			EnvVars: []string{globals.EnvName("config")},
		},
		&cli.StringFlag{
			Name:    "suffix",
			Usage:   "object key suffix marking translatable strings",
			Value:   extract.DefaultSuffix,
			EnvVars: []string{globals.EnvName("suffix")},
		},
		&cli.IntFlag{
			Name:    "max-depth",
			Usage:   "maximum JSON nesting depth, 0 for no limit",
			Value:   document.DefaultMaxDepth,
			EnvVars: []string{globals.EnvName("max-depth")},
		},
		&cli.BoolFlag{
			Name:    "recurse",
			Usage:   "read every *.json file beneath directory arguments",
			Aliases: []string{"r"},
		},
	}
	return
}

// Setup installs the extraction as the application's default action
func (c *Command) Setup(app *cli.App) (err error) {
	if err = c.CCommand.Setup(app); err != nil {
		return
	}
	app.ArgsUsage = "<output-path> [<input-path> ...]"
	app.UsageText = app.Name + " [options] " + app.ArgsUsage
	app.Description = `
Scans JSON style documents for object keys ending with the marker suffix
(".i18n" by default) and writes one marker call per string value found:

    ic_gettext("<value>");

Strings are written in document order, files in argument order, with no
deduplication. Only documents with an object at the top level are scanned.
`
	app.Flags = append(app.Flags, optionFlags()...)
	app.Flags = append(
		app.Flags,
		&cli.StringFlag{
			Name:    "marker",
			Usage:   "function name written around each string",
			Value:   extract.DefaultMarker,
			EnvVars: []string{globals.EnvName("marker")},
		},
		&cli.BoolFlag{
			Name:    "escape",
			Usage:   "C-escape quotes, backslashes and control whitespace in values",
			EnvVars: []string{globals.EnvName("escape")},
		},
	)
	app.Action = c.action
	return
}

func (c *Command) ExtraCommands(app *cli.App) (commands []*cli.Command) {
	commands = append(
		commands,
		c.makeGotextLocalesCommand(app.Name),
	)
	return
}

func (c *Command) action(ctx *cli.Context) (err error) {
	if err = c.Prepare(ctx); err != nil {
		return
	}
	if ctx.NArg() == 0 {
		_ = cli.ShowAppHelp(ctx)
		err = cli.Exit("", 1)
		return
	}

	var o Options
	if o, err = optionsFromContext(ctx); err != nil {
		return
	}

	profiler := profiling.FromEnv().Start()
	defer profiler.Stop()

	argv := ctx.Args().Slice()
	err = c.Run(argv[0], argv[1:], o)
	return
}

// Run writes the marker lines for every input to outPath. The output file is
// created or truncated before any input is read and keeps whatever was
// written when an input fails.
func (c *Command) Run(outPath string, inputs []string, o Options) (err error) {
	var fh *os.File
	if fh, err = os.OpenFile(outPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0664); err != nil {
		err = fmt.Errorf("error opening output: %v - %w", outPath, err)
		return
	}
	out := bufio.NewWriter(fh)
	defer func() {
		if ee := out.Flush(); ee != nil && err == nil {
			err = fmt.Errorf("error writing output: %v - %w", outPath, ee)
		}
		if ee := fh.Close(); ee != nil && err == nil {
			err = fmt.Errorf("error closing output: %v - %w", outPath, ee)
		}
	}()

	collector := extract.New(out, o.Collector())
	for _, arg := range inputs {
		var files []string
		if files, err = expandInput(arg, o.Recurse); err != nil {
			err = fmt.Errorf("error listing input: %v - %w", arg, err)
			return
		}
		for _, file := range files {
			if err = c.collectFile(collector, file, o.MaxDepth); err != nil {
				return
			}
		}
	}

	io.NotifyF(Name, "wrote %d strings (%v) to %v", collector.Count(), humanize.Bytes(uint64(collector.Written())), outPath)
	return
}

func (c *Command) collectFile(collector *extract.Collector, path string, maxDepth int) (err error) {
	var doc *document.Value
	if doc, err = document.DecodeFile(path, maxDepth); err != nil {
		return
	}
	if !doc.IsObject() {
		log.DebugF("skipping %v: top-level %v is not an object", path, doc.Kind())
		io.NotifyF(Name, "%v: skipped, top-level %v", path, doc.Kind())
		return
	}
	before := collector.Count()
	if err = collector.Collect(doc); err != nil {
		err = fmt.Errorf("error writing output: %w", err)
		return
	}
	io.NotifyF(Name, "%v: %d strings", path, collector.Count()-before)
	return
}
