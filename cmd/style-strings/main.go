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

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/go-enjin/be/pkg/log"

	"github.com/go-enjin/style-strings/commands/extract"
	"github.com/go-enjin/style-strings/pkg/globals"
	"github.com/go-enjin/style-strings/pkg/io"
	"github.com/go-enjin/style-strings/pkg/system"
)

func newApp(name string, m *system.CommandsManager) (app *cli.App, err error) {
	app = &cli.App{
		Name:                   name,
		Usage:                  "extract translatable strings from JSON style documents",
		Version:                globals.DisplayVersion,
		EnableBashCompletion:   true,
		UseShortOptionHandling: true,
		Writer:                 io.Stdout,
		ErrWriter:              io.Stderr,
	}
	err = m.AddCommand(extract.New()).Setup(app)
	return
}

func main() {
	basename := io.BinName
	log.Config.AppName = basename
	log.Config.DisableTimestamp = true
	log.Config.LoggingFormat = log.FormatText
	log.Config.Apply()
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Printf("%s %s\n", basename, c.App.Version)
	}
	app, err := newApp(basename, system.Manager())
	if err == nil {
		err = app.Run(os.Args)
	}
	if err != nil {
		io.StderrF("error: %v - %v\n", os.Args, err)
		os.Exit(1)
	}
}
