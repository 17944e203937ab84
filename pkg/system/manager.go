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

package system

import (
	"github.com/urfave/cli/v2"

	"github.com/go-enjin/style-strings/pkg/globals"
)

const (
	GeneralCategory = "general"
	ExportCategory  = "export"
)

var _manager *CommandsManager

type CommandsManager struct {
	commands []Command
}

func Manager() (m *CommandsManager) {
	if _manager == nil {
		_manager = NewManager()
	}
	m = _manager
	return
}

// NewManager returns an empty manager, separate from the process-wide one
func NewManager() (m *CommandsManager) {
	m = new(CommandsManager)
	m.commands = make([]Command, 0)
	return
}

func (m *CommandsManager) AddCommand(c Command) *CommandsManager {
	for _, known := range m.commands {
		if known.Name() == c.Name() {
			return m
		}
	}
	m.commands = append(m.commands, c)
	return m
}

func (m *CommandsManager) Commands() (commands []Command) {
	commands = append(commands, m.commands...)
	return
}

// Setup adds the global flags to app and lets every command register its
// flags, default action and subcommands
func (m *CommandsManager) Setup(app *cli.App) (err error) {
	app.HideHelpCommand = true

	app.Flags = append(
		app.Flags,
		&cli.BoolFlag{
			Name:    "verbose",
			Usage:   "report progress and a summary on stderr",
			EnvVars: []string{globals.EnvName("verbose")},
		},
		&cli.StringFlag{
			Name:    "log-file",
			Usage:   "append console output to the given file instead",
			EnvVars: []string{globals.EnvName("log-file")},
		},
		&cli.StringFlag{
			Name:   "custom-indent",
			Usage:  "prefix every line of console output",
			Hidden: true,
		},
	)

	for _, c := range m.commands {
		if err = c.Setup(app); err != nil {
			return
		}
	}

	for _, c := range m.commands {
		for _, extra := range c.ExtraCommands(app) {
			if extra.Category == "" {
				extra.Category = GeneralCategory
			}
			extra.HideHelpCommand = true
			app.Commands = append(app.Commands, extra)
		}
	}
	return
}
