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

	"github.com/go-enjin/style-strings/pkg/io"
)

var _ Command = (*CCommand)(nil)

type Command interface {
	Init(this interface{})
	Name() (name string)
	This() (self Command)
	Setup(app *cli.App) (err error)
	Prepare(ctx *cli.Context) (err error)
	ExtraCommands(app *cli.App) (commands []*cli.Command)
}

type CCommand struct {
	_this interface{}

	TagName string

	App *cli.App
}

func (c *CCommand) Init(this interface{}) {
	c._this = this
}

func (c *CCommand) Name() (name string) {
	name = c.TagName
	return
}

func (c *CCommand) This() (self Command) {
	if v, ok := c._this.(Command); ok {
		self = v
		return
	}
	self = c
	return
}

func (c *CCommand) Setup(app *cli.App) (err error) {
	c.App = app
	return
}

// Prepare applies the global output flags, every action calls it first
func (c *CCommand) Prepare(ctx *cli.Context) (err error) {
	if err = io.SetupCustomIndent(ctx); err != nil {
		return
	}
	err = io.SetupVerbose(ctx)
	return
}

func (c *CCommand) ExtraCommands(app *cli.App) (commands []*cli.Command) {
	return
}
