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
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v2"

	"github.com/go-enjin/golang-org-x-text/language"

	"github.com/go-enjin/be/pkg/hash/sha"
	bePath "github.com/go-enjin/be/pkg/path"

	"github.com/go-enjin/style-strings/pkg/document"
	"github.com/go-enjin/style-strings/pkg/extract"
	"github.com/go-enjin/style-strings/pkg/io"
	"github.com/go-enjin/style-strings/pkg/system"
)

func (c *Command) makeGotextLocalesCommand(appNamePrefix string) *cli.Command {
	flags := append(
		optionFlags(),
		&cli.PathFlag{
			Name:  "out",
			Value: "locales",
			Usage: "locales directory path to use",
		},
		&cli.StringFlag{
			Name:  "lang",
			Value: language.English.String(),
			Usage: "comma separated list of languages to process",
		},
		&cli.StringFlag{
			Name:  "source-lang",
			Value: language.English.String(),
			Usage: "language the style documents are written in",
		},
	)
	return &cli.Command{
		Name:      "gotext-locales",
		Category:  system.ExportCategory,
		Usage:     "write out.gotext.json catalogs for style document strings",
		UsageText: appNamePrefix + " gotext-locales [options] <path> [paths...]",
		Description: `
Collects the same strings as the default action and produces one
<out>/<lang>/out.gotext.json file per language. Repeated strings become a
single message whose translator comment lists every source file.
`,
		Flags:  flags,
		Action: c._gotextLocalesAction,
	}
}

func parseLangArgv(ctx *cli.Context) (outDir string, tags []language.Tag, source language.Tag, err error) {
	if languageTags := strings.TrimSpace(ctx.String("lang")); languageTags == "" {
		err = fmt.Errorf("--lang argument requires at least one locale tag")
		return
	} else {
		for _, part := range strings.Split(languageTags, ",") {
			if t, e := language.Parse(strings.TrimSpace(part)); e != nil {
				err = fmt.Errorf("error parsing language tag: %v - %v", part, e)
				return
			} else if !tagInTags(t, tags...) {
				tags = append(tags, t)
			}
		}
	}
	if source, err = language.Parse(ctx.String("source-lang")); err != nil {
		err = fmt.Errorf("error parsing source language tag: %v - %v", ctx.String("source-lang"), err)
		return
	}
	if outDir = ctx.String("out"); outDir == "" {
		err = fmt.Errorf("--out argument requires a path value")
	}
	return
}

func tagInTags(tag language.Tag, tags ...language.Tag) (found bool) {
	for _, check := range tags {
		if found = language.Compare(tag, check); found {
			return
		}
	}
	return
}

func (c *Command) _gotextLocalesAction(ctx *cli.Context) (err error) {
	if err = c.Prepare(ctx); err != nil {
		return
	}
	if ctx.NArg() == 0 {
		_ = cli.ShowSubcommandHelp(ctx)
		err = cli.Exit("", 1)
		return
	}

	var o Options
	if o, err = optionsFromContext(ctx); err != nil {
		return
	}
	var outDir string
	var tags []language.Tag
	var source language.Tag
	if outDir, tags, source, err = parseLangArgv(ctx); err != nil {
		return
	}

	var messages *Messages
	if messages, err = GatherMessages(ctx.Args().Slice(), o); err != nil {
		return
	}
	err = WriteGotextCatalogs(outDir, tags, source, messages)
	return
}

// GatherMessages collects the translatable strings of every input, in the
// same order the default action would write them
func GatherMessages(inputs []string, o Options) (messages *Messages, err error) {
	messages = NewMessages()
	for _, arg := range inputs {
		var files []string
		if files, err = expandInput(arg, o.Recurse); err != nil {
			err = fmt.Errorf("error listing input: %v - %w", arg, err)
			return
		}
		for _, file := range files {
			var doc *document.Value
			if doc, err = document.DecodeFile(file, o.MaxDepth); err != nil {
				return
			}
			if !doc.IsObject() {
				continue
			}
			source := file
			_ = extract.Walk(doc, o.Suffix, func(_, value string) error {
				messages.Add(value, source)
				return nil
			})
		}
	}
	return
}

// WriteGotextCatalogs writes <outDir>/<tag>/out.gotext.json for each tag and
// prints the short checksum of every file written
func WriteGotextCatalogs(outDir string, tags []language.Tag, source language.Tag, messages *Messages) (err error) {
	for _, tag := range tags {
		outDirTag := outDir + "/" + tag.String()
		if !bePath.IsDir(outDirTag) {
			if err = bePath.Mkdir(outDirTag); err != nil {
				err = fmt.Errorf("error making directory: %v - %w", outDirTag, err)
				return
			}
		}

		outPath := outDirTag + "/out.gotext.json"
		outData := messages.Catalog(tag.String(), language.Compare(tag, source))

		var output []byte
		if output, err = json.MarshalIndent(outData, "", "    "); err != nil {
			err = fmt.Errorf("error encoding json: %v - %w", outPath, err)
			return
		}
		if err = os.WriteFile(outPath, output, 0664); err != nil {
			err = fmt.Errorf("error writing file: %v - %w", outPath, err)
			return
		}
		if sum, ee := sha.FileHash64(outPath); ee != nil {
			err = fmt.Errorf("error getting shasum: %v - %w", outPath, ee)
			return
		} else {
			io.StdoutF("%v %v\n", sum, outPath)
		}
	}
	return
}
