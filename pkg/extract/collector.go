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
	"io"
	"strings"

	"github.com/go-enjin/style-strings/pkg/document"
)

const (
	DefaultSuffix = ".i18n"
	DefaultMarker = "ic_gettext"
)

var cEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

type Config struct {
	Suffix string
	Marker string
	Escape bool
}

// Collector writes one marker call per translatable string:
//
//	ic_gettext("<value>");
//
// Values are written verbatim unless Escape is set, in which case quotes,
// backslashes and control whitespace are C-escaped.
type Collector struct {
	Config

	w       io.Writer
	count   int
	written int64
}

// New returns a Collector writing to w, empty Suffix and Marker fields take
// their Default values
func New(w io.Writer, cfg Config) (c *Collector) {
	if cfg.Suffix == "" {
		cfg.Suffix = DefaultSuffix
	}
	if cfg.Marker == "" {
		cfg.Marker = DefaultMarker
	}
	c = &Collector{
		Config: cfg,
		w:      w,
	}
	return
}

// Line renders the output record for value, including the trailing newline
func (c *Collector) Line(value string) (line string) {
	if c.Escape {
		value = cEscaper.Replace(value)
	}
	line = c.Marker + `("` + value + `");` + "\n"
	return
}

// Collect writes a line for every translatable string in doc. The only
// possible error comes from the underlying writer.
func (c *Collector) Collect(doc *document.Value) (err error) {
	err = Walk(doc, c.Suffix, func(_, value string) (err error) {
		var n int
		n, err = io.WriteString(c.w, c.Line(value))
		c.written += int64(n)
		if err == nil {
			c.count += 1
		}
		return
	})
	return
}

// Count is the number of lines written so far
func (c *Collector) Count() int {
	return c.count
}

// Written is the number of bytes written so far
func (c *Collector) Written() int64 {
	return c.written
}
