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

// Package extract finds translatable strings in style documents.
//
// A translatable string is any string value stored under an object key ending
// with a marker suffix, ".i18n" by default. Walk reports them in depth-first
// document order and Collector renders each one as a gettext marker call.
package extract

import (
	"strings"

	"github.com/go-enjin/style-strings/pkg/document"
)

// VisitFunc receives the marker key and its string value. Returning an error
// stops the walk.
type VisitFunc func(key, value string) (err error)

type frame struct {
	value *document.Value
	key   string
	emit  bool
}

// Walk visits doc depth-first. Array items are visited in index order and
// object members in document order. A member is reported when its key ends
// with suffix and its value is a string; every other member value is
// descended into, including marker keys holding arrays or objects.
//
// The traversal keeps its own stack so document nesting never grows the
// goroutine stack.
func Walk(doc *document.Value, suffix string, fn VisitFunc) (err error) {
	stack := []frame{{value: doc}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.emit {
			value, _ := f.value.Str()
			if err = fn(f.key, value); err != nil {
				return
			}
			continue
		}

		switch f.value.Kind() {
		case document.Array:
			items := f.value.Items()
			for idx := len(items) - 1; idx >= 0; idx-- {
				stack = append(stack, frame{value: items[idx]})
			}
		case document.Object:
			members := f.value.Members()
			for idx := len(members) - 1; idx >= 0; idx-- {
				m := members[idx]
				stack = append(stack, frame{
					value: m.Value,
					key:   m.Key,
					emit:  m.Value.IsString() && strings.HasSuffix(m.Key, suffix),
				})
			}
		}
	}
	return
}
