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

package extract

import (
	"strings"
)

type GotextData struct {
	Language string     `json:"language"`
	Messages []*Message `json:"messages"`
}

type Message struct {
	Id                string `json:"id"`
	Key               string `json:"key"`
	Message           string `json:"message"`
	Translation       string `json:"translation"`
	TranslatorComment string `json:"translatorComment"`
	Fuzzy             bool   `json:"fuzzy,omitempty"`
}

// Messages gathers extracted strings in first-seen order. A string found in
// more than one place is kept once, with every source listed in its
// translator comment.
type Messages struct {
	list    []*Message
	lookup  map[string]*Message
	sources map[string][]string
}

func NewMessages() (m *Messages) {
	m = &Messages{
		lookup:  make(map[string]*Message),
		sources: make(map[string][]string),
	}
	return
}

func (m *Messages) Add(value, source string) {
	msg, found := m.lookup[value]
	if !found {
		msg = &Message{
			Id:      value,
			Key:     value,
			Message: value,
		}
		m.lookup[value] = msg
		m.list = append(m.list, msg)
	}
	for _, known := range m.sources[value] {
		if known == source {
			return
		}
	}
	m.sources[value] = append(m.sources[value], source)
	from := make([]string, len(m.sources[value]))
	for idx, src := range m.sources[value] {
		from[idx] = "[from: " + src + "]"
	}
	msg.TranslatorComment = strings.Join(from, "\n")
}

func (m *Messages) Len() int {
	return len(m.list)
}

// Catalog returns the gotext data for one language. The source language
// catalog carries each message as its own translation.
func (m *Messages) Catalog(language string, source bool) (data GotextData) {
	data.Language = language
	data.Messages = make([]*Message, len(m.list))
	for idx, msg := range m.list {
		clone := *msg
		if source {
			clone.Translation = clone.Message
		}
		data.Messages[idx] = &clone
	}
	return
}
