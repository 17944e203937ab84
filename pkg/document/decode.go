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

package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/goccy/go-json"
)

// DefaultMaxDepth is the nesting limit applied by Decode and DecodeFile
const DefaultMaxDepth = 10000

var (
	ErrEmptyDocument   = errors.New("empty document")
	ErrTrailingData    = errors.New("unexpected data after top-level value")
	ErrMaxDepth        = errors.New("maximum nesting depth exceeded")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrSyntax          = errors.New("invalid json syntax")
	ErrInvalidUTF8     = errors.New("invalid utf-8 encoding")
)

// Decoder reads a single JSON document. The input is read completely and
// checked against the strict JSON grammar before any Value is built
type Decoder struct {
	// MaxDepth limits how deeply arrays and objects may nest, zero disables
	// the limit
	MaxDepth int

	r   io.Reader
	dec *json.Decoder
}

func NewDecoder(r io.Reader) (d *Decoder) {
	d = &Decoder{
		MaxDepth: DefaultMaxDepth,
		r:        r,
	}
	return
}

// Decode reads exactly one top-level JSON value; anything other than
// whitespace following it is ErrTrailingData
func (d *Decoder) Decode() (v *Value, err error) {
	var data []byte
	if data, err = io.ReadAll(d.r); err != nil {
		return
	}
	var start, end int
	if start, end, err = scan(data, d.MaxDepth); err != nil {
		return
	}
	if !json.Valid(data[start:end]) {
		err = ErrSyntax
		return
	}

	d.dec = json.NewDecoder(bytes.NewReader(data[start:end]))
	d.dec.UseNumber()
	var tok json.Token
	if tok, err = d.dec.Token(); err != nil {
		return
	}
	v, err = d.fromToken(tok)
	return
}

func (d *Decoder) fromToken(tok json.Token) (v *Value, err error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			v, err = d.object()
		case '[':
			v, err = d.array()
		default:
			err = fmt.Errorf("%w: %v", ErrUnexpectedToken, t)
		}
	case string:
		v = NewString(t)
	case json.Number:
		v = NewNumber(t.String())
	case float64:
		v = NewNumber(strconv.FormatFloat(t, 'g', -1, 64))
	case bool:
		v = NewBool(t)
	case nil:
		v = NewNull()
	default:
		err = fmt.Errorf("%w: %T", ErrUnexpectedToken, tok)
	}
	return
}

func (d *Decoder) array() (v *Value, err error) {
	v = NewArray()
	for {
		var tok json.Token
		if tok, err = d.dec.Token(); err != nil {
			return nil, eofIsUnexpected(err)
		}
		if delim, ok := tok.(json.Delim); ok && delim == ']' {
			return
		}
		var item *Value
		if item, err = d.fromToken(tok); err != nil {
			return nil, err
		}
		v.Append(item)
	}
}

func (d *Decoder) object() (v *Value, err error) {
	v = NewObject()
	for {
		var tok json.Token
		if tok, err = d.dec.Token(); err != nil {
			return nil, eofIsUnexpected(err)
		}
		if delim, ok := tok.(json.Delim); ok && delim == '}' {
			return
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key %v", ErrUnexpectedToken, tok)
		}
		if tok, err = d.dec.Token(); err != nil {
			return nil, eofIsUnexpected(err)
		}
		var member *Value
		if member, err = d.fromToken(tok); err != nil {
			return nil, err
		}
		v.Set(key, member)
	}
}

func eofIsUnexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// Decode reads one document from r using DefaultMaxDepth
func Decode(r io.Reader) (v *Value, err error) {
	v, err = NewDecoder(r).Decode()
	return
}

// DecodeFile opens, decodes and closes the file at path
func DecodeFile(path string, maxDepth int) (v *Value, err error) {
	var fh *os.File
	if fh, err = os.Open(path); err != nil {
		err = fmt.Errorf("error opening json: %v - %w", path, err)
		return
	}
	defer func() { _ = fh.Close() }()
	d := NewDecoder(fh)
	d.MaxDepth = maxDepth
	if v, err = d.Decode(); err != nil {
		err = fmt.Errorf("error decoding json: %v - %w", path, err)
	}
	return
}
