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

// Package document provides an order-preserving model of decoded JSON values.
//
// Objects keep their members in the order they were written in the source
// text, which makes traversal output stable and reproducible across runs.
package document

import (
	"fmt"
)

// Kind identifies which variant of a Value is populated
type Kind uint8

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() (name string) {
	switch k {
	case Null:
		name = "null"
	case Bool:
		name = "bool"
	case Number:
		name = "number"
	case String:
		name = "string"
	case Array:
		name = "array"
	case Object:
		name = "object"
	default:
		name = fmt.Sprintf("kind(%d)", uint8(k))
	}
	return
}

// Member is one key/value entry of an Object
type Member struct {
	Key   string
	Value *Value
}

// Value is a tagged variant over the six JSON value kinds. The zero Value is
// a JSON null.
type Value struct {
	kind    Kind
	boolean bool
	text    string
	items   []*Value
	members []Member
	index   map[string]int
}

func NewNull() (v *Value) {
	v = &Value{kind: Null}
	return
}

func NewBool(b bool) (v *Value) {
	v = &Value{kind: Bool, boolean: b}
	return
}

// NewNumber wraps a JSON number literal, kept verbatim
func NewNumber(literal string) (v *Value) {
	v = &Value{kind: Number, text: literal}
	return
}

func NewString(s string) (v *Value) {
	v = &Value{kind: String, text: s}
	return
}

func NewArray(items ...*Value) (v *Value) {
	v = &Value{kind: Array, items: items}
	return
}

// NewObject builds an Object from the given members, in order. Repeated keys
// are merged as described by Set.
func NewObject(members ...Member) (v *Value) {
	v = &Value{kind: Object, index: make(map[string]int)}
	for _, m := range members {
		v.Set(m.Key, m.Value)
	}
	return
}

func (v *Value) Kind() (kind Kind) {
	if v == nil {
		return Null
	}
	return v.kind
}

func (v *Value) IsNull() bool   { return v.Kind() == Null }
func (v *Value) IsString() bool { return v.Kind() == String }
func (v *Value) IsArray() bool  { return v.Kind() == Array }
func (v *Value) IsObject() bool { return v.Kind() == Object }

// Str returns the string content and true when v is a String
func (v *Value) Str() (s string, ok bool) {
	if ok = v.Kind() == String; ok {
		s = v.text
	}
	return
}

// Bool returns the boolean content and true when v is a Bool
func (v *Value) Bool() (b bool, ok bool) {
	if ok = v.Kind() == Bool; ok {
		b = v.boolean
	}
	return
}

// Number returns the number literal and true when v is a Number
func (v *Value) Number() (literal string, ok bool) {
	if ok = v.Kind() == Number; ok {
		literal = v.text
	}
	return
}

// Items returns the elements of an Array, nil for any other kind
func (v *Value) Items() (items []*Value) {
	if v.Kind() == Array {
		items = v.items
	}
	return
}

// Members returns the entries of an Object in document order, nil for any
// other kind
func (v *Value) Members() (members []Member) {
	if v.Kind() == Object {
		members = v.members
	}
	return
}

// Len is the number of array items or object members
func (v *Value) Len() (count int) {
	switch v.Kind() {
	case Array:
		count = len(v.items)
	case Object:
		count = len(v.members)
	}
	return
}

// Get looks up an object member by key
func (v *Value) Get(key string) (value *Value, ok bool) {
	if v.Kind() != Object {
		return
	}
	var idx int
	if idx, ok = v.index[key]; ok {
		value = v.members[idx].Value
	}
	return
}

// Append adds an item to an Array
func (v *Value) Append(item *Value) {
	if v.Kind() != Array {
		panic(fmt.Errorf("document: Append called on %v", v.Kind()))
	}
	v.items = append(v.items, item)
}

// Set adds or replaces an object member. A key that is already present keeps
// its original position and takes the new value.
func (v *Value) Set(key string, value *Value) {
	if v.Kind() != Object {
		panic(fmt.Errorf("document: Set called on %v", v.Kind()))
	}
	if value == nil {
		value = NewNull()
	}
	if v.index == nil {
		v.index = make(map[string]int)
	}
	if idx, present := v.index[key]; present {
		v.members[idx].Value = value
		return
	}
	v.index[key] = len(v.members)
	v.members = append(v.members, Member{Key: key, Value: value})
}
