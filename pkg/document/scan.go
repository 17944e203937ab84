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
	"fmt"
	"unicode/utf8"
)

// scan locates the single top-level value in data and returns its byte range.
// It rejects what json.Valid lets through: invalid utf-8, raw control
// characters inside strings and numbers with leading zeros. It also enforces
// maxDepth before anything recursive sees the input.
func scan(data []byte, maxDepth int) (start, end int, err error) {
	if err = checkUTF8(data); err != nil {
		return
	}

	start = skipSpace(data, 0)
	if start == len(data) {
		err = ErrEmptyDocument
		return
	}

	var depth int
	var inString, escaped bool
	end = len(data)

loop:
	for i := start; i < len(data); i++ {
		c := data[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
				if depth == 0 {
					end = i + 1
					break loop
				}
			case c < 0x20:
				err = fmt.Errorf("%w: control character 0x%02x in string at offset %d", ErrSyntax, c, i)
				return
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth += 1
			if maxDepth > 0 && depth > maxDepth {
				err = fmt.Errorf("%w: %d", ErrMaxDepth, maxDepth)
				return
			}
		case '}', ']':
			depth -= 1
			if depth < 0 {
				err = fmt.Errorf("%w: unbalanced %q at offset %d", ErrSyntax, c, i)
				return
			}
			if depth == 0 {
				end = i + 1
				break loop
			}
		case ' ', '\t', '\n', '\r':
			if depth == 0 {
				end = i
				break loop
			}
		case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			if i > start && isNumberByte(data[i-1]) {
				continue
			}
			j := i
			if data[j] == '-' {
				j += 1
			}
			if j+1 < len(data) && data[j] == '0' && isDigit(data[j+1]) {
				err = fmt.Errorf("%w: leading zero in number at offset %d", ErrSyntax, i)
				return
			}
		}
	}

	if rest := skipSpace(data, end); rest < len(data) {
		err = fmt.Errorf("%w: offset %d", ErrTrailingData, rest)
	}
	return
}

func checkUTF8(data []byte) (err error) {
	for i := 0; i < len(data); {
		if data[i] < utf8.RuneSelf {
			i += 1
			continue
		}
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return fmt.Errorf("%w: offset %d", ErrInvalidUTF8, i)
		}
		i += size
	}
	return
}

func skipSpace(data []byte, i int) int {
	for ; i < len(data); i++ {
		switch data[i] {
		case ' ', '\t', '\n', '\r':
		default:
			return i
		}
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isNumberByte(c byte) bool {
	switch c {
	case '+', '-', '.', 'e', 'E':
		return true
	}
	return isDigit(c)
}
