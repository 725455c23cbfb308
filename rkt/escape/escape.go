// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package escape decodes the escape sequences of string literals.
package escape

import (
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/toddobryan/pyracket/core/fault"
)

// ErrInvalid is the cause of every error returned by Decode.
const ErrInvalid = fault.Const("invalid escape sequence")

var table = map[byte]rune{
	'a':  0x07,
	'b':  0x08,
	'e':  0x1B,
	'f':  0x0C,
	'n':  0x0A,
	'r':  0x0D,
	't':  0x09,
	'v':  0x0B,
	'"':  '"',
	'\'': '\'',
	'\\': '\\',
}

// Decode returns the text denoted by a single escape lexeme, such as `\n`,
// `\101`, `\x41`, `\u0041`, `\uD83D\uDE00` or `\U1F600`.
//
// A \u lexeme that carries a second \u group must hold a high surrogate
// followed by a low surrogate, and decodes to the single code point the pair
// encodes.
func Decode(lexeme string) (string, error) {
	if len(lexeme) < 2 || lexeme[0] != '\\' {
		return "", invalid(lexeme)
	}
	c, rest := lexeme[1], lexeme[2:]
	if r, ok := table[c]; ok && rest == "" {
		return string(r), nil
	}
	switch {
	case '0' <= c && c <= '7':
		return code(lexeme, lexeme[1:], 8, 3)
	case c == 'x':
		return code(lexeme, rest, 16, 0)
	case c == 'u':
		if len(rest) > 4 && rest[4] == '\\' {
			return pair(lexeme, rest[:4], rest[4:])
		}
		return code(lexeme, rest, 16, 4)
	case c == 'U':
		return code(lexeme, rest, 16, 0)
	}
	return "", invalid(lexeme)
}

// code decodes digits as a single code point in base. When limit is non-zero
// it is the maximum number of digits allowed.
func code(lexeme, digits string, base, limit int) (string, error) {
	if digits == "" || (limit > 0 && len(digits) > limit) {
		return "", invalid(lexeme)
	}
	v, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return "", invalid(lexeme)
	}
	r := rune(v)
	if !utf8.ValidRune(r) {
		return "", invalid(lexeme)
	}
	return string(r), nil
}

func pair(lexeme, high, low string) (string, error) {
	if len(low) != 6 || low[:2] != `\u` {
		return "", invalid(lexeme)
	}
	hi, err := strconv.ParseUint(high, 16, 16)
	if err != nil {
		return "", invalid(lexeme)
	}
	lo, err := strconv.ParseUint(low[2:], 16, 16)
	if err != nil {
		return "", invalid(lexeme)
	}
	if hi < 0xD800 || hi > 0xDBFF || lo < 0xDC00 || lo > 0xDFFF {
		return "", invalid(lexeme)
	}
	return string(utf16.DecodeRune(rune(hi), rune(lo))), nil
}

func invalid(lexeme string) error {
	return errors.Wrapf(ErrInvalid, "%s", lexeme)
}
