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

package numbers

import (
	"fmt"
	"strings"
	"unicode"
)

// Radix is the base a numeric literal is written in.
type Radix int

const (
	Binary      Radix = 2
	Octal       Radix = 8
	Decimal     Radix = 10
	Hexadecimal Radix = 16
)

// Radixes lists the supported radixes in ascending order.
var Radixes = []Radix{Binary, Octal, Decimal, Hexadecimal}

// RadixOf returns the radix selected by the prefix letter c, as in #b, #o, #d
// and #x.
func RadixOf(c rune) (Radix, bool) {
	switch unicode.ToLower(c) {
	case 'b':
		return Binary, true
	case 'o':
		return Octal, true
	case 'd':
		return Decimal, true
	case 'x':
		return Hexadecimal, true
	}
	return 0, false
}

// Valid returns true if r is one of the supported radixes.
func (r Radix) Valid() bool {
	switch r {
	case Binary, Octal, Decimal, Hexadecimal:
		return true
	}
	return false
}

// Alphabet returns the lower case digits of the radix.
func (r Radix) Alphabet() string {
	const all = "0123456789abcdef"
	if !r.Valid() {
		return ""
	}
	return all[:r]
}

// IsDigit returns true if c is a digit of the radix, in either case.
func (r Radix) IsDigit(c rune) bool {
	return c < unicode.MaxASCII && strings.ContainsRune(r.Alphabet(), unicode.ToLower(c))
}

// ExponentMarkers returns the letters that introduce an exponent in the
// radix. Hexadecimal numbers cannot use the markers that are also digits.
func (r Radix) ExponentMarkers() string {
	if r == Hexadecimal {
		return "slSL"
	}
	return "edfslEDFSL"
}

// IsExponentMarker returns true if c introduces an exponent in the radix.
func (r Radix) IsExponentMarker(c rune) bool {
	return strings.ContainsRune(r.ExponentMarkers(), c)
}

// Prefix returns the radix prefix used when printing a number, which is empty
// for decimal.
func (r Radix) Prefix() string {
	switch r {
	case Binary:
		return "#b"
	case Octal:
		return "#o"
	case Hexadecimal:
		return "#x"
	}
	return ""
}

// log2 returns the number of bits in one digit of a power of two radix, or 0
// for decimal.
func (r Radix) log2() uint {
	switch r {
	case Binary:
		return 1
	case Octal:
		return 3
	case Hexadecimal:
		return 4
	}
	return 0
}

func (r Radix) String() string {
	switch r {
	case Binary:
		return "binary"
	case Octal:
		return "octal"
	case Decimal:
		return "decimal"
	case Hexadecimal:
		return "hexadecimal"
	}
	return fmt.Sprintf("Radix(%d)", int(r))
}
