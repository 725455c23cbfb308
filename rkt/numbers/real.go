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

// Package numbers holds the exact numeric tower of the literal syntax.
//
// Every value remembers the radix it was written in. Values are immutable
// once built; the constructors copy the big integers they are handed.
package numbers

import (
	"math/big"

	"github.com/toddobryan/pyracket/core/fault"
)

const (
	// ErrZeroDenominator is returned when a rational is built with a zero
	// denominator.
	ErrZeroDenominator = fault.Const("zero denominator")
	// ErrDigits is returned when a digit string is empty or holds a rune that
	// is not a digit of its radix.
	ErrDigits = fault.Const("invalid digits")
	// ErrRadix is returned for a radix other than 2, 8, 10 or 16.
	ErrRadix = fault.Const("unsupported radix")
	// ErrExponentRange is returned by Dec when the exponent is too large to
	// be represented as a decimal.
	ErrExponentRange = fault.Const("exponent out of range")
)

// Real is an exact real number: one of Integer, Rational or FloatingPoint.
type Real interface {
	// Radix returns the radix the number was written in.
	Radix() Radix
	// Negate returns the number with the opposite sign.
	Negate() Real
	// String returns the number in literal syntax, with its radix prefix.
	String() string
	// body returns the number in literal syntax, without a radix prefix.
	body() string
}

var (
	_ Real = Integer{}
	_ Real = Rational{}
	_ Real = FloatingPoint{}
)

// Equal returns true if a and b are the same kind of real with equal fields.
func Equal(a, b Real) bool {
	switch a := a.(type) {
	case Integer:
		b, ok := b.(Integer)
		return ok && a.Equal(b)
	case Rational:
		b, ok := b.(Rational)
		return ok && a.Equal(b)
	case FloatingPoint:
		b, ok := b.(FloatingPoint)
		return ok && a.Equal(b)
	case nil:
		return b == nil
	}
	return false
}

// parseDigits parses a non-empty digit string in radix r.
func parseDigits(r Radix, digits string) (*big.Int, error) {
	if !r.Valid() {
		return nil, ErrRadix
	}
	if digits == "" {
		return nil, ErrDigits
	}
	for _, c := range digits {
		if !r.IsDigit(c) {
			return nil, ErrDigits
		}
	}
	out, ok := new(big.Int).SetString(digits, int(r))
	if !ok {
		return nil, ErrDigits
	}
	return out, nil
}

func bigEqual(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}
