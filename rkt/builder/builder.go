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

// Package builder turns the fragments recognized by the literal parser into
// AST nodes.
//
// There is one function per production. Each is handed the span of source text
// the production covered, and the raw fragments of that text: digit strings
// already split by role, signs already classified, and escape lexemes as
// written. Digit strings are expected to hold only digits of their radix.
package builder

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/toddobryan/pyracket/rkt/ast"
	"github.com/toddobryan/pyracket/rkt/escape"
	"github.com/toddobryan/pyracket/rkt/numbers"
)

// Boolean builds the literal for one of the tokens #true, #false, #t or #f.
func Boolean(span ast.Span, token string) (*ast.Boolean, error) {
	switch strings.ToLower(token) {
	case "#t", "#true":
		return &ast.Boolean{Span: span, Value: true}, nil
	case "#f", "#false":
		return &ast.Boolean{Span: span, Value: false}, nil
	}
	return nil, &ConstructionError{Span: span, Kind: InvalidToken, Cause: errors.Errorf("not a boolean: %q", token)}
}

// String builds a string literal by joining the fragments in order.
// Each fragment is either literal text or the result of Escape.
func String(span ast.Span, fragments []string) *ast.String {
	return &ast.String{Span: span, Value: strings.Join(fragments, "")}
}

// Escape decodes the escape lexeme found at span.
func Escape(span ast.Span, lexeme string) (string, error) {
	s, err := escape.Decode(lexeme)
	if err != nil {
		return "", &InvalidEscapeError{Span: span, Lexeme: lexeme, Cause: err}
	}
	return s, nil
}

// Integer builds an integer literal from its unsigned digits.
func Integer(span ast.Span, radix numbers.Radix, sign numbers.Sign, digits string) (*ast.Integer, error) {
	v, err := numbers.ParseInteger(radix, sign, digits)
	if err != nil {
		return nil, construction(span, err)
	}
	return &ast.Integer{Span: span, Value: v}, nil
}

// UnsignedRational is a numerator and denominator before the sign is applied.
type UnsignedRational struct {
	Numerator   *big.Int
	Denominator *big.Int
}

// ParseUnsignedRational parses the digits of a numerator and denominator.
// An empty denominator stands for 1, so a bare integer is also a rational.
// A zero denominator is accepted here and rejected by Rational.
func ParseUnsignedRational(radix numbers.Radix, numerator, denominator string) (UnsignedRational, error) {
	num, err := numbers.ParseInteger(radix, numbers.Positive, numerator)
	if err != nil {
		return UnsignedRational{}, err
	}
	if denominator == "" {
		return UnsignedRational{Numerator: num.Value, Denominator: big.NewInt(1)}, nil
	}
	den, err := numbers.ParseInteger(radix, numbers.Positive, denominator)
	if err != nil {
		return UnsignedRational{}, err
	}
	return UnsignedRational{Numerator: num.Value, Denominator: den.Value}, nil
}

// Rational builds a rational literal, applying sign to the numerator.
func Rational(span ast.Span, radix numbers.Radix, sign numbers.Sign, u UnsignedRational) (*ast.Rational, error) {
	q, err := numbers.NewRational(radix, sign.Apply(u.Numerator), u.Denominator)
	if err != nil {
		return nil, construction(span, err)
	}
	return &ast.Rational{Span: span, Value: q}, nil
}

// Exponent builds the value of an exponent suffix from its unsigned digits.
func Exponent(radix numbers.Radix, sign numbers.Sign, digits string) (numbers.Integer, error) {
	return numbers.ParseInteger(radix, sign, digits)
}

// FloatingPoint builds a floating point literal from the digits either side
// of the point and the optional exponent suffix. The fractional digits shift
// the exponent down by one each.
func FloatingPoint(span ast.Span, radix numbers.Radix, sign numbers.Sign, intDigits, fracDigits string, exponent *numbers.Integer) (*ast.FloatingPoint, error) {
	exp := big.NewInt(-int64(len(fracDigits)))
	if exponent != nil {
		exp.Add(exp, exponent.Value)
	}
	f, err := numbers.NewFloatingPoint(radix, sign, intDigits+fracDigits, numbers.Integer{Base: radix, Value: exp})
	if err != nil {
		return nil, construction(span, err)
	}
	return &ast.FloatingPoint{Span: span, Value: f}, nil
}

// Complex builds a complex literal. A missing real part is exact zero, and a
// missing imaginary coefficient is exact one, as in +i. The imaginary sign is
// applied to the coefficient.
func Complex(span ast.Span, radix numbers.Radix, realPart numbers.Real, imagSign numbers.Sign, coefficient numbers.Real) *ast.Complex {
	if realPart == nil {
		realPart = numbers.NewInteger(radix, 0)
	}
	if coefficient == nil {
		coefficient = numbers.NewInteger(radix, 1)
	}
	if imagSign == numbers.Negative {
		coefficient = coefficient.Negate()
	}
	return &ast.Complex{Span: span, Value: numbers.Complex{Real: realPart, Imaginary: coefficient}}
}

func construction(span ast.Span, err error) error {
	kind := InvalidDigits
	switch errors.Cause(err) {
	case numbers.ErrZeroDenominator:
		kind = ZeroDenominator
	case numbers.ErrExponentRange:
		kind = ExponentRange
	}
	return &ConstructionError{Span: span, Kind: kind, Cause: err}
}
