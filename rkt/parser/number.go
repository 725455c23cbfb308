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

package parser

import (
	"github.com/toddobryan/pyracket/core/text/parse/cst"
	"github.com/toddobryan/pyracket/rkt/ast"
	"github.com/toddobryan/pyracket/rkt/builder"
	"github.com/toddobryan/pyracket/rkt/numbers"
)

// shape is the syntactic form of a number, before it is built.
type shape int

const (
	integerShape shape = iota
	rationalShape
	floatingShape
	complexShape
)

func (s shape) String() string {
	switch s {
	case integerShape:
		return "integer"
	case rationalShape:
		return "rational"
	case floatingShape:
		return "floating point"
	default:
		return "complex"
	}
}

// exponent is the suffix of a floating point number.
type exponent struct {
	sign   numbers.Sign
	digits string
}

// ureal is an unsigned real, as digit strings split by role.
type ureal struct {
	intDigits   string
	fracDigits  string
	denominator string
	ratio       bool
	point       bool
	exponent    *exponent
}

func (u *ureal) shape() shape {
	switch {
	case u.ratio:
		return rationalShape
	case u.point || u.exponent != nil:
		return floatingShape
	}
	return integerShape
}

// part is a signed real. A nil value is the missing coefficient of +i or -i.
type part struct {
	branch *cst.Branch
	sign   numbers.Sign
	signed bool
	value  *ureal
}

func (r part) shape() shape {
	if r.value == nil {
		return integerShape
	}
	return r.value.shape()
}

// number is a parsed number body. A complex number has an imaginary part, and
// a real part only if one was written.
type number struct {
	real      *part
	imaginary *part
}

func (n number) shape() shape {
	if n.imaginary != nil {
		return complexShape
	}
	return n.real.shape()
}

// prefix* body
func (p *parser) requireNumber(root *cst.Branch, kind Kind) ast.Node {
	var out ast.Node
	p.ParseBranch(root, func(b *cst.Branch) {
		radix := p.prefixes(b)
		n := p.body(b, radix)
		if !p.isDelimiter(0) {
			p.fail("Expected end of number got %q", string(p.Peek()))
		}
		if !accepts(kind, n.shape()) {
			p.ErrorAt(b, "Expected %v got %v", kind, n.shape())
			p.Abort()
		}
		out = p.buildNumber(span(b), radix, n, kind)
		p.mappings.Add(out, b)
	})
	return out
}

func accepts(kind Kind, s shape) bool {
	switch kind {
	case ExactInteger:
		return s == integerShape
	case ExactRational:
		return s == integerShape || s == rationalShape
	case ExactFloatingPoint:
		return s == floatingShape
	case ExactComplex:
		return s == complexShape
	}
	return true
}

// prefixes reads the radix and exactness prefixes, in any order, and returns
// the radix they select.
func (p *parser) prefixes(b *cst.Branch) numbers.Radix {
	var radix numbers.Radix
	exact := false
	for p.Peek() == '#' {
		start := p.cursor()
		c := p.PeekAt(1)
		r, isRadix := numbers.RadixOf(c)
		switch {
		case isRadix && radix != 0:
			p.failAt(start, start+2, "Duplicate radix prefix #%c", c)
		case isRadix:
			radix = r
		case c == 'e' || c == 'E':
			if exact {
				p.failAt(start, start+2, "Duplicate exactness prefix #%c", c)
			}
			exact = true
		case c == 'i' || c == 'I':
			p.failAt(start, start+2, "Inexact numbers are not supported")
		default:
			p.Advance()
			p.expected("number prefix")
		}
		p.Advance()
		p.Advance()
		p.ParseLeaf(b, nil)
	}
	if radix == 0 {
		radix = numbers.Decimal
	}
	return radix
}

func isImaginaryUnit(c rune) bool { return c == 'i' || c == 'I' }

func isSign(c rune) bool { return c == '+' || c == '-' }

// real | [real] sign [ureal] 'i'
func (p *parser) body(b *cst.Branch, radix numbers.Radix) number {
	first := p.part(b, radix)
	switch {
	case isImaginaryUnit(p.Peek()):
		if !first.signed {
			p.fail("Expected sign before imaginary part")
		}
		p.unit(b)
		return number{imaginary: &first}
	case isSign(p.Peek()):
		second := p.part(b, radix)
		if !isImaginaryUnit(p.Peek()) {
			p.expected("'i'")
		}
		p.unit(b)
		return number{real: &first, imaginary: &second}
	}
	return number{real: &first}
}

func (p *parser) unit(b *cst.Branch) {
	p.Advance()
	p.ParseLeaf(b, nil)
}

// [sign] ureal, where a sign directly before a final 'i' stands alone.
func (p *parser) part(b *cst.Branch, radix numbers.Radix) part {
	out := part{}
	out.branch = p.ParseBranch(b, func(b *cst.Branch) {
		if c := p.Peek(); p.OneOf("+-") {
			p.ParseLeaf(b, nil)
			out.sign, out.signed = numbers.SignFor(c), true
			if isImaginaryUnit(p.Peek()) && p.isDelimiter(1) {
				return
			}
		}
		out.value = p.ureal(b, radix)
	})
	return out
}

// digits ['/' digits] | [digits] '.' [digits] [exp] | digits exp
func (p *parser) ureal(b *cst.Branch, radix numbers.Radix) *ureal {
	out := &ureal{}
	out.intDigits = p.digits(b, radix)
	switch {
	case out.intDigits != "" && p.Peek() == '/':
		p.Advance()
		p.ParseLeaf(b, nil)
		out.ratio = true
		if out.denominator = p.digits(b, radix); out.denominator == "" {
			p.expected(radix.String() + " digit")
		}
		return out
	case p.Peek() == '.':
		p.Advance()
		p.ParseLeaf(b, nil)
		out.point = true
		out.fracDigits = p.digits(b, radix)
		if out.intDigits == "" && out.fracDigits == "" {
			p.expected(radix.String() + " digit")
		}
	case out.intDigits == "":
		p.expected(radix.String() + " digit")
	}
	if p.isExponent(radix) {
		out.exponent = p.exponent(b, radix)
	}
	return out
}

// digits reads a run of digits of the radix as a leaf, returning "" if there
// are none.
func (p *parser) digits(b *cst.Branch, radix numbers.Radix) string {
	if p.While(0, radix.IsDigit) == 0 {
		return ""
	}
	return p.ParseLeaf(b, nil).Token.String()
}

// isExponent returns true if the cursor is at a marker, an optional sign and
// at least one digit.
func (p *parser) isExponent(radix numbers.Radix) bool {
	if !radix.IsExponentMarker(p.Peek()) {
		return false
	}
	if isSign(p.PeekAt(1)) {
		return radix.IsDigit(p.PeekAt(2))
	}
	return radix.IsDigit(p.PeekAt(1))
}

// marker [sign] digits
func (p *parser) exponent(b *cst.Branch, radix numbers.Radix) *exponent {
	out := &exponent{}
	p.Advance()
	p.ParseLeaf(b, nil)
	if c := p.Peek(); p.OneOf("+-") {
		p.ParseLeaf(b, nil)
		out.sign = numbers.SignFor(c)
	}
	out.digits = p.digits(b, radix)
	return out
}

func (p *parser) buildNumber(s ast.Span, radix numbers.Radix, n number, kind Kind) ast.Node {
	if n.imaginary == nil {
		return p.buildReal(s, radix, n.real.sign, n.real.value, kind == ExactRational)
	}
	var realPart, coefficient numbers.Real
	if n.real != nil {
		realPart = value(p.buildReal(span(n.real.branch), radix, n.real.sign, n.real.value, false))
	}
	if u := n.imaginary.value; u != nil {
		coefficient = value(p.buildReal(span(n.imaginary.branch), radix, numbers.Positive, u, false))
	}
	return builder.Complex(s, radix, realPart, n.imaginary.sign, coefficient)
}

// buildReal builds the node for a signed real. If asRational is set, an
// integer is built as a rational with a denominator of 1.
func (p *parser) buildReal(s ast.Span, radix numbers.Radix, sign numbers.Sign, u *ureal, asRational bool) ast.Node {
	switch {
	case u.ratio || (asRational && u.shape() == integerShape):
		r, err := builder.ParseUnsignedRational(radix, u.intDigits, u.denominator)
		p.check(err)
		n, err := builder.Rational(s, radix, sign, r)
		p.check(err)
		return n
	case u.shape() == floatingShape:
		var exp *numbers.Integer
		if u.exponent != nil {
			e, err := builder.Exponent(radix, u.exponent.sign, u.exponent.digits)
			p.check(err)
			exp = &e
		}
		n, err := builder.FloatingPoint(s, radix, sign, u.intDigits, u.fracDigits, exp)
		p.check(err)
		return n
	}
	n, err := builder.Integer(s, radix, sign, u.intDigits)
	p.check(err)
	return n
}

func value(n ast.Node) numbers.Real {
	switch n := n.(type) {
	case *ast.Integer:
		return n.Value
	case *ast.Rational:
		return n.Value
	case *ast.FloatingPoint:
		return n.Value
	}
	return nil
}
