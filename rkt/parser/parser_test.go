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

package parser_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"
	"github.com/toddobryan/pyracket/core/assert"
	"github.com/toddobryan/pyracket/core/log"
	"github.com/toddobryan/pyracket/core/text/parse"
	"github.com/toddobryan/pyracket/rkt/ast"
	"github.com/toddobryan/pyracket/rkt/builder"
	"github.com/toddobryan/pyracket/rkt/numbers"
	"github.com/toddobryan/pyracket/rkt/parser"
)

func sp(start, end int) ast.Span { return ast.Span{Start: start, End: end} }

func integer(r numbers.Radix, v int64) numbers.Integer {
	return numbers.Integer{Base: r, Value: big.NewInt(v)}
}

func rational(r numbers.Radix, num, den int64) numbers.Rational {
	return numbers.Rational{Base: r, Numerator: big.NewInt(num), Denominator: big.NewInt(den)}
}

func floating(t *testing.T, r numbers.Radix, s numbers.Sign, digits string, exp int64) numbers.FloatingPoint {
	f, err := numbers.NewFloatingPoint(r, s, digits, integer(r, exp))
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func read(ctx context.Context, text string, kind parser.Kind) (ast.Node, error) {
	return parser.Parse(ctx, "test.rkt", text, kind, nil)
}

func syntaxError(ctx context.Context, err error) (parse.ErrorList, bool) {
	var list parse.ErrorList
	ok := errors.As(err, &list)
	assert.For(ctx, "syntax error").ThatBoolean(ok).IsTrue()
	return list, ok
}

func TestRadixRoundTrip(t *testing.T) {
	ctx := log.Testing(t)
	huge, _ := new(big.Int).SetString("-123456789012345678901234567890123456789", 10)
	values := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(-1),
		big.NewInt(255),
		big.NewInt(1 << 40),
		huge,
	}
	for _, r := range numbers.Radixes {
		radix := r.Prefix()
		if radix == "" {
			radix = "#d"
		}
		for _, v := range values {
			digits := v.Text(int(r))
			for _, text := range []string{
				radix + digits,
				"#e" + radix + digits,
				radix + "#e" + digits,
				"#E" + radix + digits,
			} {
				got, err := read(ctx, text, parser.Number)
				if assert.For(ctx, "%s err", text).ThatError(err).Succeeded() {
					assert.For(ctx, text).That(got).DeepEquals(&ast.Integer{
						Span:  sp(0, len(text)),
						Value: numbers.Integer{Base: r, Value: v},
					})
				}
			}
		}
	}
	got, err := read(ctx, "-42", parser.ExactInteger)
	if assert.For(ctx, "default radix err").ThatError(err).Succeeded() {
		assert.For(ctx, "default radix").That(got).DeepEquals(&ast.Integer{Span: sp(0, 3), Value: integer(numbers.Decimal, -42)})
	}
}

func TestNumbers(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		text   string
		expect ast.Node
	}{
		{"#e#b1100/1101", &ast.Rational{Span: sp(0, 13), Value: rational(numbers.Binary, 12, 13)}},
		{"-100/101", &ast.Rational{Span: sp(0, 8), Value: rational(numbers.Decimal, -100, 101)}},
		{"+4/6", &ast.Rational{Span: sp(0, 4), Value: rational(numbers.Decimal, 4, 6)}},
		{"#x-FF/a", &ast.Rational{Span: sp(0, 7), Value: rational(numbers.Hexadecimal, -255, 10)}},
		{"1.5", &ast.FloatingPoint{Span: sp(0, 3), Value: floating(t, numbers.Decimal, numbers.Positive, "15", -1)}},
		{"-.25", &ast.FloatingPoint{Span: sp(0, 4), Value: floating(t, numbers.Decimal, numbers.Negative, "25", -2)}},
		{"7.", &ast.FloatingPoint{Span: sp(0, 2), Value: floating(t, numbers.Decimal, numbers.Positive, "7", 0)}},
		{"1e3", &ast.FloatingPoint{Span: sp(0, 3), Value: floating(t, numbers.Decimal, numbers.Positive, "1", 3)}},
		{"2.5E-2", &ast.FloatingPoint{Span: sp(0, 6), Value: floating(t, numbers.Decimal, numbers.Positive, "25", -3)}},
		{"#b1.1e+10", &ast.FloatingPoint{Span: sp(0, 9), Value: floating(t, numbers.Binary, numbers.Positive, "11", 1)}},
		{"#x1s2", &ast.FloatingPoint{Span: sp(0, 5), Value: floating(t, numbers.Hexadecimal, numbers.Positive, "1", 2)}},
		{"#x1e2", &ast.Integer{Span: sp(0, 5), Value: integer(numbers.Hexadecimal, 0x1e2)}},
	} {
		got, err := read(ctx, test.text, parser.Number)
		if assert.For(ctx, "%s err", test.text).ThatError(err).Succeeded() {
			assert.For(ctx, test.text).That(got).DeepEquals(test.expect)
		}
	}
}

func TestComplex(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		text      string
		real      numbers.Real
		imaginary numbers.Real
	}{
		{"+i", integer(numbers.Decimal, 0), integer(numbers.Decimal, 1)},
		{"-i", integer(numbers.Decimal, 0), integer(numbers.Decimal, -1)},
		{"-I", integer(numbers.Decimal, 0), integer(numbers.Decimal, -1)},
		{"-2i", integer(numbers.Decimal, 0), integer(numbers.Decimal, -2)},
		{"1+2i", integer(numbers.Decimal, 1), integer(numbers.Decimal, 2)},
		{"1-i", integer(numbers.Decimal, 1), integer(numbers.Decimal, -1)},
		{"1/2-3.5i", rational(numbers.Decimal, 1, 2), floating(t, numbers.Decimal, numbers.Negative, "35", -1)},
		{"#b-1+10/11i", integer(numbers.Binary, -1), rational(numbers.Binary, 2, 3)},
		{"#x+i", integer(numbers.Hexadecimal, 0), integer(numbers.Hexadecimal, 1)},
	} {
		for _, kind := range []parser.Kind{parser.Literal, parser.Number, parser.ExactComplex} {
			got, err := read(ctx, test.text, kind)
			if assert.For(ctx, "%s as %v err", test.text, kind).ThatError(err).Succeeded() {
				assert.For(ctx, "%s as %v", test.text, kind).That(got).DeepEquals(&ast.Complex{
					Span:  sp(0, len(test.text)),
					Value: numbers.Complex{Real: test.real, Imaginary: test.imaginary},
				})
			}
		}
	}
}

func TestLongFloatingPoint(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		text   string
		expect string
	}{
		{"3.14159265358979323846264338327950288419716939937510", "3.14159265358979323846264338327950288419716939937510"},
		{"-271828182845904523536028747135266249775724709369995.", "-271828182845904523536028747135266249775724709369995"},
		{"#b0.0001", "0.0625"},
		{"#o-0.4", "-0.5"},
	} {
		got, err := read(ctx, test.text, parser.ExactFloatingPoint)
		if !assert.For(ctx, "%s err", test.text).ThatError(err).Succeeded() {
			continue
		}
		f, ok := got.(*ast.FloatingPoint)
		if !assert.For(ctx, "%s kind", test.text).ThatBoolean(ok).IsTrue() {
			continue
		}
		d, err := f.Value.Dec()
		if !assert.For(ctx, "%s dec err", test.text).ThatError(err).Succeeded() {
			continue
		}
		want, _, err := apd.NewFromString(test.expect)
		if err != nil {
			t.Fatal(err)
		}
		assert.For(ctx, test.text).Compare(d, "==", want).Test(d.Cmp(want) == 0)
	}
	got, _ := read(ctx, "3.14159265358979323846264338327950288419716939937510", parser.Number)
	if f, ok := got.(*ast.FloatingPoint); ok {
		d, _ := f.Value.Dec()
		assert.For(ctx, "digits kept").ThatString(d.String()).Equals("3.14159265358979323846264338327950288419716939937510")
	}
}

func TestBooleans(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		text   string
		expect bool
	}{
		{"#t", true},
		{"#T", true},
		{"#true", true},
		{"#f", false},
		{"#false", false},
	} {
		for _, kind := range []parser.Kind{parser.Literal, parser.Boolean} {
			got, err := read(ctx, test.text, kind)
			if assert.For(ctx, "%s as %v err", test.text, kind).ThatError(err).Succeeded() {
				assert.For(ctx, "%s as %v", test.text, kind).That(got).DeepEquals(&ast.Boolean{
					Span:  sp(0, len(test.text)),
					Value: test.expect,
				})
			}
		}
	}
}

func TestStrings(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		text   string
		expect string
	}{
		{`""`, ""},
		{`"hello"`, "hello"},
		{`"a\nb\tc"`, "a\nb\tc"},
		{`"\"quoted\" \\ \'"`, `"quoted" \ '`},
		{`"\101\x41\u0041\U41"`, "AAAA"},
		{`"\1011"`, "A1"},
		{`"\x414"`, "A4"},
		{`"\uD83D\uDE00!"`, "\U0001F600!"},
		{`"\U1F600"`, "\U0001F600"},
		{`"naïve"`, "naïve"},
	} {
		for _, kind := range []parser.Kind{parser.Literal, parser.String} {
			got, err := read(ctx, test.text, kind)
			if assert.For(ctx, "%s as %v err", test.text, kind).ThatError(err).Succeeded() {
				assert.For(ctx, "%s as %v", test.text, kind).That(got).DeepEquals(&ast.String{
					Span:  sp(0, len([]rune(test.text))),
					Value: test.expect,
				})
			}
		}
	}
}

func TestInvalidEscapes(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		text   string
		lexeme string
		span   ast.Span
	}{
		{`"ab\q"`, `\q`, sp(3, 5)},
		{`"\uDC00\uDC00"`, `\uDC00\uDC00`, sp(1, 13)},
		{`"\uD800"`, `\uD800`, sp(1, 7)},
		{`"\x"`, `\x`, sp(1, 3)},
		{`"\U110000"`, `\U110000`, sp(1, 9)},
	} {
		_, err := read(ctx, test.text, parser.String)
		var ie *builder.InvalidEscapeError
		if assert.For(ctx, "%s error", test.text).ThatBoolean(errors.As(err, &ie)).IsTrue() {
			assert.For(ctx, "%s lexeme", test.text).ThatString(ie.Lexeme).Equals(test.lexeme)
			assert.For(ctx, "%s span", test.text).That(ie.Span).Equals(test.span)
		}
	}
}

func TestZeroDenominator(t *testing.T) {
	ctx := log.Testing(t)
	for _, text := range []string{"1/0", "-5/000", "#b1/0", "#o7/00", "#d3/0", "#x-f/0", "1+1/0i"} {
		_, err := read(ctx, text, parser.Number)
		var ce *builder.ConstructionError
		if assert.For(ctx, "%s error", text).ThatBoolean(errors.As(err, &ce)).IsTrue() {
			assert.For(ctx, "%s kind", text).That(ce.Kind).Equals(builder.ZeroDenominator)
			assert.For(ctx, "%s cause", text).ThatBoolean(errors.Is(err, numbers.ErrZeroDenominator)).IsTrue()
		}
	}
	_, err := read(ctx, "#x-f/0", parser.Number)
	var ce *builder.ConstructionError
	if errors.As(err, &ce) {
		assert.For(ctx, "span").That(ce.Span).Equals(sp(0, 6))
	}
}

func TestSyntaxErrors(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		text    string
		kind    parser.Kind
		message string
		offset  int
	}{
		{"", parser.Literal, "Expected literal got end of input", 0},
		{"#b#o1", parser.Number, "Duplicate radix prefix #o", 2},
		{"#e#x#E1", parser.Number, "Duplicate exactness prefix #E", 4},
		{"#i1.5", parser.Number, "Inexact numbers are not supported", 0},
		{"#e#i1", parser.Literal, "Inexact numbers are not supported", 2},
		{"#q1", parser.Number, `Expected number prefix got "q"`, 1},
		{"1/", parser.Number, "Expected decimal digit got end of input", 2},
		{".", parser.Number, "Expected decimal digit got end of input", 1},
		{"#b102", parser.Number, `Expected end of number got "2"`, 4},
		{"12abc", parser.Literal, `Expected end of number got "a"`, 2},
		{"5i", parser.Number, "Expected sign before imaginary part", 1},
		{"1+2", parser.Number, "Expected 'i' got end of input", 3},
		{`"abc`, parser.String, "Unterminated string", 4},
		{`"ab\`, parser.Literal, "Unterminated string", 4},
		{"42", parser.String, `Expected string got "4"`, 0},
		{"#x1", parser.Boolean, `Expected boolean got "#"`, 0},
		{"1/2", parser.ExactInteger, "Expected exact-integer got rational", 0},
		{"1.0", parser.ExactRational, "Expected exact-rational got floating point", 0},
		{"12", parser.ExactFloatingPoint, "Expected exact-floating-point got integer", 0},
		{"12", parser.ExactComplex, "Expected exact-complex got integer", 0},
		{"1 2", parser.Number, "Unexpected input at end of parse", 2},
		{"#| 1", parser.Number, "Unterminated block comment", 0},
	} {
		_, err := read(ctx, test.text, test.kind)
		if list, ok := syntaxError(ctx, err); ok && len(list) > 0 {
			assert.For(ctx, "%q message", test.text).ThatString(list[0].Message).Equals(test.message)
			if test.offset > 0 {
				assert.For(ctx, "%q offset", test.text).ThatInteger(list[0].Offset()).Equals(test.offset)
			}
		}
	}
}

func TestKinds(t *testing.T) {
	ctx := log.Testing(t)
	got, err := read(ctx, "7", parser.ExactRational)
	if assert.For(ctx, "integer as rational err").ThatError(err).Succeeded() {
		assert.For(ctx, "integer as rational").That(got).DeepEquals(&ast.Rational{Span: sp(0, 1), Value: rational(numbers.Decimal, 7, 1)})
	}
	got, err = read(ctx, "-7", parser.Literal)
	if assert.For(ctx, "literal err").ThatError(err).Succeeded() {
		assert.For(ctx, "literal").ThatString(ast.Kind(got)).Equals("Integer")
	}
	for _, kind := range parser.Kinds() {
		var k parser.Kind
		err := k.Set(kind.String())
		assert.For(ctx, "set %v", kind).ThatError(err).Succeeded()
		assert.For(ctx, "set %v", kind).That(k).Equals(kind)
	}
	var k parser.Kind
	assert.For(ctx, "case").ThatError(k.Set("Exact-Integer")).Succeeded()
	assert.For(ctx, "case").That(k).Equals(parser.ExactInteger)
	assert.For(ctx, "unknown").ThatError(k.Set("symbol")).Failed()
}

func TestSkipping(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		text   string
		expect ast.Node
	}{
		{"  42  ", &ast.Integer{Span: sp(2, 4), Value: integer(numbers.Decimal, 42)}},
		{"  #| block |# 42 ; trailing\n", &ast.Integer{Span: sp(14, 16), Value: integer(numbers.Decimal, 42)}},
		{"; leading\n#t", &ast.Boolean{Span: sp(10, 12), Value: true}},
		{"\t\" ; not a comment \"\n", &ast.String{Span: sp(1, 20), Value: " ; not a comment "}},
	} {
		got, err := read(ctx, test.text, parser.Literal)
		if assert.For(ctx, "%q err", test.text).ThatError(err).Succeeded() {
			assert.For(ctx, "%q", test.text).That(got).DeepEquals(test.expect)
		}
	}
}

func TestMappings(t *testing.T) {
	ctx := log.Testing(t)
	for _, text := range []string{"#t", `"a\nb"`, "#x-ff", "1+2i", " 3/4 "} {
		m := &ast.Mappings{}
		got, err := parser.Parse(ctx, "test.rkt", text, parser.Literal, m)
		if !assert.For(ctx, "%q err", text).ThatError(err).Succeeded() {
			continue
		}
		c := m.CST(got)
		if assert.For(ctx, "%q cst", text).That(c).IsNotNil() {
			assert.For(ctx, "%q ast", text).That(m.AST(c)).Equals(got)
			tok := c.Tok()
			assert.For(ctx, "%q span", text).That(ast.Span{Start: tok.Start, End: tok.End}).Equals(got.Pos())
		}
	}
}
