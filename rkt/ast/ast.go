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

// Package ast holds the abstract syntax tree of literals.
//
// Every literal is a *Literal of its value type, carrying the Span of source
// text it was parsed from. The set of value types is closed, so a type switch
// over the aliases below covers every Node.
package ast

import (
	"fmt"

	"github.com/toddobryan/pyracket/rkt/numbers"
)

// Node is implemented by all AST node types.
type Node interface {
	// Start returns the offset of the first rune of the node.
	Start() int
	// End returns the offset one past the last rune of the node.
	End() int
	// Pos returns the source span of the node.
	Pos() Span
	isNode()
}

// Span is a half-open range of rune offsets into the source text.
type Span struct {
	Start int
	End   int
}

// Len returns the number of runes in the span.
func (s Span) Len() int { return s.End - s.Start }

func (s Span) String() string { return fmt.Sprintf("[%d,%d)", s.Start, s.End) }

// Value is the set of types a literal can hold.
type Value interface {
	bool | string | numbers.Integer | numbers.Rational | numbers.FloatingPoint | numbers.Complex
}

// Literal is a literal of value type V parsed from Span.
type Literal[V Value] struct {
	Span  Span
	Value V
}

type (
	// Boolean is a #t or #f literal.
	Boolean = Literal[bool]
	// String is a string literal, with its escapes decoded.
	String = Literal[string]
	// Integer is an exact integer literal.
	Integer = Literal[numbers.Integer]
	// Rational is an exact rational literal.
	Rational = Literal[numbers.Rational]
	// FloatingPoint is an exact literal written with a point or exponent.
	FloatingPoint = Literal[numbers.FloatingPoint]
	// Complex is an exact complex literal.
	Complex = Literal[numbers.Complex]
)

func (l *Literal[V]) Start() int { return l.Span.Start }
func (l *Literal[V]) End() int   { return l.Span.End }
func (l *Literal[V]) Pos() Span  { return l.Span }
func (*Literal[V]) isNode()      {}

// Kind returns the name of the kind of literal held by n.
func Kind(n Node) string {
	switch n.(type) {
	case *Boolean:
		return "Boolean"
	case *String:
		return "String"
	case *Integer:
		return "Integer"
	case *Rational:
		return "Rational"
	case *FloatingPoint:
		return "FloatingPoint"
	case *Complex:
		return "Complex"
	case nil:
		return "nil"
	}
	return fmt.Sprintf("%T", n)
}

// Format prints the literal as its kind, span and value in literal syntax.
func (l *Literal[V]) Format(f fmt.State, c rune) {
	switch v := any(l.Value).(type) {
	case bool:
		if v {
			fmt.Fprintf(f, "%s%v #t", Kind(l), l.Span)
		} else {
			fmt.Fprintf(f, "%s%v #f", Kind(l), l.Span)
		}
	case string:
		fmt.Fprintf(f, "%s%v %q", Kind(l), l.Span, v)
	default:
		fmt.Fprintf(f, "%s%v %v", Kind(l), l.Span, v)
	}
}

// Equal returns true if a and b are the same kind of literal with equal spans
// and values.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Pos() != b.Pos() {
		return false
	}
	switch a := a.(type) {
	case *Boolean:
		b, ok := b.(*Boolean)
		return ok && a.Value == b.Value
	case *String:
		b, ok := b.(*String)
		return ok && a.Value == b.Value
	case *Integer:
		b, ok := b.(*Integer)
		return ok && a.Value.Equal(b.Value)
	case *Rational:
		b, ok := b.(*Rational)
		return ok && a.Value.Equal(b.Value)
	case *FloatingPoint:
		b, ok := b.(*FloatingPoint)
		return ok && a.Value.Equal(b.Value)
	case *Complex:
		b, ok := b.(*Complex)
		return ok && a.Value.Equal(b.Value)
	}
	return false
}
