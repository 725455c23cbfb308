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

// Package parser reads literals of the Racket surface syntax into abstract
// syntax trees.
//
// The text is scanned with the core/text/parse library, which keeps every rune
// of the input in the concrete syntax tree, including the whitespace and
// comments around the literal. Offsets in spans and errors count runes.
package parser

import (
	"context"

	"github.com/toddobryan/pyracket/core/log"
	"github.com/toddobryan/pyracket/core/text/parse"
	"github.com/toddobryan/pyracket/core/text/parse/cst"
	"github.com/toddobryan/pyracket/rkt/ast"
)

type parser struct {
	*parse.Parser
	mappings *ast.Mappings
	depth    int   // Non zero while inside a literal, where nothing is skipped.
	err      error // The construction error that stopped the parse.
}

// Parse reads a single literal of the given kind from data.
//
// Whitespace and comments may surround the literal, but nothing else. Syntax
// errors are returned as a parse.ErrorList. A literal that is well formed but
// cannot be built returns a *builder.ConstructionError or
// *builder.InvalidEscapeError. If m is not nil, every returned node is mapped
// to the CST node it was built from.
func Parse(ctx context.Context, filename, data string, kind Kind, m *ast.Mappings) (ast.Node, error) {
	ctx = log.V{"kind": kind}.Bind(ctx)
	log.D(ctx, "Parsing %q", data)
	if m == nil {
		m = &ast.Mappings{}
	}
	lp := &parser{mappings: m}
	comments := parse.NewSkip(";", "#|", "|#")
	skip := func(p *parse.Parser, mode parse.SkipMode) cst.Separator {
		if lp.depth > 0 {
			return nil
		}
		return comments(p, mode)
	}
	var node ast.Node
	errs := parse.Parse(filename, data, skip, func(p *parse.Parser, b *cst.Branch) {
		lp.Parser = p
		node = lp.requireKind(b, kind)
	})
	switch {
	case lp.err != nil:
		log.D(ctx, "Invalid literal: %v", lp.err)
		return nil, lp.err
	case len(errs) > 0:
		log.D(ctx, "Syntax error: %v", errs.First())
		return nil, errs
	}
	log.D(ctx, "Parsed %v", node)
	return node, nil
}

func (p *parser) requireKind(b *cst.Branch, kind Kind) ast.Node {
	p.depth++
	defer func() { p.depth-- }()
	if p.IsEOF() {
		p.expected(kind.String())
	}
	switch kind {
	case Literal:
		switch {
		case p.Peek() == '"':
			return p.requireString(b)
		case p.isBoolean():
			return p.requireBoolean(b)
		}
		return p.requireNumber(b, Number)
	case Boolean:
		return p.requireBoolean(b)
	case String:
		return p.requireString(b)
	case Number, ExactInteger, ExactRational, ExactFloatingPoint, ExactComplex:
		return p.requireNumber(b, kind)
	}
	p.fail("unknown literal kind %v", kind)
	return nil
}

// check stops the parse if a builder failed.
func (p *parser) check(err error) {
	if err != nil {
		p.err = err
		p.Abort()
	}
}

func (p *parser) cursor() int {
	return p.Offset() + p.Scanned()
}

// failAt reports a syntax error covering the runes [start, end) and stops
// the parse.
func (p *parser) failAt(start, end int, message string, args ...interface{}) {
	p.ErrorAt(cst.Token{Source: p.Source, Start: start, End: end}, message, args...)
	p.Abort()
}

// fail reports a syntax error at the cursor and stops the parse.
func (p *parser) fail(message string, args ...interface{}) {
	at := p.cursor()
	end := at
	if !p.IsEOF() {
		end++
	}
	p.failAt(at, end, message, args...)
}

// expected reports that what was expected at the cursor, and stops the parse.
func (p *parser) expected(what string) {
	if p.IsEOF() {
		p.fail("Expected %s got end of input", what)
	}
	p.fail("Expected %s got %q", what, string(p.Peek()))
}

func span(f cst.Fragment) ast.Span {
	tok := f.Tok()
	return ast.Span{Start: tok.Start, End: tok.End}
}

// isDelimiter returns true if the rune n places after the cursor ends a
// literal.
func (p *parser) isDelimiter(n int) bool {
	if n >= p.Remaining() {
		return true
	}
	switch c := p.PeekAt(n); c {
	case '(', ')', '[', ']', '{', '}', '"', ',', '\'', '`', ';':
		return true
	default:
		return isSpace(c)
	}
}
