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
	"strconv"
	"unicode"

	"github.com/toddobryan/pyracket/core/text/parse/cst"
	"github.com/toddobryan/pyracket/rkt/ast"
	"github.com/toddobryan/pyracket/rkt/builder"
)

func isSpace(c rune) bool { return unicode.IsSpace(c) }

func isOctal(c rune) bool { return '0' <= c && c <= '7' }

func isHex(c rune) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func (p *parser) isBoolean() bool {
	if p.Peek() != '#' {
		return false
	}
	switch p.PeekAt(1) {
	case 't', 'T', 'f', 'F':
		return true
	}
	return false
}

// '#true' | '#false' | '#t' | '#f'
func (p *parser) requireBoolean(b *cst.Branch) *ast.Boolean {
	if !p.String("#true") && !p.String("#false") {
		if !p.isBoolean() {
			p.expected("boolean")
		}
		p.Advance()
		p.Advance()
	}
	l := p.ParseLeaf(b, nil)
	n, err := builder.Boolean(span(l), l.Token.String())
	p.check(err)
	p.mappings.Add(n, l)
	return n
}

// '"' { char | escape } '"'
func (p *parser) requireString(b *cst.Branch) *ast.String {
	if p.Peek() != '"' {
		p.expected("string")
	}
	var n *ast.String
	p.ParseBranch(b, func(b *cst.Branch) {
		p.Advance()
		p.ParseLeaf(b, nil)
		fragments := []string{}
		for {
			switch {
			case p.IsEOF():
				p.fail("Unterminated string")
			case p.Peek() == '"':
				p.Advance()
				p.ParseLeaf(b, nil)
				n = builder.String(span(b), fragments)
				p.mappings.Add(n, b)
				return
			case p.Peek() == '\\':
				l := p.ParseLeaf(b, func(*cst.Leaf) { p.escape() })
				s, err := builder.Escape(span(l), l.Token.String())
				p.check(err)
				fragments = append(fragments, s)
			default:
				p.While(0, func(c rune) bool { return c != '"' && c != '\\' })
				l := p.ParseLeaf(b, nil)
				fragments = append(fragments, l.Token.String())
			}
		}
	})
	return n
}

// escape scans one escape lexeme. A letter the decoder does not know is still
// scanned, as a two rune lexeme, so that the decoder can report it.
func (p *parser) escape() {
	p.Advance()
	c := p.Peek()
	switch {
	case p.IsEOF():
		p.fail("Unterminated string")
	case isOctal(c):
		p.While(3, isOctal)
	case c == 'x':
		p.Advance()
		p.While(2, isHex)
	case c == 'u':
		p.Advance()
		if p.While(4, isHex) == 4 && p.surrogatePair() {
			p.Advance()
			p.Advance()
			p.While(4, isHex)
		}
	case c == 'U':
		p.Advance()
		p.While(8, isHex)
	default:
		p.Advance()
	}
}

// surrogatePair returns true if the four digit escape just scanned is in the
// surrogate range and is followed by a second four digit escape of the same
// form.
func (p *parser) surrogatePair() bool {
	text := p.Token().String()
	v, err := strconv.ParseUint(text[len(text)-4:], 16, 32)
	if err != nil || v < 0xD800 || v > 0xDFFF {
		return false
	}
	if p.Peek() != '\\' || p.PeekAt(1) != 'u' {
		return false
	}
	for i := 2; i < 6; i++ {
		if !isHex(p.PeekAt(i)) {
			return false
		}
	}
	return true
}
