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

package parse_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"unicode/utf8"

	"github.com/toddobryan/pyracket/core/assert"
	"github.com/toddobryan/pyracket/core/fault"
	"github.com/toddobryan/pyracket/core/log"
	"github.com/toddobryan/pyracket/core/text/parse"
	"github.com/toddobryan/pyracket/core/text/parse/cst"
)

const filename = "parser_test.rkt"

var skip = parse.NewSkip(";", "#|", "|#")

// words is a root parser for a list of alphanumeric words.
func words(p *parse.Parser, b *cst.Branch) {
	for !p.IsEOF() {
		if !p.AlphaNumeric() {
			p.Expected("word")
			return
		}
		p.ParseLeaf(b, nil)
	}
}

func leaves(b *cst.Branch) []string {
	out := []string{}
	for _, c := range b.Children {
		out = append(out, c.Tok().String())
	}
	return out
}

func TestEmpty(t *testing.T) {
	ctx := log.Testing(t)
	root := testParse(ctx, ``)
	assert.For(ctx, "children").ThatSlice(root.Children).IsEmpty()
}

func TestWords(t *testing.T) {
	ctx := log.Testing(t)
	root := testParse(ctx, `a bc  d`)
	assert.For(ctx, "words").ThatSlice(leaves(root)).Equals([]string{"a", "bc", "d"})
	assert.For(ctx, "suffix").ThatString(root.Children[1].Suffix().String()).Equals("  ")
	root = testParse(ctx, `  a`)
	assert.For(ctx, "prefix").ThatString(root.Prefix().String()).Equals("  ")
}

func TestLineComment(t *testing.T) {
	ctx := log.Testing(t)
	root := testParse(ctx, ";note\na")
	assert.For(ctx, "words").ThatSlice(leaves(root)).Equals([]string{"a"})
	if assert.For(ctx, "prefix").ThatSlice(root.Prefix()).IsLength(2) {
		assert.For(ctx, "comment").ThatString(root.Prefix()[0].Tok().String()).Equals(";note")
	}
	root = testParse(ctx, "a ; trailing\nb ; next\n")
	assert.For(ctx, "suffix").ThatString(root.Children[0].Suffix().String()).Equals(" ; trailing\n")
	assert.For(ctx, "root suffix").ThatString(root.Suffix().String()).Equals(" ; next\n")
}

func TestBlockComment(t *testing.T) {
	ctx := log.Testing(t)
	root := testParse(ctx, "#|note\n;|# a #|b|#")
	assert.For(ctx, "words").ThatSlice(leaves(root)).Equals([]string{"a"})
	assert.For(ctx, "comment").ThatString(root.Prefix()[0].Tok().String()).Equals("#|note\n;|#")
}

func TestCommentUnclosed(t *testing.T) {
	ctx := log.Testing(t)
	errs := testFail(ctx, `#|a`, words)
	if len(errs) > 0 {
		assert.For(ctx, "message").ThatString(errs[0].Message).Equals("Unterminated block comment")
	}
}

func TestErrorInvalid(t *testing.T) {
	ctx := log.Testing(t)
	errs := testFail(ctx, `a @`, words)
	if len(errs) == 0 {
		return
	}
	assert.For(ctx, "message").ThatString(errs[0].Message).Equals(`Expected "word" got "@"`)
	assert.For(ctx, "offset").ThatInteger(errs[0].Offset()).Equals(2)
}

func TestUnconsumed(t *testing.T) {
	ctx := log.Testing(t)
	testFail(ctx, "a", func(p *parse.Parser, n *cst.Branch) {})
}

func TestUnconsumedByBranch(t *testing.T) {
	ctx := log.Testing(t)
	testFail(ctx, "a", func(p *parse.Parser, n *cst.Branch) {
		p.ParseBranch(n, func(n *cst.Branch) {
			p.NotSpace()
		})
	})
}

func TestUnconsumedOnBranch(t *testing.T) {
	ctx := log.Testing(t)
	testFail(ctx, "a", func(p *parse.Parser, n *cst.Branch) {
		p.NotSpace()
		p.ParseBranch(n, func(n *cst.Branch) {})
	})
}

func TestBranch(t *testing.T) {
	ctx := log.Testing(t)
	var inner *cst.Branch
	errs := parse.Parse(filename, "ab cd", skip, func(p *parse.Parser, b *cst.Branch) {
		inner = p.ParseBranch(b, func(b *cst.Branch) {
			p.AlphaNumeric()
			p.ParseLeaf(b, nil)
			p.AlphaNumeric()
			p.ParseLeaf(b, nil)
		})
	})
	assert.For(ctx, "errors").ThatSlice(errs).IsEmpty()
	tok := inner.Tok()
	assert.For(ctx, "start").ThatInteger(tok.Start).Equals(0)
	assert.For(ctx, "end").ThatInteger(tok.End).Equals(5)
	assert.For(ctx, "first").ThatString(inner.First().Tok().String()).Equals("ab")
	assert.For(ctx, "last").ThatString(inner.Last().Tok().String()).Equals("cd")
}

func TestExtend(t *testing.T) {
	ctx := log.Testing(t)
	var root, outer *cst.Branch
	errs := parse.Parse(filename, "a b", skip, func(p *parse.Parser, b *cst.Branch) {
		root = b
		p.AlphaNumeric()
		first := p.ParseLeaf(b, nil)
		outer = p.Extend(first, func(b *cst.Branch) {
			p.AlphaNumeric()
			p.ParseLeaf(b, nil)
		})
	})
	assert.For(ctx, "errors").ThatSlice(errs).IsEmpty()
	assert.For(ctx, "root").ThatSlice(root.Children).IsLength(1)
	assert.For(ctx, "extended").ThatSlice(leaves(outer)).Equals([]string{"a", "b"})
	assert.For(ctx, "parent").That(outer.Parent()).Equals(root)
}

func TestWalk(t *testing.T) {
	ctx := log.Testing(t)
	root := testParse(ctx, "a b c")
	count := 0
	cst.Walk(root, func(cst.Node) { count++ })
	assert.For(ctx, "nodes").ThatInteger(count).Equals(4)
}

func TestErrorLimit(t *testing.T) {
	ctx := log.Testing(t)
	errs := parse.Parse(filename, "", skip, func(p *parse.Parser, n *cst.Branch) {
		for i := 0; true; i++ {
			p.ErrorAt(n, "failure")
			if i >= parse.ParseErrorLimit {
				log.F(ctx, true, "Parsing not terminated. %d errors", i)
			}
		}
	})
	assert.For(ctx, "errs").ThatSlice(errs).IsLength(parse.ParseErrorLimit)
}

func TestErrorAtEmptyToken(t *testing.T) {
	ctx := log.Testing(t)
	errs := parse.Parse(filename, "abc", skip, func(p *parse.Parser, b *cst.Branch) {
		p.AlphaNumeric()
		p.ParseLeaf(b, nil)
		p.ErrorAt(cst.Token{Source: p.Source, Start: 3, End: 3}, "at end")
	})
	if assert.For(ctx, "errs").ThatSlice(errs).IsLength(1) {
		assert.For(ctx, "offset").ThatInteger(errs[0].Offset()).Equals(3)
	}
}

func TestCursor(t *testing.T) {
	ctx := log.Testing(t)
	line, column := 3, 5
	content := ""
	for i := 1; i < line; i++ {
		content += "\n"
	}
	for i := 1; i < column; i++ {
		content += " "
	}
	content += "@  \n  "
	errs := parse.Parse(filename, content, skip, words)
	if len(errs) == 0 {
		log.E(ctx, "Expected errors")
		return
	}
	l, c := errs[0].At.Tok().Cursor()
	assert.For(ctx, "Line").That(l).Equals(line)
	assert.For(ctx, "Column").That(c).Equals(column)
	assert.For(ctx, "Error").ThatString(errs[0]).HasPrefix(fmt.Sprintf("%s:%v:%v: Expected", filename, line, column))
}

func TestCustomPanic(t *testing.T) {
	ctx := log.Testing(t)
	const custom = fault.Const("custom")
	defer func() {
		assert.For(ctx, "recover").That(recover()).Equals(custom)
	}()
	parse.Parse(filename, "", skip, func(p *parse.Parser, _ *cst.Branch) {
		panic(custom)
	})
}

func testParse(ctx context.Context, content string) *cst.Branch {
	ctx = log.V{"content": content}.Bind(ctx)
	var root *cst.Branch
	errs := parse.Parse(filename, content, skip, func(p *parse.Parser, b *cst.Branch) {
		root = b
		words(p, b)
	})
	assert.For(ctx, "errors").ThatSlice(errs).IsEmpty()
	out := &bytes.Buffer{}
	root.Write(out)
	assert.For(ctx, "content").ThatString(out).Equals(content)
	next := 0
	verifyNode(ctx, root, &next)
	return root
}

func testFail(ctx context.Context, content string, do parse.RootParser) parse.ErrorList {
	errs := parse.Parse(filename, content, skip, do)
	if len(errs) == 0 {
		log.E(ctx, "Expected errors")
	} else {
		for _, e := range errs {
			line, column := e.At.Tok().Cursor()
			log.I(ctx, "%v:%v: %s", line, column, e.Message)
		}
	}
	return errs
}

// verifyNode checks that the tokens of n and its separators cover the input
// contiguously, starting at next.
func verifyNode(ctx context.Context, n cst.Node, next *int) {
	for _, f := range n.Prefix() {
		verifyFragment(ctx, f, next)
	}
	start := *next
	if b, ok := n.(*cst.Branch); ok {
		for _, c := range b.Children {
			verifyNode(ctx, c, next)
		}
	} else {
		verifyFragment(ctx, n, next)
	}
	end := *next
	for _, f := range n.Suffix() {
		verifyFragment(ctx, f, next)
	}
	tok := n.Tok()
	if start != end {
		assert.For(ctx, "branch start").ThatInteger(tok.Start).Equals(start)
		assert.For(ctx, "branch end").ThatInteger(tok.End).Equals(end)
	}
}

func verifyFragment(ctx context.Context, f cst.Fragment, next *int) {
	tok := f.Tok()
	str := tok.String()
	ctx = log.V{"token": str}.Bind(ctx)
	if str == "" {
		return
	}
	length := utf8.RuneCountInString(str)
	assert.For(ctx, "start").ThatInteger(tok.Start).Equals(*next)
	assert.For(ctx, "end").ThatInteger(tok.End).Equals(*next + length)
	*next = tok.End
}
