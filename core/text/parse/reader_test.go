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
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/toddobryan/pyracket/core/assert"
	"github.com/toddobryan/pyracket/core/text/parse"
)

func TestPeek(t *testing.T) {
	assert := assert.To(t)
	r := parse.NewReader("reader_test.rkt", "aé")
	assert.For("peek").That(r.Peek()).Equals('a')
	assert.For("peek at").That(r.PeekAt(1)).Equals('é')
	assert.For("past end").That(r.PeekAt(2)).Equals(utf8.RuneError)
	assert.For("remaining").ThatInteger(r.Remaining()).Equals(2)
	r.Advance()
	r.Advance()
	r.Advance()
	assert.For("eof").ThatBoolean(r.IsEOF()).IsTrue()
	assert.For("eof peek").That(r.Peek()).Equals(utf8.RuneError)
	assert.For("eof remaining").ThatInteger(r.Remaining()).Equals(0)
	assert.For("token").ThatString(r.Token().String()).Equals("aé")
	assert.For("token end").ThatInteger(r.Token().End).Equals(2)
}

func TestMatch(t *testing.T) {
	assert := assert.To(t)
	for _, test := range []struct {
		name   string
		in     string
		match  func(r *parse.Reader) bool
		expect string
	}{
		{"rune", "#t", func(r *parse.Reader) bool { return r.Rune('#') }, "#"},
		{"rune miss", "#t", func(r *parse.Reader) bool { return r.Rune('t') }, ""},
		{"one of", "-1", func(r *parse.Reader) bool { return r.OneOf("+-") }, "-"},
		{"one of miss", "1", func(r *parse.Reader) bool { return r.OneOf("+-") }, ""},
		{"string", "#true", func(r *parse.Reader) bool { return r.String("#true") }, "#true"},
		{"string short", "#tru", func(r *parse.Reader) bool { return r.String("#true") }, ""},
		{"string case", "#TRUE", func(r *parse.Reader) bool { return r.String("#true") }, ""},
		{"string fold", "#TRUE", func(r *parse.Reader) bool { return r.StringFold("#true") }, "#TRUE"},
		{"seek", "ab\ncd", func(r *parse.Reader) bool { return r.SeekRune('\n') }, "ab"},
		{"seek miss", "abcd", func(r *parse.Reader) bool { return !r.SeekRune('\n') }, "abcd"},
		{"eol", "\r\nx", func(r *parse.Reader) bool { return r.EOL() }, "\r\n"},
		{"space", " \t\nx", func(r *parse.Reader) bool { return r.Space() }, " \t"},
		{"not space", "ab;c d", func(r *parse.Reader) bool { return r.NotSpace() }, "ab;c"},
		{"alphanumeric", "a_1;", func(r *parse.Reader) bool { return r.AlphaNumeric() }, "a_1"},
	} {
		r := parse.NewReader("reader_test.rkt", test.in)
		assert.For("%s result", test.name).ThatBoolean(test.match(r)).Equals(test.expect != "")
		assert.For("%s token", test.name).ThatString(r.Token().String()).Equals(test.expect)
	}
}

func TestWhile(t *testing.T) {
	assert := assert.To(t)
	r := parse.NewReader("reader_test.rkt", "12345x")
	assert.For("limited").ThatInteger(r.While(3, unicode.IsDigit)).Equals(3)
	assert.For("rest").ThatInteger(r.While(0, unicode.IsDigit)).Equals(2)
	assert.For("none").ThatInteger(r.While(0, unicode.IsDigit)).Equals(0)
	assert.For("scanned").ThatInteger(r.Scanned()).Equals(5)
	tok := r.Consume()
	assert.For("consumed").ThatString(tok.String()).Equals("12345")
	assert.For("offset").ThatInteger(r.Offset()).Equals(5)
	assert.For("after consume").ThatInteger(r.Scanned()).Equals(0)
}

func TestRollback(t *testing.T) {
	assert := assert.To(t)
	r := parse.NewReader("reader_test.rkt", "abc")
	r.Advance()
	r.Consume()
	r.Advance()
	r.Advance()
	r.Rollback()
	assert.For("offset").ThatInteger(r.Offset()).Equals(1)
	assert.For("scanned").ThatInteger(r.Scanned()).Equals(0)
	assert.For("peek").That(r.Peek()).Equals('b')
}

func TestGuessNextToken(t *testing.T) {
	assert := assert.To(t)
	for _, test := range []struct {
		in     string
		expect string
	}{
		{"abc def", "abc"},
		{"@#$ x", "@#$"},
		{" x", " "},
		{"", ""},
	} {
		r := parse.NewReader("reader_test.rkt", test.in)
		assert.For("%q", test.in).ThatString(r.GuessNextToken().String()).Equals(test.expect)
	}
	r := parse.NewReader("reader_test.rkt", "abc")
	r.Advance()
	assert.For("scanned").ThatString(r.GuessNextToken().String()).Equals("a")
}
