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

package parse

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/toddobryan/pyracket/core/text/parse/cst"
)

// Reader is the interface to an object that converts a rune array into tokens.
//
// The reader keeps two positions into the rune array. The offset is the start
// of the token being built, and everything before it has already been handed
// out by Consume. The cursor is how far the token has been scanned. The
// matching methods advance the cursor only when they succeed, so a failed
// match never needs to be undone, and Rollback discards everything scanned
// since the last Consume.
type Reader struct {
	Source *cst.Source // The source being parsed.
	runes  []rune      // The string being parsed.
	offset int         // The start of the current token.
	cursor int         // The offset of the next unread rune.
}

// NewReader creates a new reader which reads from the supplied string.
func NewReader(filename string, data string) *Reader {
	r := &Reader{}
	r.setData(filename, data)
	return r
}

func (r *Reader) setData(filename string, data string) {
	r.Source = cst.NewSource(filename, data)
	r.runes = r.Source.Runes
	r.offset = 0
	r.cursor = 0
}

// Token peeks at the current scanned token value. It does not consume anything.
func (r *Reader) Token() cst.Token {
	return cst.Token{Source: r.Source, Start: r.offset, End: r.cursor}
}

// Consume consumes the current token.
func (r *Reader) Consume() cst.Token {
	tok := r.Token()
	r.offset = r.cursor
	return tok
}

// Advance moves the cursor one rune forward, if not at the end of the input.
func (r *Reader) Advance() {
	if r.cursor < len(r.runes) {
		r.cursor++
	}
}

// Rollback resets the cursor to the start of the current token.
func (r *Reader) Rollback() {
	r.cursor = r.offset
}

// Offset returns the start of the token being scanned.
func (r *Reader) Offset() int {
	return r.offset
}

// Scanned returns the number of runes scanned but not yet consumed.
func (r *Reader) Scanned() int {
	return r.cursor - r.offset
}

// IsEOF returns true when the cursor is at the end of the input.
func (r *Reader) IsEOF() bool {
	return r.cursor >= len(r.runes)
}

// Remaining returns the number of runes after the cursor.
func (r *Reader) Remaining() int {
	return len(r.runes) - r.cursor
}

// Peek returns the next rune without advancing the cursor, or
// utf8.RuneError at the end of the input.
func (r *Reader) Peek() rune {
	return r.PeekAt(0)
}

// PeekAt returns the rune n places after the cursor without advancing it, or
// utf8.RuneError if that is past the end of the input.
func (r *Reader) PeekAt(n int) rune {
	i := r.cursor + n
	if i < 0 || i >= len(r.runes) {
		return utf8.RuneError
	}
	return r.runes[i]
}

// Rune advances the cursor past the next rune if it is value.
func (r *Reader) Rune(value rune) bool {
	if r.IsEOF() || r.runes[r.cursor] != value {
		return false
	}
	r.cursor++
	return true
}

// OneOf advances the cursor past the next rune if it is any of the runes in
// set.
func (r *Reader) OneOf(set string) bool {
	if r.IsEOF() || !strings.ContainsRune(set, r.runes[r.cursor]) {
		return false
	}
	r.cursor++
	return true
}

// String advances the cursor past value if the input continues with it.
func (r *Reader) String(value string) bool {
	return r.match(value, func(a, b rune) bool { return a == b })
}

// StringFold is like String but matches ASCII letters case-insensitively.
func (r *Reader) StringFold(value string) bool {
	return r.match(value, func(a, b rune) bool { return unicode.ToLower(a) == unicode.ToLower(b) })
}

func (r *Reader) match(value string, same func(a, b rune) bool) bool {
	i := r.cursor
	for _, v := range value {
		if i >= len(r.runes) || !same(r.runes[i], v) {
			return false
		}
		i++
	}
	r.cursor = i
	return true
}

// While advances the cursor past every rune accepted by pred, and returns
// the number of runes skipped. At most limit runes are skipped when limit is
// greater than zero.
func (r *Reader) While(limit int, pred func(rune) bool) int {
	n := 0
	for !r.IsEOF() && (limit <= 0 || n < limit) && pred(r.runes[r.cursor]) {
		r.cursor++
		n++
	}
	return n
}

// SeekRune advances the cursor until either the specified rune is found, or
// the end of the input is reached. The key rune itself is not skipped.
func (r *Reader) SeekRune(key rune) bool {
	for i := r.cursor; i < len(r.runes); i++ {
		if r.runes[i] == key {
			r.cursor = i
			return true
		}
	}
	r.cursor = len(r.runes)
	return false
}

// EOL skips a line ending, returning true if one was found.
func (r *Reader) EOL() bool {
	if r.String("\r\n") {
		return true
	}
	return r.Rune('\n')
}

// Space skips over any non newline whitespace, returning true if it skipped
// any runes.
func (r *Reader) Space() bool {
	return r.While(0, func(c rune) bool { return c != '\n' && c != '\r' && unicode.IsSpace(c) }) > 0
}

// NotSpace skips over any non whitespace, returning true if it skipped any
// runes.
func (r *Reader) NotSpace() bool {
	return r.While(0, func(c rune) bool { return !unicode.IsSpace(c) }) > 0
}

// AlphaNumeric skips over any letters, digits or underscores, returning true
// if it skipped any runes.
func (r *Reader) AlphaNumeric() bool {
	return r.While(0, func(c rune) bool {
		return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c)
	}) > 0
}

// GuessNextToken attempts to do a general purpose consume of a single
// arbitrary token from the stream. It is used by error handlers to indicate
// where the error occurred. It guarantees that if the stream is not finished,
// it will consume at least one rune.
func (r *Reader) GuessNextToken() cst.Token {
	switch {
	case r.cursor != r.offset:
	case r.AlphaNumeric():
	case r.NotSpace():
	default:
		r.Advance()
	}
	return r.Consume()
}
