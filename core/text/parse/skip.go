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

import "github.com/toddobryan/pyracket/core/text/parse/cst"

// SkipMode is the type for the enumeration of skipping modes.
type SkipMode int

const (
	// SkipPrefix is the mode used to skip the fragments that precede a node.
	// Everything skippable is consumed.
	SkipPrefix SkipMode = iota
	// SkipSuffix is the mode used to skip the fragments that trail a node.
	// Skipping stops after the end of the current line.
	SkipSuffix
)

// Skip is the function used to skip runs of text that are not part of the
// grammar, such as whitespace and comments. Each skipped run is returned as
// a separate fragment.
type Skip func(*Parser, SkipMode) cst.Separator

// NoSkip is a Skip that never skips anything.
func NoSkip(*Parser, SkipMode) cst.Separator { return nil }

// NewSkip builds a Skip function for the common case of whitespace plus line
// and block comments. Any of the comment markers may be empty to disable that
// form of comment.
func NewSkip(line, blockstart, blockend string) Skip {
	return func(p *Parser, mode SkipMode) cst.Separator {
		p.Rollback()
		var sep cst.Separator
		for !p.IsEOF() {
			switch {
			case p.EOL():
				sep = append(sep, p.Consume())
				if mode == SkipSuffix {
					return sep
				}
			case p.Space():
				sep = append(sep, p.Consume())
			case line != "" && p.String(line):
				p.SeekRune('\n')
				sep = append(sep, p.Consume())
			case blockstart != "" && p.String(blockstart):
				for !p.String(blockend) {
					if p.IsEOF() {
						p.Error("Unterminated block comment")
						return sep
					}
					p.Advance()
				}
				sep = append(sep, p.Consume())
			default:
				return sep
			}
		}
		return sep
	}
}
