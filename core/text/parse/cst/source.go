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

package cst

import "path/filepath"

// Source represents a source file to parse.
type Source struct {
	Filename string // The path of the file the runes were read from.
	Runes    []rune // The full content of the file.
}

// NewSource returns a Source holding the runes of data.
func NewSource(filename, data string) *Source {
	return &Source{Filename: filename, Runes: []rune(data)}
}

// RelativeFilename returns the filename relative to the working directory,
// falling back to the filename as given when no relative path exists.
func (s *Source) RelativeFilename() string {
	if s == nil || s.Filename == "" {
		return "-"
	}
	if !filepath.IsAbs(s.Filename) {
		return s.Filename
	}
	if wd, err := filepath.Abs("."); err == nil {
		if rel, err := filepath.Rel(wd, s.Filename); err == nil {
			return rel
		}
	}
	return s.Filename
}
