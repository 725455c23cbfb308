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
	"fmt"
	"strings"
)

// Kind selects the class of literal Parse accepts.
type Kind int

const (
	// Literal accepts any boolean, string or number.
	Literal Kind = iota
	// Boolean accepts #true, #false, #t and #f.
	Boolean
	// String accepts a double quoted string.
	String
	// Number accepts any exact number, and yields the most specific node.
	Number
	// ExactInteger accepts only an integer.
	ExactInteger
	// ExactRational accepts an integer or a ratio, and always yields a
	// rational. An integer has a denominator of 1.
	ExactRational
	// ExactFloatingPoint accepts only a number with a point or an exponent.
	ExactFloatingPoint
	// ExactComplex accepts only a number with an imaginary part.
	ExactComplex
)

var kindNames = []string{
	"literal",
	"boolean",
	"string",
	"number",
	"exact-integer",
	"exact-rational",
	"exact-floating-point",
	"exact-complex",
}

// Kinds returns every Kind, in order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Set implements flag.Value, selecting the kind by name.
func (k *Kind) Set(name string) error {
	for i, n := range kindNames {
		if strings.EqualFold(n, name) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown literal kind %q, want one of %s", name, strings.Join(kindNames, ", "))
}
