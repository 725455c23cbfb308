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

package builder

import (
	"fmt"

	"github.com/toddobryan/pyracket/rkt/ast"
)

// ErrorKind identifies why a literal could not be constructed.
type ErrorKind int

const (
	// ZeroDenominator is a rational whose denominator is zero.
	ZeroDenominator ErrorKind = iota
	// InvalidDigits is a digit string that is empty or not in its radix.
	InvalidDigits
	// InvalidToken is a token the builder has no meaning for.
	InvalidToken
	// ExponentRange is an exponent too large to hold.
	ExponentRange
)

func (k ErrorKind) String() string {
	switch k {
	case ZeroDenominator:
		return "ZeroDenominator"
	case InvalidDigits:
		return "InvalidDigits"
	case InvalidToken:
		return "InvalidToken"
	case ExponentRange:
		return "ExponentRange"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ConstructionError is returned when well formed source text denotes a value
// that cannot be built, such as a rational with a zero denominator.
type ConstructionError struct {
	Span  ast.Span
	Kind  ErrorKind
	Cause error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%v at %v: %v", e.Kind, e.Span, e.Cause)
}

// Unwrap returns the underlying error.
func (e *ConstructionError) Unwrap() error { return e.Cause }

// InvalidEscapeError is returned for a string escape that does not decode.
type InvalidEscapeError struct {
	Span   ast.Span
	Lexeme string
	Cause  error
}

func (e *InvalidEscapeError) Error() string {
	return fmt.Sprintf("invalid escape %s at %v", e.Lexeme, e.Span)
}

// Unwrap returns the underlying error.
func (e *InvalidEscapeError) Unwrap() error { return e.Cause }
