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

package numbers

import "math/big"

// Sign is the sign of a numeric literal. An absent sign is Positive.
type Sign int

const (
	Positive Sign = iota
	Negative
)

// SignOf returns the sign of x. Zero is Positive.
func SignOf(x *big.Int) Sign {
	if x.Sign() < 0 {
		return Negative
	}
	return Positive
}

// SignFor returns the sign spelled by c, which must be '+' or '-'.
func SignFor(c rune) Sign {
	if c == '-' {
		return Negative
	}
	return Positive
}

// Negate returns the opposite sign.
func (s Sign) Negate() Sign {
	if s == Negative {
		return Positive
	}
	return Negative
}

// Apply returns a copy of x, negated if s is Negative.
func (s Sign) Apply(x *big.Int) *big.Int {
	out := new(big.Int).Set(x)
	if s == Negative {
		out.Neg(out)
	}
	return out
}

func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return "+"
}
