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

import (
	"math/big"

	"github.com/pkg/errors"
)

// Integer is an exact integer. The sign is held in Value.
type Integer struct {
	Base  Radix
	Value *big.Int
}

// NewInteger returns the integer v written in radix r.
func NewInteger(r Radix, v int64) Integer {
	return Integer{Base: r, Value: big.NewInt(v)}
}

// ParseInteger parses the unsigned digit string digits in radix r, applying
// sign s.
func ParseInteger(r Radix, s Sign, digits string) (Integer, error) {
	v, err := parseDigits(r, digits)
	if err != nil {
		return Integer{}, errors.Wrapf(err, "integer %q in %v", digits, r)
	}
	if s == Negative {
		v.Neg(v)
	}
	return Integer{Base: r, Value: v}, nil
}

// Radix returns the radix the integer was written in.
func (i Integer) Radix() Radix { return i.Base }

// Negate returns -i.
func (i Integer) Negate() Real { return i.Neg() }

// Neg returns -i as an Integer.
func (i Integer) Neg() Integer {
	return Integer{Base: i.Base, Value: new(big.Int).Neg(i.Value)}
}

// Sign returns the sign of the integer.
func (i Integer) Sign() Sign { return SignOf(i.Value) }

// Equal returns true if both integers have the same radix and value.
func (i Integer) Equal(o Integer) bool {
	return i.Base == o.Base && bigEqual(i.Value, o.Value)
}

func (i Integer) String() string { return i.Base.Prefix() + i.body() }

func (i Integer) body() string {
	if i.Value == nil {
		return "0"
	}
	return i.Value.Text(int(i.Base))
}
