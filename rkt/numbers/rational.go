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

// Rational is an exact ratio of two integers. The denominator is always
// positive. The ratio is kept as written and never reduced.
type Rational struct {
	Base        Radix
	Numerator   *big.Int
	Denominator *big.Int
}

// NewRational returns the rational num/den written in radix r.
// A negative denominator moves its sign onto the numerator, and a zero
// denominator fails with ErrZeroDenominator.
func NewRational(r Radix, num, den *big.Int) (Rational, error) {
	if !r.Valid() {
		return Rational{}, ErrRadix
	}
	if den.Sign() == 0 {
		return Rational{}, errors.Wrapf(ErrZeroDenominator, "%v/%v", num.Text(int(r)), den.Text(int(r)))
	}
	n, d := new(big.Int).Set(num), new(big.Int).Set(den)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	return Rational{Base: r, Numerator: n, Denominator: d}, nil
}

// Radix returns the radix the rational was written in.
func (q Rational) Radix() Radix { return q.Base }

// Negate returns -q. Only the numerator changes sign.
func (q Rational) Negate() Real { return q.Neg() }

// Neg returns -q as a Rational.
func (q Rational) Neg() Rational {
	return Rational{
		Base:        q.Base,
		Numerator:   new(big.Int).Neg(q.Numerator),
		Denominator: new(big.Int).Set(q.Denominator),
	}
}

// Rat returns the mathematical value of q.
func (q Rational) Rat() *big.Rat {
	return new(big.Rat).SetFrac(q.Numerator, q.Denominator)
}

// Equal returns true if both rationals have the same radix, numerator and
// denominator. 1/2 and 2/4 are not Equal.
func (q Rational) Equal(o Rational) bool {
	return q.Base == o.Base &&
		bigEqual(q.Numerator, o.Numerator) &&
		bigEqual(q.Denominator, o.Denominator)
}

func (q Rational) String() string { return q.Base.Prefix() + q.body() }

func (q Rational) body() string {
	if q.Numerator == nil || q.Denominator == nil {
		return "0/1"
	}
	return q.Numerator.Text(int(q.Base)) + "/" + q.Denominator.Text(int(q.Base))
}
