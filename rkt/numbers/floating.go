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
	"math"
	"math/big"
	"strings"
	"sync"

	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"
)

// FloatingPoint is an exact number written with a radix point or an exponent.
// Its value is Sign × Digits × Radix^Exponent, where Digits holds the digits
// of the integer and fractional parts with the point removed.
type FloatingPoint struct {
	Base     Radix
	Sign     Sign
	Digits   string
	Exponent Integer

	dec *decimal
}

// decimal is the write-once cell holding the value computed by Dec.
type decimal struct {
	once  sync.Once
	value *apd.Decimal
	err   error
}

// NewFloatingPoint returns the floating point number s × digits × r^exponent.
func NewFloatingPoint(r Radix, s Sign, digits string, exponent Integer) (FloatingPoint, error) {
	if _, err := parseDigits(r, digits); err != nil {
		return FloatingPoint{}, errors.Wrapf(err, "floating point digits %q in %v", digits, r)
	}
	if exponent.Value == nil {
		exponent = NewInteger(r, 0)
	}
	return FloatingPoint{
		Base:     r,
		Sign:     s,
		Digits:   digits,
		Exponent: Integer{Base: exponent.Base, Value: new(big.Int).Set(exponent.Value)},
		dec:      &decimal{},
	}, nil
}

// Radix returns the radix the number was written in.
func (f FloatingPoint) Radix() Radix { return f.Base }

// Negate returns f with the opposite sign.
func (f FloatingPoint) Negate() Real { return f.Neg() }

// Neg returns f with the opposite sign, as a FloatingPoint.
func (f FloatingPoint) Neg() FloatingPoint {
	out := f
	out.Sign = f.Sign.Negate()
	out.dec = &decimal{}
	return out
}

// Equal returns true if both numbers have the same radix, sign, digits and
// exponent.
func (f FloatingPoint) Equal(o FloatingPoint) bool {
	return f.Base == o.Base &&
		f.Sign == o.Sign &&
		f.Digits == o.Digits &&
		f.Exponent.Equal(o.Exponent)
}

// Dec returns the exact decimal value of f. The value is computed the first
// time it is asked for. The caller owns the returned decimal.
func (f FloatingPoint) Dec() (*apd.Decimal, error) {
	if f.dec == nil {
		return f.decimal()
	}
	f.dec.once.Do(func() {
		f.dec.value, f.dec.err = f.decimal()
	})
	if f.dec.err != nil {
		return nil, f.dec.err
	}
	return new(apd.Decimal).Set(f.dec.value), nil
}

// decimal computes the value of f. Every power of two has a finite decimal
// expansion, 2^-k = 5^k × 10^-k, so a negative exponent in radix 2, 8 or 16 is
// rewritten as a power of five scaled by a power of ten. The multiplication
// runs at a precision large enough to hold every digit of the product, so it
// is exact.
func (f FloatingPoint) decimal() (*apd.Decimal, error) {
	coeff, err := parseDigits(f.Base, f.Digits)
	if err != nil {
		return nil, err
	}
	if f.Exponent.Value == nil || !f.Exponent.Value.IsInt64() {
		return nil, ErrExponentRange
	}
	exp := f.Exponent.Value.Int64()
	if exp > apd.MaxExponent || exp < apd.MinExponent {
		return nil, ErrExponentRange
	}

	scale := big.NewInt(1)
	var scaleExp int64
	switch {
	case f.Base == Decimal:
		scaleExp = exp
	case exp >= 0:
		scale.Lsh(scale, uint(exp)*f.Base.log2())
	default:
		k := -exp * int64(f.Base.log2())
		scale.Exp(big.NewInt(5), big.NewInt(k), nil)
		scaleExp = -k
	}
	if scaleExp < math.MinInt32 || scaleExp > math.MaxInt32 {
		return nil, ErrExponentRange
	}

	x := apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(coeff), 0)
	y := apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(scale), int32(scaleExp))
	precision := len(f.Digits)
	if p := decimalDigits(coeff) + decimalDigits(scale); p > precision {
		precision = p
	}
	ctx := apd.BaseContext.WithPrecision(uint32(precision))
	out := new(apd.Decimal)
	cond, err := ctx.Mul(out, x, y)
	if err != nil {
		return nil, errors.Wrapf(ErrExponentRange, "%v", err)
	}
	if cond.Inexact() {
		return nil, errors.Errorf("inexact decimal for %v", f)
	}
	if f.Sign == Negative {
		out.Negative = !out.IsZero()
	}
	return out, nil
}

func decimalDigits(x *big.Int) int {
	return len(new(big.Int).Abs(x).Text(10))
}

func (f FloatingPoint) String() string { return f.Base.Prefix() + f.body() }

// body prints the digits with the point placed by the exponent when the point
// falls within the digits, and with an explicit exponent otherwise.
func (f FloatingPoint) body() string {
	b := strings.Builder{}
	if f.Sign == Negative {
		b.WriteString("-")
	}
	n := len(f.Digits)
	exp := f.Exponent.Value
	if exp != nil && exp.Sign() <= 0 && exp.IsInt64() && -exp.Int64() <= int64(n) {
		point := n + int(exp.Int64())
		b.WriteString(f.Digits[:point])
		b.WriteString(".")
		b.WriteString(f.Digits[point:])
		return b.String()
	}
	b.WriteString(f.Digits)
	b.WriteString(".")
	b.WriteByte(f.Base.ExponentMarkers()[0])
	b.WriteString(f.Exponent.body())
	return b.String()
}
