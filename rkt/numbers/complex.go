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

import "strings"

// Complex is an exact complex number with exact real parts.
type Complex struct {
	Real      Real
	Imaginary Real
}

// Radix returns the radix of the real part.
func (c Complex) Radix() Radix {
	if c.Real == nil {
		return Decimal
	}
	return c.Real.Radix()
}

// Equal returns true if both parts are Equal.
func (c Complex) Equal(o Complex) bool {
	return Equal(c.Real, o.Real) && Equal(c.Imaginary, o.Imaginary)
}

func (c Complex) String() string {
	b := strings.Builder{}
	b.WriteString(c.Radix().Prefix())
	if c.Real != nil {
		b.WriteString(c.Real.body())
	}
	if c.Imaginary != nil {
		imag := c.Imaginary.body()
		if !strings.HasPrefix(imag, "-") {
			b.WriteString("+")
		}
		b.WriteString(imag)
	}
	b.WriteString("i")
	return b.String()
}
