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

import "strconv"

// InexactReal is an approximate real number. The literal syntax has no way to
// build one yet.
type InexactReal struct {
	Value float64
}

func (r InexactReal) String() string {
	return "#i" + strconv.FormatFloat(r.Value, 'g', -1, 64)
}

// InexactComplex is an approximate complex number. The literal syntax has no
// way to build one yet.
type InexactComplex struct {
	Real      float64
	Imaginary float64
}

func (c InexactComplex) String() string {
	imag := strconv.FormatFloat(c.Imaginary, 'g', -1, 64)
	if c.Imaginary >= 0 {
		imag = "+" + imag
	}
	return "#i" + strconv.FormatFloat(c.Real, 'g', -1, 64) + imag + "i"
}
