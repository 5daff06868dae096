/*
Copyright 2025 The Numpic Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package numfmt

import "slices"

// analyzedPicture is the formatting descriptor derived from a validated
// sub-picture. Grouping positions are digit distances from the decimal
// point. scalingFactor bounds the mantissa during exponent normalization.
type analyzedPicture struct {
	picture                     string
	prefix                      string
	suffix                      string
	integerGroupingPositions    []int
	regularGroupingInterval     int
	fractionalGroupingPositions []int
	minimumIntegerDigits        int
	minimumFractionalDigits     int
	maximumFractionalDigits     int
	minimumExponentDigits       int
	scalingFactor               int
	hasExponent                 bool
	hasDecimalSeparator         bool
	hasPercent                  bool
	hasPerMille                 bool
}

func analyzePicture(p *pictureParts, st *symbolTable) analyzedPicture {
	a := analyzedPicture{
		picture:                     string(p.subpicture),
		prefix:                      string(p.prefix),
		suffix:                      string(p.suffix),
		integerGroupingPositions:    st.groupingPositions(p.integerPart, false),
		fractionalGroupingPositions: st.groupingPositions(p.fractionalPart, true),
		hasExponent:                 p.hasExponent,
		hasDecimalSeparator:         indexOf(p.subpicture, st.decimalSeparator) != -1,
		hasPercent:                  indexOf(p.subpicture, st.percent) != -1,
		hasPerMille:                 indexOf(p.subpicture, st.perMille) != -1,
	}
	a.regularGroupingInterval = regularInterval(a.integerGroupingPositions)

	for _, r := range p.integerPart {
		if st.isFamilyDigit(r) {
			a.minimumIntegerDigits++
		}
	}
	for _, r := range p.fractionalPart {
		switch {
		case st.isFamilyDigit(r):
			a.minimumFractionalDigits++
			a.maximumFractionalDigits++
		case r == st.digit:
			a.maximumFractionalDigits++
		}
	}
	if p.hasExponent {
		for _, r := range p.exponentPart {
			if st.isFamilyDigit(r) {
				a.minimumExponentDigits++
			}
		}
	}

	// Degenerate pictures with no mandatory digits anywhere still have to
	// render at least one digit. With an exponent the guaranteed digit
	// goes to the fraction, otherwise to the integer part.
	if a.minimumIntegerDigits == 0 && a.maximumFractionalDigits == 0 {
		if p.hasExponent {
			a.minimumFractionalDigits = 1
			a.maximumFractionalDigits = 1
		} else {
			a.minimumIntegerDigits = 1
		}
	}
	// An exponent picture always shows one digit before the exponent when
	// the integer part holds only placeholders.
	if p.hasExponent && a.minimumIntegerDigits == 0 && indexOf(p.integerPart, st.digit) != -1 {
		a.minimumIntegerDigits = 1
	}
	if a.minimumIntegerDigits == 0 && a.minimumFractionalDigits == 0 {
		a.minimumFractionalDigits = 1
	}
	a.scalingFactor = a.minimumIntegerDigits
	return a
}

// groupingPositions records, for each grouping separator in part, the
// number of digit-eligible characters between it and the decimal point:
// to its right for the integer part, to its left for the fractional part.
func (st *symbolTable) groupingPositions(part []rune, toLeft bool) []int {
	var positions []int
	for i, r := range part {
		if r != st.groupingSeparator {
			continue
		}
		span := part[i:]
		if toLeft {
			span = part[:i]
		}
		n := 0
		for _, c := range span {
			if st.isFamilyDigit(c) || c == st.digit {
				n++
			}
		}
		positions = append(positions, n)
	}
	return positions
}

// regularInterval reports the constant grouping interval, or 0 when the
// positions are irregular. The interval is the GCD of all positions, and
// grouping is regular only if every multiple of it is itself a position.
func regularInterval(positions []int) int {
	if len(positions) == 0 {
		return 0
	}
	factor := positions[0]
	for _, p := range positions[1:] {
		factor = gcd(factor, p)
	}
	if factor == 0 {
		return 0
	}
	for i := 1; i <= len(positions); i++ {
		if !slices.Contains(positions, i*factor) {
			return 0
		}
	}
	return factor
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// clone returns a value copy sharing no backing arrays with a, so the
// synthesized negative descriptor can never alias the positive one.
func (a analyzedPicture) clone() analyzedPicture {
	c := a
	c.integerGroupingPositions = slices.Clone(a.integerGroupingPositions)
	c.fractionalGroupingPositions = slices.Clone(a.fractionalGroupingPositions)
	return c
}
