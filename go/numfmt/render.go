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

import (
	"math"
	"slices"
	"strconv"

	"github.com/numpic/numpic/go/mathutil"
)

// renderNumber applies a formatting descriptor to a finite value. The
// steps run in a fixed order (F&O §4.7.4); once validation has passed
// there is no failure path.
func renderNumber(value float64, positive, negative *analyzedPicture, st *symbolTable) string {
	// Step 1: pick the sub-picture by sign. The digits always render from
	// the magnitude; the sign comes from the descriptor's prefix.
	pic := positive
	if value < 0 {
		pic = negative
		value = -value
	}

	// Step 2: percent and per-mille scaling.
	adjusted := value
	switch {
	case pic.hasPercent:
		adjusted = value * 100
	case pic.hasPerMille:
		adjusted = value * 1000
	}

	// Step 3: with an exponent picture, normalize the mantissa into
	// [10^(scalingFactor-1), 10^scalingFactor) counting the exponent
	// delta. Zero never enters the loops.
	mantissa := adjusted
	exponent := 0
	if pic.minimumExponentDigits > 0 && mantissa != 0 {
		maxMantissa := math.Pow(10, float64(pic.scalingFactor))
		minMantissa := math.Pow(10, float64(pic.scalingFactor-1))
		for mantissa < minMantissa {
			mantissa *= 10
			exponent--
		}
		for mantissa >= maxMantissa {
			mantissa /= 10
			exponent++
		}
	}

	// Steps 4 and 5: round to the fractional digit budget and render with
	// exactly that many fractional digits, remapped to the digit family.
	rounded := mathutil.Round(mantissa, pic.maximumFractionalDigits)
	digits := []rune(strconv.FormatFloat(math.Abs(rounded), 'f', pic.maximumFractionalDigits, 64))
	if st.zeroDigit != '0' {
		for i, r := range digits {
			if r >= '0' && r <= '9' {
				digits[i] = st.familyDigit(r)
			}
		}
	}

	// Step 6: guarantee a decimal point, then strip leading and trailing
	// zeros. The point itself is never stripped.
	if i := slices.Index(digits, '.'); i == -1 {
		digits = append(digits, st.decimalSeparator)
	} else {
		digits[i] = st.decimalSeparator
	}
	for len(digits) > 0 && digits[0] == st.zeroDigit {
		digits = digits[1:]
	}
	for len(digits) > 0 && digits[len(digits)-1] == st.zeroDigit {
		digits = digits[:len(digits)-1]
	}

	// Step 7: pad to the minimum digit counts on both sides.
	decimalPos := indexOf(digits, st.decimalSeparator)
	if padLeft := pic.minimumIntegerDigits - decimalPos; padLeft > 0 {
		digits = append(repeatRune(st.zeroDigit, padLeft), digits...)
		decimalPos += padLeft
	}
	if padRight := pic.minimumFractionalDigits - (len(digits) - decimalPos - 1); padRight > 0 {
		digits = append(digits, repeatRune(st.zeroDigit, padRight)...)
	}

	// Step 8: grouping separators, regular interval or explicit
	// positions, then the fractional positions.
	if pic.regularGroupingInterval > 0 {
		groupCount := (decimalPos - 1) / pic.regularGroupingInterval
		for g := 1; g <= groupCount; g++ {
			digits = slices.Insert(digits, decimalPos-g*pic.regularGroupingInterval, st.groupingSeparator)
		}
	} else {
		// A recorded position past the rendered integer digits has no
		// digit pair to separate.
		for _, pos := range pic.integerGroupingPositions {
			if decimalPos-pos <= 0 {
				continue
			}
			digits = slices.Insert(digits, decimalPos-pos, st.groupingSeparator)
			decimalPos++
		}
	}
	decimalPos = indexOf(digits, st.decimalSeparator)
	inserted := 0
	for _, pos := range pic.fractionalGroupingPositions {
		// Positions at or past the rendered fraction are skipped: a
		// separator never trails the digits.
		idx := decimalPos + pos + inserted + 1
		if idx >= len(digits) {
			continue
		}
		digits = slices.Insert(digits, idx, st.groupingSeparator)
		inserted++
	}

	// Step 9: drop the trailing decimal point, which survives only when
	// the sub-picture has a decimal separator with mandatory fractional
	// digits after it.
	if n := len(digits); n > 0 && digits[n-1] == st.decimalSeparator &&
		(!pic.hasDecimalSeparator || pic.minimumFractionalDigits == 0) {
		digits = digits[:n-1]
	}

	// Step 10: exponent suffix, zero-padded in the digit family with a
	// minus sign for negative deltas.
	if pic.hasExponent {
		expDigits := []rune(strconv.Itoa(exponent))
		if exponent < 0 {
			expDigits = expDigits[1:]
		}
		if st.zeroDigit != '0' {
			for i, r := range expDigits {
				expDigits[i] = st.familyDigit(r)
			}
		}
		if pad := pic.minimumExponentDigits - len(expDigits); pad > 0 {
			expDigits = append(repeatRune(st.zeroDigit, pad), expDigits...)
		}
		digits = append(digits, st.exponentSeparator)
		if exponent < 0 {
			digits = append(digits, st.minusSign)
		}
		digits = append(digits, expDigits...)
	}

	// Step 11: literal prefix and suffix.
	return pic.prefix + string(digits) + pic.suffix
}

func repeatRune(r rune, n int) []rune {
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return out
}
