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

// pictureParts is the structural decomposition of one sub-picture.
// It is derived once from the raw sub-picture text and never mutated.
type pictureParts struct {
	subpicture     []rune
	prefix         []rune
	suffix         []rune
	activePart     []rune
	mantissaPart   []rune
	exponentPart   []rune
	hasExponent    bool
	integerPart    []rune
	fractionalPart []rune
}

// splitPicture breaks the picture on the pattern separator into one or two
// sub-pictures and decomposes each. More than two sub-pictures is D3080.
func splitPicture(picture string, st *symbolTable) ([]pictureParts, error) {
	subs := splitRunes([]rune(picture), st.patternSeparator)
	if len(subs) > 2 {
		return nil, newPictureError(CodeTooManySubPictures, picture)
	}
	parts := make([]pictureParts, len(subs))
	for i, sub := range subs {
		parts[i] = splitParts(sub, st)
	}
	return parts, nil
}

// splitParts decomposes a single sub-picture into prefix, suffix, active
// part, mantissa, exponent and integer/fractional parts.
func splitParts(sub []rune, st *symbolTable) pictureParts {
	p := pictureParts{subpicture: sub}

	// The prefix is the longest leading run of characters outside the
	// active set. The exponent separator never terminates the scan, so a
	// leading "e" stays in the prefix.
	prefixEnd := len(sub)
	for i, r := range sub {
		if st.isActive(r) && r != st.exponentSeparator {
			prefixEnd = i
			break
		}
	}
	suffixStart := prefixEnd
	for i := len(sub) - 1; i >= 0; i-- {
		if st.isActive(sub[i]) && sub[i] != st.exponentSeparator {
			suffixStart = i + 1
			break
		}
	}
	p.prefix = sub[:prefixEnd]
	p.suffix = sub[suffixStart:]
	p.activePart = sub[prefixEnd:suffixStart]

	// Mantissa/exponent split: the exponent separator counts only when it
	// sits at or after the prefix boundary and before the suffix.
	expPos := indexOfFrom(sub, st.exponentSeparator, prefixEnd)
	if expPos == -1 || expPos > suffixStart {
		p.mantissaPart = p.activePart
	} else {
		p.mantissaPart = sub[prefixEnd:expPos]
		p.hasExponent = true
		if expPos+1 <= suffixStart {
			p.exponentPart = sub[expPos+1 : suffixStart]
		}
	}

	// Integer/fractional split. When the mantissa has no decimal
	// separator, the fractional part falls back to the suffix text. The
	// fallback is harmless: a suffix can never contain digits or
	// placeholders.
	decPos := indexOf(p.mantissaPart, st.decimalSeparator)
	if decPos == -1 {
		p.integerPart = p.mantissaPart
		p.fractionalPart = p.suffix
	} else {
		p.integerPart = p.mantissaPart[:decPos]
		p.fractionalPart = p.mantissaPart[decPos+1:]
	}
	return p
}

func splitRunes(rs []rune, sep rune) [][]rune {
	var out [][]rune
	start := 0
	for i, r := range rs {
		if r == sep {
			out = append(out, rs[start:i])
			start = i + 1
		}
	}
	return append(out, rs[start:])
}

func indexOf(rs []rune, r rune) int {
	return indexOfFrom(rs, r, 0)
}

func indexOfFrom(rs []rune, r rune, from int) int {
	for i := from; i < len(rs); i++ {
		if rs[i] == r {
			return i
		}
	}
	return -1
}

func lastIndexOf(rs []rune, r rune) int {
	for i := len(rs) - 1; i >= 0; i-- {
		if rs[i] == r {
			return i
		}
	}
	return -1
}
