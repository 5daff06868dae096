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

// validatePicture runs the F&O §4.7.3 structural checks against one
// sub-picture. Every check writes to the same error slot, so a sub-picture
// violating several rules reports the last-checked violation. That
// last-failure-wins behavior is deliberate and covered by tests; do not
// reorder the checks.
func validatePicture(p *pictureParts, st *symbolTable) error {
	var code Code
	sub := p.subpicture

	decimalPos := indexOf(sub, st.decimalSeparator)
	if decimalPos != lastIndexOf(sub, st.decimalSeparator) {
		code = CodeDuplicateDecimal
	}
	if indexOf(sub, st.percent) != lastIndexOf(sub, st.percent) {
		code = CodeDuplicatePercent
	}
	if indexOf(sub, st.perMille) != lastIndexOf(sub, st.perMille) {
		code = CodeDuplicatePerMille
	}
	if indexOf(sub, st.percent) != -1 && indexOf(sub, st.perMille) != -1 {
		code = CodePercentAndPerMille
	}

	hasDigit := false
	for _, r := range p.mantissaPart {
		if st.isFamilyDigit(r) || r == st.digit {
			hasDigit = true
			break
		}
	}
	if !hasDigit {
		code = CodeNoDigitInMantissa
	}

	for _, r := range p.activePart {
		if !st.isActive(r) {
			code = CodePassiveInActivePart
			break
		}
	}

	if decimalPos != -1 {
		if (decimalPos > 0 && sub[decimalPos-1] == st.groupingSeparator) ||
			(decimalPos+1 < len(sub) && sub[decimalPos+1] == st.groupingSeparator) {
			code = CodeGroupingAdjacentDecimal
		}
	} else if n := len(p.integerPart); n > 0 && p.integerPart[n-1] == st.groupingSeparator {
		code = CodeGroupingAtEndOfInteger
	}

	for i := 0; i+1 < len(sub); i++ {
		if sub[i] == st.groupingSeparator && sub[i+1] == st.groupingSeparator {
			code = CodeConsecutiveGrouping
			break
		}
	}

	// Digit placeholders must be leftmost in the integer part and
	// rightmost in the fractional part: a digit followed by a placeholder
	// is invalid before the decimal point, a placeholder followed by a
	// digit invalid after it.
	if i := lastIndexOf(p.integerPart, st.digit); i != -1 {
		for _, r := range p.integerPart[:i] {
			if st.isFamilyDigit(r) {
				code = CodeMisplacedIntegerDigit
				break
			}
		}
	}
	if i := indexOf(p.fractionalPart, st.digit); i != -1 {
		for _, r := range p.fractionalPart[i+1:] {
			if st.isFamilyDigit(r) {
				code = CodeMisplacedFractionalDigit
				break
			}
		}
	}

	if p.hasExponent {
		if indexOf(p.exponentPart, st.percent) != -1 || indexOf(p.exponentPart, st.perMille) != -1 {
			code = CodePercentInExponent
		}
		if len(p.exponentPart) == 0 {
			code = CodeBadExponent
		} else {
			for _, r := range p.exponentPart {
				if !st.isFamilyDigit(r) {
					code = CodeBadExponent
					break
				}
			}
		}
	}

	if code != CodeNone {
		return newPictureError(code, string(sub))
	}
	return nil
}
