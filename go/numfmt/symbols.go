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
	"sort"
	"strings"
	"unicode/utf8"
)

// Symbol role keys accepted in the options map, named per the F&O
// decimal-format property names.
const (
	SymDecimalSeparator  = "decimal-separator"
	SymGroupingSeparator = "grouping-separator"
	SymExponentSeparator = "exponent-separator"
	SymInfinity          = "infinity"
	SymMinusSign         = "minus-sign"
	SymNaN               = "NaN"
	SymPercent           = "percent"
	SymPerMille          = "per-mille"
	SymZeroDigit         = "zero-digit"
	SymDigit             = "digit"
	SymPatternSeparator  = "pattern-separator"
)

var defaultSymbols = map[string]string{
	SymDecimalSeparator:  ".",
	SymGroupingSeparator: ",",
	SymExponentSeparator: "e",
	SymInfinity:          "Infinity",
	SymMinusSign:         "-",
	SymNaN:               "NaN",
	SymPercent:           "%",
	SymPerMille:          "‰",
	SymZeroDigit:         "0",
	SymDigit:             "#",
	SymPatternSeparator:  ";",
}

// symbolTable is the resolved symbol set for one formatting call. The
// single-character roles are stored as runes so that all picture scanning
// is code-point based; zeroDigit anchors a contiguous ten-code-point digit
// family (zeroDigit..zeroDigit+9).
type symbolTable struct {
	decimalSeparator  rune
	groupingSeparator rune
	exponentSeparator rune
	minusSign         rune
	percent           rune
	perMille          rune
	zeroDigit         rune
	digit             rune
	patternSeparator  rune
	infinity          string
	nan               string

	// merged keeps the full override map, including unrecognized keys,
	// which pass through without rejection.
	merged map[string]string
}

// resolveSymbols merges the caller's overrides onto the defaults. Unknown
// keys are carried along verbatim. The result is immutable after return.
func resolveSymbols(options map[string]string) *symbolTable {
	merged := make(map[string]string, len(defaultSymbols)+len(options))
	for k, v := range defaultSymbols {
		merged[k] = v
	}
	for k, v := range options {
		merged[k] = v
	}
	return &symbolTable{
		decimalSeparator:  firstRune(merged[SymDecimalSeparator]),
		groupingSeparator: firstRune(merged[SymGroupingSeparator]),
		exponentSeparator: firstRune(merged[SymExponentSeparator]),
		minusSign:         firstRune(merged[SymMinusSign]),
		percent:           firstRune(merged[SymPercent]),
		perMille:          firstRune(merged[SymPerMille]),
		zeroDigit:         firstRune(merged[SymZeroDigit]),
		digit:             firstRune(merged[SymDigit]),
		patternSeparator:  firstRune(merged[SymPatternSeparator]),
		infinity:          merged[SymInfinity],
		nan:               merged[SymNaN],
		merged:            merged,
	}
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// isFamilyDigit reports whether r belongs to the digit family.
func (st *symbolTable) isFamilyDigit(r rune) bool {
	return r >= st.zeroDigit && r <= st.zeroDigit+9
}

// isActive reports whether r belongs to the active character set: the
// digit family plus the five structural formatting characters.
func (st *symbolTable) isActive(r rune) bool {
	if st.isFamilyDigit(r) {
		return true
	}
	switch r {
	case st.decimalSeparator, st.exponentSeparator, st.groupingSeparator, st.digit, st.patternSeparator:
		return true
	}
	return false
}

// familyDigit maps an ASCII digit to the corresponding code point in the
// digit family. The family is contiguous, so this is an offset add.
func (st *symbolTable) familyDigit(ascii rune) rune {
	return st.zeroDigit + (ascii - '0')
}

// cacheKey produces a canonical key for the (picture, symbol table) pair.
// Only the eleven named roles participate: unknown pass-through keys do
// not alter formatting behavior.
func (st *symbolTable) cacheKey(picture string) string {
	roles := make([]string, 0, len(defaultSymbols))
	for k := range defaultSymbols {
		roles = append(roles, k)
	}
	sort.Strings(roles)
	var sb strings.Builder
	sb.WriteString(picture)
	for _, role := range roles {
		sb.WriteByte(0)
		sb.WriteString(st.merged[role])
	}
	return sb.String()
}
