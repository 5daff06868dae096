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

package datefmt

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatInteger renders value according to an fn:format-integer picture:
// a decimal digit pattern with optional grouping ("#,##0"), alphabetic
// sequences ("a", "A"), roman numerals ("i", "I") or English words ("w",
// "W", "Ww"), optionally followed by ";o" for ordinal forms.
func FormatInteger(value int64, picture string) (string, error) {
	if picture == "" {
		return "", fmt.Errorf("datefmt: empty integer picture")
	}
	primary := picture
	ordinal := false
	if i := strings.LastIndexByte(picture, ';'); i != -1 {
		primary = picture[:i]
		switch mod := picture[i+1:]; {
		case strings.HasPrefix(mod, "o"):
			ordinal = true
		case mod == "" || strings.HasPrefix(mod, "c"):
		default:
			return "", fmt.Errorf("datefmt: unsupported format modifier %q", mod)
		}
	}

	switch primary {
	case "A":
		if value >= 1 {
			return alphaSequence(value, 'A'), nil
		}
	case "a":
		if value >= 1 {
			return alphaSequence(value, 'a'), nil
		}
	case "I":
		if value >= 1 && value <= 4999 {
			return romanNumeral(value), nil
		}
	case "i":
		if value >= 1 && value <= 4999 {
			return strings.ToLower(romanNumeral(value)), nil
		}
	case "w":
		return numberWords(value, ordinal), nil
	case "W":
		return strings.ToUpper(numberWords(value, ordinal)), nil
	case "Ww":
		return titleWords(numberWords(value, ordinal)), nil
	}
	return decimalPattern(value, primary, ordinal)
}

// decimalPattern renders value by a digit pattern: '0'-'9' are mandatory
// digit positions, '#' optional ones, anything else a grouping separator.
func decimalPattern(value int64, pattern string, ordinal bool) (string, error) {
	mandatory := 0
	type group struct {
		sep string
		pos int // digit count to the right of the separator
	}
	var groups []group
	digitsSeen := 0
	runes := []rune(pattern)
	for i := len(runes) - 1; i >= 0; i-- {
		r := runes[i]
		switch {
		case r >= '0' && r <= '9':
			mandatory++
			digitsSeen++
		case r == '#':
			digitsSeen++
		default:
			if digitsSeen == 0 {
				return "", fmt.Errorf("datefmt: integer picture %q ends with a separator", pattern)
			}
			groups = append(groups, group{sep: string(r), pos: digitsSeen})
		}
	}
	if digitsSeen == 0 {
		return "", fmt.Errorf("datefmt: integer picture %q has no digit positions", pattern)
	}

	neg := value < 0
	abs := value
	if neg {
		abs = -abs
	}
	digits := strconv.FormatInt(abs, 10)
	for len(digits) < mandatory {
		digits = "0" + digits
	}

	// Regular grouping repeats past the leftmost separator; irregular
	// grouping applies the recorded positions only.
	interval := regularGroupInterval(groups, func(g group) int { return g.pos })
	bySep := make(map[int]string, len(groups))
	for _, g := range groups {
		bySep[g.pos] = g.sep
	}
	var sb strings.Builder
	for i := 0; i < len(digits); i++ {
		if right := len(digits) - i; i > 0 {
			if interval > 0 && right%interval == 0 {
				sb.WriteString(groups[0].sep)
			} else if sep, ok := bySep[right]; ok && interval == 0 {
				sb.WriteString(sep)
			}
		}
		sb.WriteByte(digits[i])
	}
	digits = sb.String()

	if ordinal {
		digits += ordinalSuffix(abs)
	}
	if neg {
		digits = "-" + digits
	}
	return digits, nil
}

func regularGroupInterval[T any](groups []T, pos func(T) int) int {
	if len(groups) == 0 {
		return 0
	}
	first := pos(groups[0])
	for i, g := range groups {
		if pos(g) != (i+1)*first {
			return 0
		}
	}
	return first
}

func ordinalSuffix(n int64) string {
	if d := n % 100; d >= 11 && d <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// alphaSequence is the bijective base-26 sequence a, b, .., z, aa, ab...
func alphaSequence(n int64, base rune) string {
	var out []rune
	for n > 0 {
		n--
		out = append([]rune{base + rune(n%26)}, out...)
		n /= 26
	}
	return string(out)
}

var romanPairs = []struct {
	value int64
	sym   string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

func romanNumeral(n int64) string {
	var sb strings.Builder
	for _, p := range romanPairs {
		for n >= p.value {
			sb.WriteString(p.sym)
			n -= p.value
		}
	}
	return sb.String()
}

var wordUnits = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven",
	"eight", "nine", "ten", "eleven", "twelve", "thirteen", "fourteen",
	"fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
}

var wordTens = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety",
}

var wordScales = []struct {
	value int64
	name  string
}{
	{1_000_000_000_000, "trillion"},
	{1_000_000_000, "billion"},
	{1_000_000, "million"},
	{1_000, "thousand"},
	{100, "hundred"},
}

var ordinalWords = map[string]string{
	"zero": "zeroth", "one": "first", "two": "second", "three": "third",
	"five": "fifth", "eight": "eighth", "nine": "ninth", "twelve": "twelfth",
}

func numberWords(n int64, ordinal bool) string {
	s := cardinalWords(n)
	if !ordinal {
		return s
	}
	// Only the final word takes the ordinal form.
	cut := strings.LastIndexAny(s, " -")
	head, last := "", s
	if cut != -1 {
		head, last = s[:cut+1], s[cut+1:]
	}
	switch {
	case ordinalWords[last] != "":
		last = ordinalWords[last]
	case strings.HasSuffix(last, "y"):
		last = last[:len(last)-1] + "ieth"
	default:
		last += "th"
	}
	return head + last
}

func cardinalWords(n int64) string {
	if n < 0 {
		return "minus " + cardinalWords(-n)
	}
	if n < 20 {
		return wordUnits[n]
	}
	if n < 100 {
		s := wordTens[n/10]
		if n%10 != 0 {
			s += "-" + wordUnits[n%10]
		}
		return s
	}
	for _, scale := range wordScales {
		if n < scale.value {
			continue
		}
		s := cardinalWords(n/scale.value) + " " + scale.name
		if rem := n % scale.value; rem != 0 {
			joint := " "
			if rem < 100 {
				joint = " and "
			}
			s += joint + cardinalWords(rem)
		}
		return s
	}
	return wordUnits[0]
}

func titleWords(s string) string {
	prev := rune(' ')
	return strings.Map(func(r rune) rune {
		out := r
		if (prev == ' ' || prev == '-') && r >= 'a' && r <= 'z' {
			out = r - 'a' + 'A'
		}
		prev = r
		return out
	}, s)
}
