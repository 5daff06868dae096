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

// Package datefmt converts between millisecond timestamps and their
// textual forms driven by XPath-style date/time pictures such as
// "[Y0001]-[M01]-[D01]". Component markers live in square brackets;
// doubled brackets escape literals.
package datefmt

import (
	"fmt"
	"strings"
	"time"
)

// Millis returns the current time in milliseconds since the Unix epoch.
func Millis() int64 {
	return time.Now().UnixMilli()
}

// ToMillis parses an ISO 8601 timestamp into epoch milliseconds. Partial
// timestamps (date only, no zone) are accepted and read as UTC.
func ToMillis(iso string) (int64, error) {
	layouts := []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.UnixMilli(), nil
		}
	}
	return 0, fmt.Errorf("datefmt: cannot parse %q as an ISO 8601 timestamp", iso)
}

// FromMillis renders epoch milliseconds using the given picture. An empty
// picture produces the ISO 8601 form with millisecond precision. A nil
// location defaults to UTC.
func FromMillis(ms int64, picture string, loc *time.Location) (string, error) {
	if loc == nil {
		loc = time.UTC
	}
	t := time.UnixMilli(ms).In(loc)
	if picture == "" {
		picture = "[Y0001]-[M01]-[D01]T[H01]:[m01]:[s01].[f001][Z01:01]"
	}
	specs, err := compilePicture(picture)
	if err != nil {
		return "", err
	}
	ctx := &formatctx{t: t}
	var b []byte
	for _, s := range specs {
		b, err = s.format(ctx, b)
		if err != nil {
			return "", err
		}
	}
	return string(b), nil
}

// Spec renders one compiled picture component.
type Spec interface {
	format(ctx *formatctx, b []byte) ([]byte, error)
}

type formatctx struct {
	t time.Time
}

type verbatim struct {
	s string
}

func (v verbatim) format(_ *formatctx, b []byte) ([]byte, error) {
	return append(b, v.s...), nil
}

// field is a [..] marker: a component letter plus its presentation token
// and optional width limits.
type field struct {
	component rune
	name      nameForm
	digits    string // digit sub-picture for numeric presentation
	ordinal   bool   // trailing "o" modifier: 1st, 2nd, ...
	maxWidth  int    // truncates name forms, 0 for unlimited
}

type nameForm int

const (
	nameNone  nameForm = iota
	nameUpper          // N
	nameLower          // n
	nameTitle          // Nn
)

func compilePicture(picture string) ([]Spec, error) {
	var specs []Spec
	var literal []rune
	flushLiteral := func() {
		if len(literal) > 0 {
			specs = append(specs, verbatim{s: string(literal)})
			literal = literal[:0]
		}
	}
	runes := []rune(picture)
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; r {
		case '[':
			if i+1 < len(runes) && runes[i+1] == '[' {
				literal = append(literal, '[')
				i++
				continue
			}
			end := indexRuneFrom(runes, ']', i+1)
			if end == -1 {
				return nil, fmt.Errorf("datefmt: unclosed component marker in %q", picture)
			}
			flushLiteral()
			f, err := parseField(string(runes[i+1 : end]))
			if err != nil {
				return nil, err
			}
			specs = append(specs, f)
			i = end
		case ']':
			if i+1 < len(runes) && runes[i+1] == ']' {
				literal = append(literal, ']')
				i++
				continue
			}
			return nil, fmt.Errorf("datefmt: unmatched ']' in %q", picture)
		default:
			literal = append(literal, r)
		}
	}
	flushLiteral()
	return specs, nil
}

func parseField(body string) (*field, error) {
	// Whitespace inside a marker is insignificant.
	body = strings.Join(strings.Fields(body), "")
	if body == "" {
		return nil, fmt.Errorf("datefmt: empty component marker")
	}
	runes := []rune(body)
	f := &field{component: runes[0]}
	presentation := string(runes[1:])

	// A trailing ",min-max" clause bounds the rendered width.
	if comma := strings.LastIndexByte(presentation, ','); comma != -1 {
		widths := presentation[comma+1:]
		presentation = presentation[:comma]
		if dash := strings.IndexByte(widths, '-'); dash != -1 {
			widths = widths[dash+1:]
		}
		if widths != "" && widths != "*" {
			if _, err := fmt.Sscanf(widths, "%d", &f.maxWidth); err != nil {
				return nil, fmt.Errorf("datefmt: bad width modifier in [%s]", body)
			}
		}
	}

	if strings.HasSuffix(presentation, "o") {
		f.ordinal = true
		presentation = strings.TrimSuffix(presentation, "o")
	}
	switch presentation {
	case "N":
		f.name = nameUpper
	case "n":
		f.name = nameLower
	case "Nn":
		f.name = nameTitle
	default:
		f.digits = presentation
	}
	return f, nil
}

func (f *field) format(ctx *formatctx, b []byte) ([]byte, error) {
	if f.name != nameNone {
		s, err := f.nameValue(ctx)
		if err != nil {
			return nil, err
		}
		if f.maxWidth > 0 && len(s) > f.maxWidth {
			s = s[:f.maxWidth]
		}
		return append(b, s...), nil
	}
	n, err := f.numericValue(ctx)
	if err != nil {
		return nil, err
	}
	pic := f.digits
	if pic == "" {
		pic = "1"
	}
	if f.component == 'Z' || f.component == 'z' {
		return appendOffset(b, ctx.t, f.component == 'z', pic), nil
	}
	// Marker digit tokens ("0001", "01", "1") share the digit-pattern
	// syntax of FormatInteger.
	if f.ordinal {
		pic += ";o"
	}
	s, err := FormatInteger(n, pic)
	if err != nil {
		return nil, err
	}
	return append(b, s...), nil
}

func (f *field) nameValue(ctx *formatctx) (string, error) {
	var s string
	switch f.component {
	case 'M':
		s = ctx.t.Month().String()
	case 'F':
		s = ctx.t.Weekday().String()
	case 'P':
		s = "am"
		if ctx.t.Hour() >= 12 {
			s = "pm"
		}
	default:
		return "", fmt.Errorf("datefmt: component %q has no name form", f.component)
	}
	switch f.name {
	case nameUpper:
		s = strings.ToUpper(s)
	case nameLower:
		s = strings.ToLower(s)
	case nameTitle:
		s = titleWords(strings.ToLower(s))
	}
	return s, nil
}

func (f *field) numericValue(ctx *formatctx) (int64, error) {
	t := ctx.t
	switch f.component {
	case 'Y':
		return int64(t.Year()), nil
	case 'M':
		return int64(t.Month()), nil
	case 'D':
		return int64(t.Day()), nil
	case 'd':
		return int64(t.YearDay()), nil
	case 'F':
		return int64(t.Weekday()), nil
	case 'W':
		_, week := t.ISOWeek()
		return int64(week), nil
	case 'w':
		return int64((t.Day() + 6) / 7), nil
	case 'H':
		return int64(t.Hour()), nil
	case 'h':
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		return int64(h), nil
	case 'P':
		return 0, fmt.Errorf("datefmt: component 'P' requires a name presentation")
	case 'm':
		return int64(t.Minute()), nil
	case 's':
		return int64(t.Second()), nil
	case 'f':
		return int64(t.Nanosecond() / int(time.Millisecond)), nil
	case 'Z', 'z':
		return 0, nil
	}
	return 0, fmt.Errorf("datefmt: unsupported component %q", f.component)
}

func appendOffset(b []byte, t time.Time, gmtPrefix bool, pic string) []byte {
	if gmtPrefix {
		b = append(b, "GMT"...)
	}
	_, secs := t.Zone()
	sign := byte('+')
	if secs < 0 {
		sign = '-'
		secs = -secs
	}
	hh, mm := secs/3600, (secs%3600)/60
	b = append(b, sign)
	b = append(b, fmt.Sprintf("%02d", hh)...)
	if strings.ContainsRune(pic, ':') {
		b = append(b, ':')
	}
	return append(b, fmt.Sprintf("%02d", mm)...)
}

func indexRuneFrom(rs []rune, r rune, from int) int {
	for i := from; i < len(rs); i++ {
		if rs[i] == r {
			return i
		}
	}
	return -1
}
