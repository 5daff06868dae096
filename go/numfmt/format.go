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

// Package numfmt renders numeric values according to the picture-string
// mini-language of XPath/XQuery F&O fn:format-number: locale symbols,
// custom digit families, grouping separators, scientific notation and
// percent/per-mille scaling.
package numfmt

// Formatter holds the analyzed descriptors for one picture string. It is
// immutable after construction and safe for concurrent use.
type Formatter struct {
	symbols  *symbolTable
	positive analyzedPicture
	negative analyzedPicture
}

// NewFormatter parses, validates and analyzes the picture string with the
// given symbol overrides. Overrides may redefine any subset of the eleven
// symbol roles; unrecognized keys are ignored. A malformed picture returns
// a *PictureError.
func NewFormatter(picture string, options map[string]string) (*Formatter, error) {
	return newFormatter(picture, resolveSymbols(options))
}

func newFormatter(picture string, st *symbolTable) (*Formatter, error) {
	parts, err := splitPicture(picture, st)
	if err != nil {
		return nil, err
	}
	analyzed := make([]analyzedPicture, len(parts))
	for i := range parts {
		if err := validatePicture(&parts[i], st); err != nil {
			return nil, err
		}
		analyzed[i] = analyzePicture(&parts[i], st)
	}
	f := &Formatter{symbols: st, positive: analyzed[0]}
	if len(analyzed) == 2 {
		f.negative = analyzed[1]
	} else {
		// No explicit negative sub-picture: clone the positive one and
		// prepend the minus sign to its prefix.
		f.negative = analyzed[0].clone()
		f.negative.prefix = string(st.minusSign) + f.negative.prefix
	}
	return f, nil
}

// Format renders a finite value. It never fails: every structural error
// was surfaced by NewFormatter.
func (f *Formatter) Format(value float64) string {
	return renderNumber(value, &f.positive, &f.negative, f.symbols)
}

// FormatNumber is the one-shot form. A nil value is not an error: it
// propagates as a nil result, the way query languages treat "no value".
func FormatNumber(value *float64, picture string, options map[string]string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	f, err := NewFormatter(picture, options)
	if err != nil {
		return nil, err
	}
	s := f.Format(*value)
	return &s, nil
}
