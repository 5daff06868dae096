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

import "fmt"

// Code identifies a picture-string validation failure. The numbering
// follows the XPath/XQuery F&O §4.7 dynamic error range.
type Code uint16

const (
	// CodeNone is the zero value; it never appears in a returned error.
	CodeNone Code = 0

	// CodeTooManySubPictures is raised by the splitter, all other codes
	// by the validator.
	CodeTooManySubPictures       Code = 3080
	CodeDuplicateDecimal         Code = 3081
	CodeDuplicatePercent         Code = 3082
	CodeDuplicatePerMille        Code = 3083
	CodePercentAndPerMille       Code = 3084
	CodeNoDigitInMantissa        Code = 3085
	CodePassiveInActivePart      Code = 3086
	CodeGroupingAdjacentDecimal  Code = 3087
	CodeGroupingAtEndOfInteger   Code = 3088
	CodeConsecutiveGrouping      Code = 3089
	CodeMisplacedIntegerDigit    Code = 3090
	CodeMisplacedFractionalDigit Code = 3091
	CodePercentInExponent        Code = 3092
	CodeBadExponent              Code = 3093
)

var codeDescription = map[Code]string{
	CodeTooManySubPictures:       "picture string contains more than two sub-pictures",
	CodeDuplicateDecimal:         "sub-picture contains more than one decimal separator",
	CodeDuplicatePercent:         "sub-picture contains more than one percent sign",
	CodeDuplicatePerMille:        "sub-picture contains more than one per-mille sign",
	CodePercentAndPerMille:       "sub-picture contains both a percent and a per-mille sign",
	CodeNoDigitInMantissa:        "sub-picture mantissa contains no digit or digit placeholder",
	CodePassiveInActivePart:      "sub-picture contains a passive character inside its active part",
	CodeGroupingAdjacentDecimal:  "sub-picture contains a grouping separator adjacent to the decimal separator",
	CodeGroupingAtEndOfInteger:   "sub-picture contains a grouping separator at the end of its integer part",
	CodeConsecutiveGrouping:      "sub-picture contains two adjacent grouping separators",
	CodeMisplacedIntegerDigit:    "sub-picture integer part contains a digit placeholder after a digit",
	CodeMisplacedFractionalDigit: "sub-picture fractional part contains a digit after a digit placeholder",
	CodePercentInExponent:        "sub-picture exponent contains a percent or per-mille sign",
	CodeBadExponent:              "sub-picture exponent is empty or contains a non-digit character",
}

// ID renders the code in its F&O form, e.g. "D3081".
func (c Code) ID() string {
	return fmt.Sprintf("D%04d", uint16(c))
}

// String returns the human-readable description of the code.
func (c Code) String() string {
	return c.description()
}

func (c Code) description() string {
	if desc, ok := codeDescription[c]; ok {
		return desc
	}
	return "malformed picture string"
}

// PictureError is the error returned for a malformed picture string.
// It is never recoverable: the caller must fix the picture.
type PictureError struct {
	Code    Code
	Picture string
}

func newPictureError(code Code, picture string) *PictureError {
	return &PictureError{Code: code, Picture: picture}
}

// Error implements the error interface.
func (pe *PictureError) Error() string {
	return fmt.Sprintf("%s: %s (picture %q)", pe.Code.ID(), pe.Code.description(), pe.Picture)
}
