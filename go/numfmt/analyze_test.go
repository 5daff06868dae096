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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyze(t *testing.T, picture string) analyzedPicture {
	t.Helper()
	st := resolveSymbols(nil)
	parts, err := splitPicture(picture, st)
	require.NoError(t, err)
	require.NoError(t, validatePicture(&parts[0], st))
	return analyzePicture(&parts[0], st)
}

func TestAnalyzeGrouping(t *testing.T) {
	a := analyze(t, "#,##0.00")
	assert.Equal(t, []int{3}, a.integerGroupingPositions)
	assert.Equal(t, 3, a.regularGroupingInterval)

	a = analyze(t, "#,###,##0")
	assert.Equal(t, []int{6, 3}, a.integerGroupingPositions)
	assert.Equal(t, 3, a.regularGroupingInterval)

	// South-Asian style grouping is irregular: positions 5 and 3 share
	// no interval that covers both.
	a = analyze(t, "#,##,##0")
	assert.Equal(t, []int{5, 3}, a.integerGroupingPositions)
	assert.Equal(t, 0, a.regularGroupingInterval)

	a = analyze(t, "0.000,000")
	assert.Equal(t, []int{3}, a.fractionalGroupingPositions)
}

func TestAnalyzeDigitCounts(t *testing.T) {
	a := analyze(t, "#,##0.00#")
	want := analyzedPicture{
		picture:                  "#,##0.00#",
		integerGroupingPositions: []int{3},
		regularGroupingInterval:  3,
		minimumIntegerDigits:     1,
		minimumFractionalDigits:  2,
		maximumFractionalDigits:  3,
		scalingFactor:            1,
		hasDecimalSeparator:      true,
	}
	if diff := cmp.Diff(want, a, cmp.AllowUnexported(analyzedPicture{})); diff != "" {
		t.Errorf("analyzed picture mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeExponent(t *testing.T) {
	a := analyze(t, "0.000e00")
	assert.Equal(t, 1, a.minimumIntegerDigits)
	assert.Equal(t, 3, a.minimumFractionalDigits)
	assert.Equal(t, 2, a.minimumExponentDigits)
	assert.Equal(t, 1, a.scalingFactor)
	assert.True(t, a.hasExponent)

	// Placeholder-only integer part still shows one digit before the
	// exponent.
	a = analyze(t, "#.0e0")
	assert.Equal(t, 1, a.minimumIntegerDigits)
}

func TestAnalyzeDegeneratePictures(t *testing.T) {
	// No mandatory digits at all: the guaranteed digit goes to the
	// integer part.
	a := analyze(t, "#")
	assert.Equal(t, 1, a.minimumIntegerDigits)
	assert.Equal(t, 0, a.maximumFractionalDigits)

	// With an exponent it goes to the fraction instead.
	a = analyze(t, "#e0")
	assert.Equal(t, 1, a.minimumFractionalDigits)
	assert.Equal(t, 1, a.maximumFractionalDigits)
	assert.Equal(t, 1, a.minimumIntegerDigits)
}

func TestNegativeCloneDoesNotAlias(t *testing.T) {
	f, err := NewFormatter("#,##0.00", nil)
	require.NoError(t, err)
	require.Equal(t, "-", f.negative.prefix)
	require.Equal(t, f.positive.integerGroupingPositions, f.negative.integerGroupingPositions)
	f.negative.integerGroupingPositions[0] = 99
	assert.Equal(t, 3, f.positive.integerGroupingPositions[0])
}
