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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formatInteger(t *testing.T, value int64, picture string) string {
	t.Helper()
	s, err := FormatInteger(value, picture)
	require.NoError(t, err)
	return s
}

func TestFormatIntegerDecimal(t *testing.T) {
	cases := []struct {
		value   int64
		picture string
		want    string
	}{
		{0, "0", "0"},
		{42, "0000", "0042"},
		{42, "1", "42"},
		{1234567, "#,##0", "1,234,567"},
		{1234567, "#,##,##0", "12,34,567"},
		{-42, "0000", "-0042"},
		{7, "##", "7"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d_%s", tc.value, tc.picture), func(t *testing.T) {
			assert.Equal(t, tc.want, formatInteger(t, tc.value, tc.picture))
		})
	}
}

func TestFormatIntegerOrdinal(t *testing.T) {
	cases := []struct {
		value int64
		want  string
	}{
		{1, "1st"}, {2, "2nd"}, {3, "3rd"}, {4, "4th"},
		{11, "11th"}, {12, "12th"}, {13, "13th"},
		{21, "21st"}, {111, "111th"}, {112, "112th"}, {122, "122nd"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatInteger(t, tc.value, "1;o"))
	}
}

func TestFormatIntegerAlpha(t *testing.T) {
	cases := []struct {
		value int64
		want  string
	}{
		{1, "a"}, {2, "b"}, {26, "z"}, {27, "aa"}, {28, "ab"}, {702, "zz"}, {703, "aaa"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatInteger(t, tc.value, "a"))
	}
	assert.Equal(t, "AB", formatInteger(t, 28, "A"))
}

func TestFormatIntegerRoman(t *testing.T) {
	cases := []struct {
		value int64
		want  string
	}{
		{1, "I"}, {4, "IV"}, {9, "IX"}, {14, "XIV"}, {40, "XL"},
		{90, "XC"}, {400, "CD"}, {1984, "MCMLXXXIV"}, {3999, "MMMCMXCIX"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatInteger(t, tc.value, "I"))
	}
	assert.Equal(t, "mmxxiv", formatInteger(t, 2024, "i"))
}

func TestFormatIntegerWords(t *testing.T) {
	cases := []struct {
		value int64
		want  string
	}{
		{0, "zero"},
		{13, "thirteen"},
		{21, "twenty-one"},
		{100, "one hundred"},
		{105, "one hundred and five"},
		{1234, "one thousand two hundred and thirty-four"},
		{1000000, "one million"},
		{-7, "minus seven"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatInteger(t, tc.value, "w"))
	}

	assert.Equal(t, "THREE", formatInteger(t, 3, "W"))
	assert.Equal(t, "Twenty-One", formatInteger(t, 21, "Ww"))
}

func TestFormatIntegerOrdinalWords(t *testing.T) {
	cases := []struct {
		value int64
		want  string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, "fourth"},
		{12, "twelfth"},
		{20, "twentieth"},
		{21, "twenty-first"},
		{33, "thirty-third"},
		{100, "one hundredth"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatInteger(t, tc.value, "w;o"))
	}
	assert.Equal(t, "Twenty-First", formatInteger(t, 21, "Ww;o"))
}

func TestFormatIntegerErrors(t *testing.T) {
	_, err := FormatInteger(5, "")
	require.Error(t, err)

	_, err = FormatInteger(5, "0,")
	require.ErrorContains(t, err, "separator")

	_, err = FormatInteger(5, "0;x")
	require.ErrorContains(t, err, "modifier")
}
