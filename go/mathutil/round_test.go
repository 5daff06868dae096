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

package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	cases := []struct {
		x      float64
		digits int
		want   float64
	}{
		{0, 2, 0},
		{1.2345, 2, 1.23},
		{1.25, 1, 1.3},
		{-1.25, 1, -1.3},
		{2.5, 0, 3},
		{-2.5, 0, -3},
		{1234, -2, 1200},
		{1250, -2, 1300},
		{0.5, 0, 1},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, Round(tc.x, tc.digits), 1e-12,
			"Round(%v, %d)", tc.x, tc.digits)
	}
}

func TestRoundHalfToEven(t *testing.T) {
	cases := []struct {
		x      float64
		digits int
		want   float64
	}{
		{2.5, 0, 2},
		{3.5, 0, 4},
		{-2.5, 0, -2},
		{0.125, 2, 0.12},
		{0.375, 2, 0.38},
		{1250, -2, 1200},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, RoundHalfToEven(tc.x, tc.digits), 1e-12,
			"RoundHalfToEven(%v, %d)", tc.x, tc.digits)
	}
}

func TestRoundSpecialValues(t *testing.T) {
	assert.True(t, math.IsNaN(Round(math.NaN(), 3)))
	assert.True(t, math.IsInf(Round(math.Inf(1), 3), 1))
	assert.True(t, math.IsInf(RoundHalfToEven(math.Inf(-1), 3), -1))
	assert.Equal(t, 0.0, Round(0, -5))
}
