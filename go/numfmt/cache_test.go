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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheReturnsSameFormatter(t *testing.T) {
	var c Cache
	f1, err := c.Formatter("#,##0.00", nil)
	require.NoError(t, err)
	f2, err := c.Formatter("#,##0.00", nil)
	require.NoError(t, err)
	assert.Same(t, f1, f2)
}

func TestCacheKeyIncludesSymbols(t *testing.T) {
	// The placeholder-only picture "#" is valid in any digit family, so
	// the same picture text yields two distinct cache entries.
	var c Cache
	plain, err := c.Formatter("#", nil)
	require.NoError(t, err)
	arabic, err := c.Formatter("#", map[string]string{SymZeroDigit: "٠"})
	require.NoError(t, err)
	require.NotSame(t, plain, arabic)

	assert.Equal(t, "2", plain.Format(1.5))
	assert.Equal(t, "٢", arabic.Format(1.5))
}

func TestCacheDoesNotCacheErrors(t *testing.T) {
	var c Cache
	for range 2 {
		_, err := c.Formatter("0.0.0", nil)
		var perr *PictureError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, CodeDuplicateDecimal, perr.Code)
	}
}

func TestCacheConcurrentFirstUse(t *testing.T) {
	var c Cache
	const workers = 16

	results := make([]*Formatter, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f, err := c.Formatter("#,##0.###", nil)
			assert.NoError(t, err)
			results[i] = f
		}()
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		require.Same(t, results[0], results[i])
	}
}

func TestCacheFormatShorthand(t *testing.T) {
	var c Cache

	out, err := c.Format(nil, "0.00", nil)
	require.NoError(t, err)
	assert.Nil(t, out)

	v := 2.5
	out, err = c.Format(&v, "0.00", nil)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "2.50", *out)
}
