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

	"golang.org/x/sync/singleflight"
)

// Cache memoizes analyzed pictures keyed by the (picture, symbol table)
// pair, so hot paths repeating the same picture do not re-pay the
// parse+validate+analyze cost. Observable behavior is identical to
// calling NewFormatter every time. The zero value is ready to use and
// safe for concurrent callers; concurrent first use of a picture analyzes
// it exactly once.
type Cache struct {
	group      singleflight.Group
	formatters sync.Map // cache key -> *Formatter
}

// Formatter returns the cached formatter for the picture and overrides,
// building it on first use. Validation errors are not cached: a malformed
// picture fails on every call.
func (c *Cache) Formatter(picture string, options map[string]string) (*Formatter, error) {
	st := resolveSymbols(options)
	key := st.cacheKey(picture)
	if v, ok := c.formatters.Load(key); ok {
		return v.(*Formatter), nil
	}
	v, err, _ := c.group.Do(key, func() (any, error) {
		f, err := newFormatter(picture, st)
		if err != nil {
			return nil, err
		}
		c.formatters.Store(key, f)
		return f, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Formatter), nil
}

// Format is shorthand for Formatter(...).Format(value) with nil-value
// propagation, mirroring FormatNumber.
func (c *Cache) Format(value *float64, picture string, options map[string]string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	f, err := c.Formatter(picture, options)
	if err != nil {
		return nil, err
	}
	s := f.Format(*value)
	return &s, nil
}
