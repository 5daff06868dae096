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

// Package rematch produces lazy sequences of regexp matches: each match
// is materialized only when the consumer asks for it.
package rematch

import (
	"fmt"
	"iter"
	"regexp"
)

// Match is one regexp occurrence within the input.
type Match struct {
	// Full is the matched text.
	Full string
	// Index is the byte offset of the match within the input.
	Index int
	// Groups holds the captured submatches, empty string for groups
	// that did not participate.
	Groups []string
}

// All returns a lazy sequence of the non-overlapping matches of re in
// input, in order. An empty match advances by one byte so the sequence
// always terminates.
func All(re *regexp.Regexp, input string) iter.Seq[*Match] {
	return func(yield func(*Match) bool) {
		pos := 0
		for pos <= len(input) {
			loc := re.FindStringSubmatchIndex(input[pos:])
			if loc == nil {
				return
			}
			m := &Match{
				Full:  input[pos+loc[0] : pos+loc[1]],
				Index: pos + loc[0],
			}
			for g := 1; g < len(loc)/2; g++ {
				if loc[2*g] < 0 {
					m.Groups = append(m.Groups, "")
				} else {
					m.Groups = append(m.Groups, input[pos+loc[2*g]:pos+loc[2*g+1]])
				}
			}
			if !yield(m) {
				return
			}
			if loc[1] == loc[0] {
				pos += loc[1] + 1
			} else {
				pos += loc[1]
			}
		}
	}
}

// CollectAll drains the sequence into a slice.
func CollectAll(seq iter.Seq[*Match]) []*Match {
	var out []*Match
	for m := range seq {
		out = append(out, m)
	}
	return out
}

// Collect drains at most limit matches. A negative limit is a contract
// violation, not a request for "all".
func Collect(seq iter.Seq[*Match], limit int) ([]*Match, error) {
	if limit < 0 {
		return nil, fmt.Errorf("rematch: negative limit %d", limit)
	}
	out := make([]*Match, 0, limit)
	for m := range seq {
		if len(out) >= limit {
			break
		}
		out = append(out, m)
	}
	return out, nil
}
