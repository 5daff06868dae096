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

package b64

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	cases := []struct {
		plain   string
		encoded string
	}{
		{"", ""},
		{"f", "Zg=="},
		{"fo", "Zm8="},
		{"foo", "Zm9v"},
		{"hello world", "aGVsbG8gd29ybGQ="},
		{"héllo", "aMOpbGxv"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.encoded, EncodeToString(tc.plain))
		assert.Equal(t, []byte(tc.encoded), Encode([]byte(tc.plain)))

		plain, err := DecodeString(tc.encoded)
		require.NoError(t, err)
		assert.Equal(t, tc.plain, plain)

		raw, err := Decode([]byte(tc.encoded))
		require.NoError(t, err)
		assert.Equal(t, []byte(tc.plain), raw)
	}
}

func TestDecodeInvalid(t *testing.T) {
	_, err := DecodeString("not base64!")
	require.Error(t, err)

	_, err = Decode([]byte("%%%%"))
	require.Error(t, err)
}
