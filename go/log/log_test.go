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

package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	for _, name := range []string{"log-rotate-max-size", "log-fmt", "log-level"} {
		assert.NotNil(t, fs.Lookup(name), name)
	}
}

func TestInitNoFlagSet(t *testing.T) {
	require.NoError(t, Init(nil))
}

func TestInitUnsetFlagKeepsGlog(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(nil))
	require.NoError(t, Init(fs))
	assert.False(t, structured.Load())
}

func TestInitRejectsBadValues(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log-fmt=xml"}))
	require.ErrorContains(t, Init(fs), "invalid log-fmt")

	fs = pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log-fmt=json", "--log-level=loud"}))
	require.ErrorContains(t, Init(fs), "invalid log-level")
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug":  slog.LevelDebug,
		"info":   slog.LevelInfo,
		" WARN ": slog.LevelWarn,
		"Error":  slog.LevelError,
	} {
		got, err := parseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := parseLevel("verbose")
	require.Error(t, err)
}

func TestStructuredOutput(t *testing.T) {
	var buf bytes.Buffer
	restore := SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer restore()

	InfoS("formatted", "picture", "#,##0.00")
	out := buf.String()
	assert.Contains(t, out, "formatted")
	assert.Contains(t, out, "picture=#,##0.00")
}

func TestSetLoggerRestore(t *testing.T) {
	prev := structured.Load()
	restore := SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	assert.True(t, structured.Load())
	restore()
	assert.Equal(t, prev, structured.Load())

	assert.NotPanics(t, func() { SetLogger(nil)() })
}
