// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for _, l := range []Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel} {
		got, err := ParseLevel(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}
	got, err := ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, WarnLevel, got)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf, "warn", "plain")
	defer func() { defaultLogger = nil }()

	Debug("debug %d", 1)
	Info("info %d", 2)
	Warn("could not optimize %s fit", "Zipfian")
	Error("error %d", 4)

	assert.Equal(t, "[WARN] could not optimize Zipfian fit\n[ERROR] error 4\n", buf.String())
}

func TestUnknownLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf, "loud", "plain")
	defer func() { defaultLogger = nil }()

	Debug("hidden")
	Info("shown")
	assert.Equal(t, "[INFO] shown\n", buf.String())
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf, "debug", "text")
	defer func() { defaultLogger = nil }()

	Debug("x")
	assert.Contains(t, buf.String(), "logger_test.go:")
	assert.Contains(t, buf.String(), "[DEBUG] x")
}

func TestUninitialized(t *testing.T) {
	defaultLogger = nil
	assert.NotPanics(t, func() { Warn("dropped") })
}
