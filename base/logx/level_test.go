// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	var b bytes.Buffer
	lg := slog.New(NewHandler(&b, slog.LevelInfo))
	lg.Debug("hidden")
	lg.Info("shown", "axis", 2)
	out := b.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "axis=2")
	assert.Contains(t, out, "INFO")
	assert.NotContains(t, out, "time=")
}

func TestDefaultLogger(t *testing.T) {
	UserLevel = slog.LevelDebug
	SetDefaultLogger()
	defer func() { UserLevel = slog.LevelWarn }()

	slog.Debug("this is debug")
	slog.Info("this is info")
	slog.Warn("this is warn")
}
