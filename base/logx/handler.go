// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default structured logger setup,
// with user verbosity levels and level tags colored for the terminal.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// NewHandler returns a new [slog.Handler] writing text records to w,
// with the level tag of each record colored according to its severity
// when w is a terminal that supports color. Times are omitted, since
// the output is intended for interactive use.
func NewHandler(w io.Writer, level slog.Leveler) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				lvl, ok := a.Value.Any().(slog.Level)
				if ok {
					a.Value = slog.StringValue(LevelString(out, lvl))
				}
			}
			return a
		},
	})
}

// LevelString returns the name of the given level, colored for
// the given output: debug is faint, info is blue, warn is yellow,
// and error is bold red.
func LevelString(out *termenv.Output, lvl slog.Level) string {
	st := out.String(lvl.String())
	switch {
	case lvl >= slog.LevelError:
		st = st.Foreground(out.Color("1")).Bold()
	case lvl >= slog.LevelWarn:
		st = st.Foreground(out.Color("3"))
	case lvl >= slog.LevelInfo:
		st = st.Foreground(out.Color("4"))
	default:
		st = st.Faint()
	}
	return st.String()
}

// SetDefaultLogger sets the default logger to one using [NewHandler]
// on [os.Stderr] at the current [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, UserLevel)))
}
