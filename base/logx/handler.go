// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// SetDefaultLogger sets the default logger to one that writes
// to [os.Stderr] at [UserLevel] with colored levels.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// NewHandler returns a new text [slog.Handler] writing to w.
// Records below [UserLevel] are dropped, the time is omitted, and
// the level is colored when w is a terminal that supports it.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: userLeveler{},
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
					a.Value = slog.StringValue(ColorizeLevel(out, lvl))
				}
			}
			return a
		},
	})
}

// ColorizeLevel returns the name of the given level styled
// with the color associated with it on the given output.
func ColorizeLevel(out *termenv.Output, lvl slog.Level) string {
	s := out.String(lvl.String())
	switch {
	case lvl >= slog.LevelError:
		s = s.Foreground(termenv.ANSIRed).Bold()
	case lvl >= slog.LevelWarn:
		s = s.Foreground(termenv.ANSIYellow)
	case lvl >= slog.LevelInfo:
		s = s.Foreground(termenv.ANSICyan)
	default:
		s = s.Foreground(termenv.ANSIBrightBlack)
	}
	return s.String()
}
