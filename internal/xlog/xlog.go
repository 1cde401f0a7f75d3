// Copyright 2026 The godiff Authors
// This file is part of godiff.
//
// godiff is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// godiff is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with godiff. If not, see <http://www.gnu.org/licenses/>.

// Package xlog is a thin leveled wrapper around log/slog: package-level
// Debug/Info/Warn/Error functions taking a message plus alternating
// key/value pairs, backed by a single swappable handler.
package xlog

import (
	"log/slog"
	"os"
	"sync/atomic"
)

var root atomic.Pointer[slog.Logger]

func init() {
	root.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))
}

// SetHandler replaces the package-level logger's handler, e.g. to raise the
// level or switch to JSON output from the CLI.
func SetHandler(h slog.Handler) {
	root.Store(slog.New(h))
}

// Debug logs at debug level.
func Debug(msg string, args ...any) { root.Load().Debug(msg, args...) }

// Info logs at info level.
func Info(msg string, args ...any) { root.Load().Info(msg, args...) }

// Warn logs at warn level.
func Warn(msg string, args ...any) { root.Load().Warn(msg, args...) }

// Error logs at error level.
func Error(msg string, args ...any) { root.Load().Error(msg, args...) }
