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

// Package format renders a diff.Result as plain, unified, context or
// ed-style text. Formatters are the only consumers of the atom-index to
// line-number mapping; package diff itself never formats anything.
package format

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	diff "github.com/ethdiff/godiff"
)

// Kind selects the output rendering.
type Kind int

const (
	// Plain lists each chunk as "< " / "> " / "  " lines, no headers.
	Plain Kind = iota
	// Unified is the classic "@@ -l,c +l,c @@" unified diff format.
	Unified
	// Context is the "***"/"---" context diff format.
	Context
	// Ed is an ed(1) script: "N,Nc" / "N,Nd" / "Na" commands, text blocks
	// terminated by ".", listed bottom to top.
	Ed
	// ForwardEd is like Ed but lists its commands top to bottom. Both forms
	// use line numbers of the original (left) file.
	ForwardEd
)

// IsColorTerminal reports whether f is a terminal that should receive
// colorized output.
func IsColorTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Colorable wraps f with go-colorable's Windows ANSI shim so color codes
// render correctly there; on other platforms it returns f unchanged.
func Colorable(f *os.File) io.Writer {
	return colorable.NewColorable(f)
}

const (
	colorReset = "\x1b[0m"
	colorRed   = "\x1b[31m"
	colorGreen = "\x1b[32m"
)

// Format renders r to w in the requested Kind. ctx is the number of
// context lines for Unified/Context; it is ignored by Plain and the ed
// forms.
func Format(kind Kind, r *diff.Result, w io.Writer, ctx int, color bool) error {
	switch kind {
	case Plain:
		return formatPlain(r, w, color)
	case Unified:
		return formatUnified(r, w, ctx, color)
	case Context:
		return formatContext(r, w, ctx, color)
	case Ed:
		return formatEd(r, w, false)
	case ForwardEd:
		return formatEd(r, w, true)
	default:
		return fmt.Errorf("format: unknown kind %d", kind)
	}
}

func line(d *diff.Data, i int) string {
	b := d.Bytes(i)
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return string(b)
}

func colorWrap(color bool, code, s string) string {
	if !color {
		return s
	}
	return code + s + colorReset
}

func formatPlain(r *diff.Result, w io.Writer, color bool) error {
	for _, c := range r.Chunks {
		switch {
		case c.RightCount == 0:
			for i := 0; i < c.LeftCount; i++ {
				if _, err := fmt.Fprintln(w, colorWrap(color, colorRed, "< "+line(r.Left, c.LeftStart+i))); err != nil {
					return err
				}
			}
		case c.LeftCount == 0:
			for i := 0; i < c.RightCount; i++ {
				if _, err := fmt.Fprintln(w, colorWrap(color, colorGreen, "> "+line(r.Right, c.RightStart+i))); err != nil {
					return err
				}
			}
		default:
			for i := 0; i < c.LeftCount; i++ {
				if _, err := fmt.Fprintln(w, "  "+line(r.Left, c.LeftStart+i)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
