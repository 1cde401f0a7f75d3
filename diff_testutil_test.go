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

package diff

import "strings"

// newTestData builds a root Data from a slice of lines; each line should
// already carry its own terminator (or be the final, unterminated line).
func newTestData(lines []string) *Data {
	buf := []byte(strings.Join(lines, ""))
	return NewRoot(buf, atomizeLines(buf))
}

// newTestState builds a fresh root state over left/right with no recursion
// spent yet, ready to hand directly to an Algorithm under test.
func newTestState(left, right *Data) *state {
	return &state{
		result: &Result{Left: left.Root(), Right: right.Root()},
		left:   left,
		right:  right,
		depth:  defaultMaxRecursionDepth,
	}
}

// linesOf renders the content of every atom in d as a slice of strings with
// terminators stripped, for easy comparison against expected input lines.
func linesOf(d *Data) []string {
	out := make([]string, d.Len())
	for i := 0; i < d.Len(); i++ {
		b := d.Bytes(i)
		for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
			b = b[:len(b)-1]
		}
		out[i] = string(b)
	}
	return out
}
