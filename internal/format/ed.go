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

package format

import (
	"fmt"
	"io"

	diff "github.com/ethdiff/godiff"
)

type edOp struct {
	kind                                          byte // 'd', 'a' or 'c'
	leftStart, leftCount, rightStart, rightCount int
}

// buildEdOps collapses an adjacent minus/plus chunk pair into a single
// change ('c') op; a lone minus becomes a delete, a lone plus an append.
func buildEdOps(chunks []diff.Chunk) []edOp {
	var ops []edOp
	n := len(chunks)
	for i := 0; i < n; {
		c := chunks[i]
		if isEqualChunk(c) {
			i++
			continue
		}
		if c.RightCount == 0 && i+1 < n && chunks[i+1].LeftCount == 0 {
			nc := chunks[i+1]
			ops = append(ops, edOp{'c', c.LeftStart, c.LeftCount, nc.RightStart, nc.RightCount})
			i += 2
			continue
		}
		if c.LeftCount == 0 {
			ops = append(ops, edOp{'a', c.LeftStart, 0, c.RightStart, c.RightCount})
		} else {
			ops = append(ops, edOp{'d', c.LeftStart, c.LeftCount, c.RightStart, 0})
		}
		i++
	}
	return ops
}

func edRange(start, count int) string {
	if count <= 1 {
		return fmt.Sprintf("%d", start+1)
	}
	return fmt.Sprintf("%d,%d", start+1, start+count)
}

func writeEdText(w io.Writer, d *diff.Data, start, count int) error {
	for i := 0; i < count; i++ {
		if _, err := fmt.Fprintln(w, line(d, start+i)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, ".")
	return err
}

// formatEd writes an ed(1) script. When forward is true (the "-f" form),
// ops are emitted in left-to-right order against the original line
// numbers; the plain ed form ("-e") emits them bottom-to-top so each
// command's line numbers stay valid as earlier-in-the-script edits apply.
func formatEd(r *diff.Result, w io.Writer, forward bool) error {
	ops := buildEdOps(r.Chunks)
	if !forward {
		for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
			ops[i], ops[j] = ops[j], ops[i]
		}
	}
	for _, op := range ops {
		switch op.kind {
		case 'd':
			if _, err := fmt.Fprintln(w, edRange(op.leftStart, op.leftCount)+"d"); err != nil {
				return err
			}
		case 'a':
			if _, err := fmt.Fprintf(w, "%da\n", op.leftStart); err != nil {
				return err
			}
			if err := writeEdText(w, r.Right, op.rightStart, op.rightCount); err != nil {
				return err
			}
		case 'c':
			if _, err := fmt.Fprintln(w, edRange(op.leftStart, op.leftCount)+"c"); err != nil {
				return err
			}
			if err := writeEdText(w, r.Right, op.rightStart, op.rightCount); err != nil {
				return err
			}
		}
	}
	return nil
}
