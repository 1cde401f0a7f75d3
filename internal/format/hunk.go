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

// hunkEntry is a context-trimmed view of a Chunk: equal entries may cover
// only the leading/trailing ctx lines of the chunk they were cut from.
type hunkEntry struct {
	equal                                        bool
	leftStart, leftCount, rightStart, rightCount int
}

type hunk struct {
	entries []hunkEntry
}

func isEqualChunk(c diff.Chunk) bool {
	return c.LeftCount > 0 && c.RightCount > 0
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// buildHunks groups chunks into hunks, one per contiguous run of
// non-equal chunks, padded with up to ctx lines of equal context on each
// side. Unlike GNU diff it never merges two hunks whose context windows
// would overlap; each non-equal run always produces exactly one hunk.
func buildHunks(chunks []diff.Chunk, ctx int) []hunk {
	var hunks []hunk
	n := len(chunks)
	for i := 0; i < n; {
		if isEqualChunk(chunks[i]) {
			i++
			continue
		}
		start := i
		for i < n && !isEqualChunk(chunks[i]) {
			i++
		}
		end := i

		var entries []hunkEntry
		if start > 0 {
			pc := chunks[start-1]
			k := min(ctx, pc.LeftCount)
			if k > 0 {
				entries = append(entries, hunkEntry{true,
					pc.LeftStart + pc.LeftCount - k, k,
					pc.RightStart + pc.RightCount - k, k})
			}
		}
		for k := start; k < end; k++ {
			c := chunks[k]
			entries = append(entries, hunkEntry{false, c.LeftStart, c.LeftCount, c.RightStart, c.RightCount})
		}
		if end < n {
			nc := chunks[end]
			k := min(ctx, nc.LeftCount)
			if k > 0 {
				entries = append(entries, hunkEntry{true, nc.LeftStart, k, nc.RightStart, k})
			}
		}
		hunks = append(hunks, hunk{entries: entries})
	}
	return hunks
}

func (h hunk) bounds() (lStart, lCount, rStart, rCount int) {
	first, last := h.entries[0], h.entries[len(h.entries)-1]
	lStart, rStart = first.leftStart, first.rightStart
	lCount = last.leftStart + last.leftCount - first.leftStart
	rCount = last.rightStart + last.rightCount - first.rightStart
	return
}

func rangeStr(start, count int) string {
	if count == 1 {
		return fmt.Sprintf("%d", start+1)
	}
	if count == 0 {
		return fmt.Sprintf("%d,0", start)
	}
	return fmt.Sprintf("%d,%d", start+1, count)
}

func formatUnified(r *diff.Result, w io.Writer, ctx int, color bool) error {
	for _, h := range buildHunks(r.Chunks, ctx) {
		lStart, lCount, rStart, rCount := h.bounds()
		if _, err := fmt.Fprintf(w, "@@ -%s +%s @@\n", rangeStr(lStart, lCount), rangeStr(rStart, rCount)); err != nil {
			return err
		}
		for _, e := range h.entries {
			if err := writeUnifiedEntry(w, r, e, color); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeUnifiedEntry(w io.Writer, r *diff.Result, e hunkEntry, color bool) error {
	switch {
	case e.equal:
		for i := 0; i < e.leftCount; i++ {
			if _, err := fmt.Fprintln(w, " "+line(r.Left, e.leftStart+i)); err != nil {
				return err
			}
		}
	case e.rightCount == 0:
		for i := 0; i < e.leftCount; i++ {
			if _, err := fmt.Fprintln(w, colorWrap(color, colorRed, "-"+line(r.Left, e.leftStart+i))); err != nil {
				return err
			}
		}
	default:
		for i := 0; i < e.rightCount; i++ {
			if _, err := fmt.Fprintln(w, colorWrap(color, colorGreen, "+"+line(r.Right, e.rightStart+i))); err != nil {
				return err
			}
		}
	}
	return nil
}

func formatContext(r *diff.Result, w io.Writer, ctx int, color bool) error {
	for _, h := range buildHunks(r.Chunks, ctx) {
		lStart, lCount, rStart, rCount := h.bounds()
		if _, err := fmt.Fprintln(w, "***************"); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "*** %s ****\n", rangeStr(lStart, lCount)); err != nil {
			return err
		}
		for _, e := range h.entries {
			if e.equal || e.rightCount == 0 {
				for i := 0; i < e.leftCount; i++ {
					prefix := "  "
					if !e.equal {
						prefix = "- "
					}
					if _, err := fmt.Fprintln(w, colorWrap(color && !e.equal, colorRed, prefix+line(r.Left, e.leftStart+i))); err != nil {
						return err
					}
				}
			}
		}
		if _, err := fmt.Fprintf(w, "--- %s ----\n", rangeStr(rStart, rCount)); err != nil {
			return err
		}
		for _, e := range h.entries {
			if e.equal || e.leftCount == 0 {
				for i := 0; i < e.rightCount; i++ {
					prefix := "  "
					if !e.equal {
						prefix = "+ "
					}
					if _, err := fmt.Fprintln(w, colorWrap(color && !e.equal, colorGreen, prefix+line(r.Right, e.rightStart+i))); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}
