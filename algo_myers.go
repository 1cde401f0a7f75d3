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

import "unsafe"

var intSize = int64(unsafe.Sizeof(int(0)))

// AlgoMyers implements the classical quadratic edit-graph search [Myers,
// 1986]. It fully solves its subsection (no unsolved chunks are ever
// produced) or declines with USE_FALLBACK when the required state would
// exceed cfg.PermittedStateSize.
func AlgoMyers(cfg *AlgoConfig, st *state) Outcome {
	leftLen, rightLen := st.left.Len(), st.right.Len()
	max := leftLen + rightLen
	if max == 0 {
		return OutcomeOK
	}

	width := 2*max + 1
	rows := int64(max + 1)
	stateSize := rows * int64(width) * intSize
	if stateSize <= 0 || (cfg.PermittedStateSize != 0 && stateSize > cfg.PermittedStateSize) {
		return OutcomeUseFallback
	}

	kd := make([][]int, max+1)
	for i := range kd {
		kd[i] = make([]int, width)
	}
	offset := max

	dStar, kStar := -1, 0

sweep:
	for d := 0; d <= max; d++ {
		if d == 0 {
			x, y := 0, 0
			for x < leftLen && y < rightLen && atomsEqual(st.left, st.right, x, y) {
				x++
				y++
			}
			kd[0][offset] = x
			if x == leftLen && y == rightLen {
				dStar, kStar = 0, 0
				break sweep
			}
			continue
		}
		for k := -d; k <= d; k += 2 {
			var x int
			if k == d || (k > -d && kd[d-1][k-1+offset] >= kd[d-1][k+1+offset]) {
				x = kd[d-1][k-1+offset] + 1
			} else {
				x = kd[d-1][k+1+offset]
			}
			y := x - k
			for x < leftLen && y < rightLen && atomsEqual(st.left, st.right, x, y) {
				x++
				y++
			}
			kd[d][k+offset] = x
			if x == leftLen && y == rightLen {
				dStar, kStar = d, k
				break sweep
			}
		}
	}

	if dStar < 0 {
		// Exhausted the graph without reaching the corner: the inputs
		// cannot both be finite and this path unreachable, but guard
		// against a malformed state rather than index out of range below.
		return OutcomeUseFallback
	}

	waypoints := make([][2]int, dStar+1)
	k := kStar
	x := kd[dStar][kStar+offset]
	y := x - k
	for d := dStar; d >= 0; d-- {
		waypoints[d] = [2]int{x, y}
		if d == 0 {
			break
		}
		// Retrace the forward sweep's own choice; row d-1 only holds
		// diagonals -(d-1)..d-1, so k == -d must step back to k+1.
		var prevK int
		if k == d || (k > -d && kd[d-1][k-1+offset] >= kd[d-1][k+1+offset]) {
			prevK = k - 1
		} else {
			prevK = k + 1
		}
		px := kd[d-1][prevK+offset]
		py := px - prevK
		k, x, y = prevK, px, py
	}

	if snake := waypoints[0][0]; snake > 0 {
		if err := addChunk(st, true, 0, snake, 0, snake); err != nil {
			return OutcomeENOMEM
		}
	}

	for d := 0; d < dStar; d++ {
		x0, y0 := waypoints[d][0], waypoints[d][1]
		x1, y1 := waypoints[d+1][0], waypoints[d+1][1]
		dx, dy := x1-x0, y1-y0

		switch {
		case dx-dy == 1:
			if err := addChunk(st, true, x0, 1, y0, 0); err != nil {
				return OutcomeENOMEM
			}
			if dy > 0 {
				if err := addChunk(st, true, x0+1, dy, y0, dy); err != nil {
					return OutcomeENOMEM
				}
			}
		case dy-dx == 1:
			if err := addChunk(st, true, x0, 0, y0, 1); err != nil {
				return OutcomeENOMEM
			}
			if dx > 0 {
				if err := addChunk(st, true, x0, dx, y0+1, dx); err != nil {
					return OutcomeENOMEM
				}
			}
		case dx == dy:
			if dx > 0 {
				if err := addChunk(st, true, x0, dx, y0, dy); err != nil {
					return OutcomeENOMEM
				}
			}
		default:
			return OutcomeUseFallback
		}
	}
	return OutcomeOK
}
