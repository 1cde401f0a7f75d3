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

import "math"

// AlgoMyersDivide is the linear-space bidirectional search for a single
// mid-snake on the same edit graph AlgoMyers explores exhaustively. It
// splits its subsection into a (possibly unsolved) pre-region, the
// mid-snake as a solved equal chunk, and a (possibly unsolved) post-region,
// each handed back to the orchestrator's inner algorithm.
func AlgoMyersDivide(_ *AlgoConfig, st *state) Outcome {
	leftLen, rightLen := st.left.Len(), st.right.Len()

	prefix := 0
	for prefix < leftLen && prefix < rightLen && atomsEqual(st.left, st.right, prefix, prefix) {
		prefix++
	}
	suffix := 0
	for suffix < leftLen-prefix && suffix < rightLen-prefix &&
		atomsEqual(st.left, st.right, leftLen-1-suffix, rightLen-1-suffix) {
		suffix++
	}

	n := leftLen - prefix - suffix
	m := rightLen - prefix - suffix

	if prefix > 0 {
		if err := addChunk(st, true, 0, prefix, 0, prefix); err != nil {
			return OutcomeENOMEM
		}
	}

	switch {
	case n == 0 && m == 0:
		// nothing between the stripped prefix and suffix
	case n == 0:
		if err := addChunk(st, true, prefix, 0, prefix, m); err != nil {
			return OutcomeENOMEM
		}
	case m == 0:
		if err := addChunk(st, true, prefix, n, prefix, 0); err != nil {
			return OutcomeENOMEM
		}
	default:
		x0, x1, y0, y1, found := findMidSnake(st.left, st.right, prefix, n, m)
		if !found {
			return OutcomeUseFallback
		}

		preN, preM := x0, y0
		switch {
		case preN > 0 && preM > 0:
			if err := addChunk(st, false, prefix, preN, prefix, preM); err != nil {
				return OutcomeENOMEM
			}
		case preN > 0:
			if err := addChunk(st, true, prefix, preN, prefix, 0); err != nil {
				return OutcomeENOMEM
			}
		case preM > 0:
			if err := addChunk(st, true, prefix, 0, prefix, preM); err != nil {
				return OutcomeENOMEM
			}
		}

		if snakeLen := x1 - x0; snakeLen > 0 {
			if err := addChunk(st, true, prefix+x0, snakeLen, prefix+y0, snakeLen); err != nil {
				return OutcomeENOMEM
			}
		}

		postN, postM := n-x1, m-y1
		switch {
		case postN > 0 && postM > 0:
			if err := addChunk(st, false, prefix+x1, postN, prefix+y1, postM); err != nil {
				return OutcomeENOMEM
			}
		case postN > 0:
			if err := addChunk(st, true, prefix+x1, postN, prefix+y1, 0); err != nil {
				return OutcomeENOMEM
			}
		case postM > 0:
			if err := addChunk(st, true, prefix+x1, 0, prefix+y1, postM); err != nil {
				return OutcomeENOMEM
			}
		}
	}

	if suffix > 0 {
		if err := addChunk(st, true, prefix+n, suffix, prefix+m, suffix); err != nil {
			return OutcomeENOMEM
		}
	}
	return OutcomeOK
}

// findMidSnake runs the bidirectional search for a single mid-snake over
// st's left[off:off+n] and right[off:off+m], where off, n and m already
// exclude any common prefix/suffix. Returned coordinates (x0,x1,y0,y1) are
// local to that reduced region: [x0,x1) on the left and [y0,y1) on the
// right form the snake, with x1-x0 == y1-y0.
//
// The search keeps one forward front F (diagonal index k = x-y, centred on
// the region's own origin) and one backward front B (same k convention,
// centred on the region's own corner), each overwritten in place every
// round. Corollary of Myers' Lemma 1: the optimal edit length is odd
// exactly when delta = n-m is odd, which tells us whether the meeting
// check belongs in the forward or backward half of a round; checking only
// diagonals already computed by the other front this round rules out
// spurious adjacent-diagonal crossings.
func findMidSnake(left, right *Data, off, n, m int) (x0, x1, y0, y1 int, found bool) {
	kmin, kmax := -m, n
	fmid, bmid := 0, n-m
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid
	odd := (n-m)%2 != 0

	diagonals := n + m
	vlen := 2*diagonals + 3
	buf := make([]int, 2*vlen)
	vf := buf[:vlen]
	vb := buf[vlen:]
	v0 := diagonals + 1

	vf[v0+fmid] = 0
	vb[v0+bmid] = n

	eq := func(x, y int) bool { return atomsEqual(left, right, off+x, off+y) }

	for d := 1; ; d++ {
		if fmin > kmin {
			fmin--
			vf[v0+fmin-1] = math.MinInt
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			vf[v0+fmax+1] = math.MinInt
		} else {
			fmax--
		}
		for k := fmin; k <= fmax; k += 2 {
			k0 := k + v0
			var x int
			if vf[k0-1] < vf[k0+1] {
				x = vf[k0+1]
			} else {
				x = vf[k0-1] + 1
			}
			y := x - k
			sx, sy := x, y
			for x < n && y < m && eq(x, y) {
				x++
				y++
			}
			vf[k0] = x
			if odd && bmin <= k && k <= bmax && x >= vb[k0] {
				return sx, x, sy, y, true
			}
		}

		if bmin > kmin {
			bmin--
			vb[v0+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < kmax {
			bmax++
			vb[v0+bmax+1] = math.MaxInt
		} else {
			bmax--
		}
		for k := bmin; k <= bmax; k += 2 {
			k0 := k + v0
			var x int
			if vb[k0-1] < vb[k0+1] {
				x = vb[k0-1]
			} else {
				x = vb[k0+1] - 1
			}
			y := x - k
			sx, sy := x, y
			for x > 0 && y > 0 && eq(x-1, y-1) {
				x--
				y--
			}
			vb[k0] = x
			if !odd && fmin <= k && k <= fmax && x <= vf[v0+k] {
				return x, sx, y, sy, true
			}
		}
	}
}
