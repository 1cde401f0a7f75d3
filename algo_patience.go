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

import (
	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/exp/slices"
)

// AlgoPatience computes the longest common subsequence over atoms that
// occur exactly once on each side, expands each LCS anchor with adjacent
// identical atoms, and delegates the residual gaps between anchors to its
// inner algorithm.
func AlgoPatience(_ *AlgoConfig, st *state) Outcome {
	leftLen, rightLen := st.left.Len(), st.right.Len()

	ls := newPatienceScratch(leftLen)
	rs := newPatienceScratch(rightLen)

	markUnique(st.left, ls)
	markUnique(st.right, rs)

	crossMatch(st.left, st.right, ls, rs)

	uniqueCount := 0
	for _, u := range ls.uniqueInBoth {
		if u {
			uniqueCount++
		}
	}
	if uniqueCount == 0 {
		return OutcomeUseFallback
	}

	swallowNeighbours(st.left, st.right, ls, rs)

	anchors := patienceLCS(ls, leftLen)

	prevLeftEnd, prevRightEnd := 0, 0
	for _, li := range anchors {
		ri := ls.posInOther[li]
		if err := emitGap(st, prevLeftEnd, ls.identStart[li], prevRightEnd, rs.identStart[ri]); err != nil {
			return OutcomeENOMEM
		}
		alen := ls.identEnd[li] - ls.identStart[li]
		if err := addChunk(st, true, ls.identStart[li], alen, rs.identStart[ri], alen); err != nil {
			return OutcomeENOMEM
		}
		prevLeftEnd, prevRightEnd = ls.identEnd[li], rs.identEnd[ri]
	}
	if err := emitGap(st, prevLeftEnd, leftLen, prevRightEnd, rightLen); err != nil {
		return OutcomeENOMEM
	}
	return OutcomeOK
}

func emitGap(st *state, leftStart, leftEnd, rightStart, rightEnd int) error {
	lc, rc := leftEnd-leftStart, rightEnd-rightStart
	if lc == 0 && rc == 0 {
		return nil
	}
	solved := lc == 0 || rc == 0
	return addChunk(st, solved, leftStart, lc, rightStart, rc)
}

// markUnique sets uniqueHere/uniqueInBoth for every atom that occurs
// exactly once in d, computed by grouped equality rather than a pairwise
// sweep (a pairwise "clear both on every equal pair" sweep double-counts
// atoms that occur three or more times).
func markUnique(d *Data, s *patienceScratch) {
	n := d.Len()
	if n == 0 {
		return
	}
	counts := make(map[uint32]int, n)
	for i := 0; i < n; i++ {
		counts[d.Atom(i).Hash]++
	}
	dup := mapset.NewThreadUnsafeSet[uint32]()
	for h, c := range counts {
		if c > 1 {
			dup.Add(h)
		}
	}
	for i := 0; i < n; i++ {
		h := d.Atom(i).Hash
		if !dup.Contains(h) {
			s.uniqueHere[i] = true
			s.uniqueInBoth[i] = true
			continue
		}
		unique := true
		for j := 0; j < n; j++ {
			if j != i && d.Atom(j).Hash == h && atomsEqual(d, d, i, j) {
				unique = false
				break
			}
		}
		s.uniqueHere[i] = unique
		s.uniqueInBoth[i] = unique
	}
}

// crossMatch pairs left and right atoms that are unique on their own side
// and, once paired, unique as a pair: it clears uniqueInBoth wherever that
// fails.
func crossMatch(left, right *Data, ls, rs *patienceScratch) {
	rightByHash := make(map[uint32][]int)
	for j := 0; j < right.Len(); j++ {
		if rs.uniqueHere[j] {
			h := right.Atom(j).Hash
			rightByHash[h] = append(rightByHash[h], j)
		}
	}
	for i := 0; i < left.Len(); i++ {
		if !ls.uniqueHere[i] {
			ls.uniqueInBoth[i] = false
			continue
		}
		match, count := -1, 0
		for _, j := range rightByHash[left.Atom(i).Hash] {
			if atomsEqual(left, right, i, j) {
				match = j
				count++
			}
		}
		if count == 1 {
			ls.posInOther[i] = match
			rs.posInOther[match] = i
		} else {
			ls.uniqueInBoth[i] = false
		}
	}
	for j := 0; j < right.Len(); j++ {
		if rs.posInOther[j] == -1 {
			rs.uniqueInBoth[j] = false
		}
	}
}

// swallowNeighbours extends each surviving common-unique anchor upward and
// downward while the neighbouring atoms are byte-identical on both sides,
// without crossing the previous anchor's reach. An anchor absorbed by a
// preceding anchor's downward extension is demoted on both sides so it is
// not processed again as its own anchor.
func swallowNeighbours(left, right *Data, ls, rs *patienceScratch) {
	prevLeftEnd, prevRightEnd := 0, 0
	for i := 0; i < left.Len(); i++ {
		if !ls.uniqueInBoth[i] {
			continue
		}
		r := ls.posInOther[i]

		start, rstart := i, r
		for start > prevLeftEnd && rstart > prevRightEnd && atomsEqual(left, right, start-1, rstart-1) {
			start--
			rstart--
		}

		end, rend := i+1, r+1
		for end < left.Len() && rend < right.Len() && atomsEqual(left, right, end, rend) {
			if ls.uniqueInBoth[end] {
				mate := ls.posInOther[end]
				ls.uniqueInBoth[end] = false
				rs.uniqueInBoth[mate] = false
			}
			end++
			rend++
		}

		ls.identStart[i], ls.identEnd[i] = start, end
		rs.identStart[r], rs.identEnd[r] = rstart, rend

		prevLeftEnd, prevRightEnd = end, rend
	}
}

// patienceLCS runs patience sort over the surviving common-unique atoms,
// ordered by left position, piling by their right-side position, and
// returns the longest increasing subsequence as a left-order slice of left
// indices.
func patienceLCS(ls *patienceScratch, leftLen int) []int {
	var stacks []int
	for i := 0; i < leftLen; i++ {
		if !ls.uniqueInBoth[i] {
			continue
		}
		target := ls.posInOther[i]
		idx, _ := slices.BinarySearchFunc(stacks, target, func(topIdx, target int) int {
			return ls.posInOther[topIdx] - target
		})
		if idx > 0 {
			ls.prevStack[i] = stacks[idx-1]
		} else {
			ls.prevStack[i] = -1
		}
		if idx == len(stacks) {
			stacks = append(stacks, i)
		} else {
			stacks[idx] = i
		}
	}
	if len(stacks) == 0 {
		return nil
	}

	chain := make([]int, 0, len(stacks))
	for cur := stacks[len(stacks)-1]; cur != -1; cur = ls.prevStack[cur] {
		chain = append(chain, cur)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}
