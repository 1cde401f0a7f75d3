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

// patienceScratch holds the per-atom bookkeeping the patience algorithm
// needs, indexed by position local to the side's subsection. It is
// allocated fresh by each algo_patience invocation and discarded on return;
// nothing here is stored on Atom, so two nested invocations on disjoint
// subsections never alias each other's state.
type patienceScratch struct {
	uniqueHere   []bool
	uniqueInBoth []bool
	posInOther   []int // -1 if none
	prevStack    []int // index into the owning side's scratch, -1 if none
	identStart   []int
	identEnd     []int
}

// newPatienceScratch allocates a scratch buffer sized for n atoms, with
// posInOther and prevStack initialized to -1 (no mate / no predecessor).
func newPatienceScratch(n int) *patienceScratch {
	s := &patienceScratch{
		uniqueHere:   make([]bool, n),
		uniqueInBoth: make([]bool, n),
		posInOther:   make([]int, n),
		prevStack:    make([]int, n),
		identStart:   make([]int, n),
		identEnd:     make([]int, n),
	}
	for i := range s.posInOther {
		s.posInOther[i] = -1
		s.prevStack[i] = -1
		s.identStart[i] = i
		s.identEnd[i] = i + 1
	}
	return s
}
