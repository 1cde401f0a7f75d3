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

// Atom is the indivisible unit of comparison: a contiguous byte range inside
// a root buffer plus a rolling hash of its content.
//
// Atoms carry no algorithm scratch state. The patience pass's per-atom
// bookkeeping (uniqueness, cross-side back-references, LCS back-pointers,
// swallowed-neighbour ranges) lives in a scratch buffer private to that
// pass's call frame, see scratch.go. Keeping Atom itself immutable content
// means two nested algorithm invocations on disjoint subsections can never
// alias each other's working state.
type Atom struct {
	At   int64
	Len  int64
	Hash uint32
}

// bytes returns the atom's content from the given root buffer.
func (a Atom) bytes(root []byte) []byte {
	return root[a.At : a.At+a.Len]
}

// atomsEqual reports whether the atoms at local positions li (in left) and
// ri (in right) are equal: same hash, same length, same bytes.
func atomsEqual(left, right *Data, li, ri int) bool {
	a, b := left.atoms[li], right.atoms[ri]
	if a.Hash != b.Hash || a.Len != b.Len {
		return false
	}
	lb := left.rootBuf()
	rb := right.rootBuf()
	la, ra := a.bytes(lb), b.bytes(rb)
	if len(la) != len(ra) {
		return false
	}
	for i := range la {
		if la[i] != ra[i] {
			return false
		}
	}
	return true
}
