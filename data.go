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

// Data is a view over a side's atoms: either a root, which owns the atom
// array and references the full byte buffer, or a subsection, which borrows
// a contiguous slice of an ancestor root's atoms.
//
// Every subsection carries a back-reference to its root so that a local
// atom index (relative to this Data's first atom) can always be resolved to
// a global index (relative to the root's first atom). The two differ by a
// fixed offset, recorded in base.
type Data struct {
	root *Data // nil for the root itself
	buf  []byte
	atoms []Atom
	base int // global index of atoms[0]
}

// NewRoot builds a root Data owning atoms and referencing buf.
func NewRoot(buf []byte, atoms []Atom) *Data {
	return &Data{buf: buf, atoms: atoms}
}

// Root returns the owning root Data (itself, if d is already a root).
func (d *Data) Root() *Data {
	if d.root != nil {
		return d.root
	}
	return d
}

func (d *Data) rootBuf() []byte {
	return d.Root().buf
}

// Len reports the number of atoms in this view.
func (d *Data) Len() int {
	return len(d.atoms)
}

// Atom returns the atom at the local index i.
func (d *Data) Atom(i int) Atom {
	return d.atoms[i]
}

// Bytes returns the content of the atom at local index i.
func (d *Data) Bytes(i int) []byte {
	return d.atoms[i].bytes(d.rootBuf())
}

// Global converts a local atom index into a root-relative (global) index.
func (d *Data) Global(i int) int {
	return d.base + i
}

// Local converts a root-relative (global) atom index into an index local to
// this subsection. Only valid when i falls within this view.
func (d *Data) Local(i int) int {
	return i - d.base
}

// Sub carves out a contiguous subsection of start..start+count of this
// view's atoms. The returned Data borrows atoms; it does not copy them.
func (d *Data) Sub(start, count int) *Data {
	return &Data{
		root:  d.Root(),
		atoms: d.atoms[start : start+count],
		base:  d.base + start,
	}
}
