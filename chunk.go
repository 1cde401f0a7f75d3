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

// Chunk is a contiguous span in the output: an equal run, a deletion, an
// insertion, or (when Solved is false) a subproblem awaiting refinement by
// an inner algorithm. LeftStart/RightStart are indices local to the Data
// view the producing algorithm was handed; the accumulator converts them to
// root-relative indices at promotion time.
type Chunk struct {
	LeftStart   int
	LeftCount   int
	RightStart  int
	RightCount  int
	Solved      bool
}

// addChunk appends a chunk to st's temporary list, or promotes it directly
// to the shared result when the temporary list is empty and the chunk is
// solved. Degenerate unsolved chunks (one side empty — which is always
// solvable as a plain minus/plus) are rejected.
func addChunk(st *state, solved bool, leftStart, leftCount, rightStart, rightCount int) error {
	if !solved && (leftCount == 0 || rightCount == 0) {
		return ErrInvalidInput
	}
	if leftCount == 0 && rightCount == 0 {
		return nil
	}
	c := Chunk{
		LeftStart:  leftStart,
		LeftCount:  leftCount,
		RightStart: rightStart,
		RightCount: rightCount,
		Solved:     solved,
	}
	if len(st.temp) == 0 && solved {
		st.result.Chunks = append(st.result.Chunks, globalize(st, c))
		return nil
	}
	st.temp = append(st.temp, c)
	return nil
}

// globalize converts a chunk's subsection-local indices into root-relative
// indices using the state's current left/right views.
func globalize(st *state, c Chunk) Chunk {
	c.LeftStart = st.left.Global(c.LeftStart)
	c.RightStart = st.right.Global(c.RightStart)
	return c
}
