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

// AlgoNone is the trivial algorithm: the longest equal prefix, then
// whatever remains of the left as a deletion, then whatever remains of the
// right as an insertion. It always succeeds given memory and serves both as
// the terminal fallback and as the depth-cap escape hatch.
func AlgoNone(_ *AlgoConfig, st *state) Outcome {
	ll, rl := st.left.Len(), st.right.Len()

	prefix := 0
	for prefix < ll && prefix < rl && atomsEqual(st.left, st.right, prefix, prefix) {
		prefix++
	}

	if prefix > 0 {
		if err := addChunk(st, true, 0, prefix, 0, prefix); err != nil {
			return OutcomeENOMEM
		}
	}
	if rem := ll - prefix; rem > 0 {
		if err := addChunk(st, true, prefix, rem, prefix, 0); err != nil {
			return OutcomeENOMEM
		}
	}
	if rem := rl - prefix; rem > 0 {
		if err := addChunk(st, true, prefix, 0, prefix, rem); err != nil {
			return OutcomeENOMEM
		}
	}
	return OutcomeOK
}
