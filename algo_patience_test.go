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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlgoPatienceFallsBackWithNoCommonUniqueAtoms(t *testing.T) {
	// Every line repeats on at least one side, so no anchor can be formed.
	left := newTestData([]string{"a\n", "a\n"})
	right := newTestData([]string{"a\n", "a\n", "a\n"})
	st := newTestState(left, right)

	rc := AlgoPatience(nil, st)
	require.Equal(t, OutcomeUseFallback, rc)
	require.Empty(t, st.temp)
	require.Empty(t, st.result.Chunks)
}

func TestAlgoPatienceAnchorsOnUniqueSharedLines(t *testing.T) {
	// "UNIQUE" appears exactly once on each side and anchors the match;
	// everything else is left as unsolved gaps for the inner algorithm.
	left := newTestData([]string{"a\n", "a\n", "UNIQUE\n", "b\n", "b\n"})
	right := newTestData([]string{"c\n", "UNIQUE\n", "d\n", "d\n"})
	st := newTestState(left, right)

	rc := AlgoPatience(nil, st)
	require.Equal(t, OutcomeOK, rc)

	chunks := allChunksInCallOrder(st)
	assertCoversAndOrders(t, chunks, left.Len(), right.Len())

	var anchor *Chunk
	for i := range chunks {
		if chunks[i].Solved && chunks[i].LeftCount == 1 && chunks[i].RightCount == 1 {
			anchor = &chunks[i]
		}
	}
	require.NotNil(t, anchor, "expected the UNIQUE line to anchor a solved equal chunk")
	require.Equal(t, "UNIQUE\n", string(left.Bytes(anchor.LeftStart)))
}

func TestAlgoPatienceIdenticalInputsAllUnique(t *testing.T) {
	left := newTestData([]string{"a\n", "b\n", "c\n"})
	right := newTestData([]string{"a\n", "b\n", "c\n"})
	st := newTestState(left, right)

	rc := AlgoPatience(nil, st)
	require.Equal(t, OutcomeOK, rc)
	require.Equal(t, []Chunk{{LeftStart: 0, LeftCount: 3, RightStart: 0, RightCount: 3, Solved: true}}, st.result.Chunks)
}

func TestMarkUniqueHandlesThreeOrMoreDuplicates(t *testing.T) {
	// The documented hazard: a naive pairwise "clear on every equal pair"
	// sweep double-decrements and can mis-mark an atom that occurs three or
	// more times. Three occurrences of "a" and one unique "b" must yield
	// exactly one unique atom.
	d := newTestData([]string{"a\n", "a\n", "a\n", "b\n"})
	s := newPatienceScratch(d.Len())
	markUnique(d, s)

	require.Equal(t, []bool{false, false, false, true}, s.uniqueInBoth)
}

func TestMarkUniqueAllDistinct(t *testing.T) {
	d := newTestData([]string{"a\n", "b\n", "c\n"})
	s := newPatienceScratch(d.Len())
	markUnique(d, s)

	for i, u := range s.uniqueInBoth {
		require.True(t, u, "index %d should be unique", i)
	}
}

func TestSwallowNeighboursExtendsAnchorOverIdenticalNeighbours(t *testing.T) {
	// "x" anchors uniquely; the identical "shared" lines flanking it on
	// both sides should be absorbed into its identStart/identEnd span.
	left := newTestData([]string{"shared\n", "x\n", "shared\n"})
	right := newTestData([]string{"shared\n", "x\n", "shared\n"})
	ls := newPatienceScratch(left.Len())
	rs := newPatienceScratch(right.Len())
	markUnique(left, ls)
	markUnique(right, rs)
	crossMatch(left, right, ls, rs)

	swallowNeighbours(left, right, ls, rs)

	require.True(t, ls.uniqueInBoth[1], "the 'x' anchor itself must survive")
	require.Equal(t, 0, ls.identStart[1])
	require.Equal(t, 3, ls.identEnd[1])
}
