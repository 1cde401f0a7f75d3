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

// assertCoversAndOrders checks the coverage and ordering invariants that
// must hold for any fully-solved chunk list regardless of which algorithm
// produced it: chunks tile both sides with no gap or overlap, and are
// emitted in non-decreasing left/right order.
func assertCoversAndOrders(t *testing.T, chunks []Chunk, leftLen, rightLen int) {
	t.Helper()
	wantLeft, wantRight := 0, 0
	for _, c := range chunks {
		require.Equal(t, wantLeft, c.LeftStart)
		require.Equal(t, wantRight, c.RightStart)
		wantLeft += c.LeftCount
		wantRight += c.RightCount
	}
	require.Equal(t, leftLen, wantLeft)
	require.Equal(t, rightLen, wantRight)
}

func TestAlgoMyersClassicExample(t *testing.T) {
	// The worked example from Myers' 1986 paper: A = ABCABBA, B = CBABAC.
	left := newTestData([]string{"A\n", "B\n", "C\n", "A\n", "B\n", "B\n", "A\n"})
	right := newTestData([]string{"C\n", "B\n", "A\n", "B\n", "A\n", "C\n"})
	st := newTestState(left, right)

	rc := AlgoMyers(&AlgoConfig{Impl: AlgoMyers}, st)
	require.Equal(t, OutcomeOK, rc)
	require.Empty(t, st.temp, "AlgoMyers must fully solve its input")
	assertCoversAndOrders(t, st.result.Chunks, left.Len(), right.Len())

	var reconstructedLeft, reconstructedRight []string
	for _, c := range st.result.Chunks {
		for i := 0; i < c.LeftCount; i++ {
			reconstructedLeft = append(reconstructedLeft, linesOf(left)[c.LeftStart+i])
		}
		for i := 0; i < c.RightCount; i++ {
			reconstructedRight = append(reconstructedRight, linesOf(right)[c.RightStart+i])
		}
	}
	require.Equal(t, linesOf(left), reconstructedLeft)
	require.Equal(t, linesOf(right), reconstructedRight)
}

func TestAlgoMyersIdenticalInputsOneEqualChunk(t *testing.T) {
	left := newTestData([]string{"a\n", "b\n", "c\n"})
	right := newTestData([]string{"a\n", "b\n", "c\n"})
	st := newTestState(left, right)

	rc := AlgoMyers(&AlgoConfig{Impl: AlgoMyers}, st)
	require.Equal(t, OutcomeOK, rc)
	require.Equal(t, []Chunk{{LeftStart: 0, LeftCount: 3, RightStart: 0, RightCount: 3, Solved: true}}, st.result.Chunks)
}

func TestAlgoMyersBothEmpty(t *testing.T) {
	left := newTestData(nil)
	right := newTestData(nil)
	st := newTestState(left, right)

	rc := AlgoMyers(&AlgoConfig{Impl: AlgoMyers}, st)
	require.Equal(t, OutcomeOK, rc)
	require.Empty(t, st.result.Chunks)
}

func TestAlgoMyersFallsBackWhenStateSizeExceedsCap(t *testing.T) {
	left := newTestData([]string{"a\n", "b\n", "c\n", "d\n"})
	right := newTestData([]string{"w\n", "x\n", "y\n", "z\n"})
	st := newTestState(left, right)

	rc := AlgoMyers(&AlgoConfig{Impl: AlgoMyers, PermittedStateSize: 1}, st)
	require.Equal(t, OutcomeUseFallback, rc)
	require.Empty(t, st.temp)
	require.Empty(t, st.result.Chunks, "a declined algorithm must not have mutated the accumulator")
}

func TestAlgoMyersFallbackMonotonicity(t *testing.T) {
	// Raising the cap from "always decline" to "never decline" must not
	// turn a previously-accepted input into a rejected one.
	left := newTestData([]string{"a\n", "b\n"})
	right := newTestData([]string{"a\n", "c\n"})

	stLow := newTestState(left, right)
	rcLow := AlgoMyers(&AlgoConfig{Impl: AlgoMyers, PermittedStateSize: 1}, stLow)
	require.Equal(t, OutcomeUseFallback, rcLow)

	stHigh := newTestState(left, right)
	rcHigh := AlgoMyers(&AlgoConfig{Impl: AlgoMyers, PermittedStateSize: 0}, stHigh)
	require.Equal(t, OutcomeOK, rcHigh)
}
