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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunRejectsMissingAtomizer(t *testing.T) {
	_, err := Run(Config{}, []byte("a\n"), []byte("b\n"))
	require.ErrorIs(t, err, ErrInvalidInput)
}

// reconstruct rebuilds both sides from a Result's chunk list, verifying
// coverage (every atom accounted for exactly once) as a side effect.
func reconstruct(t *testing.T, r *Result) (left, right []string) {
	t.Helper()
	wantLeft, wantRight := 0, 0
	for _, c := range r.Chunks {
		require.Equal(t, wantLeft, c.LeftStart, "chunks must tile the left side with no gap or overlap")
		require.Equal(t, wantRight, c.RightStart, "chunks must tile the right side with no gap or overlap")
		for i := 0; i < c.LeftCount; i++ {
			left = append(left, string(r.Left.Bytes(c.LeftStart+i)))
		}
		for i := 0; i < c.RightCount; i++ {
			right = append(right, string(r.Right.Bytes(c.RightStart+i)))
		}
		wantLeft += c.LeftCount
		wantRight += c.RightCount
	}
	require.Equal(t, r.Left.Len(), wantLeft)
	require.Equal(t, r.Right.Len(), wantRight)
	return left, right
}

func linesWithNL(s ...string) []byte {
	return []byte(strings.Join(s, ""))
}

func TestRunCoverageAndPatchability(t *testing.T) {
	left := linesWithNL("one\n", "two\n", "three\n", "four\n")
	right := linesWithNL("zero\n", "one\n", "three\n", "four\n", "five\n")

	result, err := Run(DefaultConfig(), left, right)
	require.NoError(t, err)

	gotLeft, gotRight := reconstruct(t, result)
	require.Equal(t, strings.Join(strings.SplitAfter(string(left), "\n")[:4], ""), strings.Join(gotLeft, ""))
	require.Equal(t, strings.Join(strings.SplitAfter(string(right), "\n")[:5], ""), strings.Join(gotRight, ""))
}

func TestRunEqualChunksAreByteIdentical(t *testing.T) {
	left := linesWithNL("a\n", "b\n", "c\n", "d\n")
	right := linesWithNL("x\n", "b\n", "c\n", "y\n")

	result, err := Run(DefaultConfig(), left, right)
	require.NoError(t, err)

	for _, c := range result.Chunks {
		if c.LeftCount == 0 || c.RightCount == 0 {
			continue
		}
		require.Equal(t, c.LeftCount, c.RightCount, "an equal chunk must have matching counts on both sides")
		for i := 0; i < c.LeftCount; i++ {
			require.True(t, bytes.Equal(result.Left.Bytes(c.LeftStart+i), result.Right.Bytes(c.RightStart+i)),
				"equal chunk line %d must be byte-identical on both sides", i)
		}
	}
}

func TestRunIdenticalInputsYieldOneEqualChunk(t *testing.T) {
	buf := linesWithNL("a\n", "b\n", "c\n")
	result, err := Run(DefaultConfig(), buf, buf)
	require.NoError(t, err)
	require.Len(t, result.Chunks, 1)
	require.True(t, result.Chunks[0].Solved)
}

func TestRunIsDeterministic(t *testing.T) {
	left := linesWithNL("a\n", "x\n", "b\n", "y\n", "c\n")
	right := linesWithNL("a\n", "z\n", "b\n", "w\n", "c\n")

	first, err := Run(DefaultConfig(), left, right)
	require.NoError(t, err)
	second, err := Run(DefaultConfig(), left, right)
	require.NoError(t, err)

	require.Equal(t, first.Chunks, second.Chunks)
}

func TestRunTerminatesOnLargeRepetitiveInput(t *testing.T) {
	// A large, highly repetitive input exercises the full
	// myers -> patience -> myers_divide -> myers composition without
	// relying on AlgoMyers' quadratic state ever fitting; termination
	// itself (not runtime) is the property under test.
	var leftLines, rightLines []string
	for i := 0; i < 400; i++ {
		leftLines = append(leftLines, "same\n")
		rightLines = append(rightLines, "same\n")
	}
	leftLines[200] = "only-left\n"
	rightLines[200] = "only-right\n"

	result, err := Run(DefaultConfig(), linesWithNL(leftLines...), linesWithNL(rightLines...))
	require.NoError(t, err)
	reconstruct(t, result)
}

func TestRunHonoursMaxRecursionDepthWithoutHanging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxRecursionDepth = 1

	left := linesWithNL("a\n", "x\n", "b\n", "y\n", "c\n")
	right := linesWithNL("a\n", "z\n", "b\n", "w\n", "c\n")

	result, err := Run(cfg, left, right)
	require.NoError(t, err)
	reconstruct(t, result)
}

func TestRunBothEmpty(t *testing.T) {
	result, err := Run(DefaultConfig(), nil, nil)
	require.NoError(t, err)
	require.Empty(t, result.Chunks)
}

func TestRunAtomizerLawConcatenationReproducesInput(t *testing.T) {
	left := linesWithNL("one\n", "two\n", "three")
	right := linesWithNL("two\n", "three\n", "four")

	var a LineAtomizer
	leftAtoms, rightAtoms := a.Atomize(left, right)

	var rebuiltLeft, rebuiltRight []byte
	for _, at := range leftAtoms {
		rebuiltLeft = append(rebuiltLeft, at.bytes(left)...)
	}
	for _, at := range rightAtoms {
		rebuiltRight = append(rebuiltRight, at.bytes(right)...)
	}
	require.Equal(t, left, rebuiltLeft)
	require.Equal(t, right, rebuiltRight)
}

func TestRunForcedFallbackAcrossAlgorithmTreeCoversInput(t *testing.T) {
	// A degenerate state-size cap on the root Myers node forces an
	// immediate fallback to Patience and then, if needed, Myers-divide;
	// the run must still terminate and fully cover both sides.
	root := DefaultAlgoConfig()
	root.PermittedStateSize = 1

	cfg := Config{Atomizer: LineAtomizer{}, Root: root}
	left := linesWithNL("a\n", "b\n", "c\n", "d\n")
	right := linesWithNL("a\n", "x\n", "c\n", "d\n")

	result, err := Run(cfg, left, right)
	require.NoError(t, err)
	reconstruct(t, result)
}
