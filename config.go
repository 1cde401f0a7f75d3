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

// defaultMaxRecursionDepth is used when Config.MaxRecursionDepth is zero.
const defaultMaxRecursionDepth = 1024

// Algorithm is the uniform contract every diffing pass implements: given its
// configuration and the current engine state, resolve (part of) st.left and
// st.right, appending chunks to st.temp via addChunk.
type Algorithm func(cfg *AlgoConfig, st *state) Outcome

// AlgoConfig is a node in the algorithm tree: an implementation plus its
// inner (for refining unsolved chunks) and fallback (for USE_FALLBACK)
// successors. A nil Fallback means the trivial algorithm.
type AlgoConfig struct {
	Impl Algorithm

	// PermittedStateSize bounds algo_myers's quadratic state in bytes. Zero
	// disables the cap.
	PermittedStateSize int64

	Inner    *AlgoConfig
	Fallback *AlgoConfig
}

// Config is the top-level input to Run.
type Config struct {
	Atomizer Atomizer

	Root *AlgoConfig

	// MaxRecursionDepth bounds nested orchestrator calls; 0 means
	// defaultMaxRecursionDepth.
	MaxRecursionDepth int
}

// DefaultAlgoConfig returns the reference composition described in the
// design overview: Myers-full first, capped at 1M ints of state and falling
// back to Patience beyond that; Patience recurses into itself on residual gaps and falls
// back to Myers-divide when it finds no common-unique atoms; Myers-divide
// recurses into Myers-full and falls back to the trivial algorithm.
func DefaultAlgoConfig() *AlgoConfig {
	none := &AlgoConfig{Impl: AlgoNone}

	myersDivide := &AlgoConfig{Impl: AlgoMyersDivide, Fallback: none}
	myers := &AlgoConfig{Impl: AlgoMyers, PermittedStateSize: 1024 * 1024 * intSize}
	patience := &AlgoConfig{Impl: AlgoPatience, Fallback: myersDivide}

	patience.Inner = patience
	myersDivide.Inner = myers
	myers.Inner = myers
	myers.Fallback = patience

	return myers
}

// DefaultConfig returns a Config using the default line Atomizer, the
// reference algorithm composition, and the default recursion depth.
func DefaultConfig() Config {
	return Config{
		Atomizer: LineAtomizer{},
		Root:     DefaultAlgoConfig(),
	}
}
