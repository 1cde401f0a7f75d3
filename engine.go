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
	"reflect"
	"runtime"
	"strings"

	"github.com/ethdiff/godiff/internal/metrics"
	"github.com/ethdiff/godiff/internal/xlog"
)

// algoName resolves a function value to a short name ("AlgoMyers") for
// metric labels, via the standard reflect/runtime introspection trick.
func algoName(fn Algorithm) string {
	name := runtime.FuncForPC(reflect.ValueOf(fn).Pointer()).Name()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Result is the output of a diff: the two root views plus the ordered list
// of solved chunks covering them.
type Result struct {
	Left, Right *Data
	Chunks      []Chunk
}

// state is the engine's per-frame working set: the shared result, the
// subsection pair currently being resolved, the remaining recursion
// headroom, and the temporary chunk list an algorithm fills in before the
// orchestrator drains it.
type state struct {
	result *Result
	left   *Data
	right  *Data
	depth  int
	temp   []Chunk
}

// runOrchestrator implements the five-step contract: pick the trivial
// algorithm on missing config or exhausted depth, invoke the configured
// algorithm, chase USE_FALLBACK, and otherwise drain the temporary list,
// promoting solved chunks and recursing depth-first into unsolved ones.
func runOrchestrator(cfg *AlgoConfig, st *state) Outcome {
	if cfg == nil {
		return runTrivial(st)
	}
	if st.depth <= 0 {
		metrics.DepthCapHits.Inc()
		return runTrivial(st)
	}

	name := algoName(cfg.Impl)
	metrics.AlgorithmInvocations.WithLabelValues(name).Inc()

	st.temp = st.temp[:0]
	rc := cfg.Impl(cfg, st)

	switch rc {
	case OutcomeUseFallback:
		metrics.FallbackTransitions.WithLabelValues(name).Inc()
		xlog.Debug("diff: algorithm declined, falling back",
			"algorithm", name, "left_len", st.left.Len(), "right_len", st.right.Len())
		return runOrchestrator(cfg.Fallback, st)
	case OutcomeOK:
		// fall through to drain
	default:
		return rc
	}

	pending := st.temp
	st.temp = nil
	for _, c := range pending {
		if c.Solved {
			st.result.Chunks = append(st.result.Chunks, globalize(st, c))
			continue
		}
		nested := &state{
			result: st.result,
			left:   st.left.Sub(c.LeftStart, c.LeftCount),
			right:  st.right.Sub(c.RightStart, c.RightCount),
			depth:  st.depth - 1,
		}
		if rc := runOrchestrator(cfg.Inner, nested); rc != OutcomeOK {
			return rc
		}
	}
	return OutcomeOK
}

// runTrivial invokes the trivial algorithm directly and drains its output
// inline; it never itself produces unsolved chunks, so no recursion is
// needed here.
func runTrivial(st *state) Outcome {
	metrics.AlgorithmInvocations.WithLabelValues(algoName(AlgoNone)).Inc()
	st.temp = st.temp[:0]
	rc := AlgoNone(nil, st)
	if rc != OutcomeOK {
		return rc
	}
	for _, c := range st.temp {
		st.result.Chunks = append(st.result.Chunks, globalize(st, c))
	}
	st.temp = nil
	return OutcomeOK
}
