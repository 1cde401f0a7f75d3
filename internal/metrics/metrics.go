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

// Package metrics exposes the engine's counters as package-level
// prometheus collectors. The diff package only ever calls Inc/Add on the
// exported counters below; whether anything ever scrapes them (cmd/godiff's
// optional -metrics-addr) is none of its concern.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Registry is the registry godiff's own counters are registered to.
	// cmd/godiff optionally serves it over /metrics; nothing in package
	// diff touches it directly.
	Registry = prometheus.NewRegistry()

	// RunsStarted counts calls to diff.Run.
	RunsStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "godiff_runs_started_total",
		Help: "Number of diff.Run invocations.",
	})

	// AlgorithmInvocations counts orchestrator dispatches per algorithm
	// name.
	AlgorithmInvocations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "godiff_algorithm_invocations_total",
		Help: "Number of times each algorithm was invoked by the orchestrator.",
	}, []string{"algorithm"})

	// FallbackTransitions counts USE_FALLBACK transitions per algorithm
	// name that declined.
	FallbackTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "godiff_fallback_transitions_total",
		Help: "Number of USE_FALLBACK transitions, labeled by the declining algorithm.",
	}, []string{"algorithm"})

	// DepthCapHits counts orchestrator calls that hit the recursion depth
	// cap and resolved via the trivial algorithm instead.
	DepthCapHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "godiff_depth_cap_hits_total",
		Help: "Number of orchestrator recursions that were cut off by the depth cap.",
	})
)

func init() {
	Registry.MustRegister(RunsStarted, AlgorithmInvocations, FallbackTransitions, DepthCapHits)
}
