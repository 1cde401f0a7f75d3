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

import "errors"

var (
	// ErrInvalidInput is returned by Run when the configuration or inputs are
	// malformed: a missing atomizer, or a negative buffer length.
	ErrInvalidInput = errors.New("diff: invalid input")

	// ErrOutOfMemory is returned when an algorithm could not allocate its
	// working state.
	ErrOutOfMemory = errors.New("diff: out of memory")
)

// Outcome is the result of a single algorithm invocation.
type Outcome int

const (
	// OutcomeOK means the algorithm resolved its subsection; chunks were
	// added to the state's temporary list.
	OutcomeOK Outcome = iota
	// OutcomeUseFallback means the algorithm declined and the orchestrator
	// should tail-call the configured fallback.
	OutcomeUseFallback
	// OutcomeENOMEM means an allocation failed; the whole diff aborts.
	OutcomeENOMEM
	// OutcomeEINVAL means malformed input. No algorithm produces it; Run
	// reports malformed input by returning ErrInvalidInput directly.
	OutcomeEINVAL
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "OK"
	case OutcomeUseFallback:
		return "USE_FALLBACK"
	case OutcomeENOMEM:
		return "ENOMEM"
	case OutcomeEINVAL:
		return "EINVAL"
	default:
		return "UNKNOWN"
	}
}
