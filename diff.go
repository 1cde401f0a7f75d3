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
	"github.com/ethdiff/godiff/internal/metrics"
	"github.com/ethdiff/godiff/internal/xlog"
)

// Run computes a minimal-edit, line-oriented diff between left and right
// using cfg's atomizer and algorithm composition, and returns the ordered
// list of chunks covering both inputs.
func Run(cfg Config, left, right []byte) (*Result, error) {
	if cfg.Atomizer == nil {
		return &Result{}, ErrInvalidInput
	}

	depth := cfg.MaxRecursionDepth
	if depth <= 0 {
		depth = defaultMaxRecursionDepth
	}

	leftAtoms, rightAtoms := cfg.Atomizer.Atomize(left, right)
	leftRoot := NewRoot(left, leftAtoms)
	rightRoot := NewRoot(right, rightAtoms)

	result := &Result{Left: leftRoot, Right: rightRoot}
	st := &state{
		result: result,
		left:   leftRoot,
		right:  rightRoot,
		depth:  depth,
	}

	xlog.Debug("diff: starting run", "left_atoms", leftRoot.Len(), "right_atoms", rightRoot.Len())
	metrics.RunsStarted.Inc()

	switch rc := runOrchestrator(cfg.Root, st); rc {
	case OutcomeOK:
		return result, nil
	case OutcomeENOMEM:
		return result, ErrOutOfMemory
	default:
		return result, ErrInvalidInput
	}
}
