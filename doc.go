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

// Package diff computes a minimal-edit, line-oriented diff between two byte
// buffers and reports the result as an ordered list of equal/removed/added
// chunks.
//
// The engine is a small recursive composition of algorithms. Each algorithm
// is handed a bounded subsection of the two inputs and either solves it
// outright, emits a mixture of solved and unsolved sub-chunks for further
// refinement, or asks to fall back to a configured alternate. The
// orchestrator (see engine.go) drives this composition and enforces a
// recursion depth cap.
//
// File I/O, memory-mapping, command-line parsing and output formatting are
// deliberately kept out of this package; see internal/mmapfile, internal/format
// and cmd/godiff for those concerns.
package diff
