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

// Package mmapfile memory-maps the two input files the CLI diffs, keeping
// file I/O and the OS-specific mmap syscalls entirely out of package diff.
package mmapfile

import (
	"io"

	"golang.org/x/exp/mmap"
)

// Buffer is a memory-mapped file's contents plus its handle.
type Buffer interface {
	io.Closer
	Bytes() []byte
}

type buffer struct {
	r *mmap.ReaderAt
	b []byte
}

// Open memory-maps the file at path read-only.
func Open(path string) (Buffer, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	b := make([]byte, r.Len())
	if _, err := r.ReadAt(b, 0); err != nil && err != io.EOF {
		r.Close()
		return nil, err
	}
	return &buffer{r: r, b: b}, nil
}

// Bytes returns the file's full contents.
func (f *buffer) Bytes() []byte { return f.b }

// Close unmaps the file.
func (f *buffer) Close() error { return f.r.Close() }
