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

package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	diff "github.com/ethdiff/godiff"
)

// Stat renders a "git diff --stat"-style single-row summary: lines
// inserted, lines deleted, and a proportional +/- bar.
func Stat(r *diff.Result, w io.Writer, leftName, rightName string) error {
	ins, del := 0, 0
	for _, c := range r.Chunks {
		switch {
		case c.RightCount == 0:
			del += c.LeftCount
		case c.LeftCount == 0:
			ins += c.RightCount
		}
	}

	const barWidth = 40
	total := ins + del
	plusN, minusN := 0, 0
	if total > 0 {
		plusN = ins * barWidth / total
		minusN = barWidth - plusN
		if ins == 0 {
			plusN, minusN = 0, barWidth
		}
		if del == 0 {
			plusN, minusN = barWidth, 0
		}
	}
	bar := strings.Repeat("+", plusN) + strings.Repeat("-", minusN)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"file", "changes", "insertions", "deletions"})
	table.Append([]string{
		fmt.Sprintf("%s => %s", leftName, rightName),
		fmt.Sprintf("%d %s", total, bar),
		fmt.Sprintf("%d", ins),
		fmt.Sprintf("%d", del),
	})
	table.Render()
	return nil
}
