// Copyright © 2024 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package paired

import (
	"fmt"
	"io"
)

// Plot plots the forward matrix of aligning x and y as a tab-delimited text table,
// with the rows for x and the columns for y.
// The first row and column are for the empty prefixes.
//
// A table cell contains the score, and cells on the traceback path
// are prefixed with the type symbol of the move reaching them.
// Symbols:
//
//	⊕    Origin
//	⬊    Match (pair with a positive score)
//	⬂    Mismatch
//	↧    Deletion, an element of x with a gap
//	⟼    Insertion, an element of y with a gap
func (algn *Aligner[T, S]) Plot(wtr io.Writer, x, y []T) {
	nx, ny := len(x), len(y)
	s := similarityMatrix(x, y, algn.scorer)
	f := forwardPass(nx, ny, s, algn.gap)
	aln := backwardPass(nx, ny, s, f, algn.gap)

	// mark the path
	path := make([][]uint8, nx+1)
	for i := range path {
		path[i] = make([]uint8, ny+1)
	}
	path[0][0] = moveOrigin
	var i, j int
	for _, p := range aln {
		switch {
		case p.IsDeletion():
			i++
		case p.IsInsertion():
			j++
		default:
			i++
			j++
		}
		if p.IsGap() {
			path[i][j] = p.move(false)
		} else {
			path[i][j] = p.move(s[p.X][p.Y] > 0)
		}
	}

	// sequence y

	fmt.Fprintf(wtr, "   \t \t   ")
	for j := range y {
		fmt.Fprintf(wtr, "\t%4d", j+1)
	}
	fmt.Fprintln(wtr)
	fmt.Fprintf(wtr, "   \t \t   ")
	for _, e := range y {
		fmt.Fprintf(wtr, "\t%4v", e)
	}
	fmt.Fprintln(wtr)

	for r, row := range f {
		if r == 0 {
			fmt.Fprintf(wtr, "%3d\t ", r)
		} else {
			fmt.Fprintf(wtr, "%3d\t%v", r, x[r-1]) // an element in x
		}
		for c, v := range row {
			fmt.Fprintf(wtr, "\t%c%3v", moveArrows[path[r][c]], v)
		}
		fmt.Fprintln(wtr)
	}
}
