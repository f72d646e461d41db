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

// forwardPass fills the Needleman-Wunsch matrix F, where F[i][j] is the best
// score of aligning the first i elements of x with the first j elements of y.
// The first row and column are the scores of aligning a prefix with gaps only.
//
// Only the scores are stored. Which move produced a cell is decided later by
// the checking order in backwardPass.
func forwardPass[S Number](nx, ny int, s [][]S, gap S) [][]S {
	f := newMatrix[S](nx+1, ny+1)
	// f[0][0] stays 0, as 0*gap is -0 for float scores.
	for j := 1; j <= ny; j++ {
		f[0][j] = S(j) * gap
	}

	// the deletion scores of a whole row only depend on the previous row.
	deletions := make([]S, ny+1)

	var prev, cur []S
	var match, insert, best S
	for i := 1; i <= nx; i++ {
		prev, cur = f[i-1], f[i]
		for j, v := range prev {
			deletions[j] = v + gap
		}

		cur[0] = deletions[0]
		for j := 1; j <= ny; j++ {
			match = prev[j-1] + s[i-1][j-1]
			insert = cur[j-1] + gap

			best = match
			if deletions[j] > best {
				best = deletions[j]
			}
			if insert > best {
				best = insert
			}
			cur[j] = best
		}
	}

	return f
}

// backwardPass walks F from (nx, ny) back to (0, 0) and returns the pairs of
// one optimal alignment in start-to-end order.
//
// When several moves reach a cell with the same score, the diagonal move wins
// over the vertical one (x element against a gap), and the vertical one wins
// over the horizontal one (y element against a gap).
func backwardPass[S Number](nx, ny int, s, f [][]S, gap S) Alignment {
	aln := make(Alignment, 0, max(nx, ny))

	i, j := nx, ny
	for i > 0 || j > 0 {
		if i > 0 && j > 0 && f[i][j] == f[i-1][j-1]+s[i-1][j-1] {
			aln = append(aln, Pair{X: i - 1, Y: j - 1})
			i--
			j--
		} else if i > 0 && f[i][j] == f[i-1][j]+gap {
			aln = append(aln, Pair{X: i - 1, Y: Gap})
			i--
		} else {
			// one of the three moves always holds, so this must be the horizontal one.
			aln = append(aln, Pair{X: Gap, Y: j - 1})
			j--
		}
	}

	aln.reverse()
	return aln
}
