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

// newMatrix returns a matrix of the given shape filled with zeros.
// Every row is a separate allocation, so writing to one row never
// touches another.
func newMatrix[S Number](nRows, nCols int) [][]S {
	m := make([][]S, nRows)
	for i := range m {
		m[i] = make([]S, nCols)
	}
	return m
}

// similarityMatrix builds S where S[i][j] is the score of pairing x[i] with y[j].
func similarityMatrix[T any, S Number](x, y []T, scorer Scorer[T, S]) [][]S {
	s := newMatrix[S](len(x), len(y))
	var row []S
	for i, ex := range x {
		row = s[i]
		for j, ey := range y {
			row[j] = scorer(ex, ey)
		}
	}
	return s
}
