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

// kinds of moves in the traceback.
const (
	moveNone     uint8 = iota // not on the path
	moveOrigin                // the cell (0, 0)
	moveMatch                 // diagonal, equal elements
	moveMismatch              // diagonal, different elements
	moveDelete                // vertical, an element of x against a gap
	moveInsert                // horizontal, an element of y against a gap
)

var moveOps []byte = []byte{'.', '.', 'M', 'X', 'D', 'I'} // for CIGAR

var moveArrows []rune = []rune{' ', '⊕', '⬊', '⬂', '↧', '⟼'} // for visualization

// move returns the kind of move of a pair, given whether the paired elements are equal.
func (p Pair) move(equal bool) uint8 {
	switch {
	case p.IsDeletion():
		return moveDelete
	case p.IsInsertion():
		return moveInsert
	case equal:
		return moveMatch
	default:
		return moveMismatch
	}
}
