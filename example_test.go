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

package paired_test

import (
	"fmt"
	"strings"

	"github.com/shenwei356/paired"
)

func ExampleAlign() {
	x := strings.Fields("The quick brown fox jumped over the lazy dog")
	y := strings.Fields("The brown fox leaped over the lazy dog")

	aln := paired.Align(x, y)
	fmt.Println(aln)

	q, a, t := paired.AlignmentText(aln, x, y, nil)
	fmt.Println(q)
	fmt.Println(a)
	fmt.Println(t)

	// Output:
	// [(0,0) (1,-) (2,1) (3,2) (4,3) (5,4) (6,5) (7,6) (8,7)]
	// The quick brown fox jumped over the lazy dog
	// |||       ||||| |||        |||| ||| |||| |||
	// The ----- brown fox leaped over the lazy dog
}

func ExampleAlignWithScorer() {
	x := strings.Fields("The quick Fox")
	y := strings.Fields("the FOX")

	aln := paired.AlignWithScorer(x, y, -1.5, func(a, b string) float64 {
		if strings.EqualFold(a, b) {
			return 2
		}
		return -1
	})
	fmt.Println(aln)

	// Output:
	// [(0,0) (1,-) (2,1)]
}

func ExampleNewCIGAR() {
	x := []byte("ACCATACTCG")
	y := []byte("AGGATGCTCG")

	algn := paired.New[byte](&paired.Options[int]{MatchScore: 2, MismatchScore: -1, GapScore: -2})
	aln, score := algn.AlignScore(x, y)

	cigar := paired.NewCIGAR(aln, x, y)
	fmt.Printf("score: %d, cigar: %s, matches: %d/%d\n", score, cigar, cigar.Matches, cigar.AlignLen)
	paired.RecycleCIGAR(cigar)

	// Output:
	// score: 11, cigar: 1M2X2M1X4M, matches: 7/10
}
