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
	"math/rand"
	"testing"

	"github.com/shenwei356/paired"
)

// benchmarkAlign runs alignments of random DNA sequences of lengths n and m.
func benchmarkAlign(b *testing.B, n, m int) {
	r := rand.New(rand.NewSource(1))
	x := randSeq(r, n, "ACGT")
	y := randSeq(r, m, "ACGT")
	algn := paired.New[byte, int](nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		algn.Align(x, y)
	}
}

func BenchmarkAlign100(b *testing.B) {
	benchmarkAlign(b, 100, 100)
}

func BenchmarkAlign500(b *testing.B) {
	benchmarkAlign(b, 500, 500)
}

func BenchmarkAlign1000x200(b *testing.B) {
	benchmarkAlign(b, 1000, 200)
}
