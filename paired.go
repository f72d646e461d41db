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

import "fmt"

// Number is the type set of alignment scores.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Scorer returns the score of pairing an element of x with an element of y.
// It should only depend on its two arguments.
type Scorer[T any, S Number] func(a, b T) S

// StandardScorer returns a Scorer giving match for equal elements and mismatch
// for different ones.
func StandardScorer[T comparable, S Number](match, mismatch S) Scorer[T, S] {
	return func(a, b T) S {
		if a == b {
			return match
		}
		return mismatch
	}
}

// Options contains the scores of the standard scorer and the gap score.
type Options[S Number] struct {
	MatchScore    S
	MismatchScore S
	GapScore      S // score of pairing an element with a gap
}

// DefaultOptions is used when no options are given.
var DefaultOptions = Options[int]{
	MatchScore:    1,
	MismatchScore: -1,
	GapScore:      -3,
}

// Gap is the index used in a Pair for the side that has no element.
const Gap = -1

// Pair is one column of an alignment: an index into x and an index into y.
// One of them may be Gap, but not both.
type Pair struct {
	X, Y int
}

// IsGap tells if one side of the pair is a gap.
func (p Pair) IsGap() bool { return p.X == Gap || p.Y == Gap }

// IsInsertion tells if an element of y is paired with a gap.
func (p Pair) IsInsertion() bool { return p.X == Gap }

// IsDeletion tells if an element of x is paired with a gap.
func (p Pair) IsDeletion() bool { return p.Y == Gap }

func (p Pair) String() string {
	return fmt.Sprintf("(%s,%s)", index2str(p.X), index2str(p.Y))
}

func index2str(i int) string {
	if i == Gap {
		return "-"
	}
	return fmt.Sprintf("%d", i)
}

// Alignment is a global alignment of two sequences, as a list of index pairs
// in increasing order of both sequences.
type Alignment []Pair

// reverse reverses the pairs in place.
func (aln Alignment) reverse() {
	for i, j := 0, len(aln)-1; i < j; i, j = i+1, j-1 {
		aln[i], aln[j] = aln[j], aln[i]
	}
}

// Aligner holds a scoring scheme. It keeps no data between alignments,
// so one Aligner can be shared by multiple goroutines.
type Aligner[T any, S Number] struct {
	gap    S
	scorer Scorer[T, S]
}

// New returns an Aligner using the standard scorer built from the options.
// Nil opt means DefaultOptions, converted to the score type S.
func New[T comparable, S Number](opt *Options[S]) *Aligner[T, S] {
	if opt == nil {
		opt = defaultOptions[S]()
	}
	return &Aligner[T, S]{
		gap:    opt.GapScore,
		scorer: StandardScorer[T, S](opt.MatchScore, opt.MismatchScore),
	}
}

// defaultOptions converts DefaultOptions to the score type S.
func defaultOptions[S Number]() *Options[S] {
	return &Options[S]{
		MatchScore:    S(DefaultOptions.MatchScore),
		MismatchScore: S(DefaultOptions.MismatchScore),
		GapScore:      S(DefaultOptions.GapScore),
	}
}

// NewWithScorer returns an Aligner using a custom scorer.
func NewWithScorer[T any, S Number](gap S, scorer Scorer[T, S]) *Aligner[T, S] {
	if scorer == nil {
		panic("paired: nil scorer")
	}
	return &Aligner[T, S]{
		gap:    gap,
		scorer: scorer,
	}
}

// Align returns the optimal global alignment of x and y.
func (algn *Aligner[T, S]) Align(x, y []T) Alignment {
	aln, _ := algn.AlignScore(x, y)
	return aln
}

// AlignScore returns the optimal global alignment of x and y, and its score.
func (algn *Aligner[T, S]) AlignScore(x, y []T) (Alignment, S) {
	nx, ny := len(x), len(y)
	s := similarityMatrix(x, y, algn.scorer)
	f := forwardPass(nx, ny, s, algn.gap)
	return backwardPass(nx, ny, s, f, algn.gap), f[nx][ny]
}

// Score computes the score of an alignment of x and y with the scheme of the Aligner.
// The alignment does not need to be optimal.
func (algn *Aligner[T, S]) Score(x, y []T, aln Alignment) S {
	var score S
	for _, p := range aln {
		if p.IsGap() {
			score += algn.gap
			continue
		}
		score += algn.scorer(x[p.X], y[p.Y])
	}
	return score
}

// Align returns the optimal global alignment of x and y with DefaultOptions.
func Align[T comparable](x, y []T) Alignment {
	return New[T, int](nil).Align(x, y)
}

// AlignWithOptions returns the optimal global alignment of x and y with
// the standard scorer. Nil opt means DefaultOptions.
func AlignWithOptions[T comparable, S Number](x, y []T, opt *Options[S]) Alignment {
	return New[T](opt).Align(x, y)
}

// AlignWithScorer returns the optimal global alignment of x and y with a custom scorer.
func AlignWithScorer[T any, S Number](x, y []T, gap S, scorer Scorer[T, S]) Alignment {
	return NewWithScorer(gap, scorer).Align(x, y)
}
