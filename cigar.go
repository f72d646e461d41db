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
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"
)

// CIGAR represent a CIGAR structure of an Alignment.
//
// Operations:
//
//	M  equal elements
//	X  different elements
//	D  an element of x paired with a gap
//	I  an element of y paired with a gap
type CIGAR struct {
	Ops []*CIGARRecord

	// Stats of the aligned region, from the first match to the last match,
	// no including flanking gaps and mismatches.
	AlignLen   uint32
	Matches    uint32
	Gaps       uint32
	GapRegions uint32
}

// CIGARRecord records the operation and the number.
type CIGARRecord struct {
	N  uint32
	Op byte
}

// NewCIGAR returns the CIGAR of an alignment of x and y, from the object pool.
// Elements are compared with ==.
func NewCIGAR[T comparable](aln Alignment, x, y []T) *CIGAR {
	return NewCIGARFunc(aln, func(i, j int) bool { return x[i] == y[j] })
}

// NewCIGARFunc is similar with NewCIGAR, but elements x[i] and y[j]
// are equal when equal(i, j) returns true.
func NewCIGARFunc(aln Alignment, equal func(i, j int) bool) *CIGAR {
	cigar := poolCIGAR.Get().(*CIGAR)
	cigar.reset()

	for _, p := range aln {
		cigar.Add(moveOps[p.move(!p.IsGap() && equal(p.X, p.Y))])
	}
	cigar.process()
	return cigar
}

// reset resets a CIGAR.
func (cigar *CIGAR) reset() {
	for _, r := range cigar.Ops {
		poolCIGARRecord.Put(r)
	}
	cigar.Ops = cigar.Ops[:0]

	cigar.AlignLen = 0
	cigar.Matches = 0
	cigar.Gaps = 0
	cigar.GapRegions = 0
}

// RecycleCIGAR recycles a CIGAR object.
func RecycleCIGAR(cigar *CIGAR) {
	if cigar != nil {
		poolCIGAR.Put(cigar)
	}
}

// object pool of a CIGAR.
var poolCIGAR = &sync.Pool{New: func() interface{} {
	cigar := CIGAR{
		Ops: make([]*CIGARRecord, 0, 128),
	}
	return &cigar
}}

// object pool of CIGARRecord.
var poolCIGARRecord = &sync.Pool{New: func() interface{} {
	return &CIGARRecord{}
}}

// Add adds an operation, it's merged into the last record if they are the same.
func (cigar *CIGAR) Add(op byte) {
	l := len(cigar.Ops)
	if l > 0 && cigar.Ops[l-1].Op == op {
		cigar.Ops[l-1].N++
		return
	}
	cigar.AddN(op, 1)
}

// AddN adds a new record and set its number as n.
func (cigar *CIGAR) AddN(op byte, n uint32) {
	r := poolCIGARRecord.Get().(*CIGARRecord)
	r.Op = op
	r.N = n
	cigar.Ops = append(cigar.Ops, r)
}

// process counts matches and gaps.
func (cigar *CIGAR) process() {
	s := cigar.Ops

	begin, end := -1, -1
	for i, op := range s {
		if op.Op == 'M' {
			begin = i
			break
		}
	}
	if begin < 0 { // no matches at all
		return
	}
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].Op == 'M' {
			end = i
			break
		}
	}

	var alen, matches, gaps, gapRegions uint32
	var op *CIGARRecord
	for i := begin; i <= end; i++ {
		op = s[i]
		alen += op.N
		switch op.Op {
		case 'M':
			matches += op.N
		case 'I', 'D':
			gaps += op.N
			gapRegions++
		}
	}
	cigar.AlignLen = alen
	cigar.Matches = matches
	cigar.Gaps = gaps
	cigar.GapRegions = gapRegions
}

// Identity returns the proportion of matches in the aligned region.
func (cigar *CIGAR) Identity() float64 {
	if cigar.AlignLen == 0 {
		return 0
	}
	return float64(cigar.Matches) / float64(cigar.AlignLen)
}

// String returns the CIGAR string.
func (cigar *CIGAR) String() string {
	buf := poolBytesBuffer.Get().(*bytes.Buffer)
	buf.Reset()

	for _, op := range cigar.Ops {
		buf.WriteString(strconv.Itoa(int(op.N)))
		buf.WriteByte(op.Op)
	}

	text := buf.String()
	poolBytesBuffer.Put(buf)
	return text
}

// AlignmentText returns the formatted alignment text for x, the markers, and y.
//
// Each pair is a column as wide as the wider of its two elements on the terminal.
// Gaps are filled with '-', and equal elements are marked with '|'.
// Columns are separated by a space, unless all elements are single-cell
// strings, e.g., characters.
// Elements are formatted with fmt.Sprint if format is nil.
func AlignmentText[T any](aln Alignment, x, y []T, format func(T) string) (string, string, string) {
	if format == nil {
		format = func(e T) string { return fmt.Sprint(e) }
	}

	cols := make([][2]string, len(aln))
	widths := make([]int, len(aln))
	sep := ""
	var w, wy int
	for i, p := range aln {
		w, wy = 0, 0
		if p.X != Gap {
			cols[i][0] = format(x[p.X])
			w = runewidth.StringWidth(cols[i][0])
		}
		if p.Y != Gap {
			cols[i][1] = format(y[p.Y])
			wy = runewidth.StringWidth(cols[i][1])
		}
		w = max(w, wy, 1)
		if w > 1 {
			sep = " "
		}
		widths[i] = w
	}

	bufQ := poolBytesBuffer.Get().(*bytes.Buffer)
	bufA := poolBytesBuffer.Get().(*bytes.Buffer)
	bufT := poolBytesBuffer.Get().(*bytes.Buffer)
	bufQ.Reset()
	bufA.Reset()
	bufT.Reset()

	for i, p := range aln {
		w = widths[i]
		if i > 0 {
			bufQ.WriteString(sep)
			bufA.WriteString(sep)
			bufT.WriteString(sep)
		}

		switch {
		case p.IsDeletion():
			bufQ.WriteString(runewidth.FillRight(cols[i][0], w))
			bufA.WriteString(strings.Repeat(" ", w))
			bufT.WriteString(strings.Repeat("-", w))
		case p.IsInsertion():
			bufQ.WriteString(strings.Repeat("-", w))
			bufA.WriteString(strings.Repeat(" ", w))
			bufT.WriteString(runewidth.FillRight(cols[i][1], w))
		default:
			bufQ.WriteString(runewidth.FillRight(cols[i][0], w))
			if cols[i][0] == cols[i][1] {
				bufA.WriteString(strings.Repeat("|", w))
			} else {
				bufA.WriteString(strings.Repeat(" ", w))
			}
			bufT.WriteString(runewidth.FillRight(cols[i][1], w))
		}
	}

	q, a, t := bufQ.String(), bufA.String(), bufT.String()
	poolBytesBuffer.Put(bufQ)
	poolBytesBuffer.Put(bufA)
	poolBytesBuffer.Put(bufT)
	return q, a, t
}

// object pool of bytes buffers.
var poolBytesBuffer = &sync.Pool{New: func() interface{} {
	buf := make([]byte, 1024)
	return bytes.NewBuffer(buf)
}}
