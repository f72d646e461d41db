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
	"bytes"
	"strings"
	"testing"

	"github.com/shenwei356/paired"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlot(t *testing.T) {
	algn := paired.New[string, int](nil)
	x := []string{"a", "b"}
	y := []string{"b", "a"}

	var buf bytes.Buffer
	algn.Plot(&buf, x, y)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2+3)
	assert.Equal(t, "   \t \t   \t   1\t   2", lines[0])
	assert.Equal(t, "   \t \t   \t   b\t   a", lines[1])
	assert.Equal(t, "  0\t \t⊕  0\t  -3\t  -6", lines[2])
	assert.Equal(t, "  1\ta\t  -3\t⬂ -1\t  -2", lines[3])
	assert.Equal(t, "  2\tb\t  -6\t  -2\t⬂ -2", lines[4])
}

func TestPlotGaps(t *testing.T) {
	algn := paired.New[byte, int](nil)
	x := []byte("AB")
	y := []byte("B")

	var buf bytes.Buffer
	algn.Plot(&buf, x, y)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2+3)
	assert.Equal(t, "  0\t \t⊕  0\t  -3", lines[2])
	assert.Equal(t, "  1\t65\t↧ -3\t  -1", lines[3])
	assert.Equal(t, "  2\t66\t  -6\t⬊ -2", lines[4])
}

func TestPlotEmpty(t *testing.T) {
	algn := paired.New[string, float64](nil)

	var buf bytes.Buffer
	algn.Plot(&buf, nil, []string{"a"})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "  0\t \t⊕  0\t⟼ -3", lines[2])
}
