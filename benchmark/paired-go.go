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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/profile"
	"github.com/shenwei356/paired"
)

var version = "0.1.0"

func main() {
	app := filepath.Base(os.Args[0])
	usage := fmt.Sprintf(`
Needleman-Wunsch global alignment of words or characters in Golang

Version: v%s

Input file format:
  Pairs of lines, a query line starting with '>' followed by a target line starting with '<'.
  Example:
  >The quick brown fox jumped over the lazy dog
  <The brown fox leaped over the lazy dog

Usage: 
  1. Align two sequences from the positional arguments.

        %s [options] <query seq> <target seq>

  2. Align sequence pairs from the input file (described above).

        %s [options] -i input.txt

Options/Flags:
`, version, app, app)

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}

	help := flag.Bool("h", false, "print help message")
	infile := flag.String("i", "", "input file. ")
	byChar := flag.Bool("c", false, "align characters instead of words")
	matchScore := flag.Float64("M", float64(paired.DefaultOptions.MatchScore), "match score")
	mismatchScore := flag.Float64("X", float64(paired.DefaultOptions.MismatchScore), "mismatch score")
	gapScore := flag.Float64("G", float64(paired.DefaultOptions.GapScore), "gap score")
	outPairs := flag.Bool("P", false, "output index pairs of the alignment")
	outTable := flag.Bool("T", false, "output the forward matrix with the traceback path")
	noOutput := flag.Bool("N", false, "do not output alignment (for benchmark)")

	pprofCPU := flag.Bool("p", false, "cpu pprof. go tool pprof -http=:8080 cpu.pprof")
	pprofMem := flag.Bool("m", false, "mem pprof. go tool pprof -http=:8080 mem.pprof")

	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	// go tool pprof -http=:8080 cpu.pprof
	if *pprofCPU {
		prof = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	} else if *pprofMem {
		prof = profile.Start(profile.MemProfile, profile.ProfilePath("."))
	}
	if prof != nil {
		defer prof.Stop()
	}

	outfh := bufio.NewWriter(os.Stdout)

	algn := paired.New[string](&paired.Options[float64]{
		MatchScore:    *matchScore,
		MismatchScore: *mismatchScore,
		GapScore:      *gapScore,
	})

	defer outfh.Flush()

	split := strings.Fields
	if *byChar {
		split = chars
	}

	label := color.New(color.FgCyan).SprintFunc()

	falign2Seq := func(q, t string) {
		_q, _t := split(q), split(t)
		aln, score := algn.AlignScore(_q, _t)

		if *noOutput {
			return
		}

		Q, A, T := paired.AlignmentText(aln, _q, _t, nil)
		cigar := paired.NewCIGAR(aln, _q, _t)

		fmt.Fprintf(outfh, "%s   %s\n", label("query"), Q)
		fmt.Fprintf(outfh, "        %s\n", A)
		fmt.Fprintf(outfh, "%s  %s\n", label("target"), T)
		fmt.Fprintf(outfh, "%s   %s\n", label("cigar"), cigar.String())
		fmt.Fprintf(outfh, "score: %v, length: %d, matches: %d (%.2f%%), gaps: %d, gap regions: %d\n",
			score, cigar.AlignLen, cigar.Matches, cigar.Identity()*100,
			cigar.Gaps, cigar.GapRegions)
		if *outPairs {
			fmt.Fprintf(outfh, "%s   %s\n", label("pairs"), pairs2str(aln))
		}
		if *outTable {
			algn.Plot(outfh, _q, _t)
		}
		fmt.Fprintln(outfh)

		paired.RecycleCIGAR(cigar)
	}

	var q, t string

	// two sequences from positional arguments

	if *infile == "" {
		if flag.NArg() != 2 {
			checkError(fmt.Errorf("if flag -i not given, please give me two sequences"))
		}
		q = flag.Arg(0)
		t = flag.Arg(1)

		falign2Seq(q, t)

		return
	}

	// sequence pairs from a file

	fh, err := os.Open(*infile)
	if err != nil {
		checkError(fmt.Errorf("failed to read file: %s", *infile))
	}
	defer fh.Close()

	checkError(alignFile(fh, outfh, falign2Seq))
}

// alignFile aligns all pairs from r, and flushes outfh even if the input is
// malformed, so that results of pairs before the bad line are kept.
func alignFile(r io.Reader, outfh *bufio.Writer, fn func(q, t string)) error {
	err := readPairs(r, fn)
	if err2 := outfh.Flush(); err == nil {
		err = err2
	}
	return err
}

// readPairs reads query and target lines and calls fn for every pair.
func readPairs(r io.Reader, fn func(q, t string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64<<10), 64<<20)

	var q, t string
	var n int
	for scanner.Scan() {
		q = scanner.Text()
		n++
		if q == "" {
			continue
		}
		if !scanner.Scan() {
			return fmt.Errorf("line %d: missing target line for the query", n)
		}
		t = scanner.Text()
		n++

		if q[0] != '>' || len(t) == 0 || t[0] != '<' {
			return fmt.Errorf("line %d: a query line starting with '>' should be followed by a target line starting with '<'", n-1)
		}

		fn(q[1:], t[1:])
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("something wrong in reading file: %s", err)
	}
	return nil
}

// chars splits s into characters.
func chars(s string) []string {
	rs := []rune(s)
	cs := make([]string, len(rs))
	for i, r := range rs {
		cs[i] = string(r)
	}
	return cs
}

func pairs2str(aln paired.Alignment) string {
	ss := make([]string, len(aln))
	for i, p := range aln {
		ss[i] = p.String()
	}
	return strings.Join(ss, " ")
}

// prof is the running profiler, it needs to be stopped before exiting on errors.
var prof interface{ Stop() }

func checkError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if prof != nil {
			prof.Stop()
		}
		os.Exit(1)
	}
}
