// Copyright 2025 The q15axpy Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package harness verifies AXPY kernels against each other on test vectors.
//
// A test vector file is a whitespace-separated token stream:
//
//	t
//	n alpha
//	a[0] ... a[n-1]
//	b[0] ... b[n-1]
//	(repeated t times)
//
// Line breaks carry no meaning; the generator writes one case header and one
// vector per line with a blank line between cases.
package harness

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// MaxN bounds the length of a single case. Larger values are rejected as
// malformed rather than allocated.
const MaxN = 16384

var (
	// ErrMalformed reports a token that is not a valid value for its field.
	ErrMalformed = errors.New("harness: malformed test vector file")

	// ErrTruncated reports a file that ends before the data it declares.
	ErrTruncated = errors.New("harness: truncated test vector file")
)

// Case is one kernel invocation: y = saturate16(Alpha*A + B) over N elements.
type Case struct {
	N     int
	Alpha int16
	A     []int16
	B     []int16
}

// tokenReader yields whitespace-separated tokens.
type tokenReader struct {
	sc *bufio.Scanner
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokenReader{sc: sc}
}

// next returns the next token, or an error wrapping ErrTruncated at EOF.
func (tr *tokenReader) next(what string) (string, error) {
	if tr.sc.Scan() {
		return tr.sc.Text(), nil
	}
	if err := tr.sc.Err(); err != nil {
		return "", fmt.Errorf("reading %s: %w", what, err)
	}
	return "", fmt.Errorf("%w: missing %s", ErrTruncated, what)
}

func (tr *tokenReader) int16(what string) (int16, error) {
	tok, err := tr.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(tok, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an int16", ErrMalformed, what, tok)
	}
	return int16(v), nil
}

func (tr *tokenReader) count(what string, limit int) (int, error) {
	tok, err := tr.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil || v < 0 || v > limit {
		return 0, fmt.Errorf("%w: %s %q must be an integer in [0, %d]", ErrMalformed, what, tok, limit)
	}
	return v, nil
}

// ReadCases parses a test vector file. Each returned case owns its slices.
func ReadCases(r io.Reader) ([]Case, error) {
	tr := newTokenReader(r)

	t, err := tr.count("case count", 1<<20)
	if err != nil {
		return nil, err
	}

	cases := make([]Case, 0, min(t, 1024))
	for k := 1; k <= t; k++ {
		c, err := readCase(tr, k)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, nil
}

func readCase(tr *tokenReader, k int) (Case, error) {
	n, err := tr.count(fmt.Sprintf("case %d length", k), MaxN)
	if err != nil {
		return Case{}, err
	}
	alpha, err := tr.int16(fmt.Sprintf("case %d alpha", k))
	if err != nil {
		return Case{}, err
	}

	c := Case{N: n, Alpha: alpha, A: make([]int16, n), B: make([]int16, n)}
	for i := range n {
		if c.A[i], err = tr.int16(fmt.Sprintf("case %d a[%d]", k, i)); err != nil {
			return Case{}, err
		}
	}
	for i := range n {
		if c.B[i], err = tr.int16(fmt.Sprintf("case %d b[%d]", k, i)); err != nil {
			return Case{}, err
		}
	}
	return c, nil
}

// WriteCases writes cases in the format ReadCases accepts.
func WriteCases(w io.Writer, cases []Case) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n\n", len(cases))
	for _, c := range cases {
		fmt.Fprintf(bw, "%d %d\n", c.N, c.Alpha)
		writeVector(bw, c.A[:c.N])
		writeVector(bw, c.B[:c.N])
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing test vectors: %w", err)
	}
	return nil
}

func writeVector(bw *bufio.Writer, v []int16) {
	var buf []byte
	for i, x := range v {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendInt(buf, int64(x), 10)
	}
	buf = append(buf, '\n')
	bw.Write(buf)
}
