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

package harness

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/riscv-audiomark/q15axpy/hwy"
	"github.com/riscv-audiomark/q15axpy/hwy/contrib/q15"
)

// Runner runs every case through a reference and a candidate kernel and
// compares the outputs.
type Runner struct {
	Reference q15.Kernel
	Candidate q15.Kernel

	// Log, if set, receives both outputs of every case:
	//
	//	Test Case: k
	//	y_ref[0] y_ref[1] ...
	//	y_cand[0] y_cand[1] ...
	//	(blank line)
	Log io.Writer

	// Logger receives per-case diagnostics. Nil discards them.
	Logger *slog.Logger

	// OnResult, if set, is called after each case.
	OnResult func(Result)
}

// Result is the outcome of one case. Case is 1-based. Saturated counts the
// outputs clamped to an int16 bound.
type Result struct {
	Case       int
	N          int
	Alpha      int16
	Pass       bool
	Mismatches int
	MaxDiff    int32
	Saturated  int
}

// Run executes cases in order. It stops early with ctx.Err() when ctx is
// cancelled between cases, returning the results gathered so far.
func (r *Runner) Run(ctx context.Context, cases []Case) (Report, error) {
	if r.Reference == nil || r.Candidate == nil {
		return Report{}, errors.New("harness: runner needs a reference and a candidate kernel")
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var log *bufio.Writer
	if r.Log != nil {
		log = bufio.NewWriter(r.Log)
	}

	var rep Report
	for k, c := range cases {
		if err := ctx.Err(); err != nil {
			return rep, flushLog(log, err)
		}

		res, ref, got, err := r.runCase(k+1, c)
		if err != nil {
			return rep, flushLog(log, err)
		}
		if log != nil {
			writeLogEntry(log, res.Case, ref, got)
		}

		logger.Debug("case done",
			"case", res.Case,
			"n", res.N,
			"alpha", res.Alpha,
			"aligned", hwy.IsAligned[int16](res.N),
			"saturated", res.Saturated,
			"pass", res.Pass)
		if !res.Pass {
			logger.Warn("output mismatch",
				"case", res.Case,
				"mismatches", res.Mismatches,
				"max_diff", res.MaxDiff)
		}

		rep.add(res)
		if r.OnResult != nil {
			r.OnResult(res)
		}
	}
	return rep, flushLog(log, nil)
}

func (r *Runner) runCase(k int, c Case) (Result, []int16, []int16, error) {
	if c.N < 0 || c.N > len(c.A) || c.N > len(c.B) {
		return Result{}, nil, nil, fmt.Errorf("%w: case %d declares %d elements, has %d/%d",
			ErrMalformed, k, c.N, len(c.A), len(c.B))
	}

	ref := make([]int16, c.N)
	got := make([]int16, c.N)
	r.Reference(c.A, c.B, ref, c.N, c.Alpha)
	r.Candidate(c.A, c.B, got, c.N, c.Alpha)

	d, err := Compare(ref, got)
	if err != nil {
		return Result{}, nil, nil, err
	}
	return Result{
		Case:       k,
		N:          c.N,
		Alpha:      c.Alpha,
		Pass:       d.Equal(),
		Mismatches: d.Mismatches,
		MaxDiff:    d.MaxAbs,
		Saturated:  q15.CountSaturated(c.A, c.B, c.N, c.Alpha),
	}, ref, got, nil
}

func writeLogEntry(w *bufio.Writer, k int, ref, got []int16) {
	fmt.Fprintf(w, "Test Case: %d\n", k)
	writeLogLine(w, ref)
	writeLogLine(w, got)
	w.WriteByte('\n')
}

// writeLogLine writes every value followed by a single space.
func writeLogLine(w *bufio.Writer, v []int16) {
	var buf []byte
	for _, x := range v {
		buf = strconv.AppendInt(buf, int64(x), 10)
		buf = append(buf, ' ')
	}
	buf = append(buf, '\n')
	w.Write(buf)
}

func flushLog(w *bufio.Writer, err error) error {
	if w == nil {
		return err
	}
	if ferr := w.Flush(); ferr != nil {
		return errors.Join(err, fmt.Errorf("harness: write output log: %w", ferr))
	}
	return err
}
