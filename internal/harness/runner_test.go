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
	"bytes"
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riscv-audiomark/q15axpy/hwy/contrib/q15"
)

// offByOne is a broken candidate that is wrong wherever b[i] is odd.
func offByOne(a, b, y []int16, n int, alpha int16) {
	q15.BaseAxpy(a, b, y, n, alpha)
	for i := range n {
		if b[i]&1 != 0 && y[i] != -32768 {
			y[i]--
		}
	}
}

func TestGenerate(t *testing.T) {
	rng := rand.New(rand.NewPCG(4, 2))
	cases, err := Generate(rng, 50, 64)
	require.NoError(t, err)
	require.Len(t, cases, 50)
	for _, c := range cases {
		assert.GreaterOrEqual(t, c.N, 1)
		assert.LessOrEqual(t, c.N, 64)
		assert.Len(t, c.A, c.N)
		assert.Len(t, c.B, c.N)
	}

	_, err = Generate(rng, 1, 0)
	assert.Error(t, err)
	_, err = Generate(rng, 1, MaxN+1)
	assert.Error(t, err)
	_, err = Generate(rng, -1, 10)
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	d, err := Compare([]int16{1, 2, -32768, 4}, []int16{1, 5, 32767, 4})
	require.NoError(t, err)
	assert.False(t, d.Equal())
	assert.Equal(t, []int32{0, 3, 65535, 0}, d.Deltas)
	assert.Equal(t, 2, d.Mismatches)
	assert.Equal(t, int32(65535), d.MaxAbs)

	d, err = Compare(nil, nil)
	require.NoError(t, err)
	assert.True(t, d.Equal())
	assert.Zero(t, d.MaxAbs)

	_, err = Compare([]int16{1}, nil)
	assert.Error(t, err)
}

func TestRunnerLogFormat(t *testing.T) {
	cases, err := ReadCases(strings.NewReader(exampleInput))
	require.NoError(t, err)

	var log bytes.Buffer
	r := Runner{Reference: q15.AxpyRef, Candidate: q15.BaseAxpyVLA, Log: &log}
	rep, err := r.Run(context.Background(), cases)
	require.NoError(t, err)

	assert.True(t, rep.OK())
	assert.Equal(t, 2, rep.Passed)
	assert.Equal(t, 5, rep.Elements)
	assert.Equal(t,
		"Test Case: 1\n2 4 6 32767 \n2 4 6 32767 \n\n"+
			"Test Case: 2\n32767 \n32767 \n\n",
		log.String())
	assert.Equal(t, "2 of 2 cases passed (5 elements)", rep.Summary())
	assert.Equal(t, 1, rep.Results[0].Saturated)
	assert.Equal(t, 1, rep.Results[1].Saturated)
}

func TestRunnerLogsSaturatedLanes(t *testing.T) {
	cases, err := ReadCases(strings.NewReader(exampleInput))
	require.NoError(t, err)

	var diag bytes.Buffer
	r := Runner{
		Reference: q15.AxpyRef,
		Candidate: q15.AxpyRef,
		Logger:    slog.New(slog.NewTextHandler(&diag, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
	_, err = r.Run(context.Background(), cases)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(diag.String(), "saturated=1"))
}

func TestRunnerReportsFailures(t *testing.T) {
	cases := []Case{
		{N: 3, Alpha: 1, A: []int16{0, 0, 0}, B: []int16{2, 4, 6}},
		{N: 3, Alpha: 1, A: []int16{0, 0, 0}, B: []int16{1, 2, 3}},
	}

	var seen []int
	r := Runner{
		Reference: q15.AxpyRef,
		Candidate: offByOne,
		OnResult:  func(res Result) { seen = append(seen, res.Case) },
	}
	rep, err := r.Run(context.Background(), cases)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, seen)
	assert.False(t, rep.OK())
	assert.Equal(t, 1, rep.Passed)
	assert.Equal(t, 1, rep.Failed)

	failures := rep.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, 2, failures[0].Case)
	assert.Equal(t, 2, failures[0].Mismatches)
	assert.Equal(t, int32(1), failures[0].MaxDiff)
	assert.Equal(t, "1 of 2 cases failed (6 elements, max diff 1)", rep.Summary())
}

func TestRunnerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := Runner{Reference: q15.AxpyRef, Candidate: q15.AxpyRef}
	rep, err := r.Run(ctx, []Case{{N: 1, A: []int16{1}, B: []int16{1}}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rep.Results)
}

func TestRunnerRejectsShortCase(t *testing.T) {
	r := Runner{Reference: q15.AxpyRef, Candidate: q15.AxpyRef}
	_, err := r.Run(context.Background(), []Case{{N: 4, A: []int16{1}, B: []int16{1}}})
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = (&Runner{}).Run(context.Background(), nil)
	assert.Error(t, err)
}

func TestSummaryGroupsThousands(t *testing.T) {
	rep := Report{}
	rep.add(Result{Case: 1, N: 16384, Pass: true})
	assert.Equal(t, "1 of 1 cases passed (16,384 elements)", rep.Summary())
}
