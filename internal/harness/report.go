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
	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report aggregates the results of a run.
type Report struct {
	Results  []Result
	Passed   int
	Failed   int
	Elements int
}

func (r *Report) add(res Result) {
	r.Results = append(r.Results, res)
	r.Elements += res.N
	if res.Pass {
		r.Passed++
	} else {
		r.Failed++
	}
}

// OK reports whether every case passed.
func (r Report) OK() bool { return r.Failed == 0 }

// Failures returns the failing results.
func (r Report) Failures() []Result {
	return lo.Filter(r.Results, func(res Result, _ int) bool { return !res.Pass })
}

// MaxDiff returns the largest per-element difference seen in any case.
func (r Report) MaxDiff() int32 {
	return lo.Max(lo.Map(r.Results, func(res Result, _ int) int32 { return res.MaxDiff }))
}

var summaryPrinter = message.NewPrinter(language.English)

// Summary is a one-line human-readable description of the run.
func (r Report) Summary() string {
	total := len(r.Results)
	if r.OK() {
		return summaryPrinter.Sprintf("%d of %d cases passed (%d elements)", r.Passed, total, r.Elements)
	}
	return summaryPrinter.Sprintf("%d of %d cases failed (%d elements, max diff %d)",
		r.Failed, total, r.Elements, r.MaxDiff())
}
