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
	"fmt"

	"github.com/samber/lo"
)

// Diff is the element-wise comparison of a candidate output with the
// reference output.
type Diff struct {
	// Deltas holds got[i] - want[i], widened so it cannot overflow.
	Deltas []int32

	// Mismatches counts the nonzero deltas.
	Mismatches int

	// MaxAbs is the largest |delta|, 0 when the outputs agree.
	MaxAbs int32
}

// Equal reports whether the outputs were bit-identical.
func (d Diff) Equal() bool { return d.Mismatches == 0 }

// Compare diffs got against want. Both must have the same length.
func Compare(want, got []int16) (Diff, error) {
	if len(want) != len(got) {
		return Diff{}, fmt.Errorf("harness: compare %d outputs against %d", len(got), len(want))
	}

	deltas := make([]int32, len(want))
	for i := range want {
		deltas[i] = int32(got[i]) - int32(want[i])
	}
	abs := lo.Map(deltas, func(d int32, _ int) int32 {
		if d < 0 {
			return -d
		}
		return d
	})

	return Diff{
		Deltas:     deltas,
		Mismatches: lo.CountBy(deltas, func(d int32) bool { return d != 0 }),
		MaxAbs:     lo.Max(abs),
	}, nil
}
