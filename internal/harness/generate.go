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
	"math/rand/v2"
)

// Generate returns count random cases. Each length is uniform in [1, maxN];
// alpha and every element are uniform over the full int16 range, so most
// products saturate.
func Generate(rng *rand.Rand, count, maxN int) ([]Case, error) {
	if count < 0 {
		return nil, fmt.Errorf("harness: negative case count %d", count)
	}
	if maxN < 1 || maxN > MaxN {
		return nil, fmt.Errorf("harness: max length %d outside [1, %d]", maxN, MaxN)
	}

	cases := make([]Case, count)
	for k := range cases {
		n := 1 + rng.IntN(maxN)
		cases[k] = Case{
			N:     n,
			Alpha: randomInt16(rng),
			A:     randomVector(rng, n),
			B:     randomVector(rng, n),
		}
	}
	return cases, nil
}

func randomInt16(rng *rand.Rand) int16 {
	return int16(rng.IntN(1<<16) - 1<<15)
}

func randomVector(rng *rand.Rand, n int) []int16 {
	v := make([]int16, n)
	for i := range v {
		v[i] = randomInt16(rng)
	}
	return v
}
