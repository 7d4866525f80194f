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

package q15

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func BenchmarkAxpy(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 1))
	for _, n := range []int{16, 256, 4096, 16384} {
		a := randomVector(rng, n)
		bv := randomVector(rng, n)
		y := make([]int16, n)

		b.Run(fmt.Sprintf("reference/n=%d", n), func(b *testing.B) {
			b.SetBytes(int64(n) * 2)
			for b.Loop() {
				BaseAxpy(a, bv, y, n, 12000)
			}
		})
		b.Run(fmt.Sprintf("vla/n=%d", n), func(b *testing.B) {
			b.SetBytes(int64(n) * 2)
			for b.Loop() {
				BaseAxpyVLA(a, bv, y, n, 12000)
			}
		})
		b.Run(fmt.Sprintf("%s/n=%d", Selected(), n), func(b *testing.B) {
			b.SetBytes(int64(n) * 2)
			for b.Loop() {
				Axpy(a, bv, y, n, 12000)
			}
		})
	}
}
