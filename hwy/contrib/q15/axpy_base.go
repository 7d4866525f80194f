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
	"math"

	"github.com/riscv-audiomark/q15axpy/hwy"
)

// Kernel is the common signature of every AXPY implementation.
//
// It computes y[i] = saturate16(alpha*a[i] + b[i]) for i in [0, n).
// a, b and y must hold at least n elements and y must not alias a or b.
type Kernel func(a, b, y []int16, n int, alpha int16)

// Saturate clamps a widened accumulator to the int16 range.
// Values at a bound are already saturated and come back unchanged.
func Saturate(wide int32) int16 {
	if wide >= math.MaxInt16 {
		return math.MaxInt16
	}
	if wide <= math.MinInt16 {
		return math.MinInt16
	}
	return int16(wide)
}

// BaseAxpy is the scalar reference kernel: y[i] = saturate16(alpha*a[i] + b[i]).
//
// Each element is widened to int32 before the multiply, so the largest
// magnitude intermediate, (-32768)*(-32768) + 32767, fits without overflow.
// n <= 0 writes nothing.
//
// Example:
//
//	a := []int16{1, 2, 3, 16384}
//	b := []int16{0, 0, 0, 10000}
//	y := make([]int16, 4)
//	BaseAxpy(a, b, y, 4, 2)  // y is now {2, 4, 6, 32767}
func BaseAxpy(a, b, y []int16, n int, alpha int16) {
	if n <= 0 {
		return
	}
	a, b, y = a[:n], b[:n], y[:n]

	wideAlpha := int32(alpha)
	for i := range y {
		y[i] = Saturate(wideAlpha*int32(a[i]) + int32(b[i]))
	}
}

// BaseAxpyVLA computes the same result as BaseAxpy with hwy vectors.
//
// The loop is strip-mined: every step asks the target for its int16 lane
// count bounded by what is left, so the final partial step needs no separate
// tail loop and no width is assumed at compile time. Per step:
//
//	load a, b        -> int16 lanes
//	widen            -> two int32 halves each
//	alpha*a + b      -> int32 accumulator
//	clamp            -> compare-and-select against 32767 and -32768
//	narrow and store -> int16 lanes
//
// n <= 0 writes nothing.
func BaseAxpyVLA(a, b, y []int16, n int, alpha int16) {
	valpha := hwy.Set(int32(alpha))

	for remaining := n; remaining > 0; {
		vl := hwy.StepLanes[int16](remaining)

		accLo, accHi := mulAddStep(a[:vl], b[:vl], valpha)

		accLo = hwy.SaturateI32ToI16Range(accLo)
		accHi = hwy.SaturateI32ToI16Range(accHi)

		hwy.Store(hwy.TruncateTwoI32ToI16(accLo, accHi), y[:vl])

		a, b, y = a[vl:], b[vl:], y[vl:]
		remaining -= vl
	}
}

// mulAddStep loads one step of a and b and returns alpha*a + b widened to
// int32, split into the lower and upper halves of the step.
func mulAddStep(a, b []int16, valpha hwy.Vec[int32]) (lo, hi hwy.Vec[int32]) {
	va := hwy.Load(a)
	vb := hwy.Load(b)

	lo = hwy.Mul(hwy.PromoteLowerI16ToI32(va), valpha)
	hi = hwy.Mul(hwy.PromoteUpperI16ToI32(va), valpha)

	lo = hwy.Add(lo, hwy.PromoteLowerI16ToI32(vb))
	hi = hwy.Add(hi, hwy.PromoteUpperI16ToI32(vb))
	return lo, hi
}

// CountSaturated returns how many of y[0:n] the kernels clamp: elements
// whose int32 sum alpha*a[i] + b[i] lies outside the int16 range. A sum
// exactly at a bound is representable and not counted. n <= 0 returns 0.
func CountSaturated(a, b []int16, n int, alpha int16) int {
	valpha := hwy.Set(int32(alpha))
	hi := hwy.Set[int32](math.MaxInt16)
	lo := hwy.Set[int32](math.MinInt16)

	count := 0
	for remaining := n; remaining > 0; {
		vl := hwy.StepLanes[int16](remaining)

		accLo, accHi := mulAddStep(a[:vl], b[:vl], valpha)
		for _, acc := range [2]hwy.Vec[int32]{accLo, accHi} {
			count += hwy.GreaterThan(acc, hi).CountTrue()
			count += hwy.LessThan(acc, lo).CountTrue()
		}

		a, b = a[vl:], b[vl:]
		remaining -= vl
	}
	return count
}
