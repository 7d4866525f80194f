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

package hwy

import "math"

// This file provides saturation operations.
// Saturated operations clamp results to a valid range instead of wrapping.

// SaturateI32ToI16Range clamps int32 lanes to [math.MinInt16, math.MaxInt16]
// with two compare-and-select steps, the same shape as a masked merge on
// targets with predication:
//
//	hiMask := v > 32767   ; v = hiMask ? 32767 : v
//	loMask := v < -32768  ; v = loMask ? -32768 : v
//
// Lanes exactly at a bound are left unchanged. The result still has int32
// lanes; pair it with TruncateTwoI32ToI16 to narrow.
func SaturateI32ToI16Range(v Vec[int32]) Vec[int32] {
	hi := Set[int32](math.MaxInt16)
	lo := Set[int32](math.MinInt16)
	v = IfThenElse(GreaterThan(v, hi), hi, v)
	return IfThenElse(LessThan(v, lo), lo, v)
}
