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

// This file provides pure Go (scalar) implementations of type promotion and demotion operations.
//
// PromoteTo operations widen types (int16 -> int32). TruncateTo operations
// narrow by dropping the high bits; saturate first (SaturateI32ToI16Range) to
// narrow without wrapping.
//
// A full int16 vector holds twice as many lanes as an int32 vector of the
// same width, so widening is split into Lower and Upper halves and narrowing
// takes two int32 vectors. For an odd lane count the upper half gets the
// extra lane.
//
// Note: Go generics don't support type relationships like "T is narrower than U",
// so we provide concrete type-specific functions.

// PromoteLowerI16ToI32 promotes only the lower half of int16 lanes to int32.
func PromoteLowerI16ToI32(v Vec[int16]) Vec[int32] {
	n := len(v.data) / 2
	result := make([]int32, n)
	for i := 0; i < n; i++ {
		result[i] = int32(v.data[i])
	}
	return Vec[int32]{data: result}
}

// PromoteUpperI16ToI32 promotes only the upper half of int16 lanes to int32.
func PromoteUpperI16ToI32(v Vec[int16]) Vec[int32] {
	half := len(v.data) / 2
	n := len(v.data) - half
	result := make([]int32, n)
	for i := 0; i < n; i++ {
		result[i] = int32(v.data[half+i])
	}
	return Vec[int32]{data: result}
}

// TruncateTwoI32ToI16 narrows two int32 vectors into one int16 vector,
// lo lanes first, keeping the lower 16 bits of each lane. It is the inverse
// of the PromoteLowerI16ToI32/PromoteUpperI16ToI32 split.
func TruncateTwoI32ToI16(lo, hi Vec[int32]) Vec[int16] {
	result := make([]int16, len(lo.data)+len(hi.data))
	for i, val := range lo.data {
		result[i] = int16(val)
	}
	for i, val := range hi.data {
		result[len(lo.data)+i] = int16(val)
	}
	return Vec[int16]{data: result}
}
