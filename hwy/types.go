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

// Package hwy provides portable vector operations with runtime CPU dispatch.
//
// Kernels are written once against Vec and Mask and run with whatever lane
// count the detected target provides (SSE2, AVX2, AVX-512, NEON, SVE, RVV),
// or with the portable base implementation when no vector unit is available.
//
// Basic usage:
//
//	import "github.com/riscv-audiomark/q15axpy/hwy"
//
//	// Widen int16 lanes and accumulate in int32
//	v := hwy.Load(src[:hwy.StepLanes[int16](len(src))])
//	lo := hwy.PromoteLowerI16ToI32(v)
//	hi := hwy.PromoteUpperI16ToI32(v)
//
//	// Narrow back and store
//	hwy.Store(hwy.TruncateTwoI32ToI16(lo, hi), dst)
package hwy

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
// Only the signed fixed-point widths are provided.
type Lanes interface {
	SignedInts
}

// Vec is a portable vector handle.
// In base mode it wraps a slice whose length is the number of active lanes.
//
// Vec instances should not be created directly; use Load or Set instead.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}

// Mask represents the result of a comparison operation.
// It is consumed by IfThenElse and CountTrue.
//
// Mask instances should not be created directly; use comparison operations
// like GreaterThan or LessThan.
type Mask[T Lanes] struct {
	// bit i is set if lane i is active.
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}
