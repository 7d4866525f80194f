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

// Package q15 provides a saturating fixed-point AXPY over int16 (Q15) vectors:
//
//	y[i] = saturate16(alpha*a[i] + b[i])
//
// The product and sum are computed in int32, which cannot overflow for any
// int16 inputs, and the result is clamped to [-32768, 32767] before it is
// narrowed back to int16.
//
// Two kernels compute the same function:
//   - BaseAxpy is the scalar reference and the correctness oracle.
//   - BaseAxpyVLA is strip-mined over hwy vectors, taking its step width from
//     the running target (vector-length agnostic) and saturating with
//     per-lane compare-and-select.
//
// AxpyRef always runs the reference. Axpy runs the kernel chosen by the
// Global registry for the current hwy dispatch level. The vector kernel is
// only chosen when hwy.NativeLanes reports hardware-backed lanes; on a scalar
// target, or on slice-backed lanes, Axpy is the reference itself. Either way
// the two entry points agree bit for bit on every input.
//
// Buffers are owned by the caller. The kernels write y[:n] and nothing else,
// never allocate output storage, and never fail. y must not overlap a or b;
// the result of an overlapping call is undefined.
package q15
