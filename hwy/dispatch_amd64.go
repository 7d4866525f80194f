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

//go:build amd64 && !goexperiment.simd

package hwy

import "golang.org/x/sys/cpu"

// Fallback for when GOEXPERIMENT=simd is not enabled.
// Without archsimd there is no way to emit vector instructions from Go, so the
// dispatch level stays scalar. The CPU flags are still recorded so tools can
// report what the hardware would support.

var (
	// hasAVX2 indicates AVX2 support (Haswell+).
	hasAVX2 bool

	// hasAVX512 indicates AVX-512 foundation support.
	hasAVX512 bool
)

func init() {
	hasAVX2 = cpu.X86.HasAVX2
	hasAVX512 = cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW

	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	// Notice, while SSE2 is available on all amd64 CPUs, it's not usable without the
	// simd experiment, so we don't set it.
	//
	// Build with GOEXPERIMENT=simd for proper AVX2/AVX512 dispatch.
	setScalarMode()
}

// HasAVX2 returns true if the CPU supports AVX2 instructions.
func HasAVX2() bool {
	return hasAVX2
}

// HasAVX512 returns true if the CPU supports AVX-512F and AVX-512BW.
// BW is required for 16-bit lane operations.
func HasAVX512() bool {
	return hasAVX512
}

// HasSVE returns false on x86.
func HasSVE() bool {
	return false
}

// HasRVV returns false on x86.
func HasRVV() bool {
	return false
}
