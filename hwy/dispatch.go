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

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel represents the current SIMD instruction set being used.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON

	// DispatchSVE indicates ARM SVE instructions (scalable vector).
	DispatchSVE

	// DispatchRVV indicates the RISC-V vector extension (scalable vector).
	DispatchRVV
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	case DispatchSVE:
		return "sve"
	case DispatchRVV:
		return "rvv"
	default:
		return "unknown"
	}
}

// ParseDispatchLevel returns the level whose String form is name.
func ParseDispatchLevel(name string) (DispatchLevel, error) {
	for d := DispatchScalar; d <= DispatchRVV; d++ {
		if d.String() == name {
			return d, nil
		}
	}
	return DispatchScalar, fmt.Errorf("hwy: unknown dispatch level %q", name)
}

// ErrInvalidWidth is returned when a vector width is not a positive multiple
// of 4 bytes.
var ErrInvalidWidth = errors.New("hwy: vector width must be a positive multiple of 4 bytes")

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the SIMD register width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// currentName is the human-readable name of the current SIMD level.
// Set by init() in dispatch_*.go files.
var currentName string

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON and the RVV minimum VLEN, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "rvv", "scalar".
func CurrentName() string {
	return currentName
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, the scalar fallback is used regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// OverrideTarget replaces the detected level and width until restore is
// called. It exists for tests and for tools that need to emulate a
// different vector length. It is not safe to call while kernels are running
// on other goroutines.
func OverrideTarget(level DispatchLevel, width int) (restore func(), err error) {
	if width <= 0 || width%4 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWidth, width)
	}
	prevLevel, prevWidth, prevName := currentLevel, currentWidth, currentName
	currentLevel = level
	currentWidth = width
	currentName = level.String()
	return func() {
		currentLevel, currentWidth, currentName = prevLevel, prevWidth, prevName
	}, nil
}

// NativeLanes reports whether Vec operations are backed by hardware vector
// registers. Every level in this build runs the slice-backed base operations,
// which cost more per element than a scalar loop, so it reports false; the
// level then only describes the detected CPU and the step width.
func NativeLanes() bool {
	return false
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
	currentName = "scalar"
}

// MaxLanes returns the maximum number of lanes for type T with the current SIMD width.
//
// For example, with a 128-bit vector register (16 bytes):
//   - int16: 16/2 = 8 lanes
//   - int32: 16/4 = 4 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return currentWidth / elementSize
}
