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

//go:build riscv64

package hwy

import (
	"os"
	"strconv"

	"golang.org/x/sys/cpu"
)

// minVLEN is the smallest VLEN (in bits) permitted by the V extension (Zvl128b).
const minVLEN = 128

// hasRVV indicates the RISC-V "V" vector extension is available.
var hasRVV = cpu.RISCV64.HasV

func init() {
	if !HasRVV() {
		setScalarMode()
		return
	}

	// VLEN is implementation defined and is only readable through the vlenb
	// CSR. HWY_RVV_VLEN lets a caller state it; otherwise the minimum is used,
	// which is always a valid (if conservative) step width.
	currentLevel = DispatchRVV
	currentWidth = rvvVLEN() / 8
	currentName = "rvv"
}

// rvvVLEN returns the configured VLEN in bits.
func rvvVLEN() int {
	val := os.Getenv("HWY_RVV_VLEN")
	if val == "" {
		return minVLEN
	}
	bits, err := strconv.Atoi(val)
	if err != nil || bits < minVLEN || bits%32 != 0 {
		return minVLEN
	}
	return bits
}

// HasRVV returns true if the CPU implements the RISC-V vector extension and
// it has not been disabled via HWY_NO_SIMD or HWY_NO_RVV.
func HasRVV() bool {
	if NoSimdEnv() || os.Getenv("HWY_NO_RVV") != "" {
		return false
	}
	return hasRVV
}

// HasAVX2 returns false on RISC-V.
func HasAVX2() bool {
	return false
}

// HasAVX512 returns false on RISC-V.
func HasAVX512() bool {
	return false
}

// HasSVE returns false on RISC-V.
func HasSVE() bool {
	return false
}
