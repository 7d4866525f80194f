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
	"testing"
)

func TestCurrentTarget(t *testing.T) {
	if CurrentWidth() <= 0 || CurrentWidth()%4 != 0 {
		t.Fatalf("CurrentWidth() = %d, want a positive multiple of 4", CurrentWidth())
	}
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, CurrentLevel().String() = %q", CurrentName(), CurrentLevel().String())
	}
	if 2*MaxLanes[int32]() != MaxLanes[int16]() {
		t.Errorf("MaxLanes int16 = %d, int32 = %d", MaxLanes[int16](), MaxLanes[int32]())
	}
	t.Logf("target %s, %d bytes, avx2=%v avx512=%v sve=%v rvv=%v",
		CurrentName(), CurrentWidth(), HasAVX2(), HasAVX512(), HasSVE(), HasRVV())
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv("HWY_NO_SIMD", tt.val)
			if got := NoSimdEnv(); got != tt.want {
				t.Errorf("NoSimdEnv() with %q = %v, want %v", tt.val, got, tt.want)
			}
		})
	}
}

func TestOverrideTarget(t *testing.T) {
	prevLevel, prevWidth := CurrentLevel(), CurrentWidth()

	restore, err := OverrideTarget(DispatchRVV, 64)
	if err != nil {
		t.Fatalf("OverrideTarget: %v", err)
	}
	if CurrentLevel() != DispatchRVV || CurrentWidth() != 64 || CurrentName() != "rvv" {
		t.Errorf("after override: %v %d %q", CurrentLevel(), CurrentWidth(), CurrentName())
	}
	if MaxLanes[int16]() != 32 {
		t.Errorf("MaxLanes[int16] = %d, want 32", MaxLanes[int16]())
	}

	restore()
	if CurrentLevel() != prevLevel || CurrentWidth() != prevWidth {
		t.Errorf("restore: got %v/%d, want %v/%d", CurrentLevel(), CurrentWidth(), prevLevel, prevWidth)
	}
}

func TestOverrideTargetInvalidWidth(t *testing.T) {
	for _, width := range []int{0, -16, 6, 17} {
		restore, err := OverrideTarget(DispatchRVV, width)
		if !errors.Is(err, ErrInvalidWidth) {
			t.Errorf("OverrideTarget(width=%d) error = %v, want ErrInvalidWidth", width, err)
		}
		if restore != nil {
			restore()
			t.Errorf("OverrideTarget(width=%d) returned a restore func", width)
		}
	}
}

func TestParseDispatchLevel(t *testing.T) {
	for d := DispatchScalar; d <= DispatchRVV; d++ {
		got, err := ParseDispatchLevel(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDispatchLevel(%q) = %v, %v", d.String(), got, err)
		}
	}
	if _, err := ParseDispatchLevel("mmx"); err == nil {
		t.Error("ParseDispatchLevel(\"mmx\") should fail")
	}
	if DispatchLevel(99).String() != "unknown" {
		t.Errorf("DispatchLevel(99).String() = %q", DispatchLevel(99).String())
	}
}
