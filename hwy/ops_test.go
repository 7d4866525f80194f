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
	"math"
	"testing"
)

func TestLoad(t *testing.T) {
	data := []int16{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16,
		17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32}
	v := Load(data)

	if v.NumLanes() != MaxLanes[int16]() {
		t.Fatalf("Load: got %d lanes, want %d", v.NumLanes(), MaxLanes[int16]())
	}
	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != data[i] {
			t.Errorf("Load: lane %d: got %v, want %v", i, v.data[i], data[i])
		}
	}
}

func TestLoadPartial(t *testing.T) {
	v := Load([]int16{7, 8, 9})
	if v.NumLanes() != 3 {
		t.Fatalf("Load partial: got %d lanes, want 3", v.NumLanes())
	}
	if v.data[2] != 9 {
		t.Errorf("Load partial: lane 2: got %d, want 9", v.data[2])
	}

	empty := Load([]int16{})
	if empty.NumLanes() != 0 {
		t.Errorf("Load empty: got %d lanes, want 0", empty.NumLanes())
	}
}

func TestStore(t *testing.T) {
	v := Load([]int32{1, 2, 3})
	dst := []int32{-1, -1, -1, -1, -1}
	Store(v, dst)

	want := []int32{1, 2, 3, -1, -1}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("Store: index %d: got %d, want %d", i, dst[i], want[i])
		}
	}

	// Method form clips to the destination length.
	short := make([]int32, 2)
	v.Store(short)
	if short[0] != 1 || short[1] != 2 {
		t.Errorf("Vec.Store: got %v, want [1 2]", short)
	}
}

func TestSet(t *testing.T) {
	v := Set[int32](42)

	if v.NumLanes() != MaxLanes[int32]() {
		t.Fatalf("Set: got %d lanes, want %d", v.NumLanes(), MaxLanes[int32]())
	}
	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 42 {
			t.Errorf("Set: lane %d: got %v, want 42", i, v.data[i])
		}
	}
}

func TestAdd(t *testing.T) {
	a := Set[int32](10)
	b := Load([]int32{1, -2, 3})
	result := Add(a, b)

	// Partial operand limits the result.
	want := []int32{11, 8, 13}
	if result.NumLanes() != len(want) {
		t.Fatalf("Add: got %d lanes, want %d", result.NumLanes(), len(want))
	}
	for i := range want {
		if result.data[i] != want[i] {
			t.Errorf("Add: lane %d: got %v, want %v", i, result.data[i], want[i])
		}
	}
}

func TestAddWraps(t *testing.T) {
	a := Load([]int16{math.MaxInt16})
	b := Load([]int16{1})
	result := Add(a, b)
	if result.data[0] != math.MinInt16 {
		t.Errorf("Add int16 overflow: got %d, want %d", result.data[0], math.MinInt16)
	}
}

func TestMul(t *testing.T) {
	a := Load([]int32{-32768, 16384, 3, -7})
	b := Set[int32](-32768)
	result := Mul(a, b)

	want := []int32{1 << 30, -(1 << 29), -98304, 229376}
	for i := range want {
		if result.data[i] != want[i] {
			t.Errorf("Mul: lane %d: got %v, want %v", i, result.data[i], want[i])
		}
	}
}

func TestCompare(t *testing.T) {
	a := Load([]int32{1, 5, 5, -9})
	b := Load([]int32{2, 5, 4, -10})

	gt := GreaterThan(a, b)
	lt := LessThan(a, b)

	wantGT := []bool{false, false, true, true}
	wantLT := []bool{true, false, false, false}
	if gt.NumLanes() != len(wantGT) || lt.NumLanes() != len(wantLT) {
		t.Fatalf("got %d/%d mask lanes, want %d", gt.NumLanes(), lt.NumLanes(), len(wantGT))
	}
	for i := range wantGT {
		if gt.bits[i] != wantGT[i] {
			t.Errorf("GreaterThan: lane %d: got %v, want %v", i, gt.bits[i], wantGT[i])
		}
		if lt.bits[i] != wantLT[i] {
			t.Errorf("LessThan: lane %d: got %v, want %v", i, lt.bits[i], wantLT[i])
		}
	}
	if gt.CountTrue() != 2 {
		t.Errorf("GreaterThan CountTrue: got %d, want 2", gt.CountTrue())
	}
	if lt.CountTrue() != 1 {
		t.Errorf("LessThan CountTrue: got %d, want 1", lt.CountTrue())
	}
	if n := (Mask[int32]{}).CountTrue(); n != 0 {
		t.Errorf("empty mask CountTrue: got %d, want 0", n)
	}
}

func TestIfThenElse(t *testing.T) {
	v := Load([]int32{10, 20, 30, 40})
	limit := Set[int32](25)
	mask := GreaterThan(v, limit)
	result := IfThenElse(mask, limit, v)

	want := []int32{10, 20, 25, 25}
	if result.NumLanes() != len(want) {
		t.Fatalf("IfThenElse: got %d lanes, want %d", result.NumLanes(), len(want))
	}
	for i := range want {
		if result.data[i] != want[i] {
			t.Errorf("IfThenElse: lane %d: got %v, want %v", i, result.data[i], want[i])
		}
	}
}
