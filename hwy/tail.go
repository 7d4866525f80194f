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

// StepLanes returns how many T lanes the current target processes in one
// step when remaining elements are left: min(remaining, MaxLanes[T]()).
// It is the vector-length-agnostic counterpart of RVV's vsetvl, and lets a
// strip-mined loop handle the tail without a separate code path:
//
//	for remaining := len(src); remaining > 0; {
//	    vl := hwy.StepLanes[int16](remaining)
//	    v := hwy.Load(src[:vl])
//	    // ...
//	    hwy.Store(v, dst[:vl])
//	    src, dst = src[vl:], dst[vl:]
//	    remaining -= vl
//	}
//
// StepLanes returns 0 when remaining <= 0.
func StepLanes[T Lanes](remaining int) int {
	if remaining <= 0 {
		return 0
	}
	return min(remaining, MaxLanes[T]())
}

// IsAligned returns true if size is a multiple of the T lane count, i.e. a
// strip-mined loop over size elements has no partial final step.
func IsAligned[T Lanes](size int) bool {
	maxLanes := MaxLanes[T]()
	if maxLanes == 0 {
		return true
	}
	return size%maxLanes == 0
}
