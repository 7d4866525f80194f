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

package q15

import "github.com/riscv-audiomark/q15axpy/hwy"

// Dispatch function variables.
// AxpyRef is fixed to the reference kernel. Axpy is bound in init() to the
// Global registry's choice for hwy.CurrentLevel() and rebound by Reselect.
var (
	// AxpyRef computes y[i] = saturate16(alpha*a[i] + b[i]) with the scalar reference.
	AxpyRef Kernel = BaseAxpy

	// Axpy computes y[i] = saturate16(alpha*a[i] + b[i]) with the best kernel for
	// the running target, falling back to the reference on scalar targets and
	// when hwy lanes are not hardware-backed.
	Axpy Kernel
)

// selected is the name of the entry Axpy is bound to.
var selected string

func init() {
	Reselect()
}

// Reselect rebinds Axpy for the current dispatch level. Call it after
// hwy.OverrideTarget changes the level. It is not safe to call while Axpy is
// running on another goroutine.
func Reselect() {
	e := Global.Lookup(hwy.CurrentLevel())
	if e == nil {
		Axpy, selected = BaseAxpy, "reference"
		return
	}
	Axpy, selected = e.Kernel, e.Name
}

// Selected returns the name of the kernel Axpy currently runs.
func Selected() string {
	return selected
}
