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

//go:build !amd64 && !arm64 && !riscv64

package hwy

func init() {
	// Other architectures fall back to scalar mode.
	setScalarMode()
}

// HasAVX2 returns false on this architecture.
func HasAVX2() bool { return false }

// HasAVX512 returns false on this architecture.
func HasAVX512() bool { return false }

// HasSVE returns false on this architecture.
func HasSVE() bool { return false }

// HasRVV returns false on this architecture.
func HasRVV() bool { return false }
