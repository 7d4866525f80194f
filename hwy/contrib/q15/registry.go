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

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/riscv-audiomark/q15axpy/hwy"
)

// ErrUnknownKernel is returned by Registry.ByName for a name nobody registered.
var ErrUnknownKernel = errors.New("q15: unknown kernel")

// Entry is one registered kernel variant.
type Entry struct {
	// Name identifies the variant ("reference", "vla").
	Name string

	// Priority orders compatible entries; the highest wins.
	Priority int

	// Supports reports whether the kernel can run at a dispatch level.
	Supports func(level hwy.DispatchLevel) bool

	// Kernel is the implementation.
	Kernel Kernel
}

// Registry holds the kernel variants and picks one per dispatch level.
//
// Register is meant to be called from init(); Lookup may be called
// concurrently once registration is done.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
}

// Register adds an entry. Entries are kept sorted by descending priority,
// registration order breaking ties.
func (r *Registry) Register(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, e)
	slices.SortStableFunc(r.entries, func(x, y Entry) int {
		return cmp.Compare(y.Priority, x.Priority)
	})
}

// Lookup returns the highest-priority entry that supports level, or nil if
// none does (which cannot happen once the reference kernel is registered).
func (r *Registry) Lookup(level hwy.DispatchLevel) *Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Supports(level) {
			e := r.entries[i]
			return &e
		}
	}
	return nil
}

// ByName returns the entry registered under name.
func (r *Registry) ByName(name string) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			e := r.entries[i]
			return &e, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
}

// Entries returns a copy of all entries, highest priority first.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.entries)
}

// Global is the registry consulted by Axpy. It is populated during package
// variable initialization, so every init() in the package already sees both
// kernels.
var Global = newGlobal()

func newGlobal() *Registry {
	r := &Registry{}
	r.Register(Entry{
		Name:     "reference",
		Priority: 0,
		Supports: func(hwy.DispatchLevel) bool { return true },
		Kernel:   BaseAxpy,
	})
	r.Register(Entry{
		Name:     "vla",
		Priority: 10,
		Supports: func(level hwy.DispatchLevel) bool { return level != hwy.DispatchScalar && hwy.NativeLanes() },
		Kernel:   BaseAxpyVLA,
	})
	return r
}
