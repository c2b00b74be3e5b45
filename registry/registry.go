/*
   Copyright 2026 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package registry

import (
	"errors"
	"reflect"
	"sync"

	"dirpx.dev/enumx/apis"
	uref "dirpx.dev/enumx/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("enumx(registry): nil reflect.Type provided")
	// ErrEmptyDeclaration is returned when a declaration with no members is provided.
	ErrEmptyDeclaration = errors.New("enumx(registry): empty declaration provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a type with a different declaration.
	ErrConflictingRegistration = errors.New("enumx(registry): conflicting enum registration")
)

// New constructs a Registry that keys types according to cfg.
// Only MaxUnwrap is used here (pointer types collapse to their base type).
func New(cfg apis.Config) apis.Registry {
	return &registry{cfg: cfg}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// cfg is the configuration used for type keying.
	cfg apis.Config
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps reflect.Type to apis.Declaration.
	m sync.Map // map[reflect.Type]apis.Declaration
	// count tracks the number of registered entries.
	count int
}

// Register associates the base named type of t with the given declaration.
// It is idempotent for an equal (type, declaration) pair; registering a
// different declaration for an already-registered type is a conflict.
func (r *registry) Register(t reflect.Type, d apis.Declaration) error {
	// Validate inputs early.
	if t == nil {
		return ErrNilType
	}
	if d.IsEmpty() {
		return ErrEmptyDeclaration
	}

	// Key by the base named type according to r.cfg.
	b, err := uref.Base(t, r.cfg)
	if err != nil {
		return err
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(b); ok {
		if reflect.DeepEqual(old.(apis.Declaration), d) {
			return nil // idempotent re-registration
		}
		return ErrConflictingRegistration
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(b); ok {
		if reflect.DeepEqual(old.(apis.Declaration), d) {
			return nil
		}
		return ErrConflictingRegistration
	}

	// Store a clone so later mutation of the author's slices/maps cannot
	// leak into published state.
	r.m.Store(b, d.Clone())
	r.count++
	return nil
}

// Lookup returns the declaration for a type if present.
func (r *registry) Lookup(t reflect.Type) (apis.Declaration, bool) {
	if t == nil {
		return apis.Declaration{}, false
	}
	b, err := uref.Base(t, r.cfg)
	if err != nil {
		return apis.Declaration{}, false
	}
	if v, ok := r.m.Load(b); ok {
		return v.(apis.Declaration), true
	}
	return apis.Declaration{}, false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Type: key.(reflect.Type),
			Decl: value.(apis.Declaration),
		})
		return true
	})
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Range(func(key, _ any) bool {
		r.m.Delete(key)
		return true
	})
	r.count = 0
}
