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

package apis

import "reflect"

// Registry provides an explicit type→declaration association for enum
// types that do not declare themselves. Keep it minimal so implementations
// can be lock-free or sync.Map-backed.
type Registry interface {
	// Register associates the (nearest named) reflect.Type with a
	// declaration. Implementations should be idempotent for an equal
	// re-registration and reject conflicting ones.
	Register(t reflect.Type, d Declaration) error
	// Lookup returns the declaration for a type if present. The returned
	// declaration is shared and must be treated as read-only.
	Lookup(t reflect.Type) (Declaration, bool)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Entry
	// Count returns the number of registered entries.
	Count() int
	// Reset clears all registered entries.
	Reset()
}

// Entry is a single (type, declaration) association in a Registry snapshot.
type Entry struct {
	// Type is the registered reflect.Type.
	Type reflect.Type
	// Decl is the associated declaration.
	Decl Declaration
}
