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

import "dirpx.dev/enumx/exapi/match"

// Index is the derived, immutable metadata for one enum type: the
// name→value mapping, its inverse, and the label dictionaries.
// Implementations are built once per enum type and must be safe for
// unsynchronized concurrent reads.
type Index interface {
	// Len returns the number of declared members.
	Len() int

	// Names returns the member names in declaration order.
	Names() []string

	// Pairs returns the ordered (name, value) snapshot.
	Pairs() []Pair

	// Value returns the value bound to name.
	Value(name string) (any, bool)

	// Name returns the member name owning v under the given mode.
	// When a value is shared by several names, the later-declared name is
	// returned.
	Name(v any, mode match.Mode) (string, bool)

	// Label returns the display label for v under the given mode.
	Label(v any, mode match.Mode) (string, bool)

	// NameLabel returns the display label for the member called name.
	NameLabel(name string) (string, bool)

	// Map returns a name→value snapshot.
	Map() map[string]any

	// NameMap returns a value→name snapshot.
	NameMap() map[any]string

	// Dict returns a value→label snapshot.
	Dict() map[any]string

	// NameDict returns a name→label snapshot.
	NameDict() map[string]string
}
