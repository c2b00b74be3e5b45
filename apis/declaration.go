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

// Pair is a single (name, value) member of an enum declaration.
// Value holds a primitive (bool, integer, float, or string) and must be
// comparable; the index builder rejects anything else.
type Pair struct {
	// Name is the symbolic member name, unique within a declaration.
	Name string
	// Value is the primitive value bound to Name.
	Value any
}

// Declaration is the authored (name, value, label) data for one enum type.
// It is consumed read-only: the index builder and registry never mutate it,
// and enum authors are expected to construct it once, statically.
type Declaration struct {
	// Pairs is the ordered member sequence. Order is significant: it is
	// preserved by ordered accessors and decides precedence when two names
	// share a value (later-declared wins in the inverse mapping).
	Pairs []Pair

	// Labels maps member values to display labels. Every key must appear
	// among Pairs values; a dangling label fails the index build.
	// A declared value may be absent here — how that is treated depends on
	// the configured label policy.
	Labels map[any]string
}

// IsEmpty reports whether the declaration has no members.
func (d Declaration) IsEmpty() bool {
	return len(d.Pairs) == 0
}

// Clone returns a deep copy of the declaration. Registries store clones so
// later mutation of the author's maps cannot leak into published state.
func (d Declaration) Clone() Declaration {
	out := Declaration{}
	if d.Pairs != nil {
		out.Pairs = make([]Pair, len(d.Pairs))
		copy(out.Pairs, d.Pairs)
	}
	if d.Labels != nil {
		out.Labels = make(map[any]string, len(d.Labels))
		for v, l := range d.Labels {
			out.Labels[v] = l
		}
	}
	return out
}
