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

package index

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/cast"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/exapi/match"
)

// ErrMalformedEnum is returned when a declaration is structurally invalid:
// empty, a duplicate name, a non-comparable or nil value, a label for an
// undeclared value, or a missing label under the LabelRequired policy.
// This is a programmer error in the enum's declaration and should be
// treated as fatal at startup, not as a per-call condition.
var ErrMalformedEnum = errors.New("enumx(index): malformed enum declaration")

// Index is the derived bidirectional metadata for one enum type.
// It is immutable after Build and safe for unsynchronized concurrent reads.
type Index struct {
	// pairs preserves declaration order.
	pairs []apis.Pair
	// byName maps member name to value (valueOf).
	byName map[string]any
	// byValue maps value to member name (nameOf); later-declared wins.
	byValue map[any]string
	// labels maps value to display label (labelOf).
	labels map[any]string
	// nameLabels maps member name to display label; unlabeled members
	// under LabelOptional have no entry.
	nameLabels map[string]string
	// lax maps the canonical string form of each value back to the
	// declared value, for representation-crossing lookups.
	lax map[string]any
}

// Ensure Index implements apis.Index.
var _ apis.Index = (*Index)(nil)

// Build derives an Index from a declaration.
//
// Construction order follows the declaration: the inverse mapping and the
// lax table are filled front to back, so on a value collision the
// later-declared name deterministically overwrites the earlier one.
func Build(d apis.Declaration, cfg apis.Config) (*Index, error) {
	if d.IsEmpty() {
		return nil, fmt.Errorf("%w: empty declaration", ErrMalformedEnum)
	}

	n := len(d.Pairs)
	x := &Index{
		pairs:      make([]apis.Pair, n),
		byName:     make(map[string]any, n),
		byValue:    make(map[any]string, n),
		labels:     make(map[any]string, len(d.Labels)),
		nameLabels: make(map[string]string, n),
		lax:        make(map[string]any, n),
	}
	copy(x.pairs, d.Pairs)

	for _, p := range x.pairs {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: empty member name", ErrMalformedEnum)
		}
		if p.Value == nil || !reflect.TypeOf(p.Value).Comparable() {
			return nil, fmt.Errorf("%w: member %s has a non-comparable value", ErrMalformedEnum, p.Name)
		}
		if _, dup := x.byName[p.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate member name %s", ErrMalformedEnum, p.Name)
		}
		x.byName[p.Name] = p.Value
		x.byValue[p.Value] = p.Name
		if s, err := canonical(p.Value); err == nil {
			x.lax[s] = p.Value
		}
	}

	for v, label := range d.Labels {
		if _, declared := x.byValue[v]; !declared {
			return nil, fmt.Errorf("%w: label %q for undeclared value %v", ErrMalformedEnum, label, v)
		}
		x.labels[v] = label
	}

	for _, p := range x.pairs {
		label, ok := x.labels[p.Value]
		if !ok {
			if cfg.MissingLabel == apis.LabelRequired {
				return nil, fmt.Errorf("%w: member %s (value %v) has no label", ErrMalformedEnum, p.Name, p.Value)
			}
			continue
		}
		x.nameLabels[p.Name] = label
	}

	return x, nil
}

// Len returns the number of declared members.
func (x *Index) Len() int {
	return len(x.pairs)
}

// Names returns the member names in declaration order.
func (x *Index) Names() []string {
	out := make([]string, len(x.pairs))
	for i, p := range x.pairs {
		out[i] = p.Name
	}
	return out
}

// Pairs returns the ordered (name, value) snapshot.
func (x *Index) Pairs() []apis.Pair {
	out := make([]apis.Pair, len(x.pairs))
	copy(out, x.pairs)
	return out
}

// Value returns the value bound to name.
func (x *Index) Value(name string) (any, bool) {
	v, ok := x.byName[name]
	return v, ok
}

// Name returns the member name owning v under the given mode.
func (x *Index) Name(v any, mode match.Mode) (string, bool) {
	dv, ok := x.resolve(v, mode)
	if !ok {
		return "", false
	}
	return x.byValue[dv], true
}

// Label returns the display label for v under the given mode.
func (x *Index) Label(v any, mode match.Mode) (string, bool) {
	dv, ok := x.resolve(v, mode)
	if !ok {
		return "", false
	}
	label, ok := x.labels[dv]
	return label, ok
}

// NameLabel returns the display label for the member called name.
func (x *Index) NameLabel(name string) (string, bool) {
	label, ok := x.nameLabels[name]
	return label, ok
}

// Map returns a name→value snapshot.
func (x *Index) Map() map[string]any {
	out := make(map[string]any, len(x.byName))
	for k, v := range x.byName {
		out[k] = v
	}
	return out
}

// NameMap returns a value→name snapshot.
func (x *Index) NameMap() map[any]string {
	out := make(map[any]string, len(x.byValue))
	for k, v := range x.byValue {
		out[k] = v
	}
	return out
}

// Dict returns a value→label snapshot.
func (x *Index) Dict() map[any]string {
	out := make(map[any]string, len(x.labels))
	for k, v := range x.labels {
		out[k] = v
	}
	return out
}

// NameDict returns a name→label snapshot.
func (x *Index) NameDict() map[string]string {
	out := make(map[string]string, len(x.nameLabels))
	for k, v := range x.nameLabels {
		out[k] = v
	}
	return out
}

// resolve maps a candidate value to the declared value it matches, if any.
// Strict requires dynamic type + value identity; Lax falls back to the
// canonical string form when the strict probe misses.
func (x *Index) resolve(v any, mode match.Mode) (any, bool) {
	if v != nil && reflect.TypeOf(v).Comparable() {
		if _, ok := x.byValue[v]; ok {
			return v, true
		}
	}
	if mode != match.Lax {
		return nil, false
	}
	// nil never matches a member; its canonical form would be the empty
	// string, which could collide with a declared "" value.
	if v == nil {
		return nil, false
	}
	s, err := canonical(v)
	if err != nil {
		return nil, false
	}
	dv, ok := x.lax[s]
	return dv, ok
}

// canonical renders a primitive value as its canonical string form.
// Defined types (e.g. "type Code int") are first converted to their
// underlying builtin so that Code(1), int(1), and "1" all canonicalize
// identically.
func canonical(v any) (string, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		v = rv.Convert(builtins[rv.Kind()]).Interface()
	}
	return cast.ToStringE(v)
}

// builtins maps primitive kinds to their builtin reflect.Type.
var builtins = map[reflect.Kind]reflect.Type{
	reflect.Bool:    reflect.TypeOf(false),
	reflect.String:  reflect.TypeOf(""),
	reflect.Int:     reflect.TypeOf(int64(0)),
	reflect.Int8:    reflect.TypeOf(int64(0)),
	reflect.Int16:   reflect.TypeOf(int64(0)),
	reflect.Int32:   reflect.TypeOf(int64(0)),
	reflect.Int64:   reflect.TypeOf(int64(0)),
	reflect.Uint:    reflect.TypeOf(uint64(0)),
	reflect.Uint8:   reflect.TypeOf(uint64(0)),
	reflect.Uint16:  reflect.TypeOf(uint64(0)),
	reflect.Uint32:  reflect.TypeOf(uint64(0)),
	reflect.Uint64:  reflect.TypeOf(uint64(0)),
	reflect.Float32: reflect.TypeOf(float64(0)),
	reflect.Float64: reflect.TypeOf(float64(0)),
}
