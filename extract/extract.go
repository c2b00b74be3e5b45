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

package extract

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/spf13/cast"

	"dirpx.dev/enumx/apis"
)

var (
	// ErrNotStruct is returned when the declaration source is not a struct type.
	ErrNotStruct = errors.New("enumx(extract): declaration source is not a struct")
	// ErrBadValueTag indicates a value tag that cannot be coerced to the field's type.
	ErrBadValueTag = errors.New("enumx(extract): value tag does not fit field type")
	// ErrUntaggedField indicates a member field whose value can neither be
	// read from a tag nor derived from the field kind.
	ErrUntaggedField = errors.New("enumx(extract): field needs an explicit value tag")
)

// FromStruct extracts a declaration from a struct type using tags.
//
// One exported field per member, declaration order = field order:
//
//	type Status struct {
//	    Success int `enum:"0" label:"request success"`
//	    Error   int `enum:"1" label:"request failure"`
//	}
//
// The value tag is coerced to the field's type. When the tag is absent,
// integer fields receive the previous member's value plus one (starting at
// zero) and string fields receive the field name; any other untagged kind
// is an error. Unexported fields, embedded fields, and fields tagged with
// "-" are reserved/ignored entries and do not become members.
//
// FromStruct is a pure function of (t, cfg): no side effects, no caching.
func FromStruct(t reflect.Type, cfg apis.Config) (apis.Declaration, error) {
	if t == nil || t.Kind() != reflect.Struct {
		return apis.Declaration{}, ErrNotStruct
	}

	d := apis.Declaration{
		Pairs:  make([]apis.Pair, 0, t.NumField()),
		Labels: make(map[any]string),
	}

	// next is the iota-style fallback for untagged integer fields.
	// nextOK goes false when the previous value has no int64 successor.
	next := int64(0)
	nextOK := true

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" || f.Anonymous {
			continue // reserved: not a member
		}
		tag, tagged := f.Tag.Lookup(cfg.ValueTag)
		if tag == "-" {
			continue
		}

		var value any
		switch {
		case tagged:
			v, err := coerce(tag, f.Type)
			if err != nil {
				return apis.Declaration{}, fmt.Errorf("%w: %s.%s: %v", ErrBadValueTag, t.Name(), f.Name, err)
			}
			value = v
		case isInteger(f.Type.Kind()):
			v, err := ordinal(next, nextOK, f.Type)
			if err != nil {
				return apis.Declaration{}, fmt.Errorf("%w: %s.%s: %v", ErrUntaggedField, t.Name(), f.Name, err)
			}
			value = v
		case f.Type.Kind() == reflect.String:
			value = reflect.ValueOf(f.Name).Convert(f.Type).Interface()
		default:
			return apis.Declaration{}, fmt.Errorf("%w: %s.%s (%s)", ErrUntaggedField, t.Name(), f.Name, f.Type)
		}

		if isInteger(f.Type.Kind()) {
			next, nextOK = successor(reflect.ValueOf(value))
		}

		d.Pairs = append(d.Pairs, apis.Pair{Name: f.Name, Value: value})
		if label, ok := f.Tag.Lookup(cfg.LabelTag); ok {
			d.Labels[value] = label
		}
	}

	return d, nil
}

// coerce parses a tag string as a value of type ft.
// The result carries ft as its dynamic type, so defined types (e.g.
// "type Code int") survive into strict comparisons. A parsed value that
// does not fit ft is an error, never a wraparound.
func coerce(s string, ft reflect.Type) (any, error) {
	rv := reflect.New(ft).Elem()

	switch k := ft.Kind(); {
	case k == reflect.Bool:
		b, err := cast.ToBoolE(s)
		if err != nil {
			return nil, err
		}
		rv.SetBool(b)
	case k >= reflect.Int && k <= reflect.Int64:
		n, err := cast.ToInt64E(s)
		if err != nil {
			return nil, err
		}
		if rv.OverflowInt(n) {
			return nil, fmt.Errorf("value %s overflows %s", s, ft)
		}
		rv.SetInt(n)
	case k >= reflect.Uint && k <= reflect.Uint64:
		u, err := cast.ToUint64E(s)
		if err != nil {
			return nil, err
		}
		if rv.OverflowUint(u) {
			return nil, fmt.Errorf("value %s overflows %s", s, ft)
		}
		rv.SetUint(u)
	case k == reflect.Float32 || k == reflect.Float64:
		fl, err := cast.ToFloat64E(s)
		if err != nil {
			return nil, err
		}
		if rv.OverflowFloat(fl) {
			return nil, fmt.Errorf("value %s overflows %s", s, ft)
		}
		rv.SetFloat(fl)
	case k == reflect.String:
		rv.SetString(s)
	default:
		return nil, fmt.Errorf("unsupported member kind %s", k)
	}
	return rv.Interface(), nil
}

// ordinal materializes the implicit value for an untagged integer field.
// The implicit value must fit the field's type; wraparound would silently
// collide with other members.
func ordinal(next int64, ok bool, ft reflect.Type) (any, error) {
	if !ok {
		return nil, errors.New("previous member value has no representable successor")
	}
	rv := reflect.New(ft).Elem()
	if isUnsigned(ft.Kind()) {
		if next < 0 || rv.OverflowUint(uint64(next)) {
			return nil, fmt.Errorf("implicit value %d overflows %s", next, ft)
		}
		rv.SetUint(uint64(next))
	} else {
		if rv.OverflowInt(next) {
			return nil, fmt.Errorf("implicit value %d overflows %s", next, ft)
		}
		rv.SetInt(next)
	}
	return rv.Interface(), nil
}

// successor computes the ordinal following the given member value.
// ok is false when that successor does not fit in an int64.
func successor(rv reflect.Value) (next int64, ok bool) {
	if isUnsigned(rv.Kind()) {
		u := rv.Uint()
		if u >= math.MaxInt64 {
			return 0, false
		}
		return int64(u) + 1, true
	}
	n := rv.Int()
	if n == math.MaxInt64 {
		return 0, false
	}
	return n + 1, true
}

// isInteger reports whether k is a signed or unsigned integer kind.
func isInteger(k reflect.Kind) bool {
	return (k >= reflect.Int && k <= reflect.Int64) || isUnsigned(k)
}

// isUnsigned reports whether k is an unsigned integer kind.
func isUnsigned(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uint64
}
