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

package reflect

import (
	"errors"
	"reflect"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("enumx(reflect): nil reflect.Type provided")
	// ErrUnnamedType indicates that the provided type (after unwrapping
	// pointers) is not a named type and cannot key an enum.
	ErrUnnamedType = errors.New("enumx(reflect): type has no name")
)

// Base unwraps pointers according to cfg (MaxUnwrap) and returns the named
// type underneath, or an error if none is found.
//
// Enum identity is keyed by this base type: *Status, **Status, and Status
// all resolve to the same cache entry and registry slot. Containers other
// than pointers are not unwrapped — a slice or map is not an enum type.
//
// If MaxUnwrap <= 0, DefaultMaxUnwrap is used.
func Base(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrNilType
	}
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}

	for i := 0; i < maxUnwrap && t.Kind() == reflect.Ptr; i++ {
		t = t.Elem()
	}
	if t.Kind() == reflect.Ptr || t.Name() == "" {
		return nil, ErrUnnamedType
	}
	return t, nil
}
