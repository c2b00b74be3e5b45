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

package strategy

import (
	"reflect"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/extract"
)

// NewStructStrategy creates an apis.Strategy that extracts declarations
// from struct tags via the extract package.
func NewStructStrategy() apis.Strategy {
	return structStrategy{}
}

// structStrategy is the universal fallback for tag-declared enums. It only
// claims struct types that carry at least one member field; an extraction
// failure on a claimed type stops the chain.
type structStrategy struct{}

// Ensure structStrategy implements apis.Strategy.
var _ apis.Strategy = (*structStrategy)(nil)

// TryResolve extracts a declaration from a struct type's tags.
func (structStrategy) TryResolve(t reflect.Type, cfg apis.Config) (apis.Declaration, bool, error) {
	if t == nil || t.Kind() != reflect.Struct {
		return apis.Declaration{}, false, nil
	}
	d, err := extract.FromStruct(t, cfg)
	if err != nil {
		return apis.Declaration{}, false, err
	}
	if d.IsEmpty() {
		// A struct with no member fields is not an enum; fall through.
		return apis.Declaration{}, false, nil
	}
	return d, true, nil
}
