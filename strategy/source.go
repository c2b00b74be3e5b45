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
	"dirpx.dev/enumx/exapi/common"
)

// NewSourceStrategy creates an apis.Strategy that uses common.Source.
func NewSourceStrategy() apis.Strategy {
	return sourceStrategy{}
}

// sourceStrategy is the zero-reflection-ish fast path: if the type (or a
// pointer to it) implements common.Source, instantiate a zero value and
// read its declaration, stopping the chain.
type sourceStrategy struct{}

// Ensure sourceStrategy implements apis.Strategy.
var _ apis.Strategy = (*sourceStrategy)(nil)

// sourceType is the interface type checked against candidates.
var sourceType = reflect.TypeOf((*common.Source)(nil)).Elem()

// TryResolve reads the declaration from a Source implementation of t.
func (sourceStrategy) TryResolve(t reflect.Type, _ apis.Config) (apis.Declaration, bool, error) {
	if t == nil {
		return apis.Declaration{}, false, nil
	}
	if t.Implements(sourceType) {
		src := reflect.New(t).Elem().Interface().(common.Source)
		return src.EnumDeclaration(), true, nil
	}
	// Pointer-receiver implementations still declare the value type.
	if reflect.PointerTo(t).Implements(sourceType) {
		src := reflect.New(t).Interface().(common.Source)
		return src.EnumDeclaration(), true, nil
	}
	return apis.Declaration{}, false, nil
}
