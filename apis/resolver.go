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

// Resolver coordinates strategies to discover the declaration for an enum
// type. Typical chain: SourceStrategy -> RegistryStrategy -> StructStrategy.
type Resolver interface {
	// Resolve returns the declaration for t, or ok=false if no strategy
	// recognizes the type. A non-nil error means a strategy claimed the
	// type but its declaration source is defective; the chain stops there.
	Resolve(t reflect.Type, cfg Config) (d Declaration, ok bool, err error)
}
