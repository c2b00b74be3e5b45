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

// Strategy is a pluggable declaration-discovery step. A Resolver chains
// multiple strategies in order (e.g., Source -> Registry -> Struct).
type Strategy interface {
	// TryResolve attempts to produce a declaration for t according to cfg.
	// It returns (d, true, nil) if handled, (zero, false, nil) to fall
	// through to the next strategy, and a non-nil error if the strategy
	// recognizes t but its declaration source is defective (the chain
	// must stop and surface the error).
	TryResolve(t reflect.Type, cfg Config) (d Declaration, handled bool, err error)
}
