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

// Cache memoizes derived enum indexes per enum type. The first Get for a
// type builds its index; all later calls return the same instance.
// Implementations must guarantee that concurrent first access builds
// exactly once and never exposes a partially built index. Entries live for
// the lifetime of the cache — there is no eviction.
type Cache interface {
	// Get returns the index for t, building it on first access.
	// Build and resolution failures are cached and returned verbatim on
	// every subsequent call: a defective declaration is a programmer
	// error, not a transient condition.
	Get(t reflect.Type) (Index, error)
	// Builds returns the number of index builds performed, successful or
	// not. Intended as an idempotence probe for tests and diagnostics.
	Builds() int64
	// Size returns the number of cached entries.
	Size() int
	// Reset drops all cached entries.
	Reset()
}
