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

import (
	"fmt"

	"dirpx.dev/enumx/exapi/match"
)

// LabelPolicy decides how the index builder treats a declared value that
// has no entry in the label mapping.
type LabelPolicy int

const (
	// LabelOptional tolerates unlabeled members: the name→label dictionary
	// simply has no entry for them and display translation degrades to
	// passthrough of the input.
	LabelOptional LabelPolicy = iota

	// LabelRequired fails the whole index build when any declared value
	// lacks a label. Use this to surface incomplete declarations at
	// startup rather than as a silent display defect.
	LabelRequired
)

// String returns a stable token for the policy, or a diagnostic form for
// unknown values.
func (p LabelPolicy) String() string {
	switch p {
	case LabelOptional:
		return "LabelOptional"
	case LabelRequired:
		return "LabelRequired"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// Config carries read-only resolution knobs that influence extraction,
// index building, and lookup. It is passed by value and should be treated
// as immutable by implementations.
type Config struct {
	// DefaultMatch is the comparison mode used by value-side lookups when
	// the caller does not pass one explicitly. Defaults to match.Strict.
	DefaultMatch match.Mode

	// MissingLabel is the policy applied when a declared value has no
	// label. Defaults to LabelOptional.
	MissingLabel LabelPolicy

	// ValueTag is the struct tag key carrying a member's value in the
	// struct-tag declaration form (default "enum").
	ValueTag string

	// LabelTag is the struct tag key carrying a member's display label in
	// the struct-tag declaration form (default "label").
	LabelTag string

	// MaxUnwrap limits pointer unwrapping depth when normalizing an enum
	// type to its base named type. Acts as a safety guard against
	// pathological nesting.
	MaxUnwrap int
}
