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

package common

// Namer lets an enum type carry a stable, human-chosen display name.
//
// # Overview
//
// Namer is optional metadata consumed by diagnostic surfaces: error
// messages, registry dumps, and documentation generators. When an enum
// type implements Namer, those surfaces use EnumName instead of the
// reflect-derived "pkg.Type" identifier.
//
// Namer never affects lookup semantics. Two enum types with the same
// EnumName remain distinct cache entries; the name is presentation only.
//
// # Usage
//
//	type Status struct{}
//
//	func (Status) EnumName() string { return "http.status" }
//
// # Contract
//
//   - The returned name MUST be non-empty and deterministic for the type.
//   - The returned name MUST NOT depend on mutable instance state.
//   - EnumName MUST be safe for concurrent calls, cheap, and free of
//     blocking operations or I/O; returning a string literal is the
//     expected implementation.
type Namer interface {
	// EnumName returns the canonical, type-level display name for this
	// enum type.
	EnumName() string
}
