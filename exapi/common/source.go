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

import "dirpx.dev/enumx/apis"

// Source identifies self-declaring enum types.
//
// # Overview
//
// Source is the primary, reflection-free path for attaching a declaration
// to an enum type. When a type implements Source, the resolution logic
// MUST prefer it and MUST NOT attempt any further strategies (registry
// lookup or struct-tag reflection) for that type.
//
// Semantically, Source is a type-level contract: EnumDeclaration describes
// the closed member set of the *type*, not of a particular instance. The
// returned declaration is expected to be independent of instance state and
// identical across calls for the life of the process.
//
// # Usage
//
// The idiomatic form is a method on the enum's anchor type returning a
// literal:
//
//	type Status struct{}
//
//	func (Status) EnumDeclaration() apis.Declaration {
//	    return apis.Declaration{
//	        Pairs: []apis.Pair{
//	            {Name: "SUCCESS", Value: 0},
//	            {Name: "ERROR", Value: 1},
//	        },
//	        Labels: map[any]string{
//	            0: "request success",
//	            1: "request failure",
//	        },
//	    }
//	}
//
// The declaration is read exactly once per enum type (on first lookup) and
// the derived index is cached, so EnumDeclaration MAY build its literal on
// every call without a performance concern.
//
// # Contract
//
//   - The returned declaration MUST be non-empty.
//   - The returned declaration MUST be deterministic: same pairs, same
//     order, same labels on every call.
//   - EnumDeclaration MUST be callable on a zero value of the type; the
//     resolver instantiates one via reflection when only the type is known.
//   - EnumDeclaration MUST be safe for concurrent calls and MUST NOT
//     perform blocking operations or I/O.
type Source interface {
	// EnumDeclaration returns the authored declaration for this enum type.
	EnumDeclaration() apis.Declaration
}

// SourceFunc adapts a plain function to the Source interface.
//
// It is useful when declaration data is assembled by a helper rather than
// authored as a method, for example in tests or generated code. The
// wrapped function carries the same contract as Source.EnumDeclaration.
type SourceFunc func() apis.Declaration

// EnumDeclaration implements Source for SourceFunc.
func (f SourceFunc) EnumDeclaration() apis.Declaration {
	return f()
}
