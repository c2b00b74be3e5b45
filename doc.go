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

// Package enumx provides a global, process-wide enum metadata service.
//
// enumx is responsible for turning "some Go enum type" into a queryable
// set of (name, value, label) members. Declare the members once per type,
// then ask questions everywhere: does this name exist, which value does it
// carry, which member owns this value, what should we show a human for it.
// Examples: request statuses, job states, severity levels, protocol codes.
//
// # Design
//
// The core of enumx is a read-mostly global snapshot (state). The snapshot
// holds five things:
//
//   - Config: rules that control how enum types are interpreted (default
//     value-matching mode, struct tag keys, how deep to unwrap pointers,
//     whether every member must carry a label).
//
//   - Registry: a process-wide mapping from Go types to explicit member
//     declarations. This is how you attach metadata to types you do not
//     own or cannot annotate. The registry can be written to at runtime
//     (Register).
//
//   - Resolver: a read-only object that answers "what are the members of
//     this type?". The resolver tries multiple strategies, in priority
//     order:
//     1. If the type implements common.Source, use its EnumDeclaration().
//     2. If the type is found in the Registry, use that declaration.
//     3. Otherwise, fall back to struct-tag extraction that derives
//     members from the type's annotated fields.
//     Resolver is expected to be concurrency-safe for reads.
//
//   - Cache: per-type bidirectional indexes built from resolved
//     declarations. Each type is resolved and indexed at most once per
//     cache lifetime; later lookups reuse the built index. Build failures
//     are cached too, so a malformed declaration fails the same way every
//     time.
//
//   - Builder: a pluggable factory that knows how to construct Registry,
//     Resolver, and Cache instances for a given Config (and optional
//     extension data). The Builder is also allowed to reuse/migrate state
//     from previous instances.
//
// All of these live inside a single immutable struct called state.
// The package holds an atomic pointer to the current state. Readers load
// that pointer, use it, and never mutate it. Writers build a brand-new
// state and atomically swap it in.
//
// This means enumx lookups are lock-free on the hot path:
//
//	ok := enumx.HasValue[Status](1)
//	label := enumx.TransValue[Status](status)
//
// and concurrent callers always see a consistent snapshot.
//
// # Global API
//
// The package exposes three groups of operations:
//
//  1. Read helpers:
//
//     Of[E]() (lookup.Facade, error)
//     HasName[E](name string) bool
//     HasValue[E](v any, mode ...match.Mode) bool
//     NameToValue[E](name string) (any, error)
//     ValueToName[E](v any, mode ...match.Mode) (string, error)
//     TransName[E](name string) string
//     TransValue[E](v any) any
//     Map[E]() / NameMap[E]() / Dict[E]() / NameDict[E]()
//
//     These are safe for concurrent use without additional locking.
//     They always read from the latest published snapshot.
//
//  2. Mutation helpers:
//
//     Register[E](d apis.Declaration) error
//     SetConfig(cfg apis.Config)
//     SetBuilder(b apis.Builder)
//     SetExt(ext T)
//     SetRegistry(reg apis.Registry)
//     SetResolver(res apis.Resolver)
//     UnpinRegistry()
//     UnpinResolver()
//     SetAll(...)
//
//     Each of these acquires an internal build lock, derives a new
//     snapshot (rebuilding or reusing Registry / Resolver as needed),
//     and then atomically publishes that snapshot. The Cache is always
//     rebuilt on publish: its indexes derive from Config and Resolver,
//     so any swap invalidates them.
//
//     Semantics in short:
//
//     - Config affects how declarations are discovered and how values
//     are matched. Calling SetConfig() may trigger a rebuild of
//     Registry and/or Resolver, unless they are explicitly "pinned".
//
//     - Builder controls how Registry, Resolver, and Cache are
//     constructed. Swapping the Builder lets you replace discovery
//     logic (different strategies, different tag schemes) at runtime.
//
//     - Ext is an opaque extension payload. It is not interpreted by
//     enumx itself. It is simply passed down to the Builder so custom
//     builders (in other binaries) can carry extra policy/state.
//
//     - SetRegistry() / SetResolver() directly overwrite the current
//     Registry / Resolver in the snapshot and "pin" them. Once a
//     layer is pinned, enumx will stop rebuilding that layer
//     automatically until you call UnpinRegistry()/UnpinResolver().
//
//     - SetAll(...) is the "hard reset" API. It lets a process replace
//     Builder, Config, Ext, Registry, Resolver in one shot. This is
//     mainly used by tests to get a clean deterministic state
//     between test cases.
//
//  3. Introspection:
//
//     ExtAs[T]() (T, bool)
//     Cache().Builds(), Cache().Size()
//     // plus Registry().Entries(), etc.
//
//     These let callers examine the currently published snapshot for
//     debugging, metrics exposition, or documentation.
//
// # Concurrency model
//
// Reads (Of, HasName, HasValue, the Trans helpers, Registry, Resolver,
// Cache) are wait-free at the snapshot level: they load the current
// *state atomically and never take locks. The Cache serializes only the
// first build of each type; subsequent lookups for that type are plain
// map reads.
//
// Writes (SetConfig, SetBuilder, SetExt, SetRegistry, SetResolver, etc.)
// take a short build mutex, assemble a brand-new state struct, and then
// publish it via an atomic pointer swap. This gives the calling binary
// a predictable "last write wins" behavior without forcing per-lookup
// locking.
//
// # Pinning
//
// enumx supports the concept of "pinning" a layer:
//
//   - When you call SetRegistry(reg), that exact Registry becomes the
//     process-wide registry and is considered pinned. Further calls to
//     SetConfig() will not attempt to rebuild a new Registry until you
//     explicitly UnpinRegistry().
//
//   - When you call SetResolver(res), that Resolver is pinned and will
//     not be rebuilt automatically until UnpinResolver().
//
// Pinning is there for advanced scenarios where you want full control
// over one layer while still letting other layers evolve. For example,
// you may lock a custom Resolver that reads declarations from generated
// code while still allowing Config values to change.
//
// The Cache is never pinned. It is derived state; it always follows the
// Config and Resolver it was built from.
//
// # Extension config
//
// The snapshot also carries an "ext" field. This is an opaque interface{}
// (any) value owned by the embedding binary. enumx does not interpret
// ext. The active Builder receives ext on each rebuild, so out-of-tree
// builders can inject custom discovery rules or tag conventions without
// hacking the enumx core.
//
// # Usage pattern in a binary
//
// A typical component does:
//
//  1. Let enumx init with default builder/config.
//
//  2. Declare enum members, either on the type itself:
//
//     func (Status) EnumDeclaration() apis.Declaration { ... }
//
//     or via struct tags:
//
//     type Status struct {
//     Success int `enum:"0" label:"request success"`
//     Error   int `enum:"1" label:"request failure"`
//     }
//
//     or explicitly for types you cannot annotate:
//
//     enumx.Register[Status](decl)
//
//  3. Use enumx.HasValue, enumx.ValueToName, enumx.TransValue everywhere
//     input validation or display formatting needs enum metadata.
//
//  4. In tests, call enumx.SetAll(...) to get deterministic snapshots
//     and to inject a mock Builder.
//
// # Scope
//
// enumx is intentionally small. It does not try to be a code generator,
// a validation framework, or a serialization layer. It only solves one
// job:
//
//	"Given an enum type, answer name/value/label questions about its
//	 members, consistently, from one declaration."
//
// Everything else (persistence, wire encoding, localization catalogs)
// belongs to higher layers.
package enumx
