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

package enumx

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/builder"
	"dirpx.dev/enumx/cache"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/exapi/match"
	"dirpx.dev/enumx/index"
	"dirpx.dev/enumx/lookup"
)

// init initializes the global enumx state.
func init() {
	// Initialize state with default cfg, reg, res, and cch.
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.reg = b.BuildRegistry(s.cfg, nil, nil)
	s.res = b.BuildResolver(s.cfg, s.reg, nil, nil)
	s.cch = b.BuildCache(s.cfg, s.res, nil, nil)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("enumx: builder returned nil registry")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("enumx: builder returned nil resolver")
	// ErrNilCache is returned when a builder returns a nil cache.
	ErrNilCache = errors.New("enumx: builder returned nil cache")
)

// Caller-facing failure taxonomy, re-exported so application code can use
// errors.Is without importing the internal packages.
var (
	// ErrUnknownName is returned by NameToValue for an undeclared name.
	ErrUnknownName = lookup.ErrUnknownName
	// ErrUnknownValue is returned by ValueToName for an undeclared value.
	ErrUnknownValue = lookup.ErrUnknownValue
	// ErrUnsupportedOperation is returned by Facade.Invoke for an unknown
	// operation token.
	ErrUnsupportedOperation = lookup.ErrUnsupportedOperation
	// ErrMalformedEnum is returned when an enum type's declaration is
	// structurally invalid. It surfaces on first access and every access
	// thereafter; treat it as fatal.
	ErrMalformedEnum = index.ErrMalformedEnum
	// ErrNoDeclaration is returned when a type has no discoverable
	// declaration at all.
	ErrNoDeclaration = cache.ErrNoDeclaration
)

// Of returns the lookup facade for enum type E, resolving and building its
// index on first use via the global cache.
func Of[E any]() (lookup.Facade, error) {
	return OfType(reflect.TypeOf((*E)(nil)).Elem())
}

// MustOf is like Of but panics on error. It is intended for startup code
// and tests, where a missing or malformed declaration is a programmer
// error and failing fast is the point.
func MustOf[E any]() lookup.Facade {
	f, err := Of[E]()
	if err != nil {
		panic(err)
	}
	return f
}

// OfType is the reflect.Type counterpart of Of.
func OfType(t reflect.Type) (lookup.Facade, error) {
	s := st.Load()
	idx, err := s.cch.Get(t)
	if err != nil {
		return lookup.Facade{}, err
	}
	return lookup.New(idx, s.cfg), nil
}

// HasName reports whether name is a declared member of E.
// It returns false when E has no resolvable declaration.
func HasName[E any](name string) bool {
	f, err := Of[E]()
	if err != nil {
		return false
	}
	return f.HasName(name)
}

// HasValue reports whether v is a declared value of E under the given mode
// (configured default when omitted). It returns false when E has no
// resolvable declaration.
func HasValue[E any](v any, mode ...match.Mode) bool {
	f, err := Of[E]()
	if err != nil {
		return false
	}
	return f.HasValue(v, mode...)
}

// NameToValue returns the value bound to name in E.
func NameToValue[E any](name string) (any, error) {
	f, err := Of[E]()
	if err != nil {
		return nil, err
	}
	return f.NameToValue(name)
}

// ValueToName returns the member name of E owning v.
func ValueToName[E any](v any, mode ...match.Mode) (string, error) {
	f, err := Of[E]()
	if err != nil {
		return "", err
	}
	return f.ValueToName(v, mode...)
}

// TransName returns the display label for E's member called name, or name
// unchanged when unknown or unlabeled. It never fails; an unresolvable E
// also degrades to passthrough.
func TransName[E any](name string) string {
	f, err := Of[E]()
	if err != nil {
		return name
	}
	return f.TransName(name)
}

// TransValue returns the display label for E's member value v, or v
// unchanged when unknown or unlabeled. It never fails.
func TransValue[E any](v any) any {
	f, err := Of[E]()
	if err != nil {
		return v
	}
	return f.TransValue(v)
}

// Names returns E's member names in declaration order.
func Names[E any]() ([]string, error) {
	f, err := Of[E]()
	if err != nil {
		return nil, err
	}
	return f.Names(), nil
}

// Map returns E's name→value snapshot.
func Map[E any]() (map[string]any, error) {
	f, err := Of[E]()
	if err != nil {
		return nil, err
	}
	return f.Map(), nil
}

// NameMap returns E's value→name snapshot.
func NameMap[E any]() (map[any]string, error) {
	f, err := Of[E]()
	if err != nil {
		return nil, err
	}
	return f.NameMap(), nil
}

// Dict returns E's value→label snapshot.
func Dict[E any]() (map[any]string, error) {
	f, err := Of[E]()
	if err != nil {
		return nil, err
	}
	return f.Dict(), nil
}

// NameDict returns E's name→label snapshot.
func NameDict[E any]() (map[string]string, error) {
	f, err := Of[E]()
	if err != nil {
		return nil, err
	}
	return f.NameDict(), nil
}

// Register adds an explicit declaration for enum type E to the global
// registry. This is the path for enum types that neither implement
// common.Source nor use struct tags.
func Register[E any](d apis.Declaration) error {
	return RegisterType(reflect.TypeOf((*E)(nil)).Elem(), d)
}

// RegisterType adds a type→declaration mapping to the global registry.
// This is a convenience wrapper around the global reg.
func RegisterType(t reflect.Type, d apis.Declaration) error {
	return st.Load().reg.Register(t, d)
}

// SetAll explicitly sets all global enumx state components.
//
// Nil arguments leave the corresponding component unchanged, except for
// ext which is always replaced. The cache is always rebuilt: cached
// indexes derive from configuration and resolver, so any swap invalidates
// them.
//
// This is a convenience wrapper around the global state.
func SetAll(cfg *apis.Config, ext any, reg apis.Registry, res apis.Resolver, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Extension
	next := ext

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Registry
	nreg := reg
	npreg := false
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, old.reg, next)
	} else {
		npreg = true
	}

	// Resolver
	nres := res
	npres := false
	if nres == nil {
		nres = nbld.BuildResolver(ncfg, nreg, old.res, next)
	} else {
		npres = true
	}

	publish(ncfg, next, nreg, nres, nbld, npreg, npres, old.cch)
}

// Config returns the global enumx configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global enumx configuration to cfg.
// It rebuilds the unpinned layers and always replaces the cache.
// This is a convenience wrapper around the global state.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new reg and res based on the new cfg and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(cfg, old.reg, old.ext)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(cfg, nreg, old.res, old.ext)
	}

	publish(cfg, old.ext, nreg, nres, b, old.preg, old.pres, old.cch)
}

// Registry returns the global enumx registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry sets the global enumx registry to reg and pins it.
// It rebuilds the resolver (unless pinned) and replaces the cache.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new res based on the old cfg and new reg.
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(old.cfg, reg, old.res, old.ext)
	}

	publish(old.cfg, old.ext, reg, nres, b, true, old.pres, old.cch)
}

// Resolver returns the global enumx resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver sets the global enumx resolver to res and pins it.
// The cache is replaced so indexes rebuild through the new resolver.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	publish(old.cfg, old.ext, old.reg, res, old.bld, old.preg, true, old.cch)
}

// Cache returns the global enumx cache.
//
// There is deliberately no SetCache: the cache is derived state, produced
// by the builder from configuration and resolver. Replacing it
// independently could publish indexes that disagree with both.
func Cache() apis.Cache {
	return st.Load().cch
}

// Builder returns the global enumx builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global enumx builder to b.
// Unpinned layers and the cache are rebuilt through the new builder.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Build new reg and res based on the new bld and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg, old.ext)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(old.cfg, nreg, old.res, old.ext)
	}

	publish(old.cfg, old.ext, nreg, nres, b, old.preg, old.pres, old.cch)
}

// SetExt replaces extension config and rebuilds non-pinned layers via the builder.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new reg and res based on the new ext and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg, ext)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(old.cfg, nreg, old.res, ext)
	}

	publish(old.cfg, ext, nreg, nres, b, old.preg, old.pres, old.cch)
}

// ExtAs returns the global enumx extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsRegistryPinned returns whether the global registry is pinned (immutable).
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry makes the global registry immune to automatic rebuilds.
func PinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			res:  old.res,
			cch:  old.cch,
			bld:  old.bld,
			preg: true,
			pres: old.pres,
		},
	)
}

// UnpinRegistry makes the global registry rebuildable again.
func UnpinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			res:  old.res,
			cch:  old.cch,
			bld:  old.bld,
			preg: false,
			pres: old.pres,
		},
	)
}

// IsResolverPinned returns whether the global resolver is pinned (immutable).
func IsResolverPinned() bool {
	return st.Load().pres
}

// PinResolver makes the global resolver immune to automatic rebuilds.
func PinResolver() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			res:  old.res,
			cch:  old.cch,
			bld:  old.bld,
			preg: old.preg,
			pres: true,
		},
	)
}

// UnpinResolver makes the global resolver rebuildable again.
func UnpinResolver() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			res:  old.res,
			cch:  old.cch,
			bld:  old.bld,
			preg: old.preg,
			pres: false,
		},
	)
}

// publish validates the layers, rebuilds the cache, and atomically swaps
// in the new snapshot. Callers must hold buildMu.
func publish(cfg apis.Config, ext any, reg apis.Registry, res apis.Resolver, bld apis.Builder, preg, pres bool, prev apis.Cache) {
	// Ensure non-nil reg and res.
	if reg == nil {
		panic(ErrNilRegistry)
	}
	if res == nil {
		panic(ErrNilResolver)
	}

	// The cache always follows the layers it derives from.
	cch := bld.BuildCache(cfg, res, prev, ext)
	if cch == nil {
		panic(ErrNilCache)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  cfg,
			ext:  ext,
			reg:  reg,
			res:  res,
			cch:  cch,
			bld:  bld,
			preg: preg,
			pres: pres,
		},
	)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global enumx state.
var st atomic.Pointer[state]

// state is the global enumx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global enumx configuration.
	cfg apis.Config
	// ext is the global enumx extension configuration.
	ext any
	// reg is the global declaration registry.
	reg apis.Registry
	// res is the global declaration resolver.
	res apis.Resolver
	// cch is the global metadata cache.
	cch apis.Cache
	// bld is the global enumx builder.
	bld apis.Builder
	// preg indicates whether the registry is pinned (immutable).
	preg bool
	// pres indicates whether the resolver is pinned (immutable).
	pres bool
}
