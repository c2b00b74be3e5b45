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

package cache

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/exapi/common"
	"dirpx.dev/enumx/index"
	uref "dirpx.dev/enumx/utils/reflect"
)

// ErrNoDeclaration is returned when no strategy produces a declaration for
// the requested type: it neither implements common.Source, nor is
// registered, nor is a tag-declared struct.
var ErrNoDeclaration = errors.New("enumx(cache): no declaration resolved for type")

// New constructs a Cache that resolves declarations through res and builds
// indexes under cfg.
func New(cfg apis.Config, res apis.Resolver) apis.Cache {
	return &cache{cfg: cfg, res: res}
}

// cache memoizes one index per base enum type. Each entry is built under
// its own sync.Once, so racing first accesses build exactly once and every
// caller observes the same fully built index (or the same build error).
type cache struct {
	// cfg is the configuration indexes are built under.
	cfg apis.Config
	// res resolves declarations for types.
	res apis.Resolver
	// m maps reflect.Type to *entry.
	m sync.Map
	// builds counts index build attempts, successful or not.
	builds atomic.Int64
	// mu guards Reset against concurrent entry creation bookkeeping.
	mu sync.Mutex
}

// entry is a single per-type cache slot.
type entry struct {
	once sync.Once
	idx  apis.Index
	err  error
}

// Get returns the index for t, building it on first access.
func (c *cache) Get(t reflect.Type) (apis.Index, error) {
	b, err := uref.Base(t, c.cfg)
	if err != nil {
		return nil, err
	}

	v, _ := c.m.LoadOrStore(b, &entry{})
	e := v.(*entry)
	e.once.Do(func() {
		c.builds.Add(1)
		e.idx, e.err = c.build(b)
	})
	return e.idx, e.err
}

// build resolves the declaration for b and derives its index.
func (c *cache) build(b reflect.Type) (apis.Index, error) {
	d, ok, err := c.res.Resolve(b, c.cfg)
	if err != nil {
		// A claimed-but-defective declaration source is a malformed enum.
		return nil, fmt.Errorf("%w: %s: %w", index.ErrMalformedEnum, displayName(b), err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoDeclaration, displayName(b))
	}
	idx, err := index.Build(d, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", displayName(b), err)
	}
	return idx, nil
}

// namerType is the interface type checked for self-reported enum names.
var namerType = reflect.TypeOf((*common.Namer)(nil)).Elem()

// displayName names an enum type for diagnostics, preferring a
// common.Namer implementation over the reflect type string.
func displayName(t reflect.Type) string {
	if t.Implements(namerType) {
		return reflect.New(t).Elem().Interface().(common.Namer).EnumName()
	}
	if reflect.PointerTo(t).Implements(namerType) {
		return reflect.New(t).Interface().(common.Namer).EnumName()
	}
	return t.String()
}

// Builds returns the number of index build attempts so far.
func (c *cache) Builds() int64 {
	return c.builds.Load()
}

// Size returns the number of cached entries.
func (c *cache) Size() int {
	n := 0
	c.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Reset drops all cached entries. Indexes already handed out stay valid;
// they are immutable and detached from the cache.
func (c *cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m.Range(func(key, _ any) bool {
		c.m.Delete(key)
		return true
	})
}
