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

package builder_test

import (
	"reflect"
	"testing"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/builder"
	"dirpx.dev/enumx/config"
)

// Declared implements common.Source; its declaration must win over any
// registry entry for the same type.
type Declared struct{}

func (Declared) EnumDeclaration() apis.Declaration {
	return apis.Declaration{Pairs: []apis.Pair{{Name: "FROM_SOURCE", Value: 0}}}
}

// Registered gets its declaration from the registry only.
type Registered struct{}

// Tagged carries its declaration in struct tags only.
type Tagged struct {
	On  int `enum:"1"`
	Off int `enum:"0"`
}

func TestBuildRegistry_MigratesPrevious(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()

	prev := b.BuildRegistry(cfg, nil, nil)
	d := apis.Declaration{Pairs: []apis.Pair{{Name: "A", Value: 1}}}
	if err := prev.Register(reflect.TypeOf(Registered{}), d); err != nil {
		t.Fatalf("Register: %v", err)
	}

	next := b.BuildRegistry(cfg, prev, nil)
	if next == prev {
		t.Fatal("BuildRegistry returned the previous registry")
	}
	if got, ok := next.Lookup(reflect.TypeOf(Registered{})); !ok || got.Pairs[0].Name != "A" {
		t.Fatalf("migrated entry missing: got (%+v, %v)", got, ok)
	}
	if next.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", next.Count())
	}
}

func TestBuildResolver_ChainOrder(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()

	reg := b.BuildRegistry(cfg, nil, nil)
	// Register a competing declaration for the self-declaring type; the
	// source strategy must still win.
	competing := apis.Declaration{Pairs: []apis.Pair{{Name: "FROM_REGISTRY", Value: 9}}}
	if err := reg.Register(reflect.TypeOf(Declared{}), competing); err != nil {
		t.Fatalf("Register: %v", err)
	}
	regd := apis.Declaration{Pairs: []apis.Pair{{Name: "FROM_REGISTRY", Value: 1}}}
	if err := reg.Register(reflect.TypeOf(Registered{}), regd); err != nil {
		t.Fatalf("Register: %v", err)
	}

	res := b.BuildResolver(cfg, reg, nil, nil)

	d, ok, err := res.Resolve(reflect.TypeOf(Declared{}), cfg)
	if err != nil || !ok {
		t.Fatalf("Resolve(Declared): (ok=%v, err=%v)", ok, err)
	}
	if d.Pairs[0].Name != "FROM_SOURCE" {
		t.Fatalf("Resolve(Declared): got %q, want FROM_SOURCE first", d.Pairs[0].Name)
	}

	d, ok, err = res.Resolve(reflect.TypeOf(Registered{}), cfg)
	if err != nil || !ok {
		t.Fatalf("Resolve(Registered): (ok=%v, err=%v)", ok, err)
	}
	if d.Pairs[0].Name != "FROM_REGISTRY" {
		t.Fatalf("Resolve(Registered): got %q, want FROM_REGISTRY", d.Pairs[0].Name)
	}

	d, ok, err = res.Resolve(reflect.TypeOf(Tagged{}), cfg)
	if err != nil || !ok {
		t.Fatalf("Resolve(Tagged): (ok=%v, err=%v)", ok, err)
	}
	if len(d.Pairs) != 2 || d.Pairs[0].Name != "On" {
		t.Fatalf("Resolve(Tagged): bad pairs %+v", d.Pairs)
	}
}

func TestBuildCache_StartsEmpty(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()

	reg := b.BuildRegistry(cfg, nil, nil)
	res := b.BuildResolver(cfg, reg, nil, nil)

	prev := b.BuildCache(cfg, res, nil, nil)
	if _, err := prev.Get(reflect.TypeOf(Declared{})); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if prev.Size() != 1 {
		t.Fatalf("prev.Size() = %d, want 1", prev.Size())
	}

	// A fresh cache never carries entries over; indexes derive from the
	// configuration and resolver it is built with.
	next := b.BuildCache(cfg, res, prev, nil)
	if next.Size() != 0 {
		t.Fatalf("next.Size() = %d, want 0", next.Size())
	}
	if next.Builds() != 0 {
		t.Fatalf("next.Builds() = %d, want 0", next.Builds())
	}
}
