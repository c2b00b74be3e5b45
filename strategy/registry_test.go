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

package strategy_test

import (
	"reflect"
	"testing"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/registry"
	"dirpx.dev/enumx/strategy"
)

func TestRegistryStrategy_HitAndMiss(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)

	d := apis.Declaration{
		Pairs: []apis.Pair{{Name: "A", Value: 1}, {Name: "B", Value: 2}},
	}
	if err := reg.Register(reflect.TypeOf(Undeclared{}), d); err != nil {
		t.Fatalf("Register: %v", err)
	}

	s := strategy.NewRegistryStrategy(reg)

	got, ok, err := s.TryResolve(reflect.TypeOf(Undeclared{}), cfg)
	if err != nil {
		t.Fatalf("TryResolve: unexpected error: %v", err)
	}
	if !ok || len(got.Pairs) != 2 {
		t.Fatalf("TryResolve: got (%+v, %v), want registered declaration", got, ok)
	}

	// Pointer forms key the same base type.
	if _, ok, _ := s.TryResolve(reflect.TypeOf(&Undeclared{}), cfg); !ok {
		t.Fatal("TryResolve(*Undeclared): want hit via base type")
	}

	if _, ok, _ := s.TryResolve(reflect.TypeOf(SelfDeclared{}), cfg); ok {
		t.Fatal("TryResolve(unregistered): want miss")
	}
}

func TestRegistryStrategy_NilInputs(t *testing.T) {
	cfg := config.DefaultConfig()

	s := strategy.NewRegistryStrategy(nil)
	if _, ok, err := s.TryResolve(reflect.TypeOf(Undeclared{}), cfg); ok || err != nil {
		t.Fatalf("nil registry: got (ok=%v, err=%v), want miss", ok, err)
	}

	s = strategy.NewRegistryStrategy(registry.New(cfg))
	if _, ok, err := s.TryResolve(nil, cfg); ok || err != nil {
		t.Fatalf("nil type: got (ok=%v, err=%v), want miss", ok, err)
	}
}
