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
	"dirpx.dev/enumx/strategy"
)

// SelfDeclared implements common.Source with a value receiver.
type SelfDeclared struct{}

func (SelfDeclared) EnumDeclaration() apis.Declaration {
	return apis.Declaration{
		Pairs: []apis.Pair{
			{Name: "SUCCESS", Value: 0},
			{Name: "ERROR", Value: 1},
		},
		Labels: map[any]string{
			0: "request success",
			1: "request failure",
		},
	}
}

// PtrDeclared implements common.Source with a pointer receiver.
type PtrDeclared struct{}

func (*PtrDeclared) EnumDeclaration() apis.Declaration {
	return apis.Declaration{
		Pairs: []apis.Pair{{Name: "ONLY", Value: "ONLY"}},
	}
}

// Undeclared implements nothing.
type Undeclared struct{}

func TestSourceStrategy_ValueReceiver(t *testing.T) {
	s := strategy.NewSourceStrategy()
	cfg := config.DefaultConfig()

	d, ok, err := s.TryResolve(reflect.TypeOf(SelfDeclared{}), cfg)
	if err != nil {
		t.Fatalf("TryResolve: unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("TryResolve: want handled=true")
	}
	if len(d.Pairs) != 2 || d.Pairs[0].Name != "SUCCESS" {
		t.Fatalf("TryResolve: bad declaration %+v", d)
	}
}

func TestSourceStrategy_PointerReceiver(t *testing.T) {
	s := strategy.NewSourceStrategy()
	cfg := config.DefaultConfig()

	// The value type is claimed even when only *T implements Source.
	d, ok, err := s.TryResolve(reflect.TypeOf(PtrDeclared{}), cfg)
	if err != nil {
		t.Fatalf("TryResolve: unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("TryResolve: want handled=true for pointer-receiver Source")
	}
	if len(d.Pairs) != 1 || d.Pairs[0].Name != "ONLY" {
		t.Fatalf("TryResolve: bad declaration %+v", d)
	}
}

func TestSourceStrategy_FallsThrough(t *testing.T) {
	s := strategy.NewSourceStrategy()
	cfg := config.DefaultConfig()

	if _, ok, err := s.TryResolve(reflect.TypeOf(Undeclared{}), cfg); ok || err != nil {
		t.Fatalf("TryResolve(Undeclared): got (ok=%v, err=%v), want miss", ok, err)
	}
	if _, ok, err := s.TryResolve(nil, cfg); ok || err != nil {
		t.Fatalf("TryResolve(nil): got (ok=%v, err=%v), want miss", ok, err)
	}
}
