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

package lookup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/exapi/match"
	"dirpx.dev/enumx/index"
	"dirpx.dev/enumx/lookup"
)

// statusFacade builds the canonical two-member status enum:
// SUCCESS=0 "request success", ERROR=1 "request failure".
func statusFacade(t *testing.T, cfg apis.Config) lookup.Facade {
	t.Helper()
	d := apis.Declaration{
		Pairs: []apis.Pair{
			{Name: "SUCCESS", Value: 0},
			{Name: "ERROR", Value: 1},
		},
		Labels: map[any]string{
			0: "request success",
			1: "request failure",
		},
	}
	x, err := index.Build(d, cfg)
	require.NoError(t, err)
	return lookup.New(x, cfg)
}

func TestFacade_Names(t *testing.T) {
	f := statusFacade(t, config.DefaultConfig())

	assert.True(t, f.HasName("SUCCESS"))
	assert.True(t, f.HasName("ERROR"))
	assert.False(t, f.HasName("PENDING"))

	v, err := f.NameToValue("SUCCESS")
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	_, err = f.NameToValue("PENDING")
	assert.ErrorIs(t, err, lookup.ErrUnknownName)
}

func TestFacade_Values(t *testing.T) {
	f := statusFacade(t, config.DefaultConfig())

	assert.True(t, f.HasValue(1))
	assert.False(t, f.HasValue(9))

	// Strict by default: the string form of a declared value is a miss.
	assert.False(t, f.HasValue("1"))
	// Lax crosses representations.
	assert.True(t, f.HasValue("1", match.Lax))
	assert.False(t, f.HasValue("9", match.Lax))

	name, err := f.ValueToName(0)
	require.NoError(t, err)
	assert.Equal(t, "SUCCESS", name)

	name, err = f.ValueToName("0", match.Lax)
	require.NoError(t, err)
	assert.Equal(t, "SUCCESS", name)

	_, err = f.ValueToName(9)
	assert.ErrorIs(t, err, lookup.ErrUnknownValue)
}

func TestFacade_LaxDefault(t *testing.T) {
	cfg := config.NewConfig(config.WithDefaultMatch(match.Lax))
	f := statusFacade(t, cfg)

	// With a lax default, no explicit mode is needed...
	assert.True(t, f.HasValue("1"))
	// ...and an explicit strict override still tightens the check.
	assert.False(t, f.HasValue("1", match.Strict))
}

func TestFacade_Trans(t *testing.T) {
	f := statusFacade(t, config.DefaultConfig())

	assert.Equal(t, "request success", f.TransName("SUCCESS"))
	// Unknown names pass through unchanged.
	assert.Equal(t, "PENDING", f.TransName("PENDING"))

	assert.Equal(t, "request failure", f.TransValue(1))
	// Unknown values pass through unchanged, preserving type.
	assert.Equal(t, 9, f.TransValue(9))
	assert.Equal(t, "nine", f.TransValue("nine"))
}

func TestFacade_TransUnlabeled(t *testing.T) {
	cfg := config.DefaultConfig()
	d := apis.Declaration{
		Pairs: []apis.Pair{{Name: "BARE", Value: 5}},
	}
	x, err := index.Build(d, cfg)
	require.NoError(t, err)
	f := lookup.New(x, cfg)

	// Declared but unlabeled members pass through too.
	assert.Equal(t, "BARE", f.TransName("BARE"))
	assert.Equal(t, 5, f.TransValue(5))
}

func TestFacade_Snapshots(t *testing.T) {
	f := statusFacade(t, config.DefaultConfig())

	assert.Equal(t, 2, f.Len())
	assert.Equal(t, []string{"SUCCESS", "ERROR"}, f.Names())
	assert.Equal(t, map[string]any{"SUCCESS": 0, "ERROR": 1}, f.Map())
	assert.Equal(t, map[any]string{0: "SUCCESS", 1: "ERROR"}, f.NameMap())
	assert.Equal(t, map[any]string{0: "request success", 1: "request failure"}, f.Dict())
	assert.Equal(t, map[string]string{"SUCCESS": "request success", "ERROR": "request failure"}, f.NameDict())

	// The four snapshots agree with each other.
	for name, v := range f.Map() {
		assert.Equal(t, name, f.NameMap()[v])
		assert.Equal(t, f.Dict()[v], f.NameDict()[name])
	}
}

func TestFacade_ZeroValue(t *testing.T) {
	var f lookup.Facade

	assert.False(t, f.HasName("SUCCESS"))
	assert.False(t, f.HasValue(0))
	assert.Equal(t, "SUCCESS", f.TransName("SUCCESS"))
	assert.Equal(t, 0, f.TransValue(0))
	assert.Equal(t, 0, f.Len())
	assert.Nil(t, f.Names())
	assert.Empty(t, f.Map())

	_, err := f.NameToValue("SUCCESS")
	assert.ErrorIs(t, err, lookup.ErrUnknownName)
	_, err = f.ValueToName(0)
	assert.ErrorIs(t, err, lookup.ErrUnknownValue)
}

func TestInvoke(t *testing.T) {
	f := statusFacade(t, config.DefaultConfig())

	cases := []struct {
		name string
		op   string
		args []any
		want any
	}{
		{"hasName hit", "hasName", []any{"SUCCESS"}, true},
		{"hasName miss", "hasName", []any{"PENDING"}, false},
		{"hasValue strict", "hasValue", []any{1}, true},
		{"hasValue strict miss", "hasValue", []any{"1"}, false},
		{"hasValue lax mode value", "hasValue", []any{"1", match.Lax}, true},
		{"hasValue lax mode string", "hasValue", []any{"1", "lax"}, true},
		{"nameToValue", "nameToValue", []any{"ERROR"}, 1},
		{"valueToName", "valueToName", []any{0}, "SUCCESS"},
		{"transName", "transName", []any{"ERROR"}, "request failure"},
		{"transValue", "transValue", []any{0}, "request success"},
		{"transValue passthrough", "transValue", []any{9}, 9},
		{"getMap", "getMap", nil, map[string]any{"SUCCESS": 0, "ERROR": 1}},
		{"getNameMap", "getNameMap", nil, map[any]string{0: "SUCCESS", 1: "ERROR"}},
		{"getDict", "getDict", nil, map[any]string{0: "request success", 1: "request failure"}},
		{"getNameDict", "getNameDict", nil, map[string]string{"SUCCESS": "request success", "ERROR": "request failure"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := f.Invoke(c.op, c.args...)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestInvoke_Errors(t *testing.T) {
	f := statusFacade(t, config.DefaultConfig())

	_, err := f.Invoke("explode")
	assert.ErrorIs(t, err, lookup.ErrUnsupportedOperation)

	_, err = f.Invoke("hasName")
	assert.ErrorIs(t, err, lookup.ErrInvalidArgument)

	_, err = f.Invoke("hasName", 42)
	assert.ErrorIs(t, err, lookup.ErrInvalidArgument)

	_, err = f.Invoke("getMap", "extra")
	assert.ErrorIs(t, err, lookup.ErrInvalidArgument)

	_, err = f.Invoke("hasValue", 1, "fuzzy")
	assert.ErrorIs(t, err, lookup.ErrInvalidArgument)

	_, err = f.Invoke("hasValue", 1, 2.5)
	assert.ErrorIs(t, err, lookup.ErrInvalidArgument)

	_, err = f.Invoke("nameToValue", "PENDING")
	assert.ErrorIs(t, err, lookup.ErrUnknownName)

	_, err = f.Invoke("valueToName", 9)
	assert.ErrorIs(t, err, lookup.ErrUnknownValue)
}
