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

package lookup

import (
	"errors"
	"fmt"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/exapi/match"
)

var (
	// ErrUnknownName is returned by NameToValue for a name with no entry.
	ErrUnknownName = errors.New("enumx(lookup): unknown member name")
	// ErrUnknownValue is returned by ValueToName for a value with no entry
	// under the effective comparison mode.
	ErrUnknownValue = errors.New("enumx(lookup): unknown member value")
	// ErrUnsupportedOperation is returned by Invoke for an operation name
	// the facade does not recognize.
	ErrUnsupportedOperation = errors.New("enumx(lookup): unsupported operation")
	// ErrInvalidArgument is returned by Invoke when an operation receives
	// the wrong number or type of arguments.
	ErrInvalidArgument = errors.New("enumx(lookup): invalid operation argument")
)

// Facade is the uniform operation surface over one enum type's cached
// index. It is a small immutable value: construct freely, copy freely.
// All operations are pure reads; none mutate the underlying index.
type Facade struct {
	idx apis.Index
	cfg apis.Config
}

// New binds a facade to an index under the given configuration.
func New(idx apis.Index, cfg apis.Config) Facade {
	return Facade{idx: idx, cfg: cfg}
}

// Index exposes the bound index for callers that need raw accessors.
func (f Facade) Index() apis.Index {
	return f.idx
}

// HasName reports whether name is a declared member name.
func (f Facade) HasName(name string) bool {
	if f.idx == nil {
		return false
	}
	_, ok := f.idx.Value(name)
	return ok
}

// HasValue reports whether v equals a declared member value. The optional
// mode overrides the configured default (strict unless configured
// otherwise): strict requires dynamic type + value identity, lax accepts
// representation-crossing equality such as 1 vs "1".
func (f Facade) HasValue(v any, mode ...match.Mode) bool {
	if f.idx == nil {
		return false
	}
	_, ok := f.idx.Name(v, f.mode(mode))
	return ok
}

// NameToValue returns the value bound to name, or ErrUnknownName.
func (f Facade) NameToValue(name string) (any, error) {
	if f.idx == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	v, ok := f.idx.Value(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return v, nil
}

// ValueToName returns the member name owning v, or ErrUnknownValue.
// Presence follows the same mode semantics as HasValue; when a value is
// shared by several names, the later-declared name wins.
func (f Facade) ValueToName(v any, mode ...match.Mode) (string, error) {
	if f.idx == nil {
		return "", fmt.Errorf("%w: %v", ErrUnknownValue, v)
	}
	name, ok := f.idx.Name(v, f.mode(mode))
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrUnknownValue, v)
	}
	return name, nil
}

// TransName returns the display label for the member called name.
// Unknown or unlabeled names pass through unchanged — TransName never
// fails. This is a deliberate usability tradeoff for display code.
func (f Facade) TransName(name string) string {
	if f.idx == nil {
		return name
	}
	if label, ok := f.idx.NameLabel(name); ok {
		return label
	}
	return name
}

// TransValue returns the display label for the member value v.
// Unknown or unlabeled values pass through unchanged — TransValue never
// fails. Presence uses the configured default comparison mode.
func (f Facade) TransValue(v any) any {
	if f.idx == nil {
		return v
	}
	if label, ok := f.idx.Label(v, f.cfg.DefaultMatch); ok {
		return label
	}
	return v
}

// Names returns the member names in declaration order.
func (f Facade) Names() []string {
	if f.idx == nil {
		return nil
	}
	return f.idx.Names()
}

// Pairs returns the ordered (name, value) snapshot.
func (f Facade) Pairs() []apis.Pair {
	if f.idx == nil {
		return nil
	}
	return f.idx.Pairs()
}

// Map returns a name→value snapshot.
func (f Facade) Map() map[string]any {
	if f.idx == nil {
		return map[string]any{}
	}
	return f.idx.Map()
}

// NameMap returns a value→name snapshot.
func (f Facade) NameMap() map[any]string {
	if f.idx == nil {
		return map[any]string{}
	}
	return f.idx.NameMap()
}

// Dict returns a value→label snapshot.
func (f Facade) Dict() map[any]string {
	if f.idx == nil {
		return map[any]string{}
	}
	return f.idx.Dict()
}

// NameDict returns a name→label snapshot.
func (f Facade) NameDict() map[string]string {
	if f.idx == nil {
		return map[string]string{}
	}
	return f.idx.NameDict()
}

// Len returns the number of declared members.
func (f Facade) Len() int {
	if f.idx == nil {
		return 0
	}
	return f.idx.Len()
}

// Invoke dispatches an operation by its string token. It exists for
// table-driven and config-driven callers; programmatic code should call
// the typed methods directly.
//
// Recognized tokens and signatures:
//
//	hasName(name string) bool
//	hasValue(v any [, mode]) bool
//	nameToValue(name string) any
//	valueToName(v any [, mode]) string
//	transName(name string) string
//	transValue(v any) any
//	getMap() map[string]any
//	getNameMap() map[any]string
//	getDict() map[any]string
//	getNameDict() map[string]string
//
// The optional mode argument is a match.Mode or its textual form ("strict",
// "lax"). Unknown tokens yield ErrUnsupportedOperation; arity and type
// mismatches yield ErrInvalidArgument.
func (f Facade) Invoke(op string, args ...any) (any, error) {
	switch op {
	case "hasName":
		name, err := wantName(op, args)
		if err != nil {
			return nil, err
		}
		return f.HasName(name), nil

	case "hasValue":
		v, mode, err := wantValue(op, args)
		if err != nil {
			return nil, err
		}
		return f.HasValue(v, mode...), nil

	case "nameToValue":
		name, err := wantName(op, args)
		if err != nil {
			return nil, err
		}
		return f.NameToValue(name)

	case "valueToName":
		v, mode, err := wantValue(op, args)
		if err != nil {
			return nil, err
		}
		return f.ValueToName(v, mode...)

	case "transName":
		name, err := wantName(op, args)
		if err != nil {
			return nil, err
		}
		return f.TransName(name), nil

	case "transValue":
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: %s takes one argument", ErrInvalidArgument, op)
		}
		return f.TransValue(args[0]), nil

	case "getMap":
		if err := wantNone(op, args); err != nil {
			return nil, err
		}
		return f.Map(), nil

	case "getNameMap":
		if err := wantNone(op, args); err != nil {
			return nil, err
		}
		return f.NameMap(), nil

	case "getDict":
		if err := wantNone(op, args); err != nil {
			return nil, err
		}
		return f.Dict(), nil

	case "getNameDict":
		if err := wantNone(op, args); err != nil {
			return nil, err
		}
		return f.NameDict(), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedOperation, op)
	}
}

// mode picks the effective comparison mode for a call.
func (f Facade) mode(override []match.Mode) match.Mode {
	if len(override) > 0 {
		return override[0]
	}
	return f.cfg.DefaultMatch
}

// wantName validates a single string argument.
func wantName(op string, args []any) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: %s takes one argument", ErrInvalidArgument, op)
	}
	name, ok := args[0].(string)
	if !ok {
		return "", fmt.Errorf("%w: %s takes a string, got %T", ErrInvalidArgument, op, args[0])
	}
	return name, nil
}

// wantNone validates an empty argument list.
func wantNone(op string, args []any) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: %s takes no arguments", ErrInvalidArgument, op)
	}
	return nil
}

// wantValue validates a value argument plus an optional mode.
func wantValue(op string, args []any) (any, []match.Mode, error) {
	switch len(args) {
	case 1:
		return args[0], nil, nil
	case 2:
		switch m := args[1].(type) {
		case match.Mode:
			return args[0], []match.Mode{m}, nil
		case string:
			mode, err := match.Parse(m)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: %s: %v", ErrInvalidArgument, op, err)
			}
			return args[0], []match.Mode{mode}, nil
		default:
			return nil, nil, fmt.Errorf("%w: %s mode must be a match.Mode or string, got %T", ErrInvalidArgument, op, args[1])
		}
	default:
		return nil, nil, fmt.Errorf("%w: %s takes a value and an optional mode", ErrInvalidArgument, op)
	}
}
