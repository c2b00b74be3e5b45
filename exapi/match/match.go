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

package match

import (
	"fmt"
	"strings"
)

// Mode controls how enum member values are compared during lookup.
//
// # Overview
//
// Mode is a small enumerated type that selects the equality semantics used
// by value-side lookup operations (HasValue, ValueToName, TransValue).
// It governs whether a candidate value must carry the exact dynamic type of
// the declared member value, or whether representation-crossing equality is
// permitted (for example, the integer 1 matching its string form "1").
//
// Mode is intentionally minimal: it selects a broad class of behavior and
// does not define how individual primitive kinds are canonicalized. The
// canonical representation used under Lax matching is an implementation
// detail of the index layer.
//
// # Values
//
//   - Strict — the candidate must equal a declared value in both dynamic
//     type and value. int(1) does not match int64(1) or "1".
//   - Lax — the candidate matches a declared value when their canonical
//     string representations are equal. int(1) matches "1".
//
// # Contract
//
//   - Mode values MUST be safe to use concurrently across goroutines
//     (they are plain integers).
//   - The mapping from known Mode values to strings MUST remain stable;
//     changing the spelling or casing is a breaking change for systems
//     that persist or parse these strings.
type Mode int

const (
	// Strict requires exact dynamic-type and value identity.
	//
	// Under Strict, a candidate value matches a declared member value only
	// when an interface comparison of the two succeeds: same dynamic type,
	// same value. This is the default mode and the safest choice for
	// programmatic lookups, where a representation mismatch almost always
	// indicates a bug at the call site.
	Strict Mode = iota

	// Lax permits representation-crossing equality.
	//
	// Under Lax, a candidate matches a declared member value when their
	// canonical string representations are equal. This is useful at system
	// boundaries where values arrive stringly typed (query parameters,
	// environment variables, loosely decoded JSON) and the caller wants
	// the enum layer to absorb the representation difference.
	//
	// Lax matching never changes which value is stored in the index; it
	// only widens the acceptance test during lookup.
	Lax
)

// String returns a human-readable representation of the Mode value.
//
// For defined values the returned tokens are "Strict" and "Lax". For
// unknown or out-of-range values, String returns a diagnostic form
// "Unknown(<n>)" and MUST NOT panic, so that corrupted values can still be
// surfaced safely in logs and diagnostics.
func (m Mode) String() string {
	switch m {
	case Strict:
		return "Strict"
	case Lax:
		return "Lax"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Parse parses a textual representation of a Mode.
//
// It accepts the same canonical tokens produced by Mode.String() for known
// values, with case-insensitive matching and surrounding whitespace
// trimmed. "loose" is accepted as an alias for Lax.
//
// On failure, Parse returns Strict and a non-nil error; callers MUST NOT
// rely on the returned Mode in the error case. Parse never panics.
func Parse(s string) (Mode, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Strict, fmt.Errorf("match: empty mode")
	}

	switch strings.ToLower(trimmed) {
	case "strict":
		return Strict, nil
	case "lax", "loose":
		return Lax, nil
	default:
		return Strict, fmt.Errorf("match: unknown mode %q", s)
	}
}

// MustParse is like Parse but panics on invalid input.
//
// It is intended for hard-coded configuration, tests, and initialization
// code where an invalid token is a programmer error rather than a
// recoverable condition. Callers MUST NOT use MustParse on untrusted input.
func MustParse(s string) Mode {
	mode, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return mode
}

// MarshalText implements encoding.TextMarshaler.
//
// For defined values it returns the same tokens as String(). For unknown
// values it returns a non-nil error rather than serializing a diagnostic
// "Unknown(...)" form, so that invalid states are never persisted.
func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case Strict, Lax:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("match: cannot marshal unknown mode %d", m)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It accepts the same tokens as Parse. On failure the receiver is left
// unchanged and a non-nil error is returned. UnmarshalText never panics.
func (m *Mode) UnmarshalText(text []byte) error {
	trimmed := strings.TrimSpace(string(text))
	if trimmed == "" {
		return fmt.Errorf("match: empty mode")
	}

	value, err := Parse(trimmed)
	if err != nil {
		return err
	}

	*m = value
	return nil
}
