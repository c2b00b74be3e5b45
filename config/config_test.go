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

package config_test

import (
	"testing"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/exapi/match"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if cfg.DefaultMatch != match.Strict {
		t.Errorf("DefaultMatch = %v, want Strict", cfg.DefaultMatch)
	}
	if cfg.MissingLabel != apis.LabelOptional {
		t.Errorf("MissingLabel = %v, want LabelOptional", cfg.MissingLabel)
	}
	if cfg.ValueTag != config.DefaultValueTag {
		t.Errorf("ValueTag = %q, want %q", cfg.ValueTag, config.DefaultValueTag)
	}
	if cfg.LabelTag != config.DefaultLabelTag {
		t.Errorf("LabelTag = %q, want %q", cfg.LabelTag, config.DefaultLabelTag)
	}
	if cfg.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Errorf("MaxUnwrap = %d, want %d", cfg.MaxUnwrap, config.DefaultMaxUnwrap)
	}
}

func TestNewConfig_Options(t *testing.T) {
	cfg := config.NewConfig(
		config.WithDefaultMatch(match.Lax),
		config.WithMissingLabel(apis.LabelRequired),
		config.WithValueTag("member"),
		config.WithLabelTag("display"),
		config.WithMaxUnwrap(3),
	)

	if cfg.DefaultMatch != match.Lax {
		t.Errorf("DefaultMatch = %v, want Lax", cfg.DefaultMatch)
	}
	if cfg.MissingLabel != apis.LabelRequired {
		t.Errorf("MissingLabel = %v, want LabelRequired", cfg.MissingLabel)
	}
	if cfg.ValueTag != "member" {
		t.Errorf("ValueTag = %q, want %q", cfg.ValueTag, "member")
	}
	if cfg.LabelTag != "display" {
		t.Errorf("LabelTag = %q, want %q", cfg.LabelTag, "display")
	}
	if cfg.MaxUnwrap != 3 {
		t.Errorf("MaxUnwrap = %d, want 3", cfg.MaxUnwrap)
	}
}

func TestNewConfig_InvalidValuesResetToDefaults(t *testing.T) {
	cfg := config.NewConfig(
		config.WithValueTag(""),
		config.WithLabelTag(""),
		config.WithMaxUnwrap(-5),
	)

	if cfg.ValueTag != config.DefaultValueTag {
		t.Errorf("empty ValueTag: got %q, want default %q", cfg.ValueTag, config.DefaultValueTag)
	}
	if cfg.LabelTag != config.DefaultLabelTag {
		t.Errorf("empty LabelTag: got %q, want default %q", cfg.LabelTag, config.DefaultLabelTag)
	}
	if cfg.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Errorf("negative MaxUnwrap: got %d, want default %d", cfg.MaxUnwrap, config.DefaultMaxUnwrap)
	}
}

func TestLabelPolicy_String(t *testing.T) {
	cases := []struct {
		policy apis.LabelPolicy
		want   string
	}{
		{apis.LabelOptional, "LabelOptional"},
		{apis.LabelRequired, "LabelRequired"},
		{apis.LabelPolicy(9), "Unknown(9)"},
	}
	for _, c := range cases {
		if got := c.policy.String(); got != c.want {
			t.Errorf("LabelPolicy(%d).String() = %q, want %q", int(c.policy), got, c.want)
		}
	}
}
