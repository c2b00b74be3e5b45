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

package config

import (
	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/exapi/match"
)

const (
	// DefaultValueTag is the struct tag key carrying member values.
	DefaultValueTag = "enum"
	// DefaultLabelTag is the struct tag key carrying display labels.
	DefaultLabelTag = "label"
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxUnwrap and tag keys are valid.
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	if cfg.ValueTag == "" {
		cfg.ValueTag = DefaultValueTag
	}
	if cfg.LabelTag == "" {
		cfg.LabelTag = DefaultLabelTag
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		DefaultMatch: match.Strict,
		MissingLabel: apis.LabelOptional,
		ValueTag:     DefaultValueTag,
		LabelTag:     DefaultLabelTag,
		MaxUnwrap:    DefaultMaxUnwrap,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithDefaultMatch sets the default comparison mode for value-side lookups.
func WithDefaultMatch(m match.Mode) Option {
	return func(c *apis.Config) {
		c.DefaultMatch = m
	}
}

// WithMissingLabel sets the policy for declared values that lack a label.
func WithMissingLabel(p apis.LabelPolicy) Option {
	return func(c *apis.Config) {
		c.MissingLabel = p
	}
}

// WithValueTag sets the struct tag key carrying member values.
// An empty key resets to the default.
func WithValueTag(tag string) Option {
	return func(c *apis.Config) {
		if tag == "" {
			c.ValueTag = DefaultValueTag
			return
		}
		c.ValueTag = tag
	}
}

// WithLabelTag sets the struct tag key carrying display labels.
// An empty key resets to the default.
func WithLabelTag(tag string) Option {
	return func(c *apis.Config) {
		if tag == "" {
			c.LabelTag = DefaultLabelTag
			return
		}
		c.LabelTag = tag
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}
