// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "reflect"

// RawConfig is the unvalidated nested mapping produced by the loader. Keys
// are strings; values are scalars, []any sequences, or nested mappings. No
// schema is enforced at this layer.
type RawConfig map[string]any

// DeepCopy returns a copy of the tree that shares no mappings or sequences
// with the receiver. Scalar values are copied by value.
func (c RawConfig) DeepCopy() RawConfig {
	if c == nil {
		return nil
	}
	out := make(RawConfig, len(c))
	for key, val := range c {
		out[key] = deepCopyValue(val)
	}
	return out
}

func deepCopyValue(v any) any {
	switch val := v.(type) {
	case RawConfig:
		return val.DeepCopy()
	case map[string]any:
		return map[string]any(RawConfig(val).DeepCopy())
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = deepCopyValue(elem)
		}
		return out
	default:
		return v
	}
}

// asMapping reports whether v is a nested mapping and, if so, returns it as
// a RawConfig. Both RawConfig and the plain map[string]any produced by the
// YAML and JSON decoders are recognized.
func asMapping(v any) (RawConfig, bool) {
	switch val := v.(type) {
	case RawConfig:
		return val, val != nil
	case map[string]any:
		return RawConfig(val), val != nil
	default:
		return nil, false
	}
}

// stringOr returns the string value stored under key, or fallback when the
// key is absent, empty, or not a string.
func (c RawConfig) stringOr(key, fallback string) string {
	if s, ok := c[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

// intOr returns the integer value stored under key, or fallback when the
// key is absent, zero, or not numeric. JSON decodes numbers as float64 and
// YAML as int, so both representations are accepted.
func (c RawConfig) intOr(key string, fallback int) int {
	switch n := c[key].(type) {
	case int:
		if n != 0 {
			return n
		}
	case int64:
		if n != 0 {
			return int(n)
		}
	case float64:
		if n != 0 {
			return int(n)
		}
	}
	return fallback
}

// isEmptyValue reports whether v counts as "missing" for default merging:
// nil, an empty string, an empty mapping or sequence, false, or a numeric
// zero.
func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.String:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	default:
		return rv.IsZero()
	}
}
