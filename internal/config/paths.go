// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"slices"
	"strings"
)

// AddBasePath rewrites, in place, every string value stored under one of the
// fileAttributes key names so that relative paths are resolved against
// basePath. The tree itself is returned for chaining.
//
// Rules, applied per key/value pair:
//   - values already starting with "/" are absolute and stay unchanged;
//   - an empty string becomes "./" (kept for compatibility with existing
//     deployments that rely on it);
//   - any other string becomes join(basePath, value).
//
// Nested mappings are traversed with the same base path and attribute set.
// Sequences are never traversed: paths inside a list of strings are not
// rewritten.
func AddBasePath(conf RawConfig, basePath string, fileAttributes []string) RawConfig {
	for key, val := range conf {
		if slices.Contains(fileAttributes, key) {
			if s, ok := val.(string); ok {
				switch {
				case strings.HasPrefix(s, "/"):
					// already absolute
				case s == "":
					conf[key] = "./"
				default:
					conf[key] = filepath.Join(basePath, s)
				}
			}
		}
		if nested, ok := asMapping(val); ok {
			AddBasePath(nested, basePath, fileAttributes)
		}
	}
	return conf
}
