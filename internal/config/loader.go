// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadRawConfig reads the file at path and parses it into a raw nested
// mapping. The parser is selected by file extension: .yaml and .yml are
// parsed as YAML, .json as JSON. Any other extension fails with
// [ErrUnsupportedFormat] before the file is touched.
func LoadRawConfig(path string) (RawConfig, error) {
	var unmarshal func([]byte, any) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	case ".json":
		unmarshal = json.Unmarshal
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var conf map[string]any
	if err := unmarshal(data, &conf); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}
	if conf == nil {
		return nil, fmt.Errorf("configuration file %q does not contain a mapping", path)
	}

	return RawConfig(conf), nil
}

// LoadOPConfiguration loads the file at path and builds a provider-level
// configuration from it. See [NewOPConfiguration].
func LoadOPConfiguration(path string, opts BuildOptions) (*OPConfiguration, error) {
	conf, err := LoadRawConfig(path)
	if err != nil {
		return nil, err
	}
	return NewOPConfiguration(conf, opts)
}

// LoadConfiguration loads the file at path and builds a server-level
// configuration from it. See [NewConfiguration].
func LoadConfiguration(path string, opts BuildOptions) (*Configuration, error) {
	conf, err := LoadRawConfig(path)
	if err != nil {
		return nil, err
	}
	return NewConfiguration(conf, opts)
}
