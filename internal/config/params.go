// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// Params holds the process start parameters of a configuration build: which
// file to load and the overrides passed down to the engine. It is populated
// by merging values from environment variables and command-line flags.
//
// Struct tags:
//   - env — environment variable name for the field (caarlos0/env).
type Params struct {
	// ConfigFile is the path of the configuration file to load.
	// Env: OP_CONFIG. Flag: -c / -config.
	ConfigFile string `env:"OP_CONFIG"`

	// BaseDir is the directory relative file paths in the configuration
	// are resolved against. Empty disables path rewriting.
	// Env: OP_BASE_DIR. Flag: -base-dir.
	BaseDir string `env:"OP_BASE_DIR"`

	// Domain overrides the {domain} template value of URI-valued fields.
	// Env: OP_DOMAIN. Flag: -domain.
	Domain string `env:"OP_DOMAIN"`

	// Port overrides the {port} template value of URI-valued fields.
	// Env: OP_PORT. Flag: -port.
	Port int `env:"OP_PORT"`
}

// GetParams loads and merges the process start parameters from all
// available sources in the following priority order (earlier sources win
// for fields they set):
//  1. Environment variables
//  2. Command-line flags
//
// Returns a fully populated *Params or an error if any source fails to
// load or the merged result fails validation.
func GetParams() (*Params, error) {
	return newParamsBuilder().
		withEnv().
		withFlags().
		build()
}

// validate checks that the merged Params can drive a configuration build.
func (p *Params) validate() error {
	if p.ConfigFile == "" {
		return ErrNoConfigFile
	}
	if p.Port < 0 || p.Port > 65535 {
		return fmt.Errorf("port %d out of range", p.Port)
	}
	return nil
}
