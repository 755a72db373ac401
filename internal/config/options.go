// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/go-oidc-provider/internal/logger"

// BuildOptions carries the caller-supplied parameters of a configuration
// build. The zero value is usable: defaults are substituted per field as
// documented.
type BuildOptions struct {
	// BasePath is the directory against which relative file paths in the
	// tree are resolved. When empty, no path rewriting happens.
	BasePath string

	// FileAttributes overrides the set of key names treated as file paths.
	// Nil means [DefaultFileAttributeNames].
	FileAttributes []string

	// Domain and Port fill the {domain}/{port} placeholders of URI-valued
	// fields. When empty/zero they fall back to the tree's own "domain"
	// and "port" keys, and finally to "127.0.0.1" and 80.
	Domain string
	Port   int

	// Defaults overrides the static default table used by the provider
	// builder. Nil means [DefaultConfig]; [DefaultExtendedConfig] is the
	// usual alternative.
	Defaults RawConfig

	// Entities describes nested sub-configurations for [NewConfiguration]
	// to build and attach.
	Entities []EntityDescriptor

	// Logger is the injected logging handle used when the tree has no
	// "logging" section. Nil falls back to a no-op logger; supply the
	// process logger at the call site instead of relying on a global.
	Logger *logger.Logger
}

func (o BuildOptions) fileAttributes() []string {
	if o.FileAttributes != nil {
		return o.FileAttributes
	}
	return DefaultFileAttributeNames
}

func (o BuildOptions) defaults() RawConfig {
	if o.Defaults != nil {
		return o.Defaults
	}
	return DefaultConfig
}

// resolveDomainPort picks the effective domain and port for template
// substitution: explicit options win, then the tree's top-level "domain"
// and "port" keys, then the loopback defaults.
func resolveDomainPort(conf RawConfig, opts BuildOptions) (string, int) {
	domain := opts.Domain
	if domain == "" {
		domain = conf.stringOr("domain", "127.0.0.1")
	}
	port := opts.Port
	if port == 0 {
		port = conf.intOr("port", 80)
	}
	return domain, port
}
