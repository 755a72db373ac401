// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// EntityConstructor builds a typed sub-configuration from the raw subtree
// an entity descriptor points at. It receives the parent build's base path,
// file attributes, domain, and port through opts.
type EntityConstructor func(conf RawConfig, opts BuildOptions) (any, error)

// EntityDescriptor describes a nested sub-configuration to build and attach
// to the server-level configuration: where inside the raw tree it lives
// (Path, walked key by key), the attribute name it is assigned to (Attr),
// and the constructor that turns the subtree into a typed object.
type EntityDescriptor struct {
	Path        []string
	Attr        string
	Constructor EntityConstructor
}

// BuildOPConfiguration adapts [NewOPConfiguration] to the
// [EntityConstructor] signature, so a provider configuration can be
// attached as an entity of the server configuration.
func BuildOPConfiguration(conf RawConfig, opts BuildOptions) (any, error) {
	return NewOPConfiguration(conf, opts)
}

// attachEntities walks every descriptor in order, builds its
// sub-configuration, and assigns it to the target. Descriptors are
// independent; a failure aborts immediately without rolling back entities
// already attached, so on error the caller's tree may reflect partial
// resolution.
func attachEntities(target *Configuration, conf RawConfig, opts BuildOptions, domain string, port int) error {
	for _, desc := range opts.Entities {
		sub := conf
		for i, step := range desc.Path {
			next, ok := asMapping(sub[step])
			if !ok {
				return fmt.Errorf("%w: %q (while walking path %q)",
					ErrMissingSection, step, strings.Join(desc.Path[:i+1], "."))
			}
			sub = next
		}

		if desc.Attr == "" {
			return fmt.Errorf("%w: no target attribute name", ErrMalformedEntity)
		}
		if desc.Constructor == nil {
			return fmt.Errorf("%w: entity %q has no constructor", ErrMalformedEntity, desc.Attr)
		}

		entity, err := desc.Constructor(sub, BuildOptions{
			BasePath:       opts.BasePath,
			FileAttributes: opts.FileAttributes,
			Domain:         domain,
			Port:           port,
			Defaults:       opts.Defaults,
			Logger:         opts.Logger,
		})
		if err != nil {
			return fmt.Errorf("failed to build entity %q: %w", desc.Attr, err)
		}

		target.setEntity(desc.Attr, entity)
	}
	return nil
}
