// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-oidc-provider/internal/logger"
)

// Configuration is the server-level configuration: the process logging
// handle, the webserver subtree extracted verbatim, and whatever entities
// the build attached. Unlike the provider-level builder it performs no
// default merging over a fixed attribute schema.
type Configuration struct {
	// Logger is built from the tree's "logging" section when present,
	// otherwise taken from [BuildOptions.Logger].
	Logger *logger.Logger `attr:"logger"`

	// WebServer is the "webserver" subtree of the raw configuration,
	// passed through untouched for the transport layer to consume.
	WebServer RawConfig `attr:"webserver"`

	entityOrder []string
	entities    map[string]any
}

// NewConfiguration builds the server-level configuration from a raw tree.
//
// Ownership of conf transfers to the builder: the tree is transformed in
// place (path rewriting, template substitution), not copied. The caller
// must not reuse it for another build nor share it across goroutines for
// the duration of the call. On error the tree may already be partially
// transformed and earlier entities stay attached — resolution is fail-fast
// without rollback.
func NewConfiguration(conf RawConfig, opts BuildOptions) (*Configuration, error) {
	if fileAttrs := opts.fileAttributes(); opts.BasePath != "" && len(fileAttrs) > 0 {
		AddBasePath(conf, opts.BasePath, fileAttrs)
	}

	log := opts.Logger
	if logConf, ok := asMapping(conf["logging"]); ok {
		built, err := logger.FromConfig(map[string]any(logConf))
		if err != nil {
			return nil, fmt.Errorf("failed to configure logging: %w", err)
		}
		log = built
	}
	if log == nil {
		log = logger.Nop()
	}

	webserver, ok := asMapping(conf["webserver"])
	if !ok {
		webserver = RawConfig{}
	}

	domain, port := resolveDomainPort(conf, opts)
	if _, err := SetDomainAndPort(conf, DefaultURIAttributeNames, domain, port); err != nil {
		return nil, err
	}

	cfg := &Configuration{
		Logger:    log,
		WebServer: webserver,
		entities:  make(map[string]any),
	}
	if err := attachEntities(cfg, conf, opts, domain, port); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Entity returns the attached entity stored under name.
func (c *Configuration) Entity(name string) (any, bool) {
	entity, ok := c.entities[name]
	return entity, ok
}

// OP returns the entity stored under name as a provider configuration, or
// nil when it is absent or of another type.
func (c *Configuration) OP(name string) *OPConfiguration {
	op, _ := c.entities[name].(*OPConfiguration)
	return op
}

func (c *Configuration) setEntity(name string, entity any) {
	if _, seen := c.entities[name]; !seen {
		c.entityOrder = append(c.entityOrder, name)
	}
	c.entities[name] = entity
}

// entityAttributes exposes attached entities to [View] in attachment order.
func (c *Configuration) entityAttributes() []Attr {
	attrs := make([]Attr, 0, len(c.entityOrder))
	for _, name := range c.entityOrder {
		attrs = append(attrs, Attr{Name: name, Value: c.entities[name]})
	}
	return attrs
}
