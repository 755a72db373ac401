// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"
	"reflect"
)

// OPConfiguration is the fully resolved provider-level configuration. Its
// attribute schema is fixed: every field maps to one top-level key of the
// raw tree (the `attr` tag), and a missing or empty key is filled from the
// build's default table. Mapping-valued fields hold free-form subtrees —
// typically {"class"/"function": ..., "kwargs": ...} descriptors consumed
// verbatim by the component factory.
//
// An OPConfiguration is built once at startup and must be treated as
// read-only afterwards.
type OPConfiguration struct {
	AddOn            RawConfig `attr:"add_on"`
	Authz            RawConfig `attr:"authz"`
	Authentication   RawConfig `attr:"authentication"`
	BaseURL          string    `attr:"base_url"`
	Capabilities     RawConfig `attr:"capabilities"`
	CookieHandler    RawConfig `attr:"cookie_handler"`
	Endpoint         RawConfig `attr:"endpoint"`
	HTTPCParams      RawConfig `attr:"httpc_params"`
	IDToken          RawConfig `attr:"id_token"`
	Issuer           string    `attr:"issuer"`
	Keys             RawConfig `attr:"keys"`
	LoginHint2ACRs   RawConfig `attr:"login_hint2acrs"`
	LoginHintLookup  any       `attr:"login_hint_lookup"`
	SessionKey       RawConfig `attr:"session_key"`
	SubFunc          RawConfig `attr:"sub_func"`
	TemplateDir      string    `attr:"template_dir"`
	TokenHandlerArgs RawConfig `attr:"token_handler_args"`
	Userinfo         RawConfig `attr:"userinfo"`
}

// NewOPConfiguration builds a provider-level configuration from a raw tree.
//
// The builder deep-copies the tree first, so the caller's mapping is never
// aliased or mutated and may be reused for further builds. It then rewrites
// file paths against opts.BasePath, resolves domain/port (options, then
// tree, then loopback), substitutes URI templates, merges the default table
// into missing attributes, and finally absolutizes the template directory
// (falling back to a "templates" directory under the working directory).
//
// opts.Entities is accepted for signature symmetry with [NewConfiguration]
// but is not consumed by the provider-level builder.
func NewOPConfiguration(conf RawConfig, opts BuildOptions) (*OPConfiguration, error) {
	conf = conf.DeepCopy()

	if fileAttrs := opts.fileAttributes(); opts.BasePath != "" && len(fileAttrs) > 0 {
		AddBasePath(conf, opts.BasePath, fileAttrs)
	}

	domain, port := resolveDomainPort(conf, opts)
	if _, err := SetDomainAndPort(conf, DefaultURIAttributeNames, domain, port); err != nil {
		return nil, err
	}

	cfg := &OPConfiguration{
		Endpoint:         RawConfig{},
		HTTPCParams:      RawConfig{},
		LoginHint2ACRs:   RawConfig{},
		SubFunc:          RawConfig{},
		TokenHandlerArgs: RawConfig{},
	}
	if err := cfg.merge(conf, opts.defaults()); err != nil {
		return nil, err
	}

	templateDir := cfg.TemplateDir
	if templateDir == "" {
		templateDir = "templates"
	}
	absDir, err := filepath.Abs(templateDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve template directory %q: %w", templateDir, err)
	}
	cfg.TemplateDir = absDir

	return cfg, nil
}

// merge assigns every schema attribute from the tree, falling back to the
// default table when the tree's value is missing or empty. Defaults are
// deep-copied so the shared tables are never aliased into a build. An
// attribute that is empty in the tree and absent from the table keeps its
// pre-initialized placeholder.
func (c *OPConfiguration) merge(conf, defaults RawConfig) error {
	rv := reflect.ValueOf(c).Elem()
	rt := rv.Type()
	for i := range rt.NumField() {
		name := rt.Field(i).Tag.Get("attr")
		if name == "" {
			continue
		}
		val := conf[name]
		if isEmptyValue(val) {
			def, ok := defaults[name]
			if !ok {
				continue
			}
			val = deepCopyValue(def)
		}
		if err := setAttribute(rv.Field(i), name, val); err != nil {
			return err
		}
	}
	return nil
}

// setAttribute stores a tree value into a schema field, coercing the
// decoder's map representation where needed.
func setAttribute(field reflect.Value, name string, val any) error {
	switch field.Kind() {
	case reflect.String:
		s, ok := val.(string)
		if !ok {
			return fmt.Errorf("attribute %q: expected string, got %T", name, val)
		}
		field.SetString(s)
	case reflect.Map:
		m, ok := asMapping(val)
		if !ok {
			return fmt.Errorf("attribute %q: expected mapping, got %T", name, val)
		}
		field.Set(reflect.ValueOf(m))
	case reflect.Interface:
		field.Set(reflect.ValueOf(val))
	default:
		return fmt.Errorf("attribute %q: unsupported schema field kind %s", name, field.Kind())
	}
	return nil
}
