// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Errors reported by the configuration resolution engine. All of them occur
// at startup time and are fatal to the process unless the caller recovers.
var (
	// ErrUnsupportedFormat indicates that the configuration file has an
	// extension the loader does not recognize (anything other than
	// .yaml, .yml or .json).
	ErrUnsupportedFormat = errors.New("unsupported configuration file format")

	// ErrTemplateSubstitution indicates that a URI-valued field references
	// a placeholder other than {domain} or {port}, or contains malformed
	// placeholder syntax.
	ErrTemplateSubstitution = errors.New("template substitution failed")

	// ErrMissingSection indicates that an intermediate key named in an
	// entity descriptor's path does not exist in the raw tree.
	ErrMissingSection = errors.New("missing configuration section")

	// ErrMalformedEntity indicates an entity descriptor without a target
	// attribute name or without a constructor.
	ErrMalformedEntity = errors.New("malformed entity descriptor")

	// ErrAttributeNotFound is returned by [View.Get] when the requested
	// attribute is not part of the configuration object.
	ErrAttributeNotFound = errors.New("attribute not found")

	// ErrNoConfigFile indicates that neither the environment nor the
	// command line supplied a configuration file path.
	ErrNoConfigFile = errors.New("no configuration file given")
)
