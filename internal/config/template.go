// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// SetDomainAndPort substitutes, in place, the {domain} and {port}
// placeholders of every value stored under one of the uriKeys key names.
// The tree itself is returned for chaining.
//
// A sequence value is replaced by a new sequence in which every element is
// formatted independently with the same domain and port. Nested mappings
// under non-matching keys are traversed unconditionally so that deeper URI
// fields are reached. Substitution is idempotent: a string without remaining
// placeholders passes through unchanged.
//
// A placeholder naming anything other than domain or port, malformed
// placeholder syntax, and non-string values under a URI key are caller
// errors reported as [ErrTemplateSubstitution].
func SetDomainAndPort(conf RawConfig, uriKeys []string, domain string, port int) (RawConfig, error) {
	for key, val := range conf {
		if slices.Contains(uriKeys, key) {
			switch v := val.(type) {
			case string:
				formatted, err := formatTemplate(v, domain, port)
				if err != nil {
					return nil, fmt.Errorf("key %q: %w", key, err)
				}
				conf[key] = formatted
			case []any:
				formatted := make([]any, len(v))
				for i, elem := range v {
					s, ok := elem.(string)
					if !ok {
						return nil, fmt.Errorf("key %q: %w: sequence element %d is %T, not a string", key, ErrTemplateSubstitution, i, elem)
					}
					fs, err := formatTemplate(s, domain, port)
					if err != nil {
						return nil, fmt.Errorf("key %q: %w", key, err)
					}
					formatted[i] = fs
				}
				conf[key] = formatted
			default:
				return nil, fmt.Errorf("key %q: %w: cannot format value of type %T", key, ErrTemplateSubstitution, val)
			}
		} else if nested, ok := asMapping(val); ok {
			if _, err := SetDomainAndPort(nested, uriKeys, domain, port); err != nil {
				return nil, err
			}
		}
	}
	return conf, nil
}

// formatTemplate expands {domain} and {port} in s. Doubled braces escape a
// literal brace. Any other placeholder name, an unterminated placeholder, or
// a stray closing brace yields ErrTemplateSubstitution.
func formatTemplate(s, domain string, port int) (string, error) {
	if !strings.ContainsAny(s, "{}") {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		switch s[i] {
		case '{':
			if i+1 < len(s) && s[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(s[i:], '}')
			if end < 0 {
				return "", fmt.Errorf("%w: unterminated placeholder in %q", ErrTemplateSubstitution, s)
			}
			switch name := s[i+1 : i+end]; name {
			case "domain":
				b.WriteString(domain)
			case "port":
				b.WriteString(strconv.Itoa(port))
			default:
				return "", fmt.Errorf("%w: unknown field %q in %q", ErrTemplateSubstitution, name, s)
			}
			i += end + 1
		case '}':
			if i+1 < len(s) && s[i+1] == '}' {
				b.WriteByte('}')
				i += 2
				continue
			}
			return "", fmt.Errorf("%w: stray '}' in %q", ErrTemplateSubstitution, s)
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String(), nil
}
