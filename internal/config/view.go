// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"iter"
	"reflect"
)

// Attr is one (name, value) attribute pair of a configuration object.
type Attr struct {
	Name  string
	Value any
}

// entityProvider is implemented by configuration objects that carry
// dynamically attached attributes in addition to their declared schema.
type entityProvider interface {
	entityAttributes() []Attr
}

// View is a read-only, mapping-like adapter over a configuration object's
// attributes, for interoperability with code that expects dict semantics.
// Declared schema fields appear in declaration order under their `attr` tag
// names; fields without a tag are reserved internal state and are excluded.
// Entities attached at build time follow the declared fields. A View never
// writes through to the underlying object.
type View struct {
	attrs []Attr
	index map[string]int
}

// NewView builds a view over obj, which must be a struct or a pointer to
// one (typically *OPConfiguration or *Configuration).
func NewView(obj any) *View {
	rv := reflect.ValueOf(obj)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		panic(fmt.Sprintf("config: NewView over %T, want a configuration object", obj))
	}

	v := &View{index: make(map[string]int)}
	rt := rv.Type()
	for i := range rt.NumField() {
		field := rt.Field(i)
		name := field.Tag.Get("attr")
		if name == "" || !field.IsExported() {
			continue
		}
		v.add(name, rv.Field(i).Interface())
	}
	if provider, ok := obj.(entityProvider); ok {
		for _, attr := range provider.entityAttributes() {
			v.add(attr.Name, attr.Value)
		}
	}
	return v
}

func (v *View) add(name string, value any) {
	if _, dup := v.index[name]; dup {
		return
	}
	v.index[name] = len(v.attrs)
	v.attrs = append(v.attrs, Attr{Name: name, Value: value})
}

// Has reports whether the object declares an attribute under name.
func (v *View) Has(name string) bool {
	_, ok := v.index[name]
	return ok
}

// Get returns the attribute stored under name, or [ErrAttributeNotFound].
func (v *View) Get(name string) (any, error) {
	i, ok := v.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrAttributeNotFound, name)
	}
	return v.attrs[i].Value, nil
}

// GetDefault returns the attribute stored under name, or fallback when the
// object does not declare it.
func (v *View) GetDefault(name string, fallback any) any {
	if i, ok := v.index[name]; ok {
		return v.attrs[i].Value
	}
	return fallback
}

// Len returns the number of visible attributes.
func (v *View) Len() int {
	return len(v.attrs)
}

// All iterates over (name, value) pairs: declared attributes in declaration
// order, then attached entities in attachment order.
func (v *View) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, attr := range v.attrs {
			if !yield(attr.Name, attr.Value) {
				return
			}
		}
	}
}
