// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type paramsBuilder struct {
	params []*Params
	err    error
}

func newParamsBuilder() *paramsBuilder {
	return &paramsBuilder{
		params: make([]*Params, 0, 2),
	}
}

func (b *paramsBuilder) build() (*Params, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building params: %w", b.err)
	}

	merged := new(Params)
	for _, p := range b.params {
		if err := mergo.Merge(merged, p); err != nil {
			return nil, fmt.Errorf("error merging params: %w", err)
		}
	}

	return merged, merged.validate()
}

func (b *paramsBuilder) withEnv() *paramsBuilder {
	envParams := &Params{}
	if err := parseEnv(envParams); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.params = append(b.params, envParams)
	return b
}

func (b *paramsBuilder) withFlags() *paramsBuilder {
	flagParams, err := parseFlags()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.params = append(b.params, flagParams)
	return b
}
