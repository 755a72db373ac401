package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newParamsBuilder ──────────────────────────────────────────────────────────

// TestNewParamsBuilder_InitialState verifies that a freshly created builder
// has no error and an empty params slice.
func TestNewParamsBuilder_InitialState(t *testing.T) {
	b := newParamsBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.params)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no sources fails
// validation: there is no configuration file to load.
func TestBuild_EmptyBuilder(t *testing.T) {
	_, err := newParamsBuilder().build()
	assert.ErrorIs(t, err, ErrNoConfigFile)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil params.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newParamsBuilder()
	b.err = assert.AnError

	params, err := b.build()
	assert.Nil(t, params)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleSources verifies that fields from multiple
// sources are merged into a single result.
func TestBuild_MergesMultipleSources(t *testing.T) {
	b := newParamsBuilder()
	b.params = append(b.params,
		&Params{ConfigFile: "/etc/idp/op.yaml"},
		&Params{Domain: "example.com", Port: 443},
	)

	params, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/etc/idp/op.yaml", params.ConfigFile)
	assert.Equal(t, "example.com", params.Domain)
	assert.Equal(t, 443, params.Port)
}

// TestBuild_EarlierSourceWins verifies the merge priority: a field already
// set by an earlier source is not overridden by a later one.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newParamsBuilder()
	b.params = append(b.params,
		&Params{ConfigFile: "/etc/idp/op.yaml", Port: 443},
		&Params{ConfigFile: "/tmp/other.yaml", Port: 8080},
	)

	params, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/etc/idp/op.yaml", params.ConfigFile)
	assert.Equal(t, 443, params.Port)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newParamsBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("OP_CONFIG", "/etc/idp/op.yaml")
	t.Setenv("OP_DOMAIN", "example.com")
	t.Setenv("OP_PORT", "8443")

	b := newParamsBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.params, 1)
	assert.Equal(t, "/etc/idp/op.yaml", b.params[0].ConfigFile)
	assert.Equal(t, "example.com", b.params[0].Domain)
	assert.Equal(t, 8443, b.params[0].Port)
}

// TestWithEnv_NoErrorOnEmptyEnv verifies that withEnv does not set b.err
// when no relevant env vars are present.
func TestWithEnv_NoErrorOnEmptyEnv(t *testing.T) {
	b := newParamsBuilder()
	b.withEnv()
	assert.NoError(t, b.err)
}

// ── parseFlagSet ──────────────────────────────────────────────────────────────

// TestParseFlagSet_AllFlags verifies that every flag maps to its Params
// field.
func TestParseFlagSet_AllFlags(t *testing.T) {
	params, err := parseFlagSet([]string{
		"-config", "/etc/idp/op.yaml",
		"-base-dir", "/etc/idp",
		"-domain", "example.com",
		"-port", "443",
	})

	require.NoError(t, err)
	assert.Equal(t, "/etc/idp/op.yaml", params.ConfigFile)
	assert.Equal(t, "/etc/idp", params.BaseDir)
	assert.Equal(t, "example.com", params.Domain)
	assert.Equal(t, 443, params.Port)
}

// TestParseFlagSet_ShortAlias verifies the -c alias for -config.
func TestParseFlagSet_ShortAlias(t *testing.T) {
	params, err := parseFlagSet([]string{"-c", "/etc/idp/op.yaml"})

	require.NoError(t, err)
	assert.Equal(t, "/etc/idp/op.yaml", params.ConfigFile)
}

// TestParseFlagSet_InvalidPort verifies that a non-numeric port is a parse
// error.
func TestParseFlagSet_InvalidPort(t *testing.T) {
	_, err := parseFlagSet([]string{"-port", "eighty"})
	assert.Error(t, err)
}

// ── validate ──────────────────────────────────────────────────────────────────

// TestParamsValidate verifies the validation rules of merged params.
func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{"valid", Params{ConfigFile: "/etc/idp/op.yaml", Port: 443}, false},
		{"no config file", Params{Port: 443}, true},
		{"port too large", Params{ConfigFile: "/etc/idp/op.yaml", Port: 70000}, true},
		{"zero port ok", Params{ConfigFile: "/etc/idp/op.yaml"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
