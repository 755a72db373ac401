package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const yamlDoc = `
domain: op.example.org
port: 8443
issuer: "https://{domain}:{port}"
session_key:
  filename: private/session_jwk.json
  type: OCT
  use: sig
webserver:
  port: 8443
  server_cert: certs/tls.crt
  server_key: certs/tls.key
`

const jsonDoc = `{
  "domain": "op.example.org",
  "port": 8443,
  "issuer": "https://{domain}:{port}",
  "httpc_params": {"verify": true}
}`

// ── LoadRawConfig ─────────────────────────────────────────────────────────────

// TestLoadRawConfig_YAML verifies that a .yaml file is parsed into a raw
// nested mapping.
func TestLoadRawConfig_YAML(t *testing.T) {
	path := writeTempConfig(t, "op.yaml", yamlDoc)

	conf, err := LoadRawConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "op.example.org", conf["domain"])
	assert.Equal(t, 8443, conf.intOr("port", 0))

	sessionKey, ok := asMapping(conf["session_key"])
	require.True(t, ok)
	assert.Equal(t, "private/session_jwk.json", sessionKey["filename"])
}

// TestLoadRawConfig_YMLExtension verifies that the .yml spelling selects
// the YAML parser as well.
func TestLoadRawConfig_YMLExtension(t *testing.T) {
	path := writeTempConfig(t, "op.yml", "domain: op.example.org\n")

	conf, err := LoadRawConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "op.example.org", conf["domain"])
}

// TestLoadRawConfig_JSON verifies that a .json file is parsed into a raw
// nested mapping.
func TestLoadRawConfig_JSON(t *testing.T) {
	path := writeTempConfig(t, "op.json", jsonDoc)

	conf, err := LoadRawConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "op.example.org", conf["domain"])
	assert.Equal(t, 8443, conf.intOr("port", 0))

	httpcParams, ok := asMapping(conf["httpc_params"])
	require.True(t, ok)
	assert.Equal(t, true, httpcParams["verify"])
}

// TestLoadRawConfig_UnsupportedExtension verifies that an unknown extension
// fails with ErrUnsupportedFormat before the file is read.
func TestLoadRawConfig_UnsupportedExtension(t *testing.T) {
	_, err := LoadRawConfig("/nonexistent/op.toml")

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

// TestLoadRawConfig_MissingFile verifies the error for a supported
// extension pointing at a file that does not exist.
func TestLoadRawConfig_MissingFile(t *testing.T) {
	_, err := LoadRawConfig("/nonexistent/op.yaml")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedFormat)
}

// TestLoadRawConfig_MalformedYAML verifies that invalid YAML content is
// reported as a parse error.
func TestLoadRawConfig_MalformedYAML(t *testing.T) {
	path := writeTempConfig(t, "bad.yaml", "issuer: [unclosed\n")

	_, err := LoadRawConfig(path)

	assert.Error(t, err)
}

// TestLoadRawConfig_MalformedJSON verifies that invalid JSON content is
// reported as a parse error.
func TestLoadRawConfig_MalformedJSON(t *testing.T) {
	path := writeTempConfig(t, "bad.json", "{not valid json")

	_, err := LoadRawConfig(path)

	assert.Error(t, err)
}

// TestLoadRawConfig_NotAMapping verifies that a document whose root is not
// a mapping is rejected.
func TestLoadRawConfig_NotAMapping(t *testing.T) {
	path := writeTempConfig(t, "scalar.json", `"just a string"`)

	_, err := LoadRawConfig(path)

	assert.Error(t, err)
}

// TestLoadRawConfig_EmptyFile verifies that an empty document is rejected.
func TestLoadRawConfig_EmptyFile(t *testing.T) {
	path := writeTempConfig(t, "empty.yaml", "")

	_, err := LoadRawConfig(path)

	assert.Error(t, err)
}

// ── LoadOPConfiguration / LoadConfiguration ───────────────────────────────────

// TestLoadOPConfiguration_EndToEnd verifies file loading straight into a
// built provider configuration.
func TestLoadOPConfiguration_EndToEnd(t *testing.T) {
	path := writeTempConfig(t, "op.yaml", yamlDoc)

	cfg, err := LoadOPConfiguration(path, BuildOptions{BasePath: "/srv/op"})

	require.NoError(t, err)
	assert.Equal(t, "https://op.example.org:8443", cfg.Issuer)
	assert.Equal(t, "/srv/op/private/session_jwk.json", cfg.SessionKey["filename"])
}

// TestLoadConfiguration_EndToEnd verifies file loading straight into a
// built server configuration.
func TestLoadConfiguration_EndToEnd(t *testing.T) {
	path := writeTempConfig(t, "srv.yaml", yamlDoc)

	cfg, err := LoadConfiguration(path, BuildOptions{BasePath: "/srv/op"})

	require.NoError(t, err)
	require.NotNil(t, cfg.Logger)
	assert.Equal(t, "/srv/op/certs/tls.crt", cfg.WebServer["server_cert"])
	assert.Equal(t, "/srv/op/certs/tls.key", cfg.WebServer["server_key"])
}

// TestLoadConfiguration_UnsupportedExtension verifies that the loader's
// format check propagates through the convenience entry point.
func TestLoadConfiguration_UnsupportedExtension(t *testing.T) {
	_, err := LoadConfiguration("/etc/idp/op.ini", BuildOptions{})

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
