package cliconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `json_rpc_url: "http://localhost:8899"
websocket_url: "ws://localhost:8900"
keypair_path: /tmp/payer.json
commitment: finalized
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8899", cfg.JSONRPCURL)
	assert.Equal(t, "ws://localhost:8900", cfg.WebsocketURL)
	assert.Equal(t, "/tmp/payer.json", cfg.KeypairPath)
	assert.Equal(t, "finalized", cfg.Commitment)
}

func TestLoadFillsMissingFields(t *testing.T) {
	path := writeConfig(t, "keypair_path: /tmp/payer.json\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, MainnetRPCURL, cfg.JSONRPCURL)
	assert.Equal(t, "/tmp/payer.json", cfg.KeypairPath)
	assert.Equal(t, "confirmed", cfg.Commitment)
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "json_rpc_url: [broken\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestResolveExplicitMissingFileFails(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestResolveDefaultPathMissingFallsBack(t *testing.T) {
	// Point the home directory somewhere empty so the default config
	// path cannot exist.
	t.Setenv("HOME", t.TempDir())

	cfg, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, MainnetRPCURL, cfg.JSONRPCURL)
	assert.Equal(t, "confirmed", cfg.Commitment)
}

func TestResolveDefaultPathMalformedFails(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "solana", "cli")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("::bad::\n"), 0o600))

	_, err := Resolve("")
	require.Error(t, err)
}

func TestWithOverrides(t *testing.T) {
	cfg := Config{
		JSONRPCURL:  MainnetRPCURL,
		KeypairPath: "/tmp/from-file.json",
		Commitment:  "confirmed",
	}

	out := cfg.WithOverrides("http://localhost:8899", "")
	assert.Equal(t, "http://localhost:8899", out.JSONRPCURL)
	assert.Equal(t, "/tmp/from-file.json", out.KeypairPath)

	out = cfg.WithOverrides("", "/tmp/other.json")
	assert.Equal(t, MainnetRPCURL, out.JSONRPCURL)
	assert.Equal(t, "/tmp/other.json", out.KeypairPath)
}
