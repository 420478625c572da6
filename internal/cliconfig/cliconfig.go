// Copyright 2025 The yield-tokenizer-cli Authors
// SPDX-License-Identifier: Apache-2.0

// Package cliconfig reads the standard solana CLI configuration file and
// resolves it against built-in defaults and command-line overrides.
package cliconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// MainnetRPCURL is the public mainnet-beta JSON-RPC endpoint, the default
// when no configuration file names one.
const MainnetRPCURL = "https://api.mainnet-beta.solana.com"

// Config holds the solana CLI settings this client consumes. The field
// names mirror the keys of ~/.config/solana/cli/config.yml.
type Config struct {
	JSONRPCURL   string `yaml:"json_rpc_url"`
	WebsocketURL string `yaml:"websocket_url"`
	KeypairPath  string `yaml:"keypair_path"`
	Commitment   string `yaml:"commitment"`
}

// Default returns the configuration used when no file is present: the
// mainnet-beta endpoint, the standard keypair location and confirmed
// commitment.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return Config{
		JSONRPCURL:  MainnetRPCURL,
		KeypairPath: filepath.Join(home, ".config", "solana", "id.json"),
		Commitment:  "confirmed",
	}
}

// DefaultPath returns the standard location of the solana CLI
// configuration file.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".config", "solana", "cli", "config.yml"), nil
}

// Load reads and decodes the configuration file at path. Fields the file
// leaves empty are filled from Default.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg.withDefaults(), nil
}

// Resolve returns the effective configuration for one invocation. An empty
// path means the default location, where a missing file silently falls
// back to Default; a path the caller named explicitly must exist. A
// malformed file is an error either way.
func Resolve(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		defaultPath, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = defaultPath
	}

	cfg, err := Load(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}
	return cfg, nil
}

// WithOverrides returns a copy of c with any non-empty flag values
// applied. Flags win over file values.
func (c Config) WithOverrides(rpcURL, keypairPath string) Config {
	if rpcURL != "" {
		c.JSONRPCURL = rpcURL
	}
	if keypairPath != "" {
		c.KeypairPath = keypairPath
	}
	return c
}

func (c Config) withDefaults() Config {
	d := Default()
	if c.JSONRPCURL == "" {
		c.JSONRPCURL = d.JSONRPCURL
	}
	if c.KeypairPath == "" {
		c.KeypairPath = d.KeypairPath
	}
	if c.Commitment == "" {
		c.Commitment = d.Commitment
	}
	return c
}
