// Copyright 2025 The yield-tokenizer-cli Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	goversion "github.com/hashicorp/go-version"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// minNodeVersion is the oldest solana-core release that serves the
// getLatestBlockhash RPC this tool depends on.
var minNodeVersion = goversion.MustConstraints(goversion.NewConstraint(">= 1.9.0"))

var nodeCheck bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of yield-tokenizer-cli",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "yield-tokenizer-cli version %s\n", version)
		if !nodeCheck {
			return nil
		}
		return checkNodeVersion(cmd)
	},
}

func init() {
	versionCmd.Flags().BoolVar(&nodeCheck, "node", false, "also check the configured RPC node's version compatibility")
}

func checkNodeVersion(cmd *cobra.Command) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	client, err := newRPCClient(cfg.JSONRPCURL, cfg.Commitment)
	if err != nil {
		return err
	}
	raw, err := client.NodeVersion(cmd.Context())
	if err != nil {
		return err
	}

	v, err := goversion.NewVersion(raw)
	if err != nil {
		return fmt.Errorf("failed to parse node version %q: %w", raw, err)
	}
	if !minNodeVersion.Check(v) {
		return fmt.Errorf("node version %s does not serve getLatestBlockhash (requires %s)", raw, minNodeVersion)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "node %s version %s (compatible)\n", cfg.JSONRPCURL, raw)
	return nil
}
