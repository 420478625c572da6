// Copyright 2025 The yield-tokenizer-cli Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/serfrae/yield-tokenizer-cli/internal/router"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a tokenizer instance for an underlying mint and expiry",
	Long: `Initialize the on-chain accounts of a tokenizer instance.

A tokenizer instance is identified by its underlying mint and expiry; all
of its addresses derive from that pair. The expiry is a unix timestamp in
seconds.

Example:
  yield-tokenizer-cli init tokenizer-mints So11111111111111111111111111111111111111112 1767225600`,
}

var initTokenizerCmd = &cobra.Command{
	Use:   "tokenizer <underlying-mint> <expiry>",
	Short: "Create the tokenizer state account and its underlying vault",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := parseInitArgs(args)
		if err != nil {
			return err
		}
		return runAction(cmd, router.InitializeTokenizer{InitArgs: parsed})
	},
}

var initMintsCmd = &cobra.Command{
	Use:   "mints <underlying-mint> <expiry>",
	Short: "Create the principal and yield mints of an initialized tokenizer",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := parseInitArgs(args)
		if err != nil {
			return err
		}
		return runAction(cmd, router.InitializeMints{InitArgs: parsed})
	},
}

var initTokenizerMintsCmd = &cobra.Command{
	Use:   "tokenizer-mints <underlying-mint> <expiry>",
	Short: "Create the tokenizer, its vault and both mints in one transaction",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := parseInitArgs(args)
		if err != nil {
			return err
		}
		return runAction(cmd, router.InitializeTokenizerAndMints{InitArgs: parsed})
	},
}

func init() {
	initCmd.AddCommand(initTokenizerCmd)
	initCmd.AddCommand(initMintsCmd)
	initCmd.AddCommand(initTokenizerMintsCmd)
}
