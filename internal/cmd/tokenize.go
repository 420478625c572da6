// Copyright 2025 The yield-tokenizer-cli Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/serfrae/yield-tokenizer-cli/internal/router"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize",
	Short: "Deposit underlying tokens and mint principal or yield tokens",
	Long: `Deposit underlying tokens into a tokenizer's vault and mint token legs
against the deposited balance.

The deposit and principal-yield subcommands move underlying tokens and
need the underlying mint as their third argument.

Example:
  yield-tokenizer-cli tokenize principal-yield <tokenizer-address> 1000 <underlying-mint>`,
}

var tokenizeDepositCmd = &cobra.Command{
	Use:   "deposit <tokenizer-address> <amount> [underlying-mint]",
	Short: "Deposit underlying tokens into the vault",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := parseInstrArgs(args)
		if err != nil {
			return err
		}
		return runAction(cmd, router.Deposit{InstrArgs: parsed})
	},
}

var tokenizePrincipalCmd = &cobra.Command{
	Use:   "principal <tokenizer-address> <amount> [underlying-mint]",
	Short: "Mint principal tokens against a deposited balance",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := parseInstrArgs(args)
		if err != nil {
			return err
		}
		return runAction(cmd, router.TokenizePrincipal{InstrArgs: parsed})
	},
}

var tokenizeYieldCmd = &cobra.Command{
	Use:   "yield <tokenizer-address> <amount> [underlying-mint]",
	Short: "Mint yield tokens against a deposited balance",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := parseInstrArgs(args)
		if err != nil {
			return err
		}
		return runAction(cmd, router.TokenizeYield{InstrArgs: parsed})
	},
}

var tokenizePrincipalYieldCmd = &cobra.Command{
	Use:   "principal-yield <tokenizer-address> <amount> [underlying-mint]",
	Short: "Deposit underlying tokens and mint both token legs in one transaction",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := parseInstrArgs(args)
		if err != nil {
			return err
		}
		return runAction(cmd, router.DepositAndTokenize{InstrArgs: parsed})
	},
}

func init() {
	tokenizeCmd.AddCommand(tokenizeDepositCmd)
	tokenizeCmd.AddCommand(tokenizePrincipalCmd)
	tokenizeCmd.AddCommand(tokenizeYieldCmd)
	tokenizeCmd.AddCommand(tokenizePrincipalYieldCmd)
}
