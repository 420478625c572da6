// Copyright 2025 The yield-tokenizer-cli Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/serfrae/yield-tokenizer-cli/internal/router"
)

var burnCmd = &cobra.Command{
	Use:   "burn",
	Short: "Burn token legs without redemption",
}

var burnPrincipalCmd = &cobra.Command{
	Use:   "principal <tokenizer-address> <amount> [underlying-mint]",
	Short: "Burn principal tokens",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := parseInstrArgs(args)
		if err != nil {
			return err
		}
		return runAction(cmd, router.BurnPrincipal{InstrArgs: parsed})
	},
}

var burnYieldCmd = &cobra.Command{
	Use:   "yield <tokenizer-address> <amount> [underlying-mint]",
	Short: "Burn yield tokens",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := parseInstrArgs(args)
		if err != nil {
			return err
		}
		return runAction(cmd, router.BurnYield{InstrArgs: parsed})
	},
}

func init() {
	burnCmd.AddCommand(burnPrincipalCmd)
	burnCmd.AddCommand(burnYieldCmd)
}
