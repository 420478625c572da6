// Copyright 2025 The yield-tokenizer-cli Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/serfrae/yield-tokenizer-cli/internal/router"
)

var redeemCmd = &cobra.Command{
	Use:   "redeem",
	Short: "Redeem token legs for the underlying asset after expiry",
}

var redeemPrincipalCmd = &cobra.Command{
	Use:   "principal <tokenizer-address> <amount> [underlying-mint]",
	Short: "Burn principal tokens and withdraw the matching underlying",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := parseInstrArgs(args)
		if err != nil {
			return err
		}
		return runAction(cmd, router.RedeemPrincipal{InstrArgs: parsed})
	},
}

var redeemPrincipalYieldCmd = &cobra.Command{
	Use:   "principal-yield <tokenizer-address> <amount> [underlying-mint]",
	Short: "Burn both token legs and withdraw underlying plus accrued yield",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := parseInstrArgs(args)
		if err != nil {
			return err
		}
		return runAction(cmd, router.RedeemPrincipalAndYield{InstrArgs: parsed})
	},
}

func init() {
	redeemCmd.AddCommand(redeemPrincipalCmd)
	redeemCmd.AddCommand(redeemPrincipalYieldCmd)
}
