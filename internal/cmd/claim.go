// Copyright 2025 The yield-tokenizer-cli Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/serfrae/yield-tokenizer-cli/internal/router"
)

var claimCmd = &cobra.Command{
	Use:   "claim",
	Short: "Claim accrued yield",
}

var claimYieldCmd = &cobra.Command{
	Use:   "yield <tokenizer-address> <amount> [underlying-mint]",
	Short: "Burn yield tokens and withdraw the accrued yield",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := parseInstrArgs(args)
		if err != nil {
			return err
		}
		return runAction(cmd, router.ClaimYield{InstrArgs: parsed})
	},
}

func init() {
	claimCmd.AddCommand(claimYieldCmd)
}
