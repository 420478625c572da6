// Copyright 2025 The yield-tokenizer-cli Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"strconv"

	"github.com/gagliardetto/solana-go"

	"github.com/serfrae/yield-tokenizer-cli/internal/router"
)

// parseInitArgs parses the <underlying-mint> <expiry> positional pair the
// initialization commands share.
func parseInitArgs(args []string) (router.InitArgs, error) {
	mint, err := solana.PublicKeyFromBase58(args[0])
	if err != nil {
		return router.InitArgs{}, fmt.Errorf("invalid underlying mint address %q: %w", args[0], err)
	}
	expiry, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return router.InitArgs{}, fmt.Errorf("invalid expiry %q: %w", args[1], err)
	}
	return router.InitArgs{UnderlyingMint: mint, Expiry: expiry}, nil
}

// parseInstrArgs parses <tokenizer-address> <amount> [underlying-mint],
// the positional shape every instruction command shares. The trailing
// mint stays nil when omitted; arms that need it reject the omission.
func parseInstrArgs(args []string) (router.InstrArgs, error) {
	tokenizerAddress, err := solana.PublicKeyFromBase58(args[0])
	if err != nil {
		return router.InstrArgs{}, fmt.Errorf("invalid tokenizer address %q: %w", args[0], err)
	}
	amount, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return router.InstrArgs{}, fmt.Errorf("invalid amount %q: %w", args[1], err)
	}

	parsed := router.InstrArgs{Tokenizer: tokenizerAddress, Amount: amount}
	if len(args) == 3 {
		mint, err := solana.PublicKeyFromBase58(args[2])
		if err != nil {
			return router.InstrArgs{}, fmt.Errorf("invalid underlying mint address %q: %w", args[2], err)
		}
		parsed.UnderlyingMint = &mint
	}
	return parsed, nil
}
