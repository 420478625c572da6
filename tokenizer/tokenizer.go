// Copyright 2025 The yield-tokenizer-cli Authors
// SPDX-License-Identifier: Apache-2.0

// Package tokenizer is the client-side binding for the on-chain yield
// tokenizer program. The program splits an underlying yield-bearing SPL
// asset, identified by its mint and an expiry timestamp, into a principal
// token and a yield token. This package derives the program's deterministic
// addresses and builds its instructions; it performs no network access.
package tokenizer

import (
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// ProgramID is the on-chain address of the yield tokenizer program.
var ProgramID = solana.MustPublicKeyFromBase58("8G6PN3Mxi5z9ad92HAw5BH9gg14oA9GHdwCsEDeMnR45")

// Seed literals the program uses for its program-derived addresses.
var (
	tokenizerSeed     = []byte("tokenizer")
	principalMintSeed = []byte("principal_mint")
	yieldMintSeed     = []byte("yield_mint")
)

// TokenizerAddress derives the address of the tokenizer state account for
// the given underlying mint and expiry. The derivation is deterministic:
// the same (program, mint, expiry) triple always yields the same address.
func TokenizerAddress(programID, underlyingMint solana.PublicKey, expiry int64) (solana.PublicKey, error) {
	var exp [8]byte
	binary.LittleEndian.PutUint64(exp[:], uint64(expiry))

	addr, _, err := solana.FindProgramAddress(
		[][]byte{tokenizerSeed, underlyingMint.Bytes(), exp[:]},
		programID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("derive tokenizer address: %w", err)
	}
	return addr, nil
}

// PrincipalMintAddress derives the mint address of the principal token
// issued by the given tokenizer instance.
func PrincipalMintAddress(programID, tokenizerAddress solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{principalMintSeed, tokenizerAddress.Bytes()},
		programID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("derive principal mint address: %w", err)
	}
	return addr, nil
}

// YieldMintAddress derives the mint address of the yield token issued by
// the given tokenizer instance.
func YieldMintAddress(programID, tokenizerAddress solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{yieldMintSeed, tokenizerAddress.Bytes()},
		programID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("derive yield mint address: %w", err)
	}
	return addr, nil
}
