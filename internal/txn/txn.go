// Copyright 2025 The yield-tokenizer-cli Authors
// SPDX-License-Identifier: Apache-2.0

// Package txn assembles and signs the single-instruction transactions this
// client produces.
package txn

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Assemble wraps one instruction in a transaction paid for by payer, with
// blockhash as the freshness token.
func Assemble(instr solana.Instruction, payer solana.PublicKey, blockhash solana.Hash) (*solana.Transaction, error) {
	tx, err := solana.NewTransaction(
		[]solana.Instruction{instr},
		blockhash,
		solana.TransactionPayer(payer),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble transaction: %w", err)
	}
	return tx, nil
}

// Sign signs tx with the wallet key, which must cover every required
// signer; for this client that is always just the fee payer.
func Sign(tx *solana.Transaction, key solana.PrivateKey) error {
	_, err := tx.Sign(func(pub solana.PublicKey) *solana.PrivateKey {
		if pub.Equals(key.PublicKey()) {
			return &key
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to sign transaction: %w", err)
	}
	return nil
}
