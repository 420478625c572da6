// Copyright 2025 The yield-tokenizer-cli Authors
// SPDX-License-Identifier: Apache-2.0

// Package wallet loads the invoking wallet's keypair from a solana-keygen
// JSON file.
package wallet

import (
	"bytes"
	"crypto/ed25519"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// ErrMismatchedKeypair indicates the public half stored in the keypair
// file does not match the public key derived from its seed.
var ErrMismatchedKeypair = errors.New("keypair file mismatch: stored public key does not match its seed")

// Load reads the solana-keygen JSON keypair file at path. Beyond decoding,
// it re-derives the public key from the seed and rejects files whose
// stored public half disagrees.
func Load(path string) (solana.PrivateKey, error) {
	key, err := solana.PrivateKeyFromSolanaKeygenFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read keypair file: %w", err)
	}
	if len(key) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("unable to read keypair file: expected %d bytes, got %d", ed25519.PrivateKeySize, len(key))
	}

	derived := ed25519.NewKeyFromSeed(key[:ed25519.SeedSize])
	if !bytes.Equal(derived[ed25519.SeedSize:], []byte(key[ed25519.SeedSize:])) {
		return nil, ErrMismatchedKeypair
	}
	return key, nil
}
