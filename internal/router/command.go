// Copyright 2025 The yield-tokenizer-cli Authors
// SPDX-License-Identifier: Apache-2.0

package router

import (
	"errors"

	"github.com/gagliardetto/solana-go"
)

// ErrUnderlyingMintRequired indicates an action that needs the underlying
// mint address was invoked without one.
var ErrUnderlyingMintRequired = errors.New("underlying mint address is required")

// Command is one parsed leaf action, carrying exactly the fields its
// dispatch arm consumes. The interface is sealed; the action types in
// this package are its only implementations.
type Command interface {
	// Name is the action name used in error context and telemetry.
	Name() string

	isCommand()
}

// InitArgs are the fields shared by the three initialization actions. The
// tokenizer instance they address does not exist yet, so it is identified
// by the pair that determines it.
type InitArgs struct {
	UnderlyingMint solana.PublicKey
	Expiry         int64
}

// InstrArgs are the fields shared by the nine instruction actions. A nil
// UnderlyingMint means the argument was omitted on the command line; the
// arms that need it reject the omission before deriving anything.
type InstrArgs struct {
	Tokenizer      solana.PublicKey
	Amount         uint64
	UnderlyingMint *solana.PublicKey
}

func (a InstrArgs) requireUnderlyingMint() (solana.PublicKey, error) {
	if a.UnderlyingMint == nil {
		return solana.PublicKey{}, ErrUnderlyingMintRequired
	}
	return *a.UnderlyingMint, nil
}

type (
	// InitializeTokenizer creates the tokenizer state account and its vault.
	InitializeTokenizer struct{ InitArgs }
	// InitializeMints creates the principal and yield mints.
	InitializeMints struct{ InitArgs }
	// InitializeTokenizerAndMints combines the two initialization steps.
	InitializeTokenizerAndMints struct{ InitArgs }
	// Deposit moves underlying tokens into the vault.
	Deposit struct{ InstrArgs }
	// TokenizePrincipal mints principal tokens against a deposit.
	TokenizePrincipal struct{ InstrArgs }
	// TokenizeYield mints yield tokens against a deposit.
	TokenizeYield struct{ InstrArgs }
	// DepositAndTokenize deposits and mints both token legs in one call.
	DepositAndTokenize struct{ InstrArgs }
	// RedeemPrincipal burns principal tokens for underlying after expiry.
	RedeemPrincipal struct{ InstrArgs }
	// RedeemPrincipalAndYield burns both legs for underlying plus yield.
	RedeemPrincipalAndYield struct{ InstrArgs }
	// ClaimYield burns yield tokens for the accrued yield.
	ClaimYield struct{ InstrArgs }
	// BurnPrincipal burns principal tokens without redemption.
	BurnPrincipal struct{ InstrArgs }
	// BurnYield burns yield tokens without redemption.
	BurnYield struct{ InstrArgs }
)

func (InitializeTokenizer) Name() string         { return "InitializeTokenizer" }
func (InitializeMints) Name() string             { return "InitializeMints" }
func (InitializeTokenizerAndMints) Name() string { return "InitializeTokenizerAndMints" }
func (Deposit) Name() string                     { return "Deposit" }
func (TokenizePrincipal) Name() string           { return "TokenizePrincipal" }
func (TokenizeYield) Name() string               { return "TokenizeYield" }
func (DepositAndTokenize) Name() string          { return "DepositAndTokenize" }
func (RedeemPrincipal) Name() string             { return "RedeemPrincipalOnly" }
func (RedeemPrincipalAndYield) Name() string     { return "RedeemPrincipalAndYield" }
func (ClaimYield) Name() string                  { return "ClaimYield" }
func (BurnPrincipal) Name() string               { return "BurnPrincipal" }
func (BurnYield) Name() string                   { return "BurnYield" }

func (InitializeTokenizer) isCommand()         {}
func (InitializeMints) isCommand()             {}
func (InitializeTokenizerAndMints) isCommand() {}
func (Deposit) isCommand()                     {}
func (TokenizePrincipal) isCommand()           {}
func (TokenizeYield) isCommand()               {}
func (DepositAndTokenize) isCommand()          {}
func (RedeemPrincipal) isCommand()             {}
func (RedeemPrincipalAndYield) isCommand()     {}
func (ClaimYield) isCommand()                  {}
func (BurnPrincipal) isCommand()               {}
func (BurnYield) isCommand()                   {}
