// Copyright 2025 The yield-tokenizer-cli Authors
// SPDX-License-Identifier: Apache-2.0

package router

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/serfrae/yield-tokenizer-cli/tokenizer"
)

// programDeriver adapts the tokenizer package derivations to the Deriver
// interface, binding the program id once.
type programDeriver struct {
	programID solana.PublicKey
}

func defaultDeriver() programDeriver {
	return programDeriver{programID: tokenizer.ProgramID}
}

func (d programDeriver) TokenizerAddress(underlyingMint solana.PublicKey, expiry int64) (solana.PublicKey, error) {
	return tokenizer.TokenizerAddress(d.programID, underlyingMint, expiry)
}

func (d programDeriver) PrincipalMintAddress(tokenizerAddress solana.PublicKey) (solana.PublicKey, error) {
	return tokenizer.PrincipalMintAddress(d.programID, tokenizerAddress)
}

func (d programDeriver) YieldMintAddress(tokenizerAddress solana.PublicKey) (solana.PublicKey, error) {
	return tokenizer.YieldMintAddress(d.programID, tokenizerAddress)
}

func (programDeriver) AssociatedTokenAddress(owner, mint solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("derive associated token address: %w", err)
	}
	return addr, nil
}

// programBuilder adapts the tokenizer package constructors to the Builder
// interface, converting the raw expiry where an action carries one.
type programBuilder struct{}

func (programBuilder) InitTokenizer(tokenizerAddress, authority, vault, underlyingMint, principalMint, yieldMint solana.PublicKey, expiry int64) (solana.Instruction, error) {
	e, err := tokenizer.NewExpiry(expiry)
	if err != nil {
		return nil, err
	}
	return tokenizer.InitTokenizer(tokenizerAddress, authority, vault, underlyingMint, principalMint, yieldMint, e)
}

func (programBuilder) InitMints(tokenizerAddress, authority, principalMint, yieldMint, underlyingMint solana.PublicKey) (solana.Instruction, error) {
	return tokenizer.InitMints(tokenizerAddress, authority, principalMint, yieldMint, underlyingMint)
}

func (programBuilder) InitTokenizerAndMints(tokenizerAddress, authority, vault, underlyingMint, principalMint, yieldMint solana.PublicKey, expiry int64) (solana.Instruction, error) {
	e, err := tokenizer.NewExpiry(expiry)
	if err != nil {
		return nil, err
	}
	return tokenizer.InitTokenizerAndMints(tokenizerAddress, authority, vault, underlyingMint, principalMint, yieldMint, e)
}

func (programBuilder) DepositUnderlying(tokenizerAddress, depositor, vault, underlyingMint solana.PublicKey, amount uint64) (solana.Instruction, error) {
	return tokenizer.DepositUnderlying(tokenizerAddress, depositor, vault, underlyingMint, amount)
}

func (programBuilder) TokenizePrincipal(tokenizerAddress, principalMint, user, userPrincipal solana.PublicKey, amount uint64) (solana.Instruction, error) {
	return tokenizer.TokenizePrincipal(tokenizerAddress, principalMint, user, userPrincipal, amount)
}

func (programBuilder) TokenizeYield(tokenizerAddress, yieldMint, user, userYield solana.PublicKey, amount uint64) (solana.Instruction, error) {
	return tokenizer.TokenizeYield(tokenizerAddress, yieldMint, user, userYield, amount)
}

func (programBuilder) DepositAndTokenize(tokenizerAddress, vault, principalMint, yieldMint, user, userUnderlying, userPrincipal, userYield solana.PublicKey, amount uint64) (solana.Instruction, error) {
	return tokenizer.DepositAndTokenize(tokenizerAddress, vault, principalMint, yieldMint, user, userUnderlying, userPrincipal, userYield, amount)
}

func (programBuilder) RedeemPrincipalOnly(tokenizerAddress, vault, underlyingMint, principalMint, user, userUnderlying, userPrincipal solana.PublicKey, amount uint64) (solana.Instruction, error) {
	return tokenizer.RedeemPrincipalOnly(tokenizerAddress, vault, underlyingMint, principalMint, user, userUnderlying, userPrincipal, amount)
}

func (programBuilder) RedeemPrincipalAndYield(tokenizerAddress, vault, underlyingMint, principalMint, yieldMint, user, userUnderlying, userPrincipal, userYield solana.PublicKey, amount uint64) (solana.Instruction, error) {
	return tokenizer.RedeemPrincipalAndYield(tokenizerAddress, vault, underlyingMint, principalMint, yieldMint, user, userUnderlying, userPrincipal, userYield, amount)
}

func (programBuilder) ClaimYield(tokenizerAddress, underlyingMint, yieldMint, user, userUnderlying, userYield solana.PublicKey, amount uint64) (solana.Instruction, error) {
	return tokenizer.ClaimYield(tokenizerAddress, underlyingMint, yieldMint, user, userUnderlying, userYield, amount)
}

func (programBuilder) BurnPrincipal(tokenizerAddress, principalMint, user, userPrincipal solana.PublicKey, amount uint64) (solana.Instruction, error) {
	return tokenizer.BurnPrincipal(tokenizerAddress, principalMint, user, userPrincipal, amount)
}

func (programBuilder) BurnYield(tokenizerAddress, yieldMint, user, userYield solana.PublicKey, amount uint64) (solana.Instruction, error) {
	return tokenizer.BurnYield(tokenizerAddress, yieldMint, user, userYield, amount)
}
