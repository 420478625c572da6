// Copyright 2025 The yield-tokenizer-cli Authors
// SPDX-License-Identifier: Apache-2.0

// Package router maps each parsed leaf action onto the tokenizer
// program's address derivations and exactly one instruction-builder call.
package router

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Deriver computes the deterministic addresses dispatch arms need. All
// methods are pure functions of their inputs.
type Deriver interface {
	TokenizerAddress(underlyingMint solana.PublicKey, expiry int64) (solana.PublicKey, error)
	PrincipalMintAddress(tokenizerAddress solana.PublicKey) (solana.PublicKey, error)
	YieldMintAddress(tokenizerAddress solana.PublicKey) (solana.PublicKey, error)
	AssociatedTokenAddress(owner, mint solana.PublicKey) (solana.PublicKey, error)
}

// Builder constructs the program's instructions. The positional argument
// order of each method is part of the contract with the program binding.
type Builder interface {
	InitTokenizer(tokenizerAddress, authority, vault, underlyingMint, principalMint, yieldMint solana.PublicKey, expiry int64) (solana.Instruction, error)
	InitMints(tokenizerAddress, authority, principalMint, yieldMint, underlyingMint solana.PublicKey) (solana.Instruction, error)
	InitTokenizerAndMints(tokenizerAddress, authority, vault, underlyingMint, principalMint, yieldMint solana.PublicKey, expiry int64) (solana.Instruction, error)
	DepositUnderlying(tokenizerAddress, depositor, vault, underlyingMint solana.PublicKey, amount uint64) (solana.Instruction, error)
	TokenizePrincipal(tokenizerAddress, principalMint, user, userPrincipal solana.PublicKey, amount uint64) (solana.Instruction, error)
	TokenizeYield(tokenizerAddress, yieldMint, user, userYield solana.PublicKey, amount uint64) (solana.Instruction, error)
	DepositAndTokenize(tokenizerAddress, vault, principalMint, yieldMint, user, userUnderlying, userPrincipal, userYield solana.PublicKey, amount uint64) (solana.Instruction, error)
	RedeemPrincipalOnly(tokenizerAddress, vault, underlyingMint, principalMint, user, userUnderlying, userPrincipal solana.PublicKey, amount uint64) (solana.Instruction, error)
	RedeemPrincipalAndYield(tokenizerAddress, vault, underlyingMint, principalMint, yieldMint, user, userUnderlying, userPrincipal, userYield solana.PublicKey, amount uint64) (solana.Instruction, error)
	ClaimYield(tokenizerAddress, underlyingMint, yieldMint, user, userUnderlying, userYield solana.PublicKey, amount uint64) (solana.Instruction, error)
	BurnPrincipal(tokenizerAddress, principalMint, user, userPrincipal solana.PublicKey, amount uint64) (solana.Instruction, error)
	BurnYield(tokenizerAddress, yieldMint, user, userYield solana.PublicKey, amount uint64) (solana.Instruction, error)
}

// Router resolves parsed commands for one wallet: it runs each action's
// derivation sequence and delegates to exactly one builder method.
type Router struct {
	wallet solana.PublicKey
	derive Deriver
	build  Builder
}

// Option configures a Router.
type Option func(*Router)

// WithDeriver replaces the address deriver.
func WithDeriver(d Deriver) Option {
	return func(r *Router) { r.derive = d }
}

// WithBuilder replaces the instruction builder.
func WithBuilder(b Builder) Option {
	return func(r *Router) { r.build = b }
}

// New creates a Router acting for the given wallet public key. Unless
// options replace them, addresses derive against the production program
// id and instructions come from the real program binding.
func New(wallet solana.PublicKey, opts ...Option) *Router {
	r := &Router{
		wallet: wallet,
		derive: defaultDeriver(),
		build:  programBuilder{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Dispatch validates cmd, runs its derivation sequence and returns the
// one instruction the action maps to. Nothing here touches the network;
// validation failures surface before any derivation.
func (r *Router) Dispatch(cmd Command) (solana.Instruction, error) {
	switch c := cmd.(type) {
	case InitializeTokenizer:
		return r.initFull(c.InitArgs, c.Name(), r.build.InitTokenizer)
	case InitializeMints:
		return r.initMints(c)
	case InitializeTokenizerAndMints:
		return r.initFull(c.InitArgs, c.Name(), r.build.InitTokenizerAndMints)
	case Deposit:
		return r.deposit(c)
	case TokenizePrincipal:
		return r.principalLeg(c.InstrArgs, c.Name(), r.build.TokenizePrincipal)
	case TokenizeYield:
		return r.yieldLeg(c.InstrArgs, c.Name(), r.build.TokenizeYield)
	case DepositAndTokenize:
		return r.depositAndTokenize(c)
	case RedeemPrincipal:
		return r.redeemPrincipal(c)
	case RedeemPrincipalAndYield:
		return r.redeemPrincipalAndYield(c)
	case ClaimYield:
		return r.claimYield(c)
	case BurnPrincipal:
		return r.principalLeg(c.InstrArgs, c.Name(), r.build.BurnPrincipal)
	case BurnYield:
		return r.yieldLeg(c.InstrArgs, c.Name(), r.build.BurnYield)
	default:
		return nil, fmt.Errorf("unsupported command type %T", cmd)
	}
}

// initFull covers the two initialization actions that create the vault:
// they share the full derivation sequence and builder shape.
func (r *Router) initFull(args InitArgs, name string, build func(tokenizerAddress, authority, vault, underlyingMint, principalMint, yieldMint solana.PublicKey, expiry int64) (solana.Instruction, error)) (solana.Instruction, error) {
	tokenizerAddress, err := r.derive.TokenizerAddress(args.UnderlyingMint, args.Expiry)
	if err != nil {
		return nil, err
	}
	vault, err := r.derive.AssociatedTokenAddress(tokenizerAddress, args.UnderlyingMint)
	if err != nil {
		return nil, err
	}
	principalMint, err := r.derive.PrincipalMintAddress(tokenizerAddress)
	if err != nil {
		return nil, err
	}
	yieldMint, err := r.derive.YieldMintAddress(tokenizerAddress)
	if err != nil {
		return nil, err
	}

	in, err := build(tokenizerAddress, r.wallet, vault, args.UnderlyingMint, principalMint, yieldMint, args.Expiry)
	if err != nil {
		return nil, buildErr(name, err)
	}
	return in, nil
}

func (r *Router) initMints(c InitializeMints) (solana.Instruction, error) {
	tokenizerAddress, err := r.derive.TokenizerAddress(c.UnderlyingMint, c.Expiry)
	if err != nil {
		return nil, err
	}
	principalMint, err := r.derive.PrincipalMintAddress(tokenizerAddress)
	if err != nil {
		return nil, err
	}
	yieldMint, err := r.derive.YieldMintAddress(tokenizerAddress)
	if err != nil {
		return nil, err
	}

	in, err := r.build.InitMints(tokenizerAddress, r.wallet, principalMint, yieldMint, c.UnderlyingMint)
	if err != nil {
		return nil, buildErr(c.Name(), err)
	}
	return in, nil
}

func (r *Router) deposit(c Deposit) (solana.Instruction, error) {
	underlyingMint, err := c.requireUnderlyingMint()
	if err != nil {
		return nil, err
	}
	vault, err := r.derive.AssociatedTokenAddress(c.Tokenizer, underlyingMint)
	if err != nil {
		return nil, err
	}

	in, err := r.build.DepositUnderlying(c.Tokenizer, r.wallet, vault, underlyingMint, c.Amount)
	if err != nil {
		return nil, buildErr(c.Name(), err)
	}
	return in, nil
}

// principalLeg covers the two single-leg actions on the principal mint;
// yieldLeg mirrors it for the yield mint.
func (r *Router) principalLeg(args InstrArgs, name string, build func(tokenizerAddress, principalMint, user, userPrincipal solana.PublicKey, amount uint64) (solana.Instruction, error)) (solana.Instruction, error) {
	principalMint, err := r.derive.PrincipalMintAddress(args.Tokenizer)
	if err != nil {
		return nil, err
	}
	userPrincipal, err := r.derive.AssociatedTokenAddress(r.wallet, principalMint)
	if err != nil {
		return nil, err
	}

	in, err := build(args.Tokenizer, principalMint, r.wallet, userPrincipal, args.Amount)
	if err != nil {
		return nil, buildErr(name, err)
	}
	return in, nil
}

func (r *Router) yieldLeg(args InstrArgs, name string, build func(tokenizerAddress, yieldMint, user, userYield solana.PublicKey, amount uint64) (solana.Instruction, error)) (solana.Instruction, error) {
	yieldMint, err := r.derive.YieldMintAddress(args.Tokenizer)
	if err != nil {
		return nil, err
	}
	userYield, err := r.derive.AssociatedTokenAddress(r.wallet, yieldMint)
	if err != nil {
		return nil, err
	}

	in, err := build(args.Tokenizer, yieldMint, r.wallet, userYield, args.Amount)
	if err != nil {
		return nil, buildErr(name, err)
	}
	return in, nil
}

func (r *Router) depositAndTokenize(c DepositAndTokenize) (solana.Instruction, error) {
	underlyingMint, err := c.requireUnderlyingMint()
	if err != nil {
		return nil, err
	}
	vault, err := r.derive.AssociatedTokenAddress(c.Tokenizer, underlyingMint)
	if err != nil {
		return nil, err
	}
	principalMint, err := r.derive.PrincipalMintAddress(c.Tokenizer)
	if err != nil {
		return nil, err
	}
	yieldMint, err := r.derive.YieldMintAddress(c.Tokenizer)
	if err != nil {
		return nil, err
	}
	userUnderlying, err := r.derive.AssociatedTokenAddress(r.wallet, underlyingMint)
	if err != nil {
		return nil, err
	}
	userPrincipal, err := r.derive.AssociatedTokenAddress(r.wallet, principalMint)
	if err != nil {
		return nil, err
	}
	userYield, err := r.derive.AssociatedTokenAddress(r.wallet, yieldMint)
	if err != nil {
		return nil, err
	}

	in, err := r.build.DepositAndTokenize(c.Tokenizer, vault, principalMint, yieldMint, r.wallet, userUnderlying, userPrincipal, userYield, c.Amount)
	if err != nil {
		return nil, buildErr(c.Name(), err)
	}
	return in, nil
}

func (r *Router) redeemPrincipal(c RedeemPrincipal) (solana.Instruction, error) {
	underlyingMint, err := c.requireUnderlyingMint()
	if err != nil {
		return nil, err
	}
	vault, err := r.derive.AssociatedTokenAddress(c.Tokenizer, underlyingMint)
	if err != nil {
		return nil, err
	}
	principalMint, err := r.derive.PrincipalMintAddress(c.Tokenizer)
	if err != nil {
		return nil, err
	}
	userUnderlying, err := r.derive.AssociatedTokenAddress(r.wallet, underlyingMint)
	if err != nil {
		return nil, err
	}
	userPrincipal, err := r.derive.AssociatedTokenAddress(r.wallet, principalMint)
	if err != nil {
		return nil, err
	}

	in, err := r.build.RedeemPrincipalOnly(c.Tokenizer, vault, underlyingMint, principalMint, r.wallet, userUnderlying, userPrincipal, c.Amount)
	if err != nil {
		return nil, buildErr(c.Name(), err)
	}
	return in, nil
}

func (r *Router) redeemPrincipalAndYield(c RedeemPrincipalAndYield) (solana.Instruction, error) {
	underlyingMint, err := c.requireUnderlyingMint()
	if err != nil {
		return nil, err
	}
	vault, err := r.derive.AssociatedTokenAddress(c.Tokenizer, underlyingMint)
	if err != nil {
		return nil, err
	}
	principalMint, err := r.derive.PrincipalMintAddress(c.Tokenizer)
	if err != nil {
		return nil, err
	}
	yieldMint, err := r.derive.YieldMintAddress(c.Tokenizer)
	if err != nil {
		return nil, err
	}
	userUnderlying, err := r.derive.AssociatedTokenAddress(r.wallet, underlyingMint)
	if err != nil {
		return nil, err
	}
	userPrincipal, err := r.derive.AssociatedTokenAddress(r.wallet, principalMint)
	if err != nil {
		return nil, err
	}
	userYield, err := r.derive.AssociatedTokenAddress(r.wallet, yieldMint)
	if err != nil {
		return nil, err
	}

	in, err := r.build.RedeemPrincipalAndYield(c.Tokenizer, vault, underlyingMint, principalMint, yieldMint, r.wallet, userUnderlying, userPrincipal, userYield, c.Amount)
	if err != nil {
		return nil, buildErr(c.Name(), err)
	}
	return in, nil
}

func (r *Router) claimYield(c ClaimYield) (solana.Instruction, error) {
	underlyingMint, err := c.requireUnderlyingMint()
	if err != nil {
		return nil, err
	}
	yieldMint, err := r.derive.YieldMintAddress(c.Tokenizer)
	if err != nil {
		return nil, err
	}
	userUnderlying, err := r.derive.AssociatedTokenAddress(r.wallet, underlyingMint)
	if err != nil {
		return nil, err
	}
	userYield, err := r.derive.AssociatedTokenAddress(r.wallet, yieldMint)
	if err != nil {
		return nil, err
	}

	in, err := r.build.ClaimYield(c.Tokenizer, underlyingMint, yieldMint, r.wallet, userUnderlying, userYield, c.Amount)
	if err != nil {
		return nil, buildErr(c.Name(), err)
	}
	return in, nil
}

func buildErr(name string, err error) error {
	return fmt.Errorf("unable to create %s instruction: %w", name, err)
}
