// Copyright 2025 The yield-tokenizer-cli Authors
// SPDX-License-Identifier: Apache-2.0

package tokenizer

import (
	"bytes"
	"errors"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

var (
	// ErrUnsetAddress indicates a builder received the zero public key.
	ErrUnsetAddress = errors.New("address is unset")
	// ErrZeroAmount indicates a builder received a zero token amount.
	ErrZeroAmount = errors.New("amount must be greater than zero")
)

// Instruction tag bytes, one per program entrypoint, in on-chain enum order.
const (
	instrInitTokenizer uint8 = iota
	instrInitMints
	instrInitTokenizerAndMints
	instrDepositUnderlying
	instrTokenizePrincipal
	instrTokenizeYield
	instrDepositAndTokenize
	instrRedeemPrincipalOnly
	instrRedeemPrincipalAndYield
	instrClaimYield
	instrBurnPrincipal
	instrBurnYield
)

// Instruction is one ready-to-assemble tokenizer program instruction:
// the program address, the ordered account table and the encoded data.
// It satisfies solana.Instruction and is otherwise opaque to callers.
type Instruction struct {
	programID solana.PublicKey
	accounts  solana.AccountMetaSlice
	data      []byte
}

func (in *Instruction) ProgramID() solana.PublicKey { return in.programID }

func (in *Instruction) Accounts() []*solana.AccountMeta { return in.accounts }

func (in *Instruction) Data() ([]byte, error) { return in.data, nil }

// expiryPayload and amountPayload are the Borsh bodies following the tag byte.
type expiryPayload struct {
	Expiry int64
}

type amountPayload struct {
	Amount uint64
}

// InitTokenizer builds the instruction that creates the tokenizer state
// account and its underlying vault for a new (mint, expiry) instance.
func InitTokenizer(tokenizer, authority, vault, underlyingMint, principalMint, yieldMint solana.PublicKey, expiry Expiry) (*Instruction, error) {
	if err := checkSet(tokenizer, authority, vault, underlyingMint, principalMint, yieldMint); err != nil {
		return nil, err
	}
	data, err := encodeData(instrInitTokenizer, expiryPayload{Expiry: expiry.Unix()})
	if err != nil {
		return nil, err
	}
	return &Instruction{
		programID: ProgramID,
		accounts: solana.AccountMetaSlice{
			solana.Meta(tokenizer).WRITE(),
			solana.Meta(authority).WRITE().SIGNER(),
			solana.Meta(vault).WRITE(),
			solana.Meta(underlyingMint),
			solana.Meta(principalMint),
			solana.Meta(yieldMint),
			solana.Meta(solana.SystemProgramID),
			solana.Meta(solana.TokenProgramID),
			solana.Meta(solana.SPLAssociatedTokenAccountProgramID),
			solana.Meta(solana.SysVarRentPubkey),
		},
		data: data,
	}, nil
}

// InitMints builds the instruction that creates the principal and yield
// mints for an already-initialized tokenizer.
func InitMints(tokenizer, authority, principalMint, yieldMint, underlyingMint solana.PublicKey) (*Instruction, error) {
	if err := checkSet(tokenizer, authority, principalMint, yieldMint, underlyingMint); err != nil {
		return nil, err
	}
	data, err := encodeData(instrInitMints, nil)
	if err != nil {
		return nil, err
	}
	return &Instruction{
		programID: ProgramID,
		accounts: solana.AccountMetaSlice{
			solana.Meta(tokenizer),
			solana.Meta(authority).WRITE().SIGNER(),
			solana.Meta(principalMint).WRITE(),
			solana.Meta(yieldMint).WRITE(),
			solana.Meta(underlyingMint),
			solana.Meta(solana.SystemProgramID),
			solana.Meta(solana.TokenProgramID),
			solana.Meta(solana.SysVarRentPubkey),
		},
		data: data,
	}, nil
}

// InitTokenizerAndMints builds the combined initialization instruction:
// tokenizer state, vault and both mints in one call.
func InitTokenizerAndMints(tokenizer, authority, vault, underlyingMint, principalMint, yieldMint solana.PublicKey, expiry Expiry) (*Instruction, error) {
	if err := checkSet(tokenizer, authority, vault, underlyingMint, principalMint, yieldMint); err != nil {
		return nil, err
	}
	data, err := encodeData(instrInitTokenizerAndMints, expiryPayload{Expiry: expiry.Unix()})
	if err != nil {
		return nil, err
	}
	return &Instruction{
		programID: ProgramID,
		accounts: solana.AccountMetaSlice{
			solana.Meta(tokenizer).WRITE(),
			solana.Meta(authority).WRITE().SIGNER(),
			solana.Meta(vault).WRITE(),
			solana.Meta(underlyingMint),
			solana.Meta(principalMint).WRITE(),
			solana.Meta(yieldMint).WRITE(),
			solana.Meta(solana.SystemProgramID),
			solana.Meta(solana.TokenProgramID),
			solana.Meta(solana.SPLAssociatedTokenAccountProgramID),
			solana.Meta(solana.SysVarRentPubkey),
		},
		data: data,
	}, nil
}

// DepositUnderlying builds the instruction that moves amount of the
// underlying asset from the depositor's holding account into the vault.
// The depositor's holding account is the associated token account of
// (depositor, underlyingMint) and is derived here; the program expects it
// at that address.
func DepositUnderlying(tokenizer, depositor, vault, underlyingMint solana.PublicKey, amount uint64) (*Instruction, error) {
	if err := checkSet(tokenizer, depositor, vault, underlyingMint); err != nil {
		return nil, err
	}
	if amount == 0 {
		return nil, ErrZeroAmount
	}
	source, _, err := solana.FindAssociatedTokenAddress(depositor, underlyingMint)
	if err != nil {
		return nil, fmt.Errorf("derive depositor holding address: %w", err)
	}
	data, err := encodeData(instrDepositUnderlying, amountPayload{Amount: amount})
	if err != nil {
		return nil, err
	}
	return &Instruction{
		programID: ProgramID,
		accounts: solana.AccountMetaSlice{
			solana.Meta(tokenizer),
			solana.Meta(depositor).SIGNER(),
			solana.Meta(vault).WRITE(),
			solana.Meta(underlyingMint),
			solana.Meta(source).WRITE(),
			solana.Meta(solana.TokenProgramID),
		},
		data: data,
	}, nil
}

// TokenizePrincipal builds the instruction that mints principal tokens
// against a previously deposited balance.
func TokenizePrincipal(tokenizer, principalMint, user, userPrincipal solana.PublicKey, amount uint64) (*Instruction, error) {
	return userTokenInstruction(instrTokenizePrincipal, tokenizer, principalMint, user, userPrincipal, amount)
}

// TokenizeYield builds the instruction that mints yield tokens against a
// previously deposited balance.
func TokenizeYield(tokenizer, yieldMint, user, userYield solana.PublicKey, amount uint64) (*Instruction, error) {
	return userTokenInstruction(instrTokenizeYield, tokenizer, yieldMint, user, userYield, amount)
}

// DepositAndTokenize builds the combined instruction: deposit the
// underlying and mint both principal and yield tokens in one call.
func DepositAndTokenize(tokenizer, vault, principalMint, yieldMint, user, userUnderlying, userPrincipal, userYield solana.PublicKey, amount uint64) (*Instruction, error) {
	if err := checkSet(tokenizer, vault, principalMint, yieldMint, user, userUnderlying, userPrincipal, userYield); err != nil {
		return nil, err
	}
	if amount == 0 {
		return nil, ErrZeroAmount
	}
	data, err := encodeData(instrDepositAndTokenize, amountPayload{Amount: amount})
	if err != nil {
		return nil, err
	}
	return &Instruction{
		programID: ProgramID,
		accounts: solana.AccountMetaSlice{
			solana.Meta(tokenizer),
			solana.Meta(vault).WRITE(),
			solana.Meta(principalMint).WRITE(),
			solana.Meta(yieldMint).WRITE(),
			solana.Meta(user).SIGNER(),
			solana.Meta(userUnderlying).WRITE(),
			solana.Meta(userPrincipal).WRITE(),
			solana.Meta(userYield).WRITE(),
			solana.Meta(solana.TokenProgramID),
		},
		data: data,
	}, nil
}

// RedeemPrincipalOnly builds the post-expiry instruction that burns
// principal tokens and returns the matching underlying from the vault.
func RedeemPrincipalOnly(tokenizer, vault, underlyingMint, principalMint, user, userUnderlying, userPrincipal solana.PublicKey, amount uint64) (*Instruction, error) {
	if err := checkSet(tokenizer, vault, underlyingMint, principalMint, user, userUnderlying, userPrincipal); err != nil {
		return nil, err
	}
	if amount == 0 {
		return nil, ErrZeroAmount
	}
	data, err := encodeData(instrRedeemPrincipalOnly, amountPayload{Amount: amount})
	if err != nil {
		return nil, err
	}
	return &Instruction{
		programID: ProgramID,
		accounts: solana.AccountMetaSlice{
			solana.Meta(tokenizer),
			solana.Meta(vault).WRITE(),
			solana.Meta(underlyingMint),
			solana.Meta(principalMint).WRITE(),
			solana.Meta(user).SIGNER(),
			solana.Meta(userUnderlying).WRITE(),
			solana.Meta(userPrincipal).WRITE(),
			solana.Meta(solana.TokenProgramID),
		},
		data: data,
	}, nil
}

// RedeemPrincipalAndYield builds the post-expiry instruction that burns
// both token legs and returns underlying plus accrued yield.
func RedeemPrincipalAndYield(tokenizer, vault, underlyingMint, principalMint, yieldMint, user, userUnderlying, userPrincipal, userYield solana.PublicKey, amount uint64) (*Instruction, error) {
	if err := checkSet(tokenizer, vault, underlyingMint, principalMint, yieldMint, user, userUnderlying, userPrincipal, userYield); err != nil {
		return nil, err
	}
	if amount == 0 {
		return nil, ErrZeroAmount
	}
	data, err := encodeData(instrRedeemPrincipalAndYield, amountPayload{Amount: amount})
	if err != nil {
		return nil, err
	}
	return &Instruction{
		programID: ProgramID,
		accounts: solana.AccountMetaSlice{
			solana.Meta(tokenizer),
			solana.Meta(vault).WRITE(),
			solana.Meta(underlyingMint),
			solana.Meta(principalMint).WRITE(),
			solana.Meta(yieldMint).WRITE(),
			solana.Meta(user).SIGNER(),
			solana.Meta(userUnderlying).WRITE(),
			solana.Meta(userPrincipal).WRITE(),
			solana.Meta(userYield).WRITE(),
			solana.Meta(solana.TokenProgramID),
		},
		data: data,
	}, nil
}

// ClaimYield builds the instruction that burns yield tokens and pays out
// the accrued yield in the underlying asset. The vault is the associated
// token account of (tokenizer, underlyingMint) and is derived here.
func ClaimYield(tokenizer, underlyingMint, yieldMint, user, userUnderlying, userYield solana.PublicKey, amount uint64) (*Instruction, error) {
	if err := checkSet(tokenizer, underlyingMint, yieldMint, user, userUnderlying, userYield); err != nil {
		return nil, err
	}
	if amount == 0 {
		return nil, ErrZeroAmount
	}
	vault, _, err := solana.FindAssociatedTokenAddress(tokenizer, underlyingMint)
	if err != nil {
		return nil, fmt.Errorf("derive vault address: %w", err)
	}
	data, err := encodeData(instrClaimYield, amountPayload{Amount: amount})
	if err != nil {
		return nil, err
	}
	return &Instruction{
		programID: ProgramID,
		accounts: solana.AccountMetaSlice{
			solana.Meta(tokenizer),
			solana.Meta(vault).WRITE(),
			solana.Meta(underlyingMint),
			solana.Meta(yieldMint).WRITE(),
			solana.Meta(user).SIGNER(),
			solana.Meta(userUnderlying).WRITE(),
			solana.Meta(userYield).WRITE(),
			solana.Meta(solana.TokenProgramID),
		},
		data: data,
	}, nil
}

// BurnPrincipal builds the instruction that burns principal tokens without
// redemption.
func BurnPrincipal(tokenizer, principalMint, user, userPrincipal solana.PublicKey, amount uint64) (*Instruction, error) {
	return userTokenInstruction(instrBurnPrincipal, tokenizer, principalMint, user, userPrincipal, amount)
}

// BurnYield builds the instruction that burns yield tokens without
// redemption.
func BurnYield(tokenizer, yieldMint, user, userYield solana.PublicKey, amount uint64) (*Instruction, error) {
	return userTokenInstruction(instrBurnYield, tokenizer, yieldMint, user, userYield, amount)
}

// userTokenInstruction covers the four single-leg mint/burn entrypoints:
// they all act on one mint and one user holding account.
func userTokenInstruction(tag uint8, tokenizer, mint, user, userHolding solana.PublicKey, amount uint64) (*Instruction, error) {
	if err := checkSet(tokenizer, mint, user, userHolding); err != nil {
		return nil, err
	}
	if amount == 0 {
		return nil, ErrZeroAmount
	}
	data, err := encodeData(tag, amountPayload{Amount: amount})
	if err != nil {
		return nil, err
	}
	return &Instruction{
		programID: ProgramID,
		accounts: solana.AccountMetaSlice{
			solana.Meta(tokenizer),
			solana.Meta(mint).WRITE(),
			solana.Meta(user).SIGNER(),
			solana.Meta(userHolding).WRITE(),
			solana.Meta(solana.TokenProgramID),
		},
		data: data,
	}, nil
}

// encodeData serializes the tag byte and the optional Borsh payload.
func encodeData(tag uint8, payload interface{}) ([]byte, error) {
	buf := new(bytes.Buffer)
	enc := bin.NewBorshEncoder(buf)
	if err := enc.WriteBytes([]byte{tag}, false); err != nil {
		return nil, fmt.Errorf("encode instruction tag: %w", err)
	}
	if payload != nil {
		if err := enc.Encode(payload); err != nil {
			return nil, fmt.Errorf("encode instruction payload: %w", err)
		}
	}
	return buf.Bytes(), nil
}

func checkSet(keys ...solana.PublicKey) error {
	for _, k := range keys {
		if k.IsZero() {
			return ErrUnsetAddress
		}
	}
	return nil
}
