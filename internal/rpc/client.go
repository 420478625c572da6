// Copyright 2025 The yield-tokenizer-cli Authors
// SPDX-License-Identifier: Apache-2.0

// Package rpc wraps the Solana JSON-RPC client with the calls this tool
// needs.
package rpc

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	solanarpc "github.com/gagliardetto/solana-go/rpc"
)

// Client handles interactions with a Solana JSON-RPC node.
type Client struct {
	rpc        *solanarpc.Client
	commitment solanarpc.CommitmentType
}

// NewClient creates a new RPC client for the given endpoint and commitment
// level. An empty commitment means confirmed.
func NewClient(endpoint, commitment string) (*Client, error) {
	var ct solanarpc.CommitmentType

	switch commitment {
	case "processed":
		ct = solanarpc.CommitmentProcessed
	case "confirmed", "":
		ct = solanarpc.CommitmentConfirmed
	case "finalized":
		ct = solanarpc.CommitmentFinalized
	default:
		return nil, fmt.Errorf("unsupported commitment: %s (use 'processed', 'confirmed' or 'finalized')", commitment)
	}

	return &Client{
		rpc:        solanarpc.New(endpoint),
		commitment: ct,
	}, nil
}

// LatestBlockhash fetches the latest blockhash at the client's commitment
// level, the freshness token every signed transaction carries.
func (c *Client) LatestBlockhash(ctx context.Context) (solana.Hash, error) {
	out, err := c.rpc.GetLatestBlockhash(ctx, c.commitment)
	if err != nil {
		return solana.Hash{}, fmt.Errorf("failed to fetch latest blockhash: %w", err)
	}
	return out.Value.Blockhash, nil
}

// NodeVersion fetches the solana-core version of the configured node.
func (c *Client) NodeVersion(ctx context.Context) (string, error) {
	out, err := c.rpc.GetVersion(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch node version: %w", err)
	}
	return out.SolanaCore, nil
}
