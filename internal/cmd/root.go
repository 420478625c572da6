// Copyright 2025 The yield-tokenizer-cli Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	"github.com/serfrae/yield-tokenizer-cli/internal/cliconfig"
	"github.com/serfrae/yield-tokenizer-cli/internal/router"
	"github.com/serfrae/yield-tokenizer-cli/internal/rpc"
	"github.com/serfrae/yield-tokenizer-cli/internal/telemetry"
	"github.com/serfrae/yield-tokenizer-cli/internal/txn"
	"github.com/serfrae/yield-tokenizer-cli/internal/wallet"
)

// InterruptExitCode is the exit status for runs cancelled by SIGINT or
// SIGTERM, following shell convention (128 + SIGINT).
const InterruptExitCode = 130

var (
	cfgPath   string
	rpcURL    string
	payerPath string
	verbose   bool
)

// rpcClient is the slice of internal/rpc this package consumes. Tests
// substitute fakes through newRPCClient.
type rpcClient interface {
	LatestBlockhash(ctx context.Context) (solana.Hash, error)
	NodeVersion(ctx context.Context) (string, error)
}

// Collaborators behind the command handlers. Tests replace these to run
// commands without touching the filesystem or the network.
var (
	loadWallet = wallet.Load

	newRPCClient = func(endpoint, commitment string) (rpcClient, error) {
		return rpc.NewClient(endpoint, commitment)
	}
)

var rootCmd = &cobra.Command{
	Use:   "yield-tokenizer-cli",
	Short: "Construct and sign transactions for the on-chain yield tokenizer",
	Long: `yield-tokenizer-cli constructs and signs Solana transactions for the
yield tokenizer program, which splits an underlying yield-bearing asset
into a principal token and a yield token.

Every command derives the addresses its instruction needs, wraps the
instruction in a transaction, fetches a recent blockhash and signs with
the configured wallet. The signed transaction is printed, never
submitted.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command
// context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// IsInterrupted reports whether err comes from an interrupted run.
func IsInterrupted(err error) bool {
	return errors.Is(err, context.Canceled)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to the solana CLI config file")
	rootCmd.PersistentFlags().StringVarP(&rpcURL, "rpc", "r", "", "RPC endpoint, overriding the config file")
	rootCmd.PersistentFlags().StringVarP(&payerPath, "payer", "p", "", "payer keypair path, overriding the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Register commands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(redeemCmd)
	rootCmd.AddCommand(claimCmd)
	rootCmd.AddCommand(burnCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig loads the effective configuration with flag overrides
// applied.
func resolveConfig() (cliconfig.Config, error) {
	cfg, err := cliconfig.Resolve(cfgPath)
	if err != nil {
		return cliconfig.Config{}, err
	}
	return cfg.WithOverrides(rpcURL, payerPath), nil
}

// runAction is the shared tail of every leaf command: resolve the
// configuration, load the wallet, dispatch the action to one instruction,
// fetch the freshness token, assemble and sign. The signed transaction is
// printed, never submitted.
func runAction(cmd *cobra.Command, action router.Command) (err error) {
	ctx, span := telemetry.StartAction(cmd.Context(), action.Name())
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if verbose {
		color.Cyan("RPC endpoint: %s (%s commitment)", cfg.JSONRPCURL, cfg.Commitment)
		color.Cyan("Keypair: %s", cfg.KeypairPath)
	}

	key, err := loadWallet(cfg.KeypairPath)
	if err != nil {
		return err
	}
	walletPub := key.PublicKey()

	in, err := router.New(walletPub).Dispatch(action)
	if err != nil {
		return err
	}

	client, err := newRPCClient(cfg.JSONRPCURL, cfg.Commitment)
	if err != nil {
		return err
	}
	if verbose {
		color.Green("▶ Fetching latest blockhash...")
	}
	blockhash, err := client.LatestBlockhash(ctx)
	if err != nil {
		return err
	}

	tx, err := txn.Assemble(in, walletPub, blockhash)
	if err != nil {
		return err
	}
	if err := txn.Sign(tx, key); err != nil {
		return err
	}

	encoded, err := tx.ToBase64()
	if err != nil {
		return fmt.Errorf("failed to encode transaction: %w", err)
	}

	if verbose {
		color.Green("✓ %s transaction signed", action.Name())
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wallet: %s\n", walletPub)
	fmt.Fprintf(out, "Program: %s\n", in.ProgramID())
	fmt.Fprintf(out, "Signature: %s\n", tx.Signatures[0])
	fmt.Fprintf(out, "Transaction (base64):\n%s\n", encoded)
	return nil
}
