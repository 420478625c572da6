package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serfrae/yield-tokenizer-cli/internal/router"
	"github.com/serfrae/yield-tokenizer-cli/tokenizer"
)

type fakeRPC struct {
	blockhash    solana.Hash
	blockhashErr error
	version      string
	versionErr   error

	blockhashCalls int
}

func (f *fakeRPC) LatestBlockhash(ctx context.Context) (solana.Hash, error) {
	f.blockhashCalls++
	if f.blockhashErr != nil {
		return solana.Hash{}, f.blockhashErr
	}
	return f.blockhash, nil
}

func (f *fakeRPC) NodeVersion(ctx context.Context) (string, error) {
	if f.versionErr != nil {
		return "", f.versionErr
	}
	return f.version, nil
}

// stubRPC replaces the client factory for one test and reports how often
// it was invoked.
func stubRPC(t *testing.T, client *fakeRPC) *int {
	t.Helper()
	orig := newRPCClient
	calls := 0
	newRPCClient = func(endpoint, commitment string) (rpcClient, error) {
		calls++
		return client, nil
	}
	t.Cleanup(func() { newRPCClient = orig })
	return &calls
}

func stubWallet(t *testing.T, key solana.PrivateKey) {
	t.Helper()
	orig := loadWallet
	loadWallet = func(path string) (solana.PrivateKey, error) { return key, nil }
	t.Cleanup(func() { loadWallet = orig })
}

// writeTestConfig writes a config file whose keypair path points into the
// same temp dir; tests that stub loadWallet never read it.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	contents := fmt.Sprintf("json_rpc_url: http://localhost:8899\nkeypair_path: %s\ncommitment: confirmed\n",
		filepath.Join(dir, "id.json"))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		cfgPath, rpcURL, payerPath = "", "", ""
		verbose, nodeCheck = false, false
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func testKey(t *testing.T) solana.PrivateKey {
	t.Helper()
	key, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	return key
}

func TestParseInitArgs(t *testing.T) {
	mint := testKey(t).PublicKey()

	parsed, err := parseInitArgs([]string{mint.String(), "1767225600"})
	require.NoError(t, err)
	assert.Equal(t, mint, parsed.UnderlyingMint)
	assert.Equal(t, int64(1767225600), parsed.Expiry)

	_, err = parseInitArgs([]string{"not-a-key", "1767225600"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid underlying mint address")

	_, err = parseInitArgs([]string{mint.String(), "eventually"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid expiry")
}

func TestParseInstrArgs(t *testing.T) {
	tokenizerAddress := testKey(t).PublicKey()
	mint := testKey(t).PublicKey()

	parsed, err := parseInstrArgs([]string{tokenizerAddress.String(), "1000"})
	require.NoError(t, err)
	assert.Equal(t, tokenizerAddress, parsed.Tokenizer)
	assert.Equal(t, uint64(1000), parsed.Amount)
	assert.Nil(t, parsed.UnderlyingMint)

	parsed, err = parseInstrArgs([]string{tokenizerAddress.String(), "1000", mint.String()})
	require.NoError(t, err)
	require.NotNil(t, parsed.UnderlyingMint)
	assert.Equal(t, mint, *parsed.UnderlyingMint)

	_, err = parseInstrArgs([]string{"zzz", "1000"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid tokenizer address")

	_, err = parseInstrArgs([]string{tokenizerAddress.String(), "-3"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid amount")

	_, err = parseInstrArgs([]string{tokenizerAddress.String(), "1000", "wat"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid underlying mint address")
}

func TestBurnYieldSignsTransaction(t *testing.T) {
	key := testKey(t)
	stubWallet(t, key)
	client := &fakeRPC{blockhash: solana.Hash(testKey(t).PublicKey())}
	stubRPC(t, client)

	out, err := executeCommand(t,
		"--config", writeTestConfig(t),
		"burn", "yield", testKey(t).PublicKey().String(), "5",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "Wallet: "+key.PublicKey().String())
	assert.Contains(t, out, "Program: "+tokenizer.ProgramID.String())
	assert.Contains(t, out, "Signature: ")
	assert.Contains(t, out, "Transaction (base64):")
	assert.Equal(t, 1, client.blockhashCalls)
}

func TestMissingKeypairFailsBeforeNetwork(t *testing.T) {
	// loadWallet stays real; the configured keypair file does not exist.
	client := &fakeRPC{}
	factoryCalls := stubRPC(t, client)

	mint := testKey(t).PublicKey()
	_, err := executeCommand(t,
		"--config", writeTestConfig(t),
		"tokenize", "deposit", testKey(t).PublicKey().String(), "5", mint.String(),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to read keypair file")
	assert.Zero(t, *factoryCalls, "no network client before the wallet loads")
	assert.Zero(t, client.blockhashCalls)
}

func TestMissingUnderlyingMintFailsBeforeNetwork(t *testing.T) {
	stubWallet(t, testKey(t))
	client := &fakeRPC{}
	factoryCalls := stubRPC(t, client)

	_, err := executeCommand(t,
		"--config", writeTestConfig(t),
		"claim", "yield", testKey(t).PublicKey().String(), "5",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, router.ErrUnderlyingMintRequired)
	assert.Zero(t, *factoryCalls)
}

func TestBlockhashFailureAbortsBeforeSigning(t *testing.T) {
	stubWallet(t, testKey(t))
	client := &fakeRPC{blockhashErr: errors.New("node is behind")}
	stubRPC(t, client)

	mint := testKey(t).PublicKey()
	out, err := executeCommand(t,
		"--config", writeTestConfig(t),
		"tokenize", "principal-yield", testKey(t).PublicKey().String(), "1000", mint.String(),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "node is behind")
	assert.Equal(t, 1, client.blockhashCalls, "dispatch succeeded and the fetch was attempted")
	assert.NotContains(t, out, "Signature:", "nothing may be signed without a blockhash")
}

func TestRPCFlagOverridesConfig(t *testing.T) {
	stubWallet(t, testKey(t))

	var gotEndpoint string
	orig := newRPCClient
	newRPCClient = func(endpoint, commitment string) (rpcClient, error) {
		gotEndpoint = endpoint
		return &fakeRPC{blockhash: solana.Hash(testKey(t).PublicKey())}, nil
	}
	t.Cleanup(func() { newRPCClient = orig })

	_, err := executeCommand(t,
		"--config", writeTestConfig(t),
		"--rpc", "http://localhost:9999",
		"burn", "principal", testKey(t).PublicKey().String(), "7",
	)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", gotEndpoint)
}

func TestVersion(t *testing.T) {
	client := &fakeRPC{}
	factoryCalls := stubRPC(t, client)

	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "yield-tokenizer-cli version "+version)
	assert.Zero(t, *factoryCalls, "plain version stays offline")
}

func TestVersionNodeCheck(t *testing.T) {
	t.Run("compatible", func(t *testing.T) {
		stubRPC(t, &fakeRPC{version: "1.18.22"})

		out, err := executeCommand(t, "--config", writeTestConfig(t), "version", "--node")
		require.NoError(t, err)
		assert.Contains(t, out, "compatible")
	})

	t.Run("too old", func(t *testing.T) {
		stubRPC(t, &fakeRPC{version: "1.7.9"})

		_, err := executeCommand(t, "--config", writeTestConfig(t), "version", "--node")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not serve getLatestBlockhash")
	})
}

func TestIsInterrupted(t *testing.T) {
	assert.True(t, IsInterrupted(context.Canceled))
	assert.True(t, IsInterrupted(fmt.Errorf("wrapped: %w", context.Canceled)))
	assert.False(t, IsInterrupted(errors.New("boom")))
	assert.False(t, IsInterrupted(nil))
}
