package tokenizer

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-01-01T00:00:00Z, an arbitrary but fixed expiry used across tests.
const testExpiry = int64(1767225600)

func randomKey(t *testing.T) solana.PublicKey {
	t.Helper()
	k, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	return k.PublicKey()
}

func TestTokenizerAddressDeterministic(t *testing.T) {
	mint := randomKey(t)

	first, err := TokenizerAddress(ProgramID, mint, testExpiry)
	require.NoError(t, err)
	second, err := TokenizerAddress(ProgramID, mint, testExpiry)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same (program, mint, expiry) must derive the same address")
}

func TestTokenizerAddressVariesWithInputs(t *testing.T) {
	mint := randomKey(t)

	base, err := TokenizerAddress(ProgramID, mint, testExpiry)
	require.NoError(t, err)

	byMint, err := TokenizerAddress(ProgramID, randomKey(t), testExpiry)
	require.NoError(t, err)
	assert.NotEqual(t, base, byMint)

	byExpiry, err := TokenizerAddress(ProgramID, mint, testExpiry+1)
	require.NoError(t, err)
	assert.NotEqual(t, base, byExpiry)

	byProgram, err := TokenizerAddress(randomKey(t), mint, testExpiry)
	require.NoError(t, err)
	assert.NotEqual(t, base, byProgram)
}

func TestMintAddressesDistinct(t *testing.T) {
	tokenizerAddr, err := TokenizerAddress(ProgramID, randomKey(t), testExpiry)
	require.NoError(t, err)

	principal, err := PrincipalMintAddress(ProgramID, tokenizerAddr)
	require.NoError(t, err)
	yield, err := YieldMintAddress(ProgramID, tokenizerAddr)
	require.NoError(t, err)

	assert.NotEqual(t, principal, yield)
	assert.NotEqual(t, tokenizerAddr, principal)
	assert.NotEqual(t, tokenizerAddr, yield)
}

func TestMintAddressesDeterministic(t *testing.T) {
	tokenizerAddr := randomKey(t)

	p1, err := PrincipalMintAddress(ProgramID, tokenizerAddr)
	require.NoError(t, err)
	p2, err := PrincipalMintAddress(ProgramID, tokenizerAddr)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)

	y1, err := YieldMintAddress(ProgramID, tokenizerAddr)
	require.NoError(t, err)
	y2, err := YieldMintAddress(ProgramID, tokenizerAddr)
	require.NoError(t, err)
	assert.Equal(t, y1, y2)
}
