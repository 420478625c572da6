package txn

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serfrae/yield-tokenizer-cli/tokenizer"
)

func testInstruction(t *testing.T, user solana.PublicKey) solana.Instruction {
	t.Helper()
	yieldMint := randomKey(t)
	userYield, _, err := solana.FindAssociatedTokenAddress(user, yieldMint)
	require.NoError(t, err)

	in, err := tokenizer.BurnYield(randomKey(t), yieldMint, user, userYield, 5)
	require.NoError(t, err)
	return in
}

func randomKey(t *testing.T) solana.PublicKey {
	t.Helper()
	k, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	return k.PublicKey()
}

func TestAssemble(t *testing.T) {
	payer, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	blockhash := solana.Hash(randomKey(t))

	tx, err := Assemble(testInstruction(t, payer.PublicKey()), payer.PublicKey(), blockhash)
	require.NoError(t, err)

	assert.Len(t, tx.Message.Instructions, 1)
	assert.Equal(t, blockhash, tx.Message.RecentBlockhash)
	require.NotEmpty(t, tx.Message.AccountKeys)
	assert.Equal(t, payer.PublicKey(), tx.Message.AccountKeys[0], "fee payer leads the account table")
}

func TestSign(t *testing.T) {
	payer, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	tx, err := Assemble(testInstruction(t, payer.PublicKey()), payer.PublicKey(), solana.Hash(randomKey(t)))
	require.NoError(t, err)

	require.NoError(t, Sign(tx, payer))
	assert.Len(t, tx.Signatures, 1)
	assert.NoError(t, tx.VerifySignatures())
}

func TestSignWrongKey(t *testing.T) {
	payer, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	other, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	tx, err := Assemble(testInstruction(t, payer.PublicKey()), payer.PublicKey(), solana.Hash(randomKey(t)))
	require.NoError(t, err)

	err = Sign(tx, other)
	require.Error(t, err)
	assert.Empty(t, tx.Signatures)
}
