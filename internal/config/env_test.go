package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SOLANA_WALLET_SECRET_KEY", "[1,2,3]")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, "https://api.devnet.solana.com", c.SolanaRPCURL)
	assert.Equal(t, "devnet", c.ExplorerCluster)
	assert.Equal(t, 60*time.Second, c.ConfirmTimeout)
	assert.Equal(t, time.Second, c.ConfirmPollInterval)
	assert.Zero(t, c.SendCooldown)
	assert.Equal(t, "text", c.LogFormat)
	assert.False(t, c.UsesWalletFile())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SOLANA_FILE_PATH", "/tmp/sender.cwt")
	t.Setenv("PORT", "9090")
	t.Setenv("CONFIRM_TIMEOUT", "2m")
	t.Setenv("SEND_COOLDOWN", "30s")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, 2*time.Minute, c.ConfirmTimeout)
	assert.Equal(t, 30*time.Second, c.SendCooldown)
	assert.True(t, c.UsesWalletFile())
}

func TestLoad_CredentialSource(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		t.Setenv("SOLANA_WALLET_SECRET_KEY", "")
		t.Setenv("SOLANA_FILE_PATH", "")
		_, err := Load()
		assert.ErrorContains(t, err, "must be set")
	})

	t.Run("both", func(t *testing.T) {
		t.Setenv("SOLANA_WALLET_SECRET_KEY", "[1]")
		t.Setenv("SOLANA_FILE_PATH", "/tmp/sender.cwt")
		_, err := Load()
		assert.ErrorContains(t, err, "mutually exclusive")
	})
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("SOLANA_WALLET_SECRET_KEY", "[1]")
	t.Setenv("CONFIRM_TIMEOUT", "soon")

	_, err := Load()
	assert.ErrorContains(t, err, "failed to process config")
}

func TestInitGet(t *testing.T) {
	t.Setenv("SOLANA_WALLET_SECRET_KEY", "[1]")
	t.Setenv("SOLANA_RPC_URL", "http://localhost:8899")
	t.Cleanup(func() { cfg = nil })

	require.NoError(t, Init())
	assert.Equal(t, "[1]", GetSolanaSecretKey())
	assert.Equal(t, "8080", GetPort())
	assert.Equal(t, "http://localhost:8899", GetSolanaRPCURL())
	assert.Empty(t, GetSolanaFilePath())
}

func TestGetSolanaPasswordBytes_NotSet(t *testing.T) {
	_, err := GetSolanaPasswordBytes()
	assert.Error(t, err)
}
