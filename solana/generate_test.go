package solana

import (
	"encoding/base64"
	"path/filepath"
	"testing"

	"github.com/AlexZinkM/devnet-transfer/internal/credential"
	"github.com/AlexZinkM/devnet-transfer/internal/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKey_LoadsBack(t *testing.T) {
	key := GenerateKey()

	signer, err := credential.NewEnvKeyProvider(key.SecretKeyJSON).Load()
	require.NoError(t, err)
	defer signer.Close()

	assert.Equal(t, key.Address, signer.PublicKey().String())
}

func TestGenerateWallet(t *testing.T) {
	saved := crypto.DefaultKDF
	crypto.DefaultKDF = crypto.KDFParams{N: 1 << 10, R: 8, P: 1, KeyLen: 32}
	t.Cleanup(func() { crypto.DefaultKDF = saved })

	path := filepath.Join(t.TempDir(), "sender.cwt")
	address, err := GenerateWallet(path, []byte("pw"))
	require.NoError(t, err)

	signer, err := credential.NewFileProvider(path, func() ([]byte, error) { return []byte("pw"), nil }).Load()
	require.NoError(t, err)
	defer signer.Close()
	assert.Equal(t, address, signer.PublicKey().String())

	_, err = GenerateWallet(path, []byte("pw"))
	assert.ErrorIs(t, err, crypto.ErrFileNotEmpty)
}

func TestAddressQRCode(t *testing.T) {
	qr, err := AddressQRCode(GenerateKey().Address)
	require.NoError(t, err)

	png, err := base64.StdEncoding.DecodeString(qr)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}
