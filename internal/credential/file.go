package credential

import (
	"fmt"

	"github.com/AlexZinkM/devnet-transfer/internal/crypto"

	"github.com/gagliardetto/solana-go"
)

// PasswordFunc returns a copy of the wallet password; the caller zeroes it
type PasswordFunc func() ([]byte, error)

// FileProvider decrypts the sender key from an encrypted .cwt wallet file
type FileProvider struct {
	filePath string
	password PasswordFunc
}

// NewFileProvider creates a provider for the wallet at filePath
func NewFileProvider(filePath string, password PasswordFunc) *FileProvider {
	return &FileProvider{
		filePath: filePath,
		password: password,
	}
}

func (p *FileProvider) Load() (Signer, error) {
	password, err := p.password()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWalletFile, err)
	}
	defer clear(password)

	cwtFile, walletData, err := crypto.DecryptWallet(p.filePath, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWalletFile, err)
	}
	defer clear(walletData.PrivateKey)

	signer, err := NewSigner(walletData.PrivateKey)
	if err != nil {
		return nil, err
	}

	address, err := solana.PublicKeyFromBase58(cwtFile.Address)
	if err != nil || !signer.PublicKey().Equals(address) {
		signer.Close()
		return nil, fmt.Errorf("%w: wallet address %q", ErrKeyMismatch, cwtFile.Address)
	}

	return signer, nil
}
