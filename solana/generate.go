package solana

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/AlexZinkM/devnet-transfer/internal/credential"
	"github.com/AlexZinkM/devnet-transfer/internal/crypto"
	"github.com/AlexZinkM/devnet-transfer/internal/model"

	"github.com/gagliardetto/solana-go"
	"github.com/skip2/go-qrcode"
)

const networkSolanaDevnet = "solana-devnet"

// GeneratedKey is a freshly generated sender key pair
type GeneratedKey struct {
	Address string
	// SecretKeyJSON is the value for SOLANA_WALLET_SECRET_KEY
	SecretKeyJSON string
}

// GenerateKey creates a new sender key pair in the JSON byte array form read from configuration
func GenerateKey() GeneratedKey {
	wallet := solana.NewWallet()
	defer clear(wallet.PrivateKey)

	return GeneratedKey{
		Address:       wallet.PublicKey().String(),
		SecretKeyJSON: credential.EncodeSecretKey(wallet.PrivateKey),
	}
}

// GenerateWallet generates a new sender key pair and saves it encrypted to a .cwt file.
// Returns the generated public address on success.
// password must be []byte for security (caller should zero it after use)
func GenerateWallet(filePath string, password []byte) (address string, err error) {
	wallet := solana.NewWallet()
	defer clear(wallet.PrivateKey)

	address = wallet.PublicKey().String()

	qrCode, err := AddressQRCode(address)
	if err != nil {
		return "", err
	}

	walletData := &model.WalletData{
		PrivateKey: wallet.PrivateKey,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	if err := crypto.EncryptWallet(filePath, networkSolanaDevnet, address, qrCode, walletData, password); err != nil {
		return "", fmt.Errorf("failed to encrypt wallet: %w", err)
	}

	return address, nil
}

// AddressQRCode renders address as a base64 PNG QR code
func AddressQRCode(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
