package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AlexZinkM/devnet-transfer/internal/model"

	"golang.org/x/crypto/scrypt"
)

// KDFParams are the scrypt parameters used to derive the wallet key
type KDFParams struct {
	N      int
	R      int
	P      int
	KeyLen int
}

// DefaultKDF is used for every wallet file written by this module.
//
// N=2^18 (~256MB RAM, 0.5-2s) keeps brute force expensive while still
// running on small machines.
var DefaultKDF = KDFParams{
	N:      1 << 18,
	R:      8,
	P:      1,
	KeyLen: 32,
}

const (
	walletExt = ".cwt"
	saltLen   = 32
	nonceLen  = 12
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ErrFileNotEmpty is returned when the target wallet file already holds data
var ErrFileNotEmpty = fmt.Errorf("file is not empty: %w", os.ErrExist)

// EncryptWallet encrypts wallet data and writes it to a .cwt file.
// password must be []byte for security (caller should zero it after use)
func EncryptWallet(filePath, network, address, qrCode string, walletData *model.WalletData, password []byte) error {
	return encryptWallet(filePath, network, address, qrCode, walletData, password, DefaultKDF)
}

func encryptWallet(filePath, network, address, qrCode string, walletData *model.WalletData, password []byte, kdf KDFParams) error {
	if filepath.Ext(filePath) != walletExt {
		return errors.New("file must have .cwt extension")
	}

	if fileInfo, err := os.Stat(filePath); err == nil && fileInfo.Size() > 0 {
		return ErrFileNotEmpty
	}

	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}

	aesGCM, err := newGCM(password, salt, kdf)
	if err != nil {
		return err
	}

	plaintext, err := json.Marshal(walletData)
	if err != nil {
		return fmt.Errorf("failed to marshal wallet data: %w", err)
	}
	defer clear(plaintext)

	ciphertext := aesGCM.Seal(nil, nonce, plaintext, nil)

	cwtFile := model.CWTFile{
		Network:    network,
		Address:    address,
		QR:         qrCode,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		CipherText: base64.StdEncoding.EncodeToString(ciphertext),
	}

	fileData, err := json.MarshalIndent(cwtFile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cwt file: %w", err)
	}

	// BOM keeps Windows editors from mangling the file
	out := append(append([]byte{}, utf8BOM...), fileData...)
	if err := os.WriteFile(filePath, out, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// newGCM derives the file key from password and salt and wraps it in AES-GCM
func newGCM(password, salt []byte, kdf KDFParams) (cipher.AEAD, error) {
	key, err := scrypt.Key(password, salt, kdf.N, kdf.R, kdf.P, kdf.KeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}
