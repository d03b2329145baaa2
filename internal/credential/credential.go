// Package credential supplies the sender's signing capability to the transfer flow.
//
// A Provider is asked for a Signer once per submission; the Signer must be
// closed when the submission ends so key material does not outlive it.
package credential

import (
	"bytes"
	"crypto/ed25519"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// SecretKeyLength is the size of a full Solana secret key (seed + public key)
const SecretKeyLength = ed25519.PrivateKeySize

var (
	// ErrInvalidKeyLength is returned when the secret key is not 64 bytes
	ErrInvalidKeyLength = errors.New("invalid secret key length")
	// ErrKeyMismatch is returned when the public half does not derive from the seed half
	ErrKeyMismatch = errors.New("secret key public half does not match its seed")
	// ErrKeyNotConfigured is returned when no secret key is set
	ErrKeyNotConfigured = errors.New("secret key is not configured")
	// ErrMalformedKey is returned when the configured key is not a JSON byte array
	ErrMalformedKey = errors.New("secret key is not a JSON byte array")
	// ErrWalletFile is wrapped by every failure to open the encrypted wallet file
	ErrWalletFile = errors.New("wallet file could not be opened")
)

// Signer can sign transaction messages for one public key
type Signer interface {
	PublicKey() solana.PublicKey
	Sign(message []byte) (solana.Signature, error)
	// Close wipes the key material
	Close()
}

// Provider loads the sender credential
type Provider interface {
	Load() (Signer, error)
}

// ProviderFunc adapts a function to Provider
type ProviderFunc func() (Signer, error)

// Load calls f()
func (f ProviderFunc) Load() (Signer, error) {
	return f()
}

type keySigner struct {
	key solana.PrivateKey
}

// NewSigner validates a 64-byte secret key and wraps a copy of it.
func NewSigner(secretKey []byte) (Signer, error) {
	if len(secretKey) != SecretKeyLength {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKeyLength, SecretKeyLength, len(secretKey))
	}

	derived := ed25519.NewKeyFromSeed(secretKey[:ed25519.SeedSize])
	defer clear(derived)
	if !bytes.Equal(derived[ed25519.SeedSize:], secretKey[ed25519.SeedSize:]) {
		return nil, ErrKeyMismatch
	}

	key := make(solana.PrivateKey, SecretKeyLength)
	copy(key, secretKey)
	return &keySigner{key: key}, nil
}

func (s *keySigner) PublicKey() solana.PublicKey {
	return s.key.PublicKey()
}

func (s *keySigner) Sign(message []byte) (solana.Signature, error) {
	if len(s.key) == 0 {
		return solana.Signature{}, errors.New("signer is closed")
	}
	return s.key.Sign(message)
}

func (s *keySigner) Close() {
	clear(s.key)
	s.key = nil
}

// Static returns a provider that always hands out a signer for key.
// Used for injected test credentials.
func Static(key solana.PrivateKey) Provider {
	return ProviderFunc(func() (Signer, error) {
		return NewSigner(key)
	})
}
