package credential

import (
	"encoding/json"
	"fmt"
	"strings"
)

// EnvKeyProvider decodes a secret key held in configuration as a JSON byte
// array, e.g. "[174,47,154,...]" (the format written by solana-keygen).
type EnvKeyProvider struct {
	raw string
}

// NewEnvKeyProvider creates a provider for the JSON-encoded secret key
func NewEnvKeyProvider(raw string) *EnvKeyProvider {
	return &EnvKeyProvider{raw: raw}
}

// Load decodes the key on every call; nothing is cached between submissions
func (p *EnvKeyProvider) Load() (Signer, error) {
	secretKey, err := DecodeSecretKey(p.raw)
	if err != nil {
		return nil, err
	}
	defer clear(secretKey)

	return NewSigner(secretKey)
}

// DecodeSecretKey parses a JSON byte array into raw key bytes
func DecodeSecretKey(raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrKeyNotConfigured
	}

	var values []int
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedKey, err)
	}
	defer clear(values)

	if len(values) != SecretKeyLength {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKeyLength, SecretKeyLength, len(values))
	}

	out := make([]byte, len(values))
	for i, v := range values {
		if v < 0 || v > 255 {
			clear(out)
			return nil, fmt.Errorf("%w: byte %d out of range: %d", ErrMalformedKey, i, v)
		}
		out[i] = byte(v)
	}
	return out, nil
}

// EncodeSecretKey renders key bytes as the JSON byte array accepted by DecodeSecretKey
func EncodeSecretKey(secretKey []byte) string {
	values := make([]int, len(secretKey))
	for i, b := range secretKey {
		values[i] = int(b)
	}
	out, _ := json.Marshal(values)
	return string(out)
}
