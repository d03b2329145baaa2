package solana

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// ParseRecipient decodes a base58 address and checks that it is a point on the
// ed25519 curve. Program derived addresses are off curve and rejected.
func ParseRecipient(address string) (solana.PublicKey, error) {
	pubkey, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid base58 address: %w", err)
	}

	if !pubkey.IsOnCurve() {
		return solana.PublicKey{}, fmt.Errorf("address %s is not on the ed25519 curve", pubkey)
	}

	return pubkey, nil
}
