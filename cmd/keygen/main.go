// Command keygen creates a sender key pair for the transfer server.
//
// Without flags it prints the address and the value for SOLANA_WALLET_SECRET_KEY.
// With -out it writes an encrypted .cwt wallet for SOLANA_FILE_PATH instead.
//
// Usage: go run ./cmd/keygen [-out sender.cwt]
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/AlexZinkM/devnet-transfer/internal/config"
	"github.com/AlexZinkM/devnet-transfer/internal/crypto"
	"github.com/AlexZinkM/devnet-transfer/solana"
)

func main() {
	out := flag.String("out", "", "write an encrypted .cwt wallet to this path instead of printing the key")
	flag.Parse()

	if err := run(*out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(out string) error {
	if out == "" {
		key := solana.GenerateKey()
		fmt.Printf("address: %s\n", key.Address)
		fmt.Printf("SOLANA_WALLET_SECRET_KEY='%s'\n", key.SecretKeyJSON)
		fmt.Printf("fund it: solana airdrop 1 %s --url devnet\n", key.Address)
		return nil
	}

	password, err := config.ReadPassword("New wallet password: ")
	if err != nil {
		return err
	}
	defer clear(password)

	confirm, err := config.ReadPassword("Repeat password: ")
	if err != nil {
		return err
	}
	defer clear(confirm)

	if !bytes.Equal(password, confirm) {
		return errors.New("passwords do not match")
	}

	address, err := solana.GenerateWallet(out, password)
	if err != nil {
		if errors.Is(err, crypto.ErrFileNotEmpty) {
			if existing, rerr := crypto.ReadWalletAddress(out); rerr == nil {
				return fmt.Errorf("refusing to overwrite %s (wallet %s): %w", out, existing, err)
			}
			return fmt.Errorf("refusing to overwrite %s: %w", out, err)
		}
		return err
	}

	fmt.Printf("address: %s\n", address)
	fmt.Printf("SOLANA_FILE_PATH=%s\n", out)
	return nil
}
