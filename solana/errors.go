package solana

import (
	"errors"
	"fmt"

	"github.com/AlexZinkM/devnet-transfer/internal/common"
	"github.com/AlexZinkM/devnet-transfer/internal/credential"
	"github.com/AlexZinkM/devnet-transfer/internal/crypto"
)

// ErrorKind classifies why a transfer was refused or failed
type ErrorKind string

const (
	KindInvalidCredential ErrorKind = "INVALID_CREDENTIAL"
	KindInvalidAddress    ErrorKind = "INVALID_ADDRESS"
	KindInvalidAmount     ErrorKind = "INVALID_AMOUNT"
	KindInsufficientFunds ErrorKind = "INSUFFICIENT_FUNDS"
	KindNetworkFailure    ErrorKind = "NETWORK_FAILURE"
)

// User-facing messages, shown verbatim on the form
const (
	msgInvalidCredential  = "Invalid secret key length"
	msgInvalidKeypair     = "Invalid secret key: public key does not match"
	msgKeyNotConfigured   = "Sender secret key is not configured"
	msgMalformedKey       = "Invalid secret key: expected a JSON array of 64 bytes"
	msgWalletPassword     = "Wallet file could not be decrypted: wrong password"
	msgWalletFile         = "Wallet file could not be opened"
	msgCredentialFallback = "Sender secret key could not be loaded"

	msgInvalidAddress = "Invalid Solana wallet address"

	msgInvalidAmount  = "Amount must be greater than zero"
	msgAmountPrecise  = "Amount cannot have more than 9 decimal places"
	msgAmountFormat   = "Amount must be a number"
	msgAmountTooLarge = "Amount is too large"

	msgInsufficientFunds = "Insufficient funds in the sender's wallet"
)

// credentialMessage names the reason a credential could not be loaded
func credentialMessage(err error) string {
	switch {
	case errors.Is(err, credential.ErrInvalidKeyLength):
		return msgInvalidCredential
	case errors.Is(err, credential.ErrKeyMismatch):
		return msgInvalidKeypair
	case errors.Is(err, credential.ErrKeyNotConfigured):
		return msgKeyNotConfigured
	case errors.Is(err, credential.ErrMalformedKey):
		return msgMalformedKey
	case errors.Is(err, crypto.ErrInvalidPassword):
		return msgWalletPassword
	case errors.Is(err, credential.ErrWalletFile):
		return msgWalletFile
	default:
		return msgCredentialFallback
	}
}

// amountMessage names the reason an amount was rejected
func amountMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrTooPrecise):
		return msgAmountPrecise
	case errors.Is(err, common.ErrOutOfRange):
		return msgAmountTooLarge
	case errors.Is(err, common.ErrInvalidFormat):
		return msgAmountFormat
	default:
		return msgInvalidAmount
	}
}

// TransferError is returned by Sender.Send for every failed attempt
type TransferError struct {
	Kind    ErrorKind
	Message string
	// Signature is set when the transaction was submitted but not confirmed
	Signature string
	Err       error
}

func (e *TransferError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

func newTransferError(kind ErrorKind, message string, err error) *TransferError {
	return &TransferError{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of a transfer error, or KindNetworkFailure for any other error
func KindOf(err error) ErrorKind {
	var te *TransferError
	if errors.As(err, &te) {
		return te.Kind
	}
	return KindNetworkFailure
}

// IsInvalidCredential checks if error is a credential failure
func IsInvalidCredential(err error) bool {
	return err != nil && KindOf(err) == KindInvalidCredential
}

// IsInvalidAddress checks if error is a recipient address failure
func IsInvalidAddress(err error) bool {
	return err != nil && KindOf(err) == KindInvalidAddress
}

// IsInvalidAmount checks if error is an amount failure
func IsInvalidAmount(err error) bool {
	return err != nil && KindOf(err) == KindInvalidAmount
}

// IsInsufficientFunds checks if error is a balance failure
func IsInsufficientFunds(err error) bool {
	return err != nil && KindOf(err) == KindInsufficientFunds
}
