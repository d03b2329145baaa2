package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

const defaultPollInterval = time.Second

// ErrTransactionFailed is returned when the cluster reports an execution error for the transaction
var ErrTransactionFailed = errors.New("transaction failed on chain")

// SolanaClient is a client for working with Solana RPC
type SolanaClient struct {
	rpcClient    *rpc.Client
	rpcURL       string
	pollInterval time.Duration
}

// NewSolanaClient creates a new Solana client for the given RPC endpoint.
// No request is made until the first call.
func NewSolanaClient(rpcURL string, pollInterval time.Duration) *SolanaClient {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &SolanaClient{
		rpcClient:    rpc.New(rpcURL),
		rpcURL:       rpcURL,
		pollInterval: pollInterval,
	}
}

// RPCURL returns the endpoint this client talks to
func (c *SolanaClient) RPCURL() string {
	return c.rpcURL
}

// GetBalance gets SOL balance in lamports
func (c *SolanaClient) GetBalance(ctx context.Context, owner solana.PublicKey) (uint64, error) {
	balance, err := c.rpcClient.GetBalance(ctx, owner, rpc.CommitmentConfirmed)
	if err != nil {
		return 0, fmt.Errorf("failed to get SOL balance: %w", err)
	}
	return balance.Value, nil
}

// LatestBlockhash gets the blockhash new transactions should reference
func (c *SolanaClient) LatestBlockhash(ctx context.Context) (solana.Hash, error) {
	recent, err := c.rpcClient.GetLatestBlockhash(ctx, rpc.CommitmentConfirmed)
	if err != nil {
		return solana.Hash{}, fmt.Errorf("failed to get recent blockhash: %w", err)
	}
	if recent == nil || recent.Value == nil {
		return solana.Hash{}, errors.New("failed to get recent blockhash: empty response")
	}
	return recent.Value.Blockhash, nil
}

// SendTransaction submits a signed transaction with preflight simulation enabled
func (c *SolanaClient) SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	sig, err := c.rpcClient.SendTransactionWithOpts(
		ctx,
		tx,
		rpc.TransactionOpts{
			SkipPreflight:       false,
			PreflightCommitment: rpc.CommitmentConfirmed,
		},
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to send transaction: %w", err)
	}
	return sig, nil
}

// WaitForConfirmation polls the signature status until the cluster reports it
// confirmed or finalized, reports an execution error, or ctx ends.
// RPC errors while polling do not end the wait: the transaction may still land.
func (c *SolanaClient) WaitForConfirmation(ctx context.Context, sig solana.Signature) error {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	var lastErr error
	for {
		done, err := c.checkConfirmed(ctx, sig)
		if done {
			return err
		}
		lastErr = err

		select {
		case <-ctx.Done():
			if lastErr != nil {
				return fmt.Errorf("confirmation of %s not observed: %w (last poll error: %v)", sig, ctx.Err(), lastErr)
			}
			return fmt.Errorf("confirmation of %s not observed: %w", sig, ctx.Err())
		case <-ticker.C:
		}
	}
}

// checkConfirmed reports done=true once the outcome of the transaction is known
func (c *SolanaClient) checkConfirmed(ctx context.Context, sig solana.Signature) (done bool, err error) {
	statuses, err := c.rpcClient.GetSignatureStatuses(ctx, false, sig)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get signature status: %w", err)
	}
	if len(statuses.Value) == 0 || statuses.Value[0] == nil {
		return false, nil
	}

	status := statuses.Value[0]
	if status.Err != nil {
		return true, fmt.Errorf("%w: %v", ErrTransactionFailed, status.Err)
	}

	switch status.ConfirmationStatus {
	case rpc.ConfirmationStatusConfirmed, rpc.ConfirmationStatusFinalized:
		return true, nil
	default:
		return false, nil
	}
}

// Health checks that the RPC endpoint answers and returns the node version
func (c *SolanaClient) Health(ctx context.Context) (string, error) {
	version, err := c.rpcClient.GetVersion(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to connect to Solana RPC: %w", err)
	}
	return version.SolanaCore, nil
}
