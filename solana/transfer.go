package solana

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlexZinkM/devnet-transfer/internal/common"
	"github.com/AlexZinkM/devnet-transfer/internal/credential"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/sirupsen/logrus"
)

const defaultConfirmTimeout = 60 * time.Second

// Network is the part of the Solana RPC surface a transfer needs
type Network interface {
	GetBalance(ctx context.Context, owner solana.PublicKey) (uint64, error)
	LatestBlockhash(ctx context.Context) (solana.Hash, error)
	SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error)
	WaitForConfirmation(ctx context.Context, sig solana.Signature) error
}

// Connector opens a connection to the cluster. It must not perform I/O.
type Connector func() Network

// SenderConfig holds the optional knobs of a Sender
type SenderConfig struct {
	// ConfirmTimeout bounds the network part of a send (balance through confirmation)
	ConfirmTimeout time.Duration
	// Cluster is used for explorer links ("devnet", "testnet", "mainnet-beta")
	Cluster string
	Logger  logrus.FieldLogger
}

// Sender moves native SOL from the configured sender to a recipient
type Sender struct {
	connect        Connector
	credentials    credential.Provider
	confirmTimeout time.Duration
	cluster        string
	logger         logrus.FieldLogger
}

// TransferResult describes a confirmed transfer
type TransferResult struct {
	Signature   string
	From        string
	To          string
	Lamports    uint64
	ExplorerURL string
}

// NewSender creates a Sender. connect and credentials are required.
func NewSender(connect Connector, credentials credential.Provider, cfg SenderConfig) (*Sender, error) {
	if connect == nil {
		return nil, errors.New("connector is required")
	}
	if credentials == nil {
		return nil, errors.New("credential provider is required")
	}

	if cfg.ConfirmTimeout <= 0 {
		cfg.ConfirmTimeout = defaultConfirmTimeout
	}
	if cfg.Cluster == "" {
		cfg.Cluster = ClusterDevnet
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}

	return &Sender{
		connect:        connect,
		credentials:    credentials,
		confirmTimeout: cfg.ConfirmTimeout,
		cluster:        cfg.Cluster,
		logger:         cfg.Logger,
	}, nil
}

// Send transfers amount SOL (decimal text) to address and waits for
// confirmed commitment. Checks run in a fixed order: credential, recipient,
// amount, balance. Every failure is a *TransferError.
func (s *Sender) Send(ctx context.Context, address, amount string) (*TransferResult, error) {
	network := s.connect()

	signer, err := s.credentials.Load()
	if err != nil {
		return nil, newTransferError(KindInvalidCredential, credentialMessage(err), err)
	}
	defer signer.Close()

	to, err := ParseRecipient(address)
	if err != nil {
		return nil, newTransferError(KindInvalidAddress, msgInvalidAddress, err)
	}

	lamports, err := common.SOLToLamports(amount)
	if err != nil {
		return nil, newTransferError(KindInvalidAmount, amountMessage(err), err)
	}

	from := signer.PublicKey()
	log := s.logger.WithFields(logrus.Fields{
		"from":     from.String(),
		"to":       to.String(),
		"lamports": lamports,
	})

	ctx, cancel := context.WithTimeout(ctx, s.confirmTimeout)
	defer cancel()

	balance, err := network.GetBalance(ctx, from)
	if err != nil {
		return nil, newTransferError(KindNetworkFailure, "failed to check balance", err)
	}
	if balance < lamports {
		log.WithField("balance", balance).Info("transfer refused: insufficient funds")
		return nil, newTransferError(KindInsufficientFunds, msgInsufficientFunds,
			fmt.Errorf("have %s SOL, need %s SOL", common.LamportsToSOL(balance), common.LamportsToSOL(lamports)))
	}

	transferInstruction := system.NewTransferInstruction(lamports, from, to).Build()

	sig, err := s.submit(ctx, network, signer, transferInstruction)
	if err != nil {
		return nil, err
	}
	log = log.WithField("txId", sig.String())
	log.Info("transaction submitted, waiting for confirmation")

	if err := network.WaitForConfirmation(ctx, sig); err != nil {
		// The transaction may still land; the signature lets the user look it up
		te := newTransferError(KindNetworkFailure, "transaction was not confirmed", err)
		te.Signature = sig.String()
		return nil, te
	}

	log.Info("transaction confirmed")

	return &TransferResult{
		Signature:   sig.String(),
		From:        from.String(),
		To:          to.String(),
		Lamports:    lamports,
		ExplorerURL: ExplorerTxURL(sig.String(), s.cluster),
	}, nil
}

// submit wraps the instruction in a transaction, signs it and sends it once
func (s *Sender) submit(ctx context.Context, network Network, signer credential.Signer, instruction solana.Instruction) (solana.Signature, error) {
	blockhash, err := network.LatestBlockhash(ctx)
	if err != nil {
		return solana.Signature{}, newTransferError(KindNetworkFailure, "failed to get recent blockhash", err)
	}

	tx, err := solana.NewTransaction(
		[]solana.Instruction{instruction},
		blockhash,
		solana.TransactionPayer(signer.PublicKey()),
	)
	if err != nil {
		return solana.Signature{}, newTransferError(KindNetworkFailure, "failed to create transaction", err)
	}

	message, err := tx.Message.MarshalBinary()
	if err != nil {
		return solana.Signature{}, newTransferError(KindNetworkFailure, "failed to encode transaction", err)
	}

	// The payer is the only signer of a system transfer
	signature, err := signer.Sign(message)
	if err != nil {
		return solana.Signature{}, newTransferError(KindNetworkFailure, "failed to sign transaction", err)
	}
	tx.Signatures = []solana.Signature{signature}

	sig, err := network.SendTransaction(ctx, tx)
	if err != nil {
		return solana.Signature{}, newTransferError(KindNetworkFailure, "failed to send transaction", err)
	}
	return sig, nil
}
