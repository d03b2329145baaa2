// Command transfer serves the devnet SOL transfer form.
//
// Usage: SOLANA_WALLET_SECRET_KEY='[...]' go run ./cmd/transfer
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/AlexZinkM/devnet-transfer/docs"
	"github.com/AlexZinkM/devnet-transfer/internal/api"
	"github.com/AlexZinkM/devnet-transfer/internal/client"
	"github.com/AlexZinkM/devnet-transfer/internal/config"
	"github.com/AlexZinkM/devnet-transfer/internal/credential"
	"github.com/AlexZinkM/devnet-transfer/internal/form"
	"github.com/AlexZinkM/devnet-transfer/internal/handler"
	"github.com/AlexZinkM/devnet-transfer/internal/logging"
	"github.com/AlexZinkM/devnet-transfer/internal/metrics"
	"github.com/AlexZinkM/devnet-transfer/solana"

	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := config.Init(); err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Get()

	logger := logging.NewLogger(logging.LogFormat(cfg.LogFormat), cfg.LogLevel)
	metrics.RegisterMetrics(logger)

	provider, err := newCredentialProvider()
	if err != nil {
		logger.Fatalf("failed to set up sender credential: %v", err)
	}

	rpcClient := client.NewSolanaClient(config.GetSolanaRPCURL(), cfg.ConfirmPollInterval)

	sender, err := solana.NewSender(
		func() solana.Network { return rpcClient },
		provider,
		solana.SenderConfig{
			ConfirmTimeout: cfg.ConfirmTimeout,
			Cluster:        cfg.ExplorerCluster,
			Logger:         logger,
		},
	)
	if err != nil {
		logger.Fatalf("failed to create sender: %v", err)
	}

	// The key is checked again on every send; here it only names the wallet
	senderAddress := ""
	if signer, err := provider.Load(); err != nil {
		logger.WithError(err).Warn("sender credential is invalid, transfers will fail until it is fixed")
	} else {
		senderAddress = signer.PublicKey().String()
		signer.Close()
		logger.WithFields(logrus.Fields{
			"address":  senderAddress,
			"explorer": solana.ExplorerAddressURL(senderAddress, cfg.ExplorerCluster),
		}).Info("sender wallet loaded")
	}

	transferHandler, err := handler.NewTransferHandler(sender, form.NewState(cfg.SendCooldown), logger)
	if err != nil {
		logger.Fatalf("failed to create transfer handler: %v", err)
	}
	walletHandler, err := handler.NewWalletHandler(rpcClient, senderAddress, logger)
	if err != nil {
		logger.Fatalf("failed to create wallet handler: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + config.GetPort(),
		Handler:           api.SetupRouter(transferHandler, walletHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.WithFields(logrus.Fields{
			"port": config.GetPort(),
			"rpc":  config.GetSolanaRPCURL(),
		}).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	// In-flight sends keep running until confirmation or CONFIRM_TIMEOUT
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout+cfg.ConfirmTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("failed to shut down server: %v", err)
	}
}

func newCredentialProvider() (credential.Provider, error) {
	if !config.Get().UsesWalletFile() {
		return credential.NewEnvKeyProvider(config.GetSolanaSecretKey()), nil
	}

	if err := config.PromptForPassword(); err != nil {
		return nil, err
	}
	return credential.NewFileProvider(config.GetSolanaFilePath(), config.GetSolanaPasswordBytes), nil
}
