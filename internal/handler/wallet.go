package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/AlexZinkM/devnet-transfer/internal/common"
	"github.com/AlexZinkM/devnet-transfer/internal/model"
	"github.com/AlexZinkM/devnet-transfer/solana"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/sirupsen/logrus"
)

const rpcTimeout = 10 * time.Second

// Cluster is the read-only RPC surface used by the wallet and health endpoints
type Cluster interface {
	GetBalance(ctx context.Context, owner solanago.PublicKey) (uint64, error)
	Health(ctx context.Context) (string, error)
	RPCURL() string
}

// WalletHandler reports on the sender wallet and the RPC endpoint
type WalletHandler struct {
	cluster Cluster
	sender  solanago.PublicKey
	// false when the sender credential could not be loaded at startup
	hasSender bool
	logger    logrus.FieldLogger
}

// NewWalletHandler creates a new WalletHandler. senderAddress may be empty.
func NewWalletHandler(cluster Cluster, senderAddress string, logger logrus.FieldLogger) (*WalletHandler, error) {
	if cluster == nil {
		return nil, errors.New("cluster is required")
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	h := &WalletHandler{
		cluster: cluster,
		logger:  logger.WithField("component", "wallet_handler"),
	}
	if senderAddress != "" {
		pk, err := solanago.PublicKeyFromBase58(senderAddress)
		if err != nil {
			return nil, fmt.Errorf("invalid sender address: %w", err)
		}
		h.sender = pk
		h.hasSender = true
	}
	return h, nil
}

// Wallet handles GET /api/wallet
// @Summary      Get sender wallet
// @Description  Returns the sender address, its SOL balance and a QR code of the address for funding
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.WalletResponse
// @Failure      502  {object}  model.ErrorResponse
// @Failure      503  {object}  model.ErrorResponse
// @Router       /api/wallet [get]
func (h *WalletHandler) Wallet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}
	if !h.hasSender {
		writeJSON(w, http.StatusServiceUnavailable, model.ErrorResponse{
			Error: "sender credential is not available",
			Code:  string(solana.KindInvalidCredential),
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), rpcTimeout)
	defer cancel()

	lamports, err := h.cluster.GetBalance(ctx, h.sender)
	if err != nil {
		h.logger.WithError(err).Warn("failed to read sender balance")
		writeJSON(w, http.StatusBadGateway, model.ErrorResponse{Error: err.Error(), Code: string(solana.KindNetworkFailure)})
		return
	}

	qr, err := solana.AddressQRCode(h.sender.String())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, model.WalletResponse{
		Address: h.sender.String(),
		SOL:     common.LamportsToSOL(lamports),
		QR:      qr,
	})
}

// Health handles GET /healthz
// @Summary      Health check
// @Description  Checks that the Solana RPC endpoint answers getVersion
// @Tags         health
// @Produce      json
// @Success      200  {object}  model.HealthResponse
// @Failure      503  {object}  model.HealthResponse
// @Router       /healthz [get]
func (h *WalletHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), rpcTimeout)
	defer cancel()

	resp := model.HealthResponse{RPCURL: h.cluster.RPCURL()}
	if h.hasSender {
		resp.SenderAddress = h.sender.String()
	}

	version, err := h.cluster.Health(ctx)
	if err != nil {
		h.logger.WithError(err).Warn("RPC health check failed")
		resp.Status = "unavailable"
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	resp.Status = "ok"
	resp.SolanaCore = version
	writeJSON(w, http.StatusOK, resp)
}
