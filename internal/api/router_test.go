package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AlexZinkM/devnet-transfer/internal/form"
	"github.com/AlexZinkM/devnet-transfer/internal/handler"
	"github.com/AlexZinkM/devnet-transfer/solana"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSender struct{}

func (stubSender) Send(context.Context, string, string) (*solana.TransferResult, error) {
	return &solana.TransferResult{Signature: "sig", ExplorerURL: "https://explorer.solana.com/tx/sig?cluster=devnet"}, nil
}

type stubCluster struct{}

func (stubCluster) GetBalance(context.Context, solanago.PublicKey) (uint64, error) {
	return 1, nil
}

func (stubCluster) Health(context.Context) (string, error) {
	return "2.1.0", nil
}

func (stubCluster) RPCURL() string {
	return "http://rpc"
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger, _ := test.NewNullLogger()

	transferHandler, err := handler.NewTransferHandler(stubSender{}, form.NewState(0), logger)
	require.NoError(t, err)
	walletHandler, err := handler.NewWalletHandler(stubCluster{}, solanago.NewWallet().PublicKey().String(), logger)
	require.NoError(t, err)

	return SetupRouter(transferHandler, walletHandler)
}

func TestSetupRouter_Routes(t *testing.T) {
	router := newTestRouter(t)

	for _, tc := range []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/api/state", http.StatusOK},
		{http.MethodGet, "/api/wallet", http.StatusOK},
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodPost, "/reset", http.StatusSeeOther},
		{http.MethodGet, "/api/send", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nope", http.StatusNotFound},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}
