package api

import (
	"net/http"

	"github.com/AlexZinkM/devnet-transfer/internal/handler"
	"github.com/AlexZinkM/devnet-transfer/internal/metrics"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter(transferHandler *handler.TransferHandler, walletHandler *handler.WalletHandler) http.Handler {
	mux := http.NewServeMux()

	handle := func(path string, h http.HandlerFunc) {
		mux.Handle(path, metrics.HTTPMiddleware(path, h))
	}

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)
	mux.Handle("/metrics", metrics.Handler())

	// Transfer form
	handle("/", transferHandler.Index)
	handle("/send", transferHandler.SubmitForm)
	handle("/reset", transferHandler.Reset)

	// JSON API
	handle("/api/send", transferHandler.Send)
	handle("/api/state", transferHandler.State)
	handle("/api/wallet", walletHandler.Wallet)
	handle("/healthz", walletHandler.Health)

	return mux
}
