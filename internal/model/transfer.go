package model

// SendRequest represents request for POST /api/send
type SendRequest struct {
	ToAddress string `json:"toAddress" example:"9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"`
	Amount    string `json:"amount" example:"0.05"`
}

// SendResponse represents response for POST /api/send
type SendResponse struct {
	TxID        string `json:"txId"`
	ExplorerURL string `json:"explorerUrl"`
}

// WalletResponse represents response for GET /api/wallet
type WalletResponse struct {
	Address string `json:"address"`
	SOL     string `json:"sol"`
	QR      string `json:"QR"` // base64 PNG of the address
}

// HealthResponse represents response for GET /healthz
type HealthResponse struct {
	Status        string `json:"status"`
	SolanaCore    string `json:"solanaCore,omitempty"`
	RPCURL        string `json:"rpcUrl"`
	SenderAddress string `json:"senderAddress,omitempty"`
}
