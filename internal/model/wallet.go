package model

// CWTFile represents the encrypted wallet file (.cwt) holding the sender key
type CWTFile struct {
	Network    string `json:"network"`
	Address    string `json:"address"`
	QR         string `json:"QR"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}

// WalletData represents decrypted wallet data
type WalletData struct {
	PrivateKey []byte `json:"privateKey"` // full 64-byte ed25519 key (base64 in JSON)
	CreatedAt  string `json:"createdAt"`
}
