package model

// ErrorResponse is the consistent JSON structure for all API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	// TxID is set when a transaction was submitted but its confirmation is unknown
	TxID string `json:"txId,omitempty"`
}
