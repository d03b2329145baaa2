package model

import "time"

// FormStatus is the state of the transfer form
type FormStatus string

const (
	FormStatusIdle       FormStatus = "IDLE"
	FormStatusSubmitting FormStatus = "SUBMITTING"
	FormStatusCompleted  FormStatus = "COMPLETED"
	FormStatusFailed     FormStatus = "FAILED"
)

// FormState represents response for GET /api/state
type FormState struct {
	Address string         `json:"address"`
	Amount  string         `json:"amount"`
	Status  FormStatus     `json:"status"`
	Result  *SendResult    `json:"result,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

// SendResult is the outcome of the most recent successful submission
type SendResult struct {
	TxID        string    `json:"txId"`
	ExplorerURL string    `json:"explorerUrl"`
	CompletedAt time.Time `json:"completedAt"`
}
