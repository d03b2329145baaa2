package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/AlexZinkM/devnet-transfer/internal/form"
	"github.com/AlexZinkM/devnet-transfer/internal/metrics"
	"github.com/AlexZinkM/devnet-transfer/internal/model"
	"github.com/AlexZinkM/devnet-transfer/solana"

	"github.com/sirupsen/logrus"
)

const (
	codeSubmissionInProgress = "SUBMISSION_IN_PROGRESS"
	codeCooldownActive       = "COOLDOWN_ACTIVE"
	codeBadRequest           = "BAD_REQUEST"
	codeInternal             = "INTERNAL"
)

// Transferer sends SOL; implemented by *solana.Sender
type Transferer interface {
	Send(ctx context.Context, address, amount string) (*solana.TransferResult, error)
}

// TransferHandler serves the transfer form and its JSON API
type TransferHandler struct {
	sender  Transferer
	form    *form.State
	metrics *metrics.TransferMetrics
	logger  logrus.FieldLogger
}

// NewTransferHandler creates a new TransferHandler
func NewTransferHandler(sender Transferer, state *form.State, logger logrus.FieldLogger) (*TransferHandler, error) {
	if sender == nil {
		return nil, errors.New("sender is required")
	}
	if state == nil {
		return nil, errors.New("form state is required")
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &TransferHandler{
		sender:  sender,
		form:    state,
		metrics: metrics.NewTransferMetrics(),
		logger:  logger.WithField("component", "transfer_handler"),
	}, nil
}

// Index handles GET /
func (h *TransferHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	h.render(w, http.StatusOK, newPageData(h.form.Snapshot()))
}

func (h *TransferHandler) render(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		h.logger.WithError(err).Error("failed to render form")
	}
}

// SubmitForm handles POST /send from the HTML form.
// The outcome is stored in the form state and shown after the redirect.
func (h *TransferHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	_, failure, status := h.send(r.Context(), r.PostFormValue("address"), r.PostFormValue("amount"))
	if status == http.StatusConflict {
		// the form state belongs to the running submission, so the refusal is rendered directly
		data := newPageData(h.form.Snapshot())
		data.Notice = failure.Error
		h.render(w, status, data)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Reset handles POST /reset
func (h *TransferHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	if err := h.form.Reset(); err != nil {
		h.logger.WithError(err).Debug("reset refused")
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Send handles POST /api/send
// @Summary      Send SOL
// @Description  Sends native SOL from the configured sender to the given devnet address and waits for confirmation
// @Tags         transfer
// @Accept       json
// @Produce      json
// @Param        request  body      model.SendRequest  true  "Transfer data"
// @Success      200      {object}  model.SendResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      402      {object}  model.ErrorResponse
// @Failure      409      {object}  model.ErrorResponse
// @Failure      502      {object}  model.ErrorResponse
// @Router       /api/send [post]
func (h *TransferHandler) Send(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Code: codeBadRequest})
		return
	}

	result, failure, status := h.send(r.Context(), req.ToAddress, req.Amount)
	if failure != nil {
		writeJSON(w, status, failure)
		return
	}

	writeJSON(w, http.StatusOK, model.SendResponse{
		TxID:        result.Signature,
		ExplorerURL: result.ExplorerURL,
	})
}

// State handles GET /api/state
// @Summary      Get form state
// @Description  Returns the current inputs, submission status and last outcome of the transfer form
// @Tags         transfer
// @Produce      json
// @Success      200  {object}  model.FormState
// @Router       /api/state [get]
func (h *TransferHandler) State(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, h.form.Snapshot())
}

// send runs one submission through the form state machine. On failure it
// returns the error body and the HTTP status for the JSON API.
func (h *TransferHandler) send(ctx context.Context, address, amount string) (*solana.TransferResult, *model.ErrorResponse, int) {
	if err := h.form.Begin(); err != nil {
		code := codeSubmissionInProgress
		if errors.Is(err, form.ErrCooldownActive) {
			code = codeCooldownActive
		}
		return nil, &model.ErrorResponse{Error: err.Error(), Code: code}, http.StatusConflict
	}
	h.form.SetAddress(address)
	h.form.SetAmount(amount)

	// A submitted transaction is waited for even if the client goes away
	ctx = context.WithoutCancel(ctx)

	start := time.Now()
	h.metrics.Started()

	// A panicking sender must not leave the form stuck in Submitting
	defer func() {
		if p := recover(); p != nil {
			failure := model.ErrorResponse{Error: "Transfer aborted by an internal error", Code: codeInternal}
			h.metrics.Finished(codeInternal, start)
			h.logger.WithField("panic", fmt.Sprint(p)).Error("transfer panicked")
			if ferr := h.form.Fail(failure); ferr != nil {
				h.logger.WithError(ferr).Error("failed to record transfer failure")
			}
			panic(p)
		}
	}()

	result, err := h.sender.Send(ctx, address, amount)
	if err != nil {
		failure := failureResponse(err)
		h.metrics.Finished(failure.Code, start)
		h.logger.WithError(err).WithField("code", failure.Code).Warn("transfer failed")
		if ferr := h.form.Fail(failure); ferr != nil {
			h.logger.WithError(ferr).Error("failed to record transfer failure")
		}
		return nil, &failure, statusForKind(solana.ErrorKind(failure.Code))
	}

	h.metrics.Finished(metrics.ResultSuccess, start)
	if ferr := h.form.Complete(result.Signature, result.ExplorerURL); ferr != nil {
		h.logger.WithError(ferr).Error("failed to record transfer result")
	}
	return result, nil, http.StatusOK
}

// failureResponse turns a Send error into the message shown to the user
func failureResponse(err error) model.ErrorResponse {
	var te *solana.TransferError
	if !errors.As(err, &te) {
		return model.ErrorResponse{Error: err.Error(), Code: string(solana.KindNetworkFailure)}
	}

	msg := te.Message
	if te.Kind == solana.KindNetworkFailure {
		msg = te.Error()
	}
	return model.ErrorResponse{Error: msg, Code: string(te.Kind), TxID: te.Signature}
}

func statusForKind(kind solana.ErrorKind) int {
	switch kind {
	case solana.KindInvalidAddress, solana.KindInvalidAmount:
		return http.StatusBadRequest
	case solana.KindInsufficientFunds:
		return http.StatusPaymentRequired
	case solana.KindInvalidCredential:
		return http.StatusInternalServerError
	default:
		return http.StatusBadGateway
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
