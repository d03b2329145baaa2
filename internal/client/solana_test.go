package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRPC answers JSON-RPC calls from a table of method -> result producers
type fakeRPC struct {
	mu      sync.Mutex
	calls   map[string]int
	results map[string]func(call int) any
}

func newFakeRPC(t *testing.T, results map[string]func(call int) any) (*fakeRPC, *httptest.Server) {
	f := &fakeRPC{calls: map[string]int{}, results: results}
	srv := httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakeRPC) serve(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID     any    `json:"id"`
		Method string `json:"method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.calls[req.Method]++
	call := f.calls[req.Method]
	produce, ok := f.results[req.Method]
	f.mu.Unlock()

	resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
	if ok {
		resp["result"] = produce(call)
	} else {
		resp["error"] = map[string]any{"code": -32601, "message": "Method not found"}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (f *fakeRPC) count(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func statusResult(status any) any {
	return map[string]any{
		"context": map[string]any{"slot": 10},
		"value":   []any{status},
	}
}

func TestSolanaClient_GetBalance(t *testing.T) {
	_, srv := newFakeRPC(t, map[string]func(int) any{
		"getBalance": func(int) any {
			return map[string]any{"context": map[string]any{"slot": 1}, "value": 1_500_000_000}
		},
	})

	c := NewSolanaClient(srv.URL, time.Millisecond)
	balance, err := c.GetBalance(context.Background(), solana.NewWallet().PublicKey())
	require.NoError(t, err)
	assert.Equal(t, uint64(1_500_000_000), balance)
	assert.Equal(t, srv.URL, c.RPCURL())
}

func TestSolanaClient_LatestBlockhash(t *testing.T) {
	hash := solana.HashFromBytes(make([]byte, 32))
	_, srv := newFakeRPC(t, map[string]func(int) any{
		"getLatestBlockhash": func(int) any {
			return map[string]any{
				"context": map[string]any{"slot": 1},
				"value":   map[string]any{"blockhash": hash.String(), "lastValidBlockHeight": 100},
			}
		},
	})

	got, err := NewSolanaClient(srv.URL, time.Millisecond).LatestBlockhash(context.Background())
	require.NoError(t, err)
	assert.Equal(t, hash, got)
}

func TestSolanaClient_WaitForConfirmation(t *testing.T) {
	f, srv := newFakeRPC(t, map[string]func(int) any{
		"getSignatureStatuses": func(call int) any {
			switch call {
			case 1:
				return statusResult(nil)
			case 2:
				return statusResult(map[string]any{"slot": 10, "confirmations": 0, "err": nil, "confirmationStatus": "processed"})
			default:
				return statusResult(map[string]any{"slot": 10, "confirmations": 1, "err": nil, "confirmationStatus": "confirmed"})
			}
		},
	})

	err := NewSolanaClient(srv.URL, time.Millisecond).WaitForConfirmation(context.Background(), solana.Signature{1})
	require.NoError(t, err)
	assert.Equal(t, 3, f.count("getSignatureStatuses"))
}

func TestSolanaClient_WaitForConfirmation_OnChainError(t *testing.T) {
	_, srv := newFakeRPC(t, map[string]func(int) any{
		"getSignatureStatuses": func(int) any {
			return statusResult(map[string]any{
				"slot":               10,
				"confirmations":      1,
				"err":                map[string]any{"InstructionError": []any{0, "Custom"}},
				"confirmationStatus": "confirmed",
			})
		},
	})

	err := NewSolanaClient(srv.URL, time.Millisecond).WaitForConfirmation(context.Background(), solana.Signature{1})
	assert.ErrorIs(t, err, ErrTransactionFailed)
}

func TestSolanaClient_WaitForConfirmation_Deadline(t *testing.T) {
	_, srv := newFakeRPC(t, map[string]func(int) any{
		"getSignatureStatuses": func(int) any { return statusResult(nil) },
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := NewSolanaClient(srv.URL, 5*time.Millisecond).WaitForConfirmation(ctx, solana.Signature{1})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSolanaClient_Health(t *testing.T) {
	_, srv := newFakeRPC(t, map[string]func(int) any{
		"getVersion": func(int) any { return map[string]any{"solana-core": "2.1.0", "feature-set": 1} },
	})

	version, err := NewSolanaClient(srv.URL, 0).Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2.1.0", version)
}

func TestSolanaClient_RPCError(t *testing.T) {
	_, srv := newFakeRPC(t, nil)

	_, err := NewSolanaClient(srv.URL, 0).GetBalance(context.Background(), solana.NewWallet().PublicKey())
	assert.ErrorContains(t, err, "failed to get SOL balance")
}
