package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMiddleware(t *testing.T) {
	h := HTTPMiddleware("/boom", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	errorsBefore := testutil.ToFloat64(httpErrorsTotal.WithLabelValues(http.MethodPost, "/boom", "502"))
	requestsBefore := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodPost, "/boom", "502"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/boom?x=1", nil))

	assert.Equal(t, errorsBefore+1, testutil.ToFloat64(httpErrorsTotal.WithLabelValues(http.MethodPost, "/boom", "502")))
	assert.Equal(t, requestsBefore+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodPost, "/boom", "502")))
}

func TestHTTPMiddleware_DefaultStatus(t *testing.T) {
	h := HTTPMiddleware("/ok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "fine")
	}))
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/ok", "200"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/ok", "200")))
}

func TestTransferMetrics(t *testing.T) {
	m := NewTransferMetrics()

	m.Started()
	assert.Equal(t, float64(1), testutil.ToFloat64(transferInProgress))

	before := testutil.ToFloat64(transfersTotal.WithLabelValues("INSUFFICIENT_FUNDS"))
	m.Finished("INSUFFICIENT_FUNDS", time.Now())
	assert.Equal(t, float64(0), testutil.ToFloat64(transferInProgress))
	assert.Equal(t, before+1, testutil.ToFloat64(transfersTotal.WithLabelValues("INSUFFICIENT_FUNDS")))
}

func TestRegisterMetrics_Twice(t *testing.T) {
	logger, hook := test.NewNullLogger()

	RegisterMetrics(logger)
	RegisterMetrics(logger)

	for _, entry := range hook.AllEntries() {
		assert.NotContains(t, entry.Message, "Failed to register")
	}

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "devnet_transfer_sender_transfer_in_progress"))
}
