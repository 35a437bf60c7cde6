package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveStatus(t *testing.T) {
	m := New()
	m.ObserveStatus("Due")
	m.ObserveStatus("Due")
	m.ObserveStatus("Active")

	if got := testutil.ToFloat64(m.AccountStatus.WithLabelValues("Due")); got != 2 {
		t.Errorf("Due count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.AccountStatus.WithLabelValues("Active")); got != 1 {
		t.Errorf("Active count = %v, want 1", got)
	}

	var nilMetrics *Metrics
	nilMetrics.ObserveStatus("Due")
}

func TestHandler(t *testing.T) {
	m := New()
	m.RPCRequests.WithLabelValues("/billing.v1.InvoiceService/ComputeTotals", "ok").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "billing_rpc_requests_total") {
		t.Errorf("metrics output missing billing_rpc_requests_total:\n%s", body)
	}
}
