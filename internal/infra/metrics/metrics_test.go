//go:build unit

package metrics_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"goalkick/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := metrics.New()

	m.Reservation("reserved")
	m.Reservation("reserved")
	m.Reservation("sold_out")
	m.Settlement("gateway", "PAID")
	m.Redemption("ENTER")
	m.Redemption("ALREADY_USED")
	m.TxRetry(1, errors.New("40001"))
	m.NotificationDropped()

	expected := `
# HELP goalkick_reservations_total Reservation attempts by result
# TYPE goalkick_reservations_total counter
goalkick_reservations_total{result="reserved"} 2
goalkick_reservations_total{result="sold_out"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "goalkick_reservations_total"))

	count, err := testutil.GatherAndCount(m.Registry(), "goalkick_redemptions_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = testutil.GatherAndCount(m.Registry(), "goalkick_tx_retries_total", "goalkick_notifications_dropped_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMetrics_VerifyObserved(t *testing.T) {
	m := metrics.New()

	m.VerifyObserved(120*time.Millisecond, true, nil)
	m.VerifyObserved(3*time.Second, false, errors.New("timeout"))
	m.VerifyObserved(80*time.Millisecond, false, nil)

	count, err := testutil.GatherAndCount(m.Registry(), "goalkick_gateway_verify_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.Settlement("manual", "PAID")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `goalkick_settlements_total{outcome="PAID",path="manual"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
