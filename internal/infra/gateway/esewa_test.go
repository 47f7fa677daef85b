//go:build unit

package gateway_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"goalkick/internal/infra/gateway"
	"goalkick/internal/pkg/config"
	"goalkick/internal/pkg/errs"
	"goalkick/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*gateway.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.NewTestConfig().Gateway
	cfg.VerifyURL = srv.URL + "/epay/transrec"
	return gateway.NewClient(cfg), srv
}

func TestClient_Verify(t *testing.T) {
	orderID := uuid.New()
	req := commands.VerificationRequest{
		OrderID:     orderID,
		ExternalRef: "0007ABC",
		Amount:      decimal.NewFromInt(1000),
	}

	t.Run("success: posts form fields and accepts Success", func(t *testing.T) {
		var got url.Values
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
			body, _ := io.ReadAll(r.Body)
			got, _ = url.ParseQuery(string(body))
			_, _ = io.WriteString(w, "<response>\n<response_code>Success</response_code>\n</response>")
		})

		v, err := client.Verify(context.Background(), req)

		require.NoError(t, err)
		assert.True(t, v.Verified)
		assert.Equal(t, "1000", got.Get("amt"))
		assert.Equal(t, "0007ABC", got.Get("rid"))
		assert.Equal(t, orderID.String(), got.Get("pid"))
		assert.Equal(t, "EPAYTEST", got.Get("scd"))
		assert.Contains(t, string(v.Raw), "Success")
	})

	t.Run("failure: any other response code is not verified", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, "<response><response_code>failure</response_code></response>")
		})

		v, err := client.Verify(context.Background(), req)

		require.NoError(t, err)
		assert.False(t, v.Verified)
		assert.Equal(t, "gateway answered failure", v.Reason)
	})

	t.Run("failure: malformed body without success element", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, "not xml at all")
		})

		v, err := client.Verify(context.Background(), req)

		require.NoError(t, err)
		assert.False(t, v.Verified)
	})

	t.Run("error: non-2xx status", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		v, err := client.Verify(context.Background(), req)

		require.Error(t, err)
		assert.Nil(t, v)
		assert.True(t, errs.Is(err, gateway.ErrVerifyStatus))
	})

	t.Run("error: timeout is a transport failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = io.WriteString(w, "<response><response_code>Success</response_code></response>")
		}))
		t.Cleanup(srv.Close)

		cfg := config.NewTestConfig().Gateway
		cfg.VerifyURL = srv.URL
		cfg.VerifyTimeout = 20 * time.Millisecond

		var observed bool
		client := gateway.NewClient(cfg, gateway.WithObserver(func(_ time.Duration, verified bool, err error) {
			observed = true
			assert.False(t, verified)
			assert.Error(t, err)
		}))

		_, err := client.Verify(context.Background(), req)

		require.Error(t, err)
		assert.True(t, errs.Is(err, gateway.ErrVerifyRequest))
		assert.True(t, observed)
	})
}

func TestClient_Checkout(t *testing.T) {
	ticketID := uuid.New()
	amount := decimal.NewFromInt(1000)

	t.Run("manual mode returns the personal wallet id", func(t *testing.T) {
		client := gateway.NewClient(config.NewTestConfig().Gateway)

		co := client.Checkout(ticketID, amount)

		assert.Equal(t, commands.CheckoutManual, co.Mode)
		assert.Equal(t, "9800000000", co.PersonalID)
		assert.Empty(t, co.Fields)
	})

	t.Run("merchant mode builds the ePay form", func(t *testing.T) {
		cfg := config.NewTestConfig().Gateway
		cfg.Mode = "merchant"
		client := gateway.NewClient(cfg)

		co := client.Checkout(ticketID, amount)

		assert.Equal(t, commands.CheckoutMerchant, co.Mode)
		assert.Equal(t, cfg.PaymentURL, co.PaymentURL)
		assert.Equal(t, map[string]string{
			"amt":   "1000",
			"psc":   "0",
			"pdc":   "0",
			"txAmt": "0",
			"tAmt":  "1000",
			"pid":   ticketID.String(),
			"scd":   "EPAYTEST",
			"su":    cfg.SuccessURL,
			"fu":    cfg.FailureURL,
		}, co.Fields)
	})
}

func TestParseAmount(t *testing.T) {
	d, err := gateway.ParseAmount(" 1000.00 ")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromInt(1000)))

	_, err = gateway.ParseAmount("")
	assert.Error(t, err)

	_, err = gateway.ParseAmount("abc")
	assert.Error(t, err)
}
