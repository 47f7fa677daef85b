package gateway

import (
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"goalkick/internal/pkg/config"
	"goalkick/internal/pkg/errs"
	"goalkick/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	successCode  = "Success"
	maxBodyBytes = 64 << 10
)

var (
	ErrVerifyRequest = errs.New("verification request failed")
	ErrVerifyStatus  = errs.New("verification endpoint returned non-2xx status")
)

// Observer receives the duration of each verification call.
type Observer func(d time.Duration, verified bool, err error)

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithObserver(fn Observer) Option {
	return func(c *Client) { c.observe = fn }
}

// Client talks to the eSewa ePay endpoints. It serves both the checkout form
// and the server-to-server transaction verification.
type Client struct {
	cfg     config.GatewayConfig
	http    *http.Client
	observe Observer
}

var (
	_ commands.PaymentVerifier = (*Client)(nil)
	_ commands.CheckoutBuilder = (*Client)(nil)
)

func NewClient(cfg config.GatewayConfig, opts ...Option) *Client {
	c := &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.VerifyTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type transactionResponse struct {
	XMLName      xml.Name `xml:"response"`
	ResponseCode string   `xml:"response_code"`
}

func (c *Client) Verify(ctx context.Context, req commands.VerificationRequest) (*commands.Verification, error) {
	start := time.Now()
	v, err := c.verify(ctx, req)
	if c.observe != nil {
		c.observe(time.Since(start), v != nil && v.Verified, err)
	}
	return v, err
}

func (c *Client) verify(ctx context.Context, req commands.VerificationRequest) (*commands.Verification, error) {
	form := url.Values{}
	form.Set("amt", req.Amount.String())
	form.Set("rid", req.ExternalRef)
	form.Set("pid", req.OrderID.String())
	form.Set("scd", c.cfg.MerchantCode)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.VerifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "build verification request"), ErrVerifyRequest)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "post verification request"), ErrVerifyRequest)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			slog.Debug("failed to close verification response body", "error", cerr)
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "read verification response"), ErrVerifyRequest)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errs.Mark(errs.Newf("verification status %d", resp.StatusCode), ErrVerifyStatus)
	}

	code := responseCode(body)
	slog.Info("gateway verification answered",
		"ticket_id", req.OrderID,
		"reference", req.ExternalRef,
		"response_code", code)

	if code != successCode {
		reason := "gateway did not confirm the transaction"
		if code != "" {
			reason = "gateway answered " + code
		}
		return &commands.Verification{Verified: false, Raw: body, Reason: reason}, nil
	}
	return &commands.Verification{Verified: true, Raw: body}, nil
}

// responseCode extracts <response_code>. Bodies that are not well-formed XML
// fall back to a substring match on the exact success element.
func responseCode(body []byte) string {
	var tr transactionResponse
	if err := xml.Unmarshal(body, &tr); err == nil {
		return strings.TrimSpace(tr.ResponseCode)
	}
	if bytes.Contains(body, []byte("<response_code>"+successCode+"</response_code>")) {
		return successCode
	}
	return ""
}

func (c *Client) Checkout(ticketID uuid.UUID, amount decimal.Decimal) commands.Checkout {
	if !c.cfg.IsMerchant() {
		return commands.Checkout{
			Mode:       commands.CheckoutManual,
			PersonalID: c.cfg.PersonalID,
		}
	}

	zero := decimal.Zero.String()
	return commands.Checkout{
		Mode:       commands.CheckoutMerchant,
		PaymentURL: c.cfg.PaymentURL,
		Fields: map[string]string{
			"amt":   amount.String(),
			"psc":   zero,
			"pdc":   zero,
			"txAmt": zero,
			"tAmt":  amount.String(),
			"pid":   ticketID.String(),
			"scd":   c.cfg.MerchantCode,
			"su":    c.cfg.SuccessURL,
			"fu":    c.cfg.FailureURL,
		},
	}
}

// ParseAmount reads the amt query parameter of a gateway callback.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, errs.New("missing amount")
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, errs.Wrap(err, "invalid amount")
	}
	return d, nil
}
