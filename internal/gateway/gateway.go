// Package gateway is the client of the external charge processor.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/marketbid/pkg/clients"
	"github.com/GlebRadaev/marketbid/pkg/money"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1

	StatusSucceeded = "succeeded"
)

var (
	ErrChargeNotFound = errors.New("charge not found")
	ErrUnavailable    = errors.New("charge gateway unavailable")
	ErrRejected       = errors.New("charge gateway rejected request")
)

type PaymentMethod struct {
	Brand string `json:"brand"`
	Last4 string `json:"last4"`
}

type Charge struct {
	ID             string            `json:"id"`
	Status         string            `json:"status"`
	AmountReceived int64             `json:"amount_received"`
	Currency       string            `json:"currency"`
	PaymentMethod  PaymentMethod     `json:"payment_method"`
	Metadata       map[string]string `json:"metadata"`
}

func (c *Charge) Succeeded() bool {
	return c.Status == StatusSucceeded
}

// Received returns the captured amount in currency units.
func (c *Charge) Received() decimal.Decimal {
	return money.FromCents(c.AmountReceived)
}

type ChargeRequest struct {
	Amount         decimal.Decimal
	Currency       string
	PayerRef       string
	MethodRef      string
	IdempotencyKey string
	Metadata       map[string]string
}

type createChargeBody struct {
	Amount    int64             `json:"amount"`
	Currency  string            `json:"currency"`
	PayerRef  string            `json:"payer_ref"`
	MethodRef string            `json:"method_ref"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

type Client struct {
	url           string
	apiKey        string
	client        clients.HTTPClientI
	retryInterval time.Duration
}

func New(baseURL, apiKey string, client clients.HTTPClientI) *Client {
	return &Client{
		url:           baseURL,
		apiKey:        apiKey,
		client:        client,
		retryInterval: retryInterval,
	}
}

func (c *Client) headers(idempotencyKey string) http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		h.Set("Authorization", "Bearer "+c.apiKey)
	}
	if idempotencyKey != "" {
		h.Set("Idempotency-Key", idempotencyKey)
	}
	return h
}

func (c *Client) CreateCharge(ctx context.Context, req ChargeRequest) (*Charge, error) {
	body, err := json.Marshal(createChargeBody{
		Amount:    money.Cents(req.Amount),
		Currency:  req.Currency,
		PayerRef:  req.PayerRef,
		MethodRef: req.MethodRef,
		Metadata:  req.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode charge: %w", err)
	}

	endpoint := c.url + "/v1/charges"
	headers := c.headers(req.IdempotencyKey)
	statusCode, respBody, err := c.call(ctx, endpoint, func() (int, []byte, http.Header, error) {
		return c.client.Post(endpoint, headers, body)
	})
	if err != nil {
		return nil, err
	}

	switch statusCode {
	case http.StatusOK, http.StatusCreated, http.StatusPaymentRequired:
		return decodeCharge(respBody)
	default:
		zap.L().Error("Unexpected status code", zap.Int("status", statusCode), zap.String("endpoint", endpoint))
		return nil, fmt.Errorf("%w: status %d", ErrRejected, statusCode)
	}
}

func (c *Client) RetrieveCharge(ctx context.Context, externalRef string) (*Charge, error) {
	endpoint := c.url + "/v1/charges/" + url.PathEscape(externalRef)
	headers := c.headers("")
	statusCode, respBody, err := c.call(ctx, endpoint, func() (int, []byte, http.Header, error) {
		return c.client.Get(endpoint, headers)
	})
	if err != nil {
		return nil, err
	}

	switch statusCode {
	case http.StatusOK:
		return decodeCharge(respBody)
	case http.StatusNotFound:
		return nil, ErrChargeNotFound
	default:
		zap.L().Error("Unexpected status code", zap.Int("status", statusCode), zap.String("endpoint", endpoint))
		return nil, fmt.Errorf("%w: status %d", ErrRejected, statusCode)
	}
}

// call retries transport errors, 5xx and 429 responses.
func (c *Client) call(ctx context.Context, endpoint string, do func() (int, []byte, http.Header, error)) (int, []byte, error) {
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return 0, nil, err
		}

		statusCode, respBody, respHeaders, err := do()
		wait := c.retryInterval * time.Duration(attempt)
		switch {
		case err != nil:
			lastErr = err
		case statusCode == http.StatusTooManyRequests:
			lastErr = fmt.Errorf("rate limited")
			if seconds, convErr := strconv.Atoi(respHeaders.Get("Retry-After")); convErr == nil {
				wait = time.Duration(seconds) * time.Second
			}
			zap.L().Warn("Rate limit detected, retrying",
				zap.String("endpoint", endpoint),
				zap.Int("attempt", attempt),
				zap.Duration("retryAfter", wait),
			)
		case statusCode >= http.StatusInternalServerError:
			lastErr = fmt.Errorf("status %d", statusCode)
		default:
			return statusCode, respBody, nil
		}

		if attempt < maxRetries {
			if err := sleep(ctx, wait); err != nil {
				return 0, nil, err
			}
		}
	}
	return 0, nil, fmt.Errorf("%w after %d retries: %w", ErrUnavailable, maxRetries, lastErr)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func decodeCharge(body []byte) (*Charge, error) {
	var charge Charge
	if err := json.Unmarshal(body, &charge); err != nil {
		return nil, fmt.Errorf("failed to parse response body: %w", err)
	}
	return &charge, nil
}
