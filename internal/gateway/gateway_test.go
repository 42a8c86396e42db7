package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/marketbid/pkg/clients"
)

func newTestClient(t *testing.T) (*Client, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	httpClient := clients.NewMockHTTPClientI(ctrl)
	c := New("http://gateway", "secret", httpClient)
	c.retryInterval = time.Millisecond
	return c, httpClient
}

func TestClient_CreateCharge_Server(t *testing.T) {
	var got createChargeBody
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/charges", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "bid-1", r.Header.Get("Idempotency-Key"))
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"ch_1","status":"succeeded","amount_received":97200,"currency":"usd"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "secret", clients.NewHTTPClient())
	charge, err := c.CreateCharge(context.Background(), ChargeRequest{
		Amount:         decimal.RequireFromString("972.00"),
		Currency:       "usd",
		PayerRef:       "7",
		MethodRef:      "pm_card",
		IdempotencyKey: "bid-1",
		Metadata:       map[string]string{"bid_id": "bid-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ch_1", charge.ID)
	assert.True(t, charge.Succeeded())
	assert.True(t, charge.Received().Equal(decimal.RequireFromString("972")))

	assert.Equal(t, int64(97200), got.Amount)
	assert.Equal(t, "pm_card", got.MethodRef)
	assert.Equal(t, "bid-1", got.Metadata["bid_id"])
}

func TestClient_RetrieveCharge(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(m *clients.MockHTTPClientI)
		wantID    string
		wantBrand string
		wantErr   error
	}{
		{
			name: "succeeded charge",
			setup: func(m *clients.MockHTTPClientI) {
				m.EXPECT().Get("http://gateway/v1/charges/ch_1", gomock.Any()).
					Return(http.StatusOK, []byte(`{"id":"ch_1","status":"succeeded","payment_method":{"brand":"VISA","last4":"4242"},"metadata":{"bid_id":"b1"}}`), nil, nil)
			},
			wantID:    "ch_1",
			wantBrand: "VISA",
		},
		{
			name: "not found",
			setup: func(m *clients.MockHTTPClientI) {
				m.EXPECT().Get(gomock.Any(), gomock.Any()).Return(http.StatusNotFound, nil, nil, nil)
			},
			wantErr: ErrChargeNotFound,
		},
		{
			name: "retries server errors then succeeds",
			setup: func(m *clients.MockHTTPClientI) {
				gomock.InOrder(
					m.EXPECT().Get(gomock.Any(), gomock.Any()).Return(http.StatusBadGateway, nil, nil, nil),
					m.EXPECT().Get(gomock.Any(), gomock.Any()).Return(0, nil, nil, errors.New("connection reset")),
					m.EXPECT().Get(gomock.Any(), gomock.Any()).Return(http.StatusOK, []byte(`{"id":"ch_1","status":"processing"}`), nil, nil),
				)
			},
			wantID: "ch_1",
		},
		{
			name: "gives up after retries",
			setup: func(m *clients.MockHTTPClientI) {
				m.EXPECT().Get(gomock.Any(), gomock.Any()).Return(http.StatusServiceUnavailable, nil, nil, nil).Times(maxRetries)
			},
			wantErr: ErrUnavailable,
		},
		{
			name: "honours retry after on rate limit",
			setup: func(m *clients.MockHTTPClientI) {
				headers := http.Header{}
				headers.Set("Retry-After", "0")
				gomock.InOrder(
					m.EXPECT().Get(gomock.Any(), gomock.Any()).Return(http.StatusTooManyRequests, nil, headers, nil),
					m.EXPECT().Get(gomock.Any(), gomock.Any()).Return(http.StatusOK, []byte(`{"id":"ch_2","status":"succeeded"}`), nil, nil),
				)
			},
			wantID: "ch_2",
		},
		{
			name: "unexpected status",
			setup: func(m *clients.MockHTTPClientI) {
				m.EXPECT().Get(gomock.Any(), gomock.Any()).Return(http.StatusUnauthorized, nil, nil, nil)
			},
			wantErr: ErrRejected,
		},
		{
			name: "malformed body",
			setup: func(m *clients.MockHTTPClientI) {
				m.EXPECT().Get(gomock.Any(), gomock.Any()).Return(http.StatusOK, []byte(`{`), nil, nil)
			},
			wantErr: errors.New("failed to parse response body"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, httpClient := newTestClient(t)
			tt.setup(httpClient)

			charge, err := c.RetrieveCharge(context.Background(), "ch_1")
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrChargeNotFound) || errors.Is(tt.wantErr, ErrUnavailable) || errors.Is(tt.wantErr, ErrRejected) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.Contains(t, err.Error(), tt.wantErr.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, charge.ID)
			assert.Equal(t, tt.wantBrand, charge.PaymentMethod.Brand)
		})
	}
}

func TestClient_CreateCharge_Declined(t *testing.T) {
	c, httpClient := newTestClient(t)
	httpClient.EXPECT().Post("http://gateway/v1/charges", gomock.Any(), gomock.Any()).
		Return(http.StatusPaymentRequired, []byte(`{"id":"ch_3","status":"failed"}`), nil, nil)

	charge, err := c.CreateCharge(context.Background(), ChargeRequest{Amount: decimal.NewFromInt(10), Currency: "usd"})
	require.NoError(t, err)
	assert.False(t, charge.Succeeded())
}

func TestClient_ContextCancelled(t *testing.T) {
	c, _ := newTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.RetrieveCharge(ctx, "ch_1")
	assert.ErrorIs(t, err, context.Canceled)
}
