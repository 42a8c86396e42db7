package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/marketbid/internal/domain"
	"github.com/GlebRadaev/marketbid/pkg/utils"
)

func TestRespond(t *testing.T) {
	until := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantKind    string
		wantMessage string
		wantUntil   *time.Time
	}{
		{
			name:        "Validation",
			err:         domain.ErrInvalidTerms,
			wantCode:    http.StatusBadRequest,
			wantKind:    "validation_error",
			wantMessage: domain.ErrInvalidTerms.Error(),
		},
		{
			name:        "Not found",
			err:         domain.ErrBidNotFound,
			wantCode:    http.StatusNotFound,
			wantKind:    "not_found",
			wantMessage: "bid not found",
		},
		{
			name:     "Forbidden",
			err:      domain.ErrNotOwner,
			wantCode: http.StatusForbidden,
			wantKind: "forbidden",
		},
		{
			name:     "Conflict",
			err:      domain.ErrAlreadyAccepted,
			wantCode: http.StatusConflict,
			wantKind: "conflict",
		},
		{
			name:     "Upstream",
			err:      fmt.Errorf("%w: %w", domain.ErrUpstream, errors.New("gateway down")),
			wantCode: http.StatusBadGateway,
			wantKind: "upstream_failure",
		},
		{
			name:      "Suspended",
			err:       &domain.AccountSuspendedError{Until: until},
			wantCode:  http.StatusForbidden,
			wantKind:  "suspended_account",
			wantUntil: &until,
		},
		{
			name:        "Unknown error",
			err:         errors.New("connection reset"),
			wantCode:    http.StatusInternalServerError,
			wantKind:    "internal",
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			Respond(w, tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantCode, Status(tt.err))

			var resp utils.Response
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.wantKind, resp.Error)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, resp.Message)
			}
			if tt.wantUntil != nil {
				require.NotNil(t, resp.SuspendedUntil)
				assert.True(t, tt.wantUntil.Equal(*resp.SuspendedUntil))
			} else {
				assert.Nil(t, resp.SuspendedUntil)
			}
		})
	}
}
