package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind string
	}{
		{name: "invalid terms", err: ErrInvalidTerms, kind: "validation_error"},
		{name: "wrapped not found", err: fmt.Errorf("load: %w", ErrBidNotFound), kind: "not_found"},
		{name: "not owner", err: ErrNotOwner, kind: "forbidden"},
		{name: "already accepted", err: ErrAlreadyAccepted, kind: "conflict"},
		{name: "payment failed", err: ErrPaymentNotSucceeded, kind: "upstream_failure"},
		{name: "suspended", err: &AccountSuspendedError{Until: time.Now()}, kind: "suspended_account"},
		{name: "unknown", err: errors.New("boom"), kind: "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, Kind(tt.err))
		})
	}
}

func TestBidStatusLocked(t *testing.T) {
	assert.False(t, BidPending.Locked())
	assert.False(t, BidCancelledNonPayment.Locked())
	assert.True(t, BidAcceptedPendingPayment.Locked())
	assert.True(t, BidPaid.Locked())
	assert.True(t, BidCompleted.Locked())
}

func TestBidPaymentOverdue(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)

	assert.True(t, (&Bid{Status: BidAcceptedPendingPayment, PaymentDueAt: &past}).PaymentOverdue(now))
	assert.False(t, (&Bid{Status: BidAcceptedPendingPayment, PaymentDueAt: &future}).PaymentOverdue(now))
	assert.False(t, (&Bid{Status: BidAcceptedPendingPayment}).PaymentOverdue(now))
	assert.False(t, (&Bid{Status: BidCancelledNonPayment, PaymentDueAt: &past}).PaymentOverdue(now))
}

func TestReceiptPaymentMethod(t *testing.T) {
	assert.Equal(t, "VISA •••• 4242", (&Receipt{CardBrand: "VISA", CardLast4: "4242"}).PaymentMethod())
	assert.Equal(t, "", (&Receipt{CardBrand: "VISA"}).PaymentMethod())
}
