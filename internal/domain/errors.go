package domain

import (
	"errors"
	"fmt"
	"time"
)

// Error kinds. Every error returned by the services wraps exactly one of them.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
	ErrUpstream   = errors.New("upstream failure")
	ErrSuspended  = errors.New("account suspended")
)

var (
	ErrInvalidTerms       = fmt.Errorf("%w: unit and total price must be positive", ErrValidation)
	ErrInvalidAutoBid     = fmt.Errorf("%w: invalid auto-bid parameters", ErrValidation)
	ErrInvalidRating      = fmt.Errorf("%w: invalid rating value", ErrValidation)
	ErrInvalidPaymentData = fmt.Errorf("%w: invalid payment data", ErrValidation)
	ErrInvalidQuery       = fmt.Errorf("%w: invalid query parameters", ErrValidation)

	ErrRequestNotFound = fmt.Errorf("request %w", ErrNotFound)
	ErrBidNotFound     = fmt.Errorf("bid %w", ErrNotFound)
	ErrReceiptNotFound = fmt.Errorf("receipt %w", ErrNotFound)
	ErrDataMissing     = fmt.Errorf("payment data %w", ErrNotFound)

	ErrNotOwner = fmt.Errorf("%w: not the owner", ErrForbidden)

	ErrBidLocked       = fmt.Errorf("%w: bid is already accepted and cannot be modified", ErrConflict)
	ErrBidExists       = fmt.Errorf("%w: seller already has a bid on this request", ErrConflict)
	ErrAlreadyAccepted = fmt.Errorf("%w: another bid on this request is already accepted", ErrConflict)
	ErrBidNotPending   = fmt.Errorf("%w: bid is not pending", ErrConflict)
	ErrRequestClosed   = fmt.Errorf("%w: request is not open", ErrConflict)
	ErrBidNotAccepted  = fmt.Errorf("%w: bid is not awaiting payment", ErrConflict)
	ErrNotPaid         = fmt.Errorf("%w: only paid receipts can be completed", ErrConflict)
	ErrNotCompleted    = fmt.Errorf("%w: receipt must be completed before rating", ErrConflict)
	ErrAlreadyRated    = fmt.Errorf("%w: receipt is already rated", ErrConflict)

	ErrPaymentNotSucceeded = fmt.Errorf("%w: payment did not succeed", ErrUpstream)
)

// ErrReceiptCodeTaken is returned by storage when a generated receipt code collides.
var ErrReceiptCodeTaken = errors.New("receipt code already taken")

type AccountSuspendedError struct {
	Until time.Time
}

func (e *AccountSuspendedError) Error() string {
	return fmt.Sprintf("account suspended until %s", e.Until.UTC().Format(time.RFC3339))
}

func (e *AccountSuspendedError) Unwrap() error {
	return ErrSuspended
}

// Kind returns the stable name of the error kind wrapped by err.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "validation_error"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrUpstream):
		return "upstream_failure"
	case errors.Is(err, ErrSuspended):
		return "suspended_account"
	}
	return "internal"
}
