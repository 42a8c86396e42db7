package penaltyservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/marketbid/internal/domain"
	"github.com/GlebRadaev/marketbid/internal/events"
)

const (
	StrikeWindow        = 30 * 24 * time.Hour
	SuspensionThreshold = 3
	SuspensionPeriod    = 7 * 24 * time.Hour

	ReasonNonPayment = "nonpayment"
)

type BidRepo interface {
	CancelForNonPayment(ctx context.Context, bidID string, now time.Time) (bool, error)
}

type RequestRepo interface {
	FindByID(ctx context.Context, requestID string) (*domain.Request, error)
}

type AccountRepo interface {
	// RecordStrike stores strike and returns the account's strikes including it. Calls for
	// one account must be serialised so every caller counts the strikes recorded before it.
	RecordStrike(ctx context.Context, strike *domain.Strike, cutoff time.Time) ([]domain.Strike, error)
	ExtendSuspension(ctx context.Context, accountID int, until time.Time) (time.Time, error)
}

type Service struct {
	bidRepo     BidRepo
	requestRepo RequestRepo
	accountRepo AccountRepo
	notifier    events.Notifier
	now         func() time.Time
}

func New(bidRepo BidRepo, requestRepo RequestRepo, accountRepo AccountRepo, notifier events.Notifier) *Service {
	return &Service{
		bidRepo:     bidRepo,
		requestRepo: requestRepo,
		accountRepo: accountRepo,
		notifier:    notifier,
		now:         time.Now,
	}
}

// ActiveStrikes keeps the strikes recorded within the trailing window ending at now.
func ActiveStrikes(strikes []domain.Strike, now time.Time) []domain.Strike {
	cutoff := now.Add(-StrikeWindow)
	active := make([]domain.Strike, 0, len(strikes))
	for _, s := range strikes {
		if s.CreatedAt.Before(cutoff) {
			continue
		}
		active = append(active, s)
	}
	return active
}

// ExpirePayment cancels an accepted bid whose payment window has lapsed and strikes its
// buyer. It reports whether this call performed the cancellation; repeated calls are no-ops.
// Penalty failures are logged and do not undo the cancellation.
func (s *Service) ExpirePayment(ctx context.Context, bid domain.Bid) (bool, error) {
	now := s.now()
	if !bid.PaymentOverdue(now) {
		return false, nil
	}

	cancelled, err := s.bidRepo.CancelForNonPayment(ctx, bid.ID, now)
	if err != nil {
		return false, err
	}
	if !cancelled {
		zap.L().Debug("bid already settled or cancelled", zap.String("bidID", bid.ID))
		return false, nil
	}
	zap.L().Info("bid cancelled for non-payment", zap.String("bidID", bid.ID))

	request, err := s.requestRepo.FindByID(ctx, bid.RequestID)
	if err != nil || request == nil {
		zap.L().Error("can't resolve buyer for strike", zap.String("bidID", bid.ID), zap.Error(err))
		return true, nil
	}

	s.notifier.Notify(ctx, events.Event{
		Type:      events.BidExpired,
		RequestID: bid.RequestID,
		BidID:     bid.ID,
		BuyerID:   request.BuyerID,
		SellerID:  bid.SellerID,
		At:        now,
	})

	if err := s.strike(ctx, request.BuyerID, bid.ID, now); err != nil {
		zap.L().Error("can't record strike", zap.Int("buyerID", request.BuyerID), zap.String("bidID", bid.ID), zap.Error(err))
	}
	return true, nil
}

func (s *Service) strike(ctx context.Context, buyerID int, bidID string, now time.Time) error {
	strike := domain.Strike{AccountID: buyerID, BidID: bidID, Reason: ReasonNonPayment, CreatedAt: now}
	strikes, err := s.accountRepo.RecordStrike(ctx, &strike, now.Add(-StrikeWindow))
	if err != nil {
		return err
	}

	active := ActiveStrikes(strikes, now)
	if len(active) < SuspensionThreshold {
		return nil
	}

	until, err := s.accountRepo.ExtendSuspension(ctx, buyerID, now.Add(SuspensionPeriod))
	if err != nil {
		return err
	}
	zap.L().Info("buyer suspended", zap.Int("buyerID", buyerID), zap.Int("strikes", len(active)), zap.Time("until", until))
	s.notifier.Notify(ctx, events.Event{
		Type:     events.AccountSuspended,
		BidID:    bidID,
		BuyerID:  buyerID,
		Deadline: &until,
		At:       now,
	})
	return nil
}
