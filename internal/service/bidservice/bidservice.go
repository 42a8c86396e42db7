package bidservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/marketbid/internal/domain"
	"github.com/GlebRadaev/marketbid/internal/events"
	"github.com/GlebRadaev/marketbid/pkg/money"
	"github.com/GlebRadaev/marketbid/pkg/validate"
)

const defaultDeliveryTime = "TBD"

type BidRepo interface {
	FindByID(ctx context.Context, bidID string) (*domain.Bid, error)
	FindByRequestAndSeller(ctx context.Context, requestID string, sellerID int) (*domain.Bid, error)
	ListByRequest(ctx context.Context, requestID string) ([]domain.Bid, error)
	Create(ctx context.Context, bid *domain.Bid) error
	UpdateTerms(ctx context.Context, bid *domain.Bid) (bool, error)
	Accept(ctx context.Context, bidID, requestID string, acceptedAt, dueAt time.Time) error
}

type RequestRepo interface {
	FindByID(ctx context.Context, requestID string) (*domain.Request, error)
}

type AccountRepo interface {
	GetSuspendedUntil(ctx context.Context, accountID int) (*time.Time, error)
}

type RatingSource interface {
	SellerRatings(ctx context.Context, sellerIDs []int) (map[int]domain.SellerRating, error)
}

// Tracker registers bids with the auto-bid scheduler.
type Tracker interface {
	Track(bid domain.Bid)
	Untrack(bidID string)
}

type Service struct {
	bidRepo       BidRepo
	requestRepo   RequestRepo
	accountRepo   AccountRepo
	ratings       RatingSource
	tracker       Tracker
	notifier      events.Notifier
	paymentWindow time.Duration
	now           func() time.Time
}

func New(
	bidRepo BidRepo,
	requestRepo RequestRepo,
	accountRepo AccountRepo,
	ratings RatingSource,
	tracker Tracker,
	notifier events.Notifier,
	paymentWindow time.Duration,
) *Service {
	return &Service{
		bidRepo:       bidRepo,
		requestRepo:   requestRepo,
		accountRepo:   accountRepo,
		ratings:       ratings,
		tracker:       tracker,
		notifier:      notifier,
		paymentWindow: paymentWindow,
		now:           time.Now,
	}
}

func validateTerms(terms domain.BidTerms) error {
	if terms.UnitPrice == nil || terms.TotalPrice == nil {
		return domain.ErrInvalidTerms
	}
	if !terms.UnitPrice.IsPositive() || !terms.TotalPrice.IsPositive() {
		return domain.ErrInvalidTerms
	}
	ab := terms.AutoBid
	if ab == nil || !ab.Enabled {
		return nil
	}
	if !ab.Decrement.IsPositive() || ab.Interval < 1 || !ab.Floor.IsPositive() {
		return domain.ErrInvalidAutoBid
	}
	if !ab.Floor.LessThan(money.Round(*terms.TotalPrice)) {
		return domain.ErrInvalidAutoBid
	}
	return nil
}

// applyTerms copies submitted terms onto bid and resets it to a fresh pending state.
func applyTerms(bid *domain.Bid, terms domain.BidTerms) {
	bid.UnitPrice = money.Round(*terms.UnitPrice)
	bid.TotalPrice = money.Round(*terms.TotalPrice)

	if terms.DeliveryTime != nil {
		bid.DeliveryTime = strings.TrimSpace(*terms.DeliveryTime)
	}
	if bid.DeliveryTime == "" {
		bid.DeliveryTime = defaultDeliveryTime
	}
	if terms.Images != nil {
		bid.Images = terms.Images
	}
	if bid.Images == nil {
		bid.Images = []string{}
	}

	bid.AutoBid = domain.AutoBid{}
	if terms.AutoBid != nil && terms.AutoBid.Enabled {
		bid.AutoBid = domain.AutoBid{
			Enabled:   true,
			Decrement: money.Round(terms.AutoBid.Decrement),
			Interval:  terms.AutoBid.Interval,
			Floor:     money.Round(terms.AutoBid.Floor),
		}
	}

	bid.Status = domain.BidPending
	bid.Accepted = false
	bid.AcceptedAt = nil
	bid.PaymentDueAt = nil
}

// SubmitBid creates the seller's bid on a request or overwrites it while it is still open
// for changes. created reports whether a new bid was stored.
func (s *Service) SubmitBid(ctx context.Context, requestID string, sellerID int, terms domain.BidTerms) (*domain.Bid, bool, error) {
	if err := validateTerms(terms); err != nil {
		zap.L().Info("rejected bid terms", zap.String("requestID", requestID), zap.Error(err))
		return nil, false, err
	}
	if !validate.IsUUID(requestID) {
		return nil, false, domain.ErrRequestNotFound
	}

	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, false, err
	}
	if request == nil {
		return nil, false, domain.ErrRequestNotFound
	}
	if request.Status != domain.RequestOpen {
		return nil, false, domain.ErrRequestClosed
	}

	existing, err := s.bidRepo.FindByRequestAndSeller(ctx, requestID, sellerID)
	if err != nil {
		return nil, false, err
	}

	now := s.now()
	if existing == nil {
		bid := &domain.Bid{
			ID:        uuid.NewString(),
			RequestID: requestID,
			SellerID:  sellerID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		applyTerms(bid, terms)
		err := s.bidRepo.Create(ctx, bid)
		if err == nil {
			s.syncTracking(bid)
			return bid, true, nil
		}
		if !errors.Is(err, domain.ErrBidExists) {
			return nil, false, err
		}

		// A concurrent first submission by the same seller won; update its bid instead.
		zap.L().Info("bid created concurrently, updating", zap.String("requestID", requestID), zap.Int("sellerID", sellerID))
		existing, err = s.bidRepo.FindByRequestAndSeller(ctx, requestID, sellerID)
		if err != nil {
			return nil, false, err
		}
		if existing == nil {
			return nil, false, domain.ErrBidExists
		}
	}
	return s.update(ctx, existing, terms, now)
}

func (s *Service) update(ctx context.Context, existing *domain.Bid, terms domain.BidTerms, now time.Time) (*domain.Bid, bool, error) {
	if existing.Status.Locked() {
		zap.L().Info("bid is locked", zap.String("bidID", existing.ID), zap.String("status", string(existing.Status)))
		return nil, false, domain.ErrBidLocked
	}

	bid := *existing
	applyTerms(&bid, terms)
	bid.UpdatedAt = now
	updated, err := s.bidRepo.UpdateTerms(ctx, &bid)
	if err != nil {
		return nil, false, err
	}
	if !updated {
		zap.L().Info("bid was locked concurrently", zap.String("bidID", bid.ID))
		return nil, false, domain.ErrBidLocked
	}
	s.syncTracking(&bid)
	return &bid, false, nil
}

func (s *Service) syncTracking(bid *domain.Bid) {
	if bid.AutoBidActive() {
		s.tracker.Track(*bid)
		return
	}
	s.tracker.Untrack(bid.ID)
}

// GetBidsForRequest lists the bids on a request in submission order. An unknown request
// yields an empty list.
func (s *Service) GetBidsForRequest(ctx context.Context, requestID string) ([]domain.BidView, error) {
	if !validate.IsUUID(requestID) {
		return []domain.BidView{}, nil
	}
	bids, err := s.bidRepo.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if len(bids) == 0 {
		return []domain.BidView{}, nil
	}

	sellerIDs := make([]int, 0, len(bids))
	seen := make(map[int]struct{}, len(bids))
	for _, bid := range bids {
		if _, ok := seen[bid.SellerID]; ok {
			continue
		}
		seen[bid.SellerID] = struct{}{}
		sellerIDs = append(sellerIDs, bid.SellerID)
	}

	ratings, err := s.ratings.SellerRatings(ctx, sellerIDs)
	if err != nil {
		zap.L().Warn("seller ratings unavailable", zap.String("requestID", requestID), zap.Error(err))
		ratings = nil
	}

	views := make([]domain.BidView, 0, len(bids))
	for _, bid := range bids {
		rating := ratings[bid.SellerID]
		views = append(views, domain.BidView{
			Bid:               bid,
			SellerRating:      rating.Average,
			SellerRatingCount: rating.Count,
		})
	}
	return views, nil
}

// GetBid returns a bid to its seller or to the buyer who owns the request.
func (s *Service) GetBid(ctx context.Context, bidID string, userID int) (*domain.Bid, error) {
	if !validate.IsUUID(bidID) {
		return nil, domain.ErrBidNotFound
	}
	bid, err := s.bidRepo.FindByID(ctx, bidID)
	if err != nil {
		return nil, err
	}
	if bid == nil {
		return nil, domain.ErrBidNotFound
	}
	if bid.SellerID == userID {
		return bid, nil
	}

	request, err := s.requestRepo.FindByID(ctx, bid.RequestID)
	if err != nil {
		return nil, err
	}
	if request == nil || request.BuyerID != userID {
		return nil, domain.ErrNotOwner
	}
	return bid, nil
}

// AcceptBid makes the bid the winner of its request and returns the payment deadline.
func (s *Service) AcceptBid(ctx context.Context, bidID string, buyerID int) (time.Time, error) {
	if !validate.IsUUID(bidID) {
		return time.Time{}, domain.ErrBidNotFound
	}
	bid, err := s.bidRepo.FindByID(ctx, bidID)
	if err != nil {
		return time.Time{}, err
	}
	if bid == nil {
		return time.Time{}, domain.ErrBidNotFound
	}

	request, err := s.requestRepo.FindByID(ctx, bid.RequestID)
	if err != nil {
		return time.Time{}, err
	}
	if request == nil {
		return time.Time{}, domain.ErrRequestNotFound
	}
	if request.BuyerID != buyerID {
		zap.L().Info("accept by non-owner", zap.String("bidID", bidID), zap.Int("buyerID", buyerID))
		return time.Time{}, domain.ErrNotOwner
	}

	now := s.now()
	until, err := s.accountRepo.GetSuspendedUntil(ctx, buyerID)
	if err != nil {
		return time.Time{}, err
	}
	if until != nil && until.After(now) {
		zap.L().Info("suspended buyer tried to accept", zap.Int("buyerID", buyerID), zap.Time("until", *until))
		return time.Time{}, &domain.AccountSuspendedError{Until: *until}
	}

	dueAt := now.Add(s.paymentWindow)
	if err := s.bidRepo.Accept(ctx, bid.ID, bid.RequestID, now, dueAt); err != nil {
		zap.L().Info("bid not accepted", zap.String("bidID", bidID), zap.Error(err))
		return time.Time{}, err
	}

	s.tracker.Untrack(bid.ID)
	s.notifier.Notify(ctx, events.Event{
		Type:      events.BidAccepted,
		RequestID: bid.RequestID,
		BidID:     bid.ID,
		BuyerID:   buyerID,
		SellerID:  bid.SellerID,
		Deadline:  &dueAt,
		At:        now,
	})
	return dueAt, nil
}
