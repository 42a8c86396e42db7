package receiptservice

import (
	"context"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/GlebRadaev/marketbid/internal/domain"
)

const (
	MinRating     = 1.0
	MaxRating     = 10.0
	MaxReasons    = 10
	MaxCommentLen = 200

	DefaultPageSize = 20
	MaxPageSize     = 100
)

type ReceiptRepo interface {
	FindByCode(ctx context.Context, code string) (*domain.Receipt, error)
	Complete(ctx context.Context, code string, buyerID int) (bool, error)
	Rate(ctx context.Context, code string, buyerID int, rating *domain.Rating) (bool, error)
	List(ctx context.Context, userID int, party domain.Party, onlyUnviewed bool, limit, offset int) ([]domain.Receipt, error)
	MarkViewed(ctx context.Context, code string, userID int, party domain.Party) (bool, error)
	MarkAllViewed(ctx context.Context, userID int, party domain.Party) (int64, error)
}

type RatingCache interface {
	Invalidate(ctx context.Context, sellerID int)
}

type Service struct {
	repo  ReceiptRepo
	cache RatingCache
	now   func() time.Time
}

func New(repo ReceiptRepo, cache RatingCache) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		now:   time.Now,
	}
}

func (s *Service) find(ctx context.Context, code string) (*domain.Receipt, error) {
	rc, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if rc == nil {
		return nil, domain.ErrReceiptNotFound
	}
	return rc, nil
}

// GetReceipt returns a receipt to either party of the deal.
func (s *Service) GetReceipt(ctx context.Context, code string, userID int) (*domain.Receipt, error) {
	rc, err := s.find(ctx, code)
	if err != nil {
		return nil, err
	}
	if rc.BuyerID != userID && rc.SellerID != userID {
		return nil, domain.ErrNotOwner
	}
	return rc, nil
}

func (s *Service) ListReceipts(ctx context.Context, userID int, party domain.Party, onlyUnviewed bool, page, limit int) ([]domain.Receipt, error) {
	if party != domain.PartyBuyer && party != domain.PartySeller {
		return nil, domain.ErrInvalidQuery
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if page < 1 {
		page = 1
	}

	receipts, err := s.repo.List(ctx, userID, party, onlyUnviewed, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	if receipts == nil {
		receipts = []domain.Receipt{}
	}
	return receipts, nil
}

func (s *Service) MarkViewed(ctx context.Context, code string, userID int, party domain.Party) error {
	if party != domain.PartyBuyer && party != domain.PartySeller {
		return domain.ErrInvalidQuery
	}
	ok, err := s.repo.MarkViewed(ctx, code, userID, party)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	if _, err := s.find(ctx, code); err != nil {
		return err
	}
	return domain.ErrNotOwner
}

// MarkAllViewed clears the unviewed flag on all of the user's receipts for one side and
// returns how many changed.
func (s *Service) MarkAllViewed(ctx context.Context, userID int, party domain.Party) (int64, error) {
	if party != domain.PartyBuyer && party != domain.PartySeller {
		return 0, domain.ErrInvalidQuery
	}
	return s.repo.MarkAllViewed(ctx, userID, party)
}

// CompleteReceipt lets the buyer confirm delivery of a paid order.
func (s *Service) CompleteReceipt(ctx context.Context, code string, buyerID int) (*domain.Receipt, error) {
	rc, err := s.find(ctx, code)
	if err != nil {
		return nil, err
	}
	if rc.BuyerID != buyerID {
		return nil, domain.ErrNotOwner
	}
	if rc.Status != domain.ReceiptPaid {
		return nil, domain.ErrNotPaid
	}

	ok, err := s.repo.Complete(ctx, code, buyerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		zap.L().Info("receipt completed concurrently", zap.String("receiptID", code))
		return nil, domain.ErrNotPaid
	}
	rc.Status = domain.ReceiptCompleted
	return rc, nil
}

// NormalizeRating clamps the value to the rating scale with one decimal and trims the
// free-form parts.
func NormalizeRating(value float64, reasons []string, comment string) (*domain.Rating, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, domain.ErrInvalidRating
	}
	value = math.Round(value*10) / 10
	value = math.Max(MinRating, math.Min(MaxRating, value))

	kept := make([]string, 0, len(reasons))
	for _, r := range reasons {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		kept = append(kept, r)
		if len(kept) == MaxReasons {
			break
		}
	}

	comment = strings.TrimSpace(comment)
	if utf8.RuneCountInString(comment) > MaxCommentLen {
		comment = string([]rune(comment)[:MaxCommentLen])
	}

	return &domain.Rating{Value: value, Reasons: kept, Comment: comment}, nil
}

// RateReceipt stores the buyer's one-time rating of a completed receipt.
func (s *Service) RateReceipt(ctx context.Context, code string, buyerID int, value float64, reasons []string, comment string) (*domain.Rating, error) {
	rating, err := NormalizeRating(value, reasons, comment)
	if err != nil {
		return nil, err
	}

	rc, err := s.find(ctx, code)
	if err != nil {
		return nil, err
	}
	if rc.BuyerID != buyerID {
		return nil, domain.ErrNotOwner
	}
	if rc.Status != domain.ReceiptCompleted {
		return nil, domain.ErrNotCompleted
	}
	if rc.Rating != nil {
		return nil, domain.ErrAlreadyRated
	}

	rating.RatedAt = s.now()
	ok, err := s.repo.Rate(ctx, code, buyerID, rating)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrAlreadyRated
	}

	s.cache.Invalidate(ctx, rc.SellerID)
	zap.L().Info("receipt rated", zap.String("receiptID", code), zap.Float64("value", rating.Value))
	return rating, nil
}
