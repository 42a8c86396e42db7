package bidrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/marketbid/internal/domain"
	"github.com/GlebRadaev/marketbid/internal/pg"
)

const bidColumns = `id, request_id, seller_id, unit_price, total_price, delivery_time, images,
        auto_bid_enabled, auto_bid_decrement, auto_bid_interval, auto_bid_floor,
        status, accepted, accepted_at, payment_due_at, created_at, updated_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBid(row scanner) (*domain.Bid, error) {
	var bid domain.Bid
	err := row.Scan(
		&bid.ID, &bid.RequestID, &bid.SellerID, &bid.UnitPrice, &bid.TotalPrice, &bid.DeliveryTime, &bid.Images,
		&bid.AutoBid.Enabled, &bid.AutoBid.Decrement, &bid.AutoBid.Interval, &bid.AutoBid.Floor,
		&bid.Status, &bid.Accepted, &bid.AcceptedAt, &bid.PaymentDueAt, &bid.CreatedAt, &bid.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &bid, nil
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.Bid, error) {
	bid, err := scanBid(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find bid", zap.Error(err))
		return nil, err
	}
	return bid, nil
}

func (r *Repository) findMany(ctx context.Context, query string, args ...any) ([]domain.Bid, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get bids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bids []domain.Bid
	for rows.Next() {
		bid, err := scanBid(rows)
		if err != nil {
			zap.L().Error("can't scan bid row", zap.Error(err))
			return nil, err
		}
		bids = append(bids, *bid)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate bid rows", zap.Error(err))
		return nil, err
	}
	return bids, nil
}

func (r *Repository) FindByID(ctx context.Context, bidID string) (*domain.Bid, error) {
	query := `
        SELECT ` + bidColumns + `
        FROM bids
        WHERE id = $1
    `
	return r.findOne(ctx, query, bidID)
}

func (r *Repository) FindByRequestAndSeller(ctx context.Context, requestID string, sellerID int) (*domain.Bid, error) {
	query := `
        SELECT ` + bidColumns + `
        FROM bids
        WHERE request_id = $1 AND seller_id = $2
    `
	return r.findOne(ctx, query, requestID, sellerID)
}

func (r *Repository) ListByRequest(ctx context.Context, requestID string) ([]domain.Bid, error) {
	query := `
        SELECT ` + bidColumns + `
        FROM bids
        WHERE request_id = $1
        ORDER BY created_at ASC, seq ASC
    `
	return r.findMany(ctx, query, requestID)
}

func (r *Repository) Create(ctx context.Context, bid *domain.Bid) error {
	query := `
        INSERT INTO bids (id, request_id, seller_id, unit_price, total_price, delivery_time, images,
            auto_bid_enabled, auto_bid_decrement, auto_bid_interval, auto_bid_floor,
            status, accepted, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, FALSE, $13, $13)
    `
	_, err := r.db.Exec(ctx, query,
		bid.ID, bid.RequestID, bid.SellerID, bid.UnitPrice, bid.TotalPrice, bid.DeliveryTime, bid.Images,
		bid.AutoBid.Enabled, bid.AutoBid.Decrement, bid.AutoBid.Interval, bid.AutoBid.Floor,
		bid.Status, bid.CreatedAt,
	)
	if pg.IsUniqueViolation(err, "bids_request_seller_key") {
		return domain.ErrBidExists
	}
	if err != nil {
		zap.L().Error("can't save bid", zap.Error(err))
		return err
	}
	return nil
}

// UpdateTerms overwrites the commercial terms of a bid that has not progressed past pending
// and resets it to pending. It reports false when the bid was locked concurrently.
func (r *Repository) UpdateTerms(ctx context.Context, bid *domain.Bid) (bool, error) {
	query := `
        UPDATE bids
        SET unit_price = $2, total_price = $3, delivery_time = $4, images = $5,
            auto_bid_enabled = $6, auto_bid_decrement = $7, auto_bid_interval = $8, auto_bid_floor = $9,
            status = 'pending', accepted = FALSE, accepted_at = NULL, payment_due_at = NULL, updated_at = $10
        WHERE id = $1 AND status IN ('pending', 'cancelled_nonpayment')
    `
	tag, err := r.db.Exec(ctx, query,
		bid.ID, bid.UnitPrice, bid.TotalPrice, bid.DeliveryTime, bid.Images,
		bid.AutoBid.Enabled, bid.AutoBid.Decrement, bid.AutoBid.Interval, bid.AutoBid.Floor,
		bid.UpdatedAt,
	)
	if err != nil {
		zap.L().Error("can't update bid terms", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Accept makes bidID the single winner of its request. The request row is locked for the
// duration of the check and the update is conditional on no other bid being accepted, so
// concurrent acceptances on one request serialise and exactly one succeeds.
func (r *Repository) Accept(ctx context.Context, bidID, requestID string, acceptedAt, dueAt time.Time) error {
	lockQuery := `
        SELECT status
        FROM requests
        WHERE id = $1
        FOR UPDATE
    `
	acceptQuery := `
        UPDATE bids
        SET accepted = TRUE, accepted_at = $2, payment_due_at = $3, status = 'accepted_pending_payment', updated_at = $2
        WHERE id = $1 AND status = 'pending' AND NOT accepted
          AND NOT EXISTS (SELECT 1 FROM bids other WHERE other.request_id = bids.request_id AND other.accepted)
    `
	takenQuery := `
        SELECT EXISTS (SELECT 1 FROM bids WHERE request_id = $1 AND accepted AND id <> $2)
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		var status domain.RequestStatus
		err := r.db.QueryRow(ctx, lockQuery, requestID).Scan(&status)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrRequestNotFound
		}
		if err != nil {
			zap.L().Error("can't lock request", zap.Error(err))
			return err
		}
		if status != domain.RequestOpen {
			return domain.ErrRequestClosed
		}

		tag, err := r.db.Exec(ctx, acceptQuery, bidID, acceptedAt, dueAt)
		if pg.IsUniqueViolation(err, "bids_one_winner") {
			return domain.ErrAlreadyAccepted
		}
		if err != nil {
			zap.L().Error("can't accept bid", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 1 {
			return nil
		}

		var taken bool
		if err := r.db.QueryRow(ctx, takenQuery, requestID, bidID).Scan(&taken); err != nil {
			zap.L().Error("can't check accepted bids", zap.Error(err))
			return err
		}
		if taken {
			return domain.ErrAlreadyAccepted
		}
		return domain.ErrBidNotPending
	})
}

func (r *Repository) FindAutoBidEligible(ctx context.Context, limit uint32) ([]domain.Bid, error) {
	query := `
        SELECT ` + bidColumns + `
        FROM bids
        WHERE auto_bid_enabled AND status = 'pending'
        ORDER BY updated_at ASC
        LIMIT $1
    `
	return r.findMany(ctx, query, int(limit))
}

// DecrementPrice is a compare-and-set of the total price of an active auto-bid.
// It reports false when the bid changed since current was read.
func (r *Repository) DecrementPrice(ctx context.Context, bidID string, current, next decimal.Decimal, keepAutoBid bool, now time.Time) (bool, error) {
	query := `
        UPDATE bids
        SET total_price = $3, auto_bid_enabled = $4, updated_at = $5
        WHERE id = $1 AND total_price = $2 AND status = 'pending' AND auto_bid_enabled
    `
	tag, err := r.db.Exec(ctx, query, bidID, current, next, keepAutoBid, now)
	if err != nil {
		zap.L().Error("can't decrement bid price", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) FindPaymentOverdue(ctx context.Context, now time.Time, limit uint32) ([]domain.Bid, error) {
	query := `
        SELECT ` + bidColumns + `
        FROM bids
        WHERE status = 'accepted_pending_payment' AND payment_due_at < $1
        ORDER BY payment_due_at ASC
        LIMIT $2
    `
	return r.findMany(ctx, query, now, int(limit))
}

// CancelForNonPayment moves an overdue accepted bid to cancelled_nonpayment.
// It reports false when the bid was paid, already cancelled or is not yet due.
func (r *Repository) CancelForNonPayment(ctx context.Context, bidID string, now time.Time) (bool, error) {
	query := `
        UPDATE bids
        SET status = 'cancelled_nonpayment', accepted = FALSE, updated_at = $2
        WHERE id = $1 AND status = 'accepted_pending_payment' AND payment_due_at < $2
    `
	tag, err := r.db.Exec(ctx, query, bidID, now)
	if err != nil {
		zap.L().Error("can't cancel bid for non-payment", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
