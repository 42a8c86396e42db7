package receiptrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/marketbid/internal/domain"
	"github.com/GlebRadaev/marketbid/internal/pg"
)

var errAlreadySettled = errors.New("bid already settled")

const receiptColumns = `id, code, request_id, bid_id, buyer_id, seller_id, subtotal, fee, amount, currency,
        external_ref, card_brand, card_last4, status, viewed_by_buyer, viewed_by_seller,
        rating_value, rating_reasons, rating_comment, rated_at, created_at`

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

func scanReceipt(row scanner) (*domain.Receipt, error) {
	var (
		rc          domain.Receipt
		ratingValue *float64
		reasons     []string
		comment     string
		ratedAt     *time.Time
	)
	err := row.Scan(
		&rc.ID, &rc.Code, &rc.RequestID, &rc.BidID, &rc.BuyerID, &rc.SellerID, &rc.Subtotal, &rc.Fee, &rc.Amount, &rc.Currency,
		&rc.ExternalRef, &rc.CardBrand, &rc.CardLast4, &rc.Status, &rc.ViewedByBuyer, &rc.ViewedBySeller,
		&ratingValue, &reasons, &comment, &ratedAt, &rc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if ratingValue != nil {
		rc.Rating = &domain.Rating{Value: *ratingValue, Reasons: reasons, Comment: comment}
		if ratedAt != nil {
			rc.Rating.RatedAt = *ratedAt
		}
	}
	return &rc, nil
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.Receipt, error) {
	rc, err := scanReceipt(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find receipt", zap.Error(err))
		return nil, err
	}
	return rc, nil
}

func (r *Repository) FindByCode(ctx context.Context, code string) (*domain.Receipt, error) {
	query := `
        SELECT ` + receiptColumns + `
        FROM receipts
        WHERE code = $1
    `
	return r.findOne(ctx, query, code)
}

func (r *Repository) FindByBidID(ctx context.Context, bidID string) (*domain.Receipt, error) {
	query := `
        SELECT ` + receiptColumns + `
        FROM receipts
        WHERE bid_id = $1 AND status IN ('paid', 'completed')
    `
	return r.findOne(ctx, query, bidID)
}

// Settle records a successful payment in one transaction: it stores the receipt, moves the
// bid to paid, completes the request and drops the losing bids. When the bid already has a
// receipt the existing one is returned with created=false.
func (r *Repository) Settle(ctx context.Context, rc *domain.Receipt) (*domain.Receipt, bool, error) {
	insertQuery := `
        INSERT INTO receipts (code, request_id, bid_id, buyer_id, seller_id, subtotal, fee, amount, currency,
            external_ref, card_brand, card_last4, status, viewed_by_buyer, viewed_by_seller, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 'paid', TRUE, FALSE, $13)
        RETURNING id
    `
	paidQuery := `
        UPDATE bids
        SET status = 'paid', updated_at = $2
        WHERE id = $1 AND status = 'accepted_pending_payment'
    `
	completeQuery := `
        UPDATE requests
        SET status = 'completed'
        WHERE id = $1 AND status = 'open'
    `
	losersQuery := `
        DELETE FROM bids
        WHERE request_id = $1 AND id <> $2
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, insertQuery,
			rc.Code, rc.RequestID, rc.BidID, rc.BuyerID, rc.SellerID, rc.Subtotal, rc.Fee, rc.Amount, rc.Currency,
			rc.ExternalRef, rc.CardBrand, rc.CardLast4, rc.CreatedAt,
		).Scan(&rc.ID)
		switch {
		case pg.IsUniqueViolation(err, "receipts_bid_id_key"):
			return errAlreadySettled
		case pg.IsUniqueViolation(err, "receipts_code_key"):
			return domain.ErrReceiptCodeTaken
		case err != nil:
			zap.L().Error("can't save receipt", zap.Error(err))
			return err
		}

		tag, err := r.db.Exec(ctx, paidQuery, rc.BidID, rc.CreatedAt)
		if err != nil {
			zap.L().Error("can't mark bid paid", zap.Error(err))
			return err
		}
		if tag.RowsAffected() != 1 {
			return domain.ErrBidNotAccepted
		}

		tag, err = r.db.Exec(ctx, completeQuery, rc.RequestID)
		if err != nil {
			zap.L().Error("can't complete request", zap.Error(err))
			return err
		}
		if tag.RowsAffected() != 1 {
			zap.L().Warn("request was not open at settlement", zap.String("requestID", rc.RequestID))
		}

		if _, err := r.db.Exec(ctx, losersQuery, rc.RequestID, rc.BidID); err != nil {
			zap.L().Error("can't delete losing bids", zap.Error(err))
			return err
		}
		return nil
	})
	if errors.Is(err, errAlreadySettled) {
		existing, err := r.FindByBidID(ctx, rc.BidID)
		if err != nil {
			return nil, false, err
		}
		if existing == nil {
			return nil, false, errAlreadySettled
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	rc.Status = domain.ReceiptPaid
	rc.ViewedByBuyer = true
	return rc, true, nil
}

// Complete moves a paid receipt owned by buyerID to completed together with its bid.
func (r *Repository) Complete(ctx context.Context, code string, buyerID int) (bool, error) {
	receiptQuery := `
        UPDATE receipts
        SET status = 'completed'
        WHERE code = $1 AND buyer_id = $2 AND status = 'paid'
        RETURNING bid_id
    `
	bidQuery := `
        UPDATE bids
        SET status = 'completed', updated_at = now()
        WHERE id = $1 AND status = 'paid'
    `
	completed := false
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var bidID string
		err := r.db.QueryRow(ctx, receiptQuery, code, buyerID).Scan(&bidID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			zap.L().Error("can't complete receipt", zap.Error(err))
			return err
		}

		tag, err := r.db.Exec(ctx, bidQuery, bidID)
		if err != nil {
			zap.L().Error("can't complete bid", zap.Error(err))
			return err
		}
		if tag.RowsAffected() != 1 {
			zap.L().Warn("bid was not paid at completion", zap.String("bidID", bidID))
		}
		completed = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return completed, nil
}

// Rate stores the rating once; it reports false when the receipt is already rated.
func (r *Repository) Rate(ctx context.Context, code string, buyerID int, rating *domain.Rating) (bool, error) {
	query := `
        UPDATE receipts
        SET rating_value = $3, rating_reasons = $4, rating_comment = $5, rated_at = $6
        WHERE code = $1 AND buyer_id = $2 AND status = 'completed' AND rating_value IS NULL
    `
	tag, err := r.db.Exec(ctx, query, code, buyerID, rating.Value, rating.Reasons, rating.Comment, rating.RatedAt)
	if err != nil {
		zap.L().Error("can't rate receipt", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) List(ctx context.Context, userID int, party domain.Party, onlyUnviewed bool, limit, offset int) ([]domain.Receipt, error) {
	query := `
        SELECT ` + receiptColumns + `
        FROM receipts
        WHERE buyer_id = $1 AND ($2 = FALSE OR viewed_by_buyer = FALSE)
        ORDER BY created_at DESC
        LIMIT $3 OFFSET $4
    `
	if party == domain.PartySeller {
		query = `
        SELECT ` + receiptColumns + `
        FROM receipts
        WHERE seller_id = $1 AND ($2 = FALSE OR viewed_by_seller = FALSE)
        ORDER BY created_at DESC
        LIMIT $3 OFFSET $4
    `
	}
	rows, err := r.db.Query(ctx, query, userID, onlyUnviewed, limit, offset)
	if err != nil {
		zap.L().Error("can't get receipts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var receipts []domain.Receipt
	for rows.Next() {
		rc, err := scanReceipt(rows)
		if err != nil {
			zap.L().Error("can't scan receipt row", zap.Error(err))
			return nil, err
		}
		receipts = append(receipts, *rc)
	}
	return receipts, nil
}

func (r *Repository) MarkViewed(ctx context.Context, code string, userID int, party domain.Party) (bool, error) {
	query := `
        UPDATE receipts
        SET viewed_by_buyer = TRUE
        WHERE code = $1 AND buyer_id = $2
    `
	if party == domain.PartySeller {
		query = `
        UPDATE receipts
        SET viewed_by_seller = TRUE
        WHERE code = $1 AND seller_id = $2
    `
	}
	tag, err := r.db.Exec(ctx, query, code, userID)
	if err != nil {
		zap.L().Error("can't mark receipt viewed", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// MarkAllViewed flags every unviewed receipt of userID on the given side as viewed.
func (r *Repository) MarkAllViewed(ctx context.Context, userID int, party domain.Party) (int64, error) {
	query := `
        UPDATE receipts
        SET viewed_by_buyer = TRUE
        WHERE buyer_id = $1 AND viewed_by_buyer = FALSE
    `
	if party == domain.PartySeller {
		query = `
        UPDATE receipts
        SET viewed_by_seller = TRUE
        WHERE seller_id = $1 AND viewed_by_seller = FALSE
    `
	}
	tag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't mark receipts viewed", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) SellerRatings(ctx context.Context, sellerIDs []int) (map[int]domain.SellerRating, error) {
	query := `
        SELECT seller_id, AVG(rating_value)::float8, COUNT(*)
        FROM receipts
        WHERE seller_id = ANY($1) AND rating_value IS NOT NULL
        GROUP BY seller_id
    `
	rows, err := r.db.Query(ctx, query, sellerIDs)
	if err != nil {
		zap.L().Error("can't aggregate seller ratings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	ratings := make(map[int]domain.SellerRating, len(sellerIDs))
	for rows.Next() {
		var sr domain.SellerRating
		if err := rows.Scan(&sr.SellerID, &sr.Average, &sr.Count); err != nil {
			zap.L().Error("can't scan seller rating row", zap.Error(err))
			return nil, err
		}
		ratings[sr.SellerID] = sr
	}
	return ratings, nil
}
