package accountrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/marketbid/internal/domain"
	"github.com/GlebRadaev/marketbid/internal/pg"
)

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

// GetSuspendedUntil returns nil for accounts that were never suspended.
func (r *Repository) GetSuspendedUntil(ctx context.Context, accountID int) (*time.Time, error) {
	query := `
        SELECT suspended_until
        FROM accounts
        WHERE id = $1
    `
	var until *time.Time
	err := r.db.QueryRow(ctx, query, accountID).Scan(&until)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get account suspension", zap.Error(err))
		return nil, err
	}
	return until, nil
}

// ExtendSuspension never shortens an existing suspension and returns the effective expiry.
func (r *Repository) ExtendSuspension(ctx context.Context, accountID int, until time.Time) (time.Time, error) {
	query := `
        INSERT INTO accounts (id, suspended_until)
        VALUES ($1, $2)
        ON CONFLICT (id) DO UPDATE
        SET suspended_until = GREATEST(COALESCE(accounts.suspended_until, EXCLUDED.suspended_until), EXCLUDED.suspended_until)
        RETURNING suspended_until
    `
	var effective time.Time
	if err := r.db.QueryRow(ctx, query, accountID, until).Scan(&effective); err != nil {
		zap.L().Error("can't extend account suspension", zap.Error(err))
		return time.Time{}, err
	}
	return effective, nil
}

func (r *Repository) ListStrikes(ctx context.Context, accountID int) ([]domain.Strike, error) {
	query := `
        SELECT id, account_id, bid_id, reason, created_at
        FROM account_strikes
        WHERE account_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("can't get strikes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var strikes []domain.Strike
	for rows.Next() {
		var s domain.Strike
		if err := rows.Scan(&s.ID, &s.AccountID, &s.BidID, &s.Reason, &s.CreatedAt); err != nil {
			zap.L().Error("can't scan strike row", zap.Error(err))
			return nil, err
		}
		strikes = append(strikes, s)
	}
	return strikes, nil
}

func (r *Repository) DeleteStrikesBefore(ctx context.Context, accountID int, cutoff time.Time) error {
	query := `
        DELETE FROM account_strikes
        WHERE account_id = $1 AND created_at < $2
    `
	if _, err := r.db.Exec(ctx, query, accountID, cutoff); err != nil {
		zap.L().Error("can't prune strikes", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AddStrike(ctx context.Context, strike *domain.Strike) error {
	query := `
        INSERT INTO account_strikes (account_id, bid_id, reason, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, strike.AccountID, strike.BidID, strike.Reason, strike.CreatedAt).Scan(&strike.ID)
	if err != nil {
		zap.L().Error("can't save strike", zap.Error(err))
		return err
	}
	return nil
}

// RecordStrike prunes strikes older than cutoff, stores strike and returns every strike the
// account holds afterwards. The account row stays locked until commit, so strikes for one
// account are recorded one at a time and each caller sees the ones recorded before it.
func (r *Repository) RecordStrike(ctx context.Context, strike *domain.Strike, cutoff time.Time) ([]domain.Strike, error) {
	ensureQuery := `
        INSERT INTO accounts (id)
        VALUES ($1)
        ON CONFLICT (id) DO NOTHING
    `
	lockQuery := `
        SELECT id
        FROM accounts
        WHERE id = $1
        FOR UPDATE
    `
	var strikes []domain.Strike
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, ensureQuery, strike.AccountID); err != nil {
			zap.L().Error("can't ensure account", zap.Error(err))
			return err
		}
		var id int
		if err := r.db.QueryRow(ctx, lockQuery, strike.AccountID).Scan(&id); err != nil {
			zap.L().Error("can't lock account", zap.Error(err))
			return err
		}
		if err := r.DeleteStrikesBefore(ctx, strike.AccountID, cutoff); err != nil {
			return err
		}
		if err := r.AddStrike(ctx, strike); err != nil {
			return err
		}
		var err error
		strikes, err = r.ListStrikes(ctx, strike.AccountID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return strikes, nil
}
