package requestrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/marketbid/internal/domain"
	"github.com/GlebRadaev/marketbid/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByID(ctx context.Context, requestID string) (*domain.Request, error) {
	query := `
        SELECT id, buyer_id, product_name, category, quantity, condition, status, created_at
        FROM requests
        WHERE id = $1
    `
	var req domain.Request
	err := r.db.QueryRow(ctx, query, requestID).Scan(
		&req.ID, &req.BuyerID, &req.ProductName, &req.Category, &req.Quantity, &req.Condition, &req.Status, &req.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find request", zap.Error(err))
		return nil, err
	}
	return &req, nil
}
