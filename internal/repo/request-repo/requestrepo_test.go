package requestrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/marketbid/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()
	columns := []string{"id", "buyer_id", "product_name", "category", "quantity", "condition", "status", "created_at"}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Request
	}{
		{
			name: "Request found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM requests WHERE id = $1")).
					WithArgs("r1").
					WillReturnRows(pgxmock.NewRows(columns).
						AddRow("r1", 3, "Desk lamp", "home", 2, "new", domain.RequestOpen, now))
			},
			result: &domain.Request{
				ID:          "r1",
				BuyerID:     3,
				ProductName: "Desk lamp",
				Category:    "home",
				Quantity:    2,
				Condition:   "new",
				Status:      domain.RequestOpen,
				CreatedAt:   now,
			},
		},
		{
			name: "Request not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM requests WHERE id = $1")).
					WithArgs("r1").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM requests WHERE id = $1")).
					WithArgs("r1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(ctx, "r1")

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
