package bidrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/marketbid/internal/domain"
	"github.com/GlebRadaev/marketbid/internal/pg"
)

var columns = []string{
	"id", "request_id", "seller_id", "unit_price", "total_price", "delivery_time", "images",
	"auto_bid_enabled", "auto_bid_decrement", "auto_bid_interval", "auto_bid_floor",
	"status", "accepted", "accepted_at", "payment_due_at", "created_at", "updated_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)

	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().
		Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		}).
		AnyTimes()

	t.Cleanup(mockDB.Close)
	return New(mockDB, txManager), mockDB
}

func testBid(now time.Time) domain.Bid {
	return domain.Bid{
		ID:           "b1",
		RequestID:    "r1",
		SellerID:     7,
		UnitPrice:    decimal.RequireFromString("10"),
		TotalPrice:   decimal.RequireFromString("100"),
		DeliveryTime: "2 days",
		Images:       []string{"a.png"},
		AutoBid: domain.AutoBid{
			Enabled:   true,
			Decrement: decimal.RequireFromString("10"),
			Interval:  60,
			Floor:     decimal.RequireFromString("65"),
		},
		Status:    domain.BidPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func bidRow(rows *pgxmock.Rows, b domain.Bid) *pgxmock.Rows {
	return rows.AddRow(
		b.ID, b.RequestID, b.SellerID, b.UnitPrice, b.TotalPrice, b.DeliveryTime, b.Images,
		b.AutoBid.Enabled, b.AutoBid.Decrement, b.AutoBid.Interval, b.AutoBid.Floor,
		b.Status, b.Accepted, b.AcceptedAt, b.PaymentDueAt, b.CreatedAt, b.UpdatedAt,
	)
}

func TestRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()
	bid := testBid(now)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Bid
	}{
		{
			name: "Bid found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM bids WHERE id = $1")).
					WithArgs("b1").
					WillReturnRows(bidRow(pgxmock.NewRows(columns), bid))
			},
			result: &bid,
		},
		{
			name: "Bid not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM bids WHERE id = $1")).
					WithArgs("b1").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM bids WHERE id = $1")).
					WithArgs("b1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(ctx, "b1")

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

func TestRepository_ListByRequest(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()
	first := testBid(now)
	second := testBid(now)
	second.ID = "b2"
	second.SellerID = 8

	rows := pgxmock.NewRows(columns)
	bidRow(rows, first)
	bidRow(rows, second)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at ASC, seq ASC")).
		WithArgs("r1").
		WillReturnRows(rows)

	bids, err := repo.ListByRequest(ctx, "r1")

	assert.NoError(t, err)
	assert.Equal(t, []domain.Bid{first, second}, bids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	bid := testBid(time.Now())

	tests := []struct {
		name      string
		mockSetup func()
		wantErr   error
		expectErr bool
	}{
		{
			name: "Create bid successfully",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bids")).
					WithArgs(
						"b1", "r1", 7, pgxmock.AnyArg(), pgxmock.AnyArg(), "2 days", []string{"a.png"},
						true, pgxmock.AnyArg(), 60, pgxmock.AnyArg(), domain.BidPending, bid.CreatedAt,
					).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Duplicate seller bid",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bids")).
					WillReturnError(&pgconn.PgError{Code: pg.UniqueViolation, ConstraintName: "bids_request_seller_key"})
			},
			wantErr:   domain.ErrBidExists,
			expectErr: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bids")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Create(ctx, &bid)

			if tt.expectErr {
				assert.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateTerms(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	bid := testBid(time.Now())

	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "Terms updated", affected: 1, want: true},
		{name: "Bid locked concurrently", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock.ExpectExec(regexp.QuoteMeta("WHERE id = $1 AND status IN ('pending', 'cancelled_nonpayment')")).
				WithArgs(
					"b1", pgxmock.AnyArg(), pgxmock.AnyArg(), "2 days", []string{"a.png"},
					true, pgxmock.AnyArg(), 60, pgxmock.AnyArg(), bid.UpdatedAt,
				).
				WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))

			ok, err := repo.UpdateTerms(ctx, &bid)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Accept(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()
	due := now.Add(24 * time.Hour)

	lock := regexp.QuoteMeta("FOR UPDATE")
	accept := regexp.QuoteMeta("SET accepted = TRUE")
	taken := regexp.QuoteMeta("SELECT EXISTS")

	tests := []struct {
		name      string
		mockSetup func()
		wantErr   error
	}{
		{
			name: "Bid accepted",
			mockSetup: func() {
				mock.ExpectQuery(lock).WithArgs("r1").
					WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(domain.RequestOpen))
				mock.ExpectExec(accept).WithArgs("b1", now, due).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Request not found",
			mockSetup: func() {
				mock.ExpectQuery(lock).WithArgs("r1").WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrRequestNotFound,
		},
		{
			name: "Request closed",
			mockSetup: func() {
				mock.ExpectQuery(lock).WithArgs("r1").
					WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(domain.RequestCompleted))
			},
			wantErr: domain.ErrRequestClosed,
		},
		{
			name: "Winner index violated",
			mockSetup: func() {
				mock.ExpectQuery(lock).WithArgs("r1").
					WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(domain.RequestOpen))
				mock.ExpectExec(accept).WithArgs("b1", now, due).
					WillReturnError(&pgconn.PgError{Code: pg.UniqueViolation, ConstraintName: "bids_one_winner"})
			},
			wantErr: domain.ErrAlreadyAccepted,
		},
		{
			name: "Another bid already accepted",
			mockSetup: func() {
				mock.ExpectQuery(lock).WithArgs("r1").
					WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(domain.RequestOpen))
				mock.ExpectExec(accept).WithArgs("b1", now, due).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
				mock.ExpectQuery(taken).WithArgs("r1", "b1").
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
			},
			wantErr: domain.ErrAlreadyAccepted,
		},
		{
			name: "Bid not pending",
			mockSetup: func() {
				mock.ExpectQuery(lock).WithArgs("r1").
					WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(domain.RequestOpen))
				mock.ExpectExec(accept).WithArgs("b1", now, due).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
				mock.ExpectQuery(taken).WithArgs("r1", "b1").
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
			},
			wantErr: domain.ErrBidNotPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Accept(ctx, "b1", "r1", now, due)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_DecrementPrice(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()
	current := decimal.RequireFromString("100")
	next := decimal.RequireFromString("90")

	mock.ExpectExec(regexp.QuoteMeta("AND total_price = $2 AND status = 'pending' AND auto_bid_enabled")).
		WithArgs("b1", current, next, true, now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	ok, err := repo.DecrementPrice(ctx, "b1", current, next, true, now)

	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindPaymentOverdue(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()
	bid := testBid(now)
	due := now.Add(-time.Minute)
	bid.Status = domain.BidAcceptedPendingPayment
	bid.Accepted = true
	bid.PaymentDueAt = &due

	mock.ExpectQuery(regexp.QuoteMeta("status = 'accepted_pending_payment' AND payment_due_at < $1")).
		WithArgs(now, 1000).
		WillReturnRows(bidRow(pgxmock.NewRows(columns), bid))

	bids, err := repo.FindPaymentOverdue(ctx, now, 1000)

	assert.NoError(t, err)
	assert.Equal(t, []domain.Bid{bid}, bids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CancelForNonPayment(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		want      bool
		expectErr bool
	}{
		{
			name: "Cancelled",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("SET status = 'cancelled_nonpayment'")).
					WithArgs("b1", now).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			want: true,
		},
		{
			name: "Already paid",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("SET status = 'cancelled_nonpayment'")).
					WithArgs("b1", now).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("SET status = 'cancelled_nonpayment'")).
					WithArgs("b1", now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			ok, err := repo.CancelForNonPayment(ctx, "b1", now)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
