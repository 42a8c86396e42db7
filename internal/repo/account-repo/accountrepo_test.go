package accountrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/marketbid/internal/domain"
	"github.com/GlebRadaev/marketbid/internal/pg"
)

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

	repo := New(mockDB, txManager)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_GetSuspendedUntil(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	until := time.Now().Add(7 * 24 * time.Hour)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *time.Time
	}{
		{
			name: "Suspended account",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT suspended_until FROM accounts")).
					WithArgs(3).
					WillReturnRows(pgxmock.NewRows([]string{"suspended_until"}).AddRow(&until))
			},
			result: &until,
		},
		{
			name: "Unknown account",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT suspended_until FROM accounts")).
					WithArgs(3).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT suspended_until FROM accounts")).
					WithArgs(3).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetSuspendedUntil(ctx, 3)

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

func TestRepository_ExtendSuspension(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	until := time.Now().Add(7 * 24 * time.Hour)
	later := until.Add(time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("GREATEST(")).
		WithArgs(3, until).
		WillReturnRows(pgxmock.NewRows([]string{"suspended_until"}).AddRow(later))

	effective, err := repo.ExtendSuspension(ctx, 3, until)

	assert.NoError(t, err)
	assert.Equal(t, later, effective)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Strikes(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()
	cutoff := now.Add(-30 * 24 * time.Hour)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM account_strikes")).
		WithArgs(3, cutoff).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO account_strikes")).
		WithArgs(3, "b1", "nonpayment", now).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectQuery(regexp.QuoteMeta("FROM account_strikes")).
		WithArgs(3).
		WillReturnRows(pgxmock.NewRows([]string{"id", "account_id", "bid_id", "reason", "created_at"}).
			AddRow(11, 3, "b1", "nonpayment", now))

	assert.NoError(t, repo.DeleteStrikesBefore(ctx, 3, cutoff))

	strike := &domain.Strike{AccountID: 3, BidID: "b1", Reason: "nonpayment", CreatedAt: now}
	assert.NoError(t, repo.AddStrike(ctx, strike))
	assert.Equal(t, 11, strike.ID)

	strikes, err := repo.ListStrikes(ctx, 3)
	assert.NoError(t, err)
	assert.Equal(t, []domain.Strike{*strike}, strikes)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteStrikesBefore_Error(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	cutoff := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM account_strikes")).
		WithArgs(3, cutoff).
		WillReturnError(errors.New("database error"))

	assert.Error(t, repo.DeleteStrikesBefore(ctx, 3, cutoff))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RecordStrike(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()
	earlier := now.Add(-48 * time.Hour)
	cutoff := now.Add(-30 * 24 * time.Hour)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (id) DO NOTHING")).
		WithArgs(3).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(3).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM account_strikes")).
		WithArgs(3, cutoff).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO account_strikes")).
		WithArgs(3, "b2", "nonpayment", now).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(12))
	mock.ExpectQuery(regexp.QuoteMeta("FROM account_strikes")).
		WithArgs(3).
		WillReturnRows(pgxmock.NewRows([]string{"id", "account_id", "bid_id", "reason", "created_at"}).
			AddRow(11, 3, "b1", "nonpayment", earlier).
			AddRow(12, 3, "b2", "nonpayment", now))

	strike := &domain.Strike{AccountID: 3, BidID: "b2", Reason: "nonpayment", CreatedAt: now}
	strikes, err := repo.RecordStrike(ctx, strike, cutoff)

	assert.NoError(t, err)
	assert.Equal(t, 12, strike.ID)
	assert.Equal(t, []domain.Strike{
		{ID: 11, AccountID: 3, BidID: "b1", Reason: "nonpayment", CreatedAt: earlier},
		*strike,
	}, strikes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RecordStrike_LockError(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (id) DO NOTHING")).
		WithArgs(3).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(3).
		WillReturnError(errors.New("database error"))

	strike := &domain.Strike{AccountID: 3, BidID: "b2", Reason: "nonpayment", CreatedAt: now}
	strikes, err := repo.RecordStrike(ctx, strike, now.Add(-30*24*time.Hour))

	assert.Error(t, err)
	assert.Nil(t, strikes)
	assert.NoError(t, mock.ExpectationsWereMet())
}
