package receiptservice

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/marketbid/internal/domain"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockReceiptRepo, *MockRatingCache) {
	ctrl := gomock.NewController(t)
	repo := NewMockReceiptRepo(ctrl)
	cache := NewMockRatingCache(ctrl)
	service := New(repo, cache)
	service.now = func() time.Time { return fixedNow }
	return service, repo, cache
}

func receipt(status domain.ReceiptStatus) *domain.Receipt {
	return &domain.Receipt{Code: "REC-79927398", BuyerID: 7, SellerID: 3, Status: status}
}

func TestNormalizeRating(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		wantValue float64
		wantErr   bool
	}{
		{name: "rounds to one decimal", value: 7.26, wantValue: 7.3},
		{name: "clamps low", value: 0.2, wantValue: 1},
		{name: "clamps high", value: 12, wantValue: 10},
		{name: "negative", value: -5, wantValue: 1},
		{name: "not a number", value: math.NaN(), wantErr: true},
		{name: "infinite", value: math.Inf(1), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rating, err := NormalizeRating(tt.value, nil, "")
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidRating)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantValue, rating.Value, 1e-9)
		})
	}

	t.Run("trims reasons and comment", func(t *testing.T) {
		reasons := []string{" fast ", "", "polite"}
		for i := 0; i < 20; i++ {
			reasons = append(reasons, "extra")
		}
		rating, err := NormalizeRating(8, reasons, "  "+strings.Repeat("ж", 250)+" ")
		require.NoError(t, err)
		assert.Len(t, rating.Reasons, MaxReasons)
		assert.Equal(t, "fast", rating.Reasons[0])
		assert.Equal(t, "polite", rating.Reasons[1])
		assert.Equal(t, MaxCommentLen, len([]rune(rating.Comment)))
	})
}

func TestGetReceipt(t *testing.T) {
	tests := []struct {
		name    string
		userID  int
		found   *domain.Receipt
		wantErr error
	}{
		{name: "buyer", userID: 7, found: receipt(domain.ReceiptPaid)},
		{name: "seller", userID: 3, found: receipt(domain.ReceiptPaid)},
		{name: "stranger", userID: 9, found: receipt(domain.ReceiptPaid), wantErr: domain.ErrForbidden},
		{name: "missing", userID: 7, wantErr: domain.ErrReceiptNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _ := NewMock(t)
			repo.EXPECT().FindByCode(gomock.Any(), "REC-79927398").Return(tt.found, nil)

			rc, err := service.GetReceipt(context.Background(), "REC-79927398", tt.userID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "REC-79927398", rc.Code)
		})
	}
}

func TestCompleteReceipt(t *testing.T) {
	tests := []struct {
		name        string
		buyerID     int
		prepareMock func(repo *MockReceiptRepo)
		wantErr     error
	}{
		{
			name:    "completes paid receipt",
			buyerID: 7,
			prepareMock: func(repo *MockReceiptRepo) {
				repo.EXPECT().FindByCode(gomock.Any(), "REC-79927398").Return(receipt(domain.ReceiptPaid), nil)
				repo.EXPECT().Complete(gomock.Any(), "REC-79927398", 7).Return(true, nil)
			},
		},
		{
			name:    "seller cannot complete",
			buyerID: 3,
			prepareMock: func(repo *MockReceiptRepo) {
				repo.EXPECT().FindByCode(gomock.Any(), "REC-79927398").Return(receipt(domain.ReceiptPaid), nil)
			},
			wantErr: domain.ErrForbidden,
		},
		{
			name:    "already completed",
			buyerID: 7,
			prepareMock: func(repo *MockReceiptRepo) {
				repo.EXPECT().FindByCode(gomock.Any(), "REC-79927398").Return(receipt(domain.ReceiptCompleted), nil)
			},
			wantErr: domain.ErrNotPaid,
		},
		{
			name:    "lost race",
			buyerID: 7,
			prepareMock: func(repo *MockReceiptRepo) {
				repo.EXPECT().FindByCode(gomock.Any(), "REC-79927398").Return(receipt(domain.ReceiptPaid), nil)
				repo.EXPECT().Complete(gomock.Any(), "REC-79927398", 7).Return(false, nil)
			},
			wantErr: domain.ErrNotPaid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _ := NewMock(t)
			tt.prepareMock(repo)

			rc, err := service.CompleteReceipt(context.Background(), "REC-79927398", tt.buyerID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.ReceiptCompleted, rc.Status)
		})
	}
}

func TestRateReceipt(t *testing.T) {
	rated := receipt(domain.ReceiptCompleted)
	rated.Rating = &domain.Rating{Value: 9}

	tests := []struct {
		name        string
		prepareMock func(repo *MockReceiptRepo, cache *MockRatingCache)
		wantErr     error
	}{
		{
			name: "not completed",
			prepareMock: func(repo *MockReceiptRepo, _ *MockRatingCache) {
				repo.EXPECT().FindByCode(gomock.Any(), "REC-79927398").Return(receipt(domain.ReceiptPaid), nil)
			},
			wantErr: domain.ErrNotCompleted,
		},
		{
			name: "already rated",
			prepareMock: func(repo *MockReceiptRepo, _ *MockRatingCache) {
				repo.EXPECT().FindByCode(gomock.Any(), "REC-79927398").Return(rated, nil)
			},
			wantErr: domain.ErrAlreadyRated,
		},
		{
			name: "concurrent rating wins",
			prepareMock: func(repo *MockReceiptRepo, _ *MockRatingCache) {
				repo.EXPECT().FindByCode(gomock.Any(), "REC-79927398").Return(receipt(domain.ReceiptCompleted), nil)
				repo.EXPECT().Rate(gomock.Any(), "REC-79927398", 7, gomock.Any()).Return(false, nil)
			},
			wantErr: domain.ErrAlreadyRated,
		},
		{
			name: "storage error",
			prepareMock: func(repo *MockReceiptRepo, _ *MockRatingCache) {
				repo.EXPECT().FindByCode(gomock.Any(), "REC-79927398").Return(nil, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
		{
			name: "stores rating and invalidates seller cache",
			prepareMock: func(repo *MockReceiptRepo, cache *MockRatingCache) {
				repo.EXPECT().FindByCode(gomock.Any(), "REC-79927398").Return(receipt(domain.ReceiptCompleted), nil)
				repo.EXPECT().Rate(gomock.Any(), "REC-79927398", 7, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, _ int, r *domain.Rating) (bool, error) {
						assert.InDelta(t, 8.5, r.Value, 1e-9)
						assert.Equal(t, fixedNow, r.RatedAt)
						return true, nil
					})
				cache.EXPECT().Invalidate(gomock.Any(), 3)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, cache := NewMock(t)
			tt.prepareMock(repo, cache)

			rating, err := service.RateReceipt(context.Background(), "REC-79927398", 7, 8.46, []string{"fast"}, "great")
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{"fast"}, rating.Reasons)
		})
	}
}

func TestListReceipts(t *testing.T) {
	tests := []struct {
		name       string
		party      domain.Party
		page       int
		limit      int
		wantLimit  int
		wantOffset int
		wantErr    error
	}{
		{name: "defaults", party: domain.PartyBuyer, wantLimit: DefaultPageSize, wantOffset: 0},
		{name: "clamps limit", party: domain.PartySeller, page: 3, limit: 500, wantLimit: MaxPageSize, wantOffset: 200},
		{name: "second page", party: domain.PartyBuyer, page: 2, limit: 10, wantLimit: 10, wantOffset: 10},
		{name: "unknown party", party: domain.Party("admin"), wantErr: domain.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _ := NewMock(t)
			if tt.wantErr == nil {
				repo.EXPECT().List(gomock.Any(), 7, tt.party, true, tt.wantLimit, tt.wantOffset).Return(nil, nil)
			}

			receipts, err := service.ListReceipts(context.Background(), 7, tt.party, true, tt.page, tt.limit)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, receipts)
			assert.Empty(t, receipts)
		})
	}
}

func TestMarkViewed(t *testing.T) {
	t.Run("marks", func(t *testing.T) {
		service, repo, _ := NewMock(t)
		repo.EXPECT().MarkViewed(gomock.Any(), "REC-79927398", 3, domain.PartySeller).Return(true, nil)
		assert.NoError(t, service.MarkViewed(context.Background(), "REC-79927398", 3, domain.PartySeller))
	})

	t.Run("missing receipt", func(t *testing.T) {
		service, repo, _ := NewMock(t)
		repo.EXPECT().MarkViewed(gomock.Any(), "REC-79927398", 3, domain.PartySeller).Return(false, nil)
		repo.EXPECT().FindByCode(gomock.Any(), "REC-79927398").Return(nil, nil)
		assert.ErrorIs(t, service.MarkViewed(context.Background(), "REC-79927398", 3, domain.PartySeller), domain.ErrReceiptNotFound)
	})

	t.Run("other party", func(t *testing.T) {
		service, repo, _ := NewMock(t)
		repo.EXPECT().MarkViewed(gomock.Any(), "REC-79927398", 3, domain.PartyBuyer).Return(false, nil)
		repo.EXPECT().FindByCode(gomock.Any(), "REC-79927398").Return(receipt(domain.ReceiptPaid), nil)
		assert.ErrorIs(t, service.MarkViewed(context.Background(), "REC-79927398", 3, domain.PartyBuyer), domain.ErrForbidden)
	})
}

func TestMarkAllViewed(t *testing.T) {
	tests := []struct {
		name        string
		party       domain.Party
		prepareMock func(repo *MockReceiptRepo)
		want        int64
		wantErr     error
	}{
		{
			name:  "buyer side",
			party: domain.PartyBuyer,
			prepareMock: func(repo *MockReceiptRepo) {
				repo.EXPECT().MarkAllViewed(gomock.Any(), 3, domain.PartyBuyer).Return(int64(4), nil)
			},
			want: 4,
		},
		{
			name:  "seller side",
			party: domain.PartySeller,
			prepareMock: func(repo *MockReceiptRepo) {
				repo.EXPECT().MarkAllViewed(gomock.Any(), 3, domain.PartySeller).Return(int64(0), nil)
			},
		},
		{
			name:        "unknown side",
			party:       domain.Party("courier"),
			prepareMock: func(*MockReceiptRepo) {},
			wantErr:     domain.ErrInvalidQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _ := NewMock(t)
			tt.prepareMock(repo)

			n, err := service.MarkAllViewed(context.Background(), 3, tt.party)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}
