package repo

import (
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/marketbid/internal/pg"
	accountrepo "github.com/GlebRadaev/marketbid/internal/repo/account-repo"
	bidrepo "github.com/GlebRadaev/marketbid/internal/repo/bid-repo"
	receiptrepo "github.com/GlebRadaev/marketbid/internal/repo/receipt-repo"
	requestrepo "github.com/GlebRadaev/marketbid/internal/repo/request-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.BidRepo)
	assert.NotNil(t, repo.RequestRepo)
	assert.NotNil(t, repo.AccountRepo)
	assert.NotNil(t, repo.ReceiptRepo)

	assert.IsType(t, &bidrepo.Repository{}, repo.BidRepo)
	assert.IsType(t, &requestrepo.Repository{}, repo.RequestRepo)
	assert.IsType(t, &accountrepo.Repository{}, repo.AccountRepo)
	assert.IsType(t, &receiptrepo.Repository{}, repo.ReceiptRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
