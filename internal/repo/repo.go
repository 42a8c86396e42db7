package repo

import (
	"github.com/GlebRadaev/marketbid/internal/autobid"
	"github.com/GlebRadaev/marketbid/internal/expiry"
	"github.com/GlebRadaev/marketbid/internal/pg"
	"github.com/GlebRadaev/marketbid/internal/ratingcache"
	accountrepo "github.com/GlebRadaev/marketbid/internal/repo/account-repo"
	bidrepo "github.com/GlebRadaev/marketbid/internal/repo/bid-repo"
	receiptrepo "github.com/GlebRadaev/marketbid/internal/repo/receipt-repo"
	requestrepo "github.com/GlebRadaev/marketbid/internal/repo/request-repo"
	"github.com/GlebRadaev/marketbid/internal/service/bidservice"
	"github.com/GlebRadaev/marketbid/internal/service/paymentservice"
	"github.com/GlebRadaev/marketbid/internal/service/penaltyservice"
	"github.com/GlebRadaev/marketbid/internal/service/receiptservice"
)

// BidRepo is every view of the bids table the services and background jobs need.
type BidRepo interface {
	bidservice.BidRepo
	paymentservice.BidRepo
	penaltyservice.BidRepo
	autobid.Repo
	expiry.Repo
}

type AccountRepo interface {
	bidservice.AccountRepo
	penaltyservice.AccountRepo
}

type ReceiptRepo interface {
	paymentservice.ReceiptRepo
	receiptservice.ReceiptRepo
	ratingcache.Source
}

type Repositories struct {
	BidRepo     BidRepo
	RequestRepo bidservice.RequestRepo
	AccountRepo AccountRepo
	ReceiptRepo ReceiptRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		BidRepo:     bidrepo.New(conn, txManager),
		RequestRepo: requestrepo.New(conn),
		AccountRepo: accountrepo.New(conn, txManager),
		ReceiptRepo: receiptrepo.New(conn, txManager),
	}
}
