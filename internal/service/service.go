package service

import (
	"github.com/GlebRadaev/marketbid/internal/config"
	"github.com/GlebRadaev/marketbid/internal/events"
	"github.com/GlebRadaev/marketbid/internal/expiry"
	"github.com/GlebRadaev/marketbid/internal/handlers/bids"
	"github.com/GlebRadaev/marketbid/internal/handlers/payments"
	"github.com/GlebRadaev/marketbid/internal/handlers/receipts"
	"github.com/GlebRadaev/marketbid/internal/repo"
	"github.com/GlebRadaev/marketbid/internal/service/bidservice"
	"github.com/GlebRadaev/marketbid/internal/service/paymentservice"
	"github.com/GlebRadaev/marketbid/internal/service/penaltyservice"
	"github.com/GlebRadaev/marketbid/internal/service/receiptservice"
)

// RatingCache serves seller aggregates to the bid listing and is invalidated on new ratings.
type RatingCache interface {
	bidservice.RatingSource
	receiptservice.RatingCache
}

// Collaborators are the non-database dependencies of the services.
type Collaborators struct {
	Gateway  paymentservice.Gateway
	Ratings  RatingCache
	Tracker  bidservice.Tracker
	Notifier events.Notifier
}

type Services struct {
	BidService     bids.Service
	PaymentService payments.Service
	ReceiptService receipts.Service
	PenaltyService expiry.Expirer
}

func New(cfg *config.Config, repo *repo.Repositories, c Collaborators) *Services {
	bidService := bidservice.New(
		repo.BidRepo,
		repo.RequestRepo,
		repo.AccountRepo,
		c.Ratings,
		c.Tracker,
		c.Notifier,
		cfg.PaymentWindow,
	)
	paymentService := paymentservice.New(
		repo.BidRepo,
		repo.RequestRepo,
		repo.ReceiptRepo,
		c.Gateway,
		c.Notifier,
		cfg.FeeBasisPoints,
		cfg.Currency,
	)
	receiptService := receiptservice.New(repo.ReceiptRepo, c.Ratings)
	penaltyService := penaltyservice.New(repo.BidRepo, repo.RequestRepo, repo.AccountRepo, c.Notifier)

	return &Services{
		BidService:     bidService,
		PaymentService: paymentService,
		ReceiptService: receiptService,
		PenaltyService: penaltyService,
	}
}
