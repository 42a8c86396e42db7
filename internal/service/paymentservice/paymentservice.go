package paymentservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/marketbid/internal/domain"
	"github.com/GlebRadaev/marketbid/internal/events"
	"github.com/GlebRadaev/marketbid/internal/gateway"
	"github.com/GlebRadaev/marketbid/pkg/money"
	"github.com/GlebRadaev/marketbid/pkg/validate"
)

const maxCodeAttempts = 5

// Charge metadata keys.
const (
	metaRequestID = "request_id"
	metaBidID     = "bid_id"
	metaBuyerID   = "buyer_id"
	metaSellerID  = "seller_id"
	metaSubtotal  = "subtotal"
	metaFee       = "fee"
)

type BidRepo interface {
	FindByID(ctx context.Context, bidID string) (*domain.Bid, error)
}

type RequestRepo interface {
	FindByID(ctx context.Context, requestID string) (*domain.Request, error)
}

type ReceiptRepo interface {
	FindByBidID(ctx context.Context, bidID string) (*domain.Receipt, error)
	Settle(ctx context.Context, rc *domain.Receipt) (*domain.Receipt, bool, error)
}

type Gateway interface {
	CreateCharge(ctx context.Context, req gateway.ChargeRequest) (*gateway.Charge, error)
	RetrieveCharge(ctx context.Context, externalRef string) (*gateway.Charge, error)
}

type Service struct {
	bidRepo        BidRepo
	requestRepo    RequestRepo
	receiptRepo    ReceiptRepo
	gateway        Gateway
	notifier       events.Notifier
	feeBasisPoints int64
	currency       string
	newCode        func() string
	now            func() time.Time
}

func New(
	bidRepo BidRepo,
	requestRepo RequestRepo,
	receiptRepo ReceiptRepo,
	gw Gateway,
	notifier events.Notifier,
	feeBasisPoints int64,
	currency string,
) *Service {
	return &Service{
		bidRepo:        bidRepo,
		requestRepo:    requestRepo,
		receiptRepo:    receiptRepo,
		gateway:        gw,
		notifier:       notifier,
		feeBasisPoints: feeBasisPoints,
		currency:       currency,
		newCode:        validate.NewReceiptCode,
		now:            time.Now,
	}
}

// InitiatePayment charges the buyer for an accepted bid and settles it when the charge
// succeeds straight away. A bid that already has a receipt is not charged again.
func (s *Service) InitiatePayment(ctx context.Context, bidID string, buyerID int, methodRef string) (string, error) {
	methodRef = strings.TrimSpace(methodRef)
	if methodRef == "" {
		return "", domain.ErrInvalidPaymentData
	}
	if !validate.IsUUID(bidID) {
		return "", domain.ErrBidNotFound
	}

	bid, err := s.bidRepo.FindByID(ctx, bidID)
	if err != nil {
		return "", err
	}
	if bid == nil {
		return "", domain.ErrBidNotFound
	}
	request, err := s.requestRepo.FindByID(ctx, bid.RequestID)
	if err != nil {
		return "", err
	}
	if request == nil {
		return "", domain.ErrRequestNotFound
	}
	if request.BuyerID != buyerID {
		return "", domain.ErrNotOwner
	}

	existing, err := s.receiptRepo.FindByBidID(ctx, bid.ID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.Code, nil
	}
	if bid.Status != domain.BidAcceptedPendingPayment || bid.PaymentOverdue(s.now()) {
		return "", domain.ErrBidNotAccepted
	}

	total, fee := money.WithFee(bid.TotalPrice, s.feeBasisPoints)
	charge, err := s.gateway.CreateCharge(ctx, gateway.ChargeRequest{
		Amount:         total,
		Currency:       s.currency,
		PayerRef:       strconv.Itoa(buyerID),
		MethodRef:      methodRef,
		IdempotencyKey: bid.ID + ":" + methodRef,
		Metadata: map[string]string{
			metaRequestID: bid.RequestID,
			metaBidID:     bid.ID,
			metaBuyerID:   strconv.Itoa(buyerID),
			metaSellerID:  strconv.Itoa(bid.SellerID),
			metaSubtotal:  bid.TotalPrice.StringFixed(money.Places),
			metaFee:       fee.StringFixed(money.Places),
		},
	})
	if err != nil {
		zap.L().Error("charge failed", zap.String("bidID", bid.ID), zap.Error(err))
		return "", fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}
	if !charge.Succeeded() {
		zap.L().Info("charge not succeeded", zap.String("bidID", bid.ID), zap.String("status", charge.Status))
		return "", domain.ErrPaymentNotSucceeded
	}
	return s.settle(ctx, charge, buyerID)
}

// Summary quotes the amount the buyer will be charged for a bid on their request.
func (s *Service) Summary(ctx context.Context, bidID string, buyerID int) (*domain.PaymentSummary, error) {
	if !validate.IsUUID(bidID) {
		return nil, domain.ErrBidNotFound
	}
	bid, err := s.bidRepo.FindByID(ctx, bidID)
	if err != nil {
		return nil, err
	}
	if bid == nil {
		return nil, domain.ErrBidNotFound
	}
	request, err := s.requestRepo.FindByID(ctx, bid.RequestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrRequestNotFound
	}
	if request.BuyerID != buyerID {
		return nil, domain.ErrNotOwner
	}

	total, fee := money.WithFee(bid.TotalPrice, s.feeBasisPoints)
	return &domain.PaymentSummary{
		Bid:            *bid,
		Request:        *request,
		Subtotal:       money.Round(bid.TotalPrice),
		Fee:            fee,
		Total:          total,
		Currency:       s.currency,
		FeeBasisPoints: s.feeBasisPoints,
	}, nil
}

// ReconcileCharge turns a successful external charge into a receipt. It is safe to call
// repeatedly for the same charge: later calls return the receipt created by the first.
func (s *Service) ReconcileCharge(ctx context.Context, externalRef string, buyerID int) (string, error) {
	externalRef = strings.TrimSpace(externalRef)
	if externalRef == "" {
		return "", domain.ErrInvalidPaymentData
	}

	charge, err := s.gateway.RetrieveCharge(ctx, externalRef)
	if errors.Is(err, gateway.ErrChargeNotFound) {
		return "", domain.ErrPaymentNotSucceeded
	}
	if err != nil {
		zap.L().Error("can't retrieve charge", zap.String("externalRef", externalRef), zap.Error(err))
		return "", fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}
	if !charge.Succeeded() {
		zap.L().Info("charge not succeeded", zap.String("externalRef", externalRef), zap.String("status", charge.Status))
		return "", domain.ErrPaymentNotSucceeded
	}
	return s.settle(ctx, charge, buyerID)
}

func (s *Service) settle(ctx context.Context, charge *gateway.Charge, buyerID int) (string, error) {
	bidID := charge.Metadata[metaBidID]
	requestID := charge.Metadata[metaRequestID]
	if !validate.IsUUID(bidID) || !validate.IsUUID(requestID) {
		return "", domain.ErrDataMissing
	}

	existing, err := s.receiptRepo.FindByBidID(ctx, bidID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		if existing.BuyerID != buyerID {
			return "", domain.ErrNotOwner
		}
		return existing.Code, nil
	}

	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return "", err
	}
	bid, err := s.bidRepo.FindByID(ctx, bidID)
	if err != nil {
		return "", err
	}
	if request == nil || bid == nil || bid.RequestID != request.ID {
		return "", domain.ErrDataMissing
	}
	if request.BuyerID != buyerID {
		return "", domain.ErrNotOwner
	}
	if bid.Status != domain.BidAcceptedPendingPayment {
		return "", domain.ErrBidNotAccepted
	}

	subtotal, fee, amount := s.amounts(charge, bid)
	currency := charge.Currency
	if currency == "" {
		currency = s.currency
	}
	receipt := &domain.Receipt{
		RequestID:   request.ID,
		BidID:       bid.ID,
		BuyerID:     request.BuyerID,
		SellerID:    bid.SellerID,
		Subtotal:    subtotal,
		Fee:         fee,
		Amount:      amount,
		Currency:    currency,
		ExternalRef: charge.ID,
		CardBrand:   charge.PaymentMethod.Brand,
		CardLast4:   charge.PaymentMethod.Last4,
		CreatedAt:   s.now(),
	}

	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		receipt.Code = s.newCode()
		saved, created, err := s.receiptRepo.Settle(ctx, receipt)
		if errors.Is(err, domain.ErrReceiptCodeTaken) {
			zap.L().Warn("receipt code collision", zap.String("code", receipt.Code), zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return "", err
		}
		if !created {
			return saved.Code, nil
		}

		zap.L().Info("payment settled", zap.String("bidID", bid.ID), zap.String("receiptID", saved.Code))
		s.notifier.Notify(ctx, events.Event{
			Type:        events.PaymentSettled,
			RequestID:   request.ID,
			BidID:       bid.ID,
			BuyerID:     request.BuyerID,
			SellerID:    bid.SellerID,
			ReceiptCode: saved.Code,
			At:          saved.CreatedAt,
		})
		return saved.Code, nil
	}
	return "", fmt.Errorf("can't allocate receipt code after %d attempts", maxCodeAttempts)
}

// amounts prefers the figures fixed at charge time over recomputing them.
func (s *Service) amounts(charge *gateway.Charge, bid *domain.Bid) (subtotal, fee, amount decimal.Decimal) {
	subtotal, errSub := decimal.NewFromString(charge.Metadata[metaSubtotal])
	fee, errFee := decimal.NewFromString(charge.Metadata[metaFee])
	if errSub == nil && errFee == nil {
		return subtotal, fee, money.Round(subtotal.Add(fee))
	}

	subtotal = bid.TotalPrice
	if charge.AmountReceived > 0 {
		amount = charge.Received()
		return subtotal, money.Round(amount.Sub(subtotal)), amount
	}
	amount, fee = money.WithFee(subtotal, s.feeBasisPoints)
	return subtotal, fee, amount
}
