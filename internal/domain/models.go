package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BidStatus string

const (
	BidPending                BidStatus = "pending"
	BidAcceptedPendingPayment BidStatus = "accepted_pending_payment"
	BidPaid                   BidStatus = "paid"
	BidCompleted              BidStatus = "completed"
	BidCancelledNonPayment    BidStatus = "cancelled_nonpayment"
)

// Locked reports whether the seller can no longer change the bid.
func (s BidStatus) Locked() bool {
	switch s {
	case BidAcceptedPendingPayment, BidPaid, BidCompleted:
		return true
	}
	return false
}

type RequestStatus string

const (
	RequestOpen      RequestStatus = "open"
	RequestCompleted RequestStatus = "completed"
	RequestCancelled RequestStatus = "cancelled"
)

// Party is the side of a receipt a user acts as.
type Party string

const (
	PartyBuyer  Party = "buyer"
	PartySeller Party = "seller"
)

type ReceiptStatus string

const (
	ReceiptPaid      ReceiptStatus = "paid"
	ReceiptCompleted ReceiptStatus = "completed"
)

type Request struct {
	ID          string        `db:"id"`
	BuyerID     int           `db:"buyer_id"`
	ProductName string        `db:"product_name"`
	Category    string        `db:"category"`
	Quantity    int           `db:"quantity"`
	Condition   string        `db:"condition"`
	Status      RequestStatus `db:"status"`
	CreatedAt   time.Time     `db:"created_at"`
}

type AutoBid struct {
	Enabled   bool            `db:"auto_bid_enabled"`
	Decrement decimal.Decimal `db:"auto_bid_decrement"`
	Interval  int             `db:"auto_bid_interval"`
	Floor     decimal.Decimal `db:"auto_bid_floor"`
}

type Bid struct {
	ID           string          `db:"id"`
	RequestID    string          `db:"request_id"`
	SellerID     int             `db:"seller_id"`
	UnitPrice    decimal.Decimal `db:"unit_price"`
	TotalPrice   decimal.Decimal `db:"total_price"`
	DeliveryTime string          `db:"delivery_time"`
	Images       []string        `db:"images"`
	AutoBid      AutoBid
	Status       BidStatus  `db:"status"`
	Accepted     bool       `db:"accepted"`
	AcceptedAt   *time.Time `db:"accepted_at"`
	PaymentDueAt *time.Time `db:"payment_due_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// PaymentOverdue reports whether the payment window of an accepted bid has lapsed.
func (b *Bid) PaymentOverdue(now time.Time) bool {
	return b.Status == BidAcceptedPendingPayment && b.PaymentDueAt != nil && b.PaymentDueAt.Before(now)
}

// AutoBidActive reports whether the scheduler should keep decaying the price.
func (b *Bid) AutoBidActive() bool {
	return b.Status == BidPending && b.AutoBid.Enabled
}

type BidTerms struct {
	UnitPrice    *decimal.Decimal
	TotalPrice   *decimal.Decimal
	DeliveryTime *string
	Images       []string
	AutoBid      *AutoBid
}

type SellerRating struct {
	SellerID int     `db:"seller_id"`
	Average  float64 `db:"avg_rating"`
	Count    int     `db:"rating_count"`
}

type BidView struct {
	Bid
	SellerRating      float64
	SellerRatingCount int
}

type Rating struct {
	Value   float64   `db:"rating_value"`
	Reasons []string  `db:"rating_reasons"`
	Comment string    `db:"rating_comment"`
	RatedAt time.Time `db:"rated_at"`
}

type Receipt struct {
	ID             int             `db:"id"`
	Code           string          `db:"code"`
	RequestID      string          `db:"request_id"`
	BidID          string          `db:"bid_id"`
	BuyerID        int             `db:"buyer_id"`
	SellerID       int             `db:"seller_id"`
	Subtotal       decimal.Decimal `db:"subtotal"`
	Fee            decimal.Decimal `db:"fee"`
	Amount         decimal.Decimal `db:"amount"`
	Currency       string          `db:"currency"`
	ExternalRef    string          `db:"external_ref"`
	CardBrand      string          `db:"card_brand"`
	CardLast4      string          `db:"card_last4"`
	Status         ReceiptStatus   `db:"status"`
	ViewedByBuyer  bool            `db:"viewed_by_buyer"`
	ViewedBySeller bool            `db:"viewed_by_seller"`
	Rating         *Rating
	CreatedAt      time.Time `db:"created_at"`
}

// PaymentMethod renders the card snapshot, e.g. "VISA •••• 4242".
func (r *Receipt) PaymentMethod() string {
	if r.CardBrand == "" || r.CardLast4 == "" {
		return ""
	}
	return r.CardBrand + " •••• " + r.CardLast4
}

type Strike struct {
	ID        int       `db:"id"`
	AccountID int       `db:"account_id"`
	BidID     string    `db:"bid_id"`
	Reason    string    `db:"reason"`
	CreatedAt time.Time `db:"created_at"`
}

// PaymentSummary is the quote a buyer sees before paying for an accepted bid.
type PaymentSummary struct {
	Bid            Bid
	Request        Request
	Subtotal       decimal.Decimal
	Fee            decimal.Decimal
	Total          decimal.Decimal
	Currency       string
	FeeBasisPoints int64
}
