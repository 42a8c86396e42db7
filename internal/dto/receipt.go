package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type RatingDTO struct {
	Value   float64   `json:"value" example:"8.5"`
	Reasons []string  `json:"reasons"`
	Comment string    `json:"comment,omitempty"`
	RatedAt time.Time `json:"rated_at"`
}

type ReceiptResponseDTO struct {
	ID             string          `json:"id" example:"REC-79927398"`
	RequestID      string          `json:"request_id"`
	BidID          string          `json:"bid_id"`
	BuyerID        int             `json:"buyer_id"`
	SellerID       int             `json:"seller_id"`
	Subtotal       decimal.Decimal `json:"subtotal" swaggertype:"string" example:"100.00"`
	Fee            decimal.Decimal `json:"fee" swaggertype:"string" example:"8.00"`
	Amount         decimal.Decimal `json:"amount" swaggertype:"string" example:"108.00"`
	Currency       string          `json:"currency" example:"usd"`
	PaymentMethod  string          `json:"payment_method,omitempty" example:"VISA •••• 4242"`
	Status         string          `json:"status" example:"paid"`
	ViewedByBuyer  bool            `json:"viewed_by_buyer"`
	ViewedBySeller bool            `json:"viewed_by_seller"`
	Rating         *RatingDTO      `json:"rating,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

type RateReceiptRequestDTO struct {
	Value   *float64 `json:"value" example:"9"`
	Reasons []string `json:"reasons,omitempty"`
	Comment string   `json:"comment,omitempty" example:"Fast delivery"`
}

type MarkAllViewedResponseDTO struct {
	Updated int64 `json:"updated" example:"3"`
}
