package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type AutoBidDTO struct {
	Enabled   bool            `json:"enabled" example:"true"`
	Decrement decimal.Decimal `json:"decrement" swaggertype:"string" example:"5.00"`
	Interval  int             `json:"interval" example:"60"`
	Floor     decimal.Decimal `json:"floor" swaggertype:"string" example:"80.00"`
}

type SubmitBidRequestDTO struct {
	UnitPrice    *decimal.Decimal `json:"unit_price" swaggertype:"string" example:"12.50"`
	TotalPrice   *decimal.Decimal `json:"total_price" swaggertype:"string" example:"100.00"`
	DeliveryTime *string          `json:"delivery_time,omitempty" example:"3 days"`
	Images       []string         `json:"images,omitempty"`
	AutoBid      *AutoBidDTO      `json:"auto_bid,omitempty"`
}

type BidResponseDTO struct {
	ID           string          `json:"id" example:"7f1c0c7e-2b8e-4d55-9a57-53b2f1e2d0a4"`
	RequestID    string          `json:"request_id"`
	SellerID     int             `json:"seller_id" example:"42"`
	UnitPrice    decimal.Decimal `json:"unit_price" swaggertype:"string" example:"12.50"`
	TotalPrice   decimal.Decimal `json:"total_price" swaggertype:"string" example:"100.00"`
	DeliveryTime string          `json:"delivery_time" example:"3 days"`
	Images       []string        `json:"images"`
	AutoBid      *AutoBidDTO     `json:"auto_bid,omitempty"`
	Status       string          `json:"status" example:"pending"`
	Accepted     bool            `json:"accepted"`
	PaymentDueAt *time.Time      `json:"payment_due_at,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type BidViewResponseDTO struct {
	BidResponseDTO
	SellerRating      float64 `json:"seller_rating" example:"8.7"`
	SellerRatingCount int     `json:"seller_rating_count" example:"12"`
}

type AcceptBidResponseDTO struct {
	PaymentDueAt time.Time `json:"payment_due_at" example:"2020-12-09T16:09:57Z"`
}
