package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type InitiatePaymentRequestDTO struct {
	BidID         string `json:"bid_id" example:"7f1c0c7e-2b8e-4d55-9a57-53b2f1e2d0a4"`
	PaymentMethod string `json:"payment_method" example:"pm_card_visa"`
}

type ReconcilePaymentRequestDTO struct {
	ChargeID string `json:"charge_id" example:"ch_3MmlLrLkdIwHu7ix0snN0B15"`
}

type PaymentResponseDTO struct {
	ReceiptID string `json:"receipt_id" example:"REC-79927398"`
}

type PaymentSummaryResponseDTO struct {
	BidID        string          `json:"bid_id" example:"7f1c0c7e-2b8e-4d55-9a57-53b2f1e2d0a4"`
	RequestID    string          `json:"request_id"`
	ProductName  string          `json:"product_name" example:"Office chairs"`
	Quantity     int             `json:"quantity" example:"10"`
	SellerID     int             `json:"seller_id" example:"42"`
	DeliveryTime string          `json:"delivery_time" example:"3 days"`
	Status       string          `json:"status" example:"accepted_pending_payment"`
	PaymentDueAt *time.Time      `json:"payment_due_at,omitempty"`
	Subtotal     decimal.Decimal `json:"subtotal" swaggertype:"string" example:"100.00"`
	Fee          decimal.Decimal `json:"fee" swaggertype:"string" example:"8.00"`
	Total        decimal.Decimal `json:"total" swaggertype:"string" example:"108.00"`
	Currency     string          `json:"currency" example:"usd"`
}
