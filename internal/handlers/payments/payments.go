package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/marketbid/internal/domain"
	"github.com/GlebRadaev/marketbid/internal/dto"
	"github.com/GlebRadaev/marketbid/internal/handlers/apierror"
	"github.com/GlebRadaev/marketbid/pkg/auth"
	"github.com/GlebRadaev/marketbid/pkg/utils"
)

type Service interface {
	InitiatePayment(ctx context.Context, bidID string, buyerID int, methodRef string) (string, error)
	ReconcileCharge(ctx context.Context, externalRef string, buyerID int) (string, error)
	Summary(ctx context.Context, bidID string, buyerID int) (*domain.PaymentSummary, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// InitiatePayment godoc
//
//	@Summary		Pay for an accepted bid
//	@Description	Charges the buyer for the accepted bid plus the platform fee and returns the receipt once the charge succeeds.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			payment	body	dto.InitiatePaymentRequestDTO	true	"Bid and payment method"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PaymentResponseDTO	"Receipt issued"
//	@Failure		400	{object}	utils.Response			"Invalid payment data"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		403	{object}	utils.Response			"Not the buyer"
//	@Failure		404	{object}	utils.Response			"Bid not found"
//	@Failure		409	{object}	utils.Response			"Bid is not awaiting payment"
//	@Failure		502	{object}	utils.Response			"Charge failed"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/payments [post]
func (h *PaymentHandler) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	buyerID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.InitiatePaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.BidID) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Bid ID is required")
		return
	}

	code, err := h.paymentService.InitiatePayment(r.Context(), req.BidID, buyerID, req.PaymentMethod)
	if err != nil {
		apierror.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentResponseDTO{ReceiptID: code})
}

// ReconcileCharge godoc
//
//	@Summary		Settle a successful charge
//	@Description	Turns a charge that already succeeded at the processor into a receipt. Safe to repeat.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			charge	body	dto.ReconcilePaymentRequestDTO	true	"Charge reference"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PaymentResponseDTO	"Receipt issued"
//	@Failure		400	{object}	utils.Response			"Invalid payment data"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		403	{object}	utils.Response			"Not the buyer"
//	@Failure		404	{object}	utils.Response			"Payment data missing"
//	@Failure		409	{object}	utils.Response			"Bid is not awaiting payment"
//	@Failure		502	{object}	utils.Response			"Charge not succeeded or processor unavailable"
//	@Router			/api/payments/reconcile [post]
func (h *PaymentHandler) ReconcileCharge(w http.ResponseWriter, r *http.Request) {
	buyerID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.ReconcilePaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.ChargeID) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Charge ID is required")
		return
	}

	code, err := h.paymentService.ReconcileCharge(r.Context(), req.ChargeID, buyerID)
	if err != nil {
		apierror.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentResponseDTO{ReceiptID: code})
}

// Summary godoc
//
//	@Summary		Quote a payment
//	@Description	Returns the bid, its request and the amount the buyer will be charged including the platform fee.
//	@Tags			Payments
//	@Produce		json
//	@Param			bidID	path	string	true	"Bid ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PaymentSummaryResponseDTO	"Payment quote"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		403	{object}	utils.Response					"Not the buyer"
//	@Failure		404	{object}	utils.Response					"Bid not found"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/payments/summary/{bidID} [get]
func (h *PaymentHandler) Summary(w http.ResponseWriter, r *http.Request) {
	buyerID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summary, err := h.paymentService.Summary(r.Context(), chi.URLParam(r, "bidID"), buyerID)
	if err != nil {
		apierror.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentSummaryResponseDTO{
		BidID:        summary.Bid.ID,
		RequestID:    summary.Request.ID,
		ProductName:  summary.Request.ProductName,
		Quantity:     summary.Request.Quantity,
		SellerID:     summary.Bid.SellerID,
		DeliveryTime: summary.Bid.DeliveryTime,
		Status:       string(summary.Bid.Status),
		PaymentDueAt: summary.Bid.PaymentDueAt,
		Subtotal:     summary.Subtotal,
		Fee:          summary.Fee,
		Total:        summary.Total,
		Currency:     summary.Currency,
	})
}
