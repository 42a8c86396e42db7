package bids

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/marketbid/internal/domain"
	"github.com/GlebRadaev/marketbid/internal/dto"
	"github.com/GlebRadaev/marketbid/internal/handlers/apierror"
	"github.com/GlebRadaev/marketbid/pkg/auth"
	"github.com/GlebRadaev/marketbid/pkg/utils"
)

type Service interface {
	SubmitBid(ctx context.Context, requestID string, sellerID int, terms domain.BidTerms) (*domain.Bid, bool, error)
	GetBidsForRequest(ctx context.Context, requestID string) ([]domain.BidView, error)
	GetBid(ctx context.Context, bidID string, userID int) (*domain.Bid, error)
	AcceptBid(ctx context.Context, bidID string, buyerID int) (time.Time, error)
}

type BidHandler struct {
	bidService Service
}

func New(bidService Service) *BidHandler {
	return &BidHandler{
		bidService: bidService,
	}
}

func toTerms(req dto.SubmitBidRequestDTO) domain.BidTerms {
	terms := domain.BidTerms{
		UnitPrice:    req.UnitPrice,
		TotalPrice:   req.TotalPrice,
		DeliveryTime: req.DeliveryTime,
		Images:       req.Images,
	}
	if req.AutoBid != nil {
		terms.AutoBid = &domain.AutoBid{
			Enabled:   req.AutoBid.Enabled,
			Decrement: req.AutoBid.Decrement,
			Interval:  req.AutoBid.Interval,
			Floor:     req.AutoBid.Floor,
		}
	}
	return terms
}

func toResponse(bid domain.Bid) dto.BidResponseDTO {
	resp := dto.BidResponseDTO{
		ID:           bid.ID,
		RequestID:    bid.RequestID,
		SellerID:     bid.SellerID,
		UnitPrice:    bid.UnitPrice,
		TotalPrice:   bid.TotalPrice,
		DeliveryTime: bid.DeliveryTime,
		Images:       bid.Images,
		Status:       string(bid.Status),
		Accepted:     bid.Accepted,
		PaymentDueAt: bid.PaymentDueAt,
		CreatedAt:    bid.CreatedAt,
		UpdatedAt:    bid.UpdatedAt,
	}
	if resp.Images == nil {
		resp.Images = []string{}
	}
	if bid.AutoBid.Enabled {
		resp.AutoBid = &dto.AutoBidDTO{
			Enabled:   true,
			Decrement: bid.AutoBid.Decrement,
			Interval:  bid.AutoBid.Interval,
			Floor:     bid.AutoBid.Floor,
		}
	}
	return resp
}

// SubmitBid godoc
//
//	@Summary		Submit or update a bid
//	@Description	Create the seller's bid on a request, or replace the terms of the seller's existing bid while it is still pending.
//	@Tags			Bids
//	@Accept			json
//	@Produce		json
//	@Param			requestID	path	string					true	"Request ID"
//	@Param			bid			body	dto.SubmitBidRequestDTO	true	"Bid terms"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.BidResponseDTO	"Bid created"
//	@Success		200	{object}	dto.BidResponseDTO	"Bid updated"
//	@Failure		400	{object}	utils.Response		"Invalid terms"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		404	{object}	utils.Response		"Request not found"
//	@Failure		409	{object}	utils.Response		"Bid is locked or request is closed"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/requests/{requestID}/bids [post]
func (h *BidHandler) SubmitBid(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.SubmitBidRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	bid, created, err := h.bidService.SubmitBid(r.Context(), chi.URLParam(r, "requestID"), sellerID, toTerms(req))
	if err != nil {
		apierror.Respond(w, err)
		return
	}

	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}
	utils.RespondWithJSON(w, code, toResponse(*bid))
}

// GetBidsForRequest godoc
//
//	@Summary		List bids on a request
//	@Description	Bids in submission order, each with the seller's average rating.
//	@Tags			Bids
//	@Produce		json
//	@Param			requestID	path	string	true	"Request ID"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.BidViewResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/requests/{requestID}/bids [get]
func (h *BidHandler) GetBidsForRequest(w http.ResponseWriter, r *http.Request) {
	views, err := h.bidService.GetBidsForRequest(r.Context(), chi.URLParam(r, "requestID"))
	if err != nil {
		apierror.Respond(w, err)
		return
	}

	response := make([]dto.BidViewResponseDTO, 0, len(views))
	for _, v := range views {
		response = append(response, dto.BidViewResponseDTO{
			BidResponseDTO:    toResponse(v.Bid),
			SellerRating:      v.SellerRating,
			SellerRatingCount: v.SellerRatingCount,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetBid godoc
//
//	@Summary	Get a bid
//	@Tags		Bids
//	@Produce	json
//	@Param		bidID	path	string	true	"Bid ID"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.BidResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	403	{object}	utils.Response	"Neither the seller nor the buyer"
//	@Failure	404	{object}	utils.Response	"Bid not found"
//	@Router		/api/bids/{bidID} [get]
func (h *BidHandler) GetBid(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bid, err := h.bidService.GetBid(r.Context(), chi.URLParam(r, "bidID"), userID)
	if err != nil {
		apierror.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(*bid))
}

// AcceptBid godoc
//
//	@Summary		Accept a bid
//	@Description	The request owner picks the winning bid. The buyer then has a fixed window to pay.
//	@Tags			Bids
//	@Produce		json
//	@Param			bidID	path	string	true	"Bid ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.AcceptBidResponseDTO	"Payment deadline"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		403	{object}	utils.Response				"Not the request owner or account suspended"
//	@Failure		404	{object}	utils.Response				"Bid or request not found"
//	@Failure		409	{object}	utils.Response				"Another bid is already accepted"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/bids/{bidID}/accept [post]
func (h *BidHandler) AcceptBid(w http.ResponseWriter, r *http.Request) {
	buyerID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	dueAt, err := h.bidService.AcceptBid(r.Context(), chi.URLParam(r, "bidID"), buyerID)
	if err != nil {
		apierror.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AcceptBidResponseDTO{PaymentDueAt: dueAt.UTC()})
}
