package receipts

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/marketbid/internal/domain"
	"github.com/GlebRadaev/marketbid/internal/dto"
	"github.com/GlebRadaev/marketbid/internal/handlers/apierror"
	"github.com/GlebRadaev/marketbid/pkg/auth"
	"github.com/GlebRadaev/marketbid/pkg/utils"
	"github.com/GlebRadaev/marketbid/pkg/validate"
)

type Service interface {
	GetReceipt(ctx context.Context, code string, userID int) (*domain.Receipt, error)
	ListReceipts(ctx context.Context, userID int, party domain.Party, onlyUnviewed bool, page, limit int) ([]domain.Receipt, error)
	MarkViewed(ctx context.Context, code string, userID int, party domain.Party) error
	CompleteReceipt(ctx context.Context, code string, buyerID int) (*domain.Receipt, error)
	RateReceipt(ctx context.Context, code string, buyerID int, value float64, reasons []string, comment string) (*domain.Rating, error)
	MarkAllViewed(ctx context.Context, userID int, party domain.Party) (int64, error)
}

type ReceiptHandler struct {
	receiptService Service
}

func New(receiptService Service) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
	}
}

func toRating(rating *domain.Rating) *dto.RatingDTO {
	if rating == nil {
		return nil
	}
	reasons := rating.Reasons
	if reasons == nil {
		reasons = []string{}
	}
	return &dto.RatingDTO{
		Value:   rating.Value,
		Reasons: reasons,
		Comment: rating.Comment,
		RatedAt: rating.RatedAt,
	}
}

func toResponse(rc domain.Receipt) dto.ReceiptResponseDTO {
	return dto.ReceiptResponseDTO{
		ID:             rc.Code,
		RequestID:      rc.RequestID,
		BidID:          rc.BidID,
		BuyerID:        rc.BuyerID,
		SellerID:       rc.SellerID,
		Subtotal:       rc.Subtotal,
		Fee:            rc.Fee,
		Amount:         rc.Amount,
		Currency:       rc.Currency,
		PaymentMethod:  rc.PaymentMethod(),
		Status:         string(rc.Status),
		ViewedByBuyer:  rc.ViewedByBuyer,
		ViewedBySeller: rc.ViewedBySeller,
		Rating:         toRating(rc.Rating),
		CreatedAt:      rc.CreatedAt,
	}
}

// party reads the "role" query parameter; buyer is the default.
func party(r *http.Request) domain.Party {
	if role := r.URL.Query().Get("role"); role != "" {
		return domain.Party(role)
	}
	return domain.PartyBuyer
}

// receiptCode reads the receipt id from the path; ids that could never have been issued are not found.
func receiptCode(r *http.Request) (string, error) {
	code := chi.URLParam(r, "receiptID")
	if !validate.IsReceiptCode(code) {
		return "", domain.ErrReceiptNotFound
	}
	return code, nil
}

func intParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ErrInvalidQuery
	}
	return n, nil
}

// ListReceipts godoc
//
//	@Summary		List receipts
//	@Description	Receipts of the authenticated user as buyer or seller, newest first.
//	@Tags			Receipts
//	@Produce		json
//	@Param			role		query	string	false	"buyer or seller"	default(buyer)
//	@Param			unviewed	query	bool	false	"Only receipts not yet viewed"
//	@Param			page		query	int		false	"Page number"	default(1)
//	@Param			limit		query	int		false	"Page size"		default(20)
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ReceiptResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid query parameters"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/receipts [get]
func (h *ReceiptHandler) ListReceipts(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	page, err := intParam(r, "page")
	if err != nil {
		apierror.Respond(w, err)
		return
	}
	limit, err := intParam(r, "limit")
	if err != nil {
		apierror.Respond(w, err)
		return
	}
	onlyUnviewed := false
	if raw := r.URL.Query().Get("unviewed"); raw != "" {
		onlyUnviewed, err = strconv.ParseBool(raw)
		if err != nil {
			apierror.Respond(w, domain.ErrInvalidQuery)
			return
		}
	}

	receipts, err := h.receiptService.ListReceipts(r.Context(), userID, party(r), onlyUnviewed, page, limit)
	if err != nil {
		apierror.Respond(w, err)
		return
	}

	response := make([]dto.ReceiptResponseDTO, 0, len(receipts))
	for _, rc := range receipts {
		response = append(response, toResponse(rc))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetReceipt godoc
//
//	@Summary	Get a receipt
//	@Tags		Receipts
//	@Produce	json
//	@Param		receiptID	path	string	true	"Receipt ID"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.ReceiptResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	403	{object}	utils.Response	"Not a party of the receipt"
//	@Failure	404	{object}	utils.Response	"Receipt not found"
//	@Router		/api/receipts/{receiptID} [get]
func (h *ReceiptHandler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	code, err := receiptCode(r)
	if err != nil {
		apierror.Respond(w, err)
		return
	}

	rc, err := h.receiptService.GetReceipt(r.Context(), code, userID)
	if err != nil {
		apierror.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(*rc))
}

// CompleteReceipt godoc
//
//	@Summary		Confirm delivery
//	@Description	The buyer marks a paid receipt as completed, which unlocks rating.
//	@Tags			Receipts
//	@Produce		json
//	@Param			receiptID	path	string	true	"Receipt ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ReceiptResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the buyer"
//	@Failure		404	{object}	utils.Response	"Receipt not found"
//	@Failure		409	{object}	utils.Response	"Receipt is not paid"
//	@Router			/api/receipts/{receiptID}/complete [post]
func (h *ReceiptHandler) CompleteReceipt(w http.ResponseWriter, r *http.Request) {
	buyerID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	code, err := receiptCode(r)
	if err != nil {
		apierror.Respond(w, err)
		return
	}

	rc, err := h.receiptService.CompleteReceipt(r.Context(), code, buyerID)
	if err != nil {
		apierror.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(*rc))
}

// RateReceipt godoc
//
//	@Summary		Rate the seller
//	@Description	One rating per completed receipt, on a 1 to 10 scale with one decimal.
//	@Tags			Receipts
//	@Accept			json
//	@Produce		json
//	@Param			receiptID	path	string						true	"Receipt ID"
//	@Param			rating		body	dto.RateReceiptRequestDTO	true	"Rating"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.RatingDTO
//	@Failure		400	{object}	utils.Response	"Invalid rating"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the buyer"
//	@Failure		404	{object}	utils.Response	"Receipt not found"
//	@Failure		409	{object}	utils.Response	"Receipt not completed or already rated"
//	@Router			/api/receipts/{receiptID}/rating [post]
func (h *ReceiptHandler) RateReceipt(w http.ResponseWriter, r *http.Request) {
	buyerID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	code, err := receiptCode(r)
	if err != nil {
		apierror.Respond(w, err)
		return
	}

	var req dto.RateReceiptRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Value == nil {
		apierror.Respond(w, domain.ErrInvalidRating)
		return
	}

	rating, err := h.receiptService.RateReceipt(r.Context(), code, buyerID, *req.Value, req.Reasons, req.Comment)
	if err != nil {
		apierror.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRating(rating))
}

// MarkViewed godoc
//
//	@Summary	Mark a receipt as viewed
//	@Tags		Receipts
//	@Produce	json
//	@Param		receiptID	path	string	true	"Receipt ID"
//	@Param		role		query	string	false	"buyer or seller"	default(buyer)
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	403	{object}	utils.Response	"Not a party of the receipt"
//	@Failure	404	{object}	utils.Response	"Receipt not found"
//	@Router		/api/receipts/{receiptID}/viewed [post]
func (h *ReceiptHandler) MarkViewed(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	code, err := receiptCode(r)
	if err != nil {
		apierror.Respond(w, err)
		return
	}

	if err := h.receiptService.MarkViewed(r.Context(), code, userID, party(r)); err != nil {
		apierror.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Receipt marked as viewed"})
}

// MarkAllViewed godoc
//
//	@Summary	Mark all receipts as viewed
//	@Tags		Receipts
//	@Produce	json
//	@Param		role	query	string	false	"buyer or seller"	default(buyer)
//	@Security	BearerAuth
//	@Success	200	{object}	dto.MarkAllViewedResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid role"
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/receipts/viewed [post]
func (h *ReceiptHandler) MarkAllViewed(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	updated, err := h.receiptService.MarkAllViewed(r.Context(), userID, party(r))
	if err != nil {
		apierror.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MarkAllViewedResponseDTO{Updated: updated})
}
