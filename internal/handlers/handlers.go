package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/marketbid/docs"
	bidhandlers "github.com/GlebRadaev/marketbid/internal/handlers/bids"
	paymenthandlers "github.com/GlebRadaev/marketbid/internal/handlers/payments"
	receipthandlers "github.com/GlebRadaev/marketbid/internal/handlers/receipts"
	"github.com/GlebRadaev/marketbid/internal/service"
	"github.com/GlebRadaev/marketbid/pkg/auth"
)

type BidHandler interface {
	SubmitBid(w http.ResponseWriter, r *http.Request)
	GetBidsForRequest(w http.ResponseWriter, r *http.Request)
	GetBid(w http.ResponseWriter, r *http.Request)
	AcceptBid(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	InitiatePayment(w http.ResponseWriter, r *http.Request)
	ReconcileCharge(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type ReceiptHandler interface {
	ListReceipts(w http.ResponseWriter, r *http.Request)
	GetReceipt(w http.ResponseWriter, r *http.Request)
	CompleteReceipt(w http.ResponseWriter, r *http.Request)
	RateReceipt(w http.ResponseWriter, r *http.Request)
	MarkViewed(w http.ResponseWriter, r *http.Request)
	MarkAllViewed(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	BidHandler     BidHandler
	PaymentHandler PaymentHandler
	ReceiptHandler ReceiptHandler
	jwtService     auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		BidHandler:     bidhandlers.New(s.BidService),
		PaymentHandler: paymenthandlers.New(s.PaymentService),
		ReceiptHandler: receipthandlers.New(s.ReceiptService),
		jwtService:     jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.jwtService))

		r.Route("/requests/{requestID}/bids", func(r chi.Router) {
			r.Post("/", h.BidHandler.SubmitBid)
			r.Get("/", h.BidHandler.GetBidsForRequest)
		})
		r.Route("/bids/{bidID}", func(r chi.Router) {
			r.Get("/", h.BidHandler.GetBid)
			r.Post("/accept", h.BidHandler.AcceptBid)
		})
		r.Route("/payments", func(r chi.Router) {
			r.Post("/", h.PaymentHandler.InitiatePayment)
			r.Post("/reconcile", h.PaymentHandler.ReconcileCharge)
			r.Get("/summary/{bidID}", h.PaymentHandler.Summary)
		})
		r.Route("/receipts", func(r chi.Router) {
			r.Get("/", h.ReceiptHandler.ListReceipts)
			r.Post("/viewed", h.ReceiptHandler.MarkAllViewed)
			r.Route("/{receiptID}", func(r chi.Router) {
				r.Get("/", h.ReceiptHandler.GetReceipt)
				r.Post("/complete", h.ReceiptHandler.CompleteReceipt)
				r.Post("/rating", h.ReceiptHandler.RateReceipt)
				r.Post("/viewed", h.ReceiptHandler.MarkViewed)
			})
		})
	})

	return r
}
