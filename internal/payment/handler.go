// AngelaMos | 2026
// handler.go

package payment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/courtbook-dev/courtbook/internal/core"
	"github.com/courtbook-dev/courtbook/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/pagos", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/", h.Create)
		r.Get("/reserva/{reservationID}", h.ListByReservation)
		r.Get("/usuario/{userID}", h.ListByUser)

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)

			r.Get("/", h.List)
			r.Get("/{paymentID}", h.Get)
			r.Put("/{paymentID}", h.Update)
			r.Put("/{paymentID}/estado", h.SetStatus)
			r.Delete("/{paymentID}", h.Delete)
		})
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	if !middleware.IsAdmin(r.Context()) {
		owned, err := h.service.ReservationOwnedBy(
			r.Context(),
			req.ReservationID,
			middleware.GetUserID(r.Context()),
		)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				core.NotFound(w, "reservation")
				return
			}
			core.InternalServerError(w, err)
			return
		}
		if !owned {
			core.Forbidden(w, "cannot pay for another user's reservation")
			return
		}
	}

	payment, err := h.service.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, "invalid amount or method")
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "reservation")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.Created(w, ToPaymentResponse(payment))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OKList(w, ToPaymentResponseList(payments), len(payments))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "paymentID")

	payment, err := h.service.GetByID(r.Context(), paymentID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "payment")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPaymentResponse(payment))
}

func (h *Handler) ListByReservation(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "reservationID")

	if !middleware.IsAdmin(r.Context()) {
		owned, err := h.service.ReservationOwnedBy(
			r.Context(),
			reservationID,
			middleware.GetUserID(r.Context()),
		)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				core.NotFound(w, "reservation")
				return
			}
			core.InternalServerError(w, err)
			return
		}
		if !owned {
			core.Forbidden(w, "insufficient permissions")
			return
		}
	}

	payments, err := h.service.ListByReservation(r.Context(), reservationID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OKList(w, ToPaymentResponseList(payments), len(payments))
}

func (h *Handler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	if userID != middleware.GetUserID(r.Context()) &&
		!middleware.IsAdmin(r.Context()) {
		core.Forbidden(w, "insufficient permissions")
		return
	}

	payments, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OKList(w, ToPaymentResponseList(payments), len(payments))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "paymentID")

	var req UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	payment, err := h.service.Update(r.Context(), paymentID, req)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "payment")
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, "invalid amount or method")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, ToPaymentResponse(payment))
}

func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "paymentID")

	var req SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	payment, err := h.service.SetStatus(
		r.Context(),
		paymentID,
		req.Status,
		req.TransactionID,
	)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, "invalid status")
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "payment")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, ToPaymentResponse(payment))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "paymentID")

	if err := h.service.Delete(r.Context(), paymentID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "payment")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, map[string]string{"id": paymentID})
}
