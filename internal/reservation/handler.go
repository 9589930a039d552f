// AngelaMos | 2026
// handler.go

package reservation

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
	r.Route("/reservas", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/", h.Create)
		r.Get("/{reservationID}", h.Get)
		r.Get("/usuario/{userID}", h.ListByUser)
		r.Put("/{reservationID}/estado", h.UpdateStatus)
		r.Delete("/{reservationID}", h.Delete)

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)

			r.Get("/", h.List)
		})
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	// Members book for themselves; only admins book on behalf of others.
	if !middleware.IsAdmin(r.Context()) &&
		req.UserID != middleware.GetUserID(r.Context()) {
		core.Forbidden(w, "cannot book for another user")
		return
	}

	reservation, err := h.service.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, "reservation_date must be YYYY-MM-DD")
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "user")
		case errors.Is(err, ErrSlotUnavailable):
			core.Conflict(w, "slot unavailable")
		case errors.Is(err, core.ErrDuplicateKey):
			core.Conflict(w, "slot already reserved for that date")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.Created(w, ToReservationResponse(reservation))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OKList(
		w,
		ToReservationResponseList(reservations),
		len(reservations),
	)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "reservationID")

	reservation, err := h.service.GetByID(r.Context(), reservationID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "reservation")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	if !h.ownerOrAdmin(r, reservation.UserID) {
		core.Forbidden(w, "insufficient permissions")
		return
	}

	core.OK(w, ToReservationResponse(reservation))
}

func (h *Handler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	if !h.ownerOrAdmin(r, userID) {
		core.Forbidden(w, "insufficient permissions")
		return
	}

	reservations, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OKList(
		w,
		ToReservationResponseList(reservations),
		len(reservations),
	)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "reservationID")

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	existing, err := h.service.GetByID(r.Context(), reservationID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "reservation")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	// Owners may cancel their own booking; everything else is admin.
	if !middleware.IsAdmin(r.Context()) {
		isOwner := existing.UserID == middleware.GetUserID(r.Context())
		if !isOwner || req.Status != StatusCancelled {
			core.Forbidden(w, "insufficient permissions")
			return
		}
	}

	reservation, err := h.service.UpdateStatus(
		r.Context(),
		reservationID,
		req.Status,
	)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, "invalid status")
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "reservation")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, ToReservationResponse(reservation))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "reservationID")

	existing, err := h.service.GetByID(r.Context(), reservationID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "reservation")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	if !h.ownerOrAdmin(r, existing.UserID) {
		core.Forbidden(w, "insufficient permissions")
		return
	}

	if err := h.service.Delete(r.Context(), reservationID); err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "reservation")
		case errors.Is(err, core.ErrForbidden):
			core.Forbidden(w, "confirmed reservations cannot be deleted")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, map[string]string{"id": reservationID})
}

func (h *Handler) ownerOrAdmin(r *http.Request, ownerID string) bool {
	return middleware.GetUserID(r.Context()) == ownerID ||
		middleware.IsAdmin(r.Context())
}
