// AngelaMos | 2026
// handler.go

package schedule

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/courtbook-dev/courtbook/internal/core"
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
	r.Route("/horarios", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{slotID}", h.Get)
		r.Get("/cancha/{courtID}", h.ListByCourt)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Use(adminOnly)

			r.Post("/", h.Create)
			r.Put("/{slotID}", h.Update)
			r.Put("/{slotID}/disponibilidad", h.SetAvailability)
			r.Delete("/{slotID}", h.Delete)
		})
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	slot, err := h.service.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, "start_time must be before end_time")
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "court")
		case errors.Is(err, core.ErrConflict),
			errors.Is(err, core.ErrDuplicateKey):
			core.Conflict(w, "slot overlaps an existing slot")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.Created(w, ToSlotResponse(slot))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	slots, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OKList(w, ToSlotResponseList(slots), len(slots))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	slotID := chi.URLParam(r, "slotID")

	slot, err := h.service.GetByID(r.Context(), slotID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "slot")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToSlotResponse(slot))
}

func (h *Handler) ListByCourt(w http.ResponseWriter, r *http.Request) {
	courtID := chi.URLParam(r, "courtID")

	slots, err := h.service.ListByCourt(r.Context(), courtID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OKList(w, ToSlotResponseList(slots), len(slots))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	slotID := chi.URLParam(r, "slotID")

	var req UpdateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	slot, err := h.service.Update(r.Context(), slotID, req)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, "start_time must be before end_time")
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "slot")
		case errors.Is(err, core.ErrConflict),
			errors.Is(err, core.ErrDuplicateKey):
			core.Conflict(w, "slot overlaps an existing slot")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, ToSlotResponse(slot))
}

func (h *Handler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	slotID := chi.URLParam(r, "slotID")

	var req SetAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	slot, err := h.service.SetAvailability(
		r.Context(),
		slotID,
		*req.Available,
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "slot")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToSlotResponse(slot))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	slotID := chi.URLParam(r, "slotID")

	if err := h.service.Delete(r.Context(), slotID); err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "slot")
		case errors.Is(err, core.ErrConflict):
			core.Conflict(w, "slot has reservations")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, map[string]string{"id": slotID})
}
