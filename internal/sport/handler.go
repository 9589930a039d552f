// AngelaMos | 2026
// handler.go

package sport

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

// RegisterRoutes mounts the sport catalog. Reads are public so the booking
// frontend can render the catalog without a session; writes are admin only.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/deportes", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{sportID}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Use(adminOnly)

			r.Post("/", h.Create)
			r.Put("/{sportID}", h.Update)
			r.Delete("/{sportID}", h.Delete)
		})
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	sport, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			core.Conflict(w, "sport name already exists")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToSportResponse(sport))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	sports, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OKList(w, ToSportResponseList(sports), len(sports))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	sportID := chi.URLParam(r, "sportID")

	sport, err := h.service.GetByID(r.Context(), sportID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "sport")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToSportResponse(sport))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	sportID := chi.URLParam(r, "sportID")

	var req UpdateSportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	sport, err := h.service.Update(r.Context(), sportID, req)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "sport")
		case errors.Is(err, core.ErrDuplicateKey):
			core.Conflict(w, "sport name already exists")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, ToSportResponse(sport))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	sportID := chi.URLParam(r, "sportID")

	if err := h.service.Delete(r.Context(), sportID); err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "sport")
		case errors.Is(err, core.ErrConflict):
			core.Conflict(w, "sport has courts")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, map[string]string{"id": sportID})
}
