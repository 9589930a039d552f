// AngelaMos | 2026
// handler.go

package court

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
	r.Route("/canchas", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{courtID}", h.Get)
		r.Get("/deporte/{sportID}", h.ListBySport)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Use(adminOnly)

			r.Post("/", h.Create)
			r.Put("/{courtID}", h.Update)
			r.Delete("/{courtID}", h.Delete)
		})
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCourtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	court, err := h.service.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "sport")
		case errors.Is(err, core.ErrDuplicateKey):
			core.Conflict(w, "court name already exists for this sport")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.Created(w, ToCourtResponse(court))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	courts, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OKList(w, ToCourtResponseList(courts), len(courts))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	courtID := chi.URLParam(r, "courtID")

	court, err := h.service.GetByID(r.Context(), courtID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "court")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToCourtResponse(court))
}

func (h *Handler) ListBySport(w http.ResponseWriter, r *http.Request) {
	sportID := chi.URLParam(r, "sportID")

	courts, err := h.service.ListBySport(r.Context(), sportID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "sport")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OKList(w, ToCourtResponseList(courts), len(courts))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	courtID := chi.URLParam(r, "courtID")

	var req UpdateCourtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	court, err := h.service.Update(r.Context(), courtID, req)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "court")
		case errors.Is(err, core.ErrDuplicateKey):
			core.Conflict(w, "court name already exists for this sport")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, ToCourtResponse(court))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	courtID := chi.URLParam(r, "courtID")

	if err := h.service.Delete(r.Context(), courtID); err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "court")
		case errors.Is(err, core.ErrConflict):
			core.Conflict(w, "court has schedule slots")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, map[string]string{"id": courtID})
}
