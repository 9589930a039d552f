// AngelaMos | 2026
// handler.go

package role

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
	r.Route("/roles", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.List)
		r.Get("/{roleID}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)

			r.Post("/", h.Create)
			r.Put("/{roleID}", h.Update)
			r.Delete("/{roleID}", h.Delete)
		})
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	role, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			core.Conflict(w, "role name already exists")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToRoleResponse(role))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	roles, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OKList(w, ToRoleResponseList(roles), len(roles))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	roleID := chi.URLParam(r, "roleID")

	role, err := h.service.GetByID(r.Context(), roleID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "role")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToRoleResponse(role))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	roleID := chi.URLParam(r, "roleID")

	var req UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	role, err := h.service.Update(r.Context(), roleID, req)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "role")
		case errors.Is(err, core.ErrDuplicateKey):
			core.Conflict(w, "role name already exists")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, ToRoleResponse(role))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	roleID := chi.URLParam(r, "roleID")

	if err := h.service.Delete(r.Context(), roleID); err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "role")
		case errors.Is(err, core.ErrConflict):
			core.Conflict(w, "role has assigned users")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, map[string]string{"id": roleID})
}
