// AngelaMos | 2026
// response.go

package core

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Response is the envelope every endpoint writes. The "detalles" key is
// carried over from the API this service replaced; the admin frontend still
// reads it.
type Response struct {
	Success  bool   `json:"success"`
	Count    *int   `json:"count,omitempty"`
	Data     any    `json:"data,omitempty"`
	Error    string `json:"error,omitempty"`
	Detalles string `json:"detalles,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	//nolint:errcheck // best-effort response write
	_ = json.NewEncoder(w).Encode(body)
}

func OK(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Response{Success: true, Data: data})
}

// OKList writes a collection response with its element count, the shape the
// legacy list endpoints returned.
func OKList(w http.ResponseWriter, data any, count int) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Count:   &count,
		Data:    data,
	})
}

func Created(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, Response{Success: true, Data: data})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func BadRequest(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusBadRequest, Response{
		Error:    "invalid request",
		Detalles: detail,
	})
}

func NotFound(w http.ResponseWriter, resource string) {
	writeJSON(w, http.StatusNotFound, Response{
		Error: resource + " not found",
	})
}

func Conflict(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusConflict, Response{
		Error:    "conflict",
		Detalles: detail,
	})
}

func Forbidden(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusForbidden, Response{
		Error:    "forbidden",
		Detalles: detail,
	})
}

func Unauthorized(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusUnauthorized, Response{
		Error:    "unauthorized",
		Detalles: detail,
	})
}

func InternalServerError(w http.ResponseWriter, err error) {
	slog.Error("internal server error", "error", err)

	writeJSON(w, http.StatusInternalServerError, Response{
		Error: "internal server error",
	})
}

// JSONError writes err using its resolved status. AppErrors keep their code
// as the error field; plain errors fall back to the sentinel mapping.
func JSONError(w http.ResponseWriter, err error) {
	status := StatusForError(err)

	if status == http.StatusInternalServerError {
		InternalServerError(w, err)
		return
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		writeJSON(w, status, Response{
			Error:    appErr.Code,
			Detalles: appErr.Message,
		})
		return
	}

	writeJSON(w, status, Response{
		Error:    http.StatusText(status),
		Detalles: err.Error(),
	})
}

func FormatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "invalid request"
	}

	if len(validationErrors) == 0 {
		return "invalid request"
	}

	fe := validationErrors[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min":
		return fe.Field() + " is too short"
	case "max":
		return fe.Field() + " is too long"
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}
