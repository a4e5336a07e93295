package handler

import (
	"errors"
	"net/http"

	"inkwell/internal/application/usecase"
)

// statusForError maps engine error kinds to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrEmptyFile),
		errors.Is(err, usecase.ErrEmptyName),
		errors.Is(err, usecase.ErrBadCursor):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
