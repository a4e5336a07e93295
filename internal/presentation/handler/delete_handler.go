package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"inkwell/internal/application/usecase/abstraction"
	"inkwell/internal/presentation"
)

type DeleteHandler struct {
	deleter abstraction.Deleter
}

func NewDeleteHandler(deleter abstraction.Deleter) *DeleteHandler {
	return &DeleteHandler{
		deleter: deleter,
	}
}

// HandleDelete handles DELETE /media/:key requests.
func (h *DeleteHandler) HandleDelete(c echo.Context) error {
	key := c.Param(presentation.KeyParam)
	if key == "" {
		c.Response().Header().Set(presentation.ReasonTag, "missing media key")

		return c.NoContent(http.StatusBadRequest)
	}

	if err := h.deleter.Delete(c.Request().Context(), key); err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(statusForError(err))
	}

	return c.NoContent(http.StatusOK)
}
