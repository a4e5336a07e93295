package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"inkwell/internal/application/usecase/abstraction"
	"inkwell/internal/presentation"
)

type renameRequest struct {
	FileName string `json:"fileName"`
}

type RenameHandler struct {
	renamer abstraction.Renamer
}

func NewRenameHandler(renamer abstraction.Renamer) *RenameHandler {
	return &RenameHandler{
		renamer: renamer,
	}
}

// HandleRename handles PATCH /media/:key/name requests.
func (h *RenameHandler) HandleRename(c echo.Context) error {
	key := c.Param(presentation.KeyParam)
	if key == "" {
		c.Response().Header().Set(presentation.ReasonTag, "missing media key")

		return c.NoContent(http.StatusBadRequest)
	}

	var req renameRequest
	if err := c.Bind(&req); err != nil {
		c.Response().Header().Set(presentation.ReasonTag, "malformed body")

		return c.NoContent(http.StatusBadRequest)
	}

	if err := h.renamer.Rename(c.Request().Context(), key, req.FileName); err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(statusForError(err))
	}

	return c.NoContent(http.StatusOK)
}
