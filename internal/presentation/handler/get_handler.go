package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"inkwell/internal/application/usecase/abstraction"
	"inkwell/internal/presentation"
)

type GetHandler struct {
	getter abstraction.Getter
}

func NewGetHandler(getter abstraction.Getter) *GetHandler {
	return &GetHandler{
		getter: getter,
	}
}

// HandleGet handles GET /media/:key requests.
func (h *GetHandler) HandleGet(c echo.Context) error {
	key := c.Param(presentation.KeyParam)
	if key == "" {
		c.Response().Header().Set(presentation.ReasonTag, "missing media key")

		return c.NoContent(http.StatusBadRequest)
	}

	media, err := h.getter.Get(c.Request().Context(), key)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(statusForError(err))
	}

	return c.JSON(http.StatusOK, mediaToDescriptor(media))
}
