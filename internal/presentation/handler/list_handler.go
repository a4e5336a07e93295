package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"inkwell/internal/application/usecase"
	"inkwell/internal/application/usecase/abstraction"
	"inkwell/internal/presentation"
)

type ListHandler struct {
	lister abstraction.Lister
}

func NewListHandler(lister abstraction.Lister) *ListHandler {
	return &ListHandler{
		lister: lister,
	}
}

// HandleList handles GET /media?search=&cursor=&limit= requests.
func (h *ListHandler) HandleList(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.Response().Header().Set(presentation.ReasonTag, "invalid limit")

			return c.NoContent(http.StatusBadRequest)
		}
		limit = parsed
	}

	page, err := h.lister.List(c.Request().Context(), usecase.ListFilter{
		Search: c.QueryParam("search"),
		Cursor: c.QueryParam("cursor"),
		Limit:  limit,
	})
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(statusForError(err))
	}

	return c.JSON(http.StatusOK, page)
}

// HandleTotalSize handles GET /media/size requests.
func (h *ListHandler) HandleTotalSize(c echo.Context) error {
	total, err := h.lister.TotalSize(c.Request().Context())
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(statusForError(err))
	}

	return c.JSON(http.StatusOK, map[string]int64{"totalSizeInBytes": total})
}
