package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"inkwell/internal/application/usecase/abstraction"
	"inkwell/internal/domain/document"
	"inkwell/internal/presentation"
)

type linkedKeysRequest struct {
	Keys []string `json:"keys"`
}

type indexPostRequest struct {
	Title string        `json:"title"`
	Body  document.Node `json:"body"`
}

type UsageHandler struct {
	linker abstraction.Linker
}

func NewUsageHandler(linker abstraction.Linker) *UsageHandler {
	return &UsageHandler{
		linker: linker,
	}
}

// HandleInUse handles GET /media/:key/usage requests.
func (h *UsageHandler) HandleInUse(c echo.Context) error {
	key := c.Param(presentation.KeyParam)
	if key == "" {
		c.Response().Header().Set(presentation.ReasonTag, "missing media key")

		return c.NoContent(http.StatusBadRequest)
	}

	inUse, err := h.linker.InUse(c.Request().Context(), key)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(statusForError(err))
	}

	return c.JSON(http.StatusOK, map[string]bool{"inUse": inUse})
}

// HandleLinkedPosts handles GET /media/:key/posts requests.
func (h *UsageHandler) HandleLinkedPosts(c echo.Context) error {
	key := c.Param(presentation.KeyParam)
	if key == "" {
		c.Response().Header().Set(presentation.ReasonTag, "missing media key")

		return c.NoContent(http.StatusBadRequest)
	}

	posts, err := h.linker.LinkedPosts(c.Request().Context(), key)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(statusForError(err))
	}

	return c.JSON(http.StatusOK, posts)
}

// HandleLinkedKeys handles POST /media/linked batch membership checks.
func (h *UsageHandler) HandleLinkedKeys(c echo.Context) error {
	var req linkedKeysRequest
	if err := c.Bind(&req); err != nil {
		c.Response().Header().Set(presentation.ReasonTag, "malformed body")

		return c.NoContent(http.StatusBadRequest)
	}

	linked, err := h.linker.LinkedKeys(c.Request().Context(), req.Keys)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(statusForError(err))
	}

	if linked == nil {
		linked = []string{}
	}

	return c.JSON(http.StatusOK, map[string][]string{"keys": linked})
}

// HandleIndexPost handles PUT /posts/:id/media-index requests, called by the
// post-persistence path on every save.
func (h *UsageHandler) HandleIndexPost(c echo.Context) error {
	postID := c.Param(presentation.PostIDParam)
	if postID == "" {
		c.Response().Header().Set(presentation.ReasonTag, "missing post id")

		return c.NoContent(http.StatusBadRequest)
	}

	var req indexPostRequest
	if err := c.Bind(&req); err != nil {
		c.Response().Header().Set(presentation.ReasonTag, "malformed body")

		return c.NoContent(http.StatusBadRequest)
	}

	if err := h.linker.IndexPost(c.Request().Context(), postID, req.Title, req.Body); err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(statusForError(err))
	}

	return c.NoContent(http.StatusOK)
}
