package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"inkwell/internal/application/usecase"
	"inkwell/internal/application/usecase/abstraction"
	"inkwell/internal/presentation"
	"inkwell/pkg/logger"
)

type UploadHandler struct {
	uploader abstraction.Uploader
}

func NewUploadHandler(uploader abstraction.Uploader) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
	}
}

// Handle handles POST /media multipart requests.
func (h *UploadHandler) Handle(c echo.Context) error {
	fileHeader, err := c.FormFile(presentation.FileField)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, "missing file field")

		return c.NoContent(http.StatusBadRequest)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	media, err := h.uploader.Upload(c.Request().Context(), usecase.UploadFile{
		Name:    fileHeader.Filename,
		Content: content,
	})
	if err != nil {
		logger.Error("upload failed", "file", fileHeader.Filename, "err", err)
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(statusForError(err))
	}

	return c.JSON(http.StatusCreated, mediaToDescriptor(media))
}
