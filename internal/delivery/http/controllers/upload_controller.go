package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/nitpydev/gyanith24-cms/internal/delivery/http/helpers"
	"github.com/nitpydev/gyanith24-cms/internal/delivery/http/middleware"
	"github.com/nitpydev/gyanith24-cms/internal/domain"
)

// maxUploadBytes caps a single image upload.
const maxUploadBytes = 10 << 20

// UploadResponse is the success payload for POST /uploads/{area}.
type UploadResponse struct {
	URL string `json:"url"`
}

type UploadController struct {
	Logger *slog.Logger
	Store  domain.ImageStore
}

func NewUploadController(logger *slog.Logger, store domain.ImageStore) *UploadController {
	return &UploadController{
		Logger: logger,
		Store:  store,
	}
}

// Upload godoc
// @Summary Upload an image
// @Description Accepts a PNG or JPEG as the multipart field "file" and stores it under the area's key prefix. Areas: event-imgs (cover images), people-imgs (profile photos). Returns the resolvable URL to put in the record.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param area path string true "Storage area (event-imgs or people-imgs)"
// @Param file formData file true "PNG or JPEG image"
// @Success 201 {object} helpers.APIResponse "data contains the image URL"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 415 {object} helpers.APIResponse "error.code: unsupported_media_type"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /uploads/{area} [post]
func (c *UploadController) Upload(w http.ResponseWriter, r *http.Request) {
	area := r.PathValue("area")
	if _, ok := middleware.IdentityFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing file field")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	url, err := c.Store.Upload(r.Context(), area, header.Filename, contentType, file)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownArea):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		case errors.Is(err, domain.ErrUnsupportedContent):
			helpers.WriteJSONError(w, http.StatusUnsupportedMediaType, helpers.ErrCodeUnsupportedMedia, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "upload failed", "area", area, "file", header.Filename, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, UploadResponse{URL: url})
}
