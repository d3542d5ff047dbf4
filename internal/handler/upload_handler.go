package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "staybook/internal/errors"
	"staybook/internal/service"
)

// UploadHandler handles image ingestion endpoints.
type UploadHandler struct {
	uploadService service.UploadService
	imageService  service.ImageService
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(uploadService service.UploadService, imageService service.ImageService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService, imageService: imageService}
}

// UploadByLinkRequest represents an upload-by-link request.
type UploadByLinkRequest struct {
	Link string `json:"link" validate:"required"`
}

// DevUploadRequest represents a dev upload of inline-encoded images.
type DevUploadRequest struct {
	MyFile []string `json:"myFile"`
}

// UploadByLink godoc
// @Summary Fetch a remote image and return it base64-encoded
// @Tags uploads
// @Accept json
// @Produce json
// @Param request body UploadByLinkRequest true "Image URL"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /uploadByLink [post]
func (h *UploadHandler) UploadByLink(c echo.Context) error {
	var req UploadByLinkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: err.Error()})
	}

	encoded, err := h.uploadService.FetchAsInline(c.Request().Context(), req.Link)
	if err != nil {
		status, body := apperrors.MapErrorToHTTP(err)
		return c.JSON(status, body)
	}
	return c.JSON(http.StatusOK, echo.Map{"base64": encoded})
}

// DevUpload godoc
// @Summary Persist inline-encoded images
// @Tags uploads
// @Accept json
// @Produce json
// @Param request body DevUploadRequest true "Data URIs"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /devupload [post]
func (h *UploadHandler) DevUpload(c echo.Context) error {
	var req DevUploadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if len(req.MyFile) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Images are required"})
	}

	image, err := h.imageService.StoreInline(c.Request().Context(), req.MyFile)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Images uploaded successfully",
		"images":  image,
	})
}

// Dev godoc
// @Summary Health probe
// @Tags uploads
// @Produce json
// @Success 200 {object} map[string]string
// @Router /dev [get]
func (h *UploadHandler) Dev(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "OK"})
}
