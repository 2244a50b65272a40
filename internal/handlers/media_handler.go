package handlers

import (
	"errors"
	"net/http"

	"contest_backend/internal/openapi"
	"contest_backend/internal/services"
	"contest_backend/internal/services/dto"
	"contest_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	*BaseHandler
	mediaService services.MediaService
}

func NewMediaHandler(base *BaseHandler, mediaService services.MediaService) *MediaHandler {
	return &MediaHandler{
		BaseHandler:  base,
		mediaService: mediaService,
	}
}

func (h *MediaHandler) ListMedia(c *gin.Context) {
	q := openapi.Query[dto.ListMediaQuery](c)

	resp, err := h.mediaService.ListMedia(h.GetDB(c), *q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MediaHandler) CreateMedia(c *gin.Context) {
	req := openapi.Body[dto.CreateMediaRequest](c)

	media, err := h.mediaService.CreateMedia(h.GetDB(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, media)
}

// UploadMedia - multipart: файл в поле "file", profileId и name - поля формы
func (h *MediaHandler) UploadMedia(c *gin.Context) {
	form := openapi.Body[dto.UploadMediaRequest](c)

	file, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			apperrors.HandleError(c, apperrors.ValidationError(map[string]string{"file": "This field is required"}))
			return
		}
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid multipart form").WithError(err))
		return
	}

	media, err := h.mediaService.UploadMedia(c.Request.Context(), h.GetDB(c), form, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, media)
}

func (h *MediaHandler) GetMedia(c *gin.Context) {
	media, err := h.mediaService.GetMedia(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, media)
}

func (h *MediaHandler) UpdateMedia(c *gin.Context) {
	req := openapi.Body[dto.UpdateMediaRequest](c)

	media, err := h.mediaService.UpdateMedia(h.GetDB(c), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, media)
}

func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	media, err := h.mediaService.DeleteMedia(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, media)
}
