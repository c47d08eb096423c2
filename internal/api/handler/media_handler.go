package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/robinmutlu/robinboard/internal/dto"
	"github.com/robinmutlu/robinboard/internal/service"
	"github.com/robinmutlu/robinboard/pkg/response"
)

// MediaHandler medya uçları.
type MediaHandler struct {
	media  service.MediaService
	logger *zap.Logger
}

// NewMediaHandler MediaHandler örneği oluşturur.
func NewMediaHandler(media service.MediaService, logger *zap.Logger) *MediaHandler {
	return &MediaHandler{media: media, logger: logger}
}

// List GET /api/v1/files
func (h *MediaHandler) List(c *gin.Context) {
	files, err := h.media.List(c.Request.Context())
	if err != nil {
		h.logger.Error("medya listesi okunamadı", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, files)
}

// Upload POST /api/v1/admin/files
func (h *MediaHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 40000, "Dosya gerekli")
		return
	}
	caption := c.PostForm("caption")

	file, err := h.media.Upload(c.Request.Context(), header, caption)
	switch {
	case errors.Is(err, service.ErrUnsupportedMedia):
		response.BadRequest(c, 40020, "Desteklenmeyen dosya türü")
		return
	case errors.Is(err, service.ErrFileTooLarge):
		response.BadRequest(c, 40021, "Dosya boyutu sınırı aşıyor")
		return
	case err != nil:
		h.logger.Error("medya yüklenemedi", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Created(c, file)
}

// UpdateCaption PUT /api/v1/admin/files/:filename/caption
func (h *MediaHandler) UpdateCaption(c *gin.Context) {
	var req dto.CaptionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "Geçersiz istek gövdesi")
		return
	}

	if err := h.media.UpdateCaption(c.Request.Context(), c.Param("filename"), req.Caption); err != nil {
		h.logger.Error("alt yazı güncellenemedi", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// Delete DELETE /api/v1/admin/files/:filename
func (h *MediaHandler) Delete(c *gin.Context) {
	err := h.media.Delete(c.Request.Context(), c.Param("filename"))
	if errors.Is(err, service.ErrUnsupportedMedia) {
		response.BadRequest(c, 40000, "Geçersiz dosya adı")
		return
	}
	if err != nil {
		h.logger.Error("medya silinemedi", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
