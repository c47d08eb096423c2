package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/robinmutlu/robinboard/internal/service"
	"github.com/robinmutlu/robinboard/pkg/response"
)

// DisplayHandler pano açılış görünümü ucu.
type DisplayHandler struct {
	display service.DisplayService
	logger  *zap.Logger
}

// NewDisplayHandler DisplayHandler örneği oluşturur.
func NewDisplayHandler(display service.DisplayService, logger *zap.Logger) *DisplayHandler {
	return &DisplayHandler{display: display, logger: logger}
}

// Snapshot GET /api/v1/display — pano istemcisinin açılış verisi.
func (h *DisplayHandler) Snapshot(c *gin.Context) {
	snapshot, err := h.display.Snapshot(c.Request.Context())
	if err != nil {
		h.logger.Error("pano görünümü üretilemedi", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, snapshot)
}
