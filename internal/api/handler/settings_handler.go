package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/robinmutlu/robinboard/internal/dto"
	"github.com/robinmutlu/robinboard/internal/service"
	"github.com/robinmutlu/robinboard/pkg/response"
)

// SettingsHandler ayar uçları. Public uç süzülmüş blob'u verir;
// yönetici uçları tamamını okur ve yazar.
type SettingsHandler struct {
	settings service.SettingsService
	logger   *zap.Logger
}

// NewSettingsHandler SettingsHandler örneği oluşturur.
func NewSettingsHandler(settings service.SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{settings: settings, logger: logger}
}

// GetPublic GET /api/v1/settings
func (h *SettingsHandler) GetPublic(c *gin.Context) {
	data, err := h.settings.GetPublic(c.Request.Context())
	if err != nil {
		h.logger.Error("ayarlar okunamadı", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, data)
}

// Get GET /api/v1/admin/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	data, err := h.settings.Get(c.Request.Context())
	if err != nil {
		h.logger.Error("ayarlar okunamadı", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, data)
}

// Update PUT /api/v1/admin/settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.SettingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "Geçersiz istek gövdesi")
		return
	}
	if len(req) == 0 {
		response.BadRequest(c, 40001, "Güncellenecek anahtar yok")
		return
	}

	data, err := h.settings.Update(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("ayarlar güncellenemedi", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, data)
}

// BellConfig GET /api/v1/bell-config — normalize edilmiş haftalık plan.
func (h *SettingsHandler) BellConfig(c *gin.Context) {
	cfg, err := h.settings.BellConfig(c.Request.Context())
	if err != nil {
		h.logger.Error("zil planı okunamadı", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, cfg)
}

// DutyBoard GET /api/v1/duty — günün rotasyonlu nöbet tablosu.
func (h *SettingsHandler) DutyBoard(c *gin.Context) {
	board, err := h.settings.DutyBoard(c.Request.Context(), time.Now())
	if err != nil {
		h.logger.Error("nöbet tablosu üretilemedi", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, board)
}

// ExportICS GET /api/v1/bell/export.ics — haftanın zil planını takvim
// dosyası olarak indirir.
func (h *SettingsHandler) ExportICS(c *gin.Context) {
	data, err := h.settings.ExportBellICS(c.Request.Context(), time.Now())
	if err != nil {
		h.logger.Error("takvim dışa aktarılamadı", zap.Error(err))
		response.InternalError(c)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="zil-plani.ics"`)
	c.Data(200, "text/calendar; charset=utf-8", data)
}
