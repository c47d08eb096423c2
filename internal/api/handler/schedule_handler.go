package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/robinmutlu/robinboard/internal/dto"
	"github.com/robinmutlu/robinboard/internal/service"
	"github.com/robinmutlu/robinboard/pkg/response"
)

// ScheduleHandler haftalık ders programı uçları.
type ScheduleHandler struct {
	schedule service.ScheduleService
	logger   *zap.Logger
}

// NewScheduleHandler ScheduleHandler örneği oluşturur.
func NewScheduleHandler(schedule service.ScheduleService, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{schedule: schedule, logger: logger}
}

// Week GET /api/v1/schedule
func (h *ScheduleHandler) Week(c *gin.Context) {
	week, err := h.schedule.Week(c.Request.Context())
	if err != nil {
		h.logger.Error("ders programı okunamadı", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, week)
}

// Today GET /api/v1/schedule/today
func (h *ScheduleHandler) Today(c *gin.Context) {
	today, err := h.schedule.Today(c.Request.Context(), time.Now())
	if err != nil {
		h.logger.Error("günün programı okunamadı", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, today)
}

// Update PUT /api/v1/admin/schedule
func (h *ScheduleHandler) Update(c *gin.Context) {
	var req dto.ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "Program gövdesi gerekli")
		return
	}

	if err := h.schedule.Update(c.Request.Context(), req.Days); err != nil {
		h.logger.Error("ders programı güncellenemedi", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
