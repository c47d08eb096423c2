package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/robinmutlu/robinboard/internal/service"
	"github.com/robinmutlu/robinboard/pkg/response"
)

// WeatherHandler hava durumu ucu.
type WeatherHandler struct {
	weather service.WeatherService
	logger  *zap.Logger
}

// NewWeatherHandler WeatherHandler örneği oluşturur.
func NewWeatherHandler(weather service.WeatherService, logger *zap.Logger) *WeatherHandler {
	return &WeatherHandler{weather: weather, logger: logger}
}

// Current GET /api/v1/weather
func (h *WeatherHandler) Current(c *gin.Context) {
	weather, err := h.weather.Current(c.Request.Context())
	if err != nil {
		h.logger.Error("hava durumu okunamadı", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, weather)
}
