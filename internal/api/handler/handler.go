package handler

import (
	"go.uber.org/zap"

	"github.com/robinmutlu/robinboard/internal/service"
)

// Handler tüm HTTP işleyicilerinin toplanma noktası.
type Handler struct {
	Auth     *AuthHandler
	Settings *SettingsHandler
	Student  *StudentHandler
	Schedule *ScheduleHandler
	Media    *MediaHandler
	Weather  *WeatherHandler
	Display  *DisplayHandler
}

// NewHandler Handler toplamını kurar.
func NewHandler(services *service.Services, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(services.Auth, logger),
		Settings: NewSettingsHandler(services.Settings, logger),
		Student:  NewStudentHandler(services.Student, logger),
		Schedule: NewScheduleHandler(services.Schedule, logger),
		Media:    NewMediaHandler(services.Media, logger),
		Weather:  NewWeatherHandler(services.Weather, logger),
		Display:  NewDisplayHandler(services.Display, logger),
	}
}
