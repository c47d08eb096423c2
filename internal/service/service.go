package service

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/robinmutlu/robinboard/config"
	"github.com/robinmutlu/robinboard/internal/repository"
	"github.com/robinmutlu/robinboard/pkg/jwt"
	"github.com/robinmutlu/robinboard/pkg/redis"
)

// Broadcaster websocket dağıtım noktasına açılan kapı. Servisler olayı
// fırlatır, kimin dinlediğini bilmez.
type Broadcaster interface {
	Broadcast(event string, payload interface{})
}

// Websocket olay adları. İstemci bu adlarla hangi veriyi yenileyeceğine
// karar verir.
const (
	EventSettingsChanged = "settingsChanged"
	EventScheduleChanged = "scheduleChanged"
	EventMediaChanged    = "mediaChanged"
	EventDutyChanged     = "dutyChanged"
	EventBellStatus      = "bellStatus"
)

// Services tüm servislerin toplanma noktası.
type Services struct {
	Auth     AuthService
	Settings SettingsService
	Student  StudentService
	Schedule ScheduleService
	Media    MediaService
	Weather  WeatherService
	Display  DisplayService
}

// NewServices servis katmanını kurar. rdb nil olabilir: Redis'e
// ulaşılamadığında uygulama kara liste ve önbelleksiz çalışmaya devam
// eder.
func NewServices(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	hub Broadcaster,
	loc *time.Location,
	logger *zap.Logger,
) *Services {
	now := func() time.Time { return time.Now().In(loc) }

	settings := NewSettingsService(repo.Setting, hub, now, logger)
	student := NewStudentService(repo.Student, logger)
	weather := NewWeatherService(settings, rdb, http.DefaultClient, cfg.Weather.CacheTTL, logger)
	schedule := NewScheduleService(repo.Schedule, hub, logger)
	media := NewMediaService(repo.Media, hub, &cfg.Upload, cfg.Server.BaseURL, logger)

	return &Services{
		Auth:     NewAuthService(&cfg.Auth, jwtMgr, rdb, logger),
		Settings: settings,
		Student:  student,
		Schedule: schedule,
		Media:    media,
		Weather:  weather,
		Display:  NewDisplayService(settings, student, schedule, weather, media, hub, now, logger),
	}
}
