package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/robinmutlu/robinboard/internal/bell"
	"github.com/robinmutlu/robinboard/internal/dto"
)

// DisplayService pano ekranının birleşik görünümü. Snapshot açılışta
// her şeyi tek seferde verir; Run her saniye zil durumunu sıfırdan
// hesaplayıp yayınlar. Durum tikler arasında taşınmadığı için kaçan
// tik ya da oynayan saat kalıcı hata bırakmaz.
type DisplayService interface {
	Snapshot(ctx context.Context) (*dto.DisplaySnapshot, error)
	Run(ctx context.Context)
}

type displayService struct {
	settings SettingsService
	student  StudentService
	schedule ScheduleService
	weather  WeatherService
	media    MediaService
	hub      Broadcaster
	now      func() time.Time
	logger   *zap.Logger
}

// NewDisplayService DisplayService örneği oluşturur.
func NewDisplayService(
	settings SettingsService,
	student StudentService,
	schedule ScheduleService,
	weather WeatherService,
	media MediaService,
	hub Broadcaster,
	now func() time.Time,
	logger *zap.Logger,
) DisplayService {
	return &displayService{
		settings: settings,
		student:  student,
		schedule: schedule,
		weather:  weather,
		media:    media,
		hub:      hub,
		now:      now,
		logger:   logger,
	}
}

func getString(data map[string]interface{}, key string) string {
	value, _ := data[key].(string)
	return value
}

func getBool(data map[string]interface{}, key string) bool {
	value, _ := data[key].(bool)
	return value
}

// Snapshot panonun tek seferde ihtiyaç duyduğu her şeyi toplar. Hava
// durumu ve doğum günleri gibi yan veriler alınamazsa boş geçilir;
// zil ve nöbet çekirdeği olmadan ekran açılmaz, onların hatası döner.
func (s *displayService) Snapshot(ctx context.Context) (*dto.DisplaySnapshot, error) {
	now := s.now()

	data, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := s.settings.BellConfig(ctx)
	if err != nil {
		return nil, err
	}
	duty, err := s.settings.DutyBoard(ctx, now)
	if err != nil {
		return nil, err
	}

	day := bell.DayOf(now)
	schedule := cfg.Days[day]
	intervals := bell.BuildIntervals(schedule.StartTime, schedule.Blocks)

	snapshot := &dto.DisplaySnapshot{
		SchoolName:       getString(data, "schoolName"),
		MarqueeText:      getString(data, "marqueeText"),
		IsEmergency:      getBool(data, "isEmergency"),
		EmergencyMessage: getString(data, "emergencyMessage"),
		Bell:             bell.StatusAt(now, day, intervals),
		Intervals:        intervals,
		Duty:             *duty,
		Birthdays:        []dto.BirthdayEntry{},
		Media:            []dto.MediaFileResponse{},
	}

	if today, err := s.schedule.Today(ctx, now); err == nil {
		snapshot.Schedule = today
	} else {
		s.logger.Warn("günün ders programı alınamadı", zap.Error(err))
	}
	if birthdays, err := s.student.TodaysBirthdays(ctx, now); err == nil {
		snapshot.Birthdays = birthdays
	} else {
		s.logger.Warn("doğum günleri alınamadı", zap.Error(err))
	}
	if weather, err := s.weather.Current(ctx); err == nil {
		snapshot.Weather = weather
	} else {
		s.logger.Warn("hava durumu alınamadı", zap.Error(err))
	}
	if media, err := s.media.List(ctx); err == nil {
		snapshot.Media = media
	} else {
		s.logger.Warn("medya listesi alınamadı", zap.Error(err))
	}

	return snapshot, nil
}

// Run saniyelik zil yayını. Her tikte plan yeniden çözülür; ayar
// değişikliği bir sonraki tikte kendiliğinden ekrana yansır.
func (s *displayService) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	s.logger.Info("zil yayını başladı")
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("zil yayını durduruldu")
			return
		case <-ticker.C:
			cfg, err := s.settings.BellConfig(ctx)
			if err != nil {
				s.logger.Warn("zil planı okunamadı", zap.Error(err))
				continue
			}
			s.hub.Broadcast(EventBellStatus, bell.StatusFor(cfg, s.now()))
		}
	}
}
