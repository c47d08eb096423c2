package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/robinmutlu/robinboard/internal/bell"
	"github.com/robinmutlu/robinboard/internal/model"
	"github.com/robinmutlu/robinboard/internal/repository"
)

// ScheduleService haftalık ders programı. Veri serbest yapıdadır (gün →
// sınıf → ders listesi); motor yalnızca gün anahtarlarını kanonikleştirir.
type ScheduleService interface {
	Week(ctx context.Context) (map[string]interface{}, error)
	Today(ctx context.Context, now time.Time) (interface{}, error)
	Update(ctx context.Context, days map[string]interface{}) error
}

type scheduleService struct {
	repo   repository.ScheduleRepository
	hub    Broadcaster
	logger *zap.Logger
}

// NewScheduleService ScheduleService örneği oluşturur.
func NewScheduleService(repo repository.ScheduleRepository, hub Broadcaster, logger *zap.Logger) ScheduleService {
	return &scheduleService{repo: repo, hub: hub, logger: logger}
}

// Week programı kanonik gün anahtarlarıyla döndürür. Kayıt yoksa ya da
// bir gün hiç girilmemişse o gün boş kalır.
func (s *scheduleService) Week(ctx context.Context) (map[string]interface{}, error) {
	record, err := s.repo.Get(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = &model.ClassScheduleRecord{Days: model.JSONMap{}}
	} else if err != nil {
		return nil, err
	}

	week := make(map[string]interface{}, len(bell.Weekdays))
	for _, day := range bell.Weekdays {
		if value, ok := bell.PickByDay(record.Days, day); ok {
			week[string(day)] = value
		}
	}
	return week, nil
}

// Today günün programını döndürür; hafta sonu ya da girilmemiş gün için
// nil döner.
func (s *scheduleService) Today(ctx context.Context, now time.Time) (interface{}, error) {
	week, err := s.Week(ctx)
	if err != nil {
		return nil, err
	}
	return week[string(bell.DayOf(now))], nil
}

// Update programın tamamını değiştirir ve yeni haftayı olduğu gibi
// yayınlar. Olay her zaman tam programı taşır; istemci fark hesaplamaz,
// geleni doğrudan basar.
func (s *scheduleService) Update(ctx context.Context, days map[string]interface{}) error {
	if err := s.repo.Replace(ctx, model.JSONMap(days)); err != nil {
		return err
	}

	week, err := s.Week(ctx)
	if err != nil {
		return err
	}
	s.hub.Broadcast(EventScheduleChanged, week)
	s.logger.Info("ders programı güncellendi", zap.Int("gun", len(days)))
	return nil
}
