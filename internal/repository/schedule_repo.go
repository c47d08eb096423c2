package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/robinmutlu/robinboard/internal/model"
)

// ScheduleRepository haftalık ders programı veri erişim arayüzü.
// Program tek kayıttır ve her güncellemede bütün olarak değiştirilir.
type ScheduleRepository interface {
	Get(ctx context.Context) (*model.ClassScheduleRecord, error)
	Replace(ctx context.Context, days model.JSONMap) error
}

type scheduleRepo struct {
	db *gorm.DB
}

// NewScheduleRepo ScheduleRepository örneği oluşturur.
func NewScheduleRepo(db *gorm.DB) ScheduleRepository {
	return &scheduleRepo{db: db}
}

func (r *scheduleRepo) Get(ctx context.Context) (*model.ClassScheduleRecord, error) {
	var record model.ClassScheduleRecord
	if err := r.db.WithContext(ctx).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *scheduleRepo) Replace(ctx context.Context, days model.JSONMap) error {
	var record model.ClassScheduleRecord
	err := r.db.WithContext(ctx).First(&record).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		record = model.ClassScheduleRecord{Days: days}
		return r.db.WithContext(ctx).Create(&record).Error
	case err != nil:
		return err
	}
	record.Days = days
	return r.db.WithContext(ctx).Save(&record).Error
}
