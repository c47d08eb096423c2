package repository

import "gorm.io/gorm"

// Repository tüm repository'lerin toplanma noktası.
type Repository struct {
	Setting  SettingRepository
	Student  StudentRepository
	Schedule ScheduleRepository
	Media    MediaRepository
}

// NewRepository Repository toplamını kurar.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Setting:  NewSettingRepo(db),
		Student:  NewStudentRepo(db),
		Schedule: NewScheduleRepo(db),
		Media:    NewMediaRepo(db),
	}
}
