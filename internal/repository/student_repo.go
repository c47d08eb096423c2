package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/robinmutlu/robinboard/internal/model"
)

// StudentRepository öğrenci kayıtları veri erişim arayüzü.
type StudentRepository interface {
	List(ctx context.Context) ([]model.Student, error)
	Create(ctx context.Context, student *model.Student) error
	CreateBatch(ctx context.Context, students []model.Student) error
	Delete(ctx context.Context, id uint) (int64, error)
	DeleteAll(ctx context.Context) error
	ListByBirthDates(ctx context.Context, keys []string) ([]model.Student, error)
}

type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo StudentRepository örneği oluşturur.
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) List(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).Order("name").Find(&students).Error
	return students, err
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepo) CreateBatch(ctx context.Context, students []model.Student) error {
	if len(students) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(students, 200).Error
}

func (r *studentRepo) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&model.Student{}, id)
	return result.RowsAffected, result.Error
}

func (r *studentRepo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.Student{}).Error
}

func (r *studentRepo) ListByBirthDates(ctx context.Context, keys []string) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).Where("birth_date IN ?", keys).Order("name").Find(&students).Error
	return students, err
}
