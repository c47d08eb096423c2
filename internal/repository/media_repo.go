package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/robinmutlu/robinboard/internal/model"
)

// MediaRepository medya meta verisi erişim arayüzü.
type MediaRepository interface {
	List(ctx context.Context) ([]model.MediaFile, error)
	Create(ctx context.Context, file *model.MediaFile) error
	UpsertCaption(ctx context.Context, filename, caption string) error
	DeleteByFilename(ctx context.Context, filename string) error
}

type mediaRepo struct {
	db *gorm.DB
}

// NewMediaRepo MediaRepository örneği oluşturur.
func NewMediaRepo(db *gorm.DB) MediaRepository {
	return &mediaRepo{db: db}
}

func (r *mediaRepo) List(ctx context.Context) ([]model.MediaFile, error) {
	var files []model.MediaFile
	err := r.db.WithContext(ctx).Order("filename").Find(&files).Error
	return files, err
}

func (r *mediaRepo) Create(ctx context.Context, file *model.MediaFile) error {
	return r.db.WithContext(ctx).Create(file).Error
}

func (r *mediaRepo) UpsertCaption(ctx context.Context, filename, caption string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "filename"}},
			DoUpdates: clause.AssignmentColumns([]string{"caption", "updated_at"}),
		}).
		Create(&model.MediaFile{Filename: filename, Caption: caption}).Error
}

func (r *mediaRepo) DeleteByFilename(ctx context.Context, filename string) error {
	return r.db.WithContext(ctx).Where("filename = ?", filename).Delete(&model.MediaFile{}).Error
}
