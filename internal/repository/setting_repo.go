package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/robinmutlu/robinboard/internal/model"
)

// SettingRepository ayar blob'u veri erişim arayüzü. Blob tek satırdır;
// Get ilk satırı okur, Save bütün olarak yazar.
type SettingRepository interface {
	Get(ctx context.Context) (*model.Setting, error)
	Save(ctx context.Context, setting *model.Setting) error
}

type settingRepo struct {
	db *gorm.DB
}

// NewSettingRepo SettingRepository örneği oluşturur.
func NewSettingRepo(db *gorm.DB) SettingRepository {
	return &settingRepo{db: db}
}

func (r *settingRepo) Get(ctx context.Context) (*model.Setting, error) {
	var setting model.Setting
	if err := r.db.WithContext(ctx).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *settingRepo) Save(ctx context.Context, setting *model.Setting) error {
	return r.db.WithContext(ctx).Save(setting).Error
}
