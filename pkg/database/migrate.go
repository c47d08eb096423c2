package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations bekleyen tüm şema migrasyonlarını uygular.
func RunMigrations(db *sql.DB, logger *zap.Logger) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("migrasyon dosyaları yüklenemedi: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("migrasyon sürücüsü oluşturulamadı: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("migrasyon örneği başlatılamadı: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migrasyon uygulanamadı: %w", err)
	}

	version, dirty, _ := m.Version()
	if dirty {
		logger.Warn("migrasyon dirty durumda", zap.Uint("version", version))
	} else {
		logger.Info("migrasyonlar tamamlandı", zap.Uint("version", version))
	}

	return nil
}
