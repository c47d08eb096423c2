package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/robinmutlu/robinboard/config"
	"github.com/robinmutlu/robinboard/internal/dto"
	"github.com/robinmutlu/robinboard/internal/model"
	"github.com/robinmutlu/robinboard/internal/repository"
)

var (
	ErrUnsupportedMedia = errors.New("desteklenmeyen dosya türü")
	ErrFileTooLarge     = errors.New("dosya boyutu sınırı aşıyor")
)

// allowedMediaExts pano döngüsünde oynatılabilen uzantılar.
var allowedMediaExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".mp4": true, ".avi": true, ".mov": true,
}

// MediaService pano slayt döngüsünün medya dosyaları. Dosya diske,
// meta verisi (alt yazı) veritabanına yazılır; ad çakışmasını uuid
// öneki önler.
type MediaService interface {
	List(ctx context.Context) ([]dto.MediaFileResponse, error)
	Upload(ctx context.Context, header *multipart.FileHeader, caption string) (*dto.MediaFileResponse, error)
	UpdateCaption(ctx context.Context, filename, caption string) error
	Delete(ctx context.Context, filename string) error
}

type mediaService struct {
	repo    repository.MediaRepository
	hub     Broadcaster
	cfg     *config.UploadConfig
	baseURL string
	logger  *zap.Logger
}

// NewMediaService MediaService örneği oluşturur.
func NewMediaService(repo repository.MediaRepository, hub Broadcaster, cfg *config.UploadConfig, baseURL string, logger *zap.Logger) MediaService {
	return &mediaService{repo: repo, hub: hub, cfg: cfg, baseURL: baseURL, logger: logger}
}

func (s *mediaService) fileURL(filename string) string {
	return s.baseURL + "/static/uploads/" + filename
}

// mediaEvent mediaChanged olayının yükü: ne olduğu ve hangi dosyaya
// olduğu. İstemci listeyi körlemesine yeniden çekmek zorunda kalmaz.
func mediaEvent(action, filename string) map[string]string {
	return map[string]string{"action": action, "filename": filename}
}

func (s *mediaService) List(ctx context.Context) ([]dto.MediaFileResponse, error) {
	files, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MediaFileResponse, 0, len(files))
	for _, file := range files {
		out = append(out, dto.MediaFileResponse{
			Filename: file.Filename,
			URL:      s.fileURL(file.Filename),
			Caption:  file.Caption,
		})
	}
	return out, nil
}

func (s *mediaService) Upload(ctx context.Context, header *multipart.FileHeader, caption string) (*dto.MediaFileResponse, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedMediaExts[ext] {
		return nil, ErrUnsupportedMedia
	}
	if header.Size > int64(s.cfg.MaxSizeMB)*1024*1024 {
		return nil, ErrFileTooLarge
	}

	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("yükleme dizini oluşturulamadı: %w", err)
	}

	filename := uuid.New().String() + ext
	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.cfg.Dir, filename))
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, &model.MediaFile{Filename: filename, Caption: caption}); err != nil {
		os.Remove(filepath.Join(s.cfg.Dir, filename))
		return nil, err
	}

	s.hub.Broadcast(EventMediaChanged, mediaEvent("uploaded", filename))
	s.logger.Info("medya dosyası yüklendi", zap.String("dosya", filename))
	return &dto.MediaFileResponse{Filename: filename, URL: s.fileURL(filename), Caption: caption}, nil
}

func (s *mediaService) UpdateCaption(ctx context.Context, filename, caption string) error {
	if err := s.repo.UpsertCaption(ctx, filename, caption); err != nil {
		return err
	}
	s.hub.Broadcast(EventMediaChanged, mediaEvent("captioned", filename))
	return nil
}

func (s *mediaService) Delete(ctx context.Context, filename string) error {
	// Yol ayracı içeren adlar dizin dışına kaçış denemesidir.
	if filename != filepath.Base(filename) {
		return ErrUnsupportedMedia
	}

	if err := os.Remove(filepath.Join(s.cfg.Dir, filename)); err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := s.repo.DeleteByFilename(ctx, filename); err != nil {
		return err
	}

	s.hub.Broadcast(EventMediaChanged, mediaEvent("deleted", filename))
	s.logger.Info("medya dosyası silindi", zap.String("dosya", filename))
	return nil
}
