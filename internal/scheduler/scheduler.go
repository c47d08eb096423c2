// Package scheduler günlük ve periyodik arka plan işlerini çalıştırır.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/robinmutlu/robinboard/internal/service"
)

// Scheduler cron tabanlı iş zamanlayıcısı. Gece yarısı günün nöbet
// tablosunu yayınlar, hava durumu önbelleğini periyodik tazeler.
type Scheduler struct {
	cron     *cron.Cron
	services *service.Services
	hub      service.Broadcaster
	now      func() time.Time
	logger   *zap.Logger
}

// New Scheduler örneği oluşturur. loc panonun yerel saat dilimidir;
// gece yarısı işi bu dilime göre tetiklenir.
func New(services *service.Services, hub service.Broadcaster, loc *time.Location, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		services: services,
		hub:      hub,
		now:      func() time.Time { return time.Now().In(loc) },
		logger:   logger,
	}
}

// Start işleri kaydeder ve cron döngüsünü başlatır.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 0 * * *", s.broadcastDuty); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("*/10 * * * *", s.refreshWeather); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("zamanlayıcı başlatıldı")
	return nil
}

// Stop çalışan işlerin bitmesini bekleyip döngüyü durdurur.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("zamanlayıcı durduruldu")
}

// broadcastDuty gün değişince yeni günün rotasyonlu nöbet tablosunu
// yayınlar. Pazartesi geceleri rotasyon adımı burada bir ilerlemiş olur.
func (s *Scheduler) broadcastDuty() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	board, err := s.services.Settings.DutyBoard(ctx, s.now())
	if err != nil {
		s.logger.Warn("nöbet tablosu üretilemedi", zap.Error(err))
		return
	}
	s.hub.Broadcast(service.EventDutyChanged, board)
}

// refreshWeather hava durumu önbelleğini tazeler; sonuç önbelleğe
// yazıldığı için istemci istekleri sağlayıcıyı beklemez.
func (s *Scheduler) refreshWeather() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := s.services.Weather.Current(ctx); err != nil {
		s.logger.Warn("hava durumu tazelenemedi", zap.Error(err))
	}
}
