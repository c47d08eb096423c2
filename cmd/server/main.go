package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/robinmutlu/robinboard/config"
	"github.com/robinmutlu/robinboard/internal/api/handler"
	"github.com/robinmutlu/robinboard/internal/api/router"
	"github.com/robinmutlu/robinboard/internal/realtime"
	"github.com/robinmutlu/robinboard/internal/repository"
	"github.com/robinmutlu/robinboard/internal/scheduler"
	"github.com/robinmutlu/robinboard/internal/service"
	"github.com/robinmutlu/robinboard/pkg/database"
	"github.com/robinmutlu/robinboard/pkg/jwt"
	"github.com/robinmutlu/robinboard/pkg/logger"
	"github.com/robinmutlu/robinboard/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "yapılandırma dosyası yolu")
	flag.Parse()

	// .env varsa yüklenir; yoksa sorun değil.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("yapılandırma yüklenemedi: %v", err)
	}

	zapLogger, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("günlükçü kurulamadı: %v", err)
	}
	defer zapLogger.Sync()

	if err := run(cfg, zapLogger); err != nil {
		zapLogger.Fatal("sunucu hatayla kapandı", zap.Error(err))
	}
}

func run(cfg *config.Config, zapLogger *zap.Logger) error {
	loc, err := time.LoadLocation(cfg.Database.Timezone)
	if err != nil {
		return fmt.Errorf("saat dilimi yüklenemedi: %w", err)
	}

	// ── Veritabanı ──
	db, err := database.NewDB(&cfg.Database, zapLogger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, zapLogger); err != nil {
		return err
	}

	// ── Redis: ulaşılamazsa kara liste ve önbelleksiz devam edilir ──
	rdb, err := redis.NewClient(&cfg.Redis, zapLogger)
	if err != nil {
		zapLogger.Warn("Redis'e ulaşılamadı, önbelleksiz devam ediliyor", zap.Error(err))
		rdb = nil
	} else {
		defer rdb.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── Katmanlar ──
	jwtMgr := jwt.NewManager(&cfg.Auth)
	repo := repository.NewRepository(db)
	hub := realtime.NewHub(zapLogger)
	services := service.NewServices(cfg, repo, jwtMgr, rdb, hub, loc, zapLogger)

	if err := services.Settings.EnsureDefaults(ctx); err != nil {
		return fmt.Errorf("varsayılan ayarlar yazılamadı: %w", err)
	}

	h := handler.NewHandler(services, zapLogger)
	engine := router.New(cfg, h, hub, jwtMgr, rdb, zapLogger)

	// ── Arka plan döngüleri ──
	go hub.Run(ctx)
	go services.Display.Run(ctx)

	jobs := scheduler.New(services, hub, loc, zapLogger)
	if err := jobs.Start(); err != nil {
		return fmt.Errorf("zamanlayıcı başlatılamadı: %w", err)
	}

	// ── HTTP sunucusu ──
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zapLogger.Info("sunucu dinliyor", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		zapLogger.Info("kapanış sinyali alındı", zap.String("sinyal", sig.String()))
	}

	// ── Düzenli kapanış ──
	cancel()
	jobs.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("sunucu düzgün kapatılamadı: %w", err)
	}

	zapLogger.Info("sunucu kapandı")
	return nil
}
