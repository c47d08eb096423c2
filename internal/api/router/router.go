// Package router HTTP uçlarını kurar. Public uçlar pano istemcisinin
// kimlik doğrulamasız okuduğu her şeydir; yazan her uç yönetici
// grubunda JWT arkasındadır.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/robinmutlu/robinboard/config"
	"github.com/robinmutlu/robinboard/internal/api/handler"
	"github.com/robinmutlu/robinboard/internal/api/middleware"
	"github.com/robinmutlu/robinboard/internal/realtime"
	"github.com/robinmutlu/robinboard/pkg/jwt"
	"github.com/robinmutlu/robinboard/pkg/redis"
)

// New gin motorunu tüm uçlarla kurar.
func New(
	cfg *config.Config,
	h *handler.Handler,
	hub *realtime.Hub,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.Logger(logger))
	engine.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	engine.Static("/static/uploads", cfg.Upload.Dir)

	api := engine.Group("/api/v1")
	{
		api.POST("/auth/login", h.Auth.Login)
		api.POST("/auth/refresh", h.Auth.Refresh)

		api.GET("/settings", h.Settings.GetPublic)
		api.GET("/bell-config", h.Settings.BellConfig)
		api.GET("/bell/export.ics", h.Settings.ExportICS)
		api.GET("/duty", h.Settings.DutyBoard)
		api.GET("/schedule", h.Schedule.Week)
		api.GET("/schedule/today", h.Schedule.Today)
		api.GET("/birthdays", h.Student.Birthdays)
		api.GET("/weather", h.Weather.Current)
		api.GET("/files", h.Media.List)
		api.GET("/display", h.Display.Snapshot)

		api.GET("/ws", hub.ServeWS)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.JWTAuth(jwtMgr, rdb))
	{
		admin.GET("/auth/status", h.Auth.Status)
		admin.POST("/auth/logout", h.Auth.Logout)

		admin.GET("/settings", h.Settings.Get)
		admin.PUT("/settings", h.Settings.Update)

		admin.GET("/students", h.Student.List)
		admin.POST("/students", h.Student.Create)
		admin.DELETE("/students/:id", h.Student.Delete)
		admin.DELETE("/students", h.Student.DeleteAll)
		admin.POST("/students/import", h.Student.Import)
		admin.GET("/students/export", h.Student.Export)

		admin.PUT("/schedule", h.Schedule.Update)

		admin.POST("/files", h.Media.Upload)
		admin.PUT("/files/:filename/caption", h.Media.UpdateCaption)
		admin.DELETE("/files/:filename", h.Media.Delete)
	}

	return engine
}
