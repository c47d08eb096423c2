package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/robinmutlu/robinboard/internal/dto"
	"github.com/robinmutlu/robinboard/internal/service"
	"github.com/robinmutlu/robinboard/pkg/response"
)

// AuthHandler yönetici oturum uçları.
type AuthHandler struct {
	auth   service.AuthService
	logger *zap.Logger
}

// NewAuthHandler AuthHandler örneği oluşturur.
func NewAuthHandler(auth service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// Login POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "Parola gerekli")
		return
	}

	tokens, err := h.auth.Login(c.Request.Context(), req.Password)
	if errors.Is(err, service.ErrInvalidPassword) {
		response.Unauthorized(c, 40110, "Parola hatalı")
		return
	}
	if err != nil {
		h.logger.Error("giriş başarısız", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, tokens)
}

// Refresh POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "Yenileme token'ı gerekli")
		return
	}

	tokens, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken)
	if errors.Is(err, service.ErrInvalidToken) {
		response.Unauthorized(c, 40102, "Geçersiz yenileme token'ı")
		return
	}
	if err != nil {
		h.logger.Error("token yenileme başarısız", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, tokens)
}

// Status GET /api/v1/admin/auth/status — middleware'den geçen token
// geçerlidir, yalnızca onay döner.
func (h *AuthHandler) Status(c *gin.Context) {
	response.OK(c, gin.H{"authenticated": true})
}

// Logout POST /api/v1/admin/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token, _ := strings.CutPrefix(header, "Bearer ")

	if err := h.auth.Logout(c.Request.Context(), token); err != nil {
		h.logger.Error("çıkış başarısız", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
