package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/robinmutlu/robinboard/config"
	"github.com/robinmutlu/robinboard/internal/dto"
	"github.com/robinmutlu/robinboard/pkg/jwt"
	"github.com/robinmutlu/robinboard/pkg/redis"
)

var (
	ErrInvalidPassword = errors.New("parola hatalı")
	ErrInvalidToken    = errors.New("token geçersiz")
)

// AuthService yönetici oturum işlemleri. Kullanıcı tablosu yoktur;
// tek yönetici parolası yapılandırmada bcrypt özeti olarak durur.
type AuthService interface {
	Login(ctx context.Context, password string) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	Logout(ctx context.Context, accessToken string) error
}

type authService struct {
	cfg    *config.AuthConfig
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService AuthService örneği oluşturur.
func NewAuthService(cfg *config.AuthConfig, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) AuthService {
	return &authService{cfg: cfg, jwtMgr: jwtMgr, rdb: rdb, logger: logger}
}

func (s *authService) Login(ctx context.Context, password string) (*dto.LoginResponse, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)); err != nil {
		s.logger.Warn("başarısız giriş denemesi")
		return nil, ErrInvalidPassword
	}

	accessToken, err := s.jwtMgr.GenerateAccessToken()
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	s.logger.Info("yönetici girişi yapıldı")
	return &dto.LoginResponse{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	claims, err := s.jwtMgr.ParseToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != "refresh" {
		return nil, ErrInvalidToken
	}

	if s.rdb != nil {
		blacklisted, err := s.rdb.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Warn("kara liste sorgusu başarısız", zap.Error(err))
		} else if blacklisted {
			return nil, ErrInvalidToken
		}
	}

	accessToken, err := s.jwtMgr.GenerateAccessToken()
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Logout access token'ın JWT ID'sini kalan ömrü boyunca kara listeye
// alır. Redis yoksa sessizce geçilir; token zaten kısa ömürlüdür.
func (s *authService) Logout(ctx context.Context, accessToken string) error {
	claims, err := s.jwtMgr.ParseToken(accessToken)
	if err != nil {
		// Süresi dolmuş ya da bozuk token için yapılacak bir şey yok.
		return nil
	}
	if s.rdb == nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.rdb.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		s.logger.Warn("token kara listeye alınamadı", zap.Error(err))
		return err
	}
	return nil
}
