package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/robinmutlu/robinboard/config"
)

var (
	ErrTokenExpired = errors.New("token süresi dolmuş")
	ErrTokenInvalid = errors.New("token geçersiz")
)

// Claims yönetici oturumunun JWT alanları. Tek rol vardır: pano
// yöneticisi; kullanıcı tablosu tutulmaz.
type Claims struct {
	TokenType string `json:"token_type"` // "access" | "refresh"
	jwtv5.RegisteredClaims
}

// Manager JWT üretim ve doğrulama yöneticisi.
type Manager struct {
	secret          []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

// NewManager yapılandırmadan JWT yöneticisi kurar.
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{
		secret:          []byte(cfg.JWTSecret),
		accessTokenTTL:  cfg.AccessTokenTTL,
		refreshTokenTTL: cfg.RefreshTokenTTL,
	}
}

// GenerateAccessToken kısa ömürlü erişim token'ı üretir.
func (m *Manager) GenerateAccessToken() (string, error) {
	return m.generate("access", m.accessTokenTTL)
}

// GenerateRefreshToken uzun ömürlü yenileme token'ı üretir.
func (m *Manager) GenerateRefreshToken() (string, error) {
	return m.generate("refresh", m.refreshTokenTTL)
}

func (m *Manager) generate(tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		TokenType: tokenType,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   "admin",
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(ttl)),
			Issuer:    "robinboard",
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken token'ı çözer ve doğrular.
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
