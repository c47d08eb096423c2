package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/robinmutlu/robinboard/config"
)

// Client Redis istemci sarmalayıcısı. Token kara listesi ve hava durumu
// önbelleği için kullanılır.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient Redis bağlantısı kurar ve ping ile doğrular.
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis bağlantısı kurulamadı: %w", err)
	}

	logger.Info("Redis bağlantısı kuruldu", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── Token kara listesi ──

const blacklistPrefix = "token:blacklist:"

// BlacklistToken JWT ID'sini token'ın kalan ömrü kadar kara listeye alır.
func (c *Client) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // Token zaten geçersiz, kara listeye gerek yok.
	}
	return c.rdb.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

// IsBlacklisted JWT ID'sinin kara listede olup olmadığını döndürür.
func (c *Client) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ── Genel önbellek ──

// CacheSet veriyi TTL ile saklar.
func (c *Client) CacheSet(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

// CacheGet anahtarı okur; yoksa (nil, false) döner.
func (c *Client) CacheGet(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.rdb.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Close bağlantıyı kapatır.
func (c *Client) Close() error {
	return c.rdb.Close()
}
