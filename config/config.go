package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config uygulamanın tüm yapılandırması.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Upload   UploadConfig   `mapstructure:"upload"`
	Weather  WeatherConfig  `mapstructure:"weather"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig HTTP sunucu ayarları.
type ServerConfig struct {
	Port    int        `mapstructure:"port"`
	BaseURL string     `mapstructure:"base_url"`
	CORS    CORSConfig `mapstructure:"cors"`
}

// CORSConfig izin verilen origin listesi.
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatabaseConfig PostgreSQL bağlantı ayarları.
type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Name         string `mapstructure:"name"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	SSLMode      string `mapstructure:"sslmode"`
	Timezone     string `mapstructure:"timezone"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// DSN PostgreSQL bağlantı dizesi üretir.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
	)
}

// RedisConfig Redis ayarları.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AuthConfig yönetici girişi ve JWT ayarları.
type AuthConfig struct {
	JWTSecret         string        `mapstructure:"jwt_secret"`
	AdminPasswordHash string        `mapstructure:"admin_password_hash"` // bcrypt
	AccessTokenTTL    time.Duration `mapstructure:"access_token_ttl"`
	RefreshTokenTTL   time.Duration `mapstructure:"refresh_token_ttl"`
}

// UploadConfig medya yükleme ayarları.
type UploadConfig struct {
	Dir       string `mapstructure:"dir"`
	MaxSizeMB int    `mapstructure:"max_size_mb"`
}

// WeatherConfig hava durumu vekili ayarları. Şehir ve API anahtarı
// ayar blob'unda tutulur; burada yalnızca önbellek süresi var.
type WeatherConfig struct {
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// LogConfig günlük ayarları.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load yapılandırmayı dosya ve ortam değişkenlerinden yükler.
// Öncelik: ortam değişkeni > yapılandırma dosyası > varsayılan.
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── Varsayılanlar ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "robinboard")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "Europe/Istanbul")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.access_token_ttl", "15m")
	v.SetDefault("auth.refresh_token_ttl", "168h")

	v.SetDefault("upload.dir", "./static/uploads")
	v.SetDefault("upload.max_size_mb", 50)

	v.SetDefault("weather.cache_ttl", "10m")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// ── Yapılandırma dosyası ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── Ortam değişkenleri ──
	v.SetEnvPrefix("ROBIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("yapılandırma dosyası okunamadı: %w", err)
		}
		// Dosya yoksa varsayılanlar ve ortam değişkenleri yeterli.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("yapılandırma çözülemedi: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate kritik alanları doğrular.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("yapılandırma hatası: auth.jwt_secret boş olamaz")
	}
	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("yapılandırma hatası: auth.jwt_secret en az 16 karakter olmalı")
	}
	if c.Auth.AdminPasswordHash == "" {
		return fmt.Errorf("yapılandırma hatası: auth.admin_password_hash boş olamaz")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("yapılandırma hatası: server.port 1-65535 aralığında olmalı")
	}
	return nil
}
