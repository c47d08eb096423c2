package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/robinmutlu/robinboard/internal/dto"
	"github.com/robinmutlu/robinboard/pkg/redis"
)

const weatherEndpoint = "https://api.openweathermap.org/data/2.5/weather"

// WeatherService hava durumu vekili. Şehir ve API anahtarı ayar
// blob'undan okunur; sağlayıcı yanıtı Redis'te önbelleklenir.
// Sağlayıcıya ulaşılamazsa pano "--" ile yaşamaya devam eder, hata
// hiçbir zaman dışarı sızmaz.
type WeatherService interface {
	Current(ctx context.Context) (*dto.WeatherResponse, error)
}

type weatherService struct {
	settings SettingsService
	rdb      *redis.Client
	client   *http.Client
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewWeatherService WeatherService örneği oluşturur.
func NewWeatherService(settings SettingsService, rdb *redis.Client, client *http.Client, cacheTTL time.Duration, logger *zap.Logger) WeatherService {
	return &weatherService{settings: settings, rdb: rdb, client: client, cacheTTL: cacheTTL, logger: logger}
}

// openWeatherPayload sağlayıcı yanıtının kullanılan kısmı.
type openWeatherPayload struct {
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

func degradedWeather(city string) *dto.WeatherResponse {
	return &dto.WeatherResponse{City: city, Temperature: "--", Description: "--"}
}

func (s *weatherService) Current(ctx context.Context) (*dto.WeatherResponse, error) {
	data, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	city, _ := data["weatherCity"].(string)
	apiKey, _ := data["weatherApiKey"].(string)
	if city == "" {
		city = "İstanbul"
	}
	if apiKey == "" {
		return degradedWeather(city), nil
	}

	cacheKey := "weather:" + city
	if s.rdb != nil {
		if cached, found, err := s.rdb.CacheGet(ctx, cacheKey); err == nil && found {
			var resp dto.WeatherResponse
			if json.Unmarshal(cached, &resp) == nil {
				return &resp, nil
			}
		}
	}

	resp, err := s.fetch(ctx, city, apiKey)
	if err != nil {
		s.logger.Warn("hava durumu sağlayıcısına ulaşılamadı", zap.String("sehir", city), zap.Error(err))
		return degradedWeather(city), nil
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(resp); err == nil {
			if err := s.rdb.CacheSet(ctx, cacheKey, raw, s.cacheTTL); err != nil {
				s.logger.Warn("hava durumu önbelleğe yazılamadı", zap.Error(err))
			}
		}
	}
	return resp, nil
}

func (s *weatherService) fetch(ctx context.Context, city, apiKey string) (*dto.WeatherResponse, error) {
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", apiKey)
	query.Set("units", "metric")
	query.Set("lang", "tr")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, weatherEndpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sağlayıcı %d döndürdü", res.StatusCode)
	}

	var payload openWeatherPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}

	out := &dto.WeatherResponse{
		City:        city,
		Temperature: fmt.Sprintf("%.0f°C", payload.Main.Temp),
	}
	if len(payload.Weather) > 0 {
		out.Description = payload.Weather[0].Description
		out.Icon = payload.Weather[0].Icon
	}
	return out, nil
}
