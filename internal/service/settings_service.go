package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/robinmutlu/robinboard/internal/bell"
	"github.com/robinmutlu/robinboard/internal/dto"
	"github.com/robinmutlu/robinboard/internal/duty"
	"github.com/robinmutlu/robinboard/internal/model"
	"github.com/robinmutlu/robinboard/internal/repository"
)

// publicSettingKeys pano istemcisine kimlik doğrulamasız açılan
// anahtarlar. Listede olmayanlar (örn. weatherApiKey) yalnızca yönetici
// uçlarından okunur.
var publicSettingKeys = map[string]bool{
	"schoolName":            true,
	"marqueeText":           true,
	"isEmergency":           true,
	"emergencyMessage":      true,
	"weatherCity":           true,
	"dutySchedule":          true,
	"dutyRotationStartDate": true,
	"bellConfig":            true,
}

// SettingsService tek satırlık ayar blob'unun sahibi. Zil planı ve
// nöbet çizelgesi de bu blob'un içinde yaşar; türetilmiş görünümler
// (normalize plan, rotasyonlu tablo, takvim dışa aktarımı) buradan
// üretilir.
type SettingsService interface {
	EnsureDefaults(ctx context.Context) error
	Get(ctx context.Context) (model.JSONMap, error)
	GetPublic(ctx context.Context) (model.JSONMap, error)
	Update(ctx context.Context, patch map[string]interface{}) (model.JSONMap, error)
	BellConfig(ctx context.Context) (bell.Config, error)
	DutyBoard(ctx context.Context, now time.Time) (*dto.DutyBoardResponse, error)
	ExportBellICS(ctx context.Context, now time.Time) ([]byte, error)
}

type settingsService struct {
	repo   repository.SettingRepository
	hub    Broadcaster
	now    func() time.Time
	logger *zap.Logger
}

// NewSettingsService SettingsService örneği oluşturur.
func NewSettingsService(repo repository.SettingRepository, hub Broadcaster, now func() time.Time, logger *zap.Logger) SettingsService {
	return &settingsService{repo: repo, hub: hub, now: now, logger: logger}
}

// defaultSettings ilk açılışta yazılan blob. Nöbet çizelgesi boş
// atamalarla, zil planı yerleşik haftayla başlar.
func defaultSettings() model.JSONMap {
	schedule := make(map[string]map[string]string, len(bell.Weekdays))
	for _, day := range bell.Weekdays {
		board := make(map[string]string, len(duty.Locations))
		for _, location := range duty.Locations {
			board[string(location)] = ""
		}
		schedule[string(day)] = board
	}

	return model.JSONMap{
		"schoolName":            "",
		"marqueeText":           "",
		"isEmergency":           false,
		"emergencyMessage":      "",
		"weatherCity":           "İstanbul",
		"weatherApiKey":         "",
		"dutySchedule":          jsonValue(schedule),
		"dutyRotationStartDate": "",
		"bellConfig":            jsonValue(bell.DefaultConfig()),
	}
}

// jsonValue yapıyı jsonb'de saklanabilir düz değere çevirir.
func jsonValue(v interface{}) interface{} {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// decodeInto blob içindeki serbest değeri hedef yapıya aktarır.
func decodeInto(value interface{}, target interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, target)
}

// EnsureDefaults blob yoksa oluşturur, varsa eksik anahtarları yerinde
// tamamlar. Yeni sürümün eklediği anahtarlar eski kurulumlarda böyle
// belirir.
func (s *settingsService) EnsureDefaults(ctx context.Context) error {
	setting, err := s.repo.Get(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Info("ayar blob'u bulunamadı, varsayılanlar yazılıyor")
		return s.repo.Save(ctx, &model.Setting{Data: defaultSettings()})
	}
	if err != nil {
		return err
	}

	changed := false
	for key, value := range defaultSettings() {
		if _, ok := setting.Data[key]; !ok {
			setting.Data[key] = value
			changed = true
		}
	}
	if !changed {
		return nil
	}
	s.logger.Info("ayar blob'una eksik anahtarlar eklendi")
	return s.repo.Save(ctx, setting)
}

// Get blob'u okur. Rotasyon çapası boşsa ilk okumada bu haftanın
// Pazartesi'siyle tohumlanıp kaydedilir; rotasyon böylece okunduğu
// hafta sıfırıncı adıma sabitlenir.
func (s *settingsService) Get(ctx context.Context) (model.JSONMap, error) {
	setting, err := s.repo.Get(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return defaultSettings(), nil
	}
	if err != nil {
		return nil, err
	}

	if anchor, _ := setting.Data["dutyRotationStartDate"].(string); anchor == "" {
		setting.Data["dutyRotationStartDate"] = duty.WeekMonday(s.now()).Format("2006-01-02")
		if err := s.repo.Save(ctx, setting); err != nil {
			s.logger.Warn("rotasyon çapası kaydedilemedi", zap.Error(err))
		}
	}
	return setting.Data, nil
}

func (s *settingsService) GetPublic(ctx context.Context) (model.JSONMap, error) {
	data, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	public := make(model.JSONMap, len(publicSettingKeys))
	for key, value := range data {
		if publicSettingKeys[key] {
			public[key] = value
		}
	}
	return public, nil
}

// Update gönderilen anahtarları blob'un üzerine yazar. Nöbet çizelgesi
// ilk kez çapasız kaydedilirse rotasyon çapası bu haftanın Pazartesi'si
// olarak tohumlanır; böylece çizelge kaydedildiği hafta 0. adımda
// görünür.
func (s *settingsService) Update(ctx context.Context, patch map[string]interface{}) (model.JSONMap, error) {
	setting, err := s.repo.Get(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = &model.Setting{Data: defaultSettings()}
	} else if err != nil {
		return nil, err
	}

	for key, value := range patch {
		setting.Data[key] = value
	}

	if _, dutyPosted := patch["dutySchedule"]; dutyPosted {
		if _, anchorPosted := patch["dutyRotationStartDate"]; !anchorPosted {
			if anchor, _ := setting.Data["dutyRotationStartDate"].(string); anchor == "" {
				setting.Data["dutyRotationStartDate"] = duty.WeekMonday(s.now()).Format("2006-01-02")
			}
		}
	}

	if err := s.repo.Save(ctx, setting); err != nil {
		return nil, err
	}

	if public, err := s.GetPublic(ctx); err == nil {
		s.hub.Broadcast(EventSettingsChanged, public)
	}
	s.logger.Info("ayarlar güncellendi", zap.Int("anahtar", len(patch)))
	return setting.Data, nil
}

// BellConfig blob'daki ham zil ayarını normalize edilmiş haftaya çevirir.
// Anahtar yoksa ya da bozuksa yerleşik plan döner; zil motoru hiçbir
// girdide çalışmayı reddetmez.
func (s *settingsService) BellConfig(ctx context.Context) (bell.Config, error) {
	data, err := s.Get(ctx)
	if err != nil {
		return bell.Config{}, err
	}

	value, ok := data["bellConfig"]
	if !ok || value == nil {
		return bell.DefaultConfig(), nil
	}

	var raw bell.RawConfig
	if err := decodeInto(value, &raw); err != nil {
		s.logger.Warn("zil ayarı okunamadı, varsayılan plana dönülüyor", zap.Error(err))
		return bell.DefaultConfig(), nil
	}
	return raw.Normalize(), nil
}

// DutyBoard verilen günün rotasyonu uygulanmış nöbet tablosunu üretir.
// Hafta sonu tablo boştur; rotasyon motoru hiç çağrılmaz.
func (s *settingsService) DutyBoard(ctx context.Context, now time.Time) (*dto.DutyBoardResponse, error) {
	day := bell.DayOf(now)
	if day.IsWeekend() {
		return &dto.DutyBoardResponse{Day: string(day), Weekend: true, Locations: map[string]string{}}, nil
	}

	data, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	var raw map[string]map[string]string
	if value, ok := data["dutySchedule"]; ok {
		if err := decodeInto(value, &raw); err != nil {
			s.logger.Warn("nöbet çizelgesi okunamadı", zap.Error(err))
		}
	}
	schedule := duty.NormalizeSchedule(raw)

	anchor, _ := data["dutyRotationStartDate"].(string)
	offset := duty.RotationOffset(anchor, now)
	board := duty.Rotate(schedule[day], offset)

	locations := make(map[string]string, len(board))
	for location, teacher := range board {
		locations[string(location)] = teacher
	}
	return &dto.DutyBoardResponse{Day: string(day), Locations: locations}, nil
}

// ExportBellICS içinde bulunulan haftanın zil planını iCalendar olarak
// dışa aktarır. Her aralık bir etkinliktir; boş günler takvime girmez.
func (s *settingsService) ExportBellICS(ctx context.Context, now time.Time) ([]byte, error) {
	cfg, err := s.BellConfig(ctx)
	if err != nil {
		return nil, err
	}

	monday := duty.WeekMonday(now)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//robinboard//zil plani//TR")

	for dayIndex, day := range bell.Week {
		schedule := cfg.Days[day]
		date := monday.AddDate(0, 0, dayIndex)

		for _, interval := range bell.BuildIntervals(schedule.StartTime, schedule.Blocks) {
			uid := fmt.Sprintf("%s-%d@robinboard", date.Format("20060102"), interval.Start)
			event := cal.AddEvent(uid)
			event.SetSummary(interval.Label)
			event.SetStartAt(date.Add(time.Duration(interval.Start) * time.Minute))
			event.SetEndAt(date.Add(time.Duration(interval.End) * time.Minute))
			event.SetDtStampTime(now)
		}
	}

	return []byte(cal.Serialize()), nil
}
