package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/robinmutlu/robinboard/internal/bell"
	"github.com/robinmutlu/robinboard/internal/model"
)

// testNow sabit bir Çarşamba: 8 Ocak 2025, 10:00.
func testNow() time.Time {
	return time.Date(2025, time.January, 8, 10, 0, 0, 0, time.UTC)
}

func newSettingsForTest(repo *mockSettingRepo, hub *mockHub) SettingsService {
	return NewSettingsService(repo, hub, testNow, zap.NewNop())
}

func TestEnsureDefaultsBlobYoksaOlusturur(t *testing.T) {
	repo := &mockSettingRepo{}
	svc := newSettingsForTest(repo, &mockHub{})

	if err := svc.EnsureDefaults(context.Background()); err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if repo.setting == nil {
		t.Fatal("blob oluşturulmadı")
	}
	for _, key := range []string{"schoolName", "weatherCity", "dutySchedule", "bellConfig"} {
		if _, ok := repo.setting.Data[key]; !ok {
			t.Errorf("varsayılan anahtar %q eksik", key)
		}
	}
	if city := repo.setting.Data["weatherCity"]; city != "İstanbul" {
		t.Errorf("weatherCity = %v, İstanbul bekleniyordu", city)
	}
}

func TestEnsureDefaultsEksikAnahtariTamamlar(t *testing.T) {
	repo := &mockSettingRepo{setting: &model.Setting{ID: 1, Data: model.JSONMap{
		"schoolName": "Atatürk İlkokulu",
	}}}
	svc := newSettingsForTest(repo, &mockHub{})

	if err := svc.EnsureDefaults(context.Background()); err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if repo.setting.Data["schoolName"] != "Atatürk İlkokulu" {
		t.Error("mevcut değer ezilmemeliydi")
	}
	if _, ok := repo.setting.Data["bellConfig"]; !ok {
		t.Error("eksik bellConfig tamamlanmalıydı")
	}

	// İkinci çağrı hiçbir şey yazmamalı.
	saves := repo.saves
	if err := svc.EnsureDefaults(context.Background()); err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if repo.saves != saves {
		t.Error("değişiklik yokken Save çağrıldı")
	}
}

func TestGetBosCapayiOkumadaTohumlar(t *testing.T) {
	repo := &mockSettingRepo{setting: &model.Setting{ID: 1, Data: model.JSONMap{
		"dutyRotationStartDate": "",
	}}}
	svc := newSettingsForTest(repo, &mockHub{})

	data, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	// 8 Ocak 2025 Çarşamba; haftanın Pazartesi'si 6 Ocak.
	if anchor := data["dutyRotationStartDate"]; anchor != "2025-01-06" {
		t.Errorf("çapa = %v, 2025-01-06 bekleniyordu", anchor)
	}
	if repo.saves != 1 {
		t.Errorf("tohumlanan çapa kaydedilmeliydi, %d kayıt bulundu", repo.saves)
	}

	// Dolu çapa ikinci okumada ellenmez.
	if _, err := svc.Get(context.Background()); err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if repo.saves != 1 {
		t.Error("dolu çapa yeniden yazılmamalı")
	}
}

func TestGetPublicGizliAnahtarlariSuzur(t *testing.T) {
	repo := &mockSettingRepo{setting: &model.Setting{ID: 1, Data: model.JSONMap{
		"schoolName":    "Atatürk İlkokulu",
		"weatherApiKey": "cok-gizli",
	}}}
	svc := newSettingsForTest(repo, &mockHub{})

	public, err := svc.GetPublic(context.Background())
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if _, ok := public["weatherApiKey"]; ok {
		t.Error("weatherApiKey public görünümde olmamalı")
	}
	if public["schoolName"] != "Atatürk İlkokulu" {
		t.Error("schoolName public görünümde olmalı")
	}
}

func TestUpdateYamaUygularVeYayinlar(t *testing.T) {
	repo := &mockSettingRepo{setting: &model.Setting{ID: 1, Data: model.JSONMap{
		"schoolName":  "Eski Ad",
		"marqueeText": "duyuru",
	}}}
	hub := &mockHub{}
	svc := newSettingsForTest(repo, hub)

	data, err := svc.Update(context.Background(), map[string]interface{}{"schoolName": "Yeni Ad"})
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if data["schoolName"] != "Yeni Ad" {
		t.Errorf("schoolName = %v", data["schoolName"])
	}
	if data["marqueeText"] != "duyuru" {
		t.Error("dokunulmayan anahtar korunmalıydı")
	}
	if !hub.has(EventSettingsChanged) {
		t.Error("settingsChanged yayını bekleniyordu")
	}
}

func TestUpdateNobetKaydindaCapaTohumlanir(t *testing.T) {
	repo := &mockSettingRepo{setting: &model.Setting{ID: 1, Data: model.JSONMap{
		"dutyRotationStartDate": "",
	}}}
	svc := newSettingsForTest(repo, &mockHub{})

	data, err := svc.Update(context.Background(), map[string]interface{}{
		"dutySchedule": map[string]interface{}{"Pazartesi": map[string]interface{}{"Bahçe": "Ali"}},
	})
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}

	// 8 Ocak 2025 Çarşamba; haftanın Pazartesi'si 6 Ocak.
	if anchor := data["dutyRotationStartDate"]; anchor != "2025-01-06" {
		t.Errorf("çapa = %v, 2025-01-06 bekleniyordu", anchor)
	}
}

func TestUpdateMevcutCapaEzilmez(t *testing.T) {
	repo := &mockSettingRepo{setting: &model.Setting{ID: 1, Data: model.JSONMap{
		"dutyRotationStartDate": "2024-09-02",
	}}}
	svc := newSettingsForTest(repo, &mockHub{})

	data, err := svc.Update(context.Background(), map[string]interface{}{
		"dutySchedule": map[string]interface{}{},
	})
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if anchor := data["dutyRotationStartDate"]; anchor != "2024-09-02" {
		t.Errorf("mevcut çapa korunmalıydı, %v bulundu", anchor)
	}
}

func TestBellConfigAnahtarYoksaVarsayilanPlan(t *testing.T) {
	repo := &mockSettingRepo{setting: &model.Setting{ID: 1, Data: model.JSONMap{}}}
	svc := newSettingsForTest(repo, &mockHub{})

	cfg, err := svc.BellConfig(context.Background())
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if len(cfg.Days) != 7 {
		t.Fatalf("7 gün bekleniyordu, %d bulundu", len(cfg.Days))
	}
	if len(cfg.Days[bell.Monday].Blocks) != 15 {
		t.Errorf("Pazartesi %d blok, 15 bekleniyordu", len(cfg.Days[bell.Monday].Blocks))
	}
}

func TestBellConfigEskiDuzYapiyiCozer(t *testing.T) {
	repo := &mockSettingRepo{setting: &model.Setting{ID: 1, Data: model.JSONMap{
		"bellConfig": map[string]interface{}{
			"startTime":      "09:00",
			"lessonDuration": 30,
		},
	}}}
	svc := newSettingsForTest(repo, &mockHub{})

	cfg, err := svc.BellConfig(context.Background())
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	monday := cfg.Days[bell.Monday]
	if monday.StartTime != "09:00" {
		t.Errorf("StartTime = %q", monday.StartTime)
	}
	if monday.Blocks[0].Duration != 30 {
		t.Errorf("ders süresi = %d, 30 bekleniyordu", monday.Blocks[0].Duration)
	}
}

func TestDutyBoardHaftaSonuBos(t *testing.T) {
	svc := newSettingsForTest(&mockSettingRepo{}, &mockHub{})

	saturday := time.Date(2025, time.January, 11, 10, 0, 0, 0, time.UTC)
	board, err := svc.DutyBoard(context.Background(), saturday)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if !board.Weekend {
		t.Error("hafta sonu bayrağı bekleniyordu")
	}
	if len(board.Locations) != 0 {
		t.Errorf("boş tablo bekleniyordu, %d konum bulundu", len(board.Locations))
	}
}

func TestDutyBoardRotasyonUygular(t *testing.T) {
	repo := &mockSettingRepo{setting: &model.Setting{ID: 1, Data: model.JSONMap{
		"dutySchedule": map[string]interface{}{
			"Çarşamba": map[string]interface{}{
				"Bahçe": "Ali", "Zemin": "Veli", "1.Kat": "Ayşe", "2.Kat": "Zeynep",
			},
		},
		// Bir hafta önceki Pazartesi: offset 1.
		"dutyRotationStartDate": "2024-12-30",
	}}}
	svc := newSettingsForTest(repo, &mockHub{})

	board, err := svc.DutyBoard(context.Background(), testNow())
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if board.Day != "Çarşamba" {
		t.Errorf("gün = %q", board.Day)
	}
	// Bir adım kaydırma: Bahçe'de son konumun sahibi görünür.
	if board.Locations["Bahçe"] != "Zeynep" {
		t.Errorf("Bahçe = %q, Zeynep bekleniyordu", board.Locations["Bahçe"])
	}
	if board.Locations["Zemin"] != "Ali" {
		t.Errorf("Zemin = %q, Ali bekleniyordu", board.Locations["Zemin"])
	}
}

func TestExportBellICSHaftaninDerslerineEtkinlikUretir(t *testing.T) {
	svc := newSettingsForTest(&mockSettingRepo{}, &mockHub{})

	data, err := svc.ExportBellICS(context.Background(), testNow())
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}

	ics := string(data)
	if !strings.Contains(ics, "BEGIN:VCALENDAR") {
		t.Fatal("takvim başlığı yok")
	}
	if !strings.Contains(ics, "SUMMARY:1. DERS") {
		t.Error("ders etkinliği yok")
	}
	// Varsayılan planda 5 gün x 15 aralık = 75 etkinlik.
	if got := strings.Count(ics, "BEGIN:VEVENT"); got != 75 {
		t.Errorf("etkinlik sayısı = %d, 75 bekleniyordu", got)
	}
}
