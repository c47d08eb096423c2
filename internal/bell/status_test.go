package bell

import (
	"testing"
	"time"
)

// 2025-01-06 Pazartesi.
func mondayAt(hour, minute, second int) time.Time {
	return time.Date(2025, 1, 6, hour, minute, second, 0, time.Local)
}

func TestStatusAt_BosGunOkulYok(t *testing.T) {
	times := []time.Time{mondayAt(0, 0, 0), mondayAt(10, 30, 0), mondayAt(23, 59, 59)}
	for _, now := range times {
		status := StatusAt(now, Monday, nil)
		if status.Category != CategoryNoSchool {
			t.Errorf("%s: boş gün her saatte no-school olmalı, gelen %s", now, status.Category)
		}
		if status.Label != "BUGÜN DERS YOK" {
			t.Errorf("etiket yanlış: %q", status.Label)
		}
		if status.SubLabel != "PAZARTESİ" {
			t.Errorf("alt etiket Türkçe büyük harfle gün adı olmalı, gelen %q", status.SubLabel)
		}
	}
}

func TestStatusAt_OkulOncesi(t *testing.T) {
	intervals := BuildIntervals("08:00", DefaultConfig().Days[Monday].Blocks)
	status := StatusAt(mondayAt(7, 15, 0), Monday, intervals)

	if status.Category != CategoryBeforeSchool {
		t.Errorf("beklenen before-school, gelen %s", status.Category)
	}
	if status.Label != "GÜNAYDIN" || status.SubLabel != "DERS BAŞLAMADI" {
		t.Errorf("etiketler yanlış: %q / %q", status.Label, status.SubLabel)
	}
	if status.Countdown {
		t.Error("okul öncesi geri sayım olmamalı")
	}
}

func TestStatusAt_OkulSonrasi(t *testing.T) {
	intervals := BuildIntervals("08:00", DefaultConfig().Days[Monday].Blocks)
	status := StatusAt(mondayAt(16, 0, 0), Monday, intervals) // 8. ders 16:00'da biter

	if status.Category != CategoryAfterSchool {
		t.Errorf("beklenen after-school, gelen %s", status.Category)
	}
	if status.Label != "İYİ AKŞAMLAR" || status.SubLabel != "OKUL BİTTİ" {
		t.Errorf("etiketler yanlış: %q / %q", status.Label, status.SubLabel)
	}
}

func TestStatusAt_DersBaslangicinda(t *testing.T) {
	intervals := BuildIntervals("08:00", DefaultConfig().Days[Monday].Blocks)
	status := StatusAt(mondayAt(8, 0, 0), Monday, intervals)

	if status.Category != CategoryLesson {
		t.Errorf("beklenen lesson, gelen %s", status.Category)
	}
	if status.Label != "1. DERS" || status.SubLabel != "DERSİN BİTİMİNE" {
		t.Errorf("etiketler yanlış: %q / %q", status.Label, status.SubLabel)
	}
	if status.MinutesLeft != 40 {
		t.Errorf("ders başında kalan süre tam 40 dk olmalı, gelen %d", status.MinutesLeft)
	}
	if status.Progress != 0 {
		t.Errorf("ders başında ilerleme 0 olmalı, gelen %f", status.Progress)
	}
}

func TestStatusAt_BitimdenBirDakikaOnce(t *testing.T) {
	intervals := BuildIntervals("08:00", DefaultConfig().Days[Monday].Blocks)
	status := StatusAt(mondayAt(8, 39, 30), Monday, intervals)

	if status.MinutesLeft != 1 {
		t.Errorf("bitimden 1 dk önce kalan süre yukarı yuvarlanıp 1 olmalı, gelen %d", status.MinutesLeft)
	}
	if status.Progress >= 100 {
		t.Errorf("ilerleme 100'ün altında kalmalı, gelen %f", status.Progress)
	}
	if status.Progress < 98 {
		t.Errorf("ilerleme 100'e yaklaşmalı, gelen %f", status.Progress)
	}
}

func TestStatusAt_TeneffusVeOgleArasi(t *testing.T) {
	intervals := BuildIntervals("08:00", DefaultConfig().Days[Monday].Blocks)

	brk := StatusAt(mondayAt(8, 45, 0), Monday, intervals) // 520-530 arası teneffüs
	if brk.Category != CategoryBreak {
		t.Errorf("beklenen break, gelen %s", brk.Category)
	}
	if brk.Label != "TENEFFÜS" || brk.SubLabel != "DERS BAŞLANGICINA" {
		t.Errorf("teneffüs etiketleri yanlış: %q / %q", brk.Label, brk.SubLabel)
	}

	lunch := StatusAt(mondayAt(12, 10, 0), Monday, intervals) // 720-760 öğle arası
	if lunch.Category != CategoryLunch {
		t.Errorf("beklenen lunch, gelen %s", lunch.Category)
	}
	if lunch.Label != "ÖĞLE ARASI" || lunch.SubLabel != "ÖĞLE ARASI BİTİMİNE" {
		t.Errorf("öğle arası etiketleri yanlış: %q / %q", lunch.Label, lunch.SubLabel)
	}
	if lunch.MinutesLeft != 30 {
		t.Errorf("12:10'da öğle arasından 30 dk kalmalı, gelen %d", lunch.MinutesLeft)
	}
}

func TestStatusAt_SaniyelerIlerlemeyeKatilir(t *testing.T) {
	intervals := []Interval{{Kind: BlockLesson, Label: "1. DERS", Start: 480, End: 520}}

	early := StatusAt(mondayAt(8, 0, 0), Monday, intervals)
	later := StatusAt(mondayAt(8, 0, 30), Monday, intervals)

	if later.Progress <= early.Progress {
		t.Errorf("saniyeler ilerlemeyi artırmalı: %f <= %f", later.Progress, early.Progress)
	}
	want := 30.0 / (40 * 60) * 100
	if diff := later.Progress - want; diff > 0.0001 || diff < -0.0001 {
		t.Errorf("30. saniyede ilerleme %f olmalı, gelen %f", want, later.Progress)
	}
}

func TestStatusFor_GunPlaniConfigtenCozulur(t *testing.T) {
	cfg := DefaultConfig()

	saturday := time.Date(2025, 1, 11, 10, 0, 0, 0, time.Local)
	if status := StatusFor(cfg, saturday); status.Category != CategoryNoSchool {
		t.Errorf("Cumartesi no-school olmalı, gelen %s", status.Category)
	}

	monday := mondayAt(8, 20, 0)
	if status := StatusFor(cfg, monday); status.Category != CategoryLesson {
		t.Errorf("Pazartesi 08:20 ders olmalı, gelen %s", status.Category)
	}
}

func TestUpperTR(t *testing.T) {
	cases := map[string]string{
		"Pazartesi": "PAZARTESİ",
		"Salı":      "SALI",
		"Çarşamba":  "ÇARŞAMBA",
	}
	for in, want := range cases {
		if got := UpperTR(in); got != want {
			t.Errorf("UpperTR(%q): beklenen %q, gelen %q", in, want, got)
		}
	}
}
