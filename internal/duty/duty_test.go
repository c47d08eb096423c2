package duty

import (
	"testing"
	"time"

	"github.com/robinmutlu/robinboard/internal/bell"
)

// 2025-01-06 Pazartesi.
var anchorMonday = time.Date(2025, 1, 6, 0, 0, 0, 0, time.Local)

func TestWeekMonday(t *testing.T) {
	for i := 0; i < 7; i++ {
		day := anchorMonday.AddDate(0, 0, i).Add(13 * time.Hour)
		monday := WeekMonday(day)
		if !monday.Equal(anchorMonday) {
			t.Errorf("gün +%d: haftanın Pazartesi'si %s olmalı, gelen %s", i, anchorMonday, monday)
		}
	}
}

func TestRotationOffset_TamDongu(t *testing.T) {
	cycle := len(Locations)

	for week := 0; week <= 2*cycle; week++ {
		now := anchorMonday.AddDate(0, 0, 7*week).Add(10 * time.Hour)
		want := week % cycle
		if got := RotationOffset("2025-01-06", now); got != want {
			t.Errorf("hafta %d: beklenen offset %d, gelen %d", week, want, got)
		}
	}
}

func TestRotationOffset_HaftaIciGunlerAyniOffset(t *testing.T) {
	// Offset güne değil haftanın Pazartesi'sine bağlıdır.
	for i := 0; i < 7; i++ {
		now := anchorMonday.AddDate(0, 0, 7+i)
		if got := RotationOffset("2025-01-06", now); got != 1 {
			t.Errorf("2. haftanın %d. günü: beklenen offset 1, gelen %d", i, got)
		}
	}
}

func TestRotationOffset_GecmisCapaNegatifOlmaz(t *testing.T) {
	// Çapa gelecekte kalsa bile offset negatife düşmez.
	now := anchorMonday.AddDate(0, 0, -7)
	got := RotationOffset("2025-01-06", now)
	if got < 0 || got >= len(Locations) {
		t.Errorf("offset [0,%d) aralığında olmalı, gelen %d", len(Locations), got)
	}
	if got != 3 {
		t.Errorf("bir hafta geride offset %d olmalı, gelen %d", 3, got)
	}
}

func TestRotationOffset_BozukCapaKimlik(t *testing.T) {
	for _, anchor := range []string{"", "bozuk", "2025-13-40"} {
		if got := RotationOffset(anchor, anchorMonday); got != 0 {
			t.Errorf("okunamayan çapa %q için offset 0 olmalı, gelen %d", anchor, got)
		}
	}
}

func TestRotate_KimlikVeBirAdim(t *testing.T) {
	board := Board{
		LocationGarden: "Ali",
		LocationGround: "Ayşe",
		LocationFloor1: "Mehmet",
		LocationFloor2: "Zeynep",
	}

	same := Rotate(board, 0)
	for _, location := range Locations {
		if same[location] != board[location] {
			t.Errorf("offset 0 kimlik eşlemesi olmalı: %s", location)
		}
	}

	// Bir adım ileri: i konumunda (i-1) konumunun özgün ataması görünür.
	shifted := Rotate(board, 1)
	if shifted[LocationGarden] != "Zeynep" {
		t.Errorf("Bahçe'de son konumun ataması görünmeli, gelen %q", shifted[LocationGarden])
	}
	if shifted[LocationGround] != "Ali" {
		t.Errorf("Zemin'de Bahçe'nin ataması görünmeli, gelen %q", shifted[LocationGround])
	}
	if shifted[LocationFloor1] != "Ayşe" {
		t.Errorf("1.Kat'ta Zemin'in ataması görünmeli, gelen %q", shifted[LocationFloor1])
	}
	if shifted[LocationFloor2] != "Mehmet" {
		t.Errorf("2.Kat'ta 1.Kat'ın ataması görünmeli, gelen %q", shifted[LocationFloor2])
	}

	// Tam tur kimliğe döner.
	full := Rotate(board, len(Locations))
	for _, location := range Locations {
		if full[location] != board[location] {
			t.Errorf("tam tur kimliğe dönmeli: %s", location)
		}
	}
}

func TestNormalizeDay_AliasVeEksikKonum(t *testing.T) {
	board := NormalizeDay(map[string]string{
		"Bahce": "Ali",
		"Zemin": "Ayşe",
	})

	if board[LocationGarden] != "Ali" {
		t.Errorf("Bahce alias'ı Bahçe'ye çözülmeli, gelen %q", board[LocationGarden])
	}
	if board[LocationGround] != "Ayşe" {
		t.Errorf("Zemin korunmalı, gelen %q", board[LocationGround])
	}
	if board[LocationFloor1] != "" || board[LocationFloor2] != "" {
		t.Error("eksik konumlar boş atanmalı")
	}
	if len(board) != len(Locations) {
		t.Errorf("normalize sonrası tüm konumlar mevcut olmalı: %d != %d", len(board), len(Locations))
	}
}

func TestNormalizeSchedule_TumIsGunleri(t *testing.T) {
	schedule := NormalizeSchedule(map[string]map[string]string{
		"Persembe": {"Bahçe": "Ali"},
	})

	if len(schedule) != len(bell.Weekdays) {
		t.Fatalf("5 iş günü bekleniyordu, gelen %d", len(schedule))
	}
	if schedule[bell.Thursday][LocationGarden] != "Ali" {
		t.Errorf("Persembe alias'ı Perşembe'ye çözülmeli, gelen %q", schedule[bell.Thursday][LocationGarden])
	}
	for _, day := range bell.Weekdays {
		if len(schedule[day]) != len(Locations) {
			t.Errorf("%s için tüm konumlar mevcut olmalı", day)
		}
	}
}
