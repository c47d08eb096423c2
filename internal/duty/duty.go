// Package duty nöbetçi öğretmen çizelgesini ve haftalık konum
// rotasyonunu hesaplar. Rotasyon, çapa tarihinin haftasından bu haftanın
// Pazartesi'sine kadar geçen hafta sayısının konum sayısına göre
// modudur; çizelgenin kendisi hiç değişmez, yalnızca görüntülenen
// atama döngüsel kaydırılır.
package duty

import (
	"math"
	"time"

	"github.com/robinmutlu/robinboard/internal/bell"
)

// Location sabit nöbet konumlarından biri. Konum sayısı aynı zamanda
// rotasyon döngüsünün uzunluğudur.
type Location string

const (
	LocationGarden Location = "Bahçe"
	LocationGround Location = "Zemin"
	LocationFloor1 Location = "1.Kat"
	LocationFloor2 Location = "2.Kat"
)

// Locations kanonik konum sırası; rotasyon bu sıra üzerinden döner.
var Locations = [4]Location{LocationGarden, LocationGround, LocationFloor1, LocationFloor2}

// locationAliases diakritiksiz yazım varyantları; ilk eşleşen kazanır.
var locationAliases = map[Location][]string{
	LocationGarden: {"Bahçe", "Bahce"},
	LocationGround: {"Zemin"},
	LocationFloor1: {"1.Kat"},
	LocationFloor2: {"2.Kat"},
}

// Board bir günün konum → öğretmen ataması. Değer boş olabilir.
type Board map[Location]string

// Schedule hafta içi günlerin nöbet tablosu. Hafta sonu anahtarı
// tutulmaz; hafta sonu görüntüleyen taraf motoru hiç çağırmaz.
type Schedule map[bell.Day]Board

// NormalizeDay ham bir gün tablosunu kanonik konum anahtarlarına indirger.
// Alias yazımlar sırayla denenir; bulunamayan konum boş atanır.
func NormalizeDay(raw map[string]string) Board {
	board := make(Board, len(Locations))
	for _, location := range Locations {
		board[location] = ""
		for _, key := range locationAliases[location] {
			if value, ok := raw[key]; ok {
				board[location] = value
				break
			}
		}
	}
	return board
}

// NormalizeSchedule ham çizelgeyi 5 iş gününün tamamı mevcut, tüm
// anahtarları kanonik bir çizelgeye çevirir.
func NormalizeSchedule(raw map[string]map[string]string) Schedule {
	schedule := make(Schedule, len(bell.Weekdays))
	for _, day := range bell.Weekdays {
		source, _ := bell.PickByDay(raw, day)
		schedule[day] = NormalizeDay(source)
	}
	return schedule
}

// WeekMonday verilen tarihin haftasının Pazartesi gece yarısını döndürür.
func WeekMonday(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(midnight.Weekday()) + 6) % 7
	return midnight.AddDate(0, 0, -offset)
}

// RotationOffset çapa tarihinden bu haftaya kadarki rotasyon adımını
// hesaplar. Fark her zaman bu haftanın Pazartesi'sine göre ölçülür;
// boş ya da okunamayan çapa 0 döner (rotasyonsuz kimlik eşlemesi).
func RotationOffset(anchorISO string, now time.Time) int {
	if anchorISO == "" {
		return 0
	}
	anchor, err := time.ParseInLocation("2006-01-02", anchorISO, now.Location())
	if err != nil {
		return 0
	}

	thisMonday := WeekMonday(now)
	diffWeeks := int(math.Floor(thisMonday.Sub(anchor).Hours() / (24 * 7)))

	cycle := len(Locations)
	return ((diffWeeks % cycle) + cycle) % cycle
}

// Rotate atama listesini offset konum ileri kaydırır: i konumunda
// görünen öğretmen, özgün tabloda (i-offset+C) mod C konumuna atanmış
// olandır. offset 0 kimlik eşlemesidir.
func Rotate(board Board, offset int) Board {
	cycle := len(Locations)
	values := make([]string, cycle)
	for i, location := range Locations {
		values[i] = board[location]
	}

	rotated := make(Board, cycle)
	for i, location := range Locations {
		rotated[location] = values[((i-offset)%cycle+cycle)%cycle]
	}
	return rotated
}
