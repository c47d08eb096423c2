package bell

import (
	"fmt"
	"strconv"
	"strings"
)

// Interval bir blok listesinden türetilmiş, gün içi dakika cinsinden
// mutlak zaman dilimi. Kalıcı değildir; her ihtiyaçta yeniden üretilir.
type Interval struct {
	Kind  BlockKind `json:"type"`
	Label string    `json:"name"`
	Start int       `json:"start"` // gece yarısından itibaren dakika
	End   int       `json:"end"`
}

// Blok etiketleri. Ders etiketi yalnızca ders bloklarını sayan 1 tabanlı
// sayaçla üretilir; teneffüs ve öğle arası sayacı ilerletmez.
const (
	labelBreak = "TENEFFÜS"
	labelLunch = "ÖĞLE ARASI"
)

// ParseStartTime "HH:MM" metnini gün içi dakikaya çevirir. Okunamayan
// saat 8'e, okunamayan dakika 0'a düşer; boş girdi 08:00 demektir.
func ParseStartTime(value string) int {
	if value == "" {
		value = defaultStartTime
	}
	parts := strings.SplitN(value, ":", 2)

	hour := 8
	if h, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil {
		hour = h
	}
	minute := 0
	if len(parts) == 2 {
		if m, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			minute = m
		}
	}
	return hour*60 + minute
}

// BuildIntervals sıralı blok listesini bitişik, örtüşmeyen aralıklara
// açar. Çıktı girdiyle aynı uzunluktadır; boş girdi boş çıktı üretir
// (o gün okul yok). Bozuk ya da pozitif olmayan süre blok türünün
// varsayılanına çekilir ve hiçbir aralık 1 dakikadan kısa olamaz, bu
// yüzden dizi kesin olarak tekdüze artar.
func BuildIntervals(startTime string, blocks []Block) []Interval {
	cursor := ParseStartTime(startTime)
	lessonCounter := 0

	intervals := make([]Interval, 0, len(blocks))
	for _, block := range blocks {
		duration := block.Duration
		if duration <= 0 {
			duration = block.Kind.DefaultDuration()
		}
		if duration < 1 {
			duration = 1
		}

		var label string
		switch block.Kind {
		case BlockBreak:
			label = labelBreak
		case BlockLunch:
			label = labelLunch
		default:
			lessonCounter++
			label = fmt.Sprintf("%d. DERS", lessonCounter)
		}

		intervals = append(intervals, Interval{
			Kind:  block.Kind,
			Label: label,
			Start: cursor,
			End:   cursor + duration,
		})
		cursor += duration
	}
	return intervals
}
