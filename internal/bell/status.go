package bell

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category anlık zil durumunun sınıfı.
type Category string

const (
	CategoryNoSchool     Category = "no-school"
	CategoryBeforeSchool Category = "before-school"
	CategoryAfterSchool  Category = "after-school"
	CategoryLesson       Category = "lesson"
	CategoryBreak        Category = "break"
	CategoryLunch        Category = "lunch"
)

// Status her saniye sıfırdan türetilen anlık pano durumu. Aralıklar
// arasında durum taşınmaz; saat oynasa ya da tik kaçsa bile bir sonraki
// hesap doğru sonucu verir.
type Status struct {
	Category    Category `json:"category"`
	Label       string   `json:"label"`
	SubLabel    string   `json:"subLabel"`
	MinutesLeft int      `json:"minutesLeft"`
	Progress    float64  `json:"progress"` // 0–100, kesirli
	Countdown   bool     `json:"countdown"`
}

var turkishUpper = cases.Upper(language.Turkish)

// UpperTR Türkçe büyük harfe çevirir (i → İ, ı → I).
func UpperTR(s string) string {
	return turkishUpper.String(s)
}

// StatusFor günün planını config üzerinden çözer ve StatusAt'e devreder.
func StatusFor(cfg Config, now time.Time) Status {
	day := DayOf(now)
	schedule, ok := cfg.Days[day]
	if !ok {
		schedule = DaySchedule{StartTime: defaultStartTime, Blocks: []Block{}}
	}
	return StatusAt(now, day, BuildIntervals(schedule.StartTime, schedule.Blocks))
}

// StatusAt verilen an için zil durumunu hesaplar. Saf fonksiyondur:
// aynı (an, aralık listesi) çifti her zaman aynı durumu üretir.
func StatusAt(now time.Time, day Day, intervals []Interval) Status {
	if len(intervals) == 0 {
		return Status{
			Category: CategoryNoSchool,
			Label:    "BUGÜN DERS YOK",
			SubLabel: UpperTR(string(day)),
			Progress: 100,
		}
	}

	nowMinutes := now.Hour()*60 + now.Minute()

	// Aralıklar bitişik ve örtüşmesiz: en fazla bir eşleşme olabilir.
	var active *Interval
	for i := range intervals {
		if nowMinutes >= intervals[i].Start && nowMinutes < intervals[i].End {
			active = &intervals[i]
			break
		}
	}

	if active == nil {
		if nowMinutes < intervals[0].Start {
			return Status{
				Category: CategoryBeforeSchool,
				Label:    "GÜNAYDIN",
				SubLabel: "DERS BAŞLAMADI",
				Progress: 0,
			}
		}
		return Status{
			Category: CategoryAfterSchool,
			Label:    "İYİ AKŞAMLAR",
			SubLabel: "OKUL BİTTİ",
			Progress: 100,
		}
	}

	totalSeconds := (active.End - active.Start) * 60
	elapsedSeconds := (nowMinutes-active.Start)*60 + now.Second()

	minutesLeft := (totalSeconds - elapsedSeconds + 59) / 60
	if minutesLeft < 0 {
		minutesLeft = 0
	}

	subLabel := "BLOK BİTİMİNE"
	switch active.Kind {
	case BlockLesson:
		subLabel = "DERSİN BİTİMİNE"
	case BlockBreak:
		subLabel = "DERS BAŞLANGICINA"
	case BlockLunch:
		subLabel = "ÖĞLE ARASI BİTİMİNE"
	}

	return Status{
		Category:    Category(active.Kind),
		Label:       active.Label,
		SubLabel:    subLabel,
		MinutesLeft: minutesLeft,
		Progress:    float64(elapsedSeconds) / float64(totalSeconds) * 100,
		Countdown:   true,
	}
}
