package bell

import "time"

// Day 7 günün kanonik (Türkçe) adı. Tüm gün anahtarlı yapılar bu
// sabitlerle saklanır; diakritiksiz yazımlar yalnızca okuma sırasında
// alias tablosu üzerinden çözülür.
type Day string

const (
	Monday    Day = "Pazartesi"
	Tuesday   Day = "Salı"
	Wednesday Day = "Çarşamba"
	Thursday  Day = "Perşembe"
	Friday    Day = "Cuma"
	Saturday  Day = "Cumartesi"
	Sunday    Day = "Pazar"
)

// Week Pazartesi'den Pazar'a kanonik sıra.
var Week = [7]Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Weekdays nöbet çizelgesinin kapsadığı 5 iş günü.
var Weekdays = [5]Day{Monday, Tuesday, Wednesday, Thursday, Friday}

// dayAliases kabul edilen yazım varyantları. Sıra önemli: ilk eşleşen
// anahtar kazanır.
var dayAliases = map[Day][]string{
	Monday:    {"Pazartesi"},
	Tuesday:   {"Salı", "Sali"},
	Wednesday: {"Çarşamba", "Carsamba", "Çarsamba"},
	Thursday:  {"Perşembe", "Persembe"},
	Friday:    {"Cuma"},
	Saturday:  {"Cumartesi"},
	Sunday:    {"Pazar"},
}

// Aliases günün kabul edilen yazımlarını kanonik yazım başta olmak
// üzere döndürür.
func (d Day) Aliases() []string {
	if aliases, ok := dayAliases[d]; ok {
		return aliases
	}
	return []string{string(d)}
}

// IsWeekend Cumartesi/Pazar kontrolü.
func (d Day) IsWeekend() bool {
	return d == Saturday || d == Sunday
}

// DayOf verilen anın kanonik gününü döndürür.
func DayOf(t time.Time) Day {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// PickByDay gün anahtarlı bir haritadan kanonik günü, alias yazımlarını
// sırayla deneyerek okur. Hiçbir yazım bulunamazsa ikinci dönüş değeri
// false olur; çağıran kendi varsayılanına düşer.
func PickByDay[T any](source map[string]T, day Day) (T, bool) {
	for _, key := range day.Aliases() {
		if value, ok := source[key]; ok {
			return value, true
		}
	}
	var zero T
	return zero, false
}
