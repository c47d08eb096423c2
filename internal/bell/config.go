package bell

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ── Blok türleri ──

// BlockKind bir zaman bloğunun türü.
type BlockKind string

const (
	BlockLesson BlockKind = "lesson"
	BlockBreak  BlockKind = "break"
	BlockLunch  BlockKind = "lunch"
)

// Blok türü başına süre varsayılanları (dakika). Bozuk ya da eksik
// süre bu değerlere çekilir, asla sıfıra düşmez.
const (
	defaultLessonMinutes = 40
	defaultBreakMinutes  = 10
	defaultLunchMinutes  = 40
	defaultLunchAfter    = 5
	defaultStartTime     = "08:00"
)

// DefaultDuration türe göre güvenli süre varsayılanı.
func (k BlockKind) DefaultDuration() int {
	switch k {
	case BlockBreak:
		return defaultBreakMinutes
	case BlockLunch:
		return defaultLunchMinutes
	default:
		return defaultLessonMinutes
	}
}

// Block tek bir tipli zaman dilimi. Duration dakikadır; 0 "girilmemiş /
// bozuk" anlamına gelir ve aralık üretimi sırasında türün varsayılanına
// çekilir.
type Block struct {
	Kind     BlockKind `json:"type"`
	Duration int       `json:"duration"`
}

// UnmarshalJSON süresi sayı ya da sayısal metin olarak girilmiş blokları
// tolere eder; tanınmayan tür lesson sayılır, okunamayan süre 0 kalır.
func (b *Block) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type     string          `json:"type"`
		Duration json.RawMessage `json:"duration"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch BlockKind(raw.Type) {
	case BlockBreak:
		b.Kind = BlockBreak
	case BlockLunch:
		b.Kind = BlockLunch
	default:
		b.Kind = BlockLesson
	}
	b.Duration = parseMinutes(raw.Duration)
	return nil
}

// parseMinutes JSON sayı veya sayısal metni dakikaya çevirir; okunamayan
// girdi için 0 döner.
func parseMinutes(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	text := strings.TrimSpace(string(raw))
	text = strings.Trim(text, `"`)
	if text == "" || text == "null" {
		return 0
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}
	return int(value)
}

// ── Gün planı ──

// DaySchedule bir günün başlangıç saati ve sıralı blok listesi. Blocks
// boş olabilir: o gün okul yoktur.
type DaySchedule struct {
	StartTime string  `json:"startTime"`
	Blocks    []Block `json:"blocks"`
}

// Config tüm haftanın zil planı. Normalize sonrası Days her zaman 7
// kanonik anahtarın tamamını içerir.
type Config struct {
	Days map[Day]DaySchedule `json:"days"`
}

// planSpec varsayılan 8 derslik günün parametreleri.
type planSpec struct {
	lesson         int
	shortBreak     int
	lunch          int
	lunchAfter     int
	afternoonBreak int // 0 ise shortBreak kullanılır
}

// buildPlanBlocks 8 ders + aralardan oluşan standart günü üretir. Öğle
// arası lunchAfter'ıncı dersten sonra gelir; son dersten sonra ara
// eklenmez.
func buildPlanBlocks(spec planSpec) []Block {
	afternoon := spec.afternoonBreak
	if afternoon == 0 {
		afternoon = spec.shortBreak
	}

	blocks := make([]Block, 0, 15)
	for lesson := 1; lesson <= 8; lesson++ {
		blocks = append(blocks, Block{Kind: BlockLesson, Duration: spec.lesson})
		if lesson == 8 {
			continue
		}
		switch {
		case lesson == spec.lunchAfter:
			blocks = append(blocks, Block{Kind: BlockLunch, Duration: spec.lunch})
		case lesson > spec.lunchAfter:
			blocks = append(blocks, Block{Kind: BlockBreak, Duration: afternoon})
		default:
			blocks = append(blocks, Block{Kind: BlockBreak, Duration: spec.shortBreak})
		}
	}
	return blocks
}

func defaultWeekdayPlan() planSpec {
	return planSpec{
		lesson:     defaultLessonMinutes,
		shortBreak: defaultBreakMinutes,
		lunch:      defaultLunchMinutes,
		lunchAfter: defaultLunchAfter,
	}
}

// DefaultConfig yerleşik hafta planı: hafta içi 08:00'de başlayan 8
// derslik gün, Cuma uzun öğle arası ve kısa öğleden sonra teneffüsü,
// hafta sonu boş.
func DefaultConfig() Config {
	fridayPlan := defaultWeekdayPlan()
	fridayPlan.lunch = 50
	fridayPlan.afternoonBreak = 5

	days := map[Day]DaySchedule{
		Saturday: {StartTime: defaultStartTime, Blocks: []Block{}},
		Sunday:   {StartTime: defaultStartTime, Blocks: []Block{}},
	}
	for _, day := range Weekdays {
		spec := defaultWeekdayPlan()
		if day == Friday {
			spec = fridayPlan
		}
		days[day] = DaySchedule{StartTime: defaultStartTime, Blocks: buildPlanBlocks(spec)}
	}
	return Config{Days: days}
}

// ── Ham yapı ve normalizasyon ──

// flexMinutes eski düz yapıdaki süre alanları için toleranslı sayı:
// JSON sayı veya sayısal metin kabul eder, bozuk girdiyi hatasız yutar.
type flexMinutes struct {
	value int
	ok    bool
}

func (m *flexMinutes) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	text = strings.Trim(text, `"`)
	if text == "" || text == "null" {
		return nil
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil
	}
	m.value = int(value)
	m.ok = true
	return nil
}

// or alan okunabildiyse değerini, yoksa verilen varsayılanı döndürür.
func (m flexMinutes) or(fallback int) int {
	if m.ok {
		return m.value
	}
	return fallback
}

// RawDaySchedule kalıcı veride bir günün ham hali. Blocks bilinçli
// olarak RawMessage: dizi olmayan girdi varsayılan plana düşürülür.
type RawDaySchedule struct {
	StartTime string          `json:"startTime"`
	Blocks    json.RawMessage `json:"blocks"`
}

// RawConfig kalıcı zil ayarının ham hali. İki biçimden biri gelir:
// gün bazlı yapı (Days dolu) ya da eski düz yapı (tekil süre alanları,
// Cuma için ayrı alanlar). Hangisi olduğuna shape() karar verir.
type RawConfig struct {
	Days map[string]RawDaySchedule `json:"days"`

	StartTime      string      `json:"startTime"`
	LessonDuration flexMinutes `json:"lessonDuration"`
	BreakDuration  flexMinutes `json:"breakDuration"`
	LunchDuration  flexMinutes `json:"lunchDuration"`
	LunchAfter     flexMinutes `json:"lunchAfter"`

	FridayLessonDuration         flexMinutes `json:"fridayLessonDuration"`
	FridayBreakDuration          flexMinutes `json:"fridayBreakDuration"`
	FridayLunchDuration          flexMinutes `json:"fridayLunchDuration"`
	FridayLunchAfter             flexMinutes `json:"fridayLunchAfter"`
	FridayAfternoonBreakDuration flexMinutes `json:"fridayAfternoonBreakDuration"`
}

// rawShape ham girdinin tespit edilen biçimi.
type rawShape int

const (
	shapeEmpty rawShape = iota
	shapePerDay
	shapeLegacy
)

func (r *RawConfig) shape() rawShape {
	switch {
	case r == nil:
		return shapeEmpty
	case r.Days != nil:
		return shapePerDay
	default:
		return shapeLegacy
	}
}

// Normalize ham girdiyi her zaman 7 günü tam kanonik yapıya çevirir.
// Eksik gün, alias anahtar, dizi olmayan blok listesi ve eski düz yapı
// burada eritilir; hiçbir girdi hata üretmez.
func (r *RawConfig) Normalize() Config {
	switch r.shape() {
	case shapeEmpty:
		return DefaultConfig()
	case shapePerDay:
		return r.normalizePerDay()
	default:
		return r.normalizeLegacy()
	}
}

func (r *RawConfig) normalizePerDay() Config {
	defaults := DefaultConfig()
	days := make(map[Day]DaySchedule, len(Week))

	for _, day := range Week {
		fallback := defaults.Days[day]
		raw, found := PickByDay(r.Days, day)
		if !found {
			days[day] = fallback
			continue
		}

		schedule := DaySchedule{StartTime: raw.StartTime, Blocks: fallback.Blocks}
		if schedule.StartTime == "" {
			schedule.StartTime = fallback.StartTime
		}
		var blocks []Block
		if err := json.Unmarshal(raw.Blocks, &blocks); err == nil && blocks != nil {
			schedule.Blocks = blocks
		}
		days[day] = schedule
	}
	return Config{Days: days}
}

func (r *RawConfig) normalizeLegacy() Config {
	start := r.StartTime
	if start == "" {
		start = defaultStartTime
	}

	weekdayPlan := planSpec{
		lesson:     r.LessonDuration.or(defaultLessonMinutes),
		shortBreak: r.BreakDuration.or(defaultBreakMinutes),
		lunch:      r.LunchDuration.or(defaultLunchMinutes),
		lunchAfter: r.LunchAfter.or(defaultLunchAfter),
	}
	fridayPlan := planSpec{
		lesson:         r.FridayLessonDuration.or(weekdayPlan.lesson),
		shortBreak:     r.FridayBreakDuration.or(weekdayPlan.shortBreak),
		lunch:          r.FridayLunchDuration.or(weekdayPlan.lunch),
		lunchAfter:     r.FridayLunchAfter.or(weekdayPlan.lunchAfter),
		afternoonBreak: r.FridayAfternoonBreakDuration.or(r.FridayBreakDuration.or(weekdayPlan.shortBreak)),
	}

	days := map[Day]DaySchedule{
		Saturday: {StartTime: defaultStartTime, Blocks: []Block{}},
		Sunday:   {StartTime: defaultStartTime, Blocks: []Block{}},
	}
	for _, day := range Weekdays {
		spec := weekdayPlan
		if day == Friday {
			spec = fridayPlan
		}
		days[day] = DaySchedule{StartTime: start, Blocks: buildPlanBlocks(spec)}
	}
	return Config{Days: days}
}
