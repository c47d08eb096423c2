package service

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"github.com/robinmutlu/robinboard/internal/model"
)

// Testlerde kullanılan el yapımı sahte repository'ler ve yayın kaydı.

type mockHub struct {
	mu       sync.Mutex
	events   []string
	payloads []interface{}
}

func (m *mockHub) Broadcast(event string, payload interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	m.payloads = append(m.payloads, payload)
}

func (m *mockHub) has(event string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.events {
		if e == event {
			return true
		}
	}
	return false
}

// payloadOf olayın son yayınlanan yükünü döndürür.
func (m *mockHub) payloadOf(event string) (interface{}, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.events) - 1; i >= 0; i-- {
		if m.events[i] == event {
			return m.payloads[i], true
		}
	}
	return nil, false
}

// ── Ayar ──

type mockSettingRepo struct {
	setting *model.Setting
	err     error
	saves   int
}

func (m *mockSettingRepo) Get(ctx context.Context) (*model.Setting, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.setting == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.setting, nil
}

func (m *mockSettingRepo) Save(ctx context.Context, setting *model.Setting) error {
	if m.err != nil {
		return m.err
	}
	m.setting = setting
	m.saves++
	return nil
}

// ── Öğrenci ──

type mockStudentRepo struct {
	students []model.Student
	nextID   uint
}

func (m *mockStudentRepo) List(ctx context.Context) ([]model.Student, error) {
	return append([]model.Student(nil), m.students...), nil
}

func (m *mockStudentRepo) Create(ctx context.Context, student *model.Student) error {
	m.nextID++
	student.ID = m.nextID
	m.students = append(m.students, *student)
	return nil
}

func (m *mockStudentRepo) CreateBatch(ctx context.Context, students []model.Student) error {
	for i := range students {
		m.nextID++
		students[i].ID = m.nextID
	}
	m.students = append(m.students, students...)
	return nil
}

func (m *mockStudentRepo) Delete(ctx context.Context, id uint) (int64, error) {
	for i, student := range m.students {
		if student.ID == id {
			m.students = append(m.students[:i], m.students[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *mockStudentRepo) DeleteAll(ctx context.Context) error {
	m.students = nil
	return nil
}

func (m *mockStudentRepo) ListByBirthDates(ctx context.Context, keys []string) ([]model.Student, error) {
	keySet := make(map[string]bool, len(keys))
	for _, key := range keys {
		keySet[key] = true
	}
	var out []model.Student
	for _, student := range m.students {
		if keySet[student.BirthDate] {
			out = append(out, student)
		}
	}
	return out, nil
}

// ── Ders programı ──

type mockScheduleRepo struct {
	record *model.ClassScheduleRecord
}

func (m *mockScheduleRepo) Get(ctx context.Context) (*model.ClassScheduleRecord, error) {
	if m.record == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.record, nil
}

func (m *mockScheduleRepo) Replace(ctx context.Context, days model.JSONMap) error {
	m.record = &model.ClassScheduleRecord{ID: 1, Days: days}
	return nil
}

// ── Medya ──

type mockMediaRepo struct {
	files []model.MediaFile
}

func (m *mockMediaRepo) List(ctx context.Context) ([]model.MediaFile, error) {
	return append([]model.MediaFile(nil), m.files...), nil
}

func (m *mockMediaRepo) Create(ctx context.Context, file *model.MediaFile) error {
	file.ID = uint(len(m.files) + 1)
	m.files = append(m.files, *file)
	return nil
}

func (m *mockMediaRepo) UpsertCaption(ctx context.Context, filename, caption string) error {
	for i := range m.files {
		if m.files[i].Filename == filename {
			m.files[i].Caption = caption
			return nil
		}
	}
	m.files = append(m.files, model.MediaFile{Filename: filename, Caption: caption})
	return nil
}

func (m *mockMediaRepo) DeleteByFilename(ctx context.Context, filename string) error {
	for i := range m.files {
		if m.files[i].Filename == filename {
			m.files = append(m.files[:i], m.files[i+1:]...)
			return nil
		}
	}
	return nil
}
