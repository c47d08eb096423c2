package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/robinmutlu/robinboard/internal/bell"
	"github.com/robinmutlu/robinboard/internal/dto"
	"github.com/robinmutlu/robinboard/internal/model"
	"github.com/robinmutlu/robinboard/internal/repository"
)

var (
	ErrStudentNotFound = errors.New("öğrenci bulunamadı")
	ErrBadBirthDate    = errors.New("doğum tarihi GG-AA biçiminde olmalı")
)

// StudentService doğum günü panosu için öğrenci kayıtları. Doğum
// tarihi yılsız, "GG-AA" anahtarı olarak saklanır.
type StudentService interface {
	List(ctx context.Context) ([]dto.StudentResponse, error)
	Create(ctx context.Context, req dto.StudentCreateRequest) (*dto.StudentResponse, error)
	Delete(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) error
	ImportXLSX(ctx context.Context, r io.Reader) (int, error)
	ExportXLSX(ctx context.Context) ([]byte, error)
	TodaysBirthdays(ctx context.Context, now time.Time) ([]dto.BirthdayEntry, error)
}

type studentService struct {
	repo   repository.StudentRepository
	logger *zap.Logger
}

// NewStudentService StudentService örneği oluşturur.
func NewStudentService(repo repository.StudentRepository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

// normalizeBirthDate "7-3", "07.03", "7/3" gibi yazımları "07-03"
// anahtarına indirger. Gün/ay aralık dışıysa hata döner.
func normalizeBirthDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	value = strings.NewReplacer(".", "-", "/", "-").Replace(value)

	parts := strings.SplitN(value, "-", 2)
	if len(parts) != 2 {
		return "", ErrBadBirthDate
	}
	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || day < 1 || day > 31 {
		return "", ErrBadBirthDate
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || month < 1 || month > 12 {
		return "", ErrBadBirthDate
	}
	return fmt.Sprintf("%02d-%02d", day, month), nil
}

func toStudentResponse(s model.Student) dto.StudentResponse {
	return dto.StudentResponse{ID: s.ID, Name: s.Name, ClassName: s.ClassName, BirthDate: s.BirthDate}
}

func (s *studentService) List(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StudentResponse, 0, len(students))
	for _, student := range students {
		out = append(out, toStudentResponse(student))
	}
	return out, nil
}

func (s *studentService) Create(ctx context.Context, req dto.StudentCreateRequest) (*dto.StudentResponse, error) {
	birthDate, err := normalizeBirthDate(req.BirthDate)
	if err != nil {
		return nil, err
	}

	student := model.Student{Name: strings.TrimSpace(req.Name), ClassName: strings.TrimSpace(req.ClassName), BirthDate: birthDate}
	if err := s.repo.Create(ctx, &student); err != nil {
		return nil, err
	}
	resp := toStudentResponse(student)
	return &resp, nil
}

func (s *studentService) Delete(ctx context.Context, id uint) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrStudentNotFound
	}
	return nil
}

func (s *studentService) DeleteAll(ctx context.Context) error {
	s.logger.Info("tüm öğrenci kayıtları siliniyor")
	return s.repo.DeleteAll(ctx)
}

// ImportXLSX ilk sayfadaki satırları okur: Ad Soyad | Sınıf | Doğum
// Tarihi. İlk satır başlık kabul edilir; doğum tarihi okunamayan
// satırlar sayılmadan atlanır.
func (s *studentService) ImportXLSX(ctx context.Context, r io.Reader) (int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return 0, fmt.Errorf("xlsx dosyası okunamadı: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return 0, err
	}

	var students []model.Student
	for i, row := range rows {
		if i == 0 || len(row) < 3 {
			continue
		}
		name := strings.TrimSpace(row[0])
		class := strings.TrimSpace(row[1])
		birthDate, err := normalizeBirthDate(row[2])
		if name == "" || err != nil {
			s.logger.Warn("içe aktarma satırı atlandı", zap.Int("satir", i+1))
			continue
		}
		students = append(students, model.Student{Name: name, ClassName: class, BirthDate: birthDate})
	}

	if err := s.repo.CreateBatch(ctx, students); err != nil {
		return 0, err
	}
	s.logger.Info("öğrenci listesi içe aktarıldı", zap.Int("adet", len(students)))
	return len(students), nil
}

// ExportXLSX kayıtlı listeyi içe aktarmayla aynı sütun düzeninde verir.
func (s *studentService) ExportXLSX(ctx context.Context) ([]byte, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"Ad Soyad", "Sınıf", "Doğum Tarihi"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}
	for i, student := range students {
		values := []interface{}{student.Name, student.ClassName, student.BirthDate}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TodaysBirthdays günün doğum günlerini listeler. Cuma günleri hafta
// sonuna denk gelenler de gün adı notuyla eklenir; pano hafta sonu
// kapalıyken kimse atlanmış olmaz.
func (s *studentService) TodaysBirthdays(ctx context.Context, now time.Time) ([]dto.BirthdayEntry, error) {
	notes := map[string]string{now.Format("02-01"): ""}
	keys := []string{now.Format("02-01")}

	if bell.DayOf(now) == bell.Friday {
		for _, ahead := range []int{1, 2} {
			date := now.AddDate(0, 0, ahead)
			key := date.Format("02-01")
			keys = append(keys, key)
			notes[key] = string(bell.DayOf(date))
		}
	}

	students, err := s.repo.ListByBirthDates(ctx, keys)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.BirthdayEntry, 0, len(students))
	for _, student := range students {
		entries = append(entries, dto.BirthdayEntry{
			Name:      student.Name,
			ClassName: student.ClassName,
			DayNote:   notes[student.BirthDate],
		})
	}
	return entries, nil
}
