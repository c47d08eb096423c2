package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/robinmutlu/robinboard/internal/dto"
	"github.com/robinmutlu/robinboard/internal/model"
)

func newStudentForTest(repo *mockStudentRepo) StudentService {
	return NewStudentService(repo, zap.NewNop())
}

func TestNormalizeBirthDate(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"07-03", "07-03", false},
		{"7-3", "07-03", false},
		{"07.03", "07-03", false},
		{"7/3", "07-03", false},
		{" 15-11 ", "15-11", false},
		{"31-12", "31-12", false},
		{"32-01", "", true},
		{"01-13", "", true},
		{"0-5", "", true},
		{"mart", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		got, err := normalizeBirthDate(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrBadBirthDate) {
				t.Errorf("normalizeBirthDate(%q): hata bekleniyordu", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("normalizeBirthDate(%q): beklenmeyen hata %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("normalizeBirthDate(%q) = %q, %q bekleniyordu", tc.in, got, tc.want)
		}
	}
}

func TestCreateDogumTarihiniNormalizeEder(t *testing.T) {
	repo := &mockStudentRepo{}
	svc := newStudentForTest(repo)

	student, err := svc.Create(context.Background(), dto.StudentCreateRequest{
		Name: "  Elif Yılmaz ", ClassName: "3-A", BirthDate: "7/3",
	})
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if student.BirthDate != "07-03" {
		t.Errorf("BirthDate = %q", student.BirthDate)
	}
	if student.Name != "Elif Yılmaz" {
		t.Errorf("Name = %q, boşluklar kırpılmalıydı", student.Name)
	}
}

func TestDeleteOlmayanKayit(t *testing.T) {
	svc := newStudentForTest(&mockStudentRepo{})

	if err := svc.Delete(context.Background(), 42); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("ErrStudentNotFound bekleniyordu, %v bulundu", err)
	}
}

func TestTodaysBirthdaysHaftaIci(t *testing.T) {
	repo := &mockStudentRepo{students: []model.Student{
		{ID: 1, Name: "Elif", ClassName: "3-A", BirthDate: "08-01"},
		{ID: 2, Name: "Mert", ClassName: "5-B", BirthDate: "09-01"},
	}}
	svc := newStudentForTest(repo)

	// 8 Ocak 2025 Çarşamba.
	now := time.Date(2025, time.January, 8, 9, 0, 0, 0, time.UTC)
	entries, err := svc.TodaysBirthdays(context.Background(), now)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("1 kayıt bekleniyordu, %d bulundu", len(entries))
	}
	if entries[0].Name != "Elif" || entries[0].DayNote != "" {
		t.Errorf("beklenmeyen kayıt: %+v", entries[0])
	}
}

func TestTodaysBirthdaysCumaHaftaSonunuKapsar(t *testing.T) {
	repo := &mockStudentRepo{students: []model.Student{
		{ID: 1, Name: "Elif", BirthDate: "10-01"},  // Cuma
		{ID: 2, Name: "Mert", BirthDate: "11-01"},  // Cumartesi
		{ID: 3, Name: "Duru", BirthDate: "12-01"},  // Pazar
		{ID: 4, Name: "Emre", BirthDate: "13-01"},  // Pazartesi, dahil değil
	}}
	svc := newStudentForTest(repo)

	// 10 Ocak 2025 Cuma.
	friday := time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC)
	entries, err := svc.TodaysBirthdays(context.Background(), friday)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("3 kayıt bekleniyordu, %d bulundu", len(entries))
	}

	notes := map[string]string{}
	for _, entry := range entries {
		notes[entry.Name] = entry.DayNote
	}
	if notes["Elif"] != "" {
		t.Errorf("Cuma doğumlu not taşımamalı, %q bulundu", notes["Elif"])
	}
	if notes["Mert"] != "Cumartesi" {
		t.Errorf("Mert notu = %q", notes["Mert"])
	}
	if notes["Duru"] != "Pazar" {
		t.Errorf("Duru notu = %q", notes["Duru"])
	}
}

func buildStudentSheet(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	f.SetCellValue(sheet, "A1", "Ad Soyad")
	f.SetCellValue(sheet, "B1", "Sınıf")
	f.SetCellValue(sheet, "C1", "Doğum Tarihi")
	for i, row := range rows {
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("test sayfası yazılamadı: %v", err)
	}
	return &buf
}

func TestImportXLSX(t *testing.T) {
	repo := &mockStudentRepo{}
	svc := newStudentForTest(repo)

	buf := buildStudentSheet(t, [][]interface{}{
		{"Elif Yılmaz", "3-A", "07-03"},
		{"Mert Kaya", "5-B", "15.11"},
		{"Bozuk Satır", "2-C", "ocak"}, // atlanmalı
	})

	count, err := svc.ImportXLSX(context.Background(), buf)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if count != 2 {
		t.Errorf("2 kayıt bekleniyordu, %d içe aktarıldı", count)
	}
	if len(repo.students) != 2 {
		t.Fatalf("repo'da 2 kayıt bekleniyordu, %d bulundu", len(repo.students))
	}
	if repo.students[1].BirthDate != "15-11" {
		t.Errorf("nokta ayraçlı tarih normalize edilmeliydi, %q bulundu", repo.students[1].BirthDate)
	}
}

func TestExportXLSXGeriOkunabilir(t *testing.T) {
	repo := &mockStudentRepo{students: []model.Student{
		{ID: 1, Name: "Elif Yılmaz", ClassName: "3-A", BirthDate: "07-03"},
	}}
	svc := newStudentForTest(repo)

	data, err := svc.ExportXLSX(context.Background())
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("çıktı xlsx olarak açılamadı: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatalf("satırlar okunamadı: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("başlık + 1 kayıt bekleniyordu, %d satır bulundu", len(rows))
	}
	if rows[1][0] != "Elif Yılmaz" || rows[1][2] != "07-03" {
		t.Errorf("beklenmeyen satır: %v", rows[1])
	}
}
