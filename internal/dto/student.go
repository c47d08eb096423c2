package dto

// StudentCreateRequest tek öğrenci ekleme isteği. BirthDate "GG-AA"
// biçimindedir, örn "07-03".
type StudentCreateRequest struct {
	Name      string `json:"name" binding:"required"`
	ClassName string `json:"class" binding:"required"`
	BirthDate string `json:"birthDate" binding:"required,len=5"`
}

// StudentResponse öğrenci kaydının dışarı verilen hali.
type StudentResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	ClassName string `json:"class"`
	BirthDate string `json:"birthDate"`
}

// BirthdayEntry günün doğum günü listesindeki bir satır. Cuma günleri
// hafta sonu doğumlular da gün adı eklenerek listeye girer.
type BirthdayEntry struct {
	Name      string `json:"name"`
	ClassName string `json:"class"`
	DayNote   string `json:"dayNote,omitempty"`
}
