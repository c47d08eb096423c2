package dto

// ScheduleUpdateRequest haftalık ders programının tamamını değiştirir.
// Anahtar gün adı, değer sınıf -> ders listesi eşlemesidir.
type ScheduleUpdateRequest struct {
	Days map[string]interface{} `json:"days" binding:"required"`
}
