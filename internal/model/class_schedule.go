package model

// ClassScheduleRecord haftalık ders programının tek satırlık kaydı.
// Days gün adı → sınıf satırları listesi olarak jsonb'de durur ve her
// kaydetmede bütün olarak değiştirilir.
type ClassScheduleRecord struct {
	ID   uint    `gorm:"primaryKey"          json:"id"`
	Days JSONMap `gorm:"type:jsonb;not null" json:"days"`
	BaseModel
}

// TableName gorm tablo adı.
func (ClassScheduleRecord) TableName() string { return "class_schedules" }
