package model

// Student doğum günü panosu için tutulan öğrenci kaydı. BirthDate
// "GG-AA" biçimindedir; yıl saklanmaz.
type Student struct {
	ID        uint   `gorm:"primaryKey"        json:"id"`
	Name      string `gorm:"not null"          json:"name"`
	ClassName string `gorm:"column:class_name" json:"class"`
	BirthDate string `gorm:"size:5;index"      json:"birthDate"`
	BaseModel
}

// TableName gorm tablo adı.
func (Student) TableName() string { return "students" }
