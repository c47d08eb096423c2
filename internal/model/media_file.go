package model

// MediaFile slayt gösterisindeki bir medya dosyasının meta verisi.
// Dosyanın kendisi diskte, açıklaması burada durur.
type MediaFile struct {
	ID       uint   `gorm:"primaryKey"      json:"id"`
	Filename string `gorm:"uniqueIndex;not null" json:"filename"`
	Caption  string `gorm:"not null;default:''"  json:"caption"`
	BaseModel
}

// TableName gorm tablo adı.
func (MediaFile) TableName() string { return "media_files" }
