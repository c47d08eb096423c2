package model

// Setting tek satırlık ayar blob'u. Pano ayarlarının tamamı (okul adı,
// kayan yazı, nöbet çizelgesi, zil planı, hava durumu anahtarı...)
// anahtar-değer olarak tek jsonb sütununda durur; şema tasarımı
// bilinçli olarak bu kadardır.
type Setting struct {
	ID   uint    `gorm:"primaryKey" json:"id"`
	Data JSONMap `gorm:"type:jsonb;not null" json:"data"`
	BaseModel
}

// TableName gorm tablo adı.
func (Setting) TableName() string { return "settings" }
