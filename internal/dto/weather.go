package dto

// WeatherResponse pano için sadeleştirilmiş hava durumu. Sağlayıcıya
// ulaşılamadığında alanlar "--" ile doldurulur.
type WeatherResponse struct {
	City        string `json:"city"`
	Temperature string `json:"temperature"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
