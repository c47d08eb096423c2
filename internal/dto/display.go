package dto

import (
	"github.com/robinmutlu/robinboard/internal/bell"
)

// DutyBoardResponse günün rotasyonu uygulanmış nöbet tablosu.
type DutyBoardResponse struct {
	Day       string            `json:"day"`
	Weekend   bool              `json:"weekend"`
	Locations map[string]string `json:"locations"`
}

// DisplaySnapshot pano ekranının tek seferde ihtiyaç duyduğu her şey.
// İstemci açılışta bunu çeker, sonrasını websocket olaylarından izler.
type DisplaySnapshot struct {
	SchoolName       string              `json:"schoolName"`
	MarqueeText      string              `json:"marqueeText"`
	IsEmergency      bool                `json:"isEmergency"`
	EmergencyMessage string              `json:"emergencyMessage"`
	Bell             bell.Status         `json:"bell"`
	Intervals        []bell.Interval     `json:"intervals"`
	Duty             DutyBoardResponse   `json:"duty"`
	Schedule         interface{}         `json:"schedule,omitempty"`
	Birthdays        []BirthdayEntry     `json:"birthdays"`
	Weather          *WeatherResponse    `json:"weather,omitempty"`
	Media            []MediaFileResponse `json:"media"`
}
