package dto

// MediaFileResponse yüklenmiş bir medya dosyasının listede görünen hali.
type MediaFileResponse struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Caption  string `json:"caption"`
}

// CaptionUpdateRequest bir dosyanın alt yazısını günceller.
type CaptionUpdateRequest struct {
	Caption string `json:"caption"`
}
