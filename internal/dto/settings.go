package dto

// SettingsUpdateRequest ayar blob'unun tamamını veya bir kısmını günceller.
// Anahtarlar serbesttir; gönderilenler mevcut blob'un üzerine yazılır.
type SettingsUpdateRequest map[string]interface{}
