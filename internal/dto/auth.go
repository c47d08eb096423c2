package dto

// LoginRequest yönetici giriş isteği.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse giriş sonrası dönen token çifti.
type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshRequest access token yenileme isteği.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}
