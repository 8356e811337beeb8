package dto

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type RegisterPushTokenRequest struct {
	Token      string `json:"token" binding:"required"`
	Platform   string `json:"platform"` // "android" or "ios"
	DeviceInfo string `json:"device_info"`
}

type AccountInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type TokenResponse struct {
	AccessToken string      `json:"access_token"`
	Account     AccountInfo `json:"account"`
}
