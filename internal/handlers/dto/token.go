package dto

type IssueTokenRequest struct {
	Role        string `json:"role" binding:"required"`
	DisplayName string `json:"display_name" binding:"required"`
}

type IssueTokenResponse struct {
	Token     string `json:"token"`
	Endpoint  string `json:"endpoint,omitempty"`
	ExpiresAt string `json:"expires_at"`
}
