package dto

// AuthRequest carries registration/login credentials.
type AuthRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}
