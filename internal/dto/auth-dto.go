package dto

type UserLogin struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type AuthClaims struct {
	UserID   uint    `json:"user_id"`
	Username string  `json:"username"`
	Expiry   float64 `json:"expiry"`
}
