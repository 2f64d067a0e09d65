package api

import "sweet-shop/internal/model"

// swagger:model api.AuthResponse
type AuthResponse struct {
	ID       string `json:"id" example:"0b6f0c1e-6f4a-4c8e-9d0e-3f1b1b1b1b1b"`
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
	IsAdmin  bool   `json:"isAdmin" example:"false"`
	Token    string `json:"token"`
}

func NewAuthResponse(u *model.User, token string) AuthResponse {
	return AuthResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
		Token:    token,
	}
}

// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Sweet removed"`
}

// swagger:model api.StockResponse
type StockResponse struct {
	Message string       `json:"message" example:"Purchase successful"`
	Sweet   *model.Sweet `json:"sweet"`
}

// ErrorResponse is the body of every failed request.
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}
