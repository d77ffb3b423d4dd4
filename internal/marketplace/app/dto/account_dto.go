// Package dto содержит объекты передачи данных HTTP-слоя маркетплейса.
package dto

// RegisterRequest содержит данные для регистрации пользователя.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=buyer seller admin"`
}

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse содержит публичные данные пользователя.
type UserResponse struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// RegisterResponse содержит результат регистрации.
type RegisterResponse struct {
	Message string `json:"message"`
}

// LoginResponse содержит результат входа.
type LoginResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}
