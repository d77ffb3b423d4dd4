// Package entities определяет доменные сущности маркетплейса.
package entities

import (
	"errors"
	"time"
)

// Роли пользователей.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// Ошибки домена пользователя.
var (
	ErrMissingUserFields  = errors.New("missing required fields")
	ErrInvalidRole        = errors.New("unknown user role")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrSellerNotFound     = errors.New("seller not found or user is not a seller")

	// ErrInvalidCredentials скрывает причину отказа: несуществующий email и
	// неверный пароль дают одно и то же сообщение.
	ErrInvalidCredentials = errors.New("login failed, check email and password")
)

// User представляет зарегистрированного пользователя.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// ValidRole сообщает, поддерживается ли роль.
func ValidRole(role string) bool {
	switch role {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}
