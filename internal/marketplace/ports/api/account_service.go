// Package api определяет порты прикладных сценариев маркетплейса.
package api

import (
	"context"

	"notemarket/internal/marketplace/domain/entities"
)

// AccountUseCase определяет сценарии работы с учетными записями.
type AccountUseCase interface {
	// Register создает пользователя; пароль сохраняется только в виде хэша.
	Register(ctx context.Context, name, email, password, role string) (*entities.User, error)

	// Login проверяет учетные данные и возвращает публичное представление
	// пользователя. Причина отказа не раскрывается.
	Login(ctx context.Context, email, password string) (*entities.User, error)
}
