// Package repositories определяет интерфейсы хранилищ маркетплейса.
package repositories

import (
	"context"

	"notemarket/internal/marketplace/domain/entities"
)

// UserRepository определяет операции над таблицей пользователей.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id int64) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	// FindSeller находит пользователя по id при условии, что его роль - seller.
	FindSeller(ctx context.Context, id int64) (*entities.User, error)
}
