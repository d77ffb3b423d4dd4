package api

import (
	"context"

	"notemarket/internal/marketplace/domain/entities"
)

// ModerationUseCase определяет административные сценарии модерации.
type ModerationUseCase interface {
	ListPending(ctx context.Context) ([]*entities.Note, error)

	// Approve и Reject безусловно переводят конспект в конечный статус.
	// Несуществующий id не считается ошибкой.
	Approve(ctx context.Context, noteID int64) error

	Reject(ctx context.Context, noteID int64) error
}
