package repositories

import (
	"context"

	"notemarket/internal/marketplace/domain/entities"
)

// NoteRepository определяет операции над таблицей конспектов.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)

	// ListByStatus возвращает конспекты в указанном статусе. Нулевой limit
	// означает выборку без ограничения.
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]*entities.Note, error)

	// FindAvailable находит конспект по id при условии, что он одобрен.
	FindAvailable(ctx context.Context, id int64) (*entities.Note, error)

	// UpdateStatus безусловно переводит конспект в указанный статус и
	// возвращает число затронутых строк. Ноль строк - не ошибка.
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)
}
