package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"notemarket/internal/marketplace/domain/entities"
	"notemarket/internal/marketplace/ports/repositories"
	"notemarket/pkg/logger"
)

// NoteRepository реализует repositories.NoteRepository для Postgres.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый экземпляр репозитория конспектов.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

const noteColumns = "note_id, title, subject, description, price, seller_id, file_link, status, purchase_count, created_at"

func scanNote(row pgx.Row) (*entities.Note, error) {
	var note entities.Note
	err := row.Scan(
		&note.ID,
		&note.Title,
		&note.Subject,
		&note.Description,
		&note.Price,
		&note.SellerID,
		&note.FileLink,
		&note.Status,
		&note.PurchaseCount,
		&note.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// Create создает конспект; статус задает вызывающая сторона.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Create"))

	query := `
        INSERT INTO notes (title, subject, description, price, seller_id, file_link, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + noteColumns

	created, err := scanNote(r.pool.QueryRow(ctx, query,
		note.Title,
		note.Subject,
		note.Description,
		note.Price,
		note.SellerID,
		note.FileLink,
		note.Status,
	))
	if err != nil {
		log.Error(ctx, "error creating note", zap.Error(err))
		return nil, fmt.Errorf("error creating note: %w", err)
	}

	return created, nil
}

// ListByStatus возвращает конспекты в указанном статусе в порядке создания.
func (r *NoteRepository) ListByStatus(ctx context.Context, status string, limit, offset int) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "ListByStatus"))

	query := `
        SELECT ` + noteColumns + `
        FROM notes
        WHERE status = $1
        ORDER BY note_id
    `
	args := []interface{}{status}

	if limit > 0 {
		query += " LIMIT $2 OFFSET $3"
		args = append(args, limit, offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		log.Error(ctx, "error listing notes", zap.Error(err), zap.String("status", status))
		return nil, fmt.Errorf("error listing notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			log.Error(ctx, "error scanning note", zap.Error(err))
			return nil, fmt.Errorf("error scanning note: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating notes", zap.Error(err))
		return nil, fmt.Errorf("error iterating notes: %w", err)
	}

	return notes, nil
}

// FindAvailable находит одобренный конспект; pending и rejected для
// покупателя неотличимы от несуществующего.
func (r *NoteRepository) FindAvailable(ctx context.Context, id int64) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "FindAvailable"))

	query := `
        SELECT ` + noteColumns + `
        FROM notes
        WHERE note_id = $1 AND status = 'approved'
    `

	note, err := scanNote(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note unavailable", zap.Int64("id", id))
			return nil, entities.ErrNoteUnavailable
		}
		log.Error(ctx, "error finding note", zap.Error(err))
		return nil, fmt.Errorf("error querying note: %w", err)
	}

	return note, nil
}

// UpdateStatus безусловно выставляет статус; ноль затронутых строк не
// считается ошибкой.
func (r *NoteRepository) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "UpdateStatus"))

	query := `
        UPDATE notes
        SET status = $2
        WHERE note_id = $1
    `

	tag, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		log.Error(ctx, "error updating note status", zap.Error(err), zap.Int64("id", id))
		return 0, fmt.Errorf("error updating note status: %w", err)
	}

	return tag.RowsAffected(), nil
}
