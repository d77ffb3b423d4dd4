package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"notemarket/internal/marketplace/domain/entities"
	"notemarket/internal/marketplace/ports/repositories"
	"notemarket/pkg/logger"
)

// TransactionRepository реализует repositories.TransactionRepository для
// Postgres. Вставка строки запускает триггер transactions_after_insert.
type TransactionRepository struct {
	pool PgxPoolInterface
}

// NewTransactionRepository создает новый экземпляр репозитория покупок.
func NewTransactionRepository(pool PgxPoolInterface) repositories.TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// Create добавляет запись о покупке.
func (r *TransactionRepository) Create(ctx context.Context, transaction *entities.Transaction) (*entities.Transaction, error) {
	log := logger.Log(ctx).With(zap.String("repository", "transaction"), zap.String("method", "Create"))

	query := `
        INSERT INTO transactions (buyer_id, note_id, amount)
        VALUES ($1, $2, $3)
        RETURNING transaction_id, buyer_id, note_id, amount, created_at
    `

	var created entities.Transaction
	err := r.pool.QueryRow(ctx, query,
		transaction.BuyerID,
		transaction.NoteID,
		transaction.Amount,
	).Scan(
		&created.ID,
		&created.BuyerID,
		&created.NoteID,
		&created.Amount,
		&created.CreatedAt,
	)
	if err != nil {
		log.Error(ctx, "error creating transaction", zap.Error(err))
		return nil, fmt.Errorf("error creating transaction: %w", err)
	}

	return &created, nil
}
