package repositories

import (
	"context"

	"notemarket/internal/marketplace/domain/entities"
)

// TransactionRepository определяет операции над журналом покупок.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *entities.Transaction) (*entities.Transaction, error)
}
