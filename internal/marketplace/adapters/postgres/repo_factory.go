package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"notemarket/internal/marketplace/ports/repositories"
)

// RepositoryFactory создает все репозитории маркетплейса поверх одного пула.
type RepositoryFactory struct {
	userRepo        repositories.UserRepository
	noteRepo        repositories.NoteRepository
	transactionRepo repositories.TransactionRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool *pgxpool.Pool) *RepositoryFactory {
	return &RepositoryFactory{
		userRepo:        NewUserRepository(pool),
		noteRepo:        NewNoteRepository(pool),
		transactionRepo: NewTransactionRepository(pool),
	}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}

// NoteRepository возвращает репозиторий конспектов.
func (f *RepositoryFactory) NoteRepository() repositories.NoteRepository {
	return f.noteRepo
}

// TransactionRepository возвращает репозиторий покупок.
func (f *RepositoryFactory) TransactionRepository() repositories.TransactionRepository {
	return f.transactionRepo
}
