package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notemarket/internal/marketplace/adapters/postgres"
	"notemarket/internal/marketplace/domain/entities"
	"notemarket/internal/marketplace/ports/repositories"
	"notemarket/pkg/logger"
)

var ErrDatabaseConnection = errors.New("database connection error")

const (
	userColumnsQuery = "user_id, name, email, password_hash, role, created_at"
	noteColumnsQuery = "note_id, title, subject, description, price, seller_id, file_link, status, purchase_count, created_at"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), testLogger)
}

func userRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"user_id", "name", "email", "password_hash", "role", "created_at"})
}

func noteRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"note_id", "title", "subject", "description", "price", "seller_id", "file_link", "status", "purchase_count", "created_at"})
}

func TestNewRepositoryFactory(t *testing.T) {
	mockPool := &pgxpool.Pool{}

	repoFactory := postgres.NewRepositoryFactory(mockPool)

	require.NotNil(t, repoFactory)
	assert.Implements(t, (*repositories.UserRepository)(nil), repoFactory.UserRepository())
	assert.Implements(t, (*repositories.NoteRepository)(nil), repoFactory.NoteRepository())
	assert.Implements(t, (*repositories.TransactionRepository)(nil), repoFactory.TransactionRepository())
}

func TestUserRepository_Create(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("successful user creation", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO users").
			WithArgs("Alice", "alice@example.com", "hashed", "seller").
			WillReturnRows(userRows().
				AddRow(int64(1), "Alice", "alice@example.com", "hashed", "seller", now))

		repo := postgres.NewUserRepository(mock)

		created, err := repo.Create(ctx, &entities.User{
			Name:         "Alice",
			Email:        "alice@example.com",
			PasswordHash: "hashed",
			Role:         "seller",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		assert.Equal(t, "alice@example.com", created.Email)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO users").
			WithArgs("Alice", "alice@example.com", "hashed", "seller").
			WillReturnError(ErrDatabaseConnection)

		repo := postgres.NewUserRepository(mock)

		created, err := repo.Create(ctx, &entities.User{
			Name:         "Alice",
			Email:        "alice@example.com",
			PasswordHash: "hashed",
			Role:         "seller",
		})

		require.Error(t, err)
		assert.Nil(t, created)
		assert.Contains(t, err.Error(), "error creating user")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("user found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT " + userColumnsQuery).
			WithArgs("alice@example.com").
			WillReturnRows(userRows().
				AddRow(int64(1), "Alice", "alice@example.com", "hashed", "buyer", now))

		repo := postgres.NewUserRepository(mock)

		user, err := repo.FindByEmail(ctx, "alice@example.com")

		require.NoError(t, err)
		assert.Equal(t, "Alice", user.Name)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("user not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT " + userColumnsQuery).
			WithArgs("nobody@example.com").
			WillReturnRows(userRows())

		repo := postgres.NewUserRepository(mock)

		user, err := repo.FindByEmail(ctx, "nobody@example.com")

		require.Error(t, err)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_FindSeller(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("seller found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT " + userColumnsQuery).
			WithArgs(int64(7)).
			WillReturnRows(userRows().
				AddRow(int64(7), "Bob", "bob@example.com", "hashed", "seller", now))

		repo := postgres.NewUserRepository(mock)

		seller, err := repo.FindSeller(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, "seller", seller.Role)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("buyer id yields seller not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT " + userColumnsQuery).
			WithArgs(int64(5)).
			WillReturnRows(userRows())

		repo := postgres.NewUserRepository(mock)

		seller, err := repo.FindSeller(ctx, 5)

		require.Error(t, err)
		assert.Nil(t, seller)
		assert.ErrorIs(t, err, entities.ErrSellerNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoteRepository_Create(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("successful note creation", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO notes").
			WithArgs("Calculus II", "Math", "Integrals", 9.99, int64(7), "uploads/calc2.pdf", "pending").
			WillReturnRows(noteRows().
				AddRow(int64(3), "Calculus II", "Math", "Integrals", 9.99, int64(7), "uploads/calc2.pdf", "pending", int64(0), now))

		repo := postgres.NewNoteRepository(mock)

		created, err := repo.Create(ctx, &entities.Note{
			Title:       "Calculus II",
			Subject:     "Math",
			Description: "Integrals",
			Price:       9.99,
			SellerID:    7,
			FileLink:    "uploads/calc2.pdf",
			Status:      entities.StatusPending,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(3), created.ID)
		assert.Equal(t, entities.StatusPending, created.Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoteRepository_ListByStatus(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("unbounded listing", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT " + noteColumnsQuery).
			WithArgs("approved").
			WillReturnRows(noteRows().
				AddRow(int64(1), "Calculus II", "Math", "", 9.99, int64(7), "uploads/calc2.pdf", "approved", int64(2), now).
				AddRow(int64(2), "Linear Algebra", "Math", "", 4.5, int64(7), "uploads/la.pdf", "approved", int64(0), now))

		repo := postgres.NewNoteRepository(mock)

		notes, err := repo.ListByStatus(ctx, entities.StatusApproved, 0, 0)

		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, "Calculus II", notes[0].Title)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("paginated listing", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT " + noteColumnsQuery).
			WithArgs("pending", 10, 5).
			WillReturnRows(noteRows().
				AddRow(int64(6), "Mechanics", "Physics", "", 3.0, int64(8), "uploads/mech.pdf", "pending", int64(0), now))

		repo := postgres.NewNoteRepository(mock)

		notes, err := repo.ListByStatus(ctx, entities.StatusPending, 10, 5)

		require.NoError(t, err)
		require.Len(t, notes, 1)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty result", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT " + noteColumnsQuery).
			WithArgs("rejected").
			WillReturnRows(noteRows())

		repo := postgres.NewNoteRepository(mock)

		notes, err := repo.ListByStatus(ctx, entities.StatusRejected, 0, 0)

		require.NoError(t, err)
		assert.Empty(t, notes)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoteRepository_FindAvailable(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("approved note found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT " + noteColumnsQuery).
			WithArgs(int64(3)).
			WillReturnRows(noteRows().
				AddRow(int64(3), "Calculus II", "Math", "", 9.99, int64(7), "uploads/calc2.pdf", "approved", int64(1), now))

		repo := postgres.NewNoteRepository(mock)

		note, err := repo.FindAvailable(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, "uploads/calc2.pdf", note.FileLink)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("pending note is unavailable", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT " + noteColumnsQuery).
			WithArgs(int64(4)).
			WillReturnRows(noteRows())

		repo := postgres.NewNoteRepository(mock)

		note, err := repo.FindAvailable(ctx, 4)

		require.Error(t, err)
		assert.Nil(t, note)
		assert.ErrorIs(t, err, entities.ErrNoteUnavailable)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoteRepository_UpdateStatus(t *testing.T) {
	ctx := testContext(t)

	t.Run("status updated", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("UPDATE notes").
			WithArgs(int64(3), "approved").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		repo := postgres.NewNoteRepository(mock)

		affected, err := repo.UpdateStatus(ctx, 3, entities.StatusApproved)

		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nonexistent id affects zero rows without error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("UPDATE notes").
			WithArgs(int64(404), "rejected").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		repo := postgres.NewNoteRepository(mock)

		affected, err := repo.UpdateStatus(ctx, 404, entities.StatusRejected)

		require.NoError(t, err)
		assert.Equal(t, int64(0), affected)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("UPDATE notes").
			WithArgs(int64(3), "approved").
			WillReturnError(ErrDatabaseConnection)

		repo := postgres.NewNoteRepository(mock)

		_, err = repo.UpdateStatus(ctx, 3, entities.StatusApproved)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "error updating note status")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTransactionRepository_Create(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("successful transaction", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows([]string{"transaction_id", "buyer_id", "note_id", "amount", "created_at"}).
			AddRow(int64(11), int64(5), int64(3), 9.99, now)

		mock.ExpectQuery("INSERT INTO transactions").
			WithArgs(int64(5), int64(3), 9.99).
			WillReturnRows(rows)

		repo := postgres.NewTransactionRepository(mock)

		created, err := repo.Create(ctx, &entities.Transaction{BuyerID: 5, NoteID: 3, Amount: 9.99})

		require.NoError(t, err)
		assert.Equal(t, int64(11), created.ID)
		assert.Equal(t, 9.99, created.Amount)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO transactions").
			WithArgs(int64(5), int64(3), 9.99).
			WillReturnError(ErrDatabaseConnection)

		repo := postgres.NewTransactionRepository(mock)

		created, err := repo.Create(ctx, &entities.Transaction{BuyerID: 5, NoteID: 3, Amount: 9.99})

		require.Error(t, err)
		assert.Nil(t, created)
		assert.Contains(t, err.Error(), "error creating transaction")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
