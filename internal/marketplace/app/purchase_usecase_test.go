package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"notemarket/internal/marketplace/app"
	"notemarket/internal/marketplace/domain/entities"
)

func TestPurchase(t *testing.T) {
	approvedNote := &entities.Note{
		ID:       3,
		Title:    "Calculus II",
		Price:    9.99,
		SellerID: 7,
		FileLink: "uploads/calc2.pdf",
		Status:   entities.StatusApproved,
	}

	createdTransaction := &entities.Transaction{
		ID:      11,
		BuyerID: 5,
		NoteID:  3,
		Amount:  9.99,
	}

	tests := []struct {
		name         string
		buyerID      int64
		noteID       int64
		setupMocks   func(noteRepo *mockNoteRepository, transactionRepo *mockTransactionRepository)
		expectedLink string
		expectedErr  error
	}{
		{
			name:    "Success - purchase recorded with current note price",
			buyerID: 5,
			noteID:  3,
			setupMocks: func(noteRepo *mockNoteRepository, transactionRepo *mockTransactionRepository) {
				noteRepo.On("FindAvailable", mock.Anything, int64(3)).Return(approvedNote, nil).Once()
				transactionRepo.On("Create", mock.Anything, mock.MatchedBy(func(tr *entities.Transaction) bool {
					return tr.BuyerID == 5 && tr.NoteID == 3 && tr.Amount == approvedNote.Price
				})).Return(createdTransaction, nil).Once()
			},
			expectedLink: "uploads/calc2.pdf",
		},
		{
			name:        "Error - missing buyer id",
			buyerID:     0,
			noteID:      3,
			setupMocks:  func(noteRepo *mockNoteRepository, transactionRepo *mockTransactionRepository) {},
			expectedErr: entities.ErrMissingPurchaseFields,
		},
		{
			name:        "Error - missing note id",
			buyerID:     5,
			noteID:      0,
			setupMocks:  func(noteRepo *mockNoteRepository, transactionRepo *mockTransactionRepository) {},
			expectedErr: entities.ErrMissingPurchaseFields,
		},
		{
			name:    "Error - note not approved or nonexistent",
			buyerID: 5,
			noteID:  99,
			setupMocks: func(noteRepo *mockNoteRepository, transactionRepo *mockTransactionRepository) {
				noteRepo.On("FindAvailable", mock.Anything, int64(99)).Return(nil, entities.ErrNoteUnavailable).Once()
			},
			expectedErr: entities.ErrNoteUnavailable,
		},
		{
			name:    "Error - transaction insert failure",
			buyerID: 5,
			noteID:  3,
			setupMocks: func(noteRepo *mockNoteRepository, transactionRepo *mockTransactionRepository) {
				noteRepo.On("FindAvailable", mock.Anything, int64(3)).Return(approvedNote, nil).Once()
				transactionRepo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("insert failed")).Once()
			},
			expectedErr: errors.New("insert failed"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			noteRepo := new(mockNoteRepository)
			transactionRepo := new(mockTransactionRepository)
			tc.setupMocks(noteRepo, transactionRepo)

			useCase := app.NewPurchaseUseCase(noteRepo, transactionRepo)

			link, err := useCase.Purchase(context.Background(), tc.buyerID, tc.noteID)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedErr.Error())
				assert.Empty(t, link)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expectedLink, link)
			}

			noteRepo.AssertExpectations(t)
			transactionRepo.AssertExpectations(t)
		})
	}
}

// Повторная покупка того же конспекта создает новую запись.
func TestPurchaseIsNotIdempotent(t *testing.T) {
	approvedNote := &entities.Note{ID: 3, Price: 5, FileLink: "uploads/a.pdf", Status: entities.StatusApproved}

	noteRepo := new(mockNoteRepository)
	transactionRepo := new(mockTransactionRepository)

	noteRepo.On("FindAvailable", mock.Anything, int64(3)).Return(approvedNote, nil).Twice()
	transactionRepo.On("Create", mock.Anything, mock.Anything).
		Return(&entities.Transaction{ID: 1, BuyerID: 5, NoteID: 3, Amount: 5}, nil).Twice()

	useCase := app.NewPurchaseUseCase(noteRepo, transactionRepo)

	_, err := useCase.Purchase(context.Background(), 5, 3)
	require.NoError(t, err)
	_, err = useCase.Purchase(context.Background(), 5, 3)
	require.NoError(t, err)

	transactionRepo.AssertNumberOfCalls(t, "Create", 2)
}
