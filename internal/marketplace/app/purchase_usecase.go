package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"notemarket/internal/marketplace/domain/entities"
	"notemarket/internal/marketplace/ports/api"
	"notemarket/internal/marketplace/ports/repositories"
	"notemarket/pkg/logger"
)

const (
	methodPurchase = "Purchase"

	msgStartPurchase      = "starting purchase"
	msgMissingPurchaseIDs = "purchase request with missing ids"
	msgNoteUnavailable    = "purchase attempt for unavailable note"
	msgPurchaseRecorded   = "purchase recorded"

	msgErrFindingNote         = "error finding note for purchase"
	msgErrCreatingTransaction = "failed to record transaction"

	errCtxValidatingPurchase = "validating purchase request"
	errCtxFindingNote        = "finding note"
	errCtxRecordingPurchase  = "recording purchase"
)

// PurchaseUseCaseImpl реализует интерфейс PurchaseUseCase.
type PurchaseUseCaseImpl struct {
	noteRepo        repositories.NoteRepository
	transactionRepo repositories.TransactionRepository
}

// NewPurchaseUseCase создает новый экземпляр сценария покупки.
func NewPurchaseUseCase(
	noteRepo repositories.NoteRepository,
	transactionRepo repositories.TransactionRepository,
) api.PurchaseUseCase {
	return &PurchaseUseCaseImpl{
		noteRepo:        noteRepo,
		transactionRepo: transactionRepo,
	}
}

// Purchase фиксирует покупку одобренного конспекта. Сумма берется из цены
// конспекта на момент вызова; вставка записи запускает триггер базы данных.
func (p *PurchaseUseCaseImpl) Purchase(ctx context.Context, buyerID, noteID int64) (string, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodPurchase),
		zap.Int64("buyer_id", buyerID),
		zap.Int64("note_id", noteID))
	log.Debug(ctx, msgStartPurchase)

	if buyerID == 0 || noteID == 0 {
		log.Debug(ctx, msgMissingPurchaseIDs)
		return "", fmt.Errorf("%s: %w", errCtxValidatingPurchase, entities.ErrMissingPurchaseFields)
	}

	note, err := p.noteRepo.FindAvailable(ctx, noteID)
	if err != nil {
		if errors.Is(err, entities.ErrNoteUnavailable) {
			log.Debug(ctx, msgNoteUnavailable)
		} else {
			log.Error(ctx, msgErrFindingNote, zap.Error(err))
		}
		return "", fmt.Errorf("%s: %w", errCtxFindingNote, err)
	}

	transaction := &entities.Transaction{
		BuyerID: buyerID,
		NoteID:  noteID,
		Amount:  note.Price,
	}

	created, err := p.transactionRepo.Create(ctx, transaction)
	if err != nil {
		log.Error(ctx, msgErrCreatingTransaction, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxRecordingPurchase, err)
	}

	log.Info(ctx, msgPurchaseRecorded,
		zap.Int64("transaction_id", created.ID),
		zap.Float64("amount", created.Amount))
	return note.FileLink, nil
}
