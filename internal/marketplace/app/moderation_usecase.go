package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"notemarket/internal/marketplace/domain/entities"
	"notemarket/internal/marketplace/ports/api"
	"notemarket/internal/marketplace/ports/cache"
	"notemarket/internal/marketplace/ports/repositories"
	"notemarket/pkg/logger"
)

const (
	methodListPending = "ListPending"
	methodApprove     = "Approve"
	methodReject      = "Reject"

	msgStatusUpdated        = "note status updated"
	msgNoNoteMatched        = "status update matched no note, reporting success anyway"
	msgErrListingPending    = "failed to list pending notes"
	msgErrUpdatingStatus    = "failed to update note status"
	msgErrInvalidatingCache = "failed to invalidate approved notes cache"

	errCtxListingPending = "listing pending notes"
	errCtxUpdatingStatus = "updating note status"
)

// ModerationUseCaseImpl реализует интерфейс ModerationUseCase.
type ModerationUseCaseImpl struct {
	noteRepo repositories.NoteRepository
	cache    cache.Cache
}

// NewModerationUseCase создает новый экземпляр сценариев модерации. Кэш
// может быть nil.
func NewModerationUseCase(noteRepo repositories.NoteRepository, catalogCache cache.Cache) api.ModerationUseCase {
	return &ModerationUseCaseImpl{
		noteRepo: noteRepo,
		cache:    catalogCache,
	}
}

// ListPending возвращает все конспекты, ожидающие модерации.
func (m *ModerationUseCaseImpl) ListPending(ctx context.Context) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListPending))

	notes, err := m.noteRepo.ListByStatus(ctx, entities.StatusPending, 0, 0)
	if err != nil {
		log.Error(ctx, msgErrListingPending, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingPending, err)
	}

	return notes, nil
}

// Approve безусловно одобряет конспект. Несуществующий id - не ошибка.
func (m *ModerationUseCaseImpl) Approve(ctx context.Context, noteID int64) error {
	return m.setStatus(ctx, methodApprove, noteID, entities.StatusApproved)
}

// Reject безусловно отклоняет конспект. Несуществующий id - не ошибка.
func (m *ModerationUseCaseImpl) Reject(ctx context.Context, noteID int64) error {
	return m.setStatus(ctx, methodReject, noteID, entities.StatusRejected)
}

func (m *ModerationUseCaseImpl) setStatus(ctx context.Context, method string, noteID int64, status string) error {
	log := logger.Log(ctx).With(
		zap.String("method", method),
		zap.Int64("note_id", noteID),
		zap.String("status", status))

	affected, err := m.noteRepo.UpdateStatus(ctx, noteID, status)
	if err != nil {
		log.Error(ctx, msgErrUpdatingStatus, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxUpdatingStatus, err)
	}

	if affected == 0 {
		log.Debug(ctx, msgNoNoteMatched)
	} else {
		log.Info(ctx, msgStatusUpdated)
	}

	// Смена статуса меняет видимость в каталоге.
	if m.cache != nil {
		if err := m.cache.Delete(ctx, cacheKeyApprovedNotes); err != nil {
			log.Warn(ctx, msgErrInvalidatingCache, zap.Error(err))
		}
	}

	return nil
}
