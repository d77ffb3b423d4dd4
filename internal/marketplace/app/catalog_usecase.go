package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"notemarket/internal/marketplace/domain/entities"
	"notemarket/internal/marketplace/ports/api"
	"notemarket/internal/marketplace/ports/cache"
	"notemarket/internal/marketplace/ports/repositories"
	svc "notemarket/internal/marketplace/ports/services"
	"notemarket/pkg/logger"
)

// Ключ кэша одобренных конспектов; инвалидируется модерацией.
const cacheKeyApprovedNotes = "catalog:approved:all"

const (
	methodUploadNote  = "UploadNote"
	methodBrowseNotes = "BrowseNotes"

	msgStartUpload      = "starting note upload"
	msgMissingNoteData  = "upload request with missing fields"
	msgSellerNotFound   = "upload attempt by non-seller"
	msgFileSaved        = "note file saved"
	msgNoteUploaded     = "note uploaded, pending admin approval"
	msgBrowseFromCache  = "approved notes served from cache"
	msgCacheMiss        = "approved notes cache miss"
	msgErrCacheRead     = "failed to read approved notes cache"
	msgErrCacheWrite    = "failed to write approved notes cache"
	msgErrCacheDecode   = "failed to decode cached notes, falling back to database"
	msgErrFindingSeller = "error finding seller"
	msgErrSavingFile    = "failed to save note file"
	msgErrCreatingNote  = "failed to create note"
	msgErrListingNotes  = "failed to list approved notes"

	errCtxValidatingNote = "validating note upload"
	errCtxFindingSeller  = "finding seller"
	errCtxSavingFile     = "saving note file"
	errCtxCreatingNote   = "creating note"
	errCtxListingNotes   = "listing approved notes"
)

// CatalogUseCaseImpl реализует интерфейс CatalogUseCase.
type CatalogUseCaseImpl struct {
	noteRepo  repositories.NoteRepository
	userRepo  repositories.UserRepository
	fileStore svc.FileStore
	cache     cache.Cache
}

// NewCatalogUseCase создает новый экземпляр сценариев каталога. Кэш может
// быть nil - тогда каждый запрос каталога идет в базу.
func NewCatalogUseCase(
	noteRepo repositories.NoteRepository,
	userRepo repositories.UserRepository,
	fileStore svc.FileStore,
	catalogCache cache.Cache,
) api.CatalogUseCase {
	return &CatalogUseCaseImpl{
		noteRepo:  noteRepo,
		userRepo:  userRepo,
		fileStore: fileStore,
		cache:     catalogCache,
	}
}

// UploadNote сохраняет файл конспекта и создает запись в статусе pending.
func (c *CatalogUseCaseImpl) UploadNote(ctx context.Context, input api.UploadNoteInput) (*entities.Note, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodUploadNote),
		zap.Int64("seller_id", input.SellerID),
		zap.String("title", input.Title))
	log.Debug(ctx, msgStartUpload)

	if input.Title == "" || input.Subject == "" || input.SellerID == 0 {
		log.Debug(ctx, msgMissingNoteData)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingNote, entities.ErrMissingNoteFields)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingNote, entities.ErrInvalidPrice)
	}
	if input.FileName == "" || input.File == nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingNote, entities.ErrMissingFile)
	}

	if _, err := c.userRepo.FindSeller(ctx, input.SellerID); err != nil {
		if errors.Is(err, entities.ErrSellerNotFound) {
			log.Debug(ctx, msgSellerNotFound)
		} else {
			log.Error(ctx, msgErrFindingSeller, zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxFindingSeller, err)
	}

	storedName, err := c.fileStore.Save(ctx, input.FileName, input.File)
	if err != nil {
		log.Error(ctx, msgErrSavingFile, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxSavingFile, err)
	}
	log.Debug(ctx, msgFileSaved, zap.String("stored_name", storedName))

	newNote := &entities.Note{
		Title:       input.Title,
		Subject:     input.Subject,
		Description: input.Description,
		Price:       input.Price,
		SellerID:    input.SellerID,
		FileLink:    "uploads/" + storedName,
		Status:      entities.StatusPending,
	}

	createdNote, err := c.noteRepo.Create(ctx, newNote)
	if err != nil {
		log.Error(ctx, msgErrCreatingNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingNote, err)
	}

	log.Info(ctx, msgNoteUploaded, zap.Int64("note_id", createdNote.ID))
	return createdNote, nil
}

// BrowseNotes возвращает одобренные конспекты. Выборка без пагинации
// кэшируется; модерация сбрасывает кэш при смене статусов.
func (c *CatalogUseCaseImpl) BrowseNotes(ctx context.Context, limit, offset int) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodBrowseNotes))

	useCache := c.cache != nil && limit == 0 && offset == 0

	if useCache {
		cached, err := c.cache.Get(ctx, cacheKeyApprovedNotes)
		if err != nil {
			log.Warn(ctx, msgErrCacheRead, zap.Error(err))
		} else if cached != "" {
			var notes []*entities.Note
			if err := json.Unmarshal([]byte(cached), &notes); err != nil {
				log.Warn(ctx, msgErrCacheDecode, zap.Error(err))
			} else {
				log.Debug(ctx, msgBrowseFromCache, zap.Int("count", len(notes)))
				return notes, nil
			}
		} else {
			log.Debug(ctx, msgCacheMiss)
		}
	}

	notes, err := c.noteRepo.ListByStatus(ctx, entities.StatusApproved, limit, offset)
	if err != nil {
		log.Error(ctx, msgErrListingNotes, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingNotes, err)
	}

	if useCache {
		if encoded, err := json.Marshal(notes); err == nil {
			if err := c.cache.Set(ctx, cacheKeyApprovedNotes, string(encoded), 0); err != nil {
				log.Warn(ctx, msgErrCacheWrite, zap.Error(err))
			}
		}
	}

	return notes, nil
}
