package api

import (
	"context"
	"io"

	"notemarket/internal/marketplace/domain/entities"
)

// UploadNoteInput содержит данные для загрузки конспекта.
type UploadNoteInput struct {
	Title       string
	Subject     string
	Description string
	Price       float64
	SellerID    int64
	FileName    string
	File        io.Reader
}

// CatalogUseCase определяет сценарии каталога конспектов.
type CatalogUseCase interface {
	// UploadNote сохраняет файл и создает конспект в статусе pending.
	UploadNote(ctx context.Context, input UploadNoteInput) (*entities.Note, error)

	// BrowseNotes возвращает одобренные конспекты. Нулевой limit означает
	// выборку без ограничения.
	BrowseNotes(ctx context.Context, limit, offset int) ([]*entities.Note, error)
}
