package api

import (
	"context"
)

// PurchaseUseCase определяет сценарий покупки конспекта.
type PurchaseUseCase interface {
	// Purchase записывает покупку и возвращает ссылку для скачивания.
	// Каждый вызов добавляет новую запись, включая повторные покупки.
	Purchase(ctx context.Context, buyerID, noteID int64) (string, error)
}
