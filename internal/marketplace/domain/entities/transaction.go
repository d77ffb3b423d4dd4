package entities

import (
	"errors"
	"time"
)

// Ошибки домена покупок.
var (
	ErrMissingPurchaseFields = errors.New("buyer ID and note ID are required")
)

// Transaction - запись о совершенной покупке. Записи только добавляются,
// amount фиксирует цену конспекта на момент покупки.
type Transaction struct {
	ID        int64
	BuyerID   int64
	NoteID    int64
	Amount    float64
	CreatedAt time.Time
}
