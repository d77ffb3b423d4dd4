package entities

import (
	"errors"
	"time"
)

// Статусы жизненного цикла конспекта.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Ошибки домена конспектов.
var (
	ErrMissingNoteFields = errors.New("missing required fields for note upload")
	ErrInvalidPrice      = errors.New("price must be a non-negative number")
	ErrMissingFile       = errors.New("note file is required")

	// ErrNoteUnavailable объединяет "конспект не существует" и "конспект еще
	// не одобрен": покупателю отдается одно сообщение.
	ErrNoteUnavailable = errors.New("note not found or not available for purchase")
)

// Note представляет конспект, выставленный на продажу. PurchaseCount
// обновляется триггером базы данных и наружу не отдается.
type Note struct {
	ID            int64
	Title         string
	Subject       string
	Description   string
	Price         float64
	SellerID      int64
	FileLink      string
	Status        string
	PurchaseCount int
	CreatedAt     time.Time
}
