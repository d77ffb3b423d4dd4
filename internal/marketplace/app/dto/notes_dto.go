package dto

import "notemarket/internal/marketplace/domain/entities"

// NoteResponse содержит публичное представление конспекта в каталоге.
type NoteResponse struct {
	NoteID      int64   `json:"note_id"`
	Title       string  `json:"title"`
	Subject     string  `json:"subject"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	SellerID    int64   `json:"seller_id"`
}

// BrowseNotesResponse содержит список одобренных конспектов.
type BrowseNotesResponse struct {
	Notes []NoteResponse `json:"notes"`
}

// UploadNoteResponse содержит результат загрузки конспекта.
type UploadNoteResponse struct {
	Message string `json:"message"`
	NoteID  int64  `json:"note_id"`
}

// PendingNoteResponse содержит представление конспекта в очереди модерации.
type PendingNoteResponse struct {
	NoteID   int64  `json:"note_id"`
	Title    string `json:"title"`
	Subject  string `json:"subject"`
	SellerID int64  `json:"seller_id"`
}

// PendingNotesResponse содержит очередь модерации.
type PendingNotesResponse struct {
	PendingNotes []PendingNoteResponse `json:"pending_notes"`
}

// ModerationResponse содержит результат решения модератора.
type ModerationResponse struct {
	Message string `json:"message"`
}

// NoteResponseFromEntity преобразует доменную сущность в публичное представление.
func NoteResponseFromEntity(note *entities.Note) NoteResponse {
	return NoteResponse{
		NoteID:      note.ID,
		Title:       note.Title,
		Subject:     note.Subject,
		Description: note.Description,
		Price:       note.Price,
		SellerID:    note.SellerID,
	}
}

// PendingNoteResponseFromEntity преобразует доменную сущность в элемент очереди модерации.
func PendingNoteResponseFromEntity(note *entities.Note) PendingNoteResponse {
	return PendingNoteResponse{
		NoteID:   note.ID,
		Title:    note.Title,
		Subject:  note.Subject,
		SellerID: note.SellerID,
	}
}
