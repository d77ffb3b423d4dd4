package dto

// PurchaseRequest содержит данные для покупки конспекта.
type PurchaseRequest struct {
	BuyerID int64 `json:"buyer_id" validate:"required"`
	NoteID  int64 `json:"note_id" validate:"required"`
}

// PurchaseResponse содержит результат покупки со ссылкой на скачивание.
type PurchaseResponse struct {
	Message      string `json:"message"`
	DownloadLink string `json:"download_link"`
}
