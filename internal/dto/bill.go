package dto

// SubmitBillRequest carries the new-bill form fields. File fields come from a
// prior upload; they may be empty when no receipt was staged.
type SubmitBillRequest struct {
	Type       string `json:"type" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Date       string `json:"date" validate:"required"`
	Amount     int    `json:"amount" validate:"required"`
	VAT        string `json:"vat"`
	Pct        int    `json:"pct"`
	Commentary string `json:"commentary"`
	FileURL    string `json:"file_url"`
	FileName   string `json:"file_name"`
	FileKey    string `json:"file_key"`
}

type ReviewBillRequest struct {
	Status       string `json:"status" validate:"required,oneof=accepted refused"`
	CommentAdmin string `json:"comment_admin"`
}

// BillResponse is a bill with date and status replaced by their
// display-formatted forms. Derived per render, never persisted.
type BillResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Type         string `json:"type"`
	Name         string `json:"name"`
	Date         string `json:"date"`
	Amount       int    `json:"amount"`
	VAT          string `json:"vat"`
	Pct          int    `json:"pct"`
	Commentary   string `json:"commentary,omitempty"`
	FileURL      string `json:"file_url,omitempty"`
	FileName     string `json:"file_name,omitempty"`
	Status       string `json:"status"`
	CommentAdmin string `json:"comment_admin,omitempty"`
	CreatedAt    string `json:"created_at"`
}

type UploadReceiptResponse struct {
	BillID   string `json:"bill_id"`
	FileURL  string `json:"file_url"`
	FileName string `json:"file_name"`
	Key      string `json:"key"`
}
