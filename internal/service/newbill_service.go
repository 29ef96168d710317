package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Mondoloni/Billed/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrUnsupportedFileType carries the exact field-level message shown next to
// the file input when a receipt has a disallowed extension.
var ErrUnsupportedFileType = errors.New("Formats acceptés : jpg, jpeg et png")

// Receipt extensions accepted by the new-bill form. Compared
// case-insensitively, so receipt.JPG is accepted.
var allowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// Draft is the in-progress bill owned by one new-bill form session. It is a
// value: every operation returns a replacement instead of mutating in place.
// A zero Draft means nothing has been staged yet.
type Draft struct {
	BillID   uuid.UUID
	FileURL  string
	FileName string
	FileKey  string
}

// Staged reports whether a receipt file has been validated and uploaded.
func (d Draft) Staged() bool {
	return d.FileURL != ""
}

// BillFields are the plain form fields of the new-bill form.
type BillFields struct {
	Type       string
	Name       string
	Date       string
	Amount     int
	VAT        string
	Pct        int
	Commentary string
}

type NewBillService struct {
	store   BillStore
	storage FileStorage
	logger  *zap.Logger
}

func NewNewBillService(store BillStore, storage FileStorage, logger *zap.Logger) *NewBillService {
	return &NewBillService{
		store:   store,
		storage: storage,
		logger:  logger,
	}
}

// ValidateAndStageFile checks the receipt's extension, uploads it and
// partial-saves the draft bill so the stored file reference survives until
// submission. On rejection the input draft is returned unchanged: a
// previously staged valid file is never overwritten by a bad selection, and
// no upload is initiated. The operation may run once per file selection; a
// later valid file replaces an earlier rejection.
func (s *NewBillService) ValidateAndStageFile(ctx context.Context, email string, draft Draft, fileName string, data []byte) (Draft, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	if _, ok := allowedExtensions[ext]; !ok {
		s.logger.Info("Rejected receipt file",
			zap.String("file_name", fileName),
			zap.String("email", email),
		)
		return draft, ErrUnsupportedFileType
	}

	stored, err := s.storage.Save(fileName, data)
	if err != nil {
		return draft, fmt.Errorf("saving receipt file: %w", err)
	}

	now := time.Now()
	if draft.BillID == uuid.Nil {
		bill := &models.Bill{
			ID:        uuid.New(),
			Email:     email,
			FileURL:   stored.URL,
			FileName:  stored.Name,
			FileKey:   stored.Key,
			Status:    models.BillStatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.store.Create(ctx, bill); err != nil {
			return draft, fmt.Errorf("creating draft bill: %w", err)
		}
		draft.BillID = bill.ID
	} else {
		bill, err := s.store.GetByID(ctx, draft.BillID)
		if err != nil {
			return draft, ErrBillNotFound
		}
		bill.FileURL = stored.URL
		bill.FileName = stored.Name
		bill.FileKey = stored.Key
		bill.UpdatedAt = now
		if err := s.store.Update(ctx, bill); err != nil {
			return draft, fmt.Errorf("updating draft bill: %w", err)
		}
	}

	draft.FileURL = stored.URL
	draft.FileName = stored.Name
	draft.FileKey = stored.Key

	return draft, nil
}

// Submit assembles the final bill record and persists it: a create when no
// prior partial save exists, an update otherwise. Status is always forced to
// pending. Submission without a staged file is allowed and leaves the file
// fields empty. On failure the draft is untouched so the user can retry.
func (s *NewBillService) Submit(ctx context.Context, email string, draft Draft, fields BillFields) (*models.Bill, error) {
	now := time.Now()

	if draft.BillID == uuid.Nil {
		bill := &models.Bill{
			ID:         uuid.New(),
			Email:      email,
			Type:       fields.Type,
			Name:       fields.Name,
			Date:       fields.Date,
			Amount:     fields.Amount,
			VAT:        fields.VAT,
			Pct:        fields.Pct,
			Commentary: fields.Commentary,
			FileURL:    draft.FileURL,
			FileName:   draft.FileName,
			FileKey:    draft.FileKey,
			Status:     models.BillStatusPending,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := s.store.Create(ctx, bill); err != nil {
			return nil, fmt.Errorf("creating bill: %w", err)
		}
		return bill, nil
	}

	bill, err := s.store.GetByID(ctx, draft.BillID)
	if err != nil {
		return nil, ErrBillNotFound
	}
	if bill.Email != email {
		return nil, ErrNotBillOwner
	}

	bill.Type = fields.Type
	bill.Name = fields.Name
	bill.Date = fields.Date
	bill.Amount = fields.Amount
	bill.VAT = fields.VAT
	bill.Pct = fields.Pct
	bill.Commentary = fields.Commentary
	if draft.Staged() {
		bill.FileURL = draft.FileURL
		bill.FileName = draft.FileName
		bill.FileKey = draft.FileKey
	}
	bill.Status = models.BillStatusPending
	bill.UpdatedAt = now

	if err := s.store.Update(ctx, bill); err != nil {
		return nil, fmt.Errorf("updating bill: %w", err)
	}

	return bill, nil
}
