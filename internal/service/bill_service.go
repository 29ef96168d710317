package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Mondoloni/Billed/internal/dto"
	"github.com/Mondoloni/Billed/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrBillNotFound  = errors.New("bill not found")
	ErrNotBillOwner  = errors.New("bill belongs to another user")
	ErrInvalidStatus = errors.New("invalid bill status")
)

// BillStore is the persistence collaborator for bills. Implemented by
// repository.BillRepository in production and by an in-memory fake in tests.
type BillStore interface {
	List(ctx context.Context, email string) ([]models.Bill, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Bill, error)
	Create(ctx context.Context, bill *models.Bill) error
	Update(ctx context.Context, bill *models.Bill) error
}

type BillService struct {
	store  BillStore
	logger *zap.Logger
}

func NewBillListService(store BillStore, logger *zap.Logger) *BillService {
	return &BillService{
		store:  store,
		logger: logger,
	}
}

// ListBills fetches the session owner's bills and derives their display form.
// A record whose date cannot be formatted keeps its original date string and
// stays in the list; one corrupt record must not hide all others. A store
// failure propagates and no partial list is returned.
func (s *BillService) ListBills(ctx context.Context, email string) ([]dto.BillResponse, error) {
	bills, err := s.store.List(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("listing bills: %w", err)
	}

	displayed := make([]dto.BillResponse, len(bills))
	for i, bill := range bills {
		displayed[i] = s.toDisplay(bill)
	}

	return displayed, nil
}

func (s *BillService) toDisplay(bill models.Bill) dto.BillResponse {
	date, err := FormatDate(bill.Date)
	if err != nil {
		s.logger.Warn("Keeping unformatted bill date",
			zap.String("bill_id", bill.ID.String()),
			zap.String("date", bill.Date),
			zap.Error(err),
		)
		date = bill.Date
	}

	return dto.BillResponse{
		ID:           bill.ID.String(),
		Email:        bill.Email,
		Type:         bill.Type,
		Name:         bill.Name,
		Date:         date,
		Amount:       bill.Amount,
		VAT:          bill.VAT,
		Pct:          bill.Pct,
		Commentary:   bill.Commentary,
		FileURL:      bill.FileURL,
		FileName:     bill.FileName,
		Status:       FormatStatus(bill.Status),
		CommentAdmin: bill.CommentAdmin,
		CreatedAt:    bill.CreatedAt.Format(time.RFC3339),
	}
}

// Review records an administrative decision on a bill. This is the only path
// that moves a bill out of the pending status.
func (s *BillService) Review(ctx context.Context, billID uuid.UUID, status models.BillStatus, commentAdmin string) (*models.Bill, error) {
	if status != models.BillStatusAccepted && status != models.BillStatusRefused {
		return nil, ErrInvalidStatus
	}

	bill, err := s.store.GetByID(ctx, billID)
	if err != nil {
		return nil, ErrBillNotFound
	}

	bill.Status = status
	bill.CommentAdmin = commentAdmin
	bill.UpdatedAt = time.Now()

	if err := s.store.Update(ctx, bill); err != nil {
		return nil, fmt.Errorf("updating bill: %w", err)
	}

	return bill, nil
}
