package service

import (
	"context"
	"fmt"

	"github.com/Mondoloni/Billed/internal/models"

	"github.com/google/uuid"
)

// memoryBillStore is an in-memory BillStore used to exercise the services
// without a database. Errors can be injected per operation.
type memoryBillStore struct {
	bills []models.Bill

	listErr   error
	getErr    error
	createErr error
	updateErr error

	createCalls int
	updateCalls int
}

func (s *memoryBillStore) List(ctx context.Context, email string) ([]models.Bill, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []models.Bill
	for _, b := range s.bills {
		if b.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *memoryBillStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Bill, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	for i := range s.bills {
		if s.bills[i].ID == id {
			bill := s.bills[i]
			return &bill, nil
		}
	}
	return nil, fmt.Errorf("no rows in result set")
}

func (s *memoryBillStore) Create(ctx context.Context, bill *models.Bill) error {
	s.createCalls++
	if s.createErr != nil {
		return s.createErr
	}
	s.bills = append(s.bills, *bill)
	return nil
}

func (s *memoryBillStore) Update(ctx context.Context, bill *models.Bill) error {
	s.updateCalls++
	if s.updateErr != nil {
		return s.updateErr
	}
	for i := range s.bills {
		if s.bills[i].ID == bill.ID {
			s.bills[i] = *bill
			return nil
		}
	}
	return fmt.Errorf("no rows in result set")
}

// memoryFileStorage records saved files and hands out deterministic keys.
type memoryFileStorage struct {
	saved   []string
	saveErr error
}

func (s *memoryFileStorage) Save(fileName string, data []byte) (StoredFile, error) {
	if s.saveErr != nil {
		return StoredFile{}, s.saveErr
	}
	key := fmt.Sprintf("key-%d", len(s.saved)+1)
	s.saved = append(s.saved, fileName)
	return StoredFile{
		URL:  "/uploads/" + key,
		Name: fileName,
		Key:  key,
	}, nil
}
