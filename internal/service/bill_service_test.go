package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Mondoloni/Billed/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testEmail = "employee@test.tld"

func fixtureBills() []models.Bill {
	now := time.Now()
	return []models.Bill{
		{
			ID: uuid.New(), Email: testEmail, Type: "Hôtel et logement",
			Name: "encore", Date: "2004-04-04", Amount: 400, VAT: "80", Pct: 20,
			Status: models.BillStatusPending, CreatedAt: now,
		},
		{
			ID: uuid.New(), Email: testEmail, Type: "Transports",
			Name: "test1", Date: "2001-01-01", Amount: 100, Pct: 20,
			Status: models.BillStatusRefused, CreatedAt: now,
		},
		{
			ID: uuid.New(), Email: testEmail, Type: "Services en ligne",
			Name: "test3", Date: "2003-03-03", Amount: 300, VAT: "60", Pct: 20,
			Status: models.BillStatusAccepted, CreatedAt: now,
		},
		{
			ID: uuid.New(), Email: testEmail, Type: "Restaurants et bars",
			Name: "test2", Date: "2002-02-02", Amount: 200, VAT: "40", Pct: 20,
			Status: models.BillStatusRefused, CreatedAt: now,
		},
	}
}

func TestBillService_ListBills(t *testing.T) {
	store := &memoryBillStore{bills: fixtureBills()}
	svc := NewBillListService(store, zap.NewNop())
	ctx := context.Background()

	bills, err := svc.ListBills(ctx, testEmail)
	require.NoError(t, err)
	require.Len(t, bills, 4)

	// Store order is preserved; no re-sorting happens here.
	require.Equal(t, "encore", bills[0].Name)
	require.Equal(t, "test1", bills[1].Name)
	require.Equal(t, "test3", bills[2].Name)
	require.Equal(t, "test2", bills[3].Name)

	require.Equal(t, "4 Avr. 04", bills[0].Date)
	require.Equal(t, "En attente", bills[0].Status)
	require.Equal(t, "1 Jan. 01", bills[1].Date)
	require.Equal(t, "Refusé", bills[1].Status)
	require.Equal(t, "3 Mar. 03", bills[2].Date)
	require.Equal(t, "Accepté", bills[2].Status)
}

func TestBillService_ListBills_CorruptDateKeptRaw(t *testing.T) {
	fixtures := fixtureBills()
	fixtures[1].Date = "not-a-date"

	store := &memoryBillStore{bills: fixtures}
	svc := NewBillListService(store, zap.NewNop())

	bills, err := svc.ListBills(context.Background(), testEmail)
	require.NoError(t, err)

	// The corrupt record stays in the list with its original date string,
	// and its status is still formatted.
	require.Len(t, bills, 4)
	require.Equal(t, "not-a-date", bills[1].Date)
	require.Equal(t, "Refusé", bills[1].Status)

	// The other records are unaffected.
	require.Equal(t, "4 Avr. 04", bills[0].Date)
}

func TestBillService_ListBills_StoreError(t *testing.T) {
	store := &memoryBillStore{listErr: errors.New("Erreur 500")}
	svc := NewBillListService(store, zap.NewNop())

	bills, err := svc.ListBills(context.Background(), testEmail)
	require.Error(t, err)
	require.ErrorContains(t, err, "Erreur 500")
	require.Nil(t, bills)
}

func TestBillService_ListBills_Idempotent(t *testing.T) {
	store := &memoryBillStore{bills: fixtureBills()}
	svc := NewBillListService(store, zap.NewNop())
	ctx := context.Background()

	first, err := svc.ListBills(ctx, testEmail)
	require.NoError(t, err)
	second, err := svc.ListBills(ctx, testEmail)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestBillService_ListBills_OnlyOwnBills(t *testing.T) {
	fixtures := fixtureBills()
	fixtures[2].Email = "someone-else@test.tld"

	store := &memoryBillStore{bills: fixtures}
	svc := NewBillListService(store, zap.NewNop())

	bills, err := svc.ListBills(context.Background(), testEmail)
	require.NoError(t, err)
	require.Len(t, bills, 3)
}

func TestBillService_Review(t *testing.T) {
	fixtures := fixtureBills()
	store := &memoryBillStore{bills: fixtures}
	svc := NewBillListService(store, zap.NewNop())
	ctx := context.Background()

	t.Run("accepts a pending bill", func(t *testing.T) {
		bill, err := svc.Review(ctx, fixtures[0].ID, models.BillStatusAccepted, "ok")
		require.NoError(t, err)
		require.Equal(t, models.BillStatusAccepted, bill.Status)
		require.Equal(t, "ok", bill.CommentAdmin)

		stored, err := store.GetByID(ctx, fixtures[0].ID)
		require.NoError(t, err)
		require.Equal(t, models.BillStatusAccepted, stored.Status)
	})

	t.Run("rejects an invalid status", func(t *testing.T) {
		_, err := svc.Review(ctx, fixtures[0].ID, models.BillStatus("approved"), "")
		require.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("pending is not a decision", func(t *testing.T) {
		_, err := svc.Review(ctx, fixtures[0].ID, models.BillStatusPending, "")
		require.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("unknown bill", func(t *testing.T) {
		_, err := svc.Review(ctx, uuid.New(), models.BillStatusRefused, "")
		require.ErrorIs(t, err, ErrBillNotFound)
	})
}
