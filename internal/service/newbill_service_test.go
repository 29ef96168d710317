package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Mondoloni/Billed/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestNewBillService() (*NewBillService, *memoryBillStore, *memoryFileStorage) {
	store := &memoryBillStore{}
	storage := &memoryFileStorage{}
	return NewNewBillService(store, storage, zap.NewNop()), store, storage
}

func TestValidateAndStageFile_AcceptedExtensions(t *testing.T) {
	// Extension comparison is case-insensitive, so receipt.JPG passes too.
	accepted := []string{"test.png", "receipt.JPG", "photo.jpeg", "scan.Png"}

	for _, fileName := range accepted {
		t.Run(fileName, func(t *testing.T) {
			svc, store, storage := newTestNewBillService()

			draft, err := svc.ValidateAndStageFile(context.Background(), testEmail, Draft{}, fileName, []byte("image-bytes"))
			require.NoError(t, err)
			require.True(t, draft.Staged())
			require.NotEqual(t, uuid.Nil, draft.BillID)
			require.Equal(t, fileName, draft.FileName)
			require.NotEmpty(t, draft.FileURL)
			require.NotEmpty(t, draft.FileKey)
			require.Equal(t, []string{fileName}, storage.saved)

			// A partial save carries the file reference until submission.
			stored, err := store.GetByID(context.Background(), draft.BillID)
			require.NoError(t, err)
			require.Equal(t, testEmail, stored.Email)
			require.Equal(t, draft.FileURL, stored.FileURL)
			require.Equal(t, fileName, stored.FileName)
			require.Equal(t, models.BillStatusPending, stored.Status)
		})
	}
}

func TestValidateAndStageFile_RejectedExtensions(t *testing.T) {
	rejected := []string{"receipt.pdf", "receipt", "notes.txt", "archive.png.zip"}

	for _, fileName := range rejected {
		t.Run(fileName, func(t *testing.T) {
			svc, store, storage := newTestNewBillService()

			draft, err := svc.ValidateAndStageFile(context.Background(), testEmail, Draft{}, fileName, []byte("data"))
			require.ErrorIs(t, err, ErrUnsupportedFileType)
			require.EqualError(t, err, "Formats acceptés : jpg, jpeg et png")

			// No upload, no store write, draft untouched.
			require.Empty(t, storage.saved)
			require.Zero(t, store.createCalls)
			require.False(t, draft.Staged())
		})
	}
}

func TestValidateAndStageFile_RejectionPreservesPriorFile(t *testing.T) {
	svc, _, storage := newTestNewBillService()
	ctx := context.Background()

	staged, err := svc.ValidateAndStageFile(ctx, testEmail, Draft{}, "test.png", []byte("png-bytes"))
	require.NoError(t, err)
	require.True(t, staged.Staged())

	// A later invalid selection must not clear the staged upload.
	after, err := svc.ValidateAndStageFile(ctx, testEmail, staged, "file.pdf", []byte("pdf-bytes"))
	require.ErrorIs(t, err, ErrUnsupportedFileType)
	require.Equal(t, staged, after)
	require.Equal(t, []string{"test.png"}, storage.saved)
}

func TestValidateAndStageFile_RestagingUpdatesDraftBill(t *testing.T) {
	svc, store, _ := newTestNewBillService()
	ctx := context.Background()

	first, err := svc.ValidateAndStageFile(ctx, testEmail, Draft{}, "first.png", []byte("a"))
	require.NoError(t, err)

	second, err := svc.ValidateAndStageFile(ctx, testEmail, first, "second.jpg", []byte("b"))
	require.NoError(t, err)

	// Same draft bill, new file reference; no second record is created.
	require.Equal(t, first.BillID, second.BillID)
	require.Equal(t, "second.jpg", second.FileName)
	require.Equal(t, 1, store.createCalls)
	require.Equal(t, 1, store.updateCalls)

	stored, err := store.GetByID(ctx, second.BillID)
	require.NoError(t, err)
	require.Equal(t, "second.jpg", stored.FileName)
}

func TestValidateAndStageFile_StorageError(t *testing.T) {
	svc, store, storage := newTestNewBillService()
	storage.saveErr = errors.New("disk full")

	draft, err := svc.ValidateAndStageFile(context.Background(), testEmail, Draft{}, "test.png", []byte("a"))
	require.ErrorContains(t, err, "disk full")
	require.False(t, draft.Staged())
	require.Zero(t, store.createCalls)
}

func TestSubmit_CreatesPendingBill(t *testing.T) {
	svc, store, _ := newTestNewBillService()
	ctx := context.Background()

	fields := BillFields{
		Type:       "IT et électronique",
		Name:       "Note de frais",
		Date:       "2024-01-04",
		Amount:     300,
		VAT:        "60",
		Pct:        20,
		Commentary: "achat d'un MacBook",
	}

	staged, err := svc.ValidateAndStageFile(ctx, testEmail, Draft{}, "imageNoteDeFrais.jpg", []byte("img"))
	require.NoError(t, err)

	bill, err := svc.Submit(ctx, testEmail, staged, fields)
	require.NoError(t, err)
	require.Equal(t, staged.BillID, bill.ID)
	require.Equal(t, testEmail, bill.Email)
	require.Equal(t, models.BillStatusPending, bill.Status)
	require.Equal(t, "Note de frais", bill.Name)
	require.Equal(t, "2024-01-04", bill.Date)
	require.Equal(t, 300, bill.Amount)
	require.Equal(t, staged.FileURL, bill.FileURL)
	require.Equal(t, "imageNoteDeFrais.jpg", bill.FileName)

	require.Len(t, store.bills, 1)
}

func TestSubmit_WithoutStagedFileAllowed(t *testing.T) {
	// Submission with no staged receipt is permitted; the file fields stay
	// empty.
	svc, store, _ := newTestNewBillService()

	bill, err := svc.Submit(context.Background(), testEmail, Draft{}, BillFields{
		Type:   "Transports",
		Name:   "billet de train",
		Date:   "2024-02-10",
		Amount: 45,
		Pct:    20,
	})
	require.NoError(t, err)
	require.Empty(t, bill.FileURL)
	require.Empty(t, bill.FileName)
	require.Equal(t, models.BillStatusPending, bill.Status)
	require.Equal(t, 1, store.createCalls)
}

func TestSubmit_StoreErrorKeepsDraft(t *testing.T) {
	svc, store, _ := newTestNewBillService()
	store.createErr = errors.New("Erreur 404")

	draft := Draft{FileURL: "/uploads/key-1", FileName: "test.png", FileKey: "key-1"}

	_, err := svc.Submit(context.Background(), testEmail, draft, BillFields{
		Type: "Transports", Name: "test", Date: "2024-01-01", Amount: 10,
	})
	require.Error(t, err)
	require.ErrorContains(t, err, "Erreur 404")

	// The draft value is untouched, so the user can retry as-is.
	require.Equal(t, "/uploads/key-1", draft.FileURL)
	require.Empty(t, store.bills)
}

func TestSubmit_UpdatesExistingDraft(t *testing.T) {
	svc, store, _ := newTestNewBillService()
	ctx := context.Background()

	staged, err := svc.ValidateAndStageFile(ctx, testEmail, Draft{}, "test.png", []byte("img"))
	require.NoError(t, err)

	bill, err := svc.Submit(ctx, testEmail, staged, BillFields{
		Type: "Hôtel et logement", Name: "encore", Date: "2004-04-04", Amount: 400, VAT: "80", Pct: 20,
	})
	require.NoError(t, err)
	require.Equal(t, staged.BillID, bill.ID)
	require.Equal(t, "encore", bill.Name)
	require.Equal(t, staged.FileURL, bill.FileURL)
	require.Len(t, store.bills, 1)
	require.Equal(t, 1, store.updateCalls)
}

func TestSubmit_ForeignDraftRejected(t *testing.T) {
	svc, _, _ := newTestNewBillService()
	ctx := context.Background()

	staged, err := svc.ValidateAndStageFile(ctx, testEmail, Draft{}, "test.png", []byte("img"))
	require.NoError(t, err)

	_, err = svc.Submit(ctx, "intruder@test.tld", staged, BillFields{
		Type: "Transports", Name: "x", Date: "2024-01-01", Amount: 1,
	})
	require.ErrorIs(t, err, ErrNotBillOwner)
}

func TestSubmit_UnknownDraftBill(t *testing.T) {
	svc, _, _ := newTestNewBillService()

	_, err := svc.Submit(context.Background(), testEmail, Draft{BillID: uuid.New()}, BillFields{
		Type: "Transports", Name: "x", Date: "2024-01-01", Amount: 1,
	})
	require.ErrorIs(t, err, ErrBillNotFound)
}
