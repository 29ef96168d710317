package handlers

import (
	"errors"
	"io"
	"time"

	"github.com/Mondoloni/Billed/internal/dto"
	"github.com/Mondoloni/Billed/internal/models"
	"github.com/Mondoloni/Billed/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BillHandler struct {
	billService    *service.BillService
	newBillService *service.NewBillService
	logger         *zap.Logger
}

func NewBillHandler(billService *service.BillService, newBillService *service.NewBillService, logger *zap.Logger) *BillHandler {
	return &BillHandler{
		billService:    billService,
		newBillService: newBillService,
		logger:         logger,
	}
}

// ListBills godoc
// @Summary List the session owner's bills
// @Description List submitted expense bills with display-formatted date and status
// @Tags bills
// @Produce json
// @Param sorted query bool false "Sort most recent date first" default(true)
// @Security Bearer
// @Success 200 {array} dto.BillResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/bills [get]
func (h *BillHandler) ListBills(c *fiber.Ctx) error {
	email, err := getEmail(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	bills, err := h.billService.ListBills(c.Context(), email)
	if err != nil {
		h.logger.Error("Failed to list bills", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list bills",
		})
	}

	if c.QueryBool("sorted", true) {
		service.SortBillsByDateDesc(bills)
	}

	return c.JSON(bills)
}

// UploadReceipt godoc
// @Summary Upload a receipt file
// @Description Validate the receipt's extension, store the file and partial-save the draft bill
// @Tags bills
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Receipt image (jpg, jpeg or png)"
// @Param bill_id formData string false "Draft bill ID from a previous upload"
// @Security Bearer
// @Success 201 {object} dto.UploadReceiptResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/bills/upload [post]
func (h *BillHandler) UploadReceipt(c *fiber.Ctx) error {
	email, err := getEmail(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File is required",
		})
	}

	var draft service.Draft
	if billID := c.FormValue("bill_id"); billID != "" {
		id, err := uuid.Parse(billID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid bill ID",
			})
		}
		draft.BillID = id
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open file",
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read file",
		})
	}

	staged, err := h.newBillService.ValidateAndStageFile(c.Context(), email, draft, fileHeader.Filename, data)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedFileType) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to stage receipt", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload receipt",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.UploadReceiptResponse{
		BillID:   staged.BillID.String(),
		FileURL:  staged.FileURL,
		FileName: staged.FileName,
		Key:      staged.FileKey,
	})
}

// SubmitBill godoc
// @Summary Submit a new bill
// @Description Create a pending bill from the new-bill form fields
// @Tags bills
// @Accept json
// @Produce json
// @Param request body dto.SubmitBillRequest true "Bill form fields"
// @Security Bearer
// @Success 201 {object} dto.BillResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/bills [post]
func (h *BillHandler) SubmitBill(c *fiber.Ctx) error {
	return h.submit(c, service.Draft{})
}

// UpdateBill godoc
// @Summary Submit a bill over an existing draft
// @Description Update the draft bill created by a receipt upload with the final form fields
// @Tags bills
// @Accept json
// @Produce json
// @Param id path string true "Bill ID"
// @Param request body dto.SubmitBillRequest true "Bill form fields"
// @Security Bearer
// @Success 200 {object} dto.BillResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/bills/{id} [put]
func (h *BillHandler) UpdateBill(c *fiber.Ctx) error {
	billID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid bill ID",
		})
	}

	return h.submit(c, service.Draft{BillID: billID})
}

func (h *BillHandler) submit(c *fiber.Ctx, draft service.Draft) error {
	email, err := getEmail(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.SubmitBillRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	draft.FileURL = req.FileURL
	draft.FileName = req.FileName
	draft.FileKey = req.FileKey

	bill, err := h.newBillService.Submit(c.Context(), email, draft, service.BillFields{
		Type:       req.Type,
		Name:       req.Name,
		Date:       req.Date,
		Amount:     req.Amount,
		VAT:        req.VAT,
		Pct:        req.Pct,
		Commentary: req.Commentary,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBillNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Bill not found",
			})
		case errors.Is(err, service.ErrNotBillOwner):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Bill belongs to another user",
			})
		}
		h.logger.Error("Failed to submit bill", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to submit bill",
		})
	}

	status := fiber.StatusCreated
	if draft.BillID != uuid.Nil {
		status = fiber.StatusOK
	}

	return c.Status(status).JSON(billToResponse(bill))
}

// ReviewBill godoc
// @Summary Review a bill
// @Description Accept or refuse a pending bill with an optional admin comment
// @Tags bills
// @Accept json
// @Produce json
// @Param id path string true "Bill ID"
// @Param request body dto.ReviewBillRequest true "Review decision"
// @Security Bearer
// @Success 200 {object} dto.BillResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/bills/{id}/review [put]
func (h *BillHandler) ReviewBill(c *fiber.Ctx) error {
	billID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid bill ID",
		})
	}

	var req dto.ReviewBillRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	bill, err := h.billService.Review(c.Context(), billID, models.BillStatus(req.Status), req.CommentAdmin)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Status must be accepted or refused",
			})
		case errors.Is(err, service.ErrBillNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Bill not found",
			})
		}
		h.logger.Error("Failed to review bill", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to review bill",
		})
	}

	return c.JSON(billToResponse(bill))
}

func billToResponse(bill *models.Bill) dto.BillResponse {
	return dto.BillResponse{
		ID:           bill.ID.String(),
		Email:        bill.Email,
		Type:         bill.Type,
		Name:         bill.Name,
		Date:         bill.Date,
		Amount:       bill.Amount,
		VAT:          bill.VAT,
		Pct:          bill.Pct,
		Commentary:   bill.Commentary,
		FileURL:      bill.FileURL,
		FileName:     bill.FileName,
		Status:       string(bill.Status),
		CommentAdmin: bill.CommentAdmin,
		CreatedAt:    bill.CreatedAt.Format(time.RFC3339),
	}
}

func getEmail(c *fiber.Ctx) (string, error) {
	email, ok := c.Locals("email").(string)
	if !ok || email == "" {
		return "", fiber.ErrUnauthorized
	}
	return email, nil
}
