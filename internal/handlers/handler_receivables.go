package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// receivablesHandler handles invoices, receipts and the reports built on them.
type receivablesHandler struct {
	receivablesService portssvc.ReceivablesSvcFacade
}

func newReceivablesHandler(rs portssvc.ReceivablesSvcFacade) *receivablesHandler {
	return &receivablesHandler{receivablesService: rs}
}

func registerReceivablesRoutes(rg *gin.RouterGroup, receivablesService portssvc.ReceivablesSvcFacade) {
	h := newReceivablesHandler(receivablesService)

	rg.POST("/invoices", h.recordInvoice)
	rg.POST("/receipts", h.recordReceipt)
	rg.GET("/customers/:customerID/statement", h.customerStatement)
	rg.GET("/receivables/aging", h.aging)
}

// recordInvoice godoc
// @Summary Record an invoice
// @Tags receivables
// @Accept  json
// @Produce  json
// @Param   X-Tenant-ID header string true "Tenant ID"
// @Param   invoice body dto.CreateInvoiceRequest true "Invoice"
// @Success 201 {object} domain.Invoice
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Invoice already recorded"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /invoices [post]
func (h *receivablesHandler) recordInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for RecordInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	invoice, err := req.ToInvoice()
	if err != nil {
		respondError(c, logger, err, "Failed to record invoice")
		return
	}

	userID, tenantID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	saved, err := h.receivablesService.RecordInvoice(c.Request.Context(), tenantID, invoice, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to record invoice")
		return
	}

	logger.Info("Invoice recorded", slog.String("invoice_id", saved.InvoiceID), slog.String("customer_id", saved.CustomerID))
	c.JSON(http.StatusCreated, saved)
}

// recordReceipt godoc
// @Summary Record a receipt
// @Description Records a customer payment applied to one of their invoices
// @Tags receivables
// @Accept  json
// @Produce  json
// @Param   X-Tenant-ID header string true "Tenant ID"
// @Param   receipt body dto.CreateReceiptRequest true "Receipt"
// @Success 201 {object} domain.Receipt
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or unknown invoice"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Receipt already recorded"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /receipts [post]
func (h *receivablesHandler) recordReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for RecordReceipt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	receipt, err := req.ToReceipt()
	if err != nil {
		respondError(c, logger, err, "Failed to record receipt")
		return
	}

	userID, tenantID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	saved, err := h.receivablesService.RecordReceipt(c.Request.Context(), tenantID, receipt, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to record receipt")
		return
	}

	logger.Info("Receipt recorded", slog.String("receipt_id", saved.ReceiptID), slog.String("invoice_id", saved.AppliedTo))
	c.JSON(http.StatusCreated, saved)
}

// customerStatement godoc
// @Summary Customer statement
// @Description Invoices and receipts for a customer in date order with a running balance
// @Tags receivables
// @Produce  json
// @Param   X-Tenant-ID header string true "Tenant ID"
// @Param   customerID path string true "Customer ID"
// @Success 200 {object} domain.CustomerStatement
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /customers/{customerID}/statement [get]
func (h *receivablesHandler) customerStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("customerID")

	_, tenantID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	stmt, err := h.receivablesService.CustomerStatement(c.Request.Context(), tenantID, customerID)
	if err != nil {
		respondError(c, logger.With(slog.String("customer_id", customerID)), err, "Failed to build customer statement")
		return
	}
	c.JSON(http.StatusOK, stmt)
}

// aging godoc
// @Summary Receivables aging
// @Description Outstanding invoice amounts grouped into aging buckets as of a date
// @Tags receivables
// @Produce  json
// @Param   X-Tenant-ID header string true "Tenant ID"
// @Param   asOf query string false "Report date, YYYY-MM-DD (default today)"
// @Success 200 {object} dto.AgingResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid date"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /receivables/aging [get]
func (h *receivablesHandler) aging(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.AgingParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	asOf, err := dto.ParseDate(params.AsOf)
	if err != nil {
		respondError(c, logger, err, "Failed to build aging report")
		return
	}
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	_, tenantID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	buckets, err := h.receivablesService.AgingReport(c.Request.Context(), tenantID, asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to build aging report")
		return
	}

	c.JSON(http.StatusOK, dto.AgingResponse{
		AsOf:    asOf.Format(dto.DateLayout),
		Buckets: buckets,
	})
}
