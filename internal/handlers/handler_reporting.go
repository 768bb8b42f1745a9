package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.trialBalance)
		reports.GET("/profit-and-loss", h.profitAndLoss)
		reports.GET("/balance-sheet", h.balanceSheet)
	}
}

// trialBalance godoc
// @Summary Trial balance
// @Description Per-account debit and credit totals over the whole journal, in account code order
// @Tags reports
// @Produce  json
// @Param   X-Tenant-ID header string true "Tenant ID"
// @Success 200 {object} domain.TrialBalanceReport
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) trialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	_, tenantID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	report, err := h.reportingService.TrialBalance(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, logger, err, "Failed to build trial balance")
		return
	}
	c.JSON(http.StatusOK, report)
}

// profitAndLoss godoc
// @Summary Profit and loss
// @Tags reports
// @Produce  json
// @Param   X-Tenant-ID header string true "Tenant ID"
// @Success 200 {object} domain.PAndLReport
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /reports/profit-and-loss [get]
func (h *reportingHandler) profitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	_, tenantID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, logger, err, "Failed to build profit and loss report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// balanceSheet godoc
// @Summary Balance sheet
// @Tags reports
// @Produce  json
// @Param   X-Tenant-ID header string true "Tenant ID"
// @Success 200 {object} domain.BalanceSheetReport
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) balanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	_, tenantID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, logger, err, "Failed to build balance sheet")
		return
	}
	c.JSON(http.StatusOK, report)
}
