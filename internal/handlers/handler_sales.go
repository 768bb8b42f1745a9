package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type salesHandler struct {
	salesService portssvc.SalesPostingSvc
}

func registerSalesRoutes(rg *gin.RouterGroup, salesService portssvc.SalesPostingSvc) {
	h := &salesHandler{salesService: salesService}
	rg.POST("/sales/post", h.postSale)
}

// postSale godoc
// @Summary Post a POS sale to the ledger
// @Description Books a completed sale as Dr cash / Cr sales revenue. Answers 200 with posted=false when either account is missing from the chart.
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   X-Tenant-ID header string true "Tenant ID"
// @Param   sale body dto.PostSaleRequest true "Completed sale"
// @Success 201 {object} domain.SalePosting "Sale posted"
// @Success 200 {object} domain.SalePosting "Sale not posted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Sale already posted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sales/post [post]
func (h *salesHandler) postSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PostSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for PostSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	sale, err := req.ToSale()
	if err != nil {
		respondError(c, logger, err, "Failed to post sale")
		return
	}

	userID, tenantID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	posting, err := h.salesService.PostSale(c.Request.Context(), tenantID, sale, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("sale_id", sale.SaleID)), err, "Failed to post sale")
		return
	}

	if !posting.Posted {
		logger.Warn("Sale not posted", slog.String("sale_id", sale.SaleID), slog.String("reason", posting.Reason))
		c.JSON(http.StatusOK, posting)
		return
	}

	logger.Info("Sale posted", slog.String("sale_id", sale.SaleID), slog.String("entry_id", posting.Entry.EntryID))
	c.JSON(http.StatusCreated, posting)
}
