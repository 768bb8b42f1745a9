package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/erp_ledger/internal/core/ledger"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: js,
	}
}

// registerJournalRoutes registers the journal entry and ledger routes.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	entries := rg.Group("/journal-entries")
	{
		entries.POST("/validate", h.validateEntry)
		entries.POST("", h.postEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:entryID", h.getEntry)
		entries.POST("/:entryID/reverse", h.reverseEntry)
	}

	rg.GET("/ledger", h.ledger)
}

// validateEntry godoc
// @Summary Validate a draft journal entry
// @Description Checks a draft against the ledger rules without posting it. Always answers 200 for a well-formed body.
// @Tags journal
// @Accept  json
// @Produce  json
// @Param   X-Tenant-ID header string true "Tenant ID"
// @Param   entry body dto.DraftEntryRequest true "Draft entry"
// @Success 200 {object} dto.ValidateEntryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /journal-entries/validate [post]
func (h *journalHandler) validateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.DraftEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ValidateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	draft, err := req.ToDraft()
	if err != nil {
		respondError(c, logger, err, "Failed to validate entry")
		return
	}

	_, tenantID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	debit, credit := draft.Totals()
	resp := dto.ValidateEntryResponse{Valid: true, TotalDebit: debit, TotalCredit: credit}

	if err := h.journalService.ValidateEntry(c.Request.Context(), tenantID, draft); err != nil {
		var verr *ledger.ValidationError
		if !errors.As(err, &verr) {
			respondError(c, logger, err, "Failed to validate entry")
			return
		}
		resp.Valid = false
		resp.Kind = verr.KindName()
		resp.Error = verr.Error()
	}

	c.JSON(http.StatusOK, resp)
}

// postEntry godoc
// @Summary Post a journal entry
// @Description Validates and appends a balanced entry to the tenant's journal
// @Tags journal
// @Accept  json
// @Produce  json
// @Param   X-Tenant-ID header string true "Tenant ID"
// @Param   entry body dto.DraftEntryRequest true "Entry to post"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Entry already posted"
// @Failure 422 {object} dto.LedgerErrorResponse "Entry rejected by the ledger"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /journal-entries [post]
func (h *journalHandler) postEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.DraftEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for PostEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	draft, err := req.ToDraft()
	if err != nil {
		respondError(c, logger, err, "Failed to post entry")
		return
	}

	userID, tenantID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	posted, err := h.journalService.PostEntry(c.Request.Context(), tenantID, draft, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to post entry")
		return
	}

	logger.Info("Journal entry posted", slog.String("entry_id", posted.EntryID))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(posted))
}

// listEntries godoc
// @Summary List journal entries
// @Description Lists posted entries in posting order, filtered by description or reference
// @Tags journal
// @Produce  json
// @Param   X-Tenant-ID header string true "Tenant ID"
// @Param   q query string false "Case-insensitive filter on description and reference"
// @Param   limit query int false "Page size (default 50, max 200)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /journal-entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid query parameters for ListEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	_, tenantID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	entries, nextToken, err := h.journalService.ListEntries(c.Request.Context(), tenantID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list journal entries")
		return
	}

	c.JSON(http.StatusOK, dto.ListJournalEntriesResponse{
		Entries:   dto.ToJournalEntryResponses(entries),
		NextToken: nextToken,
	})
}

// getEntry godoc
// @Summary Get a journal entry
// @Tags journal
// @Produce  json
// @Param   X-Tenant-ID header string true "Tenant ID"
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /journal-entries/{entryID} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	_, tenantID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	entry, err := h.journalService.GetEntry(c.Request.Context(), tenantID, entryID)
	if err != nil {
		respondError(c, logger.With(slog.String("entry_id", entryID)), err, "Failed to retrieve journal entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// reverseEntry godoc
// @Summary Reverse a journal entry
// @Description Posts the offsetting entry of a posted entry. Each entry can be reversed once.
// @Tags journal
// @Produce  json
// @Param   X-Tenant-ID header string true "Tenant ID"
// @Param   entryID path string true "Entry ID to reverse"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} dto.ErrorResponse "Entry is itself a reversal"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 409 {object} dto.ErrorResponse "Entry already reversed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /journal-entries/{entryID}/reverse [post]
func (h *journalHandler) reverseEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	userID, tenantID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	reversal, err := h.journalService.ReverseEntry(c.Request.Context(), tenantID, entryID, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("entry_id", entryID)), err, "Failed to reverse journal entry")
		return
	}

	logger.Info("Journal entry reversed", slog.String("entry_id", entryID), slog.String("reversal_id", reversal.EntryID))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(reversal))
}

// ledger godoc
// @Summary General ledger
// @Description Flattens posted entries into ledger lines, optionally for one account
// @Tags journal
// @Produce  json
// @Param   X-Tenant-ID header string true "Tenant ID"
// @Param   accountID query string false "Restrict to one account"
// @Success 200 {object} dto.LedgerResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /ledger [get]
func (h *journalHandler) ledger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.LedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	_, tenantID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	lines, err := h.journalService.Ledger(c.Request.Context(), tenantID, params.AccountID)
	if err != nil {
		respondError(c, logger, err, "Failed to build ledger")
		return
	}

	c.JSON(http.StatusOK, dto.LedgerResponse{Lines: lines})
}
