package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vsilva/minhas_financas_app/internal/core/domain"
	portssvc "github.com/vsilva/minhas_financas_app/internal/core/ports/services"
	"github.com/vsilva/minhas_financas_app/internal/dto"
	"github.com/vsilva/minhas_financas_app/internal/middleware"
)

// entryHandler handles HTTP requests related to financial entries.
type entryHandler struct {
	entryService portssvc.EntrySvcFacade
}

// newEntryHandler creates a new entryHandler.
func newEntryHandler(es portssvc.EntrySvcFacade) *entryHandler {
	return &entryHandler{entryService: es}
}

// RegisterEntryRoutes registers all entry-related routes.
func RegisterEntryRoutes(rg *gin.RouterGroup, entryService portssvc.EntrySvcFacade) {
	h := newEntryHandler(entryService)

	entries := rg.Group("/entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:id", h.getEntry)
		entries.PUT("/:id", h.updateEntry)
		entries.DELETE("/:id", h.deleteEntry)
		entries.PUT("/:id/status", h.updateEntryStatus)
	}
}

func parseEntryID(c *gin.Context) (int64, bool) {
	entryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid entry ID"})
		return 0, false
	}
	return entryID, true
}

// createEntry godoc
// @Summary Create a new entry
// @Description Validates and persists a new financial entry with status PENDING.
// @Tags entries
// @Accept json
// @Produce json
// @Param entry body dto.SaveEntryRequest true "Entry details"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse "Validation failure"
// @Security BearerAuth
// @Router /entries [post]
func (h *entryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	saved, err := h.entryService.SaveEntry(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	logger.Info("Entry created", slog.Int64("entry_id", saved.ID))
	c.JSON(http.StatusCreated, dto.ToEntryResponse(saved))
}

// listEntries godoc
// @Summary Search entries
// @Description Returns entries matching the provided query parameters; absent parameters match everything.
// @Tags entries
// @Produce json
// @Param description query string false "Substring match on description"
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Param userId query int false "Owning user ID; defaults to the authenticated user"
// @Param type query string false "INCOME or EXPENSE"
// @Param status query string false "PENDING, CONFIRMED or CANCELED"
// @Success 200 {array} dto.EntryResponse
// @Security BearerAuth
// @Router /entries [get]
func (h *entryHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	filter := params.ToFilter()
	if filter.UserID == 0 {
		// Scope the search to the caller when no user is named.
		if authUserID, ok := middleware.GetUserIDFromContext(c); ok {
			filter.UserID = authUserID
		}
	}

	entries, err := h.entryService.SearchEntries(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListEntriesResponse(entries))
}

// getEntry godoc
// @Summary Get an entry by ID
// @Tags entries
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Security BearerAuth
// @Router /entries/{id} [get]
func (h *entryHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entryID, ok := parseEntryID(c)
	if !ok {
		return
	}

	entry, err := h.entryService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// updateEntry godoc
// @Summary Update an entry
// @Description Validates and persists changes to an existing entry.
// @Tags entries
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Param entry body dto.SaveEntryRequest true "Updated entry details"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse "Validation failure"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Security BearerAuth
// @Router /entries/{id} [put]
func (h *entryHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entryID, ok := parseEntryID(c)
	if !ok {
		return
	}

	var req dto.SaveEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	// The entry must exist; its status and registration date survive the update.
	existing, err := h.entryService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	entry := req.ToDomain()
	entry.ID = existing.ID
	entry.Status = existing.Status
	entry.RegistrationDate = existing.RegistrationDate

	updated, err := h.entryService.UpdateEntry(c.Request.Context(), entry)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(updated))
}

// deleteEntry godoc
// @Summary Delete an entry
// @Tags entries
// @Param id path int true "Entry ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Security BearerAuth
// @Router /entries/{id} [delete]
func (h *entryHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entryID, ok := parseEntryID(c)
	if !ok {
		return
	}

	entry, err := h.entryService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	if err := h.entryService.DeleteEntry(c.Request.Context(), *entry); err != nil {
		respondServiceError(c, logger, err)
		return
	}

	logger.Info("Entry deleted", slog.Int64("entry_id", entryID))
	c.Status(http.StatusNoContent)
}

// updateEntryStatus godoc
// @Summary Update an entry's status
// @Description Moves an entry to PENDING, CONFIRMED or CANCELED.
// @Tags entries
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Param status body dto.UpdateEntryStatusRequest true "New status"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse "Unknown status"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Security BearerAuth
// @Router /entries/{id}/status [put]
func (h *entryHandler) updateEntryStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entryID, ok := parseEntryID(c)
	if !ok {
		return
	}

	var req dto.UpdateEntryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	entry, err := h.entryService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	if err := h.entryService.UpdateEntryStatus(c.Request.Context(), entry, domain.EntryStatus(req.Status)); err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}
