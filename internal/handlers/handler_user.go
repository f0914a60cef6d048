package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vsilva/minhas_financas_app/internal/core/ports/services"
	"github.com/vsilva/minhas_financas_app/internal/dto"
	"github.com/vsilva/minhas_financas_app/internal/middleware"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService  portssvc.UserSvcFacade
	entryService portssvc.EntrySvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade, es portssvc.EntrySvcFacade) *userHandler {
	return &userHandler{
		userService:  us,
		entryService: es,
	}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, entryService portssvc.EntrySvcFacade) {
	h := newUserHandler(userService, entryService)

	users := rg.Group("/users")
	{
		users.GET("/:id", h.getUser)
		users.GET("/:id/balance", h.getBalance)
	}
}

// getUser godoc
// @Summary Get a user by ID
// @Description Retrieves details for a specific user by their ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *userHandler) getUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user ID"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// getBalance godoc
// @Summary Get a user's net balance
// @Description Sums the user's income entries and subtracts the expense entries.
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{id}/balance [get]
func (h *userHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user ID"})
		return
	}

	// An unknown user is a 404, not an empty balance.
	if _, err := h.userService.GetUserByID(c.Request.Context(), userID); err != nil {
		respondServiceError(c, logger, err)
		return
	}

	balance, err := h.entryService.BalanceByUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{Balance: balance})
}
