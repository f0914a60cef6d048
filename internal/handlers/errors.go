package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vsilva/minhas_financas_app/internal/apperrors"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondServiceError maps a service error kind to the transport response:
// business rule and authentication failures carry their message back with a
// 400, absent resources become a 404, everything else is a 500. ErrMissingID
// is a programmer error and is never echoed to the caller.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error) {
	var ruleErr *apperrors.BusinessRuleError
	if errors.As(err, &ruleErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: ruleErr.Message})
		return
	}

	var authErr *apperrors.AuthenticationError
	if errors.As(err, &authErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: authErr.Message})
		return
	}

	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resource not found"})
		return
	}

	logger.Error("Unhandled service error", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}
