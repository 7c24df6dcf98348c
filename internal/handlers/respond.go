package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jpriva/orders_backend/internal/apperrors"
	"github.com/jpriva/orders_backend/internal/dto"
	"github.com/jpriva/orders_backend/internal/middleware"
)

// problemType is the type URI used for all problem-details bodies.
const problemType = "about:blank"

// respondProblem writes a problem-details error body with the given status.
func respondProblem(c *gin.Context, status int, detail string) {
	c.JSON(status, dto.ProblemDetails{
		Type:   problemType,
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	})
}

// respondError maps a service error onto the problem-details contract.
// Unrecognized errors become opaque 500 responses; their details only go to
// the log.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		respondProblem(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrForbidden):
		respondProblem(c, http.StatusForbidden, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		respondProblem(c, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrInvalidState):
		respondProblem(c, http.StatusConflict, err.Error())
	default:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Unhandled error in handler",
			slog.String("error", err.Error()))
		respondProblem(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

// bindingProblem reports a request body or query binding failure.
func bindingProblem(c *gin.Context, err error) {
	respondProblem(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
}

// requesterID extracts the authenticated user ID or writes a 401.
func requesterID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondProblem(c, http.StatusUnauthorized, "Authentication required")
		return "", false
	}
	return userID, true
}
