package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	apperrors "space-missions-api/internal/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"Scientist not found"`
}

// ValidationErrorsResponse is returned for every rejected create or update.
// Field details are logged but never sent to the caller.
type ValidationErrorsResponse struct {
	Errors []string `json:"errors" example:"validation errors"`
}

var validationErrorsBody = ValidationErrorsResponse{Errors: []string{"validation errors"}}

func respondValidationErrors(c *gin.Context) {
	c.JSON(http.StatusBadRequest, validationErrorsBody)
}

// invalidBody tags a binding failure so logs can match on ErrInvalidRequestBody
func invalidBody(err error) error {
	return fmt.Errorf("%w: %v", apperrors.ErrInvalidRequestBody, err)
}

func respondError(c *gin.Context, status int, err error) {
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// parseID reads the :id path parameter. Anything that is not an integer
// cannot name a stored row.
func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}
