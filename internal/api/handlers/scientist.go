package handlers

import (
	"net/http"

	apperrors "space-missions-api/internal/errors"
	"space-missions-api/internal/logger"
	"space-missions-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ScientistHandler handles HTTP requests for scientists
type ScientistHandler struct {
	service service.ScientistServiceInterface
}

// NewScientistHandler creates a new scientist handler
func NewScientistHandler(service service.ScientistServiceInterface) *ScientistHandler {
	return &ScientistHandler{service: service}
}

// ListScientists handles GET /scientists
// @Summary List scientists
// @Description List every scientist without missions
// @Tags scientists
// @Produce json
// @Success 200 {array} service.ScientistSummary "Scientists ordered by id"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /scientists [get]
func (h *ScientistHandler) ListScientists(c *gin.Context) {
	scientists, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, scientists)
}

// GetScientist handles GET /scientists/:id
// @Summary Get scientist by ID
// @Description Get a scientist with missions and each mission's planet
// @Tags scientists
// @Produce json
// @Param id path int true "Scientist ID"
// @Success 200 {object} service.ScientistResponse
// @Failure 404 {object} ErrorResponse "Scientist not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /scientists/{id} [get]
func (h *ScientistHandler) GetScientist(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondError(c, http.StatusNotFound, apperrors.ErrScientistNotFound)
		return
	}

	scientist, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			respondError(c, http.StatusNotFound, err)
			return
		}
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, scientist)
}

// CreateScientist handles POST /scientists
// @Summary Create a scientist
// @Tags scientists
// @Accept json
// @Produce json
// @Param scientist body service.CreateScientistRequest true "Scientist data"
// @Success 201 {object} service.ScientistResponse
// @Failure 400 {object} ValidationErrorsResponse "Validation errors"
// @Router /scientists [post]
func (h *ScientistHandler) CreateScientist(c *gin.Context) {
	ctx := c.Request.Context()

	var req service.CreateScientistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WithContext(ctx).WithError(invalidBody(err)).Warn("Invalid scientist payload")
		respondValidationErrors(c)
		return
	}

	scientist, err := h.service.Create(ctx, &req)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Scientist rejected")
		respondValidationErrors(c)
		return
	}

	c.JSON(http.StatusCreated, scientist)
}

// UpdateScientist handles PATCH /scientists/:id
// @Summary Update a scientist
// @Description Apply only the fields present in the body
// @Tags scientists
// @Accept json
// @Produce json
// @Param id path int true "Scientist ID"
// @Param scientist body service.UpdateScientistRequest true "Fields to change"
// @Success 202 {object} service.ScientistResponse
// @Failure 400 {object} ValidationErrorsResponse "Validation errors"
// @Failure 404 {object} ErrorResponse "Scientist not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /scientists/{id} [patch]
func (h *ScientistHandler) UpdateScientist(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c)
	if !ok {
		respondError(c, http.StatusNotFound, apperrors.ErrScientistNotFound)
		return
	}

	var req service.UpdateScientistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// An unknown id answers 404 whatever the body holds
		if existsErr := h.service.Exists(ctx, id); existsErr != nil {
			if apperrors.IsNotFound(existsErr) {
				respondError(c, http.StatusNotFound, existsErr)
				return
			}
			respondError(c, http.StatusInternalServerError, existsErr)
			return
		}
		logger.WithContext(ctx).WithError(invalidBody(err)).Warn("Invalid scientist payload")
		respondValidationErrors(c)
		return
	}

	scientist, err := h.service.Update(ctx, id, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			respondError(c, http.StatusNotFound, err)
			return
		}
		logger.WithContext(ctx).WithError(err).WithField("scientist_id", id).Warn("Scientist update rejected")
		respondValidationErrors(c)
		return
	}

	c.JSON(http.StatusAccepted, scientist)
}

// DeleteScientist handles DELETE /scientists/:id
// @Summary Delete a scientist
// @Description Delete a scientist and all of their missions
// @Tags scientists
// @Param id path int true "Scientist ID"
// @Success 204 "Scientist deleted"
// @Failure 400 {object} ErrorResponse "Delete failed"
// @Failure 404 {object} ErrorResponse "Scientist not found"
// @Router /scientists/{id} [delete]
func (h *ScientistHandler) DeleteScientist(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondError(c, http.StatusNotFound, apperrors.ErrScientistNotFound)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if apperrors.IsNotFound(err) {
			respondError(c, http.StatusNotFound, err)
			return
		}
		respondError(c, http.StatusBadRequest, err)
		return
	}

	c.Status(http.StatusNoContent)
}
