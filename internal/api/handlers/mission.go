package handlers

import (
	"net/http"

	apperrors "space-missions-api/internal/errors"
	"space-missions-api/internal/logger"
	"space-missions-api/internal/service"

	"github.com/gin-gonic/gin"
)

// MissionHandler handles HTTP requests for missions
type MissionHandler struct {
	service service.MissionServiceInterface
}

// NewMissionHandler creates a new mission handler
func NewMissionHandler(service service.MissionServiceInterface) *MissionHandler {
	return &MissionHandler{service: service}
}

// CreateMission handles POST /missions
// @Summary Create a mission
// @Description Link an existing scientist to an existing planet
// @Tags missions
// @Accept json
// @Produce json
// @Param mission body service.CreateMissionRequest true "Mission data"
// @Success 201 {object} service.MissionResponse
// @Failure 400 {object} ValidationErrorsResponse "Validation errors"
// @Router /missions [post]
func (h *MissionHandler) CreateMission(c *gin.Context) {
	ctx := c.Request.Context()

	var req service.CreateMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WithContext(ctx).WithError(invalidBody(err)).Warn("Invalid mission payload")
		respondValidationErrors(c)
		return
	}

	mission, err := h.service.Create(ctx, &req)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Mission rejected")
		respondValidationErrors(c)
		return
	}

	c.JSON(http.StatusCreated, mission)
}

// GetMission handles GET /missions/:id
// @Summary Get mission by ID
// @Tags missions
// @Produce json
// @Param id path int true "Mission ID"
// @Success 200 {object} service.MissionResponse
// @Failure 404 {object} ErrorResponse "Mission not found"
// @Router /missions/{id} [get]
func (h *MissionHandler) GetMission(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondError(c, http.StatusNotFound, apperrors.ErrMissionNotFound)
		return
	}

	mission, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			respondError(c, http.StatusNotFound, err)
			return
		}
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, mission)
}
