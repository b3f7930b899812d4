package handlers

import (
	"net/http"

	apperrors "space-missions-api/internal/errors"
	"space-missions-api/internal/service"

	"github.com/gin-gonic/gin"
)

// PlanetHandler handles HTTP requests for planets
type PlanetHandler struct {
	service service.PlanetServiceInterface
}

// NewPlanetHandler creates a new planet handler
func NewPlanetHandler(service service.PlanetServiceInterface) *PlanetHandler {
	return &PlanetHandler{service: service}
}

// ListPlanets handles GET /planets
// @Summary List planets
// @Tags planets
// @Produce json
// @Success 200 {array} service.PlanetSummary
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /planets [get]
func (h *PlanetHandler) ListPlanets(c *gin.Context) {
	planets, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, planets)
}

// GetPlanet handles GET /planets/:id
// @Summary Get planet by ID
// @Description Get a planet with missions and each mission's scientist
// @Tags planets
// @Produce json
// @Param id path int true "Planet ID"
// @Success 200 {object} service.PlanetResponse
// @Failure 404 {object} ErrorResponse "Planet not found"
// @Router /planets/{id} [get]
func (h *PlanetHandler) GetPlanet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondError(c, http.StatusNotFound, apperrors.ErrPlanetNotFound)
		return
	}

	planet, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			respondError(c, http.StatusNotFound, err)
			return
		}
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, planet)
}

// DeletePlanet handles DELETE /planets/:id
// @Summary Delete a planet
// @Description Delete a planet and all missions to it
// @Tags planets
// @Param id path int true "Planet ID"
// @Success 204 "Planet deleted"
// @Failure 400 {object} ErrorResponse "Delete failed"
// @Failure 404 {object} ErrorResponse "Planet not found"
// @Router /planets/{id} [delete]
func (h *PlanetHandler) DeletePlanet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondError(c, http.StatusNotFound, apperrors.ErrPlanetNotFound)
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
