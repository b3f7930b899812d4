package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Home handles GET /
// @Summary Root
// @Description Empty landing response
// @Tags home
// @Success 200 "Empty body"
// @Router / [get]
func Home(c *gin.Context) {
	c.String(http.StatusOK, "")
}
