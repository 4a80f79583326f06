package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/tracker-go/pkg/response"
)

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} response.StatusResponse
// @Router /api/health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.StatusResponse{Status: "ok"})
}
