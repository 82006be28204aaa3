package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHome godoc
// @Summary Health-style hello endpoint
// @Tags example
// @Produce plain
// @Success 200 {string} string "hello"
// @Router /example/helloworld [get]
func GetHome(c *gin.Context) {
	c.String(http.StatusOK, "hello")
}
