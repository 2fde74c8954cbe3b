package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health is the handler for GET /health.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ExportSpreadsheet is the placeholder handler for GET /step8.
func (h *Handlers) ExportSpreadsheet(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Return an Excel file endpoint"})
}

// ConvertImagesToVideo is the placeholder handler for GET /step9.
func (h *Handlers) ConvertImagesToVideo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Convert images to video endpoint"})
}
