package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/davidmr-dev/remission_tracker_app/internal/core/ports/services"
	"github.com/davidmr-dev/remission_tracker_app/internal/dto"
	"github.com/davidmr-dev/remission_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to sales reports
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

func newReportingHandler(rs portssvc.ReportingSvc) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to sales reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/daily-sales", h.getDailySales)
	}
}

// getDailySales godoc
// @Summary Generate the daily sales report
// @Description Aggregates all sales in the inclusive date range into one row
// @Description per calendar date, sorted ascending. Both bounds are required.
// @Tags reports
// @Produce json
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.DailySalesReportResponse
// @Failure 400 {object} map[string]string "Missing or malformed bounds"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/daily-sales [get]
func (h *reportingHandler) getDailySales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		logger.Warn("Daily sales report requested without both bounds",
			slog.String("from", fromStr), slog.String("to", toStr))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both 'from' and 'to' query parameters are required"})
		return
	}

	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		logger.Warn("Invalid from date format", slog.String("from", fromStr), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' date format. Use YYYY-MM-DD"})
		return
	}

	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		logger.Warn("Invalid to date format", slog.String("to", toStr), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' date format. Use YYYY-MM-DD"})
		return
	}

	rows, err := h.reportingService.DailySalesReport(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to generate daily sales report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate daily sales report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDailySalesReportResponse(rows, from, to))
}
