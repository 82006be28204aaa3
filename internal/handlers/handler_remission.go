package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/davidmr-dev/remission_tracker_app/internal/apperrors"
	portssvc "github.com/davidmr-dev/remission_tracker_app/internal/core/ports/services"
	"github.com/davidmr-dev/remission_tracker_app/internal/core/services"
	"github.com/davidmr-dev/remission_tracker_app/internal/dto"
	"github.com/davidmr-dev/remission_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// remissionHandler handles HTTP requests related to remissions, their sales
// and credit assignments, the closing transition and the summary read.
type remissionHandler struct {
	remissionService portssvc.RemissionSvcFacade
}

func newRemissionHandler(rs portssvc.RemissionSvcFacade) *remissionHandler {
	return &remissionHandler{remissionService: rs}
}

// registerRemissionRoutes registers routes related to remissions
func registerRemissionRoutes(rg *gin.RouterGroup, remissionService portssvc.RemissionSvcFacade) {
	h := newRemissionHandler(remissionService)

	remissions := rg.Group("/remissions")
	{
		remissions.POST("", h.createRemission)
		remissions.GET("/:remissionID", h.getRemission)
		remissions.DELETE("/:remissionID", h.deleteRemission)

		remissions.POST("/:remissionID/sales", h.addSale)
		remissions.GET("/:remissionID/sales", h.listSales)
		remissions.POST("/:remissionID/credits", h.addCredit)
		remissions.GET("/:remissionID/credits", h.listCredits)

		remissions.POST("/:remissionID/close", h.closeRemission)
		remissions.GET("/:remissionID/summary", h.getSummary)
	}
}

// createRemission godoc
// @Summary Create a remission under an order
// @Tags remissions
// @Accept json
// @Produce json
// @Param remission body dto.CreateRemissionRequest true "Remission data"
// @Success 201 {object} dto.RemissionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 409 {object} map[string]string "Folio already exists"
// @Router /remissions [post]
func (h *remissionHandler) createRemission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateRemissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid create remission request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	remission, err := h.remissionService.CreateRemission(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "A remission with this folio already exists"})
		default:
			logger.Error("Failed to create remission", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create remission"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToRemissionResponse(remission))
}

// getRemission godoc
// @Summary Get a remission by ID
// @Tags remissions
// @Produce json
// @Param remissionID path string true "Remission ID"
// @Success 200 {object} dto.RemissionResponse
// @Failure 404 {object} map[string]string "Remission not found"
// @Router /remissions/{remissionID} [get]
func (h *remissionHandler) getRemission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	remissionID := c.Param("remissionID")

	remission, err := h.remissionService.GetRemissionByID(c.Request.Context(), remissionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Remission not found"})
			return
		}
		logger.Error("Failed to get remission", slog.String("remission_id", remissionID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get remission"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRemissionResponse(remission))
}

// deleteRemission godoc
// @Summary Delete a remission and its sales/credits
// @Tags remissions
// @Param remissionID path string true "Remission ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Remission not found"
// @Router /remissions/{remissionID} [delete]
func (h *remissionHandler) deleteRemission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	remissionID := c.Param("remissionID")

	if err := h.remissionService.DeleteRemission(c.Request.Context(), remissionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Remission not found"})
			return
		}
		logger.Error("Failed to delete remission", slog.String("remission_id", remissionID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete remission"})
		return
	}

	c.Status(http.StatusNoContent)
}

// addSale godoc
// @Summary Record a sale under a remission
// @Tags remissions
// @Accept json
// @Produce json
// @Param remissionID path string true "Remission ID"
// @Param sale body dto.CreateSaleRequest true "Sale data"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} map[string]string "Invalid input or remission closed"
// @Failure 404 {object} map[string]string "Remission not found"
// @Router /remissions/{remissionID}/sales [post]
func (h *remissionHandler) addSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	remissionID := c.Param("remissionID")

	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid create sale request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	sale, err := h.remissionService.AddSale(c.Request.Context(), remissionID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Remission not found"})
		case errors.Is(err, services.ErrRemissionClosed), errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to add sale", slog.String("remission_id", remissionID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add sale"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// listSales godoc
// @Summary List the sales of a remission
// @Tags remissions
// @Produce json
// @Param remissionID path string true "Remission ID"
// @Success 200 {array} dto.SaleResponse
// @Failure 404 {object} map[string]string "Remission not found"
// @Router /remissions/{remissionID}/sales [get]
func (h *remissionHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	remissionID := c.Param("remissionID")

	sales, err := h.remissionService.ListSales(c.Request.Context(), remissionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Remission not found"})
			return
		}
		logger.Error("Failed to list sales", slog.String("remission_id", remissionID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sales"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleResponses(sales))
}

// addCredit godoc
// @Summary Assign a credit to a remission
// @Tags remissions
// @Accept json
// @Produce json
// @Param remissionID path string true "Remission ID"
// @Param credit body dto.CreateCreditRequest true "Credit data"
// @Success 201 {object} dto.CreditResponse
// @Failure 400 {object} map[string]string "Invalid input or remission closed"
// @Failure 404 {object} map[string]string "Remission not found"
// @Router /remissions/{remissionID}/credits [post]
func (h *remissionHandler) addCredit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	remissionID := c.Param("remissionID")

	var req dto.CreateCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid create credit request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	credit, err := h.remissionService.AddCredit(c.Request.Context(), remissionID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Remission not found"})
		case errors.Is(err, services.ErrRemissionClosed), errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to add credit", slog.String("remission_id", remissionID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add credit"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToCreditResponse(credit))
}

// listCredits godoc
// @Summary List the credit assignments of a remission
// @Tags remissions
// @Produce json
// @Param remissionID path string true "Remission ID"
// @Success 200 {array} dto.CreditResponse
// @Failure 404 {object} map[string]string "Remission not found"
// @Router /remissions/{remissionID}/credits [get]
func (h *remissionHandler) listCredits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	remissionID := c.Param("remissionID")

	credits, err := h.remissionService.ListCredits(c.Request.Context(), remissionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Remission not found"})
			return
		}
		logger.Error("Failed to list credits", slog.String("remission_id", remissionID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list credits"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCreditResponses(credits))
}

// closeRemission godoc
// @Summary Close a remission
// @Description Transitions the remission from open to closed once the closing
// @Description rules pass: at least one sale, and credits not exceeding sales.
// @Tags remissions
// @Produce json
// @Param remissionID path string true "Remission ID"
// @Success 200 {object} map[string]string "Remission closed"
// @Failure 400 {object} map[string]string "A closing rule failed"
// @Failure 404 {object} map[string]string "Remission not found"
// @Failure 409 {object} map[string]string "Remission already closed"
// @Router /remissions/{remissionID}/close [post]
func (h *remissionHandler) closeRemission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	remissionID := c.Param("remissionID")

	err := h.remissionService.CloseRemission(c.Request.Context(), remissionID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Remission not found"})
		case errors.Is(err, services.ErrAlreadyClosed):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrEmptySaleSet), errors.Is(err, services.ErrCreditsExceedSales):
			logger.Warn("Close rejected by business rule", slog.String("remission_id", remissionID), slog.String("reason", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to close remission", slog.String("remission_id", remissionID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close remission"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Remission closed"})
}

// getSummary godoc
// @Summary Get the financial summary of a remission
// @Tags remissions
// @Produce json
// @Param remissionID path string true "Remission ID"
// @Success 200 {object} dto.RemissionSummaryResponse
// @Failure 404 {object} map[string]string "Remission not found"
// @Router /remissions/{remissionID}/summary [get]
func (h *remissionHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	remissionID := c.Param("remissionID")

	summary, err := h.remissionService.SummarizeRemission(c.Request.Context(), remissionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Remission not found"})
			return
		}
		logger.Error("Failed to summarize remission", slog.String("remission_id", remissionID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to summarize remission"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRemissionSummaryResponse(*summary))
}
