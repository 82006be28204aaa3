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

// orderHandler handles HTTP requests related to orders
type orderHandler struct {
	orderService     portssvc.OrderSvcFacade
	remissionService portssvc.RemissionSvcFacade
}

func newOrderHandler(os portssvc.OrderSvcFacade, rs portssvc.RemissionSvcFacade) *orderHandler {
	return &orderHandler{orderService: os, remissionService: rs}
}

// registerOrderRoutes registers routes related to orders
func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade, remissionService portssvc.RemissionSvcFacade) {
	h := newOrderHandler(orderService, remissionService)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("", h.listOrders)
		orders.GET("/:orderID", h.getOrder)
		orders.DELETE("/:orderID", h.deleteOrder)
		orders.GET("/:orderID/remissions", h.listOrderRemissions)
	}
}

// createOrder godoc
// @Summary Create an order
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderRequest true "Order data"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 409 {object} map[string]string "Folio already exists"
// @Router /orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid create order request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "An order with this folio already exists"})
		case errors.Is(err, services.ErrCustomerInactive):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create order", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// listOrders godoc
// @Summary List orders
// @Tags orders
// @Produce json
// @Success 200 {array} dto.OrderResponse
// @Router /orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	orders, err := h.orderService.ListOrders(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list orders", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponses(orders))
}

// getOrder godoc
// @Summary Get an order by ID
// @Tags orders
// @Produce json
// @Param orderID path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} map[string]string "Order not found"
// @Router /orders/{orderID} [get]
func (h *orderHandler) getOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("orderID")

	order, err := h.orderService.GetOrderByID(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		logger.Error("Failed to get order", slog.String("order_id", orderID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get order"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// deleteOrder godoc
// @Summary Delete an order and its remissions
// @Tags orders
// @Param orderID path string true "Order ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Order not found"
// @Router /orders/{orderID} [delete]
func (h *orderHandler) deleteOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("orderID")

	if err := h.orderService.DeleteOrder(c.Request.Context(), orderID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		logger.Error("Failed to delete order", slog.String("order_id", orderID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}

	c.Status(http.StatusNoContent)
}

// listOrderRemissions godoc
// @Summary List the remissions of an order
// @Tags orders
// @Produce json
// @Param orderID path string true "Order ID"
// @Success 200 {array} dto.RemissionResponse
// @Router /orders/{orderID}/remissions [get]
func (h *orderHandler) listOrderRemissions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("orderID")

	remissions, err := h.remissionService.ListRemissionsByOrder(c.Request.Context(), orderID)
	if err != nil {
		logger.Error("Failed to list remissions", slog.String("order_id", orderID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list remissions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRemissionResponses(remissions))
}
