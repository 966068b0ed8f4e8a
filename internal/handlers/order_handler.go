package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dhababook/restro-backend/internal/models"
	"github.com/dhababook/restro-backend/internal/services"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *services.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// RecordOrder handles POST /orders
func (h *OrderHandler) RecordOrder(c *gin.Context) {
	var request struct {
		CustomerID   string    `json:"customerId" binding:"required"`
		Amount       float64   `json:"amount" binding:"required"`
		CreditAmount float64   `json:"creditAmount"`
		PlacedAt     time.Time `json:"placedAt"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customerID, err := primitive.ObjectIDFromHex(request.CustomerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID format"})
		return
	}

	order := &models.Order{
		CustomerID:   customerID,
		Amount:       request.Amount,
		CreditAmount: request.CreditAmount,
		PlacedAt:     request.PlacedAt,
	}
	if err := h.orderService.RecordOrder(c.Request.Context(), order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetOrdersByCustomer handles GET /orders/customer/:id
func (h *OrderHandler) GetOrdersByCustomer(c *gin.Context) {
	customerID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	orders, err := h.orderService.GetOrdersByCustomer(c.Request.Context(), customerID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrderCount handles GET /orders/count
func (h *OrderHandler) GetOrderCount(c *gin.Context) {
	count, err := h.orderService.GetOrderCount(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get order count"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
