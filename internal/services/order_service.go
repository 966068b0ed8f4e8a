package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"

	"github.com/dhababook/restro-backend/internal/models"
	"github.com/dhababook/restro-backend/internal/repositories"
	"github.com/dhababook/restro-backend/internal/utils"
)

// OrderService keeps the per-customer counters the audience segments derive
// from. The full order lifecycle lives in the external order store; the back
// office only records the order and bumps the counters.
type OrderService struct {
	orderRepo    repositories.OrderRepository
	customerRepo repositories.CustomerRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo repositories.OrderRepository, customerRepo repositories.CustomerRepository) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
	}
}

// RecordOrder stores the order and atomically increments the customer's
// order count and outstanding credit balance (udhaar)
func (s *OrderService) RecordOrder(ctx context.Context, order *models.Order) error {
	customer, err := s.customerRepo.FindByID(ctx, order.CustomerID)
	if err != nil {
		slog.Error("RecordOrder: customer not found", "error", err, "customerId", order.CustomerID)
		return fmt.Errorf("customer not found for order: %w", err)
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		slog.Error("RecordOrder: failed to store order", "error", err, "customerId", order.CustomerID)
		return fmt.Errorf("failed to store order: %w", err)
	}

	if err := s.customerRepo.IncrementOrderCounters(ctx, order.CustomerID, 1, order.CreditAmount); err != nil {
		slog.Error("RecordOrder: failed to increment customer counters", "error", err, "customerId", order.CustomerID)
		return fmt.Errorf("failed to increment customer counters: %w", err)
	}

	slog.Info("Order recorded",
		"customerId", order.CustomerID,
		"phone", utils.MaskPhone(customer.Phone),
		"amount", order.Amount,
		"creditAmount", order.CreditAmount,
	)
	return nil
}

// GetOrdersByCustomer retrieves orders for a customer with pagination
func (s *OrderService) GetOrdersByCustomer(ctx context.Context, customerID primitive.ObjectID, page, limit int) ([]*models.Order, error) {
	return s.orderRepo.FindByCustomerID(ctx, customerID, page, limit)
}

// GetOrderCount gets the total number of recorded orders
func (s *OrderService) GetOrderCount(ctx context.Context) (int64, error) {
	return s.orderRepo.Count(ctx)
}
