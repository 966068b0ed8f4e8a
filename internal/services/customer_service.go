package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"

	"github.com/dhababook/restro-backend/internal/models"
	"github.com/dhababook/restro-backend/internal/repositories"
	"github.com/dhababook/restro-backend/internal/utils"
)

// CustomerService handles customer directory business logic
type CustomerService struct {
	customerRepo repositories.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo repositories.CustomerRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
	}
}

// GetCustomerByID retrieves a customer by ID
func (s *CustomerService) GetCustomerByID(ctx context.Context, id primitive.ObjectID) (*models.Customer, error) {
	return s.customerRepo.FindByID(ctx, id)
}

// GetCustomerByPhone retrieves a customer by phone number
func (s *CustomerService) GetCustomerByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	return s.customerRepo.FindByPhone(ctx, phone)
}

// GetAllCustomers retrieves all customers with pagination
func (s *CustomerService) GetAllCustomers(ctx context.Context, page, limit int) ([]models.Customer, error) {
	return s.customerRepo.FindAll(ctx, page, limit)
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = time.Now()
	return s.customerRepo.Create(ctx, customer)
}

// UpdateCustomer updates a customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, customer *models.Customer) error {
	customer.UpdatedAt = time.Now()
	return s.customerRepo.Update(ctx, customer)
}

// DeleteCustomer deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id primitive.ObjectID) error {
	return s.customerRepo.Delete(ctx, id)
}

// OptOut marks a customer as opted out of marketing messages. Opted-out
// customers are excluded from every future audience resolution.
func (s *CustomerService) OptOut(ctx context.Context, id primitive.ObjectID) error {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	customer.OptOut = true
	customer.OptOutDate = time.Now()
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return err
	}

	slog.Info("Customer opted out of marketing", "customerId", id, "phone", utils.MaskPhone(customer.Phone))
	return nil
}

// GetCustomerCount gets the total number of customers
func (s *CustomerService) GetCustomerCount(ctx context.Context) (int64, error) {
	return s.customerRepo.Count(ctx)
}
