package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dhababook/restro-backend/internal/models"
)

// CustomerRepository defines the interface for customer directory operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Customer, error)
	FindByPhone(ctx context.Context, phone string) (*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	FindAll(ctx context.Context, page, limit int) ([]models.Customer, error)
	// FindMarketable returns every customer who has not opted out of
	// marketing messages, in directory order.
	FindMarketable(ctx context.Context) ([]models.Customer, error)
	// IncrementOrderCounters atomically bumps the counters the audience
	// segments derive from.
	IncrementOrderCounters(ctx context.Context, id primitive.ObjectID, orders int, credit float64) error
	Count(ctx context.Context) (int64, error)
}

// CampaignRepository defines the interface for campaign send history operations
type CampaignRepository interface {
	Create(ctx context.Context, send *models.CampaignSend) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.CampaignSend, error)
	FindByStatus(ctx context.Context, status string, page, limit int) ([]*models.CampaignSend, error)
	FindAll(ctx context.Context, page, limit int) ([]models.CampaignSend, error)
	Count(ctx context.Context) (int64, error)
}

// OrderRepository defines the interface for order record operations
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByCustomerID(ctx context.Context, customerID primitive.ObjectID, page, limit int) ([]*models.Order, error)
	Count(ctx context.Context) (int64, error)
}

// AdminUserRepository defines the interface for staff account operations
type AdminUserRepository interface {
	Create(ctx context.Context, adminUser *models.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error)
	Update(ctx context.Context, adminUser *models.AdminUser) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
