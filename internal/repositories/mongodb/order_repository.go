package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dhababook/restro-backend/internal/models"
	"github.com/dhababook/restro-backend/internal/repositories"
)

// OrderRepository implements the repositories.OrderRepository interface
type OrderRepository struct {
	collection *mongo.Collection
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db *mongo.Database) repositories.OrderRepository {
	return &OrderRepository{
		collection: db.Collection("orders"),
	}
}

// Create records an order
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	order.CreatedAt = time.Now()
	if order.PlacedAt.IsZero() {
		order.PlacedAt = order.CreatedAt
	}
	_, err := r.collection.InsertOne(ctx, order)
	return err
}

// FindByCustomerID finds orders for a customer with pagination, newest first
func (r *OrderRepository) FindByCustomerID(ctx context.Context, customerID primitive.ObjectID, page, limit int) ([]*models.Order, error) {
	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"placedAt": -1})

	cursor, err := r.collection.Find(ctx, bson.M{"customerId": customerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []*models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}

	if orders == nil {
		orders = []*models.Order{}
	}

	return orders, nil
}

// Count counts all orders
func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
