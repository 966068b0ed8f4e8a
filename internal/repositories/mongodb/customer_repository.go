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

// CustomerRepository implements the repositories.CustomerRepository interface
type CustomerRepository struct {
	collection *mongo.Collection
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(db *mongo.Database) repositories.CustomerRepository {
	return &CustomerRepository{
		collection: db.Collection("customers"),
	}
}

// Create creates a new customer
func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = time.Now()
	result, err := r.collection.InsertOne(ctx, customer)
	if err != nil {
		return err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		customer.ID = id
	}
	return nil
}

// FindByID finds a customer by ID
func (r *CustomerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Customer, error) {
	var customer models.Customer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&customer)
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// FindByPhone finds a customer by phone number
func (r *CustomerRepository) FindByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	var customer models.Customer
	err := r.collection.FindOne(ctx, bson.M{"phone": phone}).Decode(&customer)
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// Update updates a customer
func (r *CustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	customer.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": customer.ID}, customer)
	return err
}

// Delete deletes a customer
func (r *CustomerRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// FindAll finds all customers with pagination
func (r *CustomerRepository) FindAll(ctx context.Context, page, limit int) ([]models.Customer, error) {
	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"createdAt": 1})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var customers []models.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}

	if customers == nil {
		customers = []models.Customer{}
	}

	return customers, nil
}

// FindMarketable finds every customer who has not opted out of marketing,
// in stable directory order
func (r *CustomerRepository) FindMarketable(ctx context.Context) ([]models.Customer, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": 1})

	cursor, err := r.collection.Find(ctx, bson.M{"optOut": bson.M{"$ne": true}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var customers []models.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}

	if customers == nil {
		customers = []models.Customer{}
	}

	return customers, nil
}

// IncrementOrderCounters atomically increments the order count and the
// outstanding credit balance for a customer
func (r *CustomerRepository) IncrementOrderCounters(ctx context.Context, id primitive.ObjectID, orders int, credit float64) error {
	update := bson.M{
		"$inc": bson.M{
			"totalOrders":   orders,
			"creditBalance": credit,
		},
		"$set": bson.M{
			"lastOrderAt": time.Now(),
			"updatedAt":   time.Now(),
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

// Count counts all customers
func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
