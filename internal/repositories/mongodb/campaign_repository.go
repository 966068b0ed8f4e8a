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

// CampaignRepository implements the repositories.CampaignRepository interface
type CampaignRepository struct {
	collection *mongo.Collection
}

// NewCampaignRepository creates a new CampaignRepository
func NewCampaignRepository(db *mongo.Database) repositories.CampaignRepository {
	return &CampaignRepository{
		collection: db.Collection("campaign_sends"),
	}
}

// Create appends a campaign send to the history
func (r *CampaignRepository) Create(ctx context.Context, send *models.CampaignSend) error {
	if send.CreatedAt.IsZero() {
		send.CreatedAt = time.Now()
	}
	send.UpdatedAt = time.Now()
	result, err := r.collection.InsertOne(ctx, send)
	if err != nil {
		return err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		send.ID = id
	}
	return nil
}

// FindByID finds a campaign send by ID
func (r *CampaignRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.CampaignSend, error) {
	var send models.CampaignSend
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&send)
	if err != nil {
		return nil, err
	}
	return &send, nil
}

// FindByStatus finds campaign sends by status with pagination
func (r *CampaignRepository) FindByStatus(ctx context.Context, status string, page, limit int) ([]*models.CampaignSend, error) {
	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"createdAt": -1})

	cursor, err := r.collection.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sends []*models.CampaignSend
	if err := cursor.All(ctx, &sends); err != nil {
		return nil, err
	}

	if sends == nil {
		sends = []*models.CampaignSend{}
	}

	return sends, nil
}

// FindAll finds all campaign sends with pagination, newest first
func (r *CampaignRepository) FindAll(ctx context.Context, page, limit int) ([]models.CampaignSend, error) {
	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"createdAt": -1})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sends []models.CampaignSend
	if err := cursor.All(ctx, &sends); err != nil {
		return nil, err
	}

	if sends == nil {
		sends = []models.CampaignSend{}
	}

	return sends, nil
}

// Count counts all campaign sends
func (r *CampaignRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
