package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dhababook/restro-backend/internal/campaign"
	"github.com/dhababook/restro-backend/internal/models"
)

type fakeCustomerRepo struct {
	customers []models.Customer
}

func (f *fakeCustomerRepo) Create(ctx context.Context, c *models.Customer) error { return nil }
func (f *fakeCustomerRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Customer, error) {
	for i := range f.customers {
		if f.customers[i].ID == id {
			return &f.customers[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}
func (f *fakeCustomerRepo) FindByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	return nil, mongo.ErrNoDocuments
}
func (f *fakeCustomerRepo) Update(ctx context.Context, c *models.Customer) error   { return nil }
func (f *fakeCustomerRepo) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }
func (f *fakeCustomerRepo) FindAll(ctx context.Context, page, limit int) ([]models.Customer, error) {
	return f.customers, nil
}
func (f *fakeCustomerRepo) FindMarketable(ctx context.Context) ([]models.Customer, error) {
	marketable := make([]models.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		if !c.OptOut {
			marketable = append(marketable, c)
		}
	}
	return marketable, nil
}
func (f *fakeCustomerRepo) IncrementOrderCounters(ctx context.Context, id primitive.ObjectID, orders int, credit float64) error {
	return nil
}
func (f *fakeCustomerRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.customers)), nil
}

type fakeCampaignRepo struct {
	created []*models.CampaignSend
}

func (f *fakeCampaignRepo) Create(ctx context.Context, send *models.CampaignSend) error {
	send.ID = primitive.NewObjectID()
	f.created = append(f.created, send)
	return nil
}
func (f *fakeCampaignRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.CampaignSend, error) {
	for _, s := range f.created {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}
func (f *fakeCampaignRepo) FindByStatus(ctx context.Context, status string, page, limit int) ([]*models.CampaignSend, error) {
	return nil, nil
}
func (f *fakeCampaignRepo) FindAll(ctx context.Context, page, limit int) ([]models.CampaignSend, error) {
	return nil, nil
}
func (f *fakeCampaignRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.created)), nil
}

func testCustomers() []models.Customer {
	return []models.Customer{
		{ID: primitive.NewObjectID(), Name: "Asha", Phone: "111", TotalOrders: 0},
		{ID: primitive.NewObjectID(), Name: "Bilal", Phone: "222", TotalOrders: 5},
		{ID: primitive.NewObjectID(), Name: "Chetan", Phone: "333", TotalOrders: 2, OptOut: true},
	}
}

func newTestService(customers []models.Customer) (*CampaignServiceImpl, *fakeCampaignRepo) {
	engine := campaign.NewEngine(time.Now, campaign.NewMathRandSource(1), 0.55)
	campaignRepo := &fakeCampaignRepo{}
	svc := NewCampaignService(engine, campaignRepo, &fakeCustomerRepo{customers: customers})
	return svc, campaignRepo
}

func TestSendNowExcludesOptedOutCustomers(t *testing.T) {
	svc, repo := newTestService(testCustomers())

	send, err := svc.SendNow(context.Background(), models.CampaignForm{
		Name:     "Diwali Special",
		Message:  "Festive menu is live!",
		Audience: models.SegmentAll,
	})
	require.NoError(t, err)

	// Chetan opted out and never reaches the engine.
	assert.Len(t, send.Recipients, 2)
	require.Len(t, repo.created, 1)
	assert.Equal(t, send, repo.created[0])
	require.NotNil(t, send.SentAt)
}

func TestSendNowValidationFailsBeforePersisting(t *testing.T) {
	svc, repo := newTestService(testCustomers())

	_, err := svc.SendNow(context.Background(), models.CampaignForm{Message: "no name"})
	assert.ErrorIs(t, err, campaign.ErrEmptyName)
	assert.Empty(t, repo.created)
}

func TestSchedulePersistsAllPending(t *testing.T) {
	svc, repo := newTestService(testCustomers())

	send, err := svc.Schedule(context.Background(), models.CampaignForm{
		Name:     "Weekday Lunch",
		Message:  "Thali at 99 only, Mon-Fri.",
		Audience: models.SegmentRepeat,
	}, time.Now().Add(24*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, models.CampaignStatusPending, send.Status)
	assert.Nil(t, send.SentAt)
	for _, r := range send.Recipients {
		assert.Equal(t, models.RecipientStatusPending, r.Status)
	}
	assert.Len(t, repo.created, 1)
}
