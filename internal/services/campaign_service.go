package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"

	"github.com/dhababook/restro-backend/internal/campaign"
	"github.com/dhababook/restro-backend/internal/models"
	"github.com/dhababook/restro-backend/internal/repositories"
)

// CampaignService defines the interface for campaign operations
type CampaignService interface {
	SendNow(ctx context.Context, form models.CampaignForm) (*models.CampaignSend, error)
	Schedule(ctx context.Context, form models.CampaignForm, scheduledFor time.Time) (*models.CampaignSend, error)
	GetCampaignByID(ctx context.Context, id primitive.ObjectID) (*models.CampaignSend, error)
	GetCampaignsByStatus(ctx context.Context, status string, page, limit int) ([]*models.CampaignSend, error)
	GetAllCampaigns(ctx context.Context, page, limit int) ([]models.CampaignSend, error)
	GetCampaignCount(ctx context.Context) (int64, error)
}

// Compile-time check to ensure CampaignServiceImpl implements CampaignService
var _ CampaignService = (*CampaignServiceImpl)(nil)

// CampaignServiceImpl drives the audience resolution and delivery-simulation
// engine and persists the resulting sends
type CampaignServiceImpl struct {
	engine       *campaign.Engine
	campaignRepo repositories.CampaignRepository
	customerRepo repositories.CustomerRepository
}

// NewCampaignService creates a new CampaignServiceImpl
func NewCampaignService(
	engine *campaign.Engine,
	campaignRepo repositories.CampaignRepository,
	customerRepo repositories.CustomerRepository,
) *CampaignServiceImpl {
	return &CampaignServiceImpl{
		engine:       engine,
		campaignRepo: campaignRepo,
		customerRepo: customerRepo,
	}
}

// SendNow builds and persists an immediate campaign send. The engine
// finalizes metrics and per-recipient statuses synchronously; the write to
// the campaign history is the only side effect.
func (s *CampaignServiceImpl) SendNow(ctx context.Context, form models.CampaignForm) (*models.CampaignSend, error) {
	customers, err := s.customerRepo.FindMarketable(ctx)
	if err != nil {
		slog.Error("SendNow: failed to fetch customer directory", "error", err)
		return nil, fmt.Errorf("failed to fetch customer directory: %w", err)
	}

	send, err := s.engine.BuildImmediate(form, customers, form.SelectedContacts)
	if err != nil {
		if errors.Is(err, campaign.ErrAllocationOverflow) {
			// Contract breach between synthesizer and allocator, not a user error
			slog.Error("SendNow: allocation invariant violated", "error", err, "campaign", form.Name)
		}
		return nil, err
	}

	if err := s.campaignRepo.Create(ctx, send); err != nil {
		slog.Error("SendNow: failed to persist campaign send", "error", err, "campaign", form.Name)
		return nil, fmt.Errorf("failed to save campaign send: %w", err)
	}

	slog.Info("Campaign sent",
		"campaignId", send.ID,
		"audience", send.Audience,
		"recipients", len(send.Recipients),
		"delivered", send.Metrics.Delivered,
		"failed", send.Metrics.Failed,
		"cost", send.Cost,
	)
	return send, nil
}

// Schedule builds and persists a deferred campaign send. Metrics synthesis
// and status allocation are left to the execution trigger; everything is
// stored all-pending.
func (s *CampaignServiceImpl) Schedule(ctx context.Context, form models.CampaignForm, scheduledFor time.Time) (*models.CampaignSend, error) {
	customers, err := s.customerRepo.FindMarketable(ctx)
	if err != nil {
		slog.Error("Schedule: failed to fetch customer directory", "error", err)
		return nil, fmt.Errorf("failed to fetch customer directory: %w", err)
	}

	send, err := s.engine.BuildScheduled(form, customers, form.SelectedContacts, scheduledFor)
	if err != nil {
		return nil, err
	}

	if err := s.campaignRepo.Create(ctx, send); err != nil {
		slog.Error("Schedule: failed to persist campaign send", "error", err, "campaign", form.Name)
		return nil, fmt.Errorf("failed to save campaign send: %w", err)
	}

	slog.Info("Campaign scheduled",
		"campaignId", send.ID,
		"scheduledFor", scheduledFor,
		"recipients", len(send.Recipients),
		"reservedCost", send.Cost,
	)
	return send, nil
}

// GetCampaignByID retrieves a campaign send by ID
func (s *CampaignServiceImpl) GetCampaignByID(ctx context.Context, id primitive.ObjectID) (*models.CampaignSend, error) {
	return s.campaignRepo.FindByID(ctx, id)
}

// GetCampaignsByStatus retrieves campaign sends by status with pagination
func (s *CampaignServiceImpl) GetCampaignsByStatus(ctx context.Context, status string, page, limit int) ([]*models.CampaignSend, error) {
	return s.campaignRepo.FindByStatus(ctx, status, page, limit)
}

// GetAllCampaigns retrieves all campaign sends with pagination
func (s *CampaignServiceImpl) GetAllCampaigns(ctx context.Context, page, limit int) ([]models.CampaignSend, error) {
	return s.campaignRepo.FindAll(ctx, page, limit)
}

// GetCampaignCount gets the total number of campaign sends
func (s *CampaignServiceImpl) GetCampaignCount(ctx context.Context) (int64, error) {
	return s.campaignRepo.Count(ctx)
}
