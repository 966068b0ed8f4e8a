package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dhababook/restro-backend/internal/campaign"
	"github.com/dhababook/restro-backend/internal/models"
	"github.com/dhababook/restro-backend/internal/services"
)

// CampaignHandler handles campaign-related HTTP requests
type CampaignHandler struct {
	campaignService services.CampaignService
}

// NewCampaignHandler creates a new CampaignHandler
func NewCampaignHandler(campaignService services.CampaignService) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
	}
}

// scheduleRequest is a campaign form plus the target date/time
type scheduleRequest struct {
	models.CampaignForm
	ScheduledFor time.Time `json:"scheduledFor" binding:"required"`
}

// SendCampaign handles POST /campaigns/send
func (h *CampaignHandler) SendCampaign(c *gin.Context) {
	var form models.CampaignForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	send, err := h.campaignService.SendNow(c.Request.Context(), form)
	if err != nil {
		c.JSON(campaignErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, send)
}

// ScheduleCampaign handles POST /campaigns/schedule
func (h *CampaignHandler) ScheduleCampaign(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	send, err := h.campaignService.Schedule(c.Request.Context(), req.CampaignForm, req.ScheduledFor)
	if err != nil {
		c.JSON(campaignErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, send)
}

// GetCampaignByID handles GET /campaigns/:id
func (h *CampaignHandler) GetCampaignByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	send, err := h.campaignService.GetCampaignByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
		return
	}

	c.JSON(http.StatusOK, send)
}

// GetCampaigns handles GET /campaigns
func (h *CampaignHandler) GetCampaigns(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if status := c.Query("status"); status != "" {
		sends, err := h.campaignService.GetCampaignsByStatus(c.Request.Context(), status, page, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get campaigns"})
			return
		}
		c.JSON(http.StatusOK, sends)
		return
	}

	sends, err := h.campaignService.GetAllCampaigns(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get campaigns"})
		return
	}

	c.JSON(http.StatusOK, sends)
}

// GetCampaignCount handles GET /campaigns/count
func (h *CampaignHandler) GetCampaignCount(c *gin.Context) {
	count, err := h.campaignService.GetCampaignCount(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get campaign count"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// campaignErrorStatus maps engine errors onto HTTP statuses: validation
// failures are the caller's to fix, everything else is on us.
func campaignErrorStatus(err error) int {
	switch {
	case errors.Is(err, campaign.ErrEmptyName),
		errors.Is(err, campaign.ErrNameTooLong),
		errors.Is(err, campaign.ErrEmptyMessage),
		errors.Is(err, campaign.ErrMessageTooLong),
		errors.Is(err, campaign.ErrMissingScheduleDate),
		errors.Is(err, campaign.ErrInvalidScheduleTime):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
