package qrcode

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Client talks to the external QR-code service that renders table menu codes
type Client struct {
	BaseURL string
	APIKey  string
	MockAPI bool
	client  *http.Client
}

// TableCode is a rendered QR code for one dine-in table
type TableCode struct {
	Ref       string    `json:"ref"`
	TableID   string    `json:"tableId"`
	MenuURL   string    `json:"menuUrl"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewClient creates a new QR-code service client
func NewClient(baseURL, apiKey string, mockAPI bool) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		MockAPI: mockAPI,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// TableQR returns the QR code for a table's dine-in menu
func (c *Client) TableQR(tableID, menuURL string) (*TableCode, error) {
	if c.MockAPI {
		return c.mockTableQR(tableID, menuURL)
	}

	reqURL := fmt.Sprintf("%s/v1/codes?table=%s&target=%s",
		c.BaseURL, url.QueryEscape(tableID), url.QueryEscape(menuURL))
	req, err := http.NewRequest(http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("qr code service returned " + resp.Status)
	}

	var code TableCode
	if err := json.NewDecoder(resp.Body).Decode(&code); err != nil {
		return nil, err
	}
	return &code, nil
}

// mockTableQR fabricates a response for local development
func (c *Client) mockTableQR(tableID, menuURL string) (*TableCode, error) {
	ref := uuid.NewString()
	return &TableCode{
		Ref:       ref,
		TableID:   tableID,
		MenuURL:   menuURL,
		ImageURL:  fmt.Sprintf("%s/mock/%s.png", c.BaseURL, ref),
		CreatedAt: time.Now(),
	}, nil
}
