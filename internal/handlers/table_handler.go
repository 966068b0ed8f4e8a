package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dhababook/restro-backend/pkg/qrcode"
)

// TableHandler serves QR codes for dine-in tables via the external QR-code service
type TableHandler struct {
	qrClient *qrcode.Client
	menuBase string
}

// NewTableHandler creates a new TableHandler
func NewTableHandler(qrClient *qrcode.Client, menuBase string) *TableHandler {
	return &TableHandler{
		qrClient: qrClient,
		menuBase: menuBase,
	}
}

// GetTableQR handles GET /tables/:id/qr
func (h *TableHandler) GetTableQR(c *gin.Context) {
	tableID := c.Param("id")
	if tableID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Table ID is required"})
		return
	}

	menuURL := fmt.Sprintf("%s/menu?table=%s", h.menuBase, tableID)
	code, err := h.qrClient.TableQR(tableID, menuURL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch QR code"})
		return
	}

	c.JSON(http.StatusOK, code)
}
