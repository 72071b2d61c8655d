package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ricewise/ricewise/internal/domain/models"
	"github.com/ricewise/ricewise/internal/service/inventory"
)

// InventoryHandler serves the retailer stock listing endpoints and the
// consumer browse view.
type InventoryHandler struct {
	svc    *inventory.Service
	logger *zap.Logger
}

// NewInventoryHandler constructs the HTTP handler adapter.
func NewInventoryHandler(svc *inventory.Service, logger *zap.Logger) *InventoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryHandler{svc: svc, logger: logger}
}

// Create stores a new listing for the calling retailer.
func (h *InventoryHandler) Create(c *gin.Context) {
	var in models.InventoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("invalid inventory payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, err := h.svc.Create(c.Request.Context(), callerID(c), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// List returns the calling retailer's listings with optional filters.
func (h *InventoryHandler) List(c *gin.Context) {
	filter := models.InventoryFilter{
		Date:     c.Query("date"),
		From:     c.Query("from"),
		To:       c.Query("to"),
		Variety:  c.Query("variety"),
		MinPrice: floatQuery(c, "min_price"),
		MaxPrice: floatQuery(c, "max_price"),
	}
	records, err := h.svc.List(c.Request.Context(), callerID(c), filter)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// Get fetches a single listing owned by the calling retailer.
func (h *InventoryHandler) Get(c *gin.Context) {
	record, err := h.svc.Get(c.Request.Context(), c.Param("id"), callerID(c))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "inventory record not found"})
			return
		}
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// Update applies a partial edit to one of the caller's listings.
func (h *InventoryHandler) Update(c *gin.Context) {
	var u models.InventoryUpdate
	if err := c.ShouldBindJSON(&u); err != nil {
		h.logger.Warn("invalid inventory update payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, err := h.svc.Update(c.Request.Context(), c.Param("id"), callerID(c), u)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "inventory record not found"})
			return
		}
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// Delete removes one of the caller's listings.
func (h *InventoryHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), callerID(c)); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "inventory record not found"})
			return
		}
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory deleted successfully"})
}

// Browse serves the cross-retailer consumer view. Latest defaults to true so
// consumers see each retailer's freshest listing per variety.
func (h *InventoryHandler) Browse(c *gin.Context) {
	latest := true
	if v, err := strconv.Atoi(c.Query("latest")); err == nil {
		latest = v != 0
	}
	filter := models.InventoryBrowseFilter{
		Latest:     latest,
		Date:       c.Query("date"),
		Variety:    c.Query("variety"),
		MinPrice:   floatQuery(c, "min_price"),
		MaxPrice:   floatQuery(c, "max_price"),
		RetailerID: c.Query("retailer_id"),
	}
	records, err := h.svc.Browse(c.Request.Context(), filter)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func floatQuery(c *gin.Context, name string) *float64 {
	v, err := strconv.ParseFloat(c.Query(name), 64)
	if err != nil {
		return nil
	}
	return &v
}
