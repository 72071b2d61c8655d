package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ricewise/ricewise/internal/domain/models"
	"github.com/ricewise/ricewise/internal/service/sales"
)

// SalesHandler serves the sales record endpoints.
type SalesHandler struct {
	svc    *sales.Service
	logger *zap.Logger
}

// NewSalesHandler constructs the HTTP handler adapter.
func NewSalesHandler(svc *sales.Service, logger *zap.Logger) *SalesHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SalesHandler{svc: svc, logger: logger}
}

// Submit stores a new sales entry for the caller.
func (h *SalesHandler) Submit(c *gin.Context) {
	var in models.SalesInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("invalid sales payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, err := h.svc.Submit(c.Request.Context(), callerID(c), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Sales data added successfully",
		"data":    record,
	})
}

// List returns the caller's history narrowed by the time filter query.
func (h *SalesHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.List(c.Request.Context(), callerID(c), timeFilterFromQuery(c)))
}

// Delete removes one of the caller's records.
func (h *SalesHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"), callerID(c))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "sales record not found"})
			return
		}
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sales data deleted successfully"})
}

// AvailableYears lists the distinct years in the caller's history.
func (h *SalesHandler) AvailableYears(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"years": h.svc.AvailableYears(c.Request.Context(), callerID(c))})
}

// Defaults returns the latest known market-analysis inputs so forms can be
// pre-filled. Null fields signal an empty history.
func (h *SalesHandler) Defaults(c *gin.Context) {
	defaults, ok := h.svc.Defaults(c.Request.Context(), callerID(c),
		intQuery(c, "year"), intQuery(c, "month"))
	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"population":       nil,
			"avg_consumption":  nil,
			"purchasing_power": nil,
			"competitors":      nil,
			"customer_demand":  nil,
		})
		return
	}
	c.JSON(http.StatusOK, defaults)
}
