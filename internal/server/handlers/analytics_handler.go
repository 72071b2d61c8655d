package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ricewise/ricewise/internal/domain/models"
	"github.com/ricewise/ricewise/internal/service/analytics"
)

// AnalyticsHandler serves the dashboard analytics endpoints.
type AnalyticsHandler struct {
	svc    *analytics.Service
	logger *zap.Logger
}

// NewAnalyticsHandler constructs the HTTP handler adapter.
func NewAnalyticsHandler(svc *analytics.Service, logger *zap.Logger) *AnalyticsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsHandler{svc: svc, logger: logger}
}

// Summary returns totals and chart buckets for the filtered history.
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	summary := h.svc.Summary(c.Request.Context(), callerID(c), timeFilterFromQuery(c), c.Query("period"))
	c.JSON(http.StatusOK, summary)
}

// Trends returns regression slopes, moving averages and seasonality views.
func (h *AnalyticsHandler) Trends(c *gin.Context) {
	report, err := h.svc.Trends(c.Request.Context(), callerID(c), timeFilterFromQuery(c))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Correlations returns pairwise Pearson coefficients with interpretations.
func (h *AnalyticsHandler) Correlations(c *gin.Context) {
	report, err := h.svc.Correlations(c.Request.Context(), callerID(c), timeFilterFromQuery(c))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// MarketComparison buckets the history into population bands.
func (h *AnalyticsHandler) MarketComparison(c *gin.Context) {
	comparison, err := h.svc.MarketComparison(c.Request.Context(), callerID(c), timeFilterFromQuery(c))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, comparison)
}

// DataQuality scores record completeness.
func (h *AnalyticsHandler) DataQuality(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.DataQuality(c.Request.Context(), callerID(c), timeFilterFromQuery(c)))
}

type forecastRequest struct {
	Weeks int `json:"weeks"`
}

// Forecast projects volumes ahead. The body is optional; an absent or empty
// body selects the default horizon.
func (h *AnalyticsHandler) Forecast(c *gin.Context) {
	var req forecastRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("invalid forecast payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	report, err := h.svc.Forecast(c.Request.Context(), callerID(c), req.Weeks)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Progress evaluates data-entry completeness for a year.
func (h *AnalyticsHandler) Progress(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Progress(c.Request.Context(), callerID(c), intQuery(c, "year")))
}

// Predict runs the on-demand rice demand calculation.
func (h *AnalyticsHandler) Predict(c *gin.Context) {
	var in analytics.PredictInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("invalid predict payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	c.JSON(http.StatusOK, h.svc.Predict(c.Request.Context(), callerID(c), in))
}

// timeFilterFromQuery reads the shared year/month/week/strict query params.
func timeFilterFromQuery(c *gin.Context) analytics.Filter {
	return analytics.Filter{
		Year:   intQuery(c, "year"),
		Month:  intQuery(c, "month"),
		Week:   intQuery(c, "week"),
		Strict: intQuery(c, "strict") != 0,
	}
}

func intQuery(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}

// writeError maps domain errors onto HTTP statuses.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, models.ErrInsufficientData), errors.Is(err, models.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
