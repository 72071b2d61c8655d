package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/ricewise/ricewise/internal/config"
	"github.com/ricewise/ricewise/internal/domain/models"
)

// Exporter mirrors accepted sales submissions into a Google Sheet so the
// dataset stays inspectable outside the application.
type Exporter struct {
	service       *sheetsapi.Service
	spreadsheetID string
	salesRange    string
	logger        *zap.Logger
}

// NewExporter builds a Google Sheets backed exporter instance.
func NewExporter(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*Exporter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &Exporter{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		salesRange:    cfg.SalesRange,
		logger:        logger,
	}, nil
}

// AppendSalesRecord appends one record as a sheet row.
func (e *Exporter) AppendSalesRecord(ctx context.Context, record models.SalesRecord) error {
	row := []interface{}{
		record.ID,
		record.UserID,
		record.Timestamp.Format("2006-01-02 15:04:05"),
		record.PeriodKey,
		string(record.Granularity),
		record.Year,
		record.Month,
		record.Week,
		record.Day,
		record.RiceSold,
		record.RiceUnsold,
		record.PricePerKg,
		record.Population,
		record.AvgConsumption,
		record.PurchasingPower,
		record.Competitors,
		record.CustomerDemand,
		record.PredictedDemand,
		record.WastePercentage,
		record.TotalRevenue,
	}

	payload := &sheetsapi.ValueRange{Values: [][]interface{}{row}}

	call := e.service.Spreadsheets.Values.Append(e.spreadsheetID, e.salesRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append sales row into range %s: %w", e.salesRange, err)
	}

	e.logger.Debug("sales row appended to sheet",
		zap.String("record_id", record.ID), zap.String("range", e.salesRange))
	return nil
}
