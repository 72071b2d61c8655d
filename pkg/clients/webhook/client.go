package webhook

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client delivers generated summary reports to an external webhook.
type Client interface {
	PostReport(ctx context.Context, msg ReportMessage) error
}

// ReportMessage is the payload pushed to the receiving endpoint.
type ReportMessage struct {
	UserID      string    `json:"user_id"`
	Period      string    `json:"period"`
	Text        string    `json:"text"`
	GeneratedAt time.Time `json:"generated_at"`
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
	url        string
}

// NewClient builds a webhook client targeting the configured URL.
func NewClient(url string) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &APIClient{
		httpClient: restyClient,
		url:        url,
	}
}

// PostReport delivers one report message. Any non-2xx response is an error.
func (c *APIClient) PostReport(ctx context.Context, msg ReportMessage) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(msg).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("post report webhook: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("report webhook error: status=%d, body=%s", resp.StatusCode(), resp.String())
	}
	return nil
}
