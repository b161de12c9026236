package export

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"smart-shopping/internal/core/shopping"
	"smart-shopping/internal/infrastructure/config"
	"smart-shopping/internal/pkg/common"
)

// Client pushes consolidated shopping lists to an external collector.
type Client struct {
	cfg    *config.ExportConfig
	client *resty.Client
}

// NewClient returns nil when export is disabled in the configuration.
func NewClient(cfg *config.ExportConfig) *Client {
	if cfg == nil || !cfg.Enabled {
		return nil
	}
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.Retries).
		SetRetryWaitTime(500*time.Millisecond).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "smart-shopping/1.0")

	return &Client{cfg: cfg, client: client}
}

type payload struct {
	ListID     string                     `json:"listId"`
	ExportedAt time.Time                  `json:"exportedAt"`
	List       *shopping.ConsolidatedList `json:"list"`
}

// Push sends the list to the configured endpoint. Failures are reported to
// the caller but carry no list data, so the caller can log and move on.
func (c *Client) Push(ctx context.Context, listID string, list *shopping.ConsolidatedList) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(payload{ListID: listID, ExportedAt: time.Now().UTC(), List: list}).
		Post(c.cfg.Endpoint)
	if err != nil {
		return fmt.Errorf("failed to push shopping list: %w", err)
	}
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return common.NewError(common.ErrExportFailed.Code,
			fmt.Sprintf("export endpoint returned status %d", resp.StatusCode()),
			http.StatusBadGateway, nil)
	}
	common.LogDebug("shopping list exported",
		zap.String("endpoint", c.cfg.Endpoint),
		zap.String("list_id", listID),
		zap.Int("items", list.TotalItems),
		zap.Int("status", resp.StatusCode()))
	return nil
}
