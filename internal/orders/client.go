package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/frahmantamala/payment-service/internal"
)

// OrderItem mirrors the item shape the order service returns. The wire
// format is owned by that service; we only read it.
type OrderItem struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

type orderResponse struct {
	ID    int64       `json:"id"`
	Items []OrderItem `json:"items"`
}

// Client talks to the order service. Calls are synchronous with a single
// timeout; there is no retry or circuit breaking, a failing downstream
// surfaces directly to the caller.
type Client struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
	logger  *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		timeout: timeout,
		logger:  logger,
	}
}

// GetOrderItems fetches the item list for an order.
func (c *Client) GetOrderItems(ctx context.Context, orderID int64) ([]OrderItem, error) {
	url := fmt.Sprintf("%s/orders/%d", c.baseURL, orderID)

	ctx, cancel := internal.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("request creation error: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("fetching order items", "url", url, "order_id", orderID)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("order items request failed", "error", err, "order_id", orderID)
		return nil, fmt.Errorf("order service request error: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("response read error: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("order service returned error",
			"status", resp.StatusCode,
			"response", string(respBody),
			"order_id", orderID)
		return nil, fmt.Errorf("order service error: status %d, response: %s", resp.StatusCode, string(respBody))
	}

	var order orderResponse
	if err := json.Unmarshal(respBody, &order); err != nil {
		return nil, fmt.Errorf("response unmarshal error: %w", err)
	}

	return order.Items, nil
}

// NotifyPaymentConfirmed tells the order service that the payment for an
// order went through.
func (c *Client) NotifyPaymentConfirmed(ctx context.Context, orderID int64) error {
	url := fmt.Sprintf("%s/orders/%d/payment-confirmed", c.baseURL, orderID)

	ctx, cancel := internal.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, nil)
	if err != nil {
		return fmt.Errorf("request creation error: %w", err)
	}

	c.logger.Info("notifying order service of confirmed payment", "url", url, "order_id", orderID)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("payment confirmation notify failed", "error", err, "order_id", orderID)
		return fmt.Errorf("order service request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("order service rejected payment confirmation",
			"status", resp.StatusCode,
			"response", string(body),
			"order_id", orderID)
		return fmt.Errorf("order service error: status %d, response: %s", resp.StatusCode, string(body))
	}

	return nil
}
