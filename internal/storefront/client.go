// internal/storefront/client.go
package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/eventrix/eventrix-backend/internal/models"
)

var ErrNotFound = errors.New("storefront: resource not found")

// CategoryListing is the unfiltered product set of one category.
type CategoryListing struct {
	CategoryName string           `json:"categoryName"`
	Products     []models.Product `json:"products"`
}

// Client talks to the catalog API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) CategoryProducts(ctx context.Context, categoryID string) (*CategoryListing, error) {
	var listing CategoryListing
	if err := c.get(ctx, "/api/products/category/"+url.PathEscape(categoryID), &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

func (c *Client) Reviews(ctx context.Context, productID string) ([]models.Review, error) {
	var payload struct {
		Reviews []models.Review `json:"reviews"`
	}
	path := "/api/allreviews?productId=" + url.QueryEscape(productID)
	if err := c.get(ctx, path, &payload); err != nil {
		return nil, err
	}
	return payload.Reviews, nil
}

func (c *Client) Sidebar(ctx context.Context, categoryID string) (*models.SidebarView, error) {
	var view models.SidebarView
	if err := c.get(ctx, "/api/sidebar/"+url.PathEscape(categoryID), &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("GET %s: %w", path, ErrNotFound)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if resp.StatusCode >= 300 || !env.Success {
		msg := http.StatusText(resp.StatusCode)
		if env.Error != nil && env.Error.Message != "" {
			msg = env.Error.Message
		}
		return fmt.Errorf("GET %s: status %d: %s", path, resp.StatusCode, msg)
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s data: %w", path, err)
	}
	return nil
}
