package warehouse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/euroweb/backoffice/internal/domain/eshop"
)

// maxResponseSize is the maximum allowed response size from the warehouse API (10MB)
const maxResponseSize = 10 * 1024 * 1024

// Client implements eshop.WarehouseManager against the warehouse sticker
// HTTP API. The remote system owns all sticker state; this client only
// translates between the domain and the wire.
type Client struct {
	config     *Config
	httpClient *http.Client
}

// NewClient creates a new warehouse API client
func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// CreateStickers requests one sticker per shipment box for a return
func (c *Client) CreateStickers(ctx context.Context, ret *eshop.Return, boxCount int) ([]eshop.Sticker, error) {
	payload := createStickersRequest{
		OrderID:  ret.OrderID,
		BoxCount: boxCount,
	}

	body, err := c.doRequest(ctx, http.MethodPost, c.stickersURL(ret, nil), payload)
	if err != nil {
		return nil, err
	}

	var resp stickersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: invalid response: %v", ErrRequestFailed, err)
	}
	return resp.Stickers, nil
}

// PrintStickers fetches the printable PDF for a sticker manifest
func (c *Client) PrintStickers(ctx context.Context, ret *eshop.Return, manifestNumber string) (*eshop.Document, error) {
	query := url.Values{}
	query.Set("manifestNumber", manifestNumber)

	endpoint := c.config.BaseURL + "/returns/" + url.PathEscape(ret.OrderID) + "/stickers/print?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("warehouse: failed to create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("warehouse: failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, remoteError(resp.StatusCode, body)
	}

	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/pdf") {
		return nil, ErrNotDocument
	}

	return &eshop.Document{
		Content:  body,
		FileName: documentFileName(resp.Header.Get("Content-Disposition"), manifestNumber),
	}, nil
}

// CancelStickers cancels the stickers of a manifest
func (c *Client) CancelStickers(ctx context.Context, ret *eshop.Return, manifestNumber string) error {
	query := url.Values{}
	query.Set("manifestNumber", manifestNumber)

	_, err := c.doRequest(ctx, http.MethodDelete, c.stickersURL(ret, query), nil)
	return err
}

// GetStickers lists the stickers currently registered for a return
func (c *Client) GetStickers(ctx context.Context, ret *eshop.Return) ([]eshop.Sticker, error) {
	body, err := c.doRequest(ctx, http.MethodGet, c.stickersURL(ret, nil), nil)
	if err != nil {
		return nil, err
	}

	var resp stickersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: invalid response: %v", ErrRequestFailed, err)
	}
	return resp.Stickers, nil
}

// stickersURL builds the sticker collection URL for a return
func (c *Client) stickersURL(ret *eshop.Return, query url.Values) string {
	endpoint := c.config.BaseURL + "/returns/" + url.PathEscape(ret.OrderID) + "/stickers"
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	return endpoint
}

// doRequest performs a JSON request against the warehouse API and returns
// the raw response body. Remote rejections come back as *eshop.WarehouseError.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("warehouse: failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("warehouse: failed to create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.config.APIKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("warehouse: failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, remoteError(resp.StatusCode, body)
	}

	return body, nil
}

// remoteError maps a remote failure onto the domain error taxonomy. Client
// errors carrying a message become tagged warehouse errors; anything else is
// a transport failure.
func remoteError(statusCode int, body []byte) error {
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Message != "" && statusCode < 500 {
		return eshop.NewWarehouseError(resp.Message)
	}
	return fmt.Errorf("%w: HTTP %s", ErrRequestFailed, strconv.Itoa(statusCode))
}

// documentFileName extracts the filename from a Content-Disposition header,
// falling back to a manifest-derived name
func documentFileName(disposition, manifestNumber string) string {
	if disposition != "" {
		if _, params, err := mime.ParseMediaType(disposition); err == nil {
			if name := params["filename"]; name != "" {
				return name
			}
		}
	}
	return "stickers-" + manifestNumber + ".pdf"
}

// Ensure Client implements WarehouseManager
var _ eshop.WarehouseManager = (*Client)(nil)
