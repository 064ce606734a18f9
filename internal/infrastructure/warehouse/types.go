package warehouse

import (
	"errors"

	"github.com/euroweb/backoffice/internal/domain/eshop"
)

// Errors for warehouse client configuration and transport
var (
	ErrConfigMissingBaseURL = errors.New("warehouse: base URL is required")
	ErrUnavailable          = errors.New("warehouse: service unavailable")
	ErrRequestFailed        = errors.New("warehouse: request failed")
	// ErrNotDocument indicates the print endpoint answered with something
	// other than a PDF document
	ErrNotDocument = errors.New("warehouse: response is not a document")
)

// Config holds configuration for the warehouse sticker API
type Config struct {
	// BaseURL is the base URL of the warehouse API
	BaseURL string
	// APIKey authenticates this back office against the warehouse
	APIKey string
	// TimeoutSeconds is the HTTP request timeout
	TimeoutSeconds int
}

// Validate checks the configuration for required fields
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrConfigMissingBaseURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	return nil
}

// createStickersRequest is the payload for sticker creation
type createStickersRequest struct {
	OrderID  string `json:"order_id"`
	BoxCount int    `json:"box_count"`
}

// stickersResponse is the envelope the warehouse API wraps sticker lists in
type stickersResponse struct {
	Stickers []eshop.Sticker `json:"stickers"`
}

// errorResponse is the envelope the warehouse API wraps rejections in
type errorResponse struct {
	Message string `json:"message"`
}
