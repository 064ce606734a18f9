package eshop

import (
	"context"
	"time"
)

// WarehouseError is the tagged error the warehouse API returns for rejected
// operations. Its message is human readable and is surfaced to the client
// verbatim.
type WarehouseError struct {
	Message string
}

// Error implements the error interface
func (e *WarehouseError) Error() string {
	return e.Message
}

// NewWarehouseError creates a new warehouse error
func NewWarehouseError(message string) *WarehouseError {
	return &WarehouseError{Message: message}
}

// Sticker is a printable shipping label attached to one return shipment box
type Sticker struct {
	ManifestNumber string    `json:"manifest_number"`
	BoxNumber      int       `json:"box_number"`
	Barcode        string    `json:"barcode"`
	CreatedAt      time.Time `json:"created_at"`
}

// Document is a binary document produced by the warehouse, typically a PDF
// with the rendered sticker sheet
type Document struct {
	Content  []byte
	FileName string
}

// WarehouseManager is the port to the remote warehouse system that manages
// shipping-label stickers for return shipments. Rejections from the remote
// API come back as *WarehouseError; everything else is a transport failure.
type WarehouseManager interface {
	CreateStickers(ctx context.Context, ret *Return, boxCount int) ([]Sticker, error)
	PrintStickers(ctx context.Context, ret *Return, manifestNumber string) (*Document, error)
	CancelStickers(ctx context.Context, ret *Return, manifestNumber string) error
	GetStickers(ctx context.Context, ret *Return) ([]Sticker, error)
}
