package eshop

import (
	"context"

	"github.com/euroweb/backoffice/internal/domain/catalog"
)

// SeriesLookup is the single-key record handed to the series resolver.
// It carries the product code of the line being imported.
type SeriesLookup struct {
	ItemNo string
}

// SeriesResolver resolves the optional product series for an order line.
// The skip policy is owned by the resolver; the importer only honors it.
// FetchLocalEntity stages the resolution, LocalEntity returns the result of
// the most recent fetch (nil when the line has no series).
type SeriesResolver interface {
	CanBeSkipped(lookup SeriesLookup) bool
	FetchLocalEntity(ctx context.Context, lookup SeriesLookup) error
	LocalEntity() *catalog.ProductSeries
}
