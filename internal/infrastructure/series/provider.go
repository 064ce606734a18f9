package series

import (
	"context"
	"errors"
	"strings"

	"github.com/euroweb/backoffice/internal/domain/catalog"
	"github.com/euroweb/backoffice/internal/domain/eshop"
	"github.com/euroweb/backoffice/internal/domain/shared"
)

// PrefixResolver resolves product series by matching the product code
// against a configured set of series prefixes. A line whose code carries
// no known prefix has no series and may be skipped.
//
// The resolver is a staged lookup: FetchLocalEntity loads the series for
// one lookup, LocalEntity returns what the last fetch found. Resolved
// series are cached by prefix for the lifetime of the resolver, so a
// batch importing thousands of lines hits the database once per series.
type PrefixResolver struct {
	repo     catalog.ProductSeriesRepository
	prefixes []string

	cache   map[string]*catalog.ProductSeries
	current *catalog.ProductSeries
}

// NewPrefixResolver creates a resolver for the given series prefixes
func NewPrefixResolver(repo catalog.ProductSeriesRepository, prefixes []string) *PrefixResolver {
	return &PrefixResolver{
		repo:     repo,
		prefixes: prefixes,
		cache:    make(map[string]*catalog.ProductSeries),
	}
}

// CanBeSkipped reports whether the lookup carries no series prefix
func (r *PrefixResolver) CanBeSkipped(lookup eshop.SeriesLookup) bool {
	return r.matchPrefix(lookup.ItemNo) == ""
}

// FetchLocalEntity resolves the series for the lookup and stages it for
// LocalEntity. A prefix with no matching series record stages nil rather
// than failing, so one missing catalog row does not abort a batch.
func (r *PrefixResolver) FetchLocalEntity(ctx context.Context, lookup eshop.SeriesLookup) error {
	r.current = nil

	prefix := r.matchPrefix(lookup.ItemNo)
	if prefix == "" {
		return nil
	}

	if cached, ok := r.cache[prefix]; ok {
		r.current = cached
		return nil
	}

	found, err := r.repo.FindByCode(ctx, prefix)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			r.cache[prefix] = nil
			return nil
		}
		return err
	}

	r.cache[prefix] = found
	r.current = found
	return nil
}

// LocalEntity returns the series staged by the most recent fetch
func (r *PrefixResolver) LocalEntity() *catalog.ProductSeries {
	return r.current
}

// matchPrefix returns the first configured prefix the code starts with
func (r *PrefixResolver) matchPrefix(itemNo string) string {
	for _, prefix := range r.prefixes {
		if prefix != "" && strings.HasPrefix(itemNo, prefix) {
			return prefix
		}
	}
	return ""
}

// Ensure PrefixResolver implements SeriesResolver
var _ eshop.SeriesResolver = (*PrefixResolver)(nil)
