// Package catalog queries the shared indicator catalog. Queries are pure
// reads: the service normalizes the caller's filter and delegates to the
// store, propagating store failures without retry.
package catalog

import (
	"context"
	"fmt"

	"github.com/impact-mesh/lantern/pkg/types"
)

// Service answers catalog queries against a Store.
type Service struct {
	store types.Store
}

// NewService creates a catalog service over the given store.
func NewService(store types.Store) *Service {
	return &Service{store: store}
}

// Query returns active indicators matching the filter, ordered by domain
// then code ascending. The "all" sentinel on domain or maturity is treated
// as no constraint; an offset without a limit gets a window of
// types.DefaultQueryLimit.
func (s *Service) Query(ctx context.Context, filter types.CatalogFilter) ([]*types.Indicator, error) {
	indicators, err := s.store.QueryCatalog(ctx, filter.Normalize())
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	return indicators, nil
}

// Import upserts curated indicators into the catalog by code and returns
// the number of records written. Every indicator must carry a code and a
// name.
func (s *Service) Import(ctx context.Context, indicators []*types.Indicator) (int, error) {
	if len(indicators) == 0 {
		return 0, types.ErrEmptyBatch
	}
	for _, ind := range indicators {
		if ind.Code == "" || ind.Name == "" {
			return 0, types.ErrInvalidData
		}
	}

	n, err := s.store.ImportCatalog(ctx, indicators)
	if err != nil {
		return 0, fmt.Errorf("importing catalog: %w", err)
	}
	return n, nil
}
