package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/impact-mesh/lantern/pkg/types"
)

// seedCatalog imports a small curated catalog used across query tests.
func seedCatalog(t *testing.T, b *Backend) {
	t.Helper()

	_, err := b.ImportCatalog(context.Background(), []*types.Indicator{
		{Code: "COM-01", Name: "Coverage Rate", Domain: "communication",
			Maturity: types.MaturityExpert, Definition: "Share of the audience reached", Active: true},
		{Code: "COM-02", Name: "Mentions", Domain: "communication",
			Maturity: types.MaturityFoundation, Definition: "Press mentions per quarter", Active: true},
		{Code: "EDU-01", Name: "Training Hours", Domain: "education",
			Maturity: types.MaturityExpert, Definition: "Hours of training delivered", Active: true},
		{Code: "EDU-02", Name: "Retired Metric", Domain: "education",
			Maturity: types.MaturityFoundation, Definition: "No longer collected", Active: false},
	})
	require.NoError(t, err)
}

func TestQueryCatalogRestrictsToActive(t *testing.T) {
	b := newTestBackend(t)
	seedCatalog(t, b)

	items, err := b.QueryCatalog(context.Background(), types.CatalogFilter{})
	require.NoError(t, err)
	require.Len(t, items, 3)
	for _, item := range items {
		assert.True(t, item.Active)
		assert.NotEqual(t, "EDU-02", item.Code)
	}
}

func TestQueryCatalogOrdering(t *testing.T) {
	b := newTestBackend(t)
	seedCatalog(t, b)

	items, err := b.QueryCatalog(context.Background(), types.CatalogFilter{})
	require.NoError(t, err)

	codes := make([]string, len(items))
	for i, item := range items {
		codes[i] = item.Code
	}
	// Domain ascending, then code ascending, for deterministic paging.
	assert.Equal(t, []string{"COM-01", "COM-02", "EDU-01"}, codes)
}

func TestQueryCatalogSearchMatchesAnyField(t *testing.T) {
	b := newTestBackend(t)
	seedCatalog(t, b)
	ctx := context.Background()

	tests := []struct {
		name      string
		search    string
		wantCodes []string
	}{
		{
			name:      "matches name case-insensitively",
			search:    "cov",
			wantCodes: []string{"COM-01"},
		},
		{
			name:      "matches code",
			search:    "edu-01",
			wantCodes: []string{"EDU-01"},
		},
		{
			name:      "matches definition",
			search:    "press",
			wantCodes: []string{"COM-02"},
		},
		{
			name:      "no match",
			search:    "zzz",
			wantCodes: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := b.QueryCatalog(ctx, types.CatalogFilter{Search: tt.search})
			require.NoError(t, err)

			codes := []string{}
			for _, item := range items {
				codes = append(codes, item.Code)
			}
			assert.Equal(t, tt.wantCodes, codes)
		})
	}
}

func TestQueryCatalogFiltersIntersect(t *testing.T) {
	b := newTestBackend(t)
	seedCatalog(t, b)

	// Domain AND maturity must both hold.
	items, err := b.QueryCatalog(context.Background(), types.CatalogFilter{
		Domain:   "communication",
		Maturity: types.MaturityExpert,
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "COM-01", items[0].Code)
}

func TestQueryCatalogWindowing(t *testing.T) {
	b := newTestBackend(t)
	seedCatalog(t, b)
	ctx := context.Background()

	page, err := b.QueryCatalog(ctx, types.CatalogFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "COM-01", page[0].Code)

	rest, err := b.QueryCatalog(ctx, types.CatalogFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "EDU-01", rest[0].Code)
}

func TestImportCatalogUpsertsByCode(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	n, err := b.ImportCatalog(ctx, []*types.Indicator{
		{Code: "COM-01", Name: "Coverage Rate", Domain: "communication", Active: true},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	items, err := b.QueryCatalog(ctx, types.CatalogFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	originalID := items[0].IndicatorID
	assert.NotEmpty(t, originalID)

	// Re-importing the same code updates in place and keeps the id.
	n, err = b.ImportCatalog(ctx, []*types.Indicator{
		{Code: "COM-01", Name: "Coverage Rate (v2)", Domain: "communication", Active: true},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	items, err = b.QueryCatalog(ctx, types.CatalogFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, originalID, items[0].IndicatorID)
	assert.Equal(t, "Coverage Rate (v2)", items[0].Name)
}

func TestImportCatalogRejectsInvalidRecords(t *testing.T) {
	b := newTestBackend(t)

	_, err := b.ImportCatalog(context.Background(), []*types.Indicator{
		{Code: "", Name: "Nameless"},
	})
	assert.ErrorIs(t, err, types.ErrInvalidData)
}
