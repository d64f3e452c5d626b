package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/impact-mesh/lantern/internal/storetest"
	"github.com/impact-mesh/lantern/pkg/types"
)

func TestQueryNormalizesFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter types.CatalogFilter
		want   types.CatalogFilter
	}{
		{
			name:   "all sentinel becomes absent",
			filter: types.CatalogFilter{Domain: types.FilterAll, Maturity: types.FilterAll},
			want:   types.CatalogFilter{},
		},
		{
			name:   "offset without limit gets default window",
			filter: types.CatalogFilter{Offset: 50},
			want:   types.CatalogFilter{Limit: types.DefaultQueryLimit, Offset: 50},
		},
		{
			name:   "concrete filters pass through",
			filter: types.CatalogFilter{Domain: "communication", Maturity: types.MaturityExpert, Search: "cov"},
			want:   types.CatalogFilter{Domain: "communication", Maturity: types.MaturityExpert, Search: "cov"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &storetest.Store{}
			store.On("QueryCatalog", mock.Anything, tt.want).
				Return([]*types.Indicator{}, nil)

			_, err := NewService(store).Query(context.Background(), tt.filter)
			require.NoError(t, err)
			store.AssertExpectations(t)
		})
	}
}

func TestQueryReturnsIndicators(t *testing.T) {
	indicators := []*types.Indicator{
		{IndicatorID: "ind-1", Code: "COM-01", Name: "Coverage Rate"},
		{IndicatorID: "ind-2", Code: "COM-02", Name: "Reach"},
	}

	store := &storetest.Store{}
	store.On("QueryCatalog", mock.Anything, mock.Anything).
		Return(indicators, nil)

	got, err := NewService(store).Query(context.Background(), types.CatalogFilter{})
	require.NoError(t, err)
	assert.Equal(t, indicators, got)
}

func TestQueryPropagatesStoreFailure(t *testing.T) {
	storeErr := errors.New("malformed query")

	store := &storetest.Store{}
	store.On("QueryCatalog", mock.Anything, mock.Anything).
		Return(nil, storeErr)

	_, err := NewService(store).Query(context.Background(), types.CatalogFilter{})
	assert.ErrorIs(t, err, storeErr)
}

func TestImportValidation(t *testing.T) {
	tests := []struct {
		name       string
		indicators []*types.Indicator
		wantErr    error
	}{
		{
			name:       "empty batch",
			indicators: nil,
			wantErr:    types.ErrEmptyBatch,
		},
		{
			name:       "missing code",
			indicators: []*types.Indicator{{Name: "Coverage Rate"}},
			wantErr:    types.ErrInvalidData,
		},
		{
			name:       "missing name",
			indicators: []*types.Indicator{{Code: "COM-01"}},
			wantErr:    types.ErrInvalidData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &storetest.Store{}
			_, err := NewService(store).Import(context.Background(), tt.indicators)
			assert.ErrorIs(t, err, tt.wantErr)
			store.AssertNotCalled(t, "ImportCatalog", mock.Anything, mock.Anything)
		})
	}
}

func TestImportDelegatesToStore(t *testing.T) {
	indicators := []*types.Indicator{
		{Code: "COM-01", Name: "Coverage Rate", Domain: "communication"},
	}

	store := &storetest.Store{}
	store.On("ImportCatalog", mock.Anything, indicators).Return(1, nil)

	n, err := NewService(store).Import(context.Background(), indicators)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	store.AssertExpectations(t)
}
