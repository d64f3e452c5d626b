package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogFilterNormalize(t *testing.T) {
	tests := []struct {
		name   string
		filter CatalogFilter
		want   CatalogFilter
	}{
		{
			name:   "zero filter is unchanged",
			filter: CatalogFilter{},
			want:   CatalogFilter{},
		},
		{
			name:   "all sentinel clears domain and maturity",
			filter: CatalogFilter{Domain: FilterAll, Maturity: FilterAll},
			want:   CatalogFilter{},
		},
		{
			name:   "concrete domain and maturity are kept",
			filter: CatalogFilter{Domain: "communication", Maturity: MaturityExpert},
			want:   CatalogFilter{Domain: "communication", Maturity: MaturityExpert},
		},
		{
			name:   "offset without limit gets the default window",
			filter: CatalogFilter{Offset: 100},
			want:   CatalogFilter{Limit: DefaultQueryLimit, Offset: 100},
		},
		{
			name:   "offset with explicit limit keeps the limit",
			filter: CatalogFilter{Limit: 10, Offset: 20},
			want:   CatalogFilter{Limit: 10, Offset: 20},
		},
		{
			name:   "negative limit and offset collapse to zero",
			filter: CatalogFilter{Limit: -5, Offset: -1},
			want:   CatalogFilter{},
		},
		{
			name:   "search term is untouched",
			filter: CatalogFilter{Search: "cov"},
			want:   CatalogFilter{Search: "cov"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Normalize())
		})
	}
}
