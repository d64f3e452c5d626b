// Package storetest provides a mock types.Store for component unit tests.
package storetest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/impact-mesh/lantern/pkg/types"
)

var _ types.Store = (*Store)(nil)

// Store is a testify mock implementing types.Store.
type Store struct {
	mock.Mock
}

func (m *Store) QueryCatalog(ctx context.Context, filter types.CatalogFilter) ([]*types.Indicator, error) {
	args := m.Called(ctx, filter)
	var indicators []*types.Indicator
	if v := args.Get(0); v != nil {
		indicators = v.([]*types.Indicator)
	}
	return indicators, args.Error(1)
}

func (m *Store) ImportCatalog(ctx context.Context, indicators []*types.Indicator) (int, error) {
	args := m.Called(ctx, indicators)
	return args.Int(0), args.Error(1)
}

func (m *Store) AttachedIndicatorIDs(ctx context.Context, projectID string) (map[string]bool, error) {
	args := m.Called(ctx, projectID)
	var ids map[string]bool
	if v := args.Get(0); v != nil {
		ids = v.(map[string]bool)
	}
	return ids, args.Error(1)
}

func (m *Store) InsertAttachments(ctx context.Context, records []*types.Attachment) (int, error) {
	args := m.Called(ctx, records)
	return args.Int(0), args.Error(1)
}

func (m *Store) InsertLink(ctx context.Context, link *types.EvidenceLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *Store) DeleteLink(ctx context.Context, evidenceID string, kind types.EntityKind, entityID string) error {
	args := m.Called(ctx, evidenceID, kind, entityID)
	return args.Error(0)
}

func (m *Store) QueryLinks(ctx context.Context, filter types.LinkFilter) ([]*types.EvidenceLink, error) {
	args := m.Called(ctx, filter)
	var links []*types.EvidenceLink
	if v := args.Get(0); v != nil {
		links = v.([]*types.EvidenceLink)
	}
	return links, args.Error(1)
}
