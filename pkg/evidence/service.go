// Package evidence creates and removes many-to-many links between evidence
// records and project entities. Link never pre-checks existence: this is a
// low-contention single-user action, so the store's uniqueness constraint
// absorbs the duplicate instead of a second round-trip.
package evidence

import (
	"context"
	"errors"
	"fmt"

	"github.com/impact-mesh/lantern/pkg/types"
)

// Service links evidence records to project entities.
type Service struct {
	store types.Store
}

// NewService creates an evidence service over the given store.
func NewService(store types.Store) *Service {
	return &Service{store: store}
}

// Link associates the evidence record with the entity. If the triple is
// already linked the store's constraint fires and Link returns
// types.ErrDuplicate, which callers should treat as "already linked" rather
// than a failure. Callers maintain their own cached view of linked
// evidence; this service does not.
func (s *Service) Link(ctx context.Context, evidenceID string, kind types.EntityKind, entityID string) error {
	if err := validateTriple(evidenceID, kind, entityID); err != nil {
		return err
	}

	link := &types.EvidenceLink{
		EvidenceID: evidenceID,
		EntityKind: kind,
		EntityID:   entityID,
	}
	if err := s.store.InsertLink(ctx, link); err != nil {
		if errors.Is(err, types.ErrDuplicate) {
			return types.ErrDuplicate
		}
		return fmt.Errorf("inserting evidence link: %w", err)
	}
	return nil
}

// Unlink removes the link matching the triple. Unlinking a never-linked
// triple is a silent no-op.
func (s *Service) Unlink(ctx context.Context, evidenceID string, kind types.EntityKind, entityID string) error {
	if err := validateTriple(evidenceID, kind, entityID); err != nil {
		return err
	}

	if err := s.store.DeleteLink(ctx, evidenceID, kind, entityID); err != nil {
		return fmt.Errorf("deleting evidence link: %w", err)
	}
	return nil
}

// Links returns evidence links matching the filter, newest first. The
// filter must name an evidence record, an entity, or both; an entity id
// requires a valid entity kind.
func (s *Service) Links(ctx context.Context, filter types.LinkFilter) ([]*types.EvidenceLink, error) {
	if filter.EvidenceID == "" && filter.EntityID == "" {
		return nil, types.ErrInvalidFilter
	}
	if filter.EntityID != "" && !filter.EntityKind.Valid() {
		return nil, types.ErrInvalidEntityKind
	}
	if filter.EntityKind != "" && !filter.EntityKind.Valid() {
		return nil, types.ErrInvalidEntityKind
	}

	links, err := s.store.QueryLinks(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("querying evidence links: %w", err)
	}
	return links, nil
}

// validateTriple rejects empty ids and unknown entity kinds before any
// store call.
func validateTriple(evidenceID string, kind types.EntityKind, entityID string) error {
	if evidenceID == "" || entityID == "" {
		return types.ErrInvalidID
	}
	if !kind.Valid() {
		return types.ErrInvalidEntityKind
	}
	return nil
}
