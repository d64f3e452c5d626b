// This file implements the evidence_links table accessor.
package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/impact-mesh/lantern/pkg/types"
)

// InsertLink inserts one evidence link. Returns ErrDuplicate if the triple
// already exists.
func (b *Backend) InsertLink(ctx context.Context, link *types.EvidenceLink) error {
	db, err := b.conn()
	if err != nil {
		return err
	}
	if link.EvidenceID == "" || link.EntityID == "" {
		return types.ErrInvalidID
	}
	if !link.EntityKind.Valid() {
		return types.ErrInvalidEntityKind
	}

	if link.LinkID == "" {
		link.LinkID = generateUUID()
	}
	if link.CreatedAt.IsZero() {
		link.CreatedAt = time.Now().UTC()
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO evidence_links (link_id, evidence_id, entity_kind, entity_id, created_at)
         VALUES ($1, $2, $3, $4, $5)`,
		link.LinkID, link.EvidenceID, string(link.EntityKind), link.EntityID, link.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("link (%s, %s, %s): %w",
				link.EvidenceID, link.EntityKind, link.EntityID, types.ErrDuplicate)
		}
		return fmt.Errorf("inserting evidence link: %w", err)
	}

	return nil
}

// DeleteLink removes the link matching all three key fields. Deleting an
// absent link is a silent no-op.
func (b *Backend) DeleteLink(ctx context.Context, evidenceID string, kind types.EntityKind, entityID string) error {
	db, err := b.conn()
	if err != nil {
		return err
	}
	if evidenceID == "" || entityID == "" {
		return types.ErrInvalidID
	}
	if !kind.Valid() {
		return types.ErrInvalidEntityKind
	}

	_, err = db.ExecContext(ctx,
		"DELETE FROM evidence_links WHERE evidence_id = $1 AND entity_kind = $2 AND entity_id = $3",
		evidenceID, string(kind), entityID,
	)
	if err != nil {
		return fmt.Errorf("deleting evidence link: %w", err)
	}

	return nil
}

// QueryLinks returns links matching the filter, newest first.
func (b *Backend) QueryLinks(ctx context.Context, filter types.LinkFilter) ([]*types.EvidenceLink, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	var conditions []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.EvidenceID != "" {
		conditions = append(conditions, "evidence_id = "+arg(filter.EvidenceID))
	}
	if filter.EntityKind != "" {
		if !filter.EntityKind.Valid() {
			return nil, types.ErrInvalidEntityKind
		}
		conditions = append(conditions, "entity_kind = "+arg(string(filter.EntityKind)))
	}
	if filter.EntityID != "" {
		conditions = append(conditions, "entity_id = "+arg(filter.EntityID))
	}
	if len(conditions) == 0 {
		return nil, types.ErrInvalidFilter
	}

	query := "SELECT link_id, evidence_id, entity_kind, entity_id, created_at FROM evidence_links WHERE " +
		strings.Join(conditions, " AND ") +
		" ORDER BY created_at DESC, link_id DESC"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying evidence links: %w", err)
	}
	defer rows.Close()

	results := []*types.EvidenceLink{}
	for rows.Next() {
		var l types.EvidenceLink
		var kind string
		if err := rows.Scan(&l.LinkID, &l.EvidenceID, &kind, &l.EntityID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("hydrating evidence link: %w", err)
		}
		l.EntityKind = types.EntityKind(kind)
		results = append(results, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating evidence links: %w", err)
	}

	return results, nil
}
