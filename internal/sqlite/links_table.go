// This file implements the evidence_links table. Entity kinds share one
// table discriminated by the entity_kind column; the UNIQUE index on the
// (evidence_id, entity_kind, entity_id) triple absorbs duplicate link
// attempts so callers never pre-check existence.
package sqlite

import (
	"context"
	"fmt"
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
         VALUES (?, ?, ?, ?, ?)`,
		link.LinkID, link.EvidenceID, string(link.EntityKind), link.EntityID,
		link.CreatedAt.Format(time.RFC3339),
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
		"DELETE FROM evidence_links WHERE evidence_id = ? AND entity_kind = ? AND entity_id = ?",
		evidenceID, string(kind), entityID,
	)
	if err != nil {
		return fmt.Errorf("deleting evidence link: %w", err)
	}

	return nil
}

// QueryLinks returns links matching the filter, newest first.
// Supported filter fields: evidence id, entity kind, entity id.
func (b *Backend) QueryLinks(ctx context.Context, filter types.LinkFilter) ([]*types.EvidenceLink, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	query := "SELECT link_id, evidence_id, entity_kind, entity_id, created_at FROM evidence_links"
	var conditions []string
	var args []any

	if filter.EvidenceID != "" {
		conditions = append(conditions, "evidence_id = ?")
		args = append(args, filter.EvidenceID)
	}
	if filter.EntityKind != "" {
		if !filter.EntityKind.Valid() {
			return nil, types.ErrInvalidEntityKind
		}
		conditions = append(conditions, "entity_kind = ?")
		args = append(args, string(filter.EntityKind))
	}
	if filter.EntityID != "" {
		conditions = append(conditions, "entity_id = ?")
		args = append(args, filter.EntityID)
	}
	if len(conditions) == 0 {
		return nil, types.ErrInvalidFilter
	}

	for i, c := range conditions {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY created_at DESC, link_id DESC"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying evidence links: %w", err)
	}
	defer rows.Close()

	results := []*types.EvidenceLink{}
	for rows.Next() {
		var l types.EvidenceLink
		var kind, createdAt string
		if err := rows.Scan(&l.LinkID, &l.EvidenceID, &kind, &l.EntityID, &createdAt); err != nil {
			return nil, fmt.Errorf("hydrating evidence link: %w", err)
		}
		l.EntityKind = types.EntityKind(kind)
		l.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		results = append(results, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating evidence links: %w", err)
	}

	return results, nil
}
