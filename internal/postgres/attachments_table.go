// This file implements the attachments table accessor.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/impact-mesh/lantern/pkg/types"
)

// AttachedIndicatorIDs returns the set of indicator ids already attached to
// the project in a single read.
func (b *Backend) AttachedIndicatorIDs(ctx context.Context, projectID string) (map[string]bool, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	if projectID == "" {
		return nil, types.ErrInvalidID
	}

	rows, err := db.QueryContext(ctx,
		"SELECT indicator_id FROM attachments WHERE project_id = $1", projectID)
	if err != nil {
		return nil, fmt.Errorf("reading attachments for project %s: %w", projectID, err)
	}
	defer rows.Close()

	ids := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning attachment id: %w", err)
		}
		ids[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating attachment ids: %w", err)
	}

	return ids, nil
}

// InsertAttachments inserts all records in one transaction and returns the
// number confirmed created. A uniqueness violation rolls the batch back and
// returns ErrDuplicate.
func (b *Backend) InsertAttachments(ctx context.Context, records []*types.Attachment) (int, error) {
	db, err := b.conn()
	if err != nil {
		return 0, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	count := 0
	for _, r := range records {
		if r.ProjectID == "" || r.IndicatorID == "" {
			return 0, types.ErrInvalidData
		}

		if r.AttachmentID == "" {
			r.AttachmentID = generateUUID()
		}
		if r.CreatedAt.IsZero() {
			r.CreatedAt = now
		}
		if r.UpdatedAt.IsZero() {
			r.UpdatedAt = now
		}
		if r.Status == "" {
			r.Status = types.AttachmentStatusPlanned
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO attachments (attachment_id, project_id, indicator_id,
                baseline, target, responsible, notes, status, current_value,
                created_at, updated_at)
             VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			r.AttachmentID, r.ProjectID, r.IndicatorID,
			r.Baseline, r.Target, r.Responsible, r.Notes, r.Status, r.CurrentValue,
			r.CreatedAt, r.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return 0, fmt.Errorf("attachment (%s, %s): %w",
					r.ProjectID, r.IndicatorID, types.ErrDuplicate)
			}
			return 0, fmt.Errorf("inserting attachment (%s, %s): %w",
				r.ProjectID, r.IndicatorID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("counting inserted attachments: %w", err)
		}
		count += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing attachments: %w", err)
	}

	return count, nil
}
