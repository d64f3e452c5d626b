// Package attach bulk-attaches catalog indicators to a project.
//
// Attach reconciles the requested id set against shared state that other
// callers mutate concurrently: it snapshots the project's existing
// attachments in one bulk read, inserts only the difference in one bulk
// write, and absorbs the uniqueness conflict a lost race produces. The
// guarantee is all-or-nothing per indicator, never per batch.
package attach

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/impact-mesh/lantern/pkg/types"
)

// Service performs bulk attachment of catalog indicators to projects.
type Service struct {
	store types.Store
}

// NewService creates an attach service over the given store.
func NewService(store types.Store) *Service {
	return &Service{store: store}
}

// Attach attaches the given indicator ids to the project and reports a
// structured outcome. Ids already attached count as skipped. A uniqueness
// conflict during the insert means a concurrent attach won the race between
// the snapshot read and the write; the whole inserted batch is then counted
// as skipped, which loses no data because the racing row already satisfies
// the invariant. Any other store failure is appended to the result's Errors
// and also returned, so callers keep the counts computed so far.
//
// The input is treated as a set; duplicate ids collapse before accounting.
func (s *Service) Attach(ctx context.Context, projectID string, indicatorIDs []string, defaults *types.AttachDefaults) (types.AttachResult, error) {
	var result types.AttachResult

	if projectID == "" {
		return result, types.ErrInvalidID
	}
	if len(indicatorIDs) == 0 {
		return result, types.ErrEmptyBatch
	}
	requested := make([]string, 0, len(indicatorIDs))
	seen := make(map[string]bool, len(indicatorIDs))
	for _, id := range indicatorIDs {
		if id == "" {
			return result, types.ErrInvalidID
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		requested = append(requested, id)
	}

	existing, err := s.store.AttachedIndicatorIDs(ctx, projectID)
	if err != nil {
		err = fmt.Errorf("reading existing attachments: %w", err)
		result.Errors = append(result.Errors, err.Error())
		return result, err
	}

	toInsert := make([]string, 0, len(requested))
	for _, id := range requested {
		if existing[id] {
			result.Skipped++
			continue
		}
		toInsert = append(toInsert, id)
	}
	if len(toInsert) == 0 {
		return result, nil
	}

	records := buildAttachments(projectID, toInsert, defaults)

	inserted, err := s.store.InsertAttachments(ctx, records)
	switch {
	case err == nil:
		result.Inserted = inserted
	case errors.Is(err, types.ErrDuplicate):
		// A concurrent attach won the race. The batch insert is a single
		// transaction, so nothing was written; count the batch as skipped.
		result.Skipped += len(toInsert)
	default:
		err = fmt.Errorf("inserting attachments: %w", err)
		result.Errors = append(result.Errors, err.Error())
		return result, err
	}

	return result, nil
}

// buildAttachments constructs one attachment record per indicator id,
// carrying the caller's defaults and the fixed initial status. The current
// value starts unset.
func buildAttachments(projectID string, indicatorIDs []string, defaults *types.AttachDefaults) []*types.Attachment {
	now := time.Now().UTC()

	records := make([]*types.Attachment, 0, len(indicatorIDs))
	for _, id := range indicatorIDs {
		record := &types.Attachment{
			ProjectID:   projectID,
			IndicatorID: id,
			Status:      types.AttachmentStatusPlanned,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if defaults != nil {
			record.Baseline = defaults.Baseline
			record.Target = defaults.Target
			record.Responsible = defaults.Responsible
			record.Notes = defaults.Notes
		}
		records = append(records, record)
	}
	return records
}
