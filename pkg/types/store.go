package types

import (
	"context"
	"errors"
)

// Store is the storage surface consumed by the catalog, attach, and
// evidence components. Implementations enforce the uniqueness invariants
// (one Attachment per (project, indicator) pair, one EvidenceLink per
// (evidence, kind, entity) triple) and surface violations as ErrDuplicate.
//
// Every call takes a context; a caller abandoning an operation cancels the
// underlying store request through it.
type Store interface {
	// QueryCatalog returns active indicators matching the filter, ordered
	// by domain then code ascending. The filter is assumed normalized.
	QueryCatalog(ctx context.Context, filter CatalogFilter) ([]*Indicator, error)

	// ImportCatalog upserts curated indicators by code and returns the
	// number of records written.
	ImportCatalog(ctx context.Context, indicators []*Indicator) (int, error)

	// AttachedIndicatorIDs returns the set of indicator ids already
	// attached to the project, in a single bulk read.
	AttachedIndicatorIDs(ctx context.Context, projectID string) (map[string]bool, error)

	// InsertAttachments inserts all records in one transaction and returns
	// the number confirmed created. A uniqueness violation rolls back the
	// batch and returns ErrDuplicate.
	InsertAttachments(ctx context.Context, records []*Attachment) (int, error)

	// InsertLink inserts one evidence link. Returns ErrDuplicate if the
	// triple already exists.
	InsertLink(ctx context.Context, link *EvidenceLink) error

	// DeleteLink removes the link matching the triple. Deleting an absent
	// link is a silent no-op.
	DeleteLink(ctx context.Context, evidenceID string, kind EntityKind, entityID string) error

	// QueryLinks returns links matching the filter, newest first.
	QueryLinks(ctx context.Context, filter LinkFilter) ([]*EvidenceLink, error)
}

// Backend couples a Store with its lifecycle. Callers attach with a Config,
// use the Store, and detach when done.
type Backend interface {
	Store

	// Attach connects to the backing store described by config. Returns
	// ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, store operations return ErrDetached.
	Detach() error
}

// Backend lifecycle errors.
var (
	ErrDetached        = errors.New("backend is detached")
	ErrAlreadyAttached = errors.New("backend is already attached")
)

// Store operation errors.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicate         = errors.New("unique constraint violated")
	ErrInvalidID         = errors.New("invalid id")
	ErrInvalidData       = errors.New("invalid record data")
	ErrInvalidFilter     = errors.New("invalid filter")
	ErrEmptyBatch        = errors.New("empty id set")
	ErrInvalidEntityKind = errors.New("invalid entity kind")
)
