// Package sqlite implements the SQLite storage backend for lantern.
package sqlite

// Schema DDL. The database is the source of truth, so every statement is
// idempotent and Attach never recreates existing tables.
const (
	createCatalogItems = `CREATE TABLE IF NOT EXISTS catalog_items (
    indicator_id TEXT PRIMARY KEY,
    code TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    domain TEXT NOT NULL DEFAULT '',
    maturity TEXT NOT NULL DEFAULT '',
    definition TEXT NOT NULL DEFAULT '',
    rationale TEXT NOT NULL DEFAULT '',
    unit TEXT NOT NULL DEFAULT '',
    data_source TEXT NOT NULL DEFAULT '',
    default_baseline TEXT NOT NULL DEFAULT '',
    default_target TEXT NOT NULL DEFAULT '',
    active INTEGER NOT NULL DEFAULT 1,
    created_at TEXT NOT NULL
);`

	createAttachments = `CREATE TABLE IF NOT EXISTS attachments (
    attachment_id TEXT PRIMARY KEY,
    project_id TEXT NOT NULL,
    indicator_id TEXT NOT NULL,
    baseline TEXT NOT NULL DEFAULT '',
    target TEXT NOT NULL DEFAULT '',
    responsible TEXT NOT NULL DEFAULT '',
    notes TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL,
    current_value TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createEvidenceLinks = `CREATE TABLE IF NOT EXISTS evidence_links (
    link_id TEXT PRIMARY KEY,
    evidence_id TEXT NOT NULL,
    entity_kind TEXT NOT NULL,
    entity_id TEXT NOT NULL,
    created_at TEXT NOT NULL
);`
)

// Index DDL. The two UNIQUE indexes carry the module's core invariants:
// one attachment per (project, indicator) pair and one evidence link per
// (evidence, kind, entity) triple.
const (
	idxCatalogDomain      = `CREATE INDEX IF NOT EXISTS idx_catalog_domain ON catalog_items(domain, code);`
	idxAttachmentsUnique  = `CREATE UNIQUE INDEX IF NOT EXISTS idx_attachments_unique ON attachments(project_id, indicator_id);`
	idxAttachmentsProject = `CREATE INDEX IF NOT EXISTS idx_attachments_project ON attachments(project_id);`
	idxLinksUnique        = `CREATE UNIQUE INDEX IF NOT EXISTS idx_links_unique ON evidence_links(evidence_id, entity_kind, entity_id);`
	idxLinksEntity        = `CREATE INDEX IF NOT EXISTS idx_links_entity ON evidence_links(entity_kind, entity_id);`
	idxLinksEvidence      = `CREATE INDEX IF NOT EXISTS idx_links_evidence ON evidence_links(evidence_id);`
)

// schemaDDL lists all CREATE statements in execution order.
var schemaDDL = []string{
	createCatalogItems,
	createAttachments,
	createEvidenceLinks,
	idxCatalogDomain,
	idxAttachmentsUnique,
	idxAttachmentsProject,
	idxLinksUnique,
	idxLinksEntity,
	idxLinksEvidence,
}
