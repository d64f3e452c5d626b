package types

import "time"

// Maturity tiers for catalog indicators. Tiers are descriptive data, not a
// validated enum: the catalog is curated externally and may introduce tiers.
const (
	MaturityFoundation   = "foundation"
	MaturityIntermediate = "intermediate"
	MaturityExpert       = "expert"
)

// FilterAll is the sentinel filter value treated identically to an absent
// filter field.
const FilterAll = "all"

// DefaultQueryLimit is the window size applied when an offset is requested
// without an explicit limit.
const DefaultQueryLimit = 50

// Indicator is a reusable catalog record, not owned by any one project.
// Indicators are created and retired by external curation; this module
// treats them as read-only apart from the import path.
// The json tags are the curated JSONL hand-off format and match the store
// column names.
type Indicator struct {
	IndicatorID     string    `json:"indicator_id"`     // UUID v7, generated on import when absent.
	Code            string    `json:"code"`             // Curation-assigned short code, e.g. "COM-01".
	Name            string    `json:"name"`             // Human-readable name (required, non-empty).
	Domain          string    `json:"domain"`           // Classification tag, e.g. "communication".
	Maturity        string    `json:"maturity"`         // Maturity tier (one of the Maturity constants).
	Definition      string    `json:"definition"`       // What the indicator measures.
	Rationale       string    `json:"rationale"`        // Why the indicator matters.
	Unit            string    `json:"unit"`             // Measurement unit, e.g. "percent".
	DataSource      string    `json:"data_source"`      // Where measurements come from.
	DefaultBaseline string    `json:"default_baseline"` // Suggested baseline for new attachments.
	DefaultTarget   string    `json:"default_target"`   // Suggested target for new attachments.
	Active          bool      `json:"active"`           // Retired indicators stay stored but never match queries.
	CreatedAt       time.Time `json:"created_at"`       // Timestamp of creation.
}

// CatalogFilter narrows a catalog query. Every field is optional; the zero
// value (or FilterAll for Domain/Maturity) means no constraint on that field.
type CatalogFilter struct {
	Domain   string // Exact domain match.
	Maturity string // Exact maturity tier match.
	Search   string // Case-insensitive substring over name, code, definition (OR).
	Limit    int    // Maximum number of results; 0 means no limit unless Offset is set.
	Offset   int    // Number of leading results to skip.
}

// Normalize resolves the FilterAll sentinel and the default window size.
// The returned filter is what backends receive.
func (f CatalogFilter) Normalize() CatalogFilter {
	if f.Domain == FilterAll {
		f.Domain = ""
	}
	if f.Maturity == FilterAll {
		f.Maturity = ""
	}
	if f.Offset > 0 && f.Limit <= 0 {
		f.Limit = DefaultQueryLimit
	}
	if f.Limit < 0 {
		f.Limit = 0
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}
