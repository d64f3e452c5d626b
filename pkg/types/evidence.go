package types

import "time"

// EntityKind names a project entity type that evidence can link to.
// The set is closed: backends discriminate link rows by kind, so adding a
// kind means touching this enum and nothing else.
type EntityKind string

// The four linkable entity kinds.
const (
	KindActivity    EntityKind = "activity"
	KindIndicator   EntityKind = "indicator"
	KindAsset       EntityKind = "asset"
	KindPublication EntityKind = "publication"
)

// EntityKinds lists all linkable entity kinds for enumeration.
var EntityKinds = []EntityKind{
	KindActivity,
	KindIndicator,
	KindAsset,
	KindPublication,
}

// validEntityKinds is the set of recognized entity kinds.
var validEntityKinds = map[EntityKind]bool{
	KindActivity:    true,
	KindIndicator:   true,
	KindAsset:       true,
	KindPublication: true,
}

// Valid reports whether k is one of the four linkable entity kinds.
func (k EntityKind) Valid() bool {
	return validEntityKinds[k]
}

// EvidenceLink associates an evidence record with one linkable entity.
// The (evidence id, entity kind, entity id) triple is unique; a given
// evidence record may link to many entities and a given entity may carry
// many evidence records.
type EvidenceLink struct {
	LinkID     string     `json:"link_id"`     // UUID v7, generated on creation.
	EvidenceID string     `json:"evidence_id"` // Linked evidence record.
	EntityKind EntityKind `json:"entity_kind"` // Kind of the linked entity.
	EntityID   string     `json:"entity_id"`   // Id of the linked entity.
	CreatedAt  time.Time  `json:"created_at"`  // Timestamp of creation.
}

// LinkFilter narrows an evidence link query. Empty fields are ignored.
// At least one of EvidenceID and EntityID must be set.
type LinkFilter struct {
	EvidenceID string     // Links carried by this evidence record.
	EntityKind EntityKind // Links to entities of this kind.
	EntityID   string     // Links to this entity (requires EntityKind).
}
