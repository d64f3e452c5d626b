package types

import "time"

// Attachment statuses. A new attachment always starts as planned; later
// transitions are driven by project-management flows outside this module.
const (
	AttachmentStatusPlanned   = "planned"
	AttachmentStatusMeasuring = "measuring"
	AttachmentStatusAchieved  = "achieved"
	AttachmentStatusArchived  = "archived"
)

// Attachment joins a catalog indicator to a project. At most one attachment
// exists per (project, indicator) pair; re-attaching an already-attached
// indicator is a no-op, never an update.
type Attachment struct {
	AttachmentID string    `json:"attachment_id"` // UUID v7, generated on creation.
	ProjectID    string    `json:"project_id"`    // Owning project.
	IndicatorID  string    `json:"indicator_id"`  // Attached catalog indicator.
	Baseline     string    `json:"baseline"`      // Starting value for this project.
	Target       string    `json:"target"`        // Goal value for this project.
	Responsible  string    `json:"responsible"`   // Role accountable for the indicator.
	Notes        string    `json:"notes"`         // Free-form notes.
	Status       string    `json:"status"`        // One of the AttachmentStatus constants.
	CurrentValue string    `json:"current_value"` // Latest measurement; empty until first measurement.
	CreatedAt    time.Time `json:"created_at"`    // Timestamp of creation.
	UpdatedAt    time.Time `json:"updated_at"`    // Timestamp of last modification.
}

// AttachDefaults carries optional caller-supplied field values applied to
// every attachment created in one bulk attach call.
type AttachDefaults struct {
	Baseline    string
	Target      string
	Responsible string
	Notes       string
}

// AttachResult reports the outcome of a bulk attach. Partial success is the
// normal case, not an error: Inserted+Skipped equals the number of distinct
// ids requested unless a hard store failure aborted the insert, in which
// case Inserted is 0 and Errors is non-empty.
type AttachResult struct {
	Inserted int      `json:"inserted"` // Attachments confirmed created by the store.
	Skipped  int      `json:"skipped"`  // Ids already attached, or lost to a concurrent attach.
	Errors   []string `json:"errors"`   // Human-readable messages for unexpected failures.
}
