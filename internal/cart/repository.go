package cart

import "context"

// Repository persists per-session cart snapshots. The snapshot layout is a
// single serialized array of line-item records, one per distinct variant id.
type Repository interface {
	// Load returns the stored snapshot, or nil when no snapshot exists. A
	// corrupt snapshot surfaces as an error; callers treat it as empty.
	Load(ctx context.Context, sessionID string) (*Snapshot, error)
	// Save replaces the stored snapshot for the session.
	Save(ctx context.Context, sessionID string, snapshot Snapshot) error
}

// Snapshot is the persisted cart state for one session.
type Snapshot struct {
	Items        []LineItem
	AppliedPromo string
}
