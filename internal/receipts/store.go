package receipts

import "context"

// ScoreRecord is a receipt together with the points it earned. Records are
// created once at submission and never mutated.
type ScoreRecord struct {
	Receipt Receipt `json:"receipt"`
	Points  int64   `json:"points"`
}

type Store interface {
	// Submit stores the record under a freshly generated identifier and
	// returns that identifier. Existing entries are never overwritten.
	Submit(ctx context.Context, rec ScoreRecord) (string, error)
	// Get returns the record for id, reporting false when id was never
	// issued by Submit.
	Get(ctx context.Context, id string) (ScoreRecord, bool, error)
	Count(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}
