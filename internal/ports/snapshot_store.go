package ports

import (
	"context"

	"github.com/aalvaropc/innkeep/internal/domain"
)

// SnapshotStore loads and rewrites the complete record set.
type SnapshotStore interface {
	// Load returns an empty snapshot when nothing has been stored yet.
	Load(ctx context.Context) (domain.Snapshot, error)
	Save(ctx context.Context, snap domain.Snapshot) error
}
