package database

import (
	"context"
	"errors"
)

// Snapshot keys, one per top-level collection. The names match the keys
// the original SAIZU frontend used in browser storage, so an exported
// snapshot stays recognizable.
const (
	KeyRooms    = "saizu_rooms"
	KeyBookings = "saizu_bookings"
	KeyUser     = "saizu_user"
	KeyTheme    = "theme"
)

// ErrSnapshotMissing is returned by Load when the key has never been
// written; callers fall back to the seed dataset.
var ErrSnapshotMissing = errors.New("snapshot key not found")

// SnapshotStore is the durable key-value persistence port: JSON blobs
// keyed by collection, read once at startup and written after mutations.
type SnapshotStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
}
