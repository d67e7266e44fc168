package database

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	if _, err := m.Load(ctx, KeyRooms); !errors.Is(err, ErrSnapshotMissing) {
		t.Fatalf("Load of missing key error = %v, want ErrSnapshotMissing", err)
	}

	blob := []byte(`[{"id":"D101"}]`)
	if err := m.Save(ctx, KeyRooms, blob); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := m.Load(ctx, KeyRooms)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != string(blob) {
		t.Errorf("Load = %s, want %s", got, blob)
	}

	// The stored blob must be detached from the caller's slice.
	blob[0] = 'X'
	got2, _ := m.Load(ctx, KeyRooms)
	if got2[0] == 'X' {
		t.Error("Save did not copy the blob")
	}
}
