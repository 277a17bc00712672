package ports

import "go.trai.ch/cssinjs/internal/core/domain"

// SnapshotStore defines the interface for storing and retrieving extraction snapshots.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SnapshotStore interface {
	// Get retrieves the snapshot for a given stylefile path.
	// Returns nil, nil if not found.
	Get(stylefile string) (*domain.Snapshot, error)

	// Put stores the snapshot for a given stylefile path.
	Put(stylefile string, snap domain.Snapshot) error
}
