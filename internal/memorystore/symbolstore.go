package memorystore

import (
	"sync"

	"autochart/internal/snapshot"
)

// SnapshotStore holds the current symbol snapshot. Replace swaps it whole, so
// readers never observe a half-applied reload.
type SnapshotStore struct {
	mu     sync.RWMutex
	snap   snapshot.Snapshot
	loaded bool
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

func (s *SnapshotStore) Replace(snap snapshot.Snapshot) {
	snap = clone(snap)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	s.loaded = true
}

// Get returns a copy of the current snapshot.
func (s *SnapshotStore) Get() snapshot.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.snap)
}

// Loaded reports whether a snapshot has been stored.
func (s *SnapshotStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func clone(snap snapshot.Snapshot) snapshot.Snapshot {
	return snapshot.Snapshot{
		Stocks:                    copyOf(snap.Stocks),
		CryptoTickers:             copyOf(snap.CryptoTickers),
		CryptoTickersWithExchange: copyOf(snap.CryptoTickersWithExchange),
		LoadedAt:                  snap.LoadedAt,
	}
}

func copyOf(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
