// Package testutil provides shared helpers for Reski tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/reskiapp/reski/internal/chat"
	"github.com/reskiapp/reski/internal/kv"
	"github.com/reskiapp/reski/internal/store"
)

// NewTestStore creates a temporary SQLite store for a test.
// The database is cleaned up when the test completes.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewTestStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// NewChatStore creates an in-memory chat store for the given identity.
func NewChatStore(t *testing.T, identity string) *chat.Store {
	t.Helper()
	return chat.Open(context.Background(), kv.NewMemoryStore(), identity)
}

// CreateTestGoal creates a goal in the store.
func CreateTestGoal(t *testing.T, s *store.Store, cargo string) *store.Goal {
	t.Helper()

	goal, err := s.CreateGoal(cargo, "TI", "alta", "descrição de teste")
	if err != nil {
		t.Fatalf("CreateTestGoal: %v", err)
	}
	return goal
}

// CreateTestTrack creates a track in the store.
func CreateTestTrack(t *testing.T, s *store.Store, conteudo, competencia string) *store.Track {
	t.Helper()

	track, err := s.CreateTrack(conteudo, "pendente", competencia)
	if err != nil {
		t.Fatalf("CreateTestTrack: %v", err)
	}
	return track
}
