package chat

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/reskiapp/reski/internal/kv"
)

// Namespace prefixes every persisted chat collection key.
const Namespace = "reski_ai_chats"

// Key derives the storage key for an identity.
func Key(identity string) string {
	return Namespace + ":" + identity
}

// Store owns the chat collection for one identity and keeps it convergent
// with the key-value store. Every mutation is followed by a whole-value
// persistence write; a failed write is logged and reconciled by the next
// successful one.
//
// Store is safe for concurrent use: mutations run under an internal lock,
// and concurrent readers take Snapshot instead of holding live pointers
// into the collection.
type Store struct {
	kv       kv.Store
	identity string

	mu  sync.RWMutex
	col *Collection
}

// persisted is the wire form of a collection. ActiveChatID is a pointer so
// an absent value can be told apart from id 0.
type persisted struct {
	Chats        []Session `json:"chats"`
	ActiveChatID *int      `json:"activeChatId"`
}

// Open loads the persisted collection for identity, falling back to the
// default collection when nothing is stored or the stored bytes are
// malformed. It never fails: decode problems are logged and recovered.
func Open(ctx context.Context, store kv.Store, identity string) *Store {
	s := &Store{kv: store, identity: identity}
	s.col = s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) *Collection {
	data, err := s.kv.GetItem(ctx, Key(s.identity))
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			log.Printf("chat: load %q: %v", s.identity, err)
		}
		return newCollection()
	}

	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("chat: decode %q: %v", s.identity, err)
		return newCollection()
	}
	if len(p.Chats) == 0 {
		// Missing, null or empty chats list: start over.
		return newCollection()
	}

	col := &Collection{Chats: p.Chats}
	if p.ActiveChatID != nil {
		col.ActiveChatID = *p.ActiveChatID
	} else {
		col.ActiveChatID = p.Chats[0].ID
	}
	col.reseed()
	return col
}

// Persist writes the current collection under the identity's key.
// Fire-and-forget: failures are logged, never surfaced or retried.
func (s *Store) Persist(ctx context.Context) {
	s.mu.RLock()
	data, err := json.Marshal(persisted{
		Chats:        s.col.Chats,
		ActiveChatID: &s.col.ActiveChatID,
	})
	s.mu.RUnlock()
	if err != nil {
		log.Printf("chat: encode %q: %v", s.identity, err)
		return
	}
	if err := s.kv.SetItem(ctx, Key(s.identity), data); err != nil {
		log.Printf("chat: persist %q: %v", s.identity, err)
	}
}

// Collection returns the in-memory collection. It is the source of truth
// for rendering; the persisted copy only matters across restarts. The
// returned pointer is not synchronized; concurrent readers use Snapshot.
func (s *Store) Collection() *Collection {
	return s.col
}

// Snapshot returns a point-in-time copy of the collection that is safe to
// read while other goroutines mutate the store.
func (s *Store) Snapshot() Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chats := make([]Session, len(s.col.Chats))
	copy(chats, s.col.Chats)
	return Collection{Chats: chats, ActiveChatID: s.col.ActiveChatID}
}

// Active returns the active session, or nil if ActiveChatID is dangling.
func (s *Store) Active() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.col.Active()
}

// SetActive points the collection at the given session id. The id is not
// validated against the session set; callers pass ids they obtained from
// the collection.
func (s *Store) SetActive(ctx context.Context, id int) {
	s.mu.Lock()
	s.col.ActiveChatID = id
	s.mu.Unlock()
	s.Persist(ctx)
}

// Create appends a new default session, makes it active and returns its id.
func (s *Store) Create(ctx context.Context) int {
	s.mu.Lock()
	id := s.col.allocateID()
	s.col.Chats = append(s.col.Chats, NewSession(id))
	s.col.ActiveChatID = id
	s.mu.Unlock()
	s.Persist(ctx)
	return id
}

// Delete removes the session with the given id. Deleting the last
// remaining session ignores the id and resets the collection to a single
// fresh session with id 1, restarting the allocator at 2. When the active
// session is removed, the new last session becomes active.
func (s *Store) Delete(ctx context.Context, id int) {
	s.mu.Lock()
	if len(s.col.Chats) == 1 {
		s.col.Chats = []Session{NewSession(1)}
		s.col.ActiveChatID = 1
		s.col.nextID = 2
		s.mu.Unlock()
		s.Persist(ctx)
		return
	}

	filtered := s.col.Chats[:0]
	for _, c := range s.col.Chats {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}
	s.col.Chats = filtered

	if id == s.col.ActiveChatID {
		s.col.ActiveChatID = filtered[len(filtered)-1].ID
	}
	s.mu.Unlock()
	s.Persist(ctx)
}

// UpdateHistory replaces the history of the session with the given id.
// No-op when the id does not resolve.
func (s *Store) UpdateHistory(ctx context.Context, id int, history []Message) {
	s.mu.Lock()
	sess := s.col.Session(id)
	if sess == nil {
		s.mu.Unlock()
		return
	}
	sess.History = history
	s.mu.Unlock()
	s.Persist(ctx)
}

// Append adds a message to the session with the given id.
// No-op when the id does not resolve.
func (s *Store) Append(ctx context.Context, id int, msg Message) {
	s.mu.Lock()
	sess := s.col.Session(id)
	if sess == nil {
		s.mu.Unlock()
		return
	}
	sess.History = append(sess.History, msg)
	s.mu.Unlock()
	s.Persist(ctx)
}

// ClearHistory resets the session's history to the initial greeting.
func (s *Store) ClearHistory(ctx context.Context, id int) {
	s.UpdateHistory(ctx, id, InitialHistory())
}
