package chat

import (
	"context"
	"reflect"
	"sync"
	"testing"

	"github.com/reskiapp/reski/internal/kv"
)

func TestOpenFreshIdentity(t *testing.T) {
	ctx := context.Background()
	s := Open(ctx, kv.NewMemoryStore(), "anon")

	col := s.Collection()
	if col.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", col.Len())
	}

	sess := col.Chats[0]
	if sess.ID != 1 {
		t.Errorf("ID = %d, want 1", sess.ID)
	}
	if sess.Title != "Chat 1" {
		t.Errorf("Title = %q, want %q", sess.Title, "Chat 1")
	}
	want := []Message{{From: SenderBot, Text: Greeting}}
	if !reflect.DeepEqual(sess.History, want) {
		t.Errorf("History = %v, want %v", sess.History, want)
	}
	if col.ActiveChatID != 1 {
		t.Errorf("ActiveChatID = %d, want 1", col.ActiveChatID)
	}
}

func TestPersistRoundTrip(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryStore()

	s := Open(ctx, mem, "user-1")
	s.Create(ctx)
	s.Append(ctx, 2, Message{From: SenderUser, Text: "quero ser dev"})
	s.SetActive(ctx, 1)

	reloaded := Open(ctx, mem, "user-1")
	if !reflect.DeepEqual(reloaded.Collection().Chats, s.Collection().Chats) {
		t.Errorf("reloaded chats = %+v, want %+v", reloaded.Collection().Chats, s.Collection().Chats)
	}
	if reloaded.Collection().ActiveChatID != 1 {
		t.Errorf("reloaded ActiveChatID = %d, want 1", reloaded.Collection().ActiveChatID)
	}
}

func TestCreateIDsMonotonic(t *testing.T) {
	ctx := context.Background()
	s := Open(ctx, kv.NewMemoryStore(), "anon")

	seen := map[int]bool{1: true}
	max := 1
	for i := 0; i < 5; i++ {
		id := s.Create(ctx)
		if id <= max {
			t.Errorf("Create() = %d, want > %d", id, max)
		}
		if seen[id] {
			t.Errorf("Create() = %d reused", id)
		}
		seen[id] = true
		max = id

		if s.Collection().ActiveChatID != id {
			t.Errorf("ActiveChatID = %d, want %d", s.Collection().ActiveChatID, id)
		}
	}
}

func TestReseedFromPersisted(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryStore()

	s := Open(ctx, mem, "anon")
	s.Create(ctx) // id 2
	s.Create(ctx) // id 3
	s.Delete(ctx, 2)

	// ids {1, 3}: a reloaded store must allocate past the max, not fill gaps.
	reloaded := Open(ctx, mem, "anon")
	if id := reloaded.Create(ctx); id != 4 {
		t.Errorf("Create() after reload = %d, want 4", id)
	}
}

func TestDeleteLastSessionResets(t *testing.T) {
	ctx := context.Background()
	s := Open(ctx, kv.NewMemoryStore(), "anon")

	s.Create(ctx) // id 2
	s.Delete(ctx, 1)
	s.Delete(ctx, 2)

	col := s.Collection()
	if col.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", col.Len())
	}
	sess := col.Chats[0]
	if sess.ID != 1 || sess.Title != "Chat 1" {
		t.Errorf("session = {%d %q}, want {1 %q}", sess.ID, sess.Title, "Chat 1")
	}
	if !reflect.DeepEqual(sess.History, InitialHistory()) {
		t.Errorf("History = %v, want greeting only", sess.History)
	}
	if col.ActiveChatID != 1 {
		t.Errorf("ActiveChatID = %d, want 1", col.ActiveChatID)
	}
	if id := s.Create(ctx); id != 2 {
		t.Errorf("Create() after reset = %d, want 2", id)
	}
}

func TestDeleteActiveFallsBackToLast(t *testing.T) {
	ctx := context.Background()
	s := Open(ctx, kv.NewMemoryStore(), "anon")

	s.Create(ctx) // id 2
	s.Create(ctx) // id 3
	s.SetActive(ctx, 2)

	s.Delete(ctx, 2)

	col := s.Collection()
	if col.ActiveChatID != 3 {
		t.Errorf("ActiveChatID = %d, want 3", col.ActiveChatID)
	}
	ids := []int{}
	for _, c := range col.Chats {
		ids = append(ids, c.ID)
	}
	if !reflect.DeepEqual(ids, []int{1, 3}) {
		t.Errorf("ids = %v, want [1 3]", ids)
	}
}

func TestDeleteInactiveKeepsActive(t *testing.T) {
	ctx := context.Background()
	s := Open(ctx, kv.NewMemoryStore(), "anon")

	s.Create(ctx) // id 2
	s.Create(ctx) // id 3, active

	s.Delete(ctx, 1)

	if got := s.Collection().ActiveChatID; got != 3 {
		t.Errorf("ActiveChatID = %d, want 3", got)
	}
}

func TestClearHistory(t *testing.T) {
	ctx := context.Background()
	s := Open(ctx, kv.NewMemoryStore(), "anon")

	s.Append(ctx, 1, Message{From: SenderUser, Text: "oi"})
	s.Append(ctx, 1, Message{From: SenderBot, Text: "olá"})
	s.ClearHistory(ctx, 1)

	if got := s.Active().History; !reflect.DeepEqual(got, InitialHistory()) {
		t.Errorf("History = %v, want greeting only", got)
	}
}

func TestUpdateHistoryUnknownIDNoop(t *testing.T) {
	ctx := context.Background()
	s := Open(ctx, kv.NewMemoryStore(), "anon")

	before := s.Active().History
	s.UpdateHistory(ctx, 99, nil)
	s.Append(ctx, 99, Message{From: SenderUser, Text: "lost"})

	if got := s.Active().History; !reflect.DeepEqual(got, before) {
		t.Errorf("History = %v, want unchanged %v", got, before)
	}
}

func TestOpenMalformedFallsBack(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name string
		data string
	}{
		{"not json", "{{{"},
		{"chats not a list", `{"chats": 42, "activeChatId": 5}`},
		{"empty chats", `{"chats": [], "activeChatId": 5}`},
		{"null chats", `{"activeChatId": 5}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mem := kv.NewMemoryStore()
			if err := mem.SetItem(ctx, Key("anon"), []byte(tc.data)); err != nil {
				t.Fatalf("SetItem() error = %v", err)
			}

			s := Open(ctx, mem, "anon")
			col := s.Collection()
			if col.Len() != 1 || col.Chats[0].ID != 1 || col.ActiveChatID != 1 {
				t.Errorf("collection = %+v, want fresh default", col)
			}
			if id := s.Create(ctx); id != 2 {
				t.Errorf("Create() = %d, want 2", id)
			}
		})
	}
}

func TestOpenMissingActiveDefaultsToFirst(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryStore()

	data := `{"chats": [
		{"id": 4, "title": "Chat 4", "history": []},
		{"id": 7, "title": "Chat 7", "history": []}
	]}`
	if err := mem.SetItem(ctx, Key("anon"), []byte(data)); err != nil {
		t.Fatalf("SetItem() error = %v", err)
	}

	s := Open(ctx, mem, "anon")
	if got := s.Collection().ActiveChatID; got != 4 {
		t.Errorf("ActiveChatID = %d, want 4", got)
	}
	if id := s.Create(ctx); id != 8 {
		t.Errorf("Create() = %d, want 8 (reseeded past max id)", id)
	}
}

func TestSetActiveDoesNotValidate(t *testing.T) {
	ctx := context.Background()
	s := Open(ctx, kv.NewMemoryStore(), "anon")

	// Callers are expected to pass known ids; a foreign id dangles.
	s.SetActive(ctx, 42)
	if got := s.Collection().ActiveChatID; got != 42 {
		t.Errorf("ActiveChatID = %d, want 42", got)
	}
	if s.Active() != nil {
		t.Error("Active() should be nil for a dangling id")
	}
}

func TestIsolationBetweenIdentities(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryStore()

	a := Open(ctx, mem, "alice@example.com")
	a.Create(ctx)
	a.Append(ctx, 2, Message{From: SenderUser, Text: "só meu"})

	b := Open(ctx, mem, "bob@example.com")
	if b.Collection().Len() != 1 {
		t.Errorf("bob Len() = %d, want 1", b.Collection().Len())
	}
}

// A send in flight appends to its session while the user keeps creating
// and switching sessions on another goroutine. Run with -race.
func TestConcurrentAppendAndCreate(t *testing.T) {
	ctx := context.Background()
	s := Open(ctx, kv.NewMemoryStore(), "anon")

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			s.Append(ctx, 1, Message{From: SenderUser, Text: "oi"})
			_ = s.Snapshot()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			id := s.Create(ctx)
			s.SetActive(ctx, id)
			_ = s.Snapshot()
		}
	}()
	wg.Wait()

	col := s.Collection()
	if col.Len() != rounds+1 {
		t.Errorf("Len() = %d, want %d", col.Len(), rounds+1)
	}
	if got := len(col.Session(1).History); got != rounds+1 {
		t.Errorf("len(history) = %d, want %d", got, rounds+1)
	}
}
