// Package chat manages the per-user collection of assistant chat
// sessions: creation, selection, deletion and message history.
package chat

import "fmt"

// Sender identifies who authored a message.
type Sender string

const (
	// SenderUser marks messages typed by the user.
	SenderUser Sender = "user"
	// SenderBot marks messages produced by the assistant.
	SenderBot Sender = "bot"
)

// Greeting opens every new or cleared session.
const Greeting = "Olá! Sou a Reski IA. Me diga seu objetivo de carreira e eu sugiro trilhas."

// Message is a single entry in a session's history.
// Messages are immutable once appended.
type Message struct {
	From Sender `json:"from"`
	Text string `json:"text"`
}

// Session is one independent conversation thread.
type Session struct {
	ID      int       `json:"id"`
	Title   string    `json:"title"`
	History []Message `json:"history"`
}

// NewSession creates a default session with the given id.
func NewSession(id int) Session {
	return Session{
		ID:      id,
		Title:   fmt.Sprintf("Chat %d", id),
		History: InitialHistory(),
	}
}

// InitialHistory returns the history every session starts with.
func InitialHistory() []Message {
	return []Message{{From: SenderBot, Text: Greeting}}
}

// Collection is the set of chat sessions owned by one identity, plus the
// pointer to the session the user is currently operating on. Sessions keep
// creation order; ids are unique within the collection.
type Collection struct {
	Chats        []Session `json:"chats"`
	ActiveChatID int       `json:"activeChatId"`

	// nextID is the session id allocator. It lives on the collection, not
	// in package state, so concurrent screens and tests stay independent.
	// Reconstructed from persisted ids on load rather than persisted.
	nextID int
}

// newCollection returns the default collection: one session with id 1,
// active, allocator ready to hand out id 2.
func newCollection() *Collection {
	return &Collection{
		Chats:        []Session{NewSession(1)},
		ActiveChatID: 1,
		nextID:       2,
	}
}

// Active returns the session ActiveChatID points at, or nil when the id
// does not resolve.
func (c *Collection) Active() *Session {
	return c.Session(c.ActiveChatID)
}

// Session returns the session with the given id, or nil.
func (c *Collection) Session(id int) *Session {
	for i := range c.Chats {
		if c.Chats[i].ID == id {
			return &c.Chats[i]
		}
	}
	return nil
}

// Len returns the number of sessions.
func (c *Collection) Len() int {
	return len(c.Chats)
}

// reseed points the allocator past the highest existing session id.
func (c *Collection) reseed() {
	max := 1
	for i := range c.Chats {
		if c.Chats[i].ID > max {
			max = c.Chats[i].ID
		}
	}
	c.nextID = max + 1
}

// allocateID returns the next session id and advances the allocator.
func (c *Collection) allocateID() int {
	id := c.nextID
	c.nextID++
	return id
}
