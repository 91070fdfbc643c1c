package assistant

import (
	"context"
	"log"
	"strings"
	"sync/atomic"

	"github.com/reskiapp/reski/internal/chat"
)

const (
	// FallbackReply is shown when the service answers without a reply.
	FallbackReply = "Sem resposta no momento."
	// ErrorReply is shown when the round-trip fails.
	ErrorReply = "Erro ao se comunicar com a IA."
)

// Asker is the remote call the controller depends on.
type Asker interface {
	Ask(ctx context.Context, text string) (string, error)
}

// Controller drives one chat round-trip at a time against the assistant:
// optimistic user append, remote call, reconcile. Failures become a fixed
// assistant message; nothing is surfaced to the caller.
type Controller struct {
	store  *chat.Store
	client Asker

	inflight atomic.Bool
	closed   atomic.Bool
}

// NewController creates a controller bound to a session store.
func NewController(store *chat.Store, client Asker) *Controller {
	return &Controller{store: store, client: client}
}

// Busy reports whether a send is in flight. The rendering layer uses it
// to disable duplicate submission.
func (c *Controller) Busy() bool {
	return c.inflight.Load()
}

// Close marks the owning screen as gone. A send already in flight still
// completes its remote call but no longer mutates the collection.
func (c *Controller) Close() {
	c.closed.Store(true)
}

// Send runs one exchange against the active session. Blank text, a
// dangling active session or a send already in flight are silent no-ops.
// Send blocks until the exchange settles; run it off the UI loop.
func (c *Controller) Send(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	active := c.store.Active()
	if active == nil {
		return
	}
	if !c.inflight.CompareAndSwap(false, true) {
		return
	}
	defer c.inflight.Store(false)

	// The user's own message is visible before the network settles.
	id := active.ID
	c.store.Append(ctx, id, chat.Message{From: chat.SenderUser, Text: text})

	reply, err := c.client.Ask(ctx, text)

	if c.closed.Load() {
		return
	}
	if err != nil {
		log.Printf("assistant: %v", err)
		c.store.Append(ctx, id, chat.Message{From: chat.SenderBot, Text: ErrorReply})
		return
	}
	if reply == "" {
		reply = FallbackReply
	}
	c.store.Append(ctx, id, chat.Message{From: chat.SenderBot, Text: reply})
}
