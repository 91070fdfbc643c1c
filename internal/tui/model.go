// Package tui renders the assistant chat screen: session chips, message
// history and the input row. All state changes go through the chat store
// and the conversation controller; the TUI never touches persistence
// directly.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/reskiapp/reski/internal/assistant"
	"github.com/reskiapp/reski/internal/chat"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type sendDoneMsg struct{}
type spinMsg struct{}

// Model is the bubbletea model for the chat screen.
type Model struct {
	store *chat.Store
	ctrl  *assistant.Controller

	input  textarea.Model
	vp     viewport.Model
	keys   keyMap
	styles styles

	width  int
	height int
	ready  bool

	sending    bool
	spinnerPos int
}

// New creates the chat screen bound to a store and controller.
func New(store *chat.Store, ctrl *assistant.Controller) *Model {
	ta := textarea.New()
	ta.Placeholder = "Digite sua mensagem..."
	ta.Focus()
	ta.CharLimit = 2000
	ta.SetHeight(1)
	ta.Prompt = "▍ "
	ta.ShowLineNumbers = false
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.BlurredStyle.CursorLine = lipgloss.NewStyle()

	return &Model{
		store:  store,
		ctrl:   ctrl,
		input:  ta,
		keys:   defaultKeyMap(),
		styles: defaultStyles(),
	}
}

// Run starts the TUI program and blocks until it exits.
func Run(store *chat.Store, ctrl *assistant.Controller) error {
	_, err := tea.NewProgram(New(store, ctrl), tea.WithAltScreen()).Run()
	return err
}

// Init initializes the TUI.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles UI events.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(msg.Width - 4)
		chrome := 8 // header, chips, input and help rows
		m.vp = viewport.New(msg.Width-2, max(msg.Height-chrome, 3))
		m.ready = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.ctrl.Close()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Send):
			text := m.input.Value()
			if m.sending {
				return m, nil
			}
			m.input.Reset()
			m.sending = true
			m.spinnerPos = 0
			return m, tea.Batch(m.sendCmd(text), spinCmd())

		case key.Matches(msg, m.keys.NewChat):
			m.store.Create(ctx)
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.CloseChat):
			m.store.Delete(ctx, m.store.Snapshot().ActiveChatID)
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.ClearChat):
			m.store.ClearHistory(ctx, m.store.Snapshot().ActiveChatID)
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.NextChat):
			m.store.SetActive(ctx, nextActiveID(m.store.Snapshot()))
			m.refresh()
			return m, nil
		}

	case sendDoneMsg:
		m.sending = false
		m.refresh()
		return m, nil

	case spinMsg:
		if !m.sending {
			return m, nil
		}
		m.spinnerPos = (m.spinnerPos + 1) % len(spinnerFrames)
		// Also picks up the optimistic user message appended by the
		// controller while the request is in flight.
		m.refresh()
		return m, spinCmd()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// sendCmd runs one exchange off the UI loop. Blank input and duplicate
// submissions are no-ops inside the controller.
func (m *Model) sendCmd(text string) tea.Cmd {
	return func() tea.Msg {
		m.ctrl.Send(context.Background(), text)
		return sendDoneMsg{}
	}
}

func spinCmd() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(time.Time) tea.Msg {
		return spinMsg{}
	})
}

// refresh re-renders the message viewport and follows the tail.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.vp.SetContent(m.renderMessages())
	m.vp.GotoBottom()
}

// nextActiveID returns the id after the active one in creation order,
// wrapping around.
func nextActiveID(col chat.Collection) int {
	chats := col.Chats
	for i := range chats {
		if chats[i].ID == col.ActiveChatID {
			return chats[(i+1)%len(chats)].ID
		}
	}
	return chats[0].ID
}
