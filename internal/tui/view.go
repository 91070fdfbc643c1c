package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/reskiapp/reski/internal/chat"
)

type styles struct {
	title      lipgloss.Style
	subtitle   lipgloss.Style
	chip       lipgloss.Style
	chipActive lipgloss.Style
	userBubble lipgloss.Style
	botBubble  lipgloss.Style
	help       lipgloss.Style
	inputBox   lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FDBA74")),
		subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080")),
		chip: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4B5563")),
		chipActive: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FDBA74")).
			Foreground(lipgloss.Color("#FDBA74")).
			Bold(true),
		userBubble: lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color("#F97316")).
			Foreground(lipgloss.Color("#FFFFFF")),
		botBubble: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4B5563")),
		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")),
		inputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4B5563")),
	}
}

// View renders the chat screen.
func (m *Model) View() string {
	if !m.ready {
		return "carregando..."
	}

	var b strings.Builder

	b.WriteString(m.styles.title.Render("Reski IA"))
	if m.sending {
		b.WriteString("  " + spinnerFrames[m.spinnerPos] + " enviando...")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.subtitle.Render("Converse com a IA e receba sugestões personalizadas."))
	b.WriteString("\n")

	b.WriteString(m.renderChips())
	b.WriteString("\n")

	b.WriteString(m.vp.View())
	b.WriteString("\n")

	b.WriteString(m.styles.inputBox.Width(m.width - 2).Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.styles.help.Render(
		"enter enviar · ctrl+n novo · ctrl+w fechar · ctrl+l limpar · tab alternar · ctrl+c sair"))

	return b.String()
}

// renderChips draws one chip per session, highlighting the active one.
func (m *Model) renderChips() string {
	col := m.store.Snapshot()

	chips := make([]string, 0, len(col.Chats))
	for _, c := range col.Chats {
		style := m.styles.chip
		if c.ID == col.ActiveChatID {
			style = m.styles.chipActive
		}
		chips = append(chips, style.Render(c.Title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, chips...)
}

// renderMessages draws the active session's history, user messages on the
// right, assistant messages on the left.
func (m *Model) renderMessages() string {
	col := m.store.Snapshot()
	active := col.Active()
	if active == nil {
		return ""
	}

	width := m.vp.Width
	maxBubble := width * 85 / 100

	var rows []string
	for _, msg := range active.History {
		switch msg.From {
		case chat.SenderUser:
			bubble := m.styles.userBubble.MaxWidth(maxBubble).Render(msg.Text)
			rows = append(rows, lipgloss.PlaceHorizontal(width, lipgloss.Right, bubble))
		default:
			bubble := m.styles.botBubble.MaxWidth(maxBubble).Render(msg.Text)
			rows = append(rows, lipgloss.PlaceHorizontal(width, lipgloss.Left, bubble))
		}
	}
	return strings.Join(rows, "\n")
}
