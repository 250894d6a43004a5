package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *model) View() string {
	m.refreshViewportIfDirty()
	return joinNonEmpty([]string{
		m.headerView(),
		m.viewport.View(),
		m.formPanel(),
		m.footerView(),
	})
}

// headerView renders the full hero until the reader scrolls past the compact
// threshold, after which the branding condenses to a single bar.
func (m *model) headerView() string {
	if m.chrome.HeaderCompact {
		return compactHeaderStyle.Render("POCT TOOLKIT · " + heroTagline)
	}
	logo := logoFaceStyle.Render(strings.Join(logoArtLines, "\n"))
	wordmark := cardTitleStyle.Render("POCT TOOLKIT")
	return lipgloss.JoinVertical(
		lipgloss.Left,
		heroBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, logo, wordmark)),
		taglineStyle.Render(heroTagline),
	)
}

func (m *model) formPanel() string {
	switch m.form {
	case formIdle:
		var b strings.Builder
		b.WriteString(sectionHeaderStyle.Render("Suggest a Tool"))
		b.WriteRune('\n')
		b.WriteString(fieldLabelStyle.Render("Tool Idea"))
		b.WriteRune('\n')
		b.WriteString(m.ideaInput.View())
		b.WriteRune('\n')
		b.WriteString(helperStyle.Render("Enter sends · Esc closes"))
		return formBoxStyle.Render(b.String())
	case formSubmitting:
		var b strings.Builder
		b.WriteString(sectionHeaderStyle.Render("Suggest a Tool"))
		b.WriteRune('\n')
		b.WriteString(fieldLabelStyle.Render("Tool Idea"))
		b.WriteRune('\n')
		b.WriteString(m.ideaInput.View())
		b.WriteRune('\n')
		b.WriteString(fmt.Sprintf("%s Sending…", m.spinner.View()))
		return formBoxStyle.Render(b.String())
	default:
		return helperStyle.Render("Missing a tool? Press s to suggest one.")
	}
}

func (m *model) footerView() string {
	parts := []string{m.sessionMeterView()}
	if m.chrome.TopButtonVisible {
		parts = append(parts, topButtonStyle.Render("↑ t · back to top"))
	}
	if m.errorMessage != "" {
		parts = append(parts, errorStyle.Render(m.errorMessage))
	}
	if m.infoMessage != "" {
		parts = append(parts, helperStyle.Render(m.infoMessage))
	}
	if m.helpVisible {
		parts = append(parts, m.keyLegendView())
	}
	return joinNonEmpty(parts)
}

func (m *model) sessionMeterView() string {
	stats := []string{
		fmt.Sprintf("Offset %d", m.chrome.Offset),
		fmt.Sprintf("Form %s", m.form),
		fmt.Sprintf("Sent %d", m.sentCount),
	}
	if m.sendRunning {
		stats = append(stats, "Delivering…")
	}
	return statusBarStyle.Render(strings.Join(stats, "  •  "))
}

type keyHint struct {
	Key         string
	Description string
}

func (m *model) keyLegendView() string {
	hints := []keyHint{
		{"↑/↓", "Scroll"},
		{"[/]", "Jump sections"},
		{"1-9", "Open a live tool"},
		{"s", "Suggest a tool"},
		{"t", "Back to top"},
		{"g/G", "Top or bottom"},
		{"?", "Toggle this legend"},
		{"q", "Quit"},
	}
	rows := []string{sectionHeaderStyle.Render("Keys")}
	const columns = 4
	for i := 0; i < len(hints); i += columns {
		end := i + columns
		if end > len(hints) {
			end = len(hints)
		}
		var cells []string
		for _, hint := range hints[i:end] {
			key := keyStyle.Render(hint.Key)
			desc := keyDescStyle.Render(" " + hint.Description)
			cells = append(cells, lipgloss.JoinHorizontal(lipgloss.Top, key, desc))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return legendBoxStyle.Render(strings.Join(rows, "\n"))
}

var logoArtLines = []string{
	"█▀█ █▀█ █▀▀ ▀█▀   ▀█▀ █▀█ █▀█ █   █ █ █ ▀█▀",
	"█▀▀ █▄█ █▄▄  █     █  █▄█ █▄█ █▄▄ █▀▄ █  █ ",
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}
