package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/showcase/internal/catalog"
	"github.com/csheth/showcase/internal/scroll"
)

// Config wires the authored catalog into the TUI program.
type Config struct {
	Tools []catalog.Entry
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	ideaInput := textinput.New()
	ideaInput.Placeholder = ideaPlaceholder
	ideaInput.CharLimit = 200
	ideaInput.Width = 60

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true

	m := &model{
		config:         config,
		form:           formClosed,
		ideaInput:      ideaInput,
		spinner:        spin,
		viewport:       vp,
		monitor:        scroll.NewMonitor(),
		desk:           newSendDesk(),
		layout:         newPageLayout(),
		contentDirty:   true,
		sectionAnchors: map[string]int{},
		infoMessage:    "Press s to suggest a tool, ? for keys.",
	}
	m.scrollSub = m.monitor.Subscribe(func(state scroll.State) {
		m.chrome = state
	})
	return m
}

type model struct {
	config Config
	form   formState

	ideaInput textinput.Model
	spinner   spinner.Model
	viewport  viewport.Model

	monitor   *scroll.Monitor
	scrollSub *scroll.Subscription
	chrome    scroll.State

	desk        *sendDesk
	sendRunning bool

	layout         pageLayout
	contentDirty   bool
	sectionAnchors map[string]int

	infoMessage  string
	errorMessage string
	helpVisible  bool
	sentCount    int
	scrolling    bool
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.form == formSubmitting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.syncScroll()
		return m, cmd
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.viewport.Width = m.layout.viewportWidth
		m.viewport.Height = m.layout.viewportHeight
		m.ideaInput.Width = m.layout.inputWidth
		m.markContentDirty()
		m.syncScroll()
		return m, nil
	case scrollStepMsg:
		return m.stepScrollAnimation()
	case sendStartedMsg:
		m.sendRunning = true
		return m, nil
	case sendFinishedMsg:
		return m.finishSend()
	}
	return m, nil
}

func (m *model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyCtrlC:
		return m.quit()
	case tea.KeyEsc:
		switch m.form {
		case formIdle:
			m.toggleForm()
			return m, nil
		case formSubmitting:
			m.infoMessage = "Hang on — your suggestion is still sending."
			return m, nil
		}
		if m.helpVisible {
			m.helpVisible = false
			return m, nil
		}
		return m.quit()
	}
	switch m.form {
	case formIdle:
		return m.handleFormKey(key)
	case formSubmitting:
		// The panel is inert until the simulated delivery completes; closing
		// mid-send is deliberately not an available action.
		return m, nil
	}
	return m.handlePageKey(key)
}

func (m *model) handleFormKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Type == tea.KeyEnter:
		return m, m.submitSuggestion()
	case key.String() == "ctrl+s":
		m.toggleForm()
		return m, nil
	}
	var cmd tea.Cmd
	m.ideaInput, cmd = m.ideaInput.Update(key)
	return m, cmd
}

func (m *model) handlePageKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "s", "ctrl+s":
		m.toggleForm()
		return m, textinput.Blink
	case "q":
		return m.quit()
	case "t":
		return m.startReturnToTop()
	case "g":
		m.viewport.GotoTop()
		m.syncScroll()
		return m, nil
	case "G":
		m.viewport.GotoBottom()
		m.syncScroll()
		return m, nil
	case "[":
		m.jumpToRelativeSection(-1)
		return m, nil
	case "]":
		m.jumpToRelativeSection(1)
		return m, nil
	case "?":
		m.helpVisible = !m.helpVisible
		return m, nil
	}
	if idx, ok := entryIndexForKey(key.String()); ok {
		m.activateEntry(idx)
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(key)
	m.syncScroll()
	return m, cmd
}

// toggleForm applies the open/close toggle. The transition function decides
// whether anything changes; in particular the toggle is a no-op mid-send.
func (m *model) toggleForm() {
	next := nextFormState(m.form, formToggle, false)
	if next == m.form {
		return
	}
	m.form = next
	switch next {
	case formIdle:
		m.ideaInput.Focus()
		m.infoMessage = "Tell us what to build next. Enter sends, Esc closes."
	case formClosed:
		m.ideaInput.Blur()
		m.ideaInput.SetValue("")
		m.infoMessage = "Suggestion panel closed."
	}
}

func (m *model) submitSuggestion() tea.Cmd {
	idea := strings.TrimSpace(m.ideaInput.Value())
	next := nextFormState(m.form, formSubmit, idea != "")
	if next == m.form {
		m.infoMessage = "Type your tool idea first — it is the one required field."
		return nil
	}
	m.form = next
	m.ideaInput.Blur()
	m.infoMessage = "Sending your suggestion…"
	return tea.Batch(m.spinner.Tick, m.desk.Deliver(idea, submitDelay))
}

func (m *model) finishSend() (tea.Model, tea.Cmd) {
	m.sendRunning = false
	m.form = nextFormState(m.form, formDelayElapsed, false)
	m.sentCount++
	m.ideaInput.SetValue("")
	m.ideaInput.Focus()
	m.infoMessage = fmt.Sprintf("Thanks! Suggestion noted (%d this session).", m.sentCount)
	return m, textinput.Blink
}

func (m *model) activateEntry(idx int) {
	if idx >= len(m.config.Tools) {
		return
	}
	entry := m.config.Tools[idx]
	switch entry.Status {
	case catalog.StatusLive:
		m.infoMessage = fmt.Sprintf("Open ↗ %s", entry.ActionTarget)
	case catalog.StatusComingSoon:
		m.infoMessage = fmt.Sprintf("%s isn't live yet — coming soon.", entry.Title)
	case catalog.StatusBeta:
		m.infoMessage = fmt.Sprintf("%s is in beta — press s to ask for access.", entry.Title)
	}
}

func entryIndexForKey(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	return int(key[0] - '1'), true
}

func (m *model) startReturnToTop() (tea.Model, tea.Cmd) {
	if !m.chrome.TopButtonVisible || m.scrolling {
		return m, nil
	}
	m.scrolling = true
	return m, scrollStepCmd()
}

func (m *model) stepScrollAnimation() (tea.Model, tea.Cmd) {
	if !m.scrolling {
		return m, nil
	}
	next := easeTowardTop(m.viewport.YOffset)
	m.viewport.SetYOffset(next)
	m.syncScroll()
	if next == 0 {
		m.scrolling = false
		return m, nil
	}
	return m, scrollStepCmd()
}

// syncScroll republishes the current offset so both chrome flags are derived
// fresh from it. Nothing is patched incrementally.
func (m *model) syncScroll() {
	m.monitor.Publish(m.viewport.YOffset)
}

// quit releases the scroll observation before stopping the program. Every
// exit path runs through here so the subscription can never outlive the view.
func (m *model) quit() (tea.Model, tea.Cmd) {
	m.scrollSub.Release()
	return m, tea.Quit
}

var (
	sectionHeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	helperStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	taglineStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#a8a3c1")).Italic(true)
	statusBarStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	compactHeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffb703")).Padding(0, 1)
	heroBoxStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#ffb703")).Padding(0, 2)
	cardStyle           = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(0, 2)
	cardTitleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	badgeLiveStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#a3be8c")).Padding(0, 1)
	badgeBetaStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#bde0fe")).Padding(0, 1)
	badgeSoonStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 1)
	liveActionStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8ecae6")).Underline(true)
	disabledActionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	topButtonStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 1)
	formBoxStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#7f5af0")).Padding(0, 2)
	fieldLabelStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("147"))
	keyStyle            = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 1)
	keyDescStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4"))
	legendBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(1, 2)
	logoFaceStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffb703"))
)
