package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/showcase/internal/catalog"
)

func newTestModel(t *testing.T, tools []catalog.Entry) *model {
	t.Helper()
	m, ok := New(Config{Tools: tools}).(*model)
	if !ok {
		t.Fatalf("expected *model from New")
	}
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestToggleTwiceReturnsToClosed(t *testing.T) {
	m := newTestModel(t, catalog.Default())

	m.toggleForm()
	if m.form != formIdle {
		t.Fatalf("first toggle should open the panel, got %v", m.form)
	}
	if !strings.Contains(m.formPanel(), "Tool Idea") {
		t.Fatal("open panel should render the Tool Idea field")
	}

	m.toggleForm()
	if m.form != formClosed {
		t.Fatalf("second toggle should close the panel, got %v", m.form)
	}
	if strings.Contains(m.formPanel(), "Tool Idea") {
		t.Fatal("closed panel must not render form fields")
	}
}

func TestEmptyIdeaSubmitStaysIdle(t *testing.T) {
	m := newTestModel(t, catalog.Default())
	m.toggleForm()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatalf("empty submit should not start a send, got %T", cmd)
	}
	if m.form != formIdle {
		t.Fatalf("empty submit must leave the panel idle, got %v", m.form)
	}
	if m.infoMessage == "" {
		t.Fatal("empty submit should leave a hint for the user")
	}
}

func TestSubmitRunsSimulatedDelivery(t *testing.T) {
	m := newTestModel(t, catalog.Default())
	m.toggleForm()
	m.ideaInput.SetValue("QC lockout dashboard")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("submit with an idea should start the send command")
	}
	if m.form != formSubmitting {
		t.Fatalf("submit should enter the submitting state, got %v", m.form)
	}
	if !strings.Contains(m.formPanel(), "Sending") {
		t.Fatal("submitting panel should show the busy indicator")
	}

	m.Update(sendStartedMsg{Record: sendRecord{ID: "suggest-1"}})
	if !m.sendRunning {
		t.Fatal("send start should mark the delivery badge")
	}

	m.Update(sendFinishedMsg{Record: sendRecord{ID: "suggest-1"}})
	if m.form != formIdle {
		t.Fatalf("delay completion should return to idle, got %v", m.form)
	}
	if m.sendRunning {
		t.Fatal("delivery badge should clear when the send finishes")
	}
	if m.sentCount != 1 {
		t.Fatalf("sent counter should increment, got %d", m.sentCount)
	}
	if m.ideaInput.Value() != "" {
		t.Fatalf("idea field should reset after the send, got %q", m.ideaInput.Value())
	}
	if strings.Contains(m.formPanel(), "Sending") {
		t.Fatal("busy indicator should disappear once idle again")
	}
}

func TestClosingMidSendIsNotAvailable(t *testing.T) {
	m := newTestModel(t, catalog.Default())
	m.toggleForm()
	m.ideaInput.SetValue("shift roster import")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.form != formSubmitting {
		t.Fatalf("esc must not close the panel mid-send, got %v", m.form)
	}

	m.toggleForm()
	if m.form != formSubmitting {
		t.Fatalf("toggle must be a no-op mid-send, got %v", m.form)
	}

	_, cmd := m.Update(keyRune('x'))
	if cmd != nil {
		t.Fatal("input should be inert mid-send")
	}
	if m.ideaInput.Value() != "shift roster import" {
		t.Fatalf("idea field changed while inert: %q", m.ideaInput.Value())
	}
}

func TestCatalogRendersOneEnabledAndTwoDisabledControls(t *testing.T) {
	tools := []catalog.Entry{
		{Icon: "🔎", Title: "Detector", Status: catalog.StatusLive, ActionTarget: "https://x"},
		{Icon: "🧪", Title: "Tracker", Status: catalog.StatusComingSoon},
		{Icon: "📈", Title: "Intelligence", Status: catalog.StatusBeta},
	}
	m := newTestModel(t, tools)
	page := m.buildPageContent().content

	if got := strings.Count(page, "Open ↗"); got != 1 {
		t.Fatalf("expected exactly one enabled action, found %d", got)
	}
	if !strings.Contains(page, "https://x") {
		t.Fatal("enabled action should carry its target")
	}
	if got := strings.Count(page, "Coming Soon"); got != 1 {
		t.Fatalf("expected one Coming Soon control, found %d", got)
	}
	if got := strings.Count(page, "Beta Preview"); got != 1 {
		t.Fatalf("expected one Beta Preview control, found %d", got)
	}
}

func TestCatalogPreservesDeclaredOrder(t *testing.T) {
	tools := []catalog.Entry{
		{Title: "Zeta", Status: catalog.StatusBeta},
		{Title: "Alpha", Status: catalog.StatusBeta},
		{Title: "Zeta", Status: catalog.StatusComingSoon},
	}
	m := newTestModel(t, tools)
	page := m.buildPageContent().content

	first := strings.Index(page, "Zeta")
	second := strings.Index(page, "Alpha")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("cards out of declared order (Zeta at %d, Alpha at %d)", first, second)
	}
	if got := strings.Count(page, "Zeta"); got != 2 {
		t.Fatalf("duplicate titles must both render, found %d", got)
	}
}

func TestHeaderCondensesPastScrollThreshold(t *testing.T) {
	m := newTestModel(t, catalog.Default())

	m.monitor.Publish(20)
	if m.chrome.HeaderCompact {
		t.Fatal("header should stay full at the threshold boundary")
	}
	full := m.headerView()
	if !strings.Contains(full, heroTagline) {
		t.Fatal("full header should carry the tagline")
	}

	m.monitor.Publish(21)
	if !m.chrome.HeaderCompact {
		t.Fatal("header should condense past the threshold")
	}
	if compact := m.headerView(); compact == full {
		t.Fatal("compact header should render a different variant")
	}
}

func TestTopButtonAbsentUntilThreshold(t *testing.T) {
	m := newTestModel(t, catalog.Default())

	m.monitor.Publish(300)
	if strings.Contains(m.footerView(), "back to top") {
		t.Fatal("top button should be absent at the threshold boundary")
	}

	m.monitor.Publish(301)
	if !strings.Contains(m.footerView(), "back to top") {
		t.Fatal("top button should render past the threshold")
	}

	m.monitor.Publish(0)
	if strings.Contains(m.footerView(), "back to top") {
		t.Fatal("top button should disappear again at the top")
	}
}

func TestReturnToTopGlidesToZero(t *testing.T) {
	m := newTestModel(t, catalog.Default())
	m.viewport.SetContent(strings.Repeat("line\n", 500))
	m.viewport.SetYOffset(400)
	m.syncScroll()
	if !m.chrome.TopButtonVisible {
		t.Fatalf("precondition failed: offset %d should show the button", m.viewport.YOffset)
	}

	_, cmd := m.startReturnToTop()
	if cmd == nil {
		t.Fatal("activation should start the glide")
	}
	for steps := 0; m.scrolling; steps++ {
		if steps > 200 {
			t.Fatal("glide did not terminate")
		}
		prev := m.viewport.YOffset
		m.stepScrollAnimation()
		if m.viewport.YOffset >= prev && prev != 0 {
			t.Fatalf("glide must move toward the top: %d -> %d", prev, m.viewport.YOffset)
		}
	}
	if m.viewport.YOffset != 0 {
		t.Fatalf("glide should finish at the top, got offset %d", m.viewport.YOffset)
	}
	if m.chrome.TopButtonVisible {
		t.Fatal("button state should follow the offset back down")
	}
}

func TestEntryActivationByNumberKey(t *testing.T) {
	tools := []catalog.Entry{
		{Title: "Detector", Status: catalog.StatusLive, ActionTarget: "https://example.org/d"},
		{Title: "Tracker", Status: catalog.StatusComingSoon},
	}
	m := newTestModel(t, tools)

	m.Update(keyRune('1'))
	if !strings.Contains(m.infoMessage, "https://example.org/d") {
		t.Fatalf("live activation should surface the target, got %q", m.infoMessage)
	}

	m.Update(keyRune('2'))
	if !strings.Contains(m.infoMessage, "coming soon") {
		t.Fatalf("coming-soon activation should explain itself, got %q", m.infoMessage)
	}

	before := m.infoMessage
	m.Update(keyRune('9'))
	if m.infoMessage != before {
		t.Fatal("activation past the catalog end should be ignored")
	}
}

func TestQuitReleasesScrollObservation(t *testing.T) {
	m := newTestModel(t, catalog.Default())
	m.monitor.Publish(50)
	if m.chrome.Offset != 50 {
		t.Fatalf("precondition failed: chrome offset %d", m.chrome.Offset)
	}

	_, cmd := m.quit()
	if cmd == nil {
		t.Fatal("quit should hand back the quit command")
	}

	m.monitor.Publish(999)
	if m.chrome.Offset != 50 {
		t.Fatalf("released observation still updating the view: offset %d", m.chrome.Offset)
	}
}

func TestHelpLegendToggle(t *testing.T) {
	m := newTestModel(t, catalog.Default())

	if strings.Contains(m.footerView(), "Jump sections") {
		t.Fatal("legend should be hidden by default")
	}
	m.Update(keyRune('?'))
	if !strings.Contains(m.footerView(), "Jump sections") {
		t.Fatal("legend should appear after toggling help")
	}
	m.Update(keyRune('?'))
	if strings.Contains(m.footerView(), "Jump sections") {
		t.Fatal("legend should hide again after a second toggle")
	}
}
