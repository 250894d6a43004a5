package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/showcase/internal/catalog"
)

type pageLayout struct {
	windowWidth    int
	windowHeight   int
	viewportWidth  int
	viewportHeight int
	inputWidth     int
}

func newPageLayout() pageLayout {
	return pageLayout{
		viewportWidth:  80,
		viewportHeight: 20,
		inputWidth:     60,
	}
}

func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	innerWidth := width - viewportHorizontalPadding
	if innerWidth < minViewportWidth {
		innerWidth = minViewportWidth
	}
	l.viewportWidth = innerWidth
	l.inputWidth = innerWidth - 10
	if l.inputWidth < 20 {
		l.inputWidth = 20
	}
	// Header, form panel, and footer share the window with the page body.
	const chrome = 12
	contentHeight := height - chrome
	if contentHeight < 6 {
		contentHeight = 6
	}
	l.viewportHeight = contentHeight
}

type pageView struct {
	content string
	anchors map[string]int
}

type contentBuilder struct {
	builder strings.Builder
	lines   int
}

func (cb *contentBuilder) WriteString(s string) {
	cb.builder.WriteString(s)
	cb.lines += strings.Count(s, "\n")
}

func (cb *contentBuilder) WriteRune(r rune) {
	cb.builder.WriteRune(r)
	if r == '\n' {
		cb.lines++
	}
}

func (cb *contentBuilder) String() string {
	return cb.builder.String()
}

func (cb *contentBuilder) Line() int {
	return cb.lines
}

// Static page copy. Authored content the page renders but never interprets.
var (
	storyCopy = []string{
		"Point-of-care testing lives or dies on operator discipline. When barcodes get shared, competency records drift, or a device quietly racks up one operator's ID all shift, the audit trail stops meaning anything.",
		"This toolkit grew out of hospital POCT coordination work: each tool takes the middleware exports you already have and turns them into answers governance teams can act on.",
		"Everything runs on your side of the firewall. Upload an export, read the flags, keep the data.",
	}
	templatesCopy = []string{
		"Analyzers expect a fixed column layout: Timestamp, Operator_ID, Location, Device_ID, Test_Type.",
		"The Template Library ships ready-made CSV and Excel templates in that layout, so the first upload works on the first try.",
	}
	contactCopy = []string{
		"Every tool here started as a suggestion from a POCT coordinator.",
		"If your lab fights a problem this toolkit doesn't cover yet, open the suggestion panel and tell us about it.",
	}
)

func (m *model) markContentDirty() {
	m.contentDirty = true
}

func (m *model) refreshViewportIfDirty() {
	if !m.contentDirty {
		return
	}
	view := m.buildPageContent()
	m.sectionAnchors = view.anchors
	m.viewport.SetContent(view.content)
	m.contentDirty = false
}

func (m *model) buildPageContent() pageView {
	cb := &contentBuilder{}
	anchors := map[string]int{}
	wrap := m.wrapWidth(4)

	writeSection := func(anchor, title string) {
		if cb.Line() > 0 {
			cb.WriteRune('\n')
		}
		anchors[anchor] = cb.Line()
		cb.WriteString(sectionHeaderStyle.Render(title))
		cb.WriteRune('\n')
	}
	writeParagraphs := func(paragraphs []string) {
		for i, paragraph := range paragraphs {
			cb.WriteString(wordwrap.String(paragraph, wrap))
			cb.WriteRune('\n')
			if i < len(paragraphs)-1 {
				cb.WriteRune('\n')
			}
		}
	}

	writeSection(anchorToolkit, "The Toolkit")
	cb.WriteString(helperStyle.Render("Press the number next to a live tool to open it."))
	cb.WriteRune('\n')
	cb.WriteRune('\n')
	for idx, entry := range m.config.Tools {
		cb.WriteString(m.renderToolCard(idx, entry))
		cb.WriteRune('\n')
	}

	writeSection(anchorStory, "Why This Exists")
	writeParagraphs(storyCopy)

	writeSection(anchorTemplates, "Templates")
	writeParagraphs(templatesCopy)

	writeSection(anchorContact, "Suggest the Next Tool")
	writeParagraphs(contactCopy)

	return pageView{content: cb.String(), anchors: anchors}
}

func (m *model) renderToolCard(idx int, entry catalog.Entry) string {
	title := cardTitleStyle.Render(strings.TrimSpace(entry.Icon + " " + entry.Title))
	lines := []string{title + "  " + statusBadge(entry.Status)}
	if entry.Description != "" {
		lines = append(lines, wordwrap.String(entry.Description, m.wrapWidth(8)))
	}
	lines = append(lines, callToAction(idx, entry))
	return cardStyle.Width(m.wrapWidth(2)).Render(strings.Join(lines, "\n"))
}

// statusBadge and callToAction special-case exactly the three authored
// statuses. An unrecognized value is a contract violation that load-time
// validation already rejects, so the fallthrough renders it as an error
// rather than dressing it up as live.
func statusBadge(status catalog.Status) string {
	switch status {
	case catalog.StatusLive:
		return badgeLiveStyle.Render("LIVE")
	case catalog.StatusComingSoon:
		return badgeSoonStyle.Render("COMING SOON")
	case catalog.StatusBeta:
		return badgeBetaStyle.Render("BETA")
	default:
		return errorStyle.Render(fmt.Sprintf("?%v", status))
	}
}

func callToAction(idx int, entry catalog.Entry) string {
	switch entry.Status {
	case catalog.StatusLive:
		return liveActionStyle.Render(fmt.Sprintf("[%d] Open ↗ %s", idx+1, entry.ActionTarget))
	case catalog.StatusComingSoon:
		return disabledActionStyle.Render("Coming Soon")
	case catalog.StatusBeta:
		return disabledActionStyle.Render("Beta Preview")
	default:
		return errorStyle.Render(fmt.Sprintf("unconfigured status %v", entry.Status))
	}
}

func (m *model) jumpToRelativeSection(direction int) {
	m.refreshViewportIfDirty()
	target := m.currentSectionIndex() + direction
	if target < 0 {
		target = 0
	}
	if target >= len(sectionSequence) {
		target = len(sectionSequence) - 1
	}
	if line, ok := m.sectionAnchors[sectionSequence[target]]; ok {
		m.viewport.SetYOffset(line)
		m.syncScroll()
	}
}

func (m *model) currentSectionIndex() int {
	idx := 0
	for i, anchor := range sectionSequence {
		line, ok := m.sectionAnchors[anchor]
		if !ok {
			continue
		}
		if m.viewport.YOffset >= line {
			idx = i
		}
	}
	return idx
}

func (m *model) wrapWidth(padding int) int {
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}
	if padding < 0 {
		padding = 0
	}
	available := width - padding
	if available < 20 {
		available = 20
	}
	return available
}
