package tui

const heroTagline = "Point-of-care usage intelligence, one toolkit."

const (
	anchorToolkit   = "toolkit"
	anchorStory     = "story"
	anchorTemplates = "templates"
	anchorContact   = "contact"
)

var sectionSequence = []string{
	anchorToolkit,
	anchorStory,
	anchorTemplates,
	anchorContact,
}

const (
	minViewportWidth          = 40
	viewportHorizontalPadding = 4
)

const ideaPlaceholder = "A tool you wish existed…"
