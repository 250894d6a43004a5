package catalog

import "fmt"

// Status marks where a tool currently sits in its rollout.
type Status int

const (
	StatusLive Status = iota
	StatusComingSoon
	StatusBeta
)

const (
	statusLiveText       = "live"
	statusComingSoonText = "coming-soon"
	statusBetaText       = "beta"
)

// ParseStatus maps the textual form used by catalog files onto a Status.
// Anything outside the three known values is a configuration mistake and is
// rejected rather than defaulted.
func ParseStatus(text string) (Status, error) {
	switch text {
	case statusLiveText:
		return StatusLive, nil
	case statusComingSoonText:
		return StatusComingSoon, nil
	case statusBetaText:
		return StatusBeta, nil
	default:
		return 0, fmt.Errorf("unknown tool status %q (want %q, %q, or %q)",
			text, statusLiveText, statusComingSoonText, statusBetaText)
	}
}

func (s Status) String() string {
	switch s {
	case StatusLive:
		return statusLiveText
	case StatusComingSoon:
		return statusComingSoonText
	case StatusBeta:
		return statusBetaText
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Entry is one advertised tool. Entries are authored content: created once at
// startup, immutable afterwards, and rendered in the order they were declared.
type Entry struct {
	Icon         string
	Title        string
	Description  string
	Status       Status
	ActionTarget string
}

// Default returns the shipped catalog used when no catalog file is supplied.
func Default() []Entry {
	return []Entry{
		{
			Icon:         "🔎",
			Title:        "Barcode Sharing Detector",
			Description:  "Analyze middleware exports for rapid repeats, location conflicts, and hourly load anomalies across operator barcodes.",
			Status:       StatusLive,
			ActionTarget: "https://poctify.tools/barcode-detector",
		},
		{
			Icon:         "📋",
			Title:        "Middleware Template Library",
			Description:  "Download ready-made CSV templates matching the column layout our analyzers expect.",
			Status:       StatusLive,
			ActionTarget: "#templates",
		},
		{
			Icon:        "📈",
			Title:       "Usage Intelligence",
			Description: "Operator and device summaries with suspicion scoring, flag statistics, and hourly heatmaps.",
			Status:      StatusBeta,
		},
		{
			Icon:        "🧪",
			Title:       "Competency Tracker",
			Description: "Track operator certification windows and surface tests performed outside an active competency.",
			Status:      StatusComingSoon,
		},
		{
			Icon:        "🛰",
			Title:       "Device Fleet Monitor",
			Description: "Live view of analyzer uptime, QC lockouts, and cartridge stock across every ward.",
			Status:      StatusComingSoon,
		},
	}
}
