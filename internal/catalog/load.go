package catalog

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

type rawEntry struct {
	Icon         string `toml:"icon"`
	Title        string `toml:"title"`
	Description  string `toml:"description"`
	Status       string `toml:"status"`
	ActionTarget string `toml:"action_target"`
}

type catalogFile struct {
	Tools []rawEntry `toml:"tools"`
}

// Load reads an ordered catalog from a TOML file. Statuses are validated up
// front so authoring mistakes surface at startup, not as a silently wrong page.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	entries := make([]Entry, 0, len(file.Tools))
	for i, raw := range file.Tools {
		status, err := ParseStatus(raw.Status)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		if raw.Title == "" {
			return nil, fmt.Errorf("catalog entry %d: missing title", i)
		}
		entries = append(entries, Entry{
			Icon:         raw.Icon,
			Title:        raw.Title,
			Description:  raw.Description,
			Status:       status,
			ActionTarget: raw.ActionTarget,
		})
	}
	return entries, nil
}
