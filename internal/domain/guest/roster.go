package guest

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type rosterFile struct {
	Guests []BaseGuest `json:"guests"`
}

// LoadRoster reads the base roster from a JSON document of the shape
// {"guests": [...]}. The roster is the source of truth for base guest ids;
// it is loaded once at startup and treated as read-only afterwards.
func LoadRoster(path string) ([]BaseGuest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster file: %w", err)
	}

	var file rosterFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing roster file: %w", err)
	}

	seen := make(map[string]bool, len(file.Guests))
	for i, bg := range file.Guests {
		if strings.TrimSpace(bg.ID) == "" {
			return nil, fmt.Errorf("roster entry %d: missing id", i)
		}
		if seen[bg.ID] {
			return nil, fmt.Errorf("roster entry %d: duplicate id %q", i, bg.ID)
		}
		seen[bg.ID] = true
		if strings.TrimSpace(bg.FamilyName) == "" {
			return nil, fmt.Errorf("roster entry %q: missing family name", bg.ID)
		}
		if bg.Adults < 0 || bg.Children < 0 || bg.Babies < 0 {
			return nil, fmt.Errorf("roster entry %q: negative headcount", bg.ID)
		}
	}
	return file.Guests, nil
}
