package styles

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// TemplateID identifies a built-in template.
type TemplateID int

const (
	// Simple is the default template.
	Simple TemplateID = iota
	// Classic uses a serif face and ruled headings.
	Classic
	// Modern uses a compact sans face and uppercase headings.
	Modern

	templateCount
)

func (id TemplateID) String() string {
	switch id {
	case Classic:
		return "classic"
	case Modern:
		return "modern"
	default:
		return "simple"
	}
}

// ParseTemplateID maps a template name to its ID. Unknown or empty names map
// to Simple.
func ParseTemplateID(name string) TemplateID {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "classic":
		return Classic
	case "modern":
		return Modern
	default:
		return Simple
	}
}

// Templates lists every built-in template in display order.
func Templates() []TemplateID {
	return []TemplateID{Simple, Classic, Modern}
}

//go:embed profiles.yaml
var profilesYAML []byte

// profiles is populated once at init and only read afterwards.
var profiles = mustLoadProfiles(profilesYAML)

// Resolve returns a copy of the profile for id. Values outside the enum
// resolve to Simple.
func Resolve(id TemplateID) Profile {
	switch id {
	case Classic, Modern:
		return profiles[id]
	default:
		return profiles[Simple]
	}
}

// Lookup resolves a template by name.
func Lookup(name string) Profile {
	return Resolve(ParseTemplateID(name))
}

func loadProfiles(data []byte) ([templateCount]Profile, error) {
	var table [templateCount]Profile

	var raw map[string]Profile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return table, fmt.Errorf("failed to parse style profiles: %w", err)
	}

	for _, id := range Templates() {
		p, ok := raw[id.String()]
		if !ok {
			return table, fmt.Errorf("style profile %q is not defined", id)
		}
		if p.BodySize <= 0 || p.HeadingSize <= 0 || p.Spacing.LineHeightMM <= 0 {
			return table, fmt.Errorf("style profile %q has non-positive sizes", id)
		}
		if p.Bullet.Glyph == "" {
			return table, fmt.Errorf("style profile %q has no bullet glyph", id)
		}
		p.ID = id
		table[id] = p
	}

	return table, nil
}

func mustLoadProfiles(data []byte) [templateCount]Profile {
	table, err := loadProfiles(data)
	if err != nil {
		panic(err)
	}
	return table
}
