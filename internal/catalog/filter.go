package catalog

import (
	"fmt"
	"strings"
)

// Level is the difficulty filter offered next to the search box.
type Level string

const (
	LevelAll          Level = "all"
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Levels lists the filter values in dropdown order.
var Levels = []Level{LevelAll, LevelBeginner, LevelIntermediate, LevelAdvanced}

// ParseLevel accepts any of the four filter values, case-insensitively.
// An empty string means LevelAll.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return LevelAll, nil
	}
	for _, l := range Levels {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown level %q (want all, beginner, intermediate or advanced)", s)
}

// Next returns the following filter value, wrapping around.
func (l Level) Next() Level {
	for i, v := range Levels {
		if v == l {
			return Levels[(i+1)%len(Levels)]
		}
	}
	return LevelAll
}

// Label is the human-readable dropdown text.
func (l Level) Label() string {
	switch l {
	case LevelBeginner:
		return "Beginner"
	case LevelIntermediate:
		return "Intermediate"
	case LevelAdvanced:
		return "Advanced"
	default:
		return "All Levels"
	}
}

// Matches reports whether p passes the text query and the level filter.
func Matches(p Project, query string, level Level) bool {
	return matchesQuery(p, strings.ToLower(query)) && matchesLevel(p, level)
}

// FilterProjects returns the projects matching query and level, in catalog
// order. An empty query with LevelAll returns every project.
func FilterProjects(projects []Project, query string, level Level) []Project {
	q := strings.ToLower(query)
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if matchesQuery(p, q) && matchesLevel(p, level) {
			out = append(out, p)
		}
	}
	return out
}

// matchesQuery expects q already lowercased.
func matchesQuery(p Project, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, s := range p.Skills {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

func matchesLevel(p Project, level Level) bool {
	if level == LevelAll || level == "" {
		return true
	}
	return strings.EqualFold(string(p.Difficulty), string(level))
}
