// Package catalog holds the static learning content shown by TraceTutor:
// hands-on projects, learning paths, pricing plans and overview features.
//
// A Catalog is decoded once at startup and never mutated afterwards. The
// default content is embedded in the binary; an override file with the same
// YAML shape can be loaded instead.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Difficulty is the skill level of a project.
type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

// ParseDifficulty matches s case-insensitively against the known levels.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range []Difficulty{Beginner, Intermediate, Advanced} {
		if strings.EqualFold(strings.TrimSpace(s), string(d)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// Project is a single hands-on PCB exercise.
type Project struct {
	ID          int        `yaml:"id"`
	Title       string     `yaml:"title"`
	Difficulty  Difficulty `yaml:"difficulty"`
	Description string     `yaml:"description"`
	Duration    string     `yaml:"duration"`
	Skills      []string   `yaml:"skills"`
	Tags        []string   `yaml:"tags"`
}

// LearningPath is an ordered journey through several projects.
// Projects holds project IDs; the path does not own them.
type LearningPath struct {
	ID          int      `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Duration    string   `yaml:"duration"`
	Difficulty  string   `yaml:"difficulty"` // free text, e.g. "Beginner to Advanced"
	Projects    []int    `yaml:"projects"`
	Milestones  []string `yaml:"milestones"`
	Skills      []string `yaml:"skills"`
}

// Plan is a pricing tier.
type Plan struct {
	Name         string   `yaml:"name"`
	Price        string   `yaml:"price"`
	Period       string   `yaml:"period"`
	CallToAction string   `yaml:"cta"`
	Highlight    bool     `yaml:"highlight,omitempty"`
	Features     []string `yaml:"features"`
}

// Feature is one entry of the overview grid.
type Feature struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Catalog is the full set of static content.
type Catalog struct {
	Projects []Project      `yaml:"projects"`
	Paths    []LearningPath `yaml:"paths"`
	Plans    []Plan         `yaml:"plans"`
	Features []Feature      `yaml:"features"`
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// MustDefault is Default for callers that cannot recover, such as tests
// and package-level fixtures. The embedded document is validated by tests.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// LoadFile reads and validates a catalog override from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %q: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %q: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog and validates it.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks ID uniqueness, difficulty values and that every learning
// path references existing projects. Difficulties are normalised to their
// canonical spelling.
func (c *Catalog) Validate() error {
	seen := make(map[int]bool, len(c.Projects))
	for i := range c.Projects {
		p := &c.Projects[i]
		if p.ID <= 0 {
			return fmt.Errorf("project %q: id must be positive, got %d", p.Title, p.ID)
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate project id %d", p.ID)
		}
		seen[p.ID] = true
		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("project %d: title is required", p.ID)
		}
		d, err := ParseDifficulty(string(p.Difficulty))
		if err != nil {
			return fmt.Errorf("project %d: %w", p.ID, err)
		}
		p.Difficulty = d
	}

	pathIDs := make(map[int]bool, len(c.Paths))
	for _, lp := range c.Paths {
		if pathIDs[lp.ID] {
			return fmt.Errorf("duplicate learning path id %d", lp.ID)
		}
		pathIDs[lp.ID] = true
		for _, id := range lp.Projects {
			if !seen[id] {
				return fmt.Errorf("learning path %d: unknown project id %d", lp.ID, id)
			}
		}
	}
	return nil
}

// ProjectByID looks up a project.
func (c *Catalog) ProjectByID(id int) (Project, bool) {
	for _, p := range c.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// PathByID looks up a learning path.
func (c *Catalog) PathByID(id int) (LearningPath, bool) {
	for _, lp := range c.Paths {
		if lp.ID == id {
			return lp, true
		}
	}
	return LearningPath{}, false
}

// PathProjects resolves a path's project references in order.
// IDs without a matching project are skipped.
func (c *Catalog) PathProjects(lp LearningPath) []Project {
	out := make([]Project, 0, len(lp.Projects))
	for _, id := range lp.Projects {
		if p, ok := c.ProjectByID(id); ok {
			out = append(out, p)
		}
	}
	return out
}
