package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMarkdownCacheSize bounds the number of rendered replies kept.
const DefaultMarkdownCacheSize = 256

type markdownKey struct {
	content string
	width   int
	dark    bool
}

type rendererKey struct {
	width int
	dark  bool
}

// MarkdownRenderer renders tutor replies with glamour. Output is cached per
// (content, width, theme) so re-rendering the transcript on every frame
// stays cheap. Only the glamour renderer for the latest width and theme is
// kept; a resize replaces it.
type MarkdownRenderer struct {
	cache   *lru.Cache[markdownKey, string]
	current *glamour.TermRenderer
	key     rendererKey
}

// NewMarkdownRenderer creates a renderer caching up to size replies.
func NewMarkdownRenderer(size int) (*MarkdownRenderer, error) {
	cache, err := lru.New[markdownKey, string](size)
	if err != nil {
		return nil, fmt.Errorf("markdown cache: %w", err)
	}
	return &MarkdownRenderer{cache: cache}, nil
}

// Render returns content rendered for width columns. On renderer failure
// the raw content is returned.
func (r *MarkdownRenderer) Render(content string, width int, dark bool) string {
	k := markdownKey{content: content, width: width, dark: dark}
	if out, ok := r.cache.Get(k); ok {
		return out
	}
	tr, err := r.renderer(width, dark)
	if err != nil {
		return content
	}
	out, err := tr.Render(content)
	if err != nil {
		return content
	}
	out = strings.Trim(out, "\n")
	r.cache.Add(k, out)
	return out
}

// Len reports the number of cached renders.
func (r *MarkdownRenderer) Len() int {
	return r.cache.Len()
}

func (r *MarkdownRenderer) renderer(width int, dark bool) (*glamour.TermRenderer, error) {
	k := rendererKey{width: width, dark: dark}
	if r.current != nil && r.key == k {
		return r.current, nil
	}
	style := "light"
	if dark {
		style = "dark"
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	r.current, r.key = tr, k
	return tr, nil
}
