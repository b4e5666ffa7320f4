package ui

import (
	"strings"
	"sync"

	internalstrings "github.com/amonks/taskmaster/internal/strings"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

var (
	rendererMu sync.Mutex
	renderers  = map[int]*glamour.TermRenderer{}
)

// Wrap word-wraps value to width and indents every line by spaces.
func Wrap(value string, width, spaces int) string {
	value = strings.TrimSpace(internalstrings.NormalizeNewlines(value))
	if value == "" {
		return ""
	}
	if width-spaces < 1 {
		width = spaces + 1
	}
	wrapped := wordwrap.String(value, width-spaces)
	if spaces <= 0 {
		return wrapped
	}
	return indent.String(wrapped, uint(spaces))
}

// RenderMarkdown formats task text as markdown for the terminal. Text that
// fails to render is returned wrapped but otherwise unchanged.
func RenderMarkdown(value string, width int) string {
	value = internalstrings.TrimTrailingNewlines(internalstrings.NormalizeNewlines(value))
	if strings.TrimSpace(value) == "" {
		return ""
	}
	if width < 1 {
		width = 1
	}

	renderer := markdownRenderer(width)
	if renderer == nil {
		return Wrap(value, width, 0)
	}
	rendered, err := renderer.Render(value)
	if err != nil {
		return Wrap(value, width, 0)
	}
	return internalstrings.TrimTrailingNewlines(rendered)
}

func markdownRenderer(width int) *glamour.TermRenderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if cached, ok := renderers[width]; ok {
		return cached
	}
	style := styles.ASCIIStyleConfig
	style.Item.BlockPrefix = "- "
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[width] = created
	return created
}
