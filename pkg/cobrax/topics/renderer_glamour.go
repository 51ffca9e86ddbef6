package topics

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// maxWidth caps the auto-detected wrap width
const maxWidth = 100

// GlamourRenderer uses the glamour library for rich markdown rendering
type GlamourRenderer struct {
	Style string // Style name: "dark", "light", "notty", "auto", or path to custom style
	Width int    // Terminal width (0 = auto-detect)
}

// NewGlamourRenderer creates a markdown renderer using glamour with auto-detection
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{
		Style: "auto", // Auto-detect based on terminal
		Width: 0,      // Auto-detect width
	}
}

// Render converts markdown to beautiful terminal output
func (r *GlamourRenderer) Render(content string, format string) string {
	// Only process markdown files
	if format != ".md" {
		return content
	}

	// Configure glamour options
	var options []glamour.TermRendererOption

	// Set style
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		// Use auto style detection
		options = append(options, glamour.WithAutoStyle())
	}

	if width := r.wrapWidth(); width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	// Create renderer
	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		// Fallback to plain text on error
		return content
	}

	// Render markdown
	rendered, err := renderer.Render(content)
	if err != nil {
		// Fallback to plain text on error
		return content
	}

	return rendered
}

// wrapWidth returns Width, or the stdout terminal width when Width is 0
func (r *GlamourRenderer) wrapWidth() int {
	if r.Width > 0 {
		return r.Width
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 0
	}
	if width > maxWidth {
		return maxWidth
	}
	return width
}
