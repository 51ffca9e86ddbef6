// Package report renders the human-facing summary printed by the check
// command.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/arthur-debert/pathological/pkg/errors"
	"github.com/arthur-debert/pathological/pkg/ui"
	"github.com/arthur-debert/pathological/pkg/ui/styles"
)

// Report is what the check command learned about a directory
type Report struct {
	Dir      string
	Pathfile string
	Paths    []string
	Err      error
}

// OK reports whether the Pathfile was found and parsed
func (r Report) OK() bool {
	return r.Err == nil
}

// Renderer writes reports, styled or plain
type Renderer struct {
	out    io.Writer
	styles styles.Registry
}

// New creates a renderer. format must already be resolved, FormatAuto is
// treated as text.
func New(w io.Writer, format ui.Format) *Renderer {
	reg := styles.Plain()
	if format == ui.FormatTerminal {
		reg = styles.Default()
	}
	return &Renderer{out: w, styles: reg}
}

// Render writes rep
func (r *Renderer) Render(rep Report) error {
	var b strings.Builder

	b.WriteString(r.styles.Render("Header", "Pathfile check"))
	b.WriteString("\n")
	r.field(&b, "directory", rep.Dir)

	if rep.Pathfile == "" {
		r.field(&b, "pathfile", r.styles.Render("Muted", "none found"))
	} else {
		r.field(&b, "pathfile", r.styles.Render("FilePath", rep.Pathfile))
	}

	if rep.Err != nil {
		r.writeError(&b, rep.Err)
	} else {
		r.field(&b, "paths", fmt.Sprintf("%d", len(rep.Paths)))
		for _, p := range rep.Paths {
			b.WriteString(r.styles.Render("Item", r.styles.Render("Success", "+")+" "+p))
			b.WriteString("\n")
		}
		b.WriteString(r.styles.Render("Success", "ok"))
		b.WriteString("\n")
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *Renderer) field(b *strings.Builder, label, value string) {
	b.WriteString(r.styles.Render("Label", label))
	b.WriteString(" ")
	b.WriteString(value)
	b.WriteString("\n")
}

func (r *Renderer) writeError(b *strings.Builder, err error) {
	style := "Error"
	if errors.IsErrorCode(err, errors.ErrNoPathfile) {
		style = "Warning"
	}
	b.WriteString(r.styles.Render(style, err.Error()))
	b.WriteString("\n")

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(r.styles.Render("Item", fmt.Sprintf("%s: %v", k, details[k])))
		b.WriteString("\n")
	}
}
