package handlers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/martiops/stackplan/internal/plan"
)

var (
	outColorBlue  = lipgloss.Color("#3b82f6")
	outColorDim   = lipgloss.Color("#6b7280")
	outColorWhite = lipgloss.Color("#f9fafb")
)

var (
	outTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(outColorWhite)

	outSectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(outColorBlue)

	outDimStyle = lipgloss.NewStyle().
			Foreground(outColorDim)
)

// renderOutputs produces a lipgloss-styled summary of a plan's outputs.
func renderOutputs(doc *plan.Document) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(outTitleStyle.Render(fmt.Sprintf("  stackplan outputs: %s/%s", doc.Project, doc.Environment)))
	b.WriteString("\n")
	b.WriteString(outDimStyle.Render("  " + strings.Repeat("═", 40)))
	b.WriteString("\n\n")

	if len(doc.Outputs) == 0 {
		b.WriteString(outDimStyle.Render("  No outputs recorded."))
		b.WriteString("\n")
		return b.String()
	}

	names := make([]string, 0, len(doc.Outputs))
	width := 0
	for name := range doc.Outputs {
		names = append(names, name)
		if len(name) > width {
			width = len(name)
		}
	}
	sort.Strings(names)

	b.WriteString(outSectionStyle.Render("  Outputs"))
	b.WriteString("\n")
	b.WriteString(outDimStyle.Render("  " + strings.Repeat("─", 40)))
	b.WriteString("\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, name, doc.Outputs[name])
	}

	b.WriteString("\n")
	b.WriteString(outDimStyle.Render(fmt.Sprintf("  %d resources in plan", len(doc.Resources))))
	b.WriteString("\n")
	b.WriteString(outDimStyle.Render("  Note: ${id.attribute} values are resolved at provisioning time."))
	b.WriteString("\n")

	return b.String()
}
